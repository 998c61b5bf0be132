package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentMainPath(t *testing.T) {
	assert.True(t, AppointmentPending.CanStep(AppointmentConfirmed))
	assert.True(t, AppointmentConfirmed.CanStep(AppointmentInProgress))
	assert.True(t, AppointmentInProgress.CanStep(AppointmentCompleted))

	assert.False(t, AppointmentPending.CanStep(AppointmentInProgress))
	assert.False(t, AppointmentPending.CanStep(AppointmentCompleted))
	assert.False(t, AppointmentConfirmed.CanStep(AppointmentCompleted))
}

func TestAppointmentSideBranchesFromEveryNonTerminalState(t *testing.T) {
	nonTerminal := []AppointmentStatus{
		AppointmentPending,
		AppointmentConfirmed,
		AppointmentInProgress,
	}
	for _, from := range nonTerminal {
		assert.True(t, from.CanStep(AppointmentCancelled), "cancelled from %s", from)
		assert.True(t, from.CanStep(AppointmentNoShow), "no_show from %s", from)
	}
}

func TestAppointmentTerminalStatesStepNowhere(t *testing.T) {
	for _, from := range []AppointmentStatus{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
		assert.True(t, from.Terminal())
		assert.Empty(t, from.Next())
	}
}

func TestSaleStatusTable(t *testing.T) {
	assert.True(t, SaleCompleted.CanStep(SaleRefunded))
	assert.False(t, SaleRefunded.CanStep(SaleCompleted))

	assert.False(t, SaleCompleted.Terminal(), "completed still refundable")
	assert.True(t, SaleCompleted.EditLocked())
	assert.True(t, SaleRefunded.Terminal())
	assert.True(t, SaleRefunded.EditLocked())
}

func TestPurchaseStatusTable(t *testing.T) {
	assert.True(t, PurchaseApproved.CanStep(PurchaseCancelled))
	assert.False(t, PurchaseCancelled.CanStep(PurchaseApproved))
	assert.True(t, PurchaseCancelled.Terminal())
}

func TestDeliveryStatusTable(t *testing.T) {
	assert.True(t, DeliveryPending.CanStep(DeliveryInTransit))
	assert.True(t, DeliveryInTransit.CanStep(DeliveryDelivered))
	assert.False(t, DeliveryPending.CanStep(DeliveryDelivered))

	for _, from := range []DeliveryStatus{DeliveryPending, DeliveryInTransit} {
		assert.True(t, from.CanStep(DeliveryCancelled), "cancelled from %s", from)
	}
	assert.True(t, DeliveryDelivered.Terminal())
	assert.True(t, DeliveryCancelled.Terminal())
}
