package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceipt(t *testing.T) {
	data, err := BuildReceipt(Receipt{
		Ref:           "5a1f0c3e-0000-0000-0000-000000000000",
		Code:          "VNT-004",
		Date:          "2025-03-10",
		ClientName:    "María Gómez",
		PaymentMethod: "efectivo",
		Lines: []ReceiptLine{
			{Description: "Corte", Quantity: 1, UnitPrice: 50000, Amount: 50000},
			{Description: "Manicure", Quantity: 2, UnitPrice: 30000, Amount: 60000},
		},
		Total: 110000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderRevenuePie(t *testing.T) {
	data, err := RenderRevenuePie([]Share{
		{Label: "Servicios", Value: 350000, Percent: 74},
		{Label: "Productos", Value: 120000, Percent: 26},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderAppointmentsBar(t *testing.T) {
	data, err := RenderAppointmentsBar(Stats{Appointments: 8, CompletedAppointments: 5, CancelledAppointments: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
