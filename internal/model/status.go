package model

// Activity is the two-state lifecycle shared by catalogue records
// (users, roles, clients, services, suppliers, supplies, categories,
// products). It is flipped only through explicit toggle actions.
type Activity string

const (
	Active   Activity = "active"
	Inactive Activity = "inactive"
)

func (a Activity) Toggled() Activity {
	if a == Active {
		return Inactive
	}
	return Active
}

// AppointmentStatus is the booking lifecycle.
//
// pending -> confirmed -> in_progress -> completed, with a side
// branch to cancelled/no_show from any non-terminal state. A
// completed appointment is immutable.
type AppointmentStatus string

const (
	AppointmentPending    AppointmentStatus = "pending"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

var appointmentSteps = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:    {AppointmentConfirmed, AppointmentCancelled, AppointmentNoShow},
	AppointmentConfirmed:  {AppointmentInProgress, AppointmentCancelled, AppointmentNoShow},
	AppointmentInProgress: {AppointmentCompleted, AppointmentCancelled, AppointmentNoShow},
}

func (s AppointmentStatus) CanStep(to AppointmentStatus) bool {
	return canStep(appointmentSteps, s, to)
}

// Next lists the statuses reachable in one step.
func (s AppointmentStatus) Next() []AppointmentStatus {
	return appointmentSteps[s]
}

// Terminal reports whether the appointment accepts no further mutation.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled || s == AppointmentNoShow
}

// SaleStatus: a sale is registered already completed; the only legal
// step is a refund. A completed sale cannot be edited or deleted, but
// it can still be refunded; a refunded sale is fully immutable.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleRefunded  SaleStatus = "refunded"
)

var saleSteps = map[SaleStatus][]SaleStatus{
	SaleCompleted: {SaleRefunded},
}

func (s SaleStatus) CanStep(to SaleStatus) bool {
	return canStep(saleSteps, s, to)
}

func (s SaleStatus) Terminal() bool {
	// Completed blocks edit/delete as well; see EditLocked.
	return s == SaleRefunded
}

// EditLocked reports whether update/remove are refused even though a
// status step may still be allowed.
func (s SaleStatus) EditLocked() bool {
	return s == SaleCompleted || s == SaleRefunded
}

// PurchaseStatus: purchases enter approved and may only be cancelled.
type PurchaseStatus string

const (
	PurchaseApproved  PurchaseStatus = "approved"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

var purchaseSteps = map[PurchaseStatus][]PurchaseStatus{
	PurchaseApproved: {PurchaseCancelled},
}

func (s PurchaseStatus) CanStep(to PurchaseStatus) bool {
	return canStep(purchaseSteps, s, to)
}

func (s PurchaseStatus) Terminal() bool {
	return s == PurchaseCancelled
}

// DeliveryStatus is the supply-delivery flow.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

var deliverySteps = map[DeliveryStatus][]DeliveryStatus{
	DeliveryPending:   {DeliveryInTransit, DeliveryCancelled},
	DeliveryInTransit: {DeliveryDelivered, DeliveryCancelled},
}

func (s DeliveryStatus) CanStep(to DeliveryStatus) bool {
	return canStep(deliverySteps, s, to)
}

// Next lists the statuses reachable in one step.
func (s DeliveryStatus) Next() []DeliveryStatus {
	return deliverySteps[s]
}

func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

func canStep[S comparable](table map[S][]S, from, to S) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}
