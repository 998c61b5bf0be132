package controller

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asthroapp/internal/auth"
	"asthroapp/internal/collection"
	"asthroapp/internal/form"
	"asthroapp/internal/model"
)

func newTestApp(t *testing.T, perms ...string) *App {
	t.Helper()
	if len(perms) == 0 {
		perms = []string{auth.Wildcard}
	}
	return NewApp(auth.NewCapabilities(perms...), 5, zerolog.Nop())
}

func TestCreateServiceScenario(t *testing.T) {
	app := newTestApp(t)
	// start from an empty collection to pin down the assigned id
	col := collection.New(serviceDescriptor(), nil)
	app.Services.Module = newModule("services", true, collection.NewList(col, 5), app.Workspace, zerolog.Nop())

	created, err := app.Services.Create(model.Service{Name: "Corte", Price: 50000, Duration: 30})
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, model.Active, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 1, app.Services.List().Collection().Len())
	assert.True(t, app.Workspace.Unsaved)
}

func TestMutationsDeniedWithoutPermission(t *testing.T) {
	app := newTestApp(t, auth.PermDashboard)

	_, err := app.Clients.Create(model.Client{FirstName: "X", LastName: "Y", DocumentID: "1"})
	assert.ErrorIs(t, err, ErrDenied)

	err = app.Clients.Remove(1)
	assert.ErrorIs(t, err, ErrDenied)

	_, err = app.Clients.ToggleStatus(1)
	assert.ErrorIs(t, err, ErrDenied)

	// reads stay open
	_, err = app.Clients.Get(1)
	assert.NoError(t, err)
}

func TestProtectedRoleRefusesToggleAndRemove(t *testing.T) {
	app := newTestApp(t)

	before, err := app.Roles.Get(1)
	require.NoError(t, err)
	require.True(t, before.Protected)

	_, err = app.Roles.ToggleStatus(1)
	assert.ErrorIs(t, err, collection.ErrProtected)

	err = app.Roles.Remove(1)
	assert.ErrorIs(t, err, collection.ErrProtected)

	after, err := app.Roles.Get(1)
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
}

func TestCompletedAppointmentIsTerminal(t *testing.T) {
	app := newTestApp(t)

	// seed id 3 is completed
	appt, err := app.Appointments.Get(3)
	require.NoError(t, err)
	require.Equal(t, model.AppointmentCompleted, appt.Status)

	appt.Notes = "edited"
	_, err = app.Appointments.Update(appt)
	assert.ErrorIs(t, err, collection.ErrTerminal)

	err = app.Appointments.Remove(3)
	assert.ErrorIs(t, err, collection.ErrTerminal)

	_, err = app.Appointments.Cancel(3)
	assert.ErrorIs(t, err, collection.ErrTerminal)
}

func TestAppointmentLifecycle(t *testing.T) {
	app := newTestApp(t)

	created, err := app.Appointments.Create(model.Appointment{
		ClientID: 1, EmployeeID: 3, ServiceID: 1, Date: "2025-03-17", Time: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentPending, created.Status)

	_, err = app.Appointments.Transition(created.ID, model.AppointmentCompleted)
	assert.ErrorIs(t, err, collection.ErrTransition, "pending cannot jump to completed")

	stepped, err := app.Appointments.Transition(created.ID, model.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentConfirmed, stepped.Status)

	stepped, err = app.Appointments.Transition(created.ID, model.AppointmentInProgress)
	require.NoError(t, err)
	stepped, err = app.Appointments.Transition(created.ID, model.AppointmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentCompleted, stepped.Status)

	_, err = app.Appointments.Cancel(created.ID)
	assert.ErrorIs(t, err, collection.ErrTerminal)
}

func TestSaleRefundFlow(t *testing.T) {
	app := newTestApp(t)

	sale, err := app.Sales.Get(1)
	require.NoError(t, err)
	require.Equal(t, model.SaleCompleted, sale.Status)

	// completed sales are edit-locked but refundable
	_, err = app.Sales.Update(sale)
	assert.ErrorIs(t, err, collection.ErrTerminal)
	err = app.Sales.Remove(1)
	assert.ErrorIs(t, err, collection.ErrTerminal)

	refunded, err := app.Sales.Refund(1)
	require.NoError(t, err)
	assert.Equal(t, model.SaleRefunded, refunded.Status)

	_, err = app.Sales.Refund(1)
	assert.ErrorIs(t, err, collection.ErrTerminal)
}

func TestSaleCodeAndTotalDerived(t *testing.T) {
	app := newTestApp(t)

	created, err := app.Sales.Create(model.Sale{
		ClientID:      1,
		Items:         []model.SaleItem{{ServiceID: 1, Quantity: 2, UnitPrice: 50000}},
		PaymentMethod: "efectivo",
		Date:          "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "VNT-004", created.Code)
	assert.Equal(t, 100000.0, created.Total)
}

func TestSaleReceiptIsFullyResolved(t *testing.T) {
	app := newTestApp(t)

	receipt, err := app.SaleReceipt(1)
	require.NoError(t, err)

	assert.Equal(t, "VNT-001", receipt.Code)
	assert.Equal(t, "María Gómez", receipt.ClientName, "client id must be joined to a name")
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, "Corte", receipt.Lines[0].Description, "service id must be joined to a name")
	assert.NotEmpty(t, receipt.Ref)
}

func TestPurchaseCancelFlow(t *testing.T) {
	app := newTestApp(t)

	cancelled, err := app.Purchases.Cancel(1)
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseCancelled, cancelled.Status)

	_, err = app.Purchases.Cancel(1)
	assert.ErrorIs(t, err, collection.ErrTerminal)

	err = app.Purchases.Remove(1)
	assert.ErrorIs(t, err, collection.ErrTerminal)
}

func TestDeliveryTransitions(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Deliveries.Transition(1, model.DeliveryDelivered)
	assert.ErrorIs(t, err, collection.ErrTransition, "pending must pass through in_transit")

	stepped, err := app.Deliveries.Transition(1, model.DeliveryInTransit)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryInTransit, stepped.Status)

	stepped, err = app.Deliveries.Transition(1, model.DeliveryDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryDelivered, stepped.Status)

	_, err = app.Deliveries.Transition(1, model.DeliveryCancelled)
	assert.ErrorIs(t, err, collection.ErrTerminal)
}

func TestSupplyStockAdjustment(t *testing.T) {
	app := newTestApp(t)

	adjusted, err := app.Supplies.AdjustStock(1, -5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, adjusted.Stock)

	_, err = app.Supplies.AdjustStock(1, -100)
	assert.ErrorIs(t, err, ErrStock)

	got, _ := app.Supplies.Get(1)
	assert.Equal(t, 10.0, got.Stock, "refused adjustment must not change stock")
}

func TestBookingChecksFlagConflictsAndBadRefs(t *testing.T) {
	app := newTestApp(t)
	checks := app.BookingChecks()

	// seed: employee 3 works Mondays 08:00-18:00 and has a confirmed
	// booking 2025-03-10 10:00
	draft := model.Appointment{ClientID: 1, EmployeeID: 3, ServiceID: 1, Date: "2025-03-10", Time: "10:00"}
	errs := form.FieldErrors{}
	for _, check := range checks {
		check(draft, errs)
	}
	assert.Contains(t, errs, "time")

	draft.Time = "11:00"
	draft.ClientID = 999
	errs = form.FieldErrors{}
	for _, check := range checks {
		check(draft, errs)
	}
	assert.NotContains(t, errs, "time")
	assert.Contains(t, errs, "client_id")
}

func TestEditKeepsOwnSlot(t *testing.T) {
	app := newTestApp(t)

	// editing booking 1 back onto its own slot must not conflict
	appt, err := app.Appointments.Get(1)
	require.NoError(t, err)

	errs := form.FieldErrors{}
	check := AvailabilityCheck(
		app.Schedules.List().Collection().Items(),
		app.Appointments.List().Collection().Items(),
	)
	check(appt, errs)
	assert.Empty(t, errs)
}

func TestDeleteConfirmationGate(t *testing.T) {
	app := newTestApp(t)
	before := app.Clients.List().Collection().Len()

	// the two-step gate: remove must not run until the confirmation
	// callback fires, and then exactly once
	calls := 0
	confirm := func(confirmed bool) {
		if confirmed {
			calls++
			require.NoError(t, app.Clients.Remove(4))
		}
	}

	confirm(false)
	assert.Equal(t, before, app.Clients.List().Collection().Len())

	confirm(true)
	assert.Equal(t, 1, calls)
	assert.Equal(t, before-1, app.Clients.List().Collection().Len())

	// the data layer itself carries no implicit re-guard
	require.NoError(t, app.Clients.Remove(3))
}

func TestClientsCSVRoundTripThroughController(t *testing.T) {
	app := newTestApp(t)
	path := t.TempDir() + "/clientes.csv"

	require.NoError(t, app.Clients.ExportCSV(path))
	before := app.Clients.List().Collection().Len()

	imported, err := app.Clients.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, before, imported)
	assert.Equal(t, before*2, app.Clients.List().Collection().Len())

	// ids must remain pairwise distinct after the import
	seen := map[int]bool{}
	for _, rec := range app.Clients.List().Collection().Items() {
		assert.False(t, seen[rec.ID])
		seen[rec.ID] = true
	}
}
