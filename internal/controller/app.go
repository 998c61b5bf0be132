package controller

import (
	"fmt"

	"github.com/rs/zerolog"

	"asthroapp/internal/auth"
	"asthroapp/internal/form"
	"asthroapp/internal/model"
	"asthroapp/internal/repository"
	"asthroapp/internal/service"
	"asthroapp/internal/session"
)

// App aggregates every module controller plus the dashboard. Each
// module owns its own collection; they share nothing at runtime
// except the workspace dirty flag.
type App struct {
	Caps      auth.Capabilities
	Workspace *session.Workspace
	Log       zerolog.Logger

	Users        *Users
	Roles        *Roles
	Clients      *Clients
	Appointments *Appointments
	Schedules    *Schedules
	Services     *Services
	Categories   *Categories
	Products     *Products
	Sales        *Sales
	Purchases    *Purchases
	Suppliers    *Suppliers
	Supplies     *Supplies
	Deliveries   *Deliveries

	Dashboard *service.Dashboard
}

func NewApp(caps auth.Capabilities, pageSize int, log zerolog.Logger) *App {
	ws := session.NewWorkspace()
	return &App{
		Caps:      caps,
		Workspace: ws,
		Log:       log,

		Users:        NewUsers(caps, ws, log, pageSize),
		Roles:        NewRoles(caps, ws, log, pageSize),
		Clients:      NewClients(caps, ws, log, pageSize),
		Appointments: NewAppointments(caps, ws, log, pageSize),
		Schedules:    NewSchedules(caps, ws, log, pageSize),
		Services:     NewServices(caps, ws, log, pageSize),
		Categories:   NewCategories(caps, ws, log, pageSize),
		Products:     NewProducts(caps, ws, log, pageSize),
		Sales:        NewSales(caps, ws, log, pageSize),
		Purchases:    NewPurchases(caps, ws, log, pageSize),
		Suppliers:    NewSuppliers(caps, ws, log, pageSize),
		Supplies:     NewSupplies(caps, ws, log, pageSize),
		Deliveries:   NewDeliveries(caps, ws, log, pageSize),

		Dashboard: service.NewDashboard(repository.SeedDashboard()),
	}
}

// SaleReceipt resolves a sale into a printable receipt: every foreign
// id is joined to its name here so the export step needs no lookups.
func (a *App) SaleReceipt(id int) (service.Receipt, error) {
	sale, err := a.Sales.Get(id)
	if err != nil {
		return service.Receipt{}, err
	}

	clientName := fmt.Sprintf("Cliente %d", sale.ClientID)
	if client, err := a.Clients.Get(sale.ClientID); err == nil {
		clientName = client.Name
	}

	lines := make([]service.ReceiptLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		desc := fmt.Sprintf("Servicio %d", item.ServiceID)
		if svc, err := a.Services.Get(item.ServiceID); err == nil {
			desc = svc.Name
		}
		lines = append(lines, service.ReceiptLine{
			Description: desc,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      float64(item.Quantity) * item.UnitPrice,
		})
	}

	return service.Receipt{
		Ref:           a.Workspace.ExportRef(),
		Code:          sale.Code,
		Date:          sale.Date,
		ClientName:    clientName,
		PaymentMethod: sale.PaymentMethod,
		Lines:         lines,
		Total:         sale.Total,
	}, nil
}

// BookingChecks bundles the cross-field rules for the appointment
// dialog: referential checks against current reference snapshots and
// the slot-conflict rule.
func (a *App) BookingChecks() []form.Check[model.Appointment] {
	return []form.Check[model.Appointment]{
		form.RefCheck("client_id", a.Clients.Options(), func(ap model.Appointment) int { return ap.ClientID }),
		form.RefCheck("employee_id", a.Users.Options(), func(ap model.Appointment) int { return ap.EmployeeID }),
		form.RefCheck("service_id", a.Services.Options(), func(ap model.Appointment) int { return ap.ServiceID }),
		AvailabilityCheck(a.Schedules.List().Collection().Items(), a.Appointments.List().Collection().Items()),
	}
}
