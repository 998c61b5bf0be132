package repository

import (
	"time"

	"asthroapp/internal/model"
	"asthroapp/internal/service"
)

var seededAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// SeedRoles includes the protected super-admin role.
func SeedRoles() []model.Role {
	return []model.Role{
		{ID: 1, Name: "Administrador", Description: "Acceso total", Permissions: []string{"*"}, Status: model.Active, Protected: true, CreatedAt: seededAt},
		{ID: 2, Name: "Recepcionista", Description: "Agenda y clientes", Permissions: []string{"clients", "appointments", "schedules", "sales"}, Status: model.Active, CreatedAt: seededAt},
		{ID: 3, Name: "Estilista", Description: "Solo agenda propia", Permissions: []string{"appointments"}, Status: model.Active, CreatedAt: seededAt},
	}
}

func SeedUsers() []model.User {
	users := []model.User{
		{ID: 1, FirstName: "Laura", LastName: "Martínez", Email: "laura@asthro.app", Phone: "3001112233", RoleID: 1, Status: model.Active, Protected: true, CreatedAt: seededAt},
		{ID: 2, FirstName: "Carlos", LastName: "Pérez", Email: "carlos@asthro.app", Phone: "3004445566", RoleID: 2, Status: model.Active, CreatedAt: seededAt},
		{ID: 3, FirstName: "Ana", LastName: "Rodríguez", Email: "ana@asthro.app", Phone: "3007778899", RoleID: 3, Status: model.Active, CreatedAt: seededAt},
		{ID: 4, FirstName: "Sofía", LastName: "López", Email: "sofia@asthro.app", Phone: "3002223344", RoleID: 3, Status: model.Inactive, CreatedAt: seededAt},
	}
	for i := range users {
		users[i].Recompute()
	}
	return users
}

func SeedClients() []model.Client {
	clients := []model.Client{
		{ID: 1, FirstName: "María", LastName: "Gómez", DocumentID: "1012345678", Email: "maria@example.com", Phone: "3109876543", Status: model.Active, CreatedAt: seededAt},
		{ID: 2, FirstName: "Juan", LastName: "Torres", DocumentID: "1087654321", Email: "juan@example.com", Phone: "3112223344", Status: model.Active, CreatedAt: seededAt},
		{ID: 3, FirstName: "Valentina", LastName: "Ríos", DocumentID: "1023456789", Email: "valen@example.com", Phone: "3155556677", Status: model.Active, CreatedAt: seededAt},
		{ID: 4, FirstName: "Andrés", LastName: "Castro", DocumentID: "1098765432", Email: "", Phone: "3168889900", Status: model.Inactive, CreatedAt: seededAt},
	}
	for i := range clients {
		clients[i].Recompute()
	}
	return clients
}

func SeedSchedules() []model.Schedule {
	return []model.Schedule{
		{ID: 1, EmployeeID: 3, Weekday: time.Monday, Start: "08:00", End: "18:00", Status: model.Active, CreatedAt: seededAt},
		{ID: 2, EmployeeID: 3, Weekday: time.Wednesday, Start: "08:00", End: "14:00", Status: model.Active, CreatedAt: seededAt},
		{ID: 3, EmployeeID: 4, Weekday: time.Monday, Start: "10:00", End: "19:00", Status: model.Active, CreatedAt: seededAt},
		{ID: 4, EmployeeID: 4, Weekday: time.Saturday, Start: "09:00", End: "13:00", Status: model.Inactive, CreatedAt: seededAt},
	}
}

func SeedAppointments() []model.Appointment {
	return []model.Appointment{
		{ID: 1, ClientID: 1, EmployeeID: 3, ServiceID: 1, Date: "2025-03-10", Time: "10:00", Status: model.AppointmentConfirmed, CreatedAt: seededAt},
		{ID: 2, ClientID: 2, EmployeeID: 3, ServiceID: 2, Date: "2025-03-10", Time: "14:00", Status: model.AppointmentPending, CreatedAt: seededAt},
		{ID: 3, ClientID: 3, EmployeeID: 4, ServiceID: 1, Date: "2025-03-03", Time: "11:00", Status: model.AppointmentCompleted, CreatedAt: seededAt},
		{ID: 4, ClientID: 1, EmployeeID: 4, ServiceID: 3, Date: "2025-03-05", Time: "16:00", Status: model.AppointmentCancelled, CreatedAt: seededAt},
	}
}

func SeedCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Cabello", Description: "Cortes y peinados", Status: model.Active, CreatedAt: seededAt},
		{ID: 2, Name: "Uñas", Description: "Manicure y pedicure", Status: model.Active, CreatedAt: seededAt},
		{ID: 3, Name: "Cuidado facial", Description: "", Status: model.Active, CreatedAt: seededAt},
	}
}

func SeedServices() []model.Service {
	return []model.Service{
		{ID: 1, Name: "Corte", Description: "Corte clásico", Price: 50000, Duration: 30, CategoryID: 1, Status: model.Active, CreatedAt: seededAt},
		{ID: 2, Name: "Manicure", Description: "", Price: 30000, Duration: 45, CategoryID: 2, Status: model.Active, CreatedAt: seededAt},
		{ID: 3, Name: "Tinte", Description: "Color completo", Price: 120000, Duration: 90, CategoryID: 1, Status: model.Active, CreatedAt: seededAt},
		{ID: 4, Name: "Limpieza facial", Description: "", Price: 80000, Duration: 60, CategoryID: 3, Status: model.Inactive, CreatedAt: seededAt},
	}
}

func SeedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Shampoo reparador", CategoryID: 1, Price: 45000, Stock: 12, Status: model.Active, CreatedAt: seededAt},
		{ID: 2, Name: "Esmalte rojo", CategoryID: 2, Price: 18000, Stock: 30, Status: model.Active, CreatedAt: seededAt},
		{ID: 3, Name: "Crema hidratante", CategoryID: 3, Price: 62000, Stock: 8, Status: model.Active, CreatedAt: seededAt},
	}
}

func SeedSales() []model.Sale {
	sales := []model.Sale{
		{ID: 1, ClientID: 1, Items: []model.SaleItem{{ServiceID: 1, Quantity: 1, UnitPrice: 50000}}, PaymentMethod: "efectivo", Date: "2025-03-03", Status: model.SaleCompleted, CreatedAt: seededAt},
		{ID: 2, ClientID: 2, Items: []model.SaleItem{{ServiceID: 2, Quantity: 2, UnitPrice: 30000}}, PaymentMethod: "tarjeta", Date: "2025-03-04", Status: model.SaleCompleted, CreatedAt: seededAt},
		{ID: 3, ClientID: 3, Items: []model.SaleItem{{ServiceID: 3, Quantity: 1, UnitPrice: 120000}}, PaymentMethod: "efectivo", Date: "2025-03-05", Status: model.SaleRefunded, CreatedAt: seededAt},
	}
	for i := range sales {
		sales[i].Recompute()
	}
	return sales
}

func SeedSuppliers() []model.Supplier {
	return []model.Supplier{
		{ID: 1, Name: "Distribelleza SAS", Contact: "Pedro Díaz", Email: "ventas@distribelleza.co", Phone: "6015550101", Status: model.Active, CreatedAt: seededAt},
		{ID: 2, Name: "Cosmética Andina", Contact: "Lucía Vargas", Email: "pedidos@cosandina.co", Phone: "6015550202", Status: model.Active, CreatedAt: seededAt},
	}
}

func SeedSupplies() []model.Supply {
	return []model.Supply{
		{ID: 1, Name: "Tinte rubio", Unit: "tubo", Stock: 15, MinStock: 5, Status: model.Active, CreatedAt: seededAt},
		{ID: 2, Name: "Shampoo profesional", Unit: "litro", Stock: 4, MinStock: 6, Status: model.Active, CreatedAt: seededAt},
		{ID: 3, Name: "Algodón", Unit: "paquete", Stock: 40, MinStock: 10, Status: model.Active, CreatedAt: seededAt},
	}
}

func SeedPurchases() []model.Purchase {
	purchases := []model.Purchase{
		{ID: 1, SupplierID: 1, Items: []model.PurchaseItem{{SupplyID: 1, Quantity: 10, UnitCost: 25000}}, Date: "2025-02-20", Status: model.PurchaseApproved, CreatedAt: seededAt},
		{ID: 2, SupplierID: 2, Items: []model.PurchaseItem{{SupplyID: 2, Quantity: 6, UnitCost: 38000}}, Date: "2025-02-25", Status: model.PurchaseCancelled, CreatedAt: seededAt},
	}
	for i := range purchases {
		purchases[i].Recompute()
	}
	return purchases
}

func SeedDeliveries() []model.Delivery {
	return []model.Delivery{
		{ID: 1, SupplierID: 1, SupplyID: 1, Quantity: 10, ScheduledDate: "2025-03-12", Status: model.DeliveryPending, CreatedAt: seededAt},
		{ID: 2, SupplierID: 2, SupplyID: 2, Quantity: 6, ScheduledDate: "2025-03-08", Status: model.DeliveryInTransit, CreatedAt: seededAt},
		{ID: 3, SupplierID: 1, SupplyID: 3, Quantity: 20, ScheduledDate: "2025-02-28", Status: model.DeliveryDelivered, CreatedAt: seededAt},
	}
}

// SeedDashboard returns the pre-baked period bundles.
func SeedDashboard() map[service.Period]service.Stats {
	return map[service.Period]service.Stats{
		service.PeriodToday: {Appointments: 8, CompletedAppointments: 5, CancelledAppointments: 1, NewClients: 2, ServiceRevenue: 350000, ProductRevenue: 120000},
		service.PeriodWeek:  {Appointments: 42, CompletedAppointments: 30, CancelledAppointments: 4, NewClients: 9, ServiceRevenue: 2100000, ProductRevenue: 800000},
		service.PeriodMonth: {Appointments: 160, CompletedAppointments: 120, CancelledAppointments: 15, NewClients: 31, ServiceRevenue: 8600000, ProductRevenue: 3100000},
	}
}
