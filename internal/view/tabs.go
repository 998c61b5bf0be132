package view

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"asthroapp/internal/collection"
	"asthroapp/internal/model"
	"asthroapp/internal/service"
)

func money(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}

func (mw *MainWindow) activityFilter() filterSpec {
	return filterSpec{
		field:  "status",
		labels: []string{mw.tr("Todos"), mw.tr("Activos"), mw.tr("Inactivos")},
		values: []string{collection.FilterAll, string(model.Active), string(model.Inactive)},
	}
}

func (mw *MainWindow) categoryFilter() filterSpec {
	spec := filterSpec{
		field:  "category",
		labels: []string{mw.tr("Todas las categorías")},
		values: []string{collection.FilterAll},
	}
	for _, opt := range mw.app.Categories.Options() {
		spec.labels = append(spec.labels, opt.Label)
		spec.values = append(spec.values, strconv.Itoa(opt.ID))
	}
	return spec
}

func (mw *MainWindow) activityLabel(status model.Activity) string {
	if status == model.Active {
		return mw.tr("Activo")
	}
	return mw.tr("Inactivo")
}

func (mw *MainWindow) buildUsersTab() fyne.CanvasObject {
	t := newModuleTab(mw, "Usuarios", &mw.app.Users.Module, []column[model.User]{
		{"ID", 50, func(u model.User) string { return strconv.Itoa(u.ID) }},
		{"Nombre", 200, func(u model.User) string { return u.Name }},
		{"Correo", 220, func(u model.User) string { return u.Email }},
		{"Teléfono", 130, func(u model.User) string { return u.Phone }},
		{"Estado", 100, func(u model.User) string { return mw.activityLabel(u.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter()}
	t.label = func(u model.User) string { return u.Name }
	t.onEdit = mw.showUserDialog
	t.extras = []extraAction[model.User]{
		{"Activar/Desactivar", func(u model.User) {
			if _, err := mw.app.Users.ToggleStatus(u.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildRolesTab() fyne.CanvasObject {
	t := newModuleTab(mw, "Roles", &mw.app.Roles.Module, []column[model.Role]{
		{"ID", 50, func(r model.Role) string { return strconv.Itoa(r.ID) }},
		{"Nombre", 180, func(r model.Role) string { return r.Name }},
		{"Descripción", 260, func(r model.Role) string { return r.Description }},
		{"Permisos", 240, func(r model.Role) string { return strings.Join(r.Permissions, ", ") }},
		{"Estado", 100, func(r model.Role) string { return mw.activityLabel(r.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter()}
	t.label = func(r model.Role) string { return r.Name }
	t.onEdit = mw.showRoleDialog
	t.extras = []extraAction[model.Role]{
		{"Activar/Desactivar", func(r model.Role) {
			if _, err := mw.app.Roles.ToggleStatus(r.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildClientsTab() fyne.CanvasObject {
	t := newModuleTab(mw, "Clientes", &mw.app.Clients.Module, []column[model.Client]{
		{"ID", 50, func(c model.Client) string { return strconv.Itoa(c.ID) }},
		{"Nombre", 200, func(c model.Client) string { return c.Name }},
		{"Documento", 130, func(c model.Client) string { return c.DocumentID }},
		{"Correo", 220, func(c model.Client) string { return c.Email }},
		{"Teléfono", 130, func(c model.Client) string { return c.Phone }},
		{"Estado", 100, func(c model.Client) string { return mw.activityLabel(c.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter()}
	t.label = func(c model.Client) string { return c.Name }
	t.onEdit = mw.showClientDialog
	t.extras = []extraAction[model.Client]{
		{"Activar/Desactivar", func(c model.Client) {
			if _, err := mw.app.Clients.ToggleStatus(c.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) appointmentStatusLabel(s model.AppointmentStatus) string {
	switch s {
	case model.AppointmentPending:
		return mw.tr("Pendiente")
	case model.AppointmentConfirmed:
		return mw.tr("Confirmada")
	case model.AppointmentInProgress:
		return mw.tr("En curso")
	case model.AppointmentCompleted:
		return mw.tr("Completada")
	case model.AppointmentCancelled:
		return mw.tr("Cancelada")
	case model.AppointmentNoShow:
		return mw.tr("No asistió")
	}
	return string(s)
}

func (mw *MainWindow) buildAppointmentsTab() fyne.CanvasObject {
	clientName := optionLabeler(mw.app.Clients.Options())
	employeeName := optionLabeler(mw.app.Users.Options())
	serviceName := optionLabeler(mw.app.Services.Options())

	t := newModuleTab(mw, "Citas", &mw.app.Appointments.Module, []column[model.Appointment]{
		{"ID", 50, func(a model.Appointment) string { return strconv.Itoa(a.ID) }},
		{"Cliente", 180, func(a model.Appointment) string { return clientName(a.ClientID) }},
		{"Empleado", 180, func(a model.Appointment) string { return employeeName(a.EmployeeID) }},
		{"Servicio", 150, func(a model.Appointment) string { return serviceName(a.ServiceID) }},
		{"Fecha", 110, func(a model.Appointment) string { return a.Date }},
		{"Hora", 70, func(a model.Appointment) string { return a.Time }},
		{"Estado", 110, func(a model.Appointment) string { return mw.appointmentStatusLabel(a.Status) }},
	})
	t.filters = []filterSpec{{
		field: "status",
		labels: []string{
			mw.tr("Todas"), mw.tr("Pendiente"), mw.tr("Confirmada"), mw.tr("En curso"),
			mw.tr("Completada"), mw.tr("Cancelada"), mw.tr("No asistió"),
		},
		values: []string{
			collection.FilterAll, string(model.AppointmentPending), string(model.AppointmentConfirmed),
			string(model.AppointmentInProgress), string(model.AppointmentCompleted),
			string(model.AppointmentCancelled), string(model.AppointmentNoShow),
		},
	}}
	t.label = func(a model.Appointment) string {
		return fmt.Sprintf("%s %s - %s", a.Date, a.Time, clientName(a.ClientID))
	}
	t.onEdit = mw.showAppointmentDialog
	t.extras = []extraAction[model.Appointment]{
		{"Cambiar estado", mw.showAppointmentTransitionDialog},
		{"Cancelar cita", func(a model.Appointment) {
			dialog.ShowConfirm(mw.tr("Cancelar cita"), mw.tr("¿Cancelar esta cita?"), func(ok bool) {
				if !ok {
					return
				}
				if _, err := mw.app.Appointments.Cancel(a.ID); err != nil {
					mw.showOpError(err)
					return
				}
				mw.refreshAll()
			}, mw.window)
		}},
	}
	return t.build()
}

var weekdayLabels = []string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

func (mw *MainWindow) buildSchedulesTab() fyne.CanvasObject {
	employeeName := optionLabeler(mw.app.Users.Options())

	t := newModuleTab(mw, "Horarios", &mw.app.Schedules.Module, []column[model.Schedule]{
		{"ID", 50, func(s model.Schedule) string { return strconv.Itoa(s.ID) }},
		{"Empleado", 200, func(s model.Schedule) string { return employeeName(s.EmployeeID) }},
		{"Día", 120, func(s model.Schedule) string { return mw.tr(weekdayLabels[int(s.Weekday)]) }},
		{"Inicio", 80, func(s model.Schedule) string { return s.Start }},
		{"Fin", 80, func(s model.Schedule) string { return s.End }},
		{"Estado", 100, func(s model.Schedule) string { return mw.activityLabel(s.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter()}
	t.label = func(s model.Schedule) string {
		return fmt.Sprintf("%s %s %s-%s", employeeName(s.EmployeeID), mw.tr(weekdayLabels[int(s.Weekday)]), s.Start, s.End)
	}
	t.onEdit = mw.showScheduleDialog
	t.extras = []extraAction[model.Schedule]{
		{"Activar/Desactivar", func(s model.Schedule) {
			if _, err := mw.app.Schedules.ToggleStatus(s.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildServicesTab() fyne.CanvasObject {
	categoryName := optionLabeler(mw.app.Categories.Options())

	t := newModuleTab(mw, "Servicios", &mw.app.Services.Module, []column[model.Service]{
		{"ID", 50, func(s model.Service) string { return strconv.Itoa(s.ID) }},
		{"Nombre", 180, func(s model.Service) string { return s.Name }},
		{"Precio", 100, func(s model.Service) string { return money(s.Price) }},
		{"Duración (min)", 110, func(s model.Service) string { return strconv.Itoa(s.Duration) }},
		{"Categoría", 140, func(s model.Service) string { return categoryName(s.CategoryID) }},
		{"Estado", 100, func(s model.Service) string { return mw.activityLabel(s.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter(), mw.categoryFilter()}
	t.label = func(s model.Service) string { return s.Name }
	t.onEdit = mw.showServiceDialog
	t.extras = []extraAction[model.Service]{
		{"Activar/Desactivar", func(s model.Service) {
			if _, err := mw.app.Services.ToggleStatus(s.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildCategoriesTab() fyne.CanvasObject {
	t := newModuleTab(mw, "Categorías", &mw.app.Categories.Module, []column[model.Category]{
		{"ID", 50, func(c model.Category) string { return strconv.Itoa(c.ID) }},
		{"Nombre", 180, func(c model.Category) string { return c.Name }},
		{"Descripción", 280, func(c model.Category) string { return c.Description }},
		{"Estado", 100, func(c model.Category) string { return mw.activityLabel(c.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter()}
	t.label = func(c model.Category) string { return c.Name }
	t.onEdit = mw.showCategoryDialog
	t.extras = []extraAction[model.Category]{
		{"Activar/Desactivar", func(c model.Category) {
			if _, err := mw.app.Categories.ToggleStatus(c.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildProductsTab() fyne.CanvasObject {
	categoryName := optionLabeler(mw.app.Categories.Options())

	t := newModuleTab(mw, "Productos", &mw.app.Products.Module, []column[model.Product]{
		{"ID", 50, func(p model.Product) string { return strconv.Itoa(p.ID) }},
		{"Nombre", 200, func(p model.Product) string { return p.Name }},
		{"Categoría", 140, func(p model.Product) string { return categoryName(p.CategoryID) }},
		{"Precio", 100, func(p model.Product) string { return money(p.Price) }},
		{"Stock", 80, func(p model.Product) string { return strconv.Itoa(p.Stock) }},
		{"Estado", 100, func(p model.Product) string { return mw.activityLabel(p.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter(), mw.categoryFilter()}
	t.label = func(p model.Product) string { return p.Name }
	t.onEdit = mw.showProductDialog
	t.extras = []extraAction[model.Product]{
		{"Activar/Desactivar", func(p model.Product) {
			if _, err := mw.app.Products.ToggleStatus(p.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildSalesTab() fyne.CanvasObject {
	clientName := optionLabeler(mw.app.Clients.Options())

	t := newModuleTab(mw, "Ventas", &mw.app.Sales.Module, []column[model.Sale]{
		{"Código", 90, func(s model.Sale) string { return s.Code }},
		{"Cliente", 200, func(s model.Sale) string { return clientName(s.ClientID) }},
		{"Fecha", 110, func(s model.Sale) string { return s.Date }},
		{"Pago", 110, func(s model.Sale) string { return s.PaymentMethod }},
		{"Total", 110, func(s model.Sale) string { return money(s.Total) }},
		{"Estado", 110, func(s model.Sale) string {
			if s.Status == model.SaleRefunded {
				return mw.tr("Reembolsada")
			}
			return mw.tr("Completada")
		}},
	})
	t.filters = []filterSpec{{
		field:  "status",
		labels: []string{mw.tr("Todas"), mw.tr("Completada"), mw.tr("Reembolsada")},
		values: []string{collection.FilterAll, string(model.SaleCompleted), string(model.SaleRefunded)},
	}}
	t.label = func(s model.Sale) string { return s.Code }
	t.onEdit = mw.showSaleDialog
	t.extras = []extraAction[model.Sale]{
		{"Reembolsar", func(s model.Sale) {
			dialog.ShowConfirm(mw.tr("Reembolsar"), fmt.Sprintf(mw.tr("¿Reembolsar la venta %s?"), s.Code), func(ok bool) {
				if !ok {
					return
				}
				if _, err := mw.app.Sales.Refund(s.ID); err != nil {
					mw.showOpError(err)
					return
				}
				mw.refreshAll()
			}, mw.window)
		}},
		{"Recibo PDF", mw.onExportReceipt},
	}
	return t.build()
}

func (mw *MainWindow) onExportReceipt(sale model.Sale) {
	receipt, err := mw.app.SaleReceipt(sale.ID)
	if err != nil {
		mw.showOpError(err)
		return
	}
	data, err := service.BuildReceipt(receipt)
	if err != nil {
		mw.showOpError(err)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write(data); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		mw.showNotification(mw.tr("Recibo exportado"))
	}, mw.window)
	saveDialog.SetFileName(fmt.Sprintf("recibo_%s.pdf", sale.Code))
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	saveDialog.Show()
}

func (mw *MainWindow) buildPurchasesTab() fyne.CanvasObject {
	supplierName := optionLabeler(mw.app.Suppliers.Options())

	t := newModuleTab(mw, "Compras", &mw.app.Purchases.Module, []column[model.Purchase]{
		{"Código", 90, func(p model.Purchase) string { return p.Code }},
		{"Proveedor", 200, func(p model.Purchase) string { return supplierName(p.SupplierID) }},
		{"Fecha", 110, func(p model.Purchase) string { return p.Date }},
		{"Total", 110, func(p model.Purchase) string { return money(p.Total) }},
		{"Estado", 110, func(p model.Purchase) string {
			if p.Status == model.PurchaseCancelled {
				return mw.tr("Cancelada")
			}
			return mw.tr("Aprobada")
		}},
	})
	t.filters = []filterSpec{{
		field:  "status",
		labels: []string{mw.tr("Todas"), mw.tr("Aprobada"), mw.tr("Cancelada")},
		values: []string{collection.FilterAll, string(model.PurchaseApproved), string(model.PurchaseCancelled)},
	}}
	t.label = func(p model.Purchase) string { return p.Code }
	t.onEdit = mw.showPurchaseDialog
	t.extras = []extraAction[model.Purchase]{
		{"Cancelar compra", func(p model.Purchase) {
			dialog.ShowConfirm(mw.tr("Cancelar compra"), fmt.Sprintf(mw.tr("¿Cancelar la compra %s?"), p.Code), func(ok bool) {
				if !ok {
					return
				}
				if _, err := mw.app.Purchases.Cancel(p.ID); err != nil {
					mw.showOpError(err)
					return
				}
				mw.refreshAll()
			}, mw.window)
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildSuppliersTab() fyne.CanvasObject {
	t := newModuleTab(mw, "Proveedores", &mw.app.Suppliers.Module, []column[model.Supplier]{
		{"ID", 50, func(s model.Supplier) string { return strconv.Itoa(s.ID) }},
		{"Nombre", 220, func(s model.Supplier) string { return s.Name }},
		{"Contacto", 180, func(s model.Supplier) string { return s.Contact }},
		{"Correo", 220, func(s model.Supplier) string { return s.Email }},
		{"Teléfono", 130, func(s model.Supplier) string { return s.Phone }},
		{"Estado", 100, func(s model.Supplier) string { return mw.activityLabel(s.Status) }},
	})
	t.filters = []filterSpec{mw.activityFilter()}
	t.label = func(s model.Supplier) string { return s.Name }
	t.onEdit = mw.showSupplierDialog
	t.extras = []extraAction[model.Supplier]{
		{"Activar/Desactivar", func(s model.Supplier) {
			if _, err := mw.app.Suppliers.ToggleStatus(s.ID); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		}},
	}
	return t.build()
}

func (mw *MainWindow) buildSuppliesTab() fyne.CanvasObject {
	t := newModuleTab(mw, "Insumos", &mw.app.Supplies.Module, []column[model.Supply]{
		{"ID", 50, func(s model.Supply) string { return strconv.Itoa(s.ID) }},
		{"Nombre", 220, func(s model.Supply) string { return s.Name }},
		{"Unidad", 100, func(s model.Supply) string { return s.Unit }},
		{"Stock", 90, func(s model.Supply) string { return fmt.Sprintf("%.1f", s.Stock) }},
		{"Mínimo", 90, func(s model.Supply) string { return fmt.Sprintf("%.1f", s.MinStock) }},
		{"Alerta", 100, func(s model.Supply) string {
			if s.LowStock() {
				return mw.tr("Stock bajo")
			}
			return ""
		}},
	})
	t.filters = []filterSpec{mw.activityFilter()}
	t.label = func(s model.Supply) string { return s.Name }
	t.onEdit = mw.showSupplyDialog
	t.extras = []extraAction[model.Supply]{
		{"Ajustar stock", mw.showStockAdjustDialog},
	}
	return t.build()
}

func (mw *MainWindow) deliveryStatusLabel(s model.DeliveryStatus) string {
	switch s {
	case model.DeliveryPending:
		return mw.tr("Pendiente")
	case model.DeliveryInTransit:
		return mw.tr("En tránsito")
	case model.DeliveryDelivered:
		return mw.tr("Entregada")
	case model.DeliveryCancelled:
		return mw.tr("Cancelada")
	}
	return string(s)
}

func (mw *MainWindow) buildDeliveriesTab() fyne.CanvasObject {
	supplierName := optionLabeler(mw.app.Suppliers.Options())
	supplyName := optionLabeler(mw.app.Supplies.Options())

	t := newModuleTab(mw, "Entregas", &mw.app.Deliveries.Module, []column[model.Delivery]{
		{"ID", 50, func(d model.Delivery) string { return strconv.Itoa(d.ID) }},
		{"Proveedor", 200, func(d model.Delivery) string { return supplierName(d.SupplierID) }},
		{"Insumo", 180, func(d model.Delivery) string { return supplyName(d.SupplyID) }},
		{"Cantidad", 90, func(d model.Delivery) string { return fmt.Sprintf("%.1f", d.Quantity) }},
		{"Fecha", 110, func(d model.Delivery) string { return d.ScheduledDate }},
		{"Estado", 110, func(d model.Delivery) string { return mw.deliveryStatusLabel(d.Status) }},
	})
	t.filters = []filterSpec{{
		field: "status",
		labels: []string{
			mw.tr("Todas"), mw.tr("Pendiente"), mw.tr("En tránsito"),
			mw.tr("Entregada"), mw.tr("Cancelada"),
		},
		values: []string{
			collection.FilterAll, string(model.DeliveryPending), string(model.DeliveryInTransit),
			string(model.DeliveryDelivered), string(model.DeliveryCancelled),
		},
	}}
	t.label = func(d model.Delivery) string {
		return fmt.Sprintf("%s - %s", d.ScheduledDate, supplyName(d.SupplyID))
	}
	t.onEdit = mw.showDeliveryDialog
	t.extras = []extraAction[model.Delivery]{
		{"Cambiar estado", mw.showDeliveryTransitionDialog},
	}
	return t.build()
}
