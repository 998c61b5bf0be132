package view

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"asthroapp/internal/auth"
	"asthroapp/internal/collection"
	"asthroapp/internal/form"
	"asthroapp/internal/model"
)

// optionLabeler resolves a foreign id against a reference snapshot;
// unknown ids render as "#id" instead of failing.
func optionLabeler(opts []form.Option) func(id int) string {
	return func(id int) string {
		for _, o := range opts {
			if o.ID == id {
				return o.Label
			}
		}
		return fmt.Sprintf("#%d", id)
	}
}

// optionSelect builds a dropdown over a reference snapshot with the
// current id preselected.
func optionSelect(opts []form.Option, current int) *widget.Select {
	labels := make([]string, len(opts))
	selected := ""
	for i, o := range opts {
		labels[i] = o.Label
		if o.ID == current {
			selected = o.Label
		}
	}
	sel := widget.NewSelect(labels, nil)
	if selected != "" {
		sel.SetSelected(selected)
	}
	return sel
}

func selectedID(opts []form.Option, sel *widget.Select) int {
	for _, o := range opts {
		if o.Label == sel.Selected {
			return o.ID
		}
	}
	return 0
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// submitDelay mimics the processing pause of a remote commit.
const submitDelay = 600 * time.Millisecond

// runForm stages the draft, validates it and commits through the
// controller. Validation failures surface as one error dialog listing
// the offending fields; the record is only touched on a clean save.
func runForm[T any](mw *MainWindow, draft T, save func(T) error, checks ...form.Check[T]) {
	submit := form.Delayed(submitDelay, func(_ context.Context, staged T) error {
		return save(staged)
	})
	f := form.New(draft, func(staged T) error {
		return submit(context.Background(), staged)
	}, checks...)
	if err := f.Save(); err != nil {
		var fieldErrs form.FieldErrors
		if errors.As(err, &fieldErrs) {
			dialog.ShowError(errors.New(fieldErrs.Error()), mw.window)
			return
		}
		mw.showOpError(err)
		return
	}
	mw.refreshAll()
	mw.showNotification(mw.tr("Registro guardado"))
}

// saveFor picks the commit path of a staged draft.
func saveFor[T any](isNew bool, create, update func(T) (T, error)) func(T) error {
	if isNew {
		return func(draft T) error {
			_, err := create(draft)
			return err
		}
	}
	return func(draft T) error {
		_, err := update(draft)
		return err
	}
}

func (mw *MainWindow) showEntityDialog(title string, items []*widget.FormItem, onSubmit func()) {
	content := &widget.Form{Items: items}
	dialog.ShowCustomConfirm(
		title,
		mw.tr("Guardar"),
		mw.tr("Cancelar"),
		content,
		func(save bool) {
			if save {
				onSubmit()
			}
		},
		mw.window,
	)
}

func (mw *MainWindow) dialogTitle(isNew bool, addKey, editKey string) string {
	if isNew {
		return mw.tr(addKey)
	}
	return mw.tr(editKey)
}

func (mw *MainWindow) showUserDialog(draft model.User, isNew bool) {
	roleOpts := mw.app.Roles.Options()

	firstName := widget.NewEntry()
	firstName.SetText(draft.FirstName)
	lastName := widget.NewEntry()
	lastName.SetText(draft.LastName)
	email := widget.NewEntry()
	email.SetText(draft.Email)
	phone := widget.NewEntry()
	phone.SetText(draft.Phone)
	role := optionSelect(roleOpts, draft.RoleID)

	items := []*widget.FormItem{
		{Text: mw.tr("Nombres"), Widget: firstName},
		{Text: mw.tr("Apellidos"), Widget: lastName},
		{Text: mw.tr("Correo"), Widget: email},
		{Text: mw.tr("Teléfono"), Widget: phone},
		{Text: mw.tr("Rol"), Widget: role},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar usuario", "Editar usuario"), items, func() {
		draft.FirstName = firstName.Text
		draft.LastName = lastName.Text
		draft.Email = email.Text
		draft.Phone = phone.Text
		draft.RoleID = selectedID(roleOpts, role)

		save := saveFor(isNew, mw.app.Users.Create, mw.app.Users.Update)
		runForm(mw, draft, save,
			form.RefCheck("role_id", roleOpts, func(u model.User) int { return u.RoleID }))
	})
}

func (mw *MainWindow) showRoleDialog(draft model.Role, isNew bool) {
	name := widget.NewEntry()
	name.SetText(draft.Name)
	description := widget.NewEntry()
	description.SetText(draft.Description)

	permChecks := map[string]*widget.Check{}
	permBox := container.NewVBox()
	items := []*widget.FormItem{
		{Text: mw.tr("Nombre"), Widget: name},
		{Text: mw.tr("Descripción"), Widget: description},
	}
	granted := map[string]bool{}
	for _, p := range draft.Permissions {
		granted[p] = true
	}
	for _, entry := range auth.Menu() {
		check := widget.NewCheck(mw.tr(entry.Label), nil)
		check.SetChecked(granted[entry.Permission])
		permChecks[entry.Permission] = check
		permBox.Add(check)
	}
	items = append(items, &widget.FormItem{Text: mw.tr("Permisos"), Widget: container.NewScroll(permBox)})

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar rol", "Editar rol"), items, func() {
		draft.Name = name.Text
		draft.Description = description.Text
		draft.Permissions = nil
		for _, entry := range auth.Menu() {
			if permChecks[entry.Permission].Checked {
				draft.Permissions = append(draft.Permissions, entry.Permission)
			}
		}

		save := saveFor(isNew, mw.app.Roles.Create, mw.app.Roles.Update)
		runForm(mw, draft, save)
	})
}

func (mw *MainWindow) showClientDialog(draft model.Client, isNew bool) {
	firstName := widget.NewEntry()
	firstName.SetText(draft.FirstName)
	lastName := widget.NewEntry()
	lastName.SetText(draft.LastName)
	document := widget.NewEntry()
	document.SetText(draft.DocumentID)
	email := widget.NewEntry()
	email.SetText(draft.Email)
	phone := widget.NewEntry()
	phone.SetText(draft.Phone)

	items := []*widget.FormItem{
		{Text: mw.tr("Nombres"), Widget: firstName},
		{Text: mw.tr("Apellidos"), Widget: lastName},
		{Text: mw.tr("Documento"), Widget: document},
		{Text: mw.tr("Correo"), Widget: email},
		{Text: mw.tr("Teléfono"), Widget: phone},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar cliente", "Editar cliente"), items, func() {
		draft.FirstName = firstName.Text
		draft.LastName = lastName.Text
		draft.DocumentID = document.Text
		draft.Email = email.Text
		draft.Phone = phone.Text

		save := saveFor(isNew, mw.app.Clients.Create, mw.app.Clients.Update)
		runForm(mw, draft, save)
	})
}

func (mw *MainWindow) showAppointmentDialog(draft model.Appointment, isNew bool) {
	clientOpts := mw.app.Clients.Options()
	employeeOpts := mw.app.Users.Options()
	serviceOpts := mw.app.Services.Options()

	client := optionSelect(clientOpts, draft.ClientID)
	employee := optionSelect(employeeOpts, draft.EmployeeID)
	svc := optionSelect(serviceOpts, draft.ServiceID)
	date := widget.NewEntry()
	date.SetPlaceHolder("2006-01-02")
	date.SetText(draft.Date)
	slot := widget.NewEntry()
	slot.SetPlaceHolder("HH:MM")
	slot.SetText(draft.Time)
	notes := widget.NewMultiLineEntry()
	notes.SetText(draft.Notes)

	items := []*widget.FormItem{
		{Text: mw.tr("Cliente"), Widget: client},
		{Text: mw.tr("Empleado"), Widget: employee},
		{Text: mw.tr("Servicio"), Widget: svc},
		{Text: mw.tr("Fecha"), Widget: date},
		{Text: mw.tr("Hora"), Widget: slot},
		{Text: mw.tr("Notas"), Widget: notes},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agendar cita", "Editar cita"), items, func() {
		draft.ClientID = selectedID(clientOpts, client)
		draft.EmployeeID = selectedID(employeeOpts, employee)
		draft.ServiceID = selectedID(serviceOpts, svc)
		draft.Date = date.Text
		draft.Time = slot.Text
		draft.Notes = notes.Text

		save := saveFor(isNew, mw.app.Appointments.Create, mw.app.Appointments.Update)
		runForm(mw, draft, save, mw.app.BookingChecks()...)
	})
}

func (mw *MainWindow) showAppointmentTransitionDialog(appt model.Appointment) {
	next := appt.Status.Next()
	if len(next) == 0 {
		mw.showOpError(collection.ErrTerminal)
		return
	}
	labels := make([]string, len(next))
	for i, s := range next {
		labels[i] = mw.appointmentStatusLabel(s)
	}
	sel := widget.NewSelect(labels, nil)
	sel.SetSelectedIndex(0)

	dialog.ShowCustomConfirm(
		mw.tr("Cambiar estado"),
		mw.tr("Aplicar"),
		mw.tr("Cancelar"),
		sel,
		func(apply bool) {
			if !apply || sel.SelectedIndex() < 0 {
				return
			}
			if _, err := mw.app.Appointments.Transition(appt.ID, next[sel.SelectedIndex()]); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		},
		mw.window,
	)
}

func (mw *MainWindow) showScheduleDialog(draft model.Schedule, isNew bool) {
	employeeOpts := mw.app.Users.Options()

	employee := optionSelect(employeeOpts, draft.EmployeeID)
	dayLabels := make([]string, len(weekdayLabels))
	for i, d := range weekdayLabels {
		dayLabels[i] = mw.tr(d)
	}
	day := widget.NewSelect(dayLabels, nil)
	day.SetSelectedIndex(int(draft.Weekday))
	start := widget.NewEntry()
	start.SetPlaceHolder("HH:MM")
	start.SetText(draft.Start)
	end := widget.NewEntry()
	end.SetPlaceHolder("HH:MM")
	end.SetText(draft.End)

	items := []*widget.FormItem{
		{Text: mw.tr("Empleado"), Widget: employee},
		{Text: mw.tr("Día"), Widget: day},
		{Text: mw.tr("Inicio"), Widget: start},
		{Text: mw.tr("Fin"), Widget: end},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar horario", "Editar horario"), items, func() {
		draft.EmployeeID = selectedID(employeeOpts, employee)
		draft.Weekday = time.Weekday(day.SelectedIndex())
		draft.Start = start.Text
		draft.End = end.Text

		save := saveFor(isNew, mw.app.Schedules.Create, mw.app.Schedules.Update)
		runForm(mw, draft, save, scheduleWindowCheck)
	})
}

// scheduleWindowCheck refuses windows that end before they start.
func scheduleWindowCheck(draft model.Schedule, errs form.FieldErrors) {
	start, err1 := time.Parse("15:04", draft.Start)
	end, err2 := time.Parse("15:04", draft.End)
	if err1 != nil || err2 != nil {
		return // timeslot tags flag these already
	}
	if !end.After(start) {
		errs["end"] = "must be after start"
	}
}

func (mw *MainWindow) showServiceDialog(draft model.Service, isNew bool) {
	categoryOpts := mw.app.Categories.Options()

	name := widget.NewEntry()
	name.SetText(draft.Name)
	description := widget.NewEntry()
	description.SetText(draft.Description)
	price := widget.NewEntry()
	duration := widget.NewEntry()
	if !isNew {
		price.SetText(fmt.Sprintf("%.0f", draft.Price))
		duration.SetText(strconv.Itoa(draft.Duration))
	}
	category := optionSelect(categoryOpts, draft.CategoryID)

	items := []*widget.FormItem{
		{Text: mw.tr("Nombre"), Widget: name},
		{Text: mw.tr("Descripción"), Widget: description},
		{Text: mw.tr("Precio"), Widget: price},
		{Text: mw.tr("Duración (min)"), Widget: duration},
		{Text: mw.tr("Categoría"), Widget: category},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar servicio", "Editar servicio"), items, func() {
		draft.Name = name.Text
		draft.Description = description.Text
		draft.Price = parseFloat(price.Text)
		draft.Duration = parseInt(duration.Text)
		draft.CategoryID = selectedID(categoryOpts, category)

		save := saveFor(isNew, mw.app.Services.Create, mw.app.Services.Update)
		runForm(mw, draft, save)
	})
}

func (mw *MainWindow) showCategoryDialog(draft model.Category, isNew bool) {
	name := widget.NewEntry()
	name.SetText(draft.Name)
	description := widget.NewEntry()
	description.SetText(draft.Description)

	items := []*widget.FormItem{
		{Text: mw.tr("Nombre"), Widget: name},
		{Text: mw.tr("Descripción"), Widget: description},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar categoría", "Editar categoría"), items, func() {
		draft.Name = name.Text
		draft.Description = description.Text

		save := saveFor(isNew, mw.app.Categories.Create, mw.app.Categories.Update)
		runForm(mw, draft, save)
	})
}

func (mw *MainWindow) showProductDialog(draft model.Product, isNew bool) {
	categoryOpts := mw.app.Categories.Options()

	name := widget.NewEntry()
	name.SetText(draft.Name)
	category := optionSelect(categoryOpts, draft.CategoryID)
	price := widget.NewEntry()
	stock := widget.NewEntry()
	if !isNew {
		price.SetText(fmt.Sprintf("%.0f", draft.Price))
		stock.SetText(strconv.Itoa(draft.Stock))
	}

	items := []*widget.FormItem{
		{Text: mw.tr("Nombre"), Widget: name},
		{Text: mw.tr("Categoría"), Widget: category},
		{Text: mw.tr("Precio"), Widget: price},
		{Text: mw.tr("Stock"), Widget: stock},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar producto", "Editar producto"), items, func() {
		draft.Name = name.Text
		draft.CategoryID = selectedID(categoryOpts, category)
		draft.Price = parseFloat(price.Text)
		draft.Stock = parseInt(stock.Text)

		save := saveFor(isNew, mw.app.Products.Create, mw.app.Products.Update)
		runForm(mw, draft, save,
			form.RefCheck("category_id", categoryOpts, func(p model.Product) int { return p.CategoryID }))
	})
}

func (mw *MainWindow) showSaleDialog(draft model.Sale, isNew bool) {
	clientOpts := mw.app.Clients.Options()
	serviceOpts := mw.app.Services.Options()

	client := optionSelect(clientOpts, draft.ClientID)
	var item model.SaleItem
	if len(draft.Items) > 0 {
		item = draft.Items[0]
	}
	svc := optionSelect(serviceOpts, item.ServiceID)
	quantity := widget.NewEntry()
	unitPrice := widget.NewEntry()
	if !isNew {
		quantity.SetText(strconv.Itoa(item.Quantity))
		unitPrice.SetText(fmt.Sprintf("%.0f", item.UnitPrice))
	}
	payment := widget.NewSelect([]string{"efectivo", "tarjeta", "transferencia"}, nil)
	if draft.PaymentMethod != "" {
		payment.SetSelected(draft.PaymentMethod)
	}
	date := widget.NewEntry()
	date.SetPlaceHolder("2006-01-02")
	date.SetText(draft.Date)

	items := []*widget.FormItem{
		{Text: mw.tr("Cliente"), Widget: client},
		{Text: mw.tr("Servicio"), Widget: svc},
		{Text: mw.tr("Cantidad"), Widget: quantity},
		{Text: mw.tr("Precio unitario"), Widget: unitPrice},
		{Text: mw.tr("Método de pago"), Widget: payment},
		{Text: mw.tr("Fecha"), Widget: date},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Registrar venta", "Editar venta"), items, func() {
		draft.ClientID = selectedID(clientOpts, client)
		draft.Items = []model.SaleItem{{
			ServiceID: selectedID(serviceOpts, svc),
			Quantity:  parseInt(quantity.Text),
			UnitPrice: parseFloat(unitPrice.Text),
		}}
		draft.PaymentMethod = payment.Selected
		draft.Date = date.Text

		save := saveFor(isNew, mw.app.Sales.Create, mw.app.Sales.Update)
		runForm(mw, draft, save,
			form.RefCheck("client_id", clientOpts, func(s model.Sale) int { return s.ClientID }))
	})
}

func (mw *MainWindow) showPurchaseDialog(draft model.Purchase, isNew bool) {
	supplierOpts := mw.app.Suppliers.Options()
	supplyOpts := mw.app.Supplies.Options()

	supplier := optionSelect(supplierOpts, draft.SupplierID)
	var item model.PurchaseItem
	if len(draft.Items) > 0 {
		item = draft.Items[0]
	}
	supply := optionSelect(supplyOpts, item.SupplyID)
	quantity := widget.NewEntry()
	unitCost := widget.NewEntry()
	if !isNew {
		quantity.SetText(strconv.Itoa(item.Quantity))
		unitCost.SetText(fmt.Sprintf("%.0f", item.UnitCost))
	}
	date := widget.NewEntry()
	date.SetPlaceHolder("2006-01-02")
	date.SetText(draft.Date)

	items := []*widget.FormItem{
		{Text: mw.tr("Proveedor"), Widget: supplier},
		{Text: mw.tr("Insumo"), Widget: supply},
		{Text: mw.tr("Cantidad"), Widget: quantity},
		{Text: mw.tr("Costo unitario"), Widget: unitCost},
		{Text: mw.tr("Fecha"), Widget: date},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Registrar compra", "Editar compra"), items, func() {
		draft.SupplierID = selectedID(supplierOpts, supplier)
		draft.Items = []model.PurchaseItem{{
			SupplyID: selectedID(supplyOpts, supply),
			Quantity: parseInt(quantity.Text),
			UnitCost: parseFloat(unitCost.Text),
		}}
		draft.Date = date.Text

		save := saveFor(isNew, mw.app.Purchases.Create, mw.app.Purchases.Update)
		runForm(mw, draft, save,
			form.RefCheck("supplier_id", supplierOpts, func(p model.Purchase) int { return p.SupplierID }))
	})
}

func (mw *MainWindow) showSupplierDialog(draft model.Supplier, isNew bool) {
	name := widget.NewEntry()
	name.SetText(draft.Name)
	contact := widget.NewEntry()
	contact.SetText(draft.Contact)
	email := widget.NewEntry()
	email.SetText(draft.Email)
	phone := widget.NewEntry()
	phone.SetText(draft.Phone)

	items := []*widget.FormItem{
		{Text: mw.tr("Nombre"), Widget: name},
		{Text: mw.tr("Contacto"), Widget: contact},
		{Text: mw.tr("Correo"), Widget: email},
		{Text: mw.tr("Teléfono"), Widget: phone},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar proveedor", "Editar proveedor"), items, func() {
		draft.Name = name.Text
		draft.Contact = contact.Text
		draft.Email = email.Text
		draft.Phone = phone.Text

		save := saveFor(isNew, mw.app.Suppliers.Create, mw.app.Suppliers.Update)
		runForm(mw, draft, save)
	})
}

func (mw *MainWindow) showSupplyDialog(draft model.Supply, isNew bool) {
	name := widget.NewEntry()
	name.SetText(draft.Name)
	unit := widget.NewEntry()
	unit.SetText(draft.Unit)
	stock := widget.NewEntry()
	minStock := widget.NewEntry()
	if !isNew {
		stock.SetText(fmt.Sprintf("%.1f", draft.Stock))
		minStock.SetText(fmt.Sprintf("%.1f", draft.MinStock))
	}

	items := []*widget.FormItem{
		{Text: mw.tr("Nombre"), Widget: name},
		{Text: mw.tr("Unidad"), Widget: unit},
		{Text: mw.tr("Stock"), Widget: stock},
		{Text: mw.tr("Stock mínimo"), Widget: minStock},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Agregar insumo", "Editar insumo"), items, func() {
		draft.Name = name.Text
		draft.Unit = unit.Text
		draft.Stock = parseFloat(stock.Text)
		draft.MinStock = parseFloat(minStock.Text)

		save := saveFor(isNew, mw.app.Supplies.Create, mw.app.Supplies.Update)
		runForm(mw, draft, save)
	})
}

func (mw *MainWindow) showStockAdjustDialog(supply model.Supply) {
	delta := widget.NewEntry()
	delta.SetPlaceHolder(mw.tr("Cantidad (negativa para descontar)"))

	dialog.ShowCustomConfirm(
		fmt.Sprintf("%s: %s", mw.tr("Ajustar stock"), supply.Name),
		mw.tr("Aplicar"),
		mw.tr("Cancelar"),
		delta,
		func(apply bool) {
			if !apply {
				return
			}
			if _, err := mw.app.Supplies.AdjustStock(supply.ID, parseFloat(delta.Text)); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		},
		mw.window,
	)
}

func (mw *MainWindow) showDeliveryDialog(draft model.Delivery, isNew bool) {
	supplierOpts := mw.app.Suppliers.Options()
	supplyOpts := mw.app.Supplies.Options()

	supplier := optionSelect(supplierOpts, draft.SupplierID)
	supply := optionSelect(supplyOpts, draft.SupplyID)
	quantity := widget.NewEntry()
	if !isNew {
		quantity.SetText(fmt.Sprintf("%.1f", draft.Quantity))
	}
	date := widget.NewEntry()
	date.SetPlaceHolder("2006-01-02")
	date.SetText(draft.ScheduledDate)

	items := []*widget.FormItem{
		{Text: mw.tr("Proveedor"), Widget: supplier},
		{Text: mw.tr("Insumo"), Widget: supply},
		{Text: mw.tr("Cantidad"), Widget: quantity},
		{Text: mw.tr("Fecha programada"), Widget: date},
	}

	mw.showEntityDialog(mw.dialogTitle(isNew, "Programar entrega", "Editar entrega"), items, func() {
		draft.SupplierID = selectedID(supplierOpts, supplier)
		draft.SupplyID = selectedID(supplyOpts, supply)
		draft.Quantity = parseFloat(quantity.Text)
		draft.ScheduledDate = date.Text

		save := saveFor(isNew, mw.app.Deliveries.Create, mw.app.Deliveries.Update)
		runForm(mw, draft, save,
			form.RefCheck("supply_id", supplyOpts, func(d model.Delivery) int { return d.SupplyID }))
	})
}

func (mw *MainWindow) showDeliveryTransitionDialog(delivery model.Delivery) {
	next := delivery.Status.Next()
	if len(next) == 0 {
		mw.showOpError(collection.ErrTerminal)
		return
	}
	labels := make([]string, len(next))
	for i, s := range next {
		labels[i] = mw.deliveryStatusLabel(s)
	}
	sel := widget.NewSelect(labels, nil)
	sel.SetSelectedIndex(0)

	dialog.ShowCustomConfirm(
		mw.tr("Cambiar estado"),
		mw.tr("Aplicar"),
		mw.tr("Cancelar"),
		sel,
		func(apply bool) {
			if !apply || sel.SelectedIndex() < 0 {
				return
			}
			if _, err := mw.app.Deliveries.Transition(delivery.ID, next[sel.SelectedIndex()]); err != nil {
				mw.showOpError(err)
				return
			}
			mw.refreshAll()
		},
		mw.window,
	)
}
