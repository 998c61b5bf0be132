package view

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"asthroapp/internal/collection"
	"asthroapp/internal/controller"
)

// column describes one table column of a module screen.
type column[T any] struct {
	title string
	width float32
	value func(T) string
}

// filterSpec is one dropdown over a descriptor filter field. Values
// and labels run in parallel; index 0 is always the "all" sentinel.
type filterSpec struct {
	field  string
	labels []string
	values []string
}

// extraAction is a toolbar button working on the selected record
// (status toggles, lifecycle steps, receipt export).
type extraAction[T any] struct {
	label string
	run   func(rec T)
}

// moduleTab renders one admin list screen: search entry, filter
// dropdowns, paged table and the toolbar of actions. All state lives
// in the controller's List; the tab only reads and refreshes.
type moduleTab[T any] struct {
	mw      *MainWindow
	title   string
	module  *controller.Module[T]
	columns []column[T]
	filters []filterSpec
	label   func(T) string
	onEdit  func(draft T, isNew bool)
	extras  []extraAction[T]

	rows     []T
	selected int
	table    *widget.Table
	pager    *fyne.Container
	counter  *widget.Label
}

func newModuleTab[T any](mw *MainWindow, title string, module *controller.Module[T], columns []column[T]) *moduleTab[T] {
	return &moduleTab[T]{
		mw:       mw,
		title:    title,
		module:   module,
		columns:  columns,
		selected: -1,
	}
}

func (t *moduleTab[T]) build() fyne.CanvasObject {
	t.table = t.buildTable()
	t.pager = container.NewHBox()
	t.counter = widget.NewLabel("")

	toolbar := t.buildToolbar()
	bottom := container.NewHBox(t.counter, layout.NewSpacer(), t.pager)

	t.refresh()
	t.mw.onRefresh(t.refresh)

	return container.NewBorder(toolbar, bottom, nil, nil, t.table)
}

func (t *moduleTab[T]) buildToolbar() fyne.CanvasObject {
	search := widget.NewEntry()
	search.SetPlaceHolder(t.mw.tr("Buscar..."))
	search.OnChanged = func(term string) {
		t.module.List().SetSearchTerm(term)
		t.refresh()
	}
	clearBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		search.SetText("")
	})
	clearBtn.Importance = widget.LowImportance
	searchBox := container.NewBorder(nil, nil, nil, clearBtn, search)

	items := []fyne.CanvasObject{}
	for _, spec := range t.filters {
		spec := spec
		sel := widget.NewSelect(spec.labels, func(label string) {
			for i, l := range spec.labels {
				if l == label {
					t.module.List().SetFilter(spec.field, spec.values[i])
					break
				}
			}
			t.refresh()
		})
		sel.SetSelectedIndex(0)
		items = append(items, sel)
	}

	if t.module.CanMutate() {
		addBtn := widget.NewButtonWithIcon(t.mw.tr("Agregar"), theme.ContentAddIcon(), func() {
			var draft T
			t.onEdit(draft, true)
		})
		addBtn.Importance = widget.HighImportance
		items = append(items, addBtn)

		items = append(items, widget.NewButton(t.mw.tr("Editar"), func() {
			t.withSelected(func(rec T) { t.onEdit(rec, false) })
		}))
		items = append(items, widget.NewButton(t.mw.tr("Eliminar"), func() {
			t.withSelected(t.confirmDelete)
		}))
		for _, action := range t.extras {
			action := action
			items = append(items, widget.NewButton(t.mw.tr(action.label), func() {
				t.withSelected(action.run)
			}))
		}
	}

	controls := container.NewHBox(items...)
	return container.NewBorder(nil, nil, nil, controls, searchBox)
}

func (t *moduleTab[T]) buildTable() *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return len(t.rows) + 1, len(t.columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(tci widget.TableCellID, co fyne.CanvasObject) {
			label := co.(*widget.Label)
			label.TextStyle.Bold = tci.Row == 0
			if tci.Row == 0 {
				label.SetText(t.mw.tr(t.columns[tci.Col].title))
				return
			}
			if tci.Row-1 < len(t.rows) {
				label.SetText(t.columns[tci.Col].value(t.rows[tci.Row-1]))
			}
		},
	)
	for i, col := range t.columns {
		table.SetColumnWidth(i, col.width)
	}
	table.OnSelected = func(id widget.TableCellID) {
		if id.Row > 0 {
			t.selected = id.Row - 1
		}
	}
	return table
}

// refresh re-reads the current page and rebuilds the pagination bar.
func (t *moduleTab[T]) refresh() {
	list := t.module.List()
	t.rows = list.Page()
	t.selected = -1
	t.table.UnselectAll()
	t.table.Refresh()

	current, total := list.CurrentPage(), list.TotalPages()
	t.counter.SetText(fmt.Sprintf(t.mw.tr("Página %d de %d"), current, total))

	t.pager.Objects = nil
	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		list.PrevPage()
		t.refresh()
	})
	if !collection.CanPrev(current) {
		prev.Disable()
	}
	t.pager.Add(prev)

	for _, page := range collection.Window(current, total) {
		page := page
		btn := widget.NewButton(fmt.Sprintf("%d", page), func() {
			list.SetPage(page)
			t.refresh()
		})
		if page == current {
			btn.Importance = widget.HighImportance
		}
		t.pager.Add(btn)
	}

	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		list.NextPage()
		t.refresh()
	})
	if !collection.CanNext(current, total) {
		next.Disable()
	}
	t.pager.Add(next)
	t.pager.Refresh()
}

func (t *moduleTab[T]) withSelected(fn func(rec T)) {
	if t.selected < 0 || t.selected >= len(t.rows) {
		dialog.ShowInformation(
			t.mw.tr("Selección requerida"),
			t.mw.tr("Seleccione un registro en la tabla"),
			t.mw.window,
		)
		return
	}
	fn(t.rows[t.selected])
}

// confirmDelete is the two-step gate: nothing is removed until the
// user confirms, and protected or terminal records still refuse at
// the data layer.
func (t *moduleTab[T]) confirmDelete(rec T) {
	text := fmt.Sprintf("%s\n%s", t.mw.tr("¿Eliminar este registro?"), t.label(rec))
	dialog.ShowConfirm(t.mw.tr("Confirmar eliminación"), text, func(confirmed bool) {
		if !confirmed {
			return
		}
		id := t.module.List().Collection().ID(rec)
		if err := t.module.Remove(id); err != nil {
			t.mw.showOpError(err)
			return
		}
		t.mw.refreshAll()
		t.mw.showNotification(t.mw.tr("Registro eliminado"))
	}, t.mw.window)
}

// showOpError translates the domain sentinels into user-facing text.
func (mw *MainWindow) showOpError(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, collection.ErrProtected):
		msg = mw.tr("El registro está protegido y no puede modificarse")
	case errors.Is(err, collection.ErrTerminal):
		msg = mw.tr("El registro está en un estado final")
	case errors.Is(err, collection.ErrTransition):
		msg = mw.tr("Cambio de estado no permitido")
	case errors.Is(err, collection.ErrNotFound):
		msg = mw.tr("Registro no encontrado")
	case errors.Is(err, controller.ErrDenied):
		msg = mw.tr("No tiene permisos para esta acción")
	case errors.Is(err, controller.ErrStock):
		msg = mw.tr("El stock no puede quedar negativo")
	}
	dialog.ShowError(errors.New(msg), mw.window)
}
