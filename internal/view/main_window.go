package view

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"asthroapp/internal/auth"
	"asthroapp/internal/controller"
	"asthroapp/pkg/config"
	"asthroapp/pkg/localization"
)

// MainWindow is the shell: menu, category tabs and the status bar.
// Each module screen registers a refresh hook so a mutation in one
// tab is visible everywhere.
type MainWindow struct {
	fyneApp fyne.App
	window  fyne.Window
	app     *controller.App
	locale  *localization.Locale
	cfg     *config.AppConfig

	localesDir string
	tabs       *container.AppTabs
	statusBar  *widget.Label
	refreshers []func()
}

func NewMainWindow(fyneApp fyne.App, app *controller.App, locale *localization.Locale, cfg *config.AppConfig, localesDir string) *MainWindow {
	w := fyneApp.NewWindow(locale.Translate("AsthroApp - Administración"))
	return &MainWindow{
		fyneApp:    fyneApp,
		window:     w,
		app:        app,
		locale:     locale,
		cfg:        cfg,
		localesDir: localesDir,
	}
}

func (mw *MainWindow) tr(key string) string {
	return mw.locale.Translate(key)
}

// onRefresh registers a hook run after every mutation.
func (mw *MainWindow) onRefresh(fn func()) {
	mw.refreshers = append(mw.refreshers, fn)
}

func (mw *MainWindow) refreshAll() {
	for _, fn := range mw.refreshers {
		fn()
	}
	mw.updateStatusBar()
}

func (mw *MainWindow) Show() {
	mw.window.SetMainMenu(mw.setupMenu())
	mw.statusBar = widget.NewLabel("")

	mw.tabs = mw.buildCategoryTabs()
	mw.updateStatusBar()

	content := container.NewBorder(nil, mw.statusBar, nil, nil, mw.tabs)
	mw.window.SetContent(content)
	mw.window.Resize(fyne.NewSize(float32(mw.cfg.WindowSize.Width), float32(mw.cfg.WindowSize.Height)))
	mw.window.ShowAndRun()
}

// buildCategoryTabs lays the menu configuration out as two tab
// levels: outer categories, inner module screens. Entries the
// capabilities hide never get a tab at all.
func (mw *MainWindow) buildCategoryTabs() *container.AppTabs {
	visible := auth.MenuFor(mw.app.Caps)
	byCategory := map[string][]auth.MenuEntry{}
	for _, entry := range visible {
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}

	outer := container.NewAppTabs()
	for _, category := range auth.Categories() {
		entries, ok := byCategory[category]
		if !ok {
			continue
		}
		inner := container.NewAppTabs()
		for _, entry := range entries {
			content := mw.buildModuleContent(entry.ID)
			if content == nil {
				continue
			}
			inner.Append(container.NewTabItem(mw.tr(entry.Label), content))
		}
		outer.Append(container.NewTabItem(mw.tr(category), inner))
	}
	return outer
}

func (mw *MainWindow) buildModuleContent(id string) fyne.CanvasObject {
	switch id {
	case "dashboard":
		return mw.buildDashboardTab()
	case "users":
		return mw.buildUsersTab()
	case "roles":
		return mw.buildRolesTab()
	case "clients":
		return mw.buildClientsTab()
	case "appointments":
		return mw.buildAppointmentsTab()
	case "schedules":
		return mw.buildSchedulesTab()
	case "services":
		return mw.buildServicesTab()
	case "categories":
		return mw.buildCategoriesTab()
	case "products":
		return mw.buildProductsTab()
	case "sales":
		return mw.buildSalesTab()
	case "purchases":
		return mw.buildPurchasesTab()
	case "suppliers":
		return mw.buildSuppliersTab()
	case "supplies":
		return mw.buildSuppliesTab()
	case "deliveries":
		return mw.buildDeliveriesTab()
	}
	return nil
}

func (mw *MainWindow) setupMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu(mw.tr("Archivo"),
		fyne.NewMenuItem(mw.tr("Exportar clientes (CSV)"), mw.onExportClients),
		fyne.NewMenuItem(mw.tr("Importar clientes (CSV)"), mw.onImportClients),
		fyne.NewMenuItem(mw.tr("Salir"), func() {
			mw.checkUnsavedChanges(func() {
				mw.fyneApp.Quit()
			})
		}),
	)

	viewMenu := fyne.NewMenu(mw.tr("Ver"),
		fyne.NewMenuItem(mw.tr("Gráfico de ingresos"), mw.onShowRevenueChart),
		fyne.NewMenuItem(mw.tr("Gráfico de citas"), mw.onShowAppointmentsChart),
	)

	langMenu := fyne.NewMenu(mw.tr("Idioma"),
		fyne.NewMenuItem("Español", func() { mw.changeLanguage("es") }),
		fyne.NewMenuItem("English", func() { mw.changeLanguage("en") }),
	)

	helpMenu := fyne.NewMenu(mw.tr("Ayuda"),
		fyne.NewMenuItem(mw.tr("Acerca de"), mw.aboutDialog),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu, langMenu, helpMenu)
}

func (mw *MainWindow) checkUnsavedChanges(callback func()) {
	if !mw.app.Workspace.Unsaved {
		callback()
		return
	}
	dialog.ShowConfirm(
		mw.tr("Cambios sin guardar"),
		mw.tr("Hay cambios sin guardar. ¿Salir de todos modos?"),
		func(quit bool) {
			if quit {
				callback()
			}
		},
		mw.window,
	)
}

func (mw *MainWindow) changeLanguage(lang string) {
	if err := mw.locale.SetLanguage(lang, mw.localesDir); err != nil {
		mw.app.Log.Error().Err(err).Str("lang", lang).Msg("language switch failed")
		return
	}
	mw.cfg.Language = lang
	if err := config.SaveConfig(mw.cfg); err != nil {
		mw.app.Log.Error().Err(err).Msg("config save failed")
	}

	// rebuild the whole shell so every label picks the new table up
	mw.refreshers = nil
	mw.window.SetMainMenu(mw.setupMenu())
	mw.tabs = mw.buildCategoryTabs()
	content := container.NewBorder(nil, mw.statusBar, nil, nil, mw.tabs)
	mw.window.SetContent(content)
	mw.window.SetTitle(mw.tr("AsthroApp - Administración"))
	mw.updateStatusBar()
}

func (mw *MainWindow) aboutDialog() {
	text := fmt.Sprintf("%s\n%s 1.0.0\n© 2026",
		mw.tr("AsthroApp - Gestión de salón de belleza"),
		mw.tr("Versión"))
	dialog.ShowCustom(
		mw.tr("Acerca de"),
		mw.tr("Cerrar"),
		container.NewVBox(widget.NewLabel(text)),
		mw.window,
	)
}

func (mw *MainWindow) updateStatusBar() {
	if mw.statusBar == nil {
		return
	}
	state := mw.tr("Sin cambios")
	if mw.app.Workspace.Unsaved {
		state = mw.tr("Cambios sin guardar")
	}
	mw.statusBar.SetText(fmt.Sprintf("%s | %s", mw.app.Workspace.ID, state))
}

func (mw *MainWindow) showNotification(message string) {
	mw.fyneApp.SendNotification(fyne.NewNotification(mw.tr("AsthroApp"), message))
}

func (mw *MainWindow) onExportClients() {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		path := uriToPath(writer.URI())
		if !strings.HasSuffix(strings.ToLower(path), ".csv") {
			path += ".csv"
		}
		if err := mw.app.Clients.ExportCSV(path); err != nil {
			mw.showOpError(err)
			return
		}
		mw.showNotification(mw.tr("Clientes exportados"))
	}, mw.window)
	saveDialog.SetFileName("clientes.csv")
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	saveDialog.Show()
}

func (mw *MainWindow) onImportClients() {
	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		count, err := mw.app.Clients.ImportCSV(uriToPath(reader.URI()))
		if err != nil {
			mw.showOpError(err)
			return
		}
		mw.refreshAll()
		mw.showNotification(fmt.Sprintf(mw.tr("%d clientes importados"), count))
	}, mw.window)
	openDialog.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	openDialog.Show()
}

func uriToPath(uri fyne.URI) string {
	if uri == nil {
		return ""
	}
	if uri.Scheme() == "file" {
		return filepath.FromSlash(strings.TrimPrefix(uri.String(), "file://"))
	}
	return uri.String()
}
