package view

import (
	"bytes"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"asthroapp/internal/service"
)

func (mw *MainWindow) periodLabel(p service.Period) string {
	switch p {
	case service.PeriodToday:
		return mw.tr("Hoy")
	case service.PeriodWeek:
		return mw.tr("Esta semana")
	case service.PeriodMonth:
		return mw.tr("Este mes")
	}
	return string(p)
}

// buildDashboardTab shows one period's stat bundle at a time. The
// period swap replaces every card at once so the numbers never mix
// two periods.
func (mw *MainWindow) buildDashboardTab() fyne.CanvasObject {
	periods := []service.Period{service.PeriodToday, service.PeriodWeek, service.PeriodMonth}
	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = mw.periodLabel(p)
	}

	appointments := widget.NewLabel("")
	completed := widget.NewLabel("")
	cancelled := widget.NewLabel("")
	newClients := widget.NewLabel("")
	revenue := widget.NewLabel("")
	shares := widget.NewLabel("")

	refresh := func() {
		stats := mw.app.Dashboard.Stats()
		appointments.SetText(fmt.Sprintf("%s: %d", mw.tr("Citas"), stats.Appointments))
		completed.SetText(fmt.Sprintf("%s: %d", mw.tr("Completadas"), stats.CompletedAppointments))
		cancelled.SetText(fmt.Sprintf("%s: %d", mw.tr("Canceladas"), stats.CancelledAppointments))
		newClients.SetText(fmt.Sprintf("%s: %d", mw.tr("Clientes nuevos"), stats.NewClients))
		revenue.SetText(fmt.Sprintf("%s: %s", mw.tr("Ingresos totales"), money(stats.TotalRevenue())))

		parts := ""
		for _, share := range mw.app.Dashboard.RevenueShares() {
			if parts != "" {
				parts += " | "
			}
			parts += fmt.Sprintf("%s %d%%", mw.tr(share.Label), share.Percent)
		}
		shares.SetText(parts)
	}

	periodSelect := widget.NewSelect(labels, func(label string) {
		for i, l := range labels {
			if l == label {
				mw.app.Dashboard.SetPeriod(periods[i])
				break
			}
		}
		refresh()
	})
	periodSelect.SetSelectedIndex(0)
	refresh()

	cards := container.NewVBox(
		widget.NewLabelWithStyle(mw.tr("Resumen"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		appointments,
		completed,
		cancelled,
		newClients,
		widget.NewSeparator(),
		revenue,
		shares,
	)

	top := container.NewHBox(widget.NewLabel(mw.tr("Período")), periodSelect)
	return container.NewBorder(top, nil, nil, nil, container.NewScroll(cards))
}

func (mw *MainWindow) onShowRevenueChart() {
	data, err := service.RenderRevenuePie(mw.app.Dashboard.RevenueShares())
	if err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	mw.showChartWindow(mw.tr("Ingresos por origen"), data)
}

func (mw *MainWindow) onShowAppointmentsChart() {
	data, err := service.RenderAppointmentsBar(mw.app.Dashboard.Stats())
	if err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	mw.showChartWindow(mw.tr("Citas del período"), data)
}

func (mw *MainWindow) showChartWindow(title string, png []byte) {
	img := canvas.NewImageFromReader(bytes.NewReader(png), "chart.png")
	img.FillMode = canvas.ImageFillOriginal

	w := mw.fyneApp.NewWindow(title)
	w.SetContent(container.NewScroll(img))
	w.Resize(fyne.NewSize(560, 560))
	w.Show()
}
