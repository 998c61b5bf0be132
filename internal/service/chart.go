package service

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderRevenuePie renders a revenue breakdown as a PNG pie chart.
func RenderRevenuePie(shares []Share) ([]byte, error) {
	values := make([]chart.Value, 0, len(shares))
	for _, s := range shares {
		values = append(values, chart.Value{
			Label: s.Label,
			Value: s.Value,
		})
	}

	graph := chart.PieChart{
		Title:  "Ingresos por tipo",
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderAppointmentsBar renders appointment counts per status.
func RenderAppointmentsBar(stats Stats) ([]byte, error) {
	graph := chart.BarChart{
		Title: "Citas del periodo",
		Background: chart.Style{
			Padding: chart.Box{
				Top: 40,
			},
		},
		Height:   400,
		BarWidth: 60,
		Bars: []chart.Value{
			{Label: "Totales", Value: float64(stats.Appointments)},
			{Label: "Completadas", Value: float64(stats.CompletedAppointments)},
			{Label: "Canceladas", Value: float64(stats.CancelledAppointments)},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
