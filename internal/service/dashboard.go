package service

import "sort"

// Period selects one pre-baked statistic bundle.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Stats is one period bundle. Switching periods swaps the whole
// bundle at once; values from different periods are never blended.
type Stats struct {
	Appointments          int
	CompletedAppointments int
	CancelledAppointments int
	NewClients            int
	ServiceRevenue        float64
	ProductRevenue        float64
}

func (s Stats) TotalRevenue() float64 {
	return s.ServiceRevenue + s.ProductRevenue
}

// Dashboard holds the bundles and the selected period.
type Dashboard struct {
	bundles map[Period]Stats
	period  Period
}

func NewDashboard(bundles map[Period]Stats) *Dashboard {
	return &Dashboard{bundles: bundles, period: PeriodToday}
}

func (d *Dashboard) Period() Period { return d.period }

func (d *Dashboard) SetPeriod(p Period) {
	if _, ok := d.bundles[p]; ok {
		d.period = p
	}
}

func (d *Dashboard) Stats() Stats {
	return d.bundles[d.period]
}

// RevenueShares breaks current revenue into service vs product
// percentages for the chart.
func (d *Dashboard) RevenueShares() []Share {
	s := d.Stats()
	return Breakdown([]Share{
		{Label: "Servicios", Value: s.ServiceRevenue},
		{Label: "Productos", Value: s.ProductRevenue},
	})
}

// Share is one labeled slice of a breakdown.
type Share struct {
	Label   string
	Value   float64
	Percent int
}

// Breakdown fills Percent so the shares sum to exactly 100 (largest
// remainder method). A zero total yields all-zero percents.
func Breakdown(shares []Share) []Share {
	total := 0.0
	for _, s := range shares {
		total += s.Value
	}
	out := make([]Share, len(shares))
	copy(out, shares)
	if total <= 0 {
		for i := range out {
			out[i].Percent = 0
		}
		return out
	}

	type rem struct {
		idx  int
		frac float64
	}
	assigned := 0
	rems := make([]rem, 0, len(out))
	for i := range out {
		exact := out[i].Value / total * 100
		out[i].Percent = int(exact)
		assigned += out[i].Percent
		rems = append(rems, rem{idx: i, frac: exact - float64(out[i].Percent)})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; i < 100-assigned && i < len(rems); i++ {
		out[rems[i].idx].Percent++
	}
	return out
}
