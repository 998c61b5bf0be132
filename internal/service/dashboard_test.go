package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundles() map[Period]Stats {
	return map[Period]Stats{
		PeriodToday: {Appointments: 8, CompletedAppointments: 5, ServiceRevenue: 350000, ProductRevenue: 120000},
		PeriodWeek:  {Appointments: 42, CompletedAppointments: 30, ServiceRevenue: 2100000, ProductRevenue: 800000},
		PeriodMonth: {Appointments: 160, CompletedAppointments: 120, ServiceRevenue: 8600000, ProductRevenue: 3100000},
	}
}

func TestPeriodSwapsBundleAtomically(t *testing.T) {
	d := NewDashboard(testBundles())
	require.Equal(t, PeriodToday, d.Period())
	assert.Equal(t, 8, d.Stats().Appointments)

	d.SetPeriod(PeriodMonth)
	got := d.Stats()
	assert.Equal(t, 160, got.Appointments)
	assert.Equal(t, 8600000.0, got.ServiceRevenue)
	assert.Equal(t, 3100000.0, got.ProductRevenue)
}

func TestUnknownPeriodIgnored(t *testing.T) {
	d := NewDashboard(testBundles())
	d.SetPeriod(Period("decade"))
	assert.Equal(t, PeriodToday, d.Period())
}

func TestBreakdownSumsToHundred(t *testing.T) {
	cases := [][]Share{
		{{Label: "a", Value: 1}, {Label: "b", Value: 1}, {Label: "c", Value: 1}},
		{{Label: "a", Value: 350000}, {Label: "b", Value: 120000}},
		{{Label: "a", Value: 1}, {Label: "b", Value: 2}, {Label: "c", Value: 4}},
		{{Label: "solo", Value: 42}},
	}
	for _, shares := range cases {
		out := Breakdown(shares)
		sum := 0
		for _, s := range out {
			sum += s.Percent
		}
		assert.Equal(t, 100, sum, "shares %v", shares)
	}
}

func TestBreakdownZeroTotal(t *testing.T) {
	out := Breakdown([]Share{{Label: "a"}, {Label: "b"}})
	for _, s := range out {
		assert.Zero(t, s.Percent)
	}
}

func TestRevenueShares(t *testing.T) {
	d := NewDashboard(testBundles())
	shares := d.RevenueShares()
	require.Len(t, shares, 2)
	assert.Equal(t, 74, shares[0].Percent) // 350000 / 470000
	assert.Equal(t, 26, shares[1].Percent)
}
