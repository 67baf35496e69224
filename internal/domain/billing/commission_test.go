package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommission(t *testing.T) {
	assert.InDelta(t, 0.25, Commission(50), 1e-9)
	assert.InDelta(t, 0.5, Commission(100), 1e-9)
	assert.InDelta(t, 0, Commission(0), 1e-9)
}

func TestAggregateByCompany(t *testing.T) {
	rows := []ChargeRow{
		{AppointmentID: 1, CompanyID: 1, CompanyName: "Cut & Go", ServicePrice: 50, Status: "completed"},
		{AppointmentID: 2, CompanyID: 2, CompanyName: "Glow Spa", ServicePrice: 200, Status: "scheduled"},
		{AppointmentID: 3, CompanyID: 1, CompanyName: "Cut & Go", ServicePrice: 30, Status: "completed"},
	}

	companies := AggregateByCompany(rows)

	assert.Len(t, companies, 2)

	// Highest commission first: Glow Spa (1.00) ahead of Cut & Go (0.40).
	assert.Equal(t, uint(2), companies[0].CompanyID)
	assert.Equal(t, 1, companies[0].Appointments)
	assert.InDelta(t, 200, companies[0].Revenue, 1e-9)
	assert.InDelta(t, 1.0, companies[0].Commission, 1e-9)

	assert.Equal(t, uint(1), companies[1].CompanyID)
	assert.Equal(t, 2, companies[1].Appointments)
	assert.InDelta(t, 80, companies[1].Revenue, 1e-9)
	assert.InDelta(t, 0.4, companies[1].Commission, 1e-9)
}

func TestAggregateByCompanyEmpty(t *testing.T) {
	companies := AggregateByCompany(nil)
	assert.Empty(t, companies)
}

func TestSummarize(t *testing.T) {
	companies := []CompanyTotals{
		{CompanyID: 1, Appointments: 2, Revenue: 80, Commission: 0.4},
		{CompanyID: 2, Appointments: 1, Revenue: 200, Commission: 1.0},
	}

	summary := Summarize(companies)

	assert.Equal(t, 2, summary.Companies)
	assert.Equal(t, 3, summary.Appointments)
	assert.InDelta(t, 280, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 1.4, summary.TotalCommission, 1e-9)
	assert.InDelta(t, 0.5, summary.CommissionRatePercent, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Companies)
	assert.Equal(t, 0, summary.Appointments)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalCommission)
	assert.InDelta(t, 0.5, summary.CommissionRatePercent, 1e-9)
}
