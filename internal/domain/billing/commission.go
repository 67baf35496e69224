package billing

import "sort"

// CommissionRate is the platform's fixed cut of each billable
// appointment's service price: 0.5%.
const CommissionRate = 0.005

// Commission for a single appointment. Never rounded here; rounding is
// a presentation concern.
func Commission(servicePrice float64) float64 {
	return servicePrice * CommissionRate
}

// ChargeRow is one billable appointment joined with its service price.
// Billable statuses are completed and scheduled.
type ChargeRow struct {
	AppointmentID uint    `json:"appointment_id"`
	CompanyID     uint    `json:"company_id"`
	CompanyName   string  `json:"company_name"`
	ServiceName   string  `json:"service_name"`
	ServicePrice  float64 `json:"service_price"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
}

type CompanyTotals struct {
	CompanyID    uint    `json:"company_id"`
	CompanyName  string  `json:"company_name"`
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
	Commission   float64 `json:"commission"`
}

type PlatformSummary struct {
	Companies             int     `json:"companies"`
	Appointments          int     `json:"appointments"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalCommission       float64 `json:"total_commission"`
	CommissionRatePercent float64 `json:"commission_rate_percent"`
}

// AggregateByCompany groups charge rows per company and orders the
// result by total commission, highest first.
func AggregateByCompany(rows []ChargeRow) []CompanyTotals {
	byCompany := map[uint]*CompanyTotals{}
	var order []uint

	for _, row := range rows {
		totals, ok := byCompany[row.CompanyID]
		if !ok {
			totals = &CompanyTotals{
				CompanyID:   row.CompanyID,
				CompanyName: row.CompanyName,
			}
			byCompany[row.CompanyID] = totals
			order = append(order, row.CompanyID)
		}
		totals.Appointments++
		totals.Revenue += row.ServicePrice
		totals.Commission += Commission(row.ServicePrice)
	}

	result := make([]CompanyTotals, 0, len(order))
	for _, id := range order {
		result = append(result, *byCompany[id])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Commission > result[j].Commission
	})
	return result
}

// Summarize derives the platform-wide totals over a company breakdown.
// An empty breakdown yields an all-zero summary, not an error.
func Summarize(companies []CompanyTotals) PlatformSummary {
	summary := PlatformSummary{
		Companies:             len(companies),
		CommissionRatePercent: CommissionRate * 100,
	}
	for _, c := range companies {
		summary.Appointments += c.Appointments
		summary.TotalRevenue += c.Revenue
		summary.TotalCommission += c.Commission
	}
	return summary
}
