package domain

import (
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
)

// DateRange is an inclusive calendar-day filter. A nil bound is unbounded on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether day d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	d = NormalizeDate(d)
	if r.Start != nil && d.Before(NormalizeDate(*r.Start)) {
		return false
	}
	if r.End != nil && d.After(NormalizeDate(*r.End)) {
		return false
	}
	return true
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Key returns a stable string form of the range, used for memoisation.
func (r DateRange) Key() string {
	return formatBound(r.Start) + ".." + formatBound(r.End)
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "*"
	}
	return t.Format(DateLayout)
}

// ParseDateRange parses optional YYYY-MM-DD bounds. Empty strings leave the bound open.
func ParseDateRange(start, end string) (DateRange, error) {
	verr := apperrors.NewValidationError()
	var r DateRange
	if start != "" {
		d, err := ParseDate(start)
		if err != nil {
			verr.Add("startDate", "Start date must be a valid calendar date (YYYY-MM-DD)")
		} else {
			r.Start = &d
		}
	}
	if end != "" {
		d, err := ParseDate(end)
		if err != nil {
			verr.Add("endDate", "End date must be a valid calendar date (YYYY-MM-DD)")
		} else {
			r.End = &d
		}
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		verr.Add("startDate", "Start date must be on or before end date")
	}
	if verr.HasErrors() {
		return DateRange{}, verr
	}
	return r, nil
}

// DailyTrendPoint is one calendar day of the trend series.
type DailyTrendPoint struct {
	Date    time.Time `json:"date"`
	Income  float64   `json:"income"`
	Expense float64   `json:"expense"`
	Profit  float64   `json:"profit"`
}

// AnalyticsResult is derived from a set of transactions and never persisted.
// Values are raw sums; rounding is left to presentation and export.
type AnalyticsResult struct {
	TotalIncome      float64           `json:"totalIncome"`
	TotalExpenses    float64           `json:"totalExpenses"`
	NetProfit        float64           `json:"netProfit"`
	ProfitSign       int               `json:"profitSign"` // -1, 0 or 1
	CashIncome       float64           `json:"cashIncome"`
	DigitalIncome    float64           `json:"digitalIncome"`
	TransactionCount int               `json:"transactionCount"`
	TotalDays        int               `json:"totalDays"`
	AvgDailyIncome   float64           `json:"avgDailyIncome"`
	AvgDailyExpense  float64           `json:"avgDailyExpense"`
	AvgDailyProfit   float64           `json:"avgDailyProfit"`
	StartDate        *time.Time        `json:"startDate,omitempty"` // earliest included day
	EndDate          *time.Time        `json:"endDate,omitempty"`   // latest included day
	DailyTrend       []DailyTrendPoint `json:"dailyTrend"`
}
