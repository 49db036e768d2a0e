// Package analytics derives summary statistics from a snapshot of transactions.
// Every function here is pure: inputs are never mutated and nothing is persisted.
package analytics

import (
	"slices"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
)

const secondsPerDay = 24 * 60 * 60

// MaxTrendDays bounds DailyTrend. Longer spans keep only their most recent MaxTrendDays days.
const MaxTrendDays = 366 * 30

// FilterByDateRange returns the transactions whose date falls inside r, preserving order.
func FilterByDateRange(txns []domain.Transaction, r domain.DateRange) []domain.Transaction {
	if r.IsZero() {
		return slices.Clone(txns)
	}
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// SortByDate returns a copy of txns ordered by date. Ties keep their original relative order.
func SortByDate(txns []domain.Transaction, descending bool) []domain.Transaction {
	out := slices.Clone(txns)
	slices.SortStableFunc(out, func(a, b domain.Transaction) int {
		c := domain.NormalizeDate(a.Date).Compare(domain.NormalizeDate(b.Date))
		if descending {
			return -c
		}
		return c
	})
	return out
}

// Aggregate computes totals, averages and the daily trend for the transactions inside r.
//
// The trend holds one point per calendar day from the earliest to the latest included date,
// so len(DailyTrend) == TotalDays for spans up to MaxTrendDays. Days without transactions are
// reported as zeros.
func Aggregate(txns []domain.Transaction, r domain.DateRange) domain.AnalyticsResult {
	included := FilterByDateRange(txns, r)
	res := domain.AnalyticsResult{
		TransactionCount: len(included),
		DailyTrend:       []domain.DailyTrendPoint{},
	}
	if len(included) == 0 {
		return res
	}

	first := domain.NormalizeDate(included[0].Date)
	last := first
	for _, t := range included {
		d := domain.NormalizeDate(t.Date)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}

		switch t.Type {
		case domain.Income:
			res.TotalIncome += t.Amount
			switch t.PaymentMethod {
			case domain.Cash:
				res.CashIncome += t.Amount
			case domain.Digital:
				res.DigitalIncome += t.Amount
			}
		case domain.Expense:
			res.TotalExpenses += t.Amount
		}
	}

	res.NetProfit = res.TotalIncome - res.TotalExpenses
	res.ProfitSign = sign(res.NetProfit)
	res.TotalDays = daysBetween(first, last) + 1
	res.AvgDailyIncome = perDay(res.TotalIncome, res.TotalDays)
	res.AvgDailyExpense = perDay(res.TotalExpenses, res.TotalDays)
	res.AvgDailyProfit = perDay(res.NetProfit, res.TotalDays)
	res.StartDate = &first
	res.EndDate = &last
	res.DailyTrend = dailyTrend(included, last, min(res.TotalDays, MaxTrendDays))

	return res
}

// DayTotals sums income and expense for the transactions dated on day d.
func DayTotals(txns []domain.Transaction, d time.Time) domain.DailyTrendPoint {
	d = domain.NormalizeDate(d)
	p := domain.DailyTrendPoint{Date: d}
	for _, t := range txns {
		if !domain.NormalizeDate(t.Date).Equal(d) {
			continue
		}
		switch t.Type {
		case domain.Income:
			p.Income += t.Amount
		case domain.Expense:
			p.Expense += t.Amount
		}
	}
	p.Profit = p.Income - p.Expense
	return p
}

// dailyTrend returns the days points ending on last, oldest first.
func dailyTrend(txns []domain.Transaction, last time.Time, days int) []domain.DailyTrendPoint {
	first := last.AddDate(0, 0, 1-days)
	byDay := make(map[time.Time][]domain.Transaction)
	for _, t := range txns {
		d := domain.NormalizeDate(t.Date)
		if d.Before(first) {
			continue
		}
		byDay[d] = append(byDay[d], t)
	}

	trend := make([]domain.DailyTrendPoint, days)
	for i := range days {
		d := first.AddDate(0, 0, i)
		trend[i] = DayTotals(byDay[d], d)
	}
	return trend
}

// daysBetween counts whole calendar days between two normalised dates.
// time.Duration saturates after about 292 years, so the count is taken from Unix seconds.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

func perDay(total float64, days int) float64 {
	if days == 0 {
		return 0
	}
	return total / float64(days)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
