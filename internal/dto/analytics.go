package dto

import (
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
)

// DailyTrendPointResponse is one day of the trend series.
type DailyTrendPointResponse struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// AnalyticsResponse carries raw aggregate figures. Rounding is left to the client.
type AnalyticsResponse struct {
	TotalIncome      float64                   `json:"totalIncome"`
	TotalExpenses    float64                   `json:"totalExpenses"`
	NetProfit        float64                   `json:"netProfit"`
	ProfitSign       int                       `json:"profitSign"`
	CashIncome       float64                   `json:"cashIncome"`
	DigitalIncome    float64                   `json:"digitalIncome"`
	TransactionCount int                       `json:"transactionCount"`
	TotalDays        int                       `json:"totalDays"`
	AvgDailyIncome   float64                   `json:"avgDailyIncome"`
	AvgDailyExpense  float64                   `json:"avgDailyExpense"`
	AvgDailyProfit   float64                   `json:"avgDailyProfit"`
	StartDate        *string                   `json:"startDate"`
	EndDate          *string                   `json:"endDate"`
	DailyTrend       []DailyTrendPointResponse `json:"dailyTrend"`
}

// ToAnalyticsResponse converts an AnalyticsResult to its wire form.
func ToAnalyticsResponse(res *domain.AnalyticsResult) AnalyticsResponse {
	out := AnalyticsResponse{
		TotalIncome:      res.TotalIncome,
		TotalExpenses:    res.TotalExpenses,
		NetProfit:        res.NetProfit,
		ProfitSign:       res.ProfitSign,
		CashIncome:       res.CashIncome,
		DigitalIncome:    res.DigitalIncome,
		TransactionCount: res.TransactionCount,
		TotalDays:        res.TotalDays,
		AvgDailyIncome:   res.AvgDailyIncome,
		AvgDailyExpense:  res.AvgDailyExpense,
		AvgDailyProfit:   res.AvgDailyProfit,
		DailyTrend:       make([]DailyTrendPointResponse, len(res.DailyTrend)),
	}
	if res.StartDate != nil {
		s := res.StartDate.Format(domain.DateLayout)
		out.StartDate = &s
	}
	if res.EndDate != nil {
		s := res.EndDate.Format(domain.DateLayout)
		out.EndDate = &s
	}
	for i, p := range res.DailyTrend {
		out.DailyTrend[i] = DailyTrendPointResponse{
			Date:    p.Date.Format(domain.DateLayout),
			Income:  p.Income,
			Expense: p.Expense,
			Profit:  p.Profit,
		}
	}
	return out
}
