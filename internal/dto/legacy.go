package dto

import (
	"strings"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
)

// LegacyTimestampLayout is how created_at was rendered by the original server.
const LegacyTimestampLayout = "2006-01-02 15:04:05"

// LegacyTransactionRequest accepts the original form fields, as form values or JSON.
type LegacyTransactionRequest struct {
	Date          string       `form:"date" json:"date"`
	Type          string       `form:"type" json:"type"`
	Amount        NumberString `form:"amount" json:"amount" swaggertype:"number"`
	Description   string       `form:"description" json:"description"`
	FruitName     string       `form:"fruit_name" json:"fruit_name"`
	Quantity      NumberString `form:"quantity" json:"quantity" swaggertype:"number"`
	PricePerUnit  NumberString `form:"price_per_unit" json:"price_per_unit" swaggertype:"number"`
	PaymentMethod string       `form:"payment_method" json:"payment_method"`
}

// ToInput maps lowercase enums onto the canonical ones. A missing payment method means cash.
func (r LegacyTransactionRequest) ToInput() domain.TransactionInput {
	payment := strings.TrimSpace(r.PaymentMethod)
	if payment == "" {
		payment = string(domain.Cash)
	}
	return domain.TransactionInput{
		Type:          strings.ToUpper(strings.TrimSpace(r.Type)),
		Amount:        string(r.Amount),
		Description:   r.Description,
		FruitName:     r.FruitName,
		Quantity:      string(r.Quantity),
		PricePerUnit:  string(r.PricePerUnit),
		PaymentMethod: strings.ToUpper(payment),
		Date:          r.Date,
	}
}

// LegacyTransactionResponse mirrors the original row dictionary.
type LegacyTransactionResponse struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Type          string   `json:"type"`
	Amount        float64  `json:"amount"`
	Description   string   `json:"description"`
	FruitName     string   `json:"fruit_name"`
	Quantity      *float64 `json:"quantity"`
	PricePerUnit  *float64 `json:"price_per_unit"`
	PaymentMethod string   `json:"payment_method"`
	CreatedAt     string   `json:"created_at"`
}

// ToLegacyTransactionResponse converts a transaction to the original naming.
func ToLegacyTransactionResponse(t *domain.Transaction) LegacyTransactionResponse {
	c := t.Clone()
	return LegacyTransactionResponse{
		ID:            c.TransactionID,
		Date:          c.Date.Format(domain.DateLayout),
		Type:          strings.ToLower(string(c.Type)),
		Amount:        c.Amount,
		Description:   c.Description,
		FruitName:     c.FruitName,
		Quantity:      c.Quantity,
		PricePerUnit:  c.PricePerUnit,
		PaymentMethod: strings.ToLower(string(c.PaymentMethod)),
		CreatedAt:     c.CreatedAt.UTC().Format(LegacyTimestampLayout),
	}
}

// ToLegacyTransactionList converts a listing, never returning nil.
func ToLegacyTransactionList(txns []domain.Transaction) []LegacyTransactionResponse {
	res := make([]LegacyTransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToLegacyTransactionResponse(&txns[i])
	}
	return res
}

// LegacyStatusResponse is the original {success, message, errors} envelope.
type LegacyStatusResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// LegacyDailyData is one entry of daily_data.
type LegacyDailyData struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// LegacyAnalyticsData is the original analytics dictionary.
type LegacyAnalyticsData struct {
	IncomeTotal     float64                    `json:"income_total"`
	ExpenseTotal    float64                    `json:"expense_total"`
	ProfitTotal     float64                    `json:"profit_total"`
	CashIncome      float64                    `json:"cash_income"`
	DigitalIncome   float64                    `json:"digital_income"`
	DailyData       map[string]LegacyDailyData `json:"daily_data"`
	AvgDailyIncome  float64                    `json:"avg_daily_income"`
	AvgDailyExpense float64                    `json:"avg_daily_expense"`
	AvgDailyProfit  float64                    `json:"avg_daily_profit"`
	TotalDays       int                        `json:"total_days"`
}

// LegacyAnalyticsResponse wraps the analytics dictionary under "data".
type LegacyAnalyticsResponse struct {
	Data LegacyAnalyticsData `json:"data"`
}

// ToLegacyAnalyticsResponse converts an AnalyticsResult to the original shape.
func ToLegacyAnalyticsResponse(res *domain.AnalyticsResult) LegacyAnalyticsResponse {
	daily := make(map[string]LegacyDailyData, len(res.DailyTrend))
	for _, p := range res.DailyTrend {
		daily[p.Date.Format(domain.DateLayout)] = LegacyDailyData{Income: p.Income, Expense: p.Expense, Profit: p.Profit}
	}
	return LegacyAnalyticsResponse{Data: LegacyAnalyticsData{
		IncomeTotal:     res.TotalIncome,
		ExpenseTotal:    res.TotalExpenses,
		ProfitTotal:     res.NetProfit,
		CashIncome:      res.CashIncome,
		DigitalIncome:   res.DigitalIncome,
		DailyData:       daily,
		AvgDailyIncome:  res.AvgDailyIncome,
		AvgDailyExpense: res.AvgDailyExpense,
		AvgDailyProfit:  res.AvgDailyProfit,
		TotalDays:       res.TotalDays,
	}}
}
