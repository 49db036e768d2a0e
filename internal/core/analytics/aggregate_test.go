package analytics_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/analytics"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(id string, typ domain.TransactionType, amount float64, pm domain.PaymentMethod, d time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		TransactionFields: domain.TransactionFields{
			Type:          typ,
			Amount:        amount,
			PaymentMethod: pm,
			Date:          d,
		},
	}
}

func scenario() []domain.Transaction {
	return []domain.Transaction{
		txn("a", domain.Income, 100, domain.Cash, date(2024, 1, 1)),
		txn("b", domain.Expense, 40, domain.Digital, date(2024, 1, 1)),
		txn("c", domain.Income, 60, domain.Cash, date(2024, 1, 2)),
	}
}

func TestAggregate_Scenario(t *testing.T) {
	res := analytics.Aggregate(scenario(), domain.DateRange{})

	assert.Equal(t, 160.0, res.TotalIncome)
	assert.Equal(t, 40.0, res.TotalExpenses)
	assert.Equal(t, 120.0, res.NetProfit)
	assert.Equal(t, 1, res.ProfitSign)
	assert.Equal(t, 160.0, res.CashIncome)
	assert.Equal(t, 0.0, res.DigitalIncome)
	assert.Equal(t, 2, res.TotalDays)
	assert.Equal(t, 3, res.TransactionCount)
	assert.Equal(t, 80.0, res.AvgDailyIncome)
	assert.Equal(t, 20.0, res.AvgDailyExpense)
	assert.Equal(t, 60.0, res.AvgDailyProfit)
	require.NotNil(t, res.StartDate)
	require.NotNil(t, res.EndDate)
	assert.Equal(t, date(2024, 1, 1), *res.StartDate)
	assert.Equal(t, date(2024, 1, 2), *res.EndDate)

	require.Len(t, res.DailyTrend, 2)
	assert.Equal(t, domain.DailyTrendPoint{Date: date(2024, 1, 1), Income: 100, Expense: 40, Profit: 60}, res.DailyTrend[0])
	assert.Equal(t, domain.DailyTrendPoint{Date: date(2024, 1, 2), Income: 60, Expense: 0, Profit: 60}, res.DailyTrend[1])
}

func TestAggregate_SingleDayFilter(t *testing.T) {
	d := date(2024, 1, 2)
	res := analytics.Aggregate(scenario(), domain.DateRange{Start: &d, End: &d})

	assert.Equal(t, 60.0, res.TotalIncome)
	assert.Equal(t, 0.0, res.TotalExpenses)
	assert.Equal(t, 1, res.TransactionCount)
	assert.Equal(t, 1, res.TotalDays)
	assert.Equal(t, 60.0, res.AvgDailyIncome)
}

func TestAggregate_OpenEndedRange(t *testing.T) {
	start := date(2024, 1, 2)
	res := analytics.Aggregate(scenario(), domain.DateRange{Start: &start})
	assert.Equal(t, 60.0, res.TotalIncome)

	end := date(2024, 1, 1)
	res = analytics.Aggregate(scenario(), domain.DateRange{End: &end})
	assert.Equal(t, 100.0, res.TotalIncome)
	assert.Equal(t, 40.0, res.TotalExpenses)
}

func TestAggregate_Empty(t *testing.T) {
	res := analytics.Aggregate(nil, domain.DateRange{})

	assert.Zero(t, res.TotalIncome)
	assert.Zero(t, res.TotalExpenses)
	assert.Zero(t, res.NetProfit)
	assert.Zero(t, res.TotalDays)
	assert.Zero(t, res.AvgDailyIncome)
	assert.Zero(t, res.AvgDailyExpense)
	assert.Zero(t, res.AvgDailyProfit)
	assert.False(t, math.IsNaN(res.AvgDailyProfit))
	assert.Empty(t, res.DailyTrend)
	assert.NotNil(t, res.DailyTrend)
	assert.Nil(t, res.StartDate)
}

func TestAggregate_GapDaysAreZero(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Expense, 30, domain.Cash, date(2024, 3, 1)),
		txn("b", domain.Income, 90, domain.Digital, date(2024, 3, 4)),
	}
	res := analytics.Aggregate(txns, domain.DateRange{})

	assert.Equal(t, 4, res.TotalDays)
	require.Len(t, res.DailyTrend, 4)
	assert.Equal(t, domain.DailyTrendPoint{Date: date(2024, 3, 2)}, res.DailyTrend[1])
	assert.Equal(t, domain.DailyTrendPoint{Date: date(2024, 3, 3)}, res.DailyTrend[2])
	assert.Equal(t, -1, analytics.Aggregate(txns[:1], domain.DateRange{}).ProfitSign)
	assert.Equal(t, 90.0, res.DigitalIncome)
}

func TestAggregate_LongSpanCountsCalendarDays(t *testing.T) {
	txns := []domain.Transaction{
		txn("old", domain.Expense, 10, domain.Cash, date(1700, 1, 1)),
		txn("new", domain.Income, 50, domain.Cash, date(2100, 1, 1)),
	}
	res := analytics.Aggregate(txns, domain.DateRange{})

	assert.Equal(t, 146098, res.TotalDays)
	assert.InDelta(t, 40.0/146098, res.AvgDailyProfit, 1e-12)

	require.Len(t, res.DailyTrend, analytics.MaxTrendDays)
	lastPoint := res.DailyTrend[len(res.DailyTrend)-1]
	assert.Equal(t, domain.DailyTrendPoint{Date: date(2100, 1, 1), Income: 50, Profit: 50}, lastPoint)
	assert.Equal(t, date(2100, 1, 1).AddDate(0, 0, 1-analytics.MaxTrendDays), res.DailyTrend[0].Date)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	base := []domain.Transaction{
		txn("a", domain.Income, 12.5, domain.Cash, date(2024, 5, 1)),
		txn("b", domain.Expense, 3.25, domain.Digital, date(2024, 5, 3)),
		txn("c", domain.Income, 7, domain.Digital, date(2024, 5, 2)),
		txn("d", domain.Expense, 1.5, domain.Cash, date(2024, 5, 2)),
		txn("e", domain.Income, 100, domain.Cash, date(2024, 4, 28)),
	}
	want := analytics.Aggregate(base, domain.DateRange{})

	rng := rand.New(rand.NewSource(7))
	for range 20 {
		shuffled := analytics.SortByDate(base, false)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := analytics.Aggregate(shuffled, domain.DateRange{})
		assert.InDelta(t, want.TotalIncome, got.TotalIncome, 1e-9)
		assert.InDelta(t, want.TotalExpenses, got.TotalExpenses, 1e-9)
		assert.InDelta(t, want.NetProfit, got.NetProfit, 1e-9)
		assert.Equal(t, want.TotalDays, got.TotalDays)
	}
}

func TestSortByDate_StableAndNonMutating(t *testing.T) {
	txns := []domain.Transaction{
		txn("late", domain.Income, 1, domain.Cash, date(2024, 1, 3)),
		txn("first-of-day", domain.Income, 1, domain.Cash, date(2024, 1, 1)),
		txn("second-of-day", domain.Income, 1, domain.Cash, date(2024, 1, 1)),
	}

	asc := analytics.SortByDate(txns, false)
	assert.Equal(t, []string{"first-of-day", "second-of-day", "late"}, ids(asc))

	desc := analytics.SortByDate(txns, true)
	assert.Equal(t, []string{"late", "first-of-day", "second-of-day"}, ids(desc))

	assert.Equal(t, []string{"late", "first-of-day", "second-of-day"}, ids(txns))
}

func TestDayTotals(t *testing.T) {
	p := analytics.DayTotals(scenario(), time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, domain.DailyTrendPoint{Date: date(2024, 1, 1), Income: 100, Expense: 40, Profit: 60}, p)
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}
