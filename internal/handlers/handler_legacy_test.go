package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/services"
	"github.com/SscSPs/fruit_shop_app/internal/dto"
	"github.com/SscSPs/fruit_shop_app/internal/handlers"
	"github.com/SscSPs/fruit_shop_app/internal/platform/config"
	"github.com/SscSPs/fruit_shop_app/internal/repositories/database/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLegacyRouter wires real services over an in-memory store.
func newLegacyRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := memory.NewRepositoryProvider()
	cfg := &config.Config{IsProduction: true, AnalyticsCacheTTL: time.Minute}
	container := services.NewServiceContainer(cfg, repos, nil, nil)

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, container, repos.TransactionRepo.(*memory.TransactionRepository))
	return r
}

func postForm(t *testing.T, r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func legacyList(t *testing.T, r http.Handler) []dto.LegacyTransactionResponse {
	t.Helper()
	w := get(t, r, http.MethodGet, "/get_transactions")
	require.Equal(t, http.StatusOK, w.Code)
	var out []dto.LegacyTransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLegacyRoutes_FormRoundTrip(t *testing.T) {
	r := newLegacyRouter(t)

	w := postForm(t, r, "/add_transaction", url.Values{
		"date": {"2024-01-01"}, "type": {"income"}, "amount": {"100"},
		"fruit_name": {"Mango"}, "quantity": {"10"}, "price_per_unit": {"10"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Transaction added successfully"}`, w.Body.String())

	postForm(t, r, "/add_transaction", url.Values{
		"date": {"2024-01-01"}, "type": {"expense"}, "amount": {"40"}, "payment_method": {"digital"},
	})
	postForm(t, r, "/add_transaction", url.Values{
		"date": {"2024-01-02"}, "type": {"income"}, "amount": {"60"}, "payment_method": {"cash"},
	})

	list := legacyList(t, r)
	require.Len(t, list, 3)
	// newest date first, then most recently added within a day
	assert.Equal(t, "2024-01-02", list[0].Date)
	assert.Equal(t, "expense", list[1].Type)
	assert.Equal(t, "digital", list[1].PaymentMethod)
	assert.Equal(t, "income", list[2].Type)
	assert.Equal(t, "cash", list[2].PaymentMethod, "missing payment method defaults to cash")
	assert.Equal(t, "Mango", list[2].FruitName)
	require.NotNil(t, list[2].Quantity)
	assert.Equal(t, 10.0, *list[2].Quantity)
	assert.Nil(t, list[1].Quantity)

	w = get(t, r, http.MethodGet, "/analytics")
	require.Equal(t, http.StatusOK, w.Code)
	var analytics dto.LegacyAnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analytics))
	assert.Equal(t, 160.0, analytics.Data.IncomeTotal)
	assert.Equal(t, 40.0, analytics.Data.ExpenseTotal)
	assert.Equal(t, 120.0, analytics.Data.ProfitTotal)
	assert.Equal(t, 160.0, analytics.Data.CashIncome)
	assert.Equal(t, 0.0, analytics.Data.DigitalIncome)
	assert.Equal(t, 2, analytics.Data.TotalDays)
	assert.Equal(t, 80.0, analytics.Data.AvgDailyIncome)
	assert.Equal(t, dto.LegacyDailyData{Income: 100, Expense: 40, Profit: 60}, analytics.Data.DailyData["2024-01-01"])

	w = get(t, r, http.MethodGet, "/analytics?start_date=2024-01-02&end_date=2024-01-02")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analytics))
	assert.Equal(t, 60.0, analytics.Data.IncomeTotal)
	assert.Equal(t, 1, analytics.Data.TotalDays)
}

func TestLegacyRoutes_UpdateDeleteAndErrors(t *testing.T) {
	r := newLegacyRouter(t)

	w := postForm(t, r, "/add_transaction", url.Values{"date": {""}, "type": {"refund"}, "amount": {"0"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var status dto.LegacyStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Success)
	assert.Contains(t, status.Errors, "Date is required")
	assert.Contains(t, status.Errors, "Amount must be greater than 0")
	assert.Empty(t, legacyList(t, r))

	// JSON bodies are accepted as well
	req, _ := http.NewRequest(http.MethodPost, "/add_transaction",
		strings.NewReader(`{"date":"2024-03-01","type":"income","amount":25,"payment_method":"digital"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	list := legacyList(t, r)
	require.Len(t, list, 1)
	id := list[0].ID

	w = postForm(t, r, "/update_transaction/"+id, url.Values{
		"date": {"2024-03-02"}, "type": {"expense"}, "amount": {"30"}, "description": {"ice"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Transaction updated successfully"}`, w.Body.String())

	list = legacyList(t, r)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "expense", list[0].Type)
	assert.Equal(t, "cash", list[0].PaymentMethod)
	assert.Equal(t, "ice", list[0].Description)

	w = postForm(t, r, "/update_transaction/unknown", url.Values{"date": {"2024-03-02"}, "type": {"expense"}, "amount": {"30"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, r, http.MethodDelete, "/delete_transaction/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, r, http.MethodDelete, "/delete_transaction/"+id)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, legacyList(t, r))

	postForm(t, r, "/add_transaction", url.Values{"date": {"2024-03-01"}, "type": {"income"}, "amount": {"5"}})
	w = get(t, r, http.MethodDelete, "/delete_all_transactions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"All transactions deleted successfully"}`, w.Body.String())
	assert.Empty(t, legacyList(t, r))
}

func TestLegacyRoutes_ExportCSV(t *testing.T) {
	r := newLegacyRouter(t)
	postForm(t, r, "/add_transaction", url.Values{"date": {"2024-01-01"}, "type": {"income"}, "amount": {"100"}})
	postForm(t, r, "/add_transaction", url.Values{"date": {"2024-02-01"}, "type": {"expense"}, "amount": {"7"}})

	w := get(t, r, http.MethodGet, "/export_csv?start_date=2024-02-01")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^attachment; filename="transactions_\d{8}\.csv"$`, w.Header().Get("Content-Disposition"))
	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-02-01,EXPENSE,7.00,,,,,CASH", lines[1])

	// no renderer is configured on this router
	w = get(t, r, http.MethodGet, "/export_pdf")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAPIV1_AnalyticsFollowLatestWrite(t *testing.T) {
	r := newLegacyRouter(t)

	totalIncome := func() float64 {
		w := get(t, r, http.MethodGet, "/api/v1/analytics")
		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.AnalyticsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.TotalIncome
	}

	assert.Equal(t, 0.0, totalIncome())
	postForm(t, r, "/add_transaction", url.Values{"date": {"2024-01-01"}, "type": {"income"}, "amount": {"50"}})
	assert.Equal(t, 50.0, totalIncome())

	w := get(t, r, http.MethodGet, "/api/v1/exports/pdf/layout")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Total Income: Rs. 50.00")

	w = get(t, r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}
