package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/gargantua-app/backend/internal/controllers/v1"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/types"
	"github.com/gargantua-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstOfMonth returns the first day of the current calendar month.
func firstOfMonth() types.Date {
	now := time.Now().In(time.UTC)
	return types.NewDate(now.Year(), now.Month(), 1)
}

func (suite *TestSuiteStandard) TestStatsOptions() {
	paths := []string{
		"http://example.com/v1/stats/dashboard",
		"http://example.com/v1/stats/monthly",
		"http://example.com/v1/stats/daily",
	}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, path, "")
			assert.Equal(t, http.StatusNoContent, r.Code)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestDashboard() {
	first := firstOfMonth()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionIncome,
		Amount: decimal.NewFromInt(50000),
		Date:   first,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionExpense,
		Amount: decimal.NewFromInt(20000),
		Date:   first,
	})

	// Previous month: only income, so the savings rate was 100%
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionIncome,
		Amount: decimal.NewFromInt(10000),
		Date:   first.AddDate(0, -1, 0),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), decimal.NewFromInt(40000).Equal(response.Data.Balance), "balance is %s", response.Data.Balance)
	assert.True(suite.T(), decimal.NewFromInt(50000).Equal(response.Data.MonthlyIncome))
	assert.True(suite.T(), decimal.NewFromInt(20000).Equal(response.Data.MonthlyExpenses))
	assert.Equal(suite.T(), "60.00", response.Data.SavingsRate)
	assert.Equal(suite.T(), "-40.00", response.Data.SavingsRateChange)
}

// TestDashboardEmpty verifies the dashboard for a user without any
// transactions.
func (suite *TestSuiteStandard) TestDashboardEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.Balance.IsZero())
	assert.Equal(suite.T(), "0.00", response.Data.SavingsRate)
	assert.Equal(suite.T(), "0.00", response.Data.SavingsRateChange)
}

func (suite *TestSuiteStandard) TestDashboardUserScope() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionIncome,
		Amount: decimal.NewFromInt(50000),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/dashboard", "", map[string]string{identity.HeaderUser: "b1a5c6a8-9f10-47cc-8b8f-2b9b6e2b18a2"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestMonthSeries() {
	first := firstOfMonth()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionIncome,
		Amount: decimal.NewFromInt(50000),
		Date:   first,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionExpense,
		Amount: decimal.NewFromInt(20000),
		Date:   first.AddDate(0, -1, 0),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/monthly", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthSeriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Default is six months, ending with the current one
	require.Len(suite.T(), response.Data, 6)

	current := response.Data[5]
	assert.True(suite.T(), types.MonthOf(time.Now().In(time.UTC)).Equal(current.Month), "last bucket is %s", current.Month)
	assert.True(suite.T(), decimal.NewFromInt(50000).Equal(current.Income))
	assert.True(suite.T(), current.Expenses.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(50000).Equal(current.Savings))
	assert.Equal(suite.T(), "100.00", current.SavingsRate)

	previous := response.Data[4]
	assert.True(suite.T(), previous.Income.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(20000).Equal(previous.Expenses))

	// Months without transactions have zero values
	assert.True(suite.T(), response.Data[0].Income.IsZero())
	assert.True(suite.T(), response.Data[0].Expenses.IsZero())
}

func (suite *TestSuiteStandard) TestMonthSeriesCount() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/monthly?months=2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthSeriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestMonthSeriesErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Zero", "months=0"},
		{"Too many", "months=25"},
		{"Unparseable", "months=six"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/stats/monthly?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestDaySeries() {
	today := types.DateOf(time.Now().In(time.UTC))

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionExpense,
		Amount: decimal.NewFromInt(649),
		Date:   today,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionIncome,
		Amount: decimal.NewFromInt(1000),
		Date:   today.AddDate(0, 0, -3),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/daily?days=7", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DaySeriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// One bucket per day in the range plus one for today
	require.Len(suite.T(), response.Data, 8)

	assert.True(suite.T(), today.AddDate(0, 0, -7).Equal(response.Data[0].Date), "first bucket is %s", response.Data[0].Date)
	assert.True(suite.T(), today.Equal(response.Data[7].Date), "last bucket is %s", response.Data[7].Date)

	assert.True(suite.T(), decimal.NewFromInt(649).Equal(response.Data[7].Expenses))
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(response.Data[4].Income))

	// Days without transactions have zero values
	assert.True(suite.T(), response.Data[1].Income.IsZero())
	assert.True(suite.T(), response.Data[1].Expenses.IsZero())
}

func (suite *TestSuiteStandard) TestDaySeriesDefault() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/daily", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DaySeriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 31)
}

func (suite *TestSuiteStandard) TestDaySeriesErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Zero", "days=0"},
		{"Too many", "days=367"},
		{"Unparseable", "days=week"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/stats/daily?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestStatsDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}
