package v1

import (
	"fmt"

	"github.com/gargantua-app/backend/internal/stats"
	"github.com/gargantua-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Dashboard is the API representation of the dashboard statistics.
// The rates are formatted to two decimal places here, all internal
// calculations run on the unrounded values.
type Dashboard struct {
	Balance           decimal.Decimal `json:"balance" example:"30000"`         // All-time income minus expenses
	MonthlyIncome     decimal.Decimal `json:"monthlyIncome" example:"50000"`   // Income in the current calendar month
	MonthlyExpenses   decimal.Decimal `json:"monthlyExpenses" example:"20000"` // Expenses in the current calendar month
	SavingsRate       string          `json:"savingsRate" example:"60.00"`     // Percent of monthly income not spent
	SavingsRateChange string          `json:"savingsRateChange" example:"4.20"`  // Savings rate delta to the previous month
}

func newDashboard(dashboard stats.Dashboard) Dashboard {
	return Dashboard{
		Balance:           dashboard.Balance,
		MonthlyIncome:     dashboard.MonthlyIncome,
		MonthlyExpenses:   dashboard.MonthlyExpenses,
		SavingsRate:       fmt.Sprintf("%.2f", dashboard.SavingsRate),
		SavingsRateChange: fmt.Sprintf("%.2f", dashboard.SavingsRateChange),
	}
}

type DashboardResponse struct {
	Error *string    `json:"error" example:"there is no user for this request"` // The error, if any occurred
	Data  *Dashboard `json:"data"`                                              // The dashboard statistics
}

// MonthBucket is one calendar month of the monthly series.
type MonthBucket struct {
	Month       types.Month     `json:"month" example:"2024-01"`      // The calendar month
	Label       string          `json:"label" example:"Jan 2024"`     // Display label for the month
	Income      decimal.Decimal `json:"income" example:"50000"`       // Income in this month
	Expenses    decimal.Decimal `json:"expenses" example:"20000"`     // Expenses in this month
	Savings     decimal.Decimal `json:"savings" example:"30000"`      // Income minus expenses
	SavingsRate string          `json:"savingsRate" example:"60.00"`  // Percent of income not spent
}

func newMonthBucket(bucket stats.MonthBucket) MonthBucket {
	return MonthBucket{
		Month:       bucket.Month,
		Label:       bucket.Label,
		Income:      bucket.Income,
		Expenses:    bucket.Expenses,
		Savings:     bucket.Savings,
		SavingsRate: fmt.Sprintf("%.2f", bucket.SavingsRate),
	}
}

type MonthSeriesResponse struct {
	Data  []MonthBucket `json:"data"`                                                      // Consecutive months, oldest first
	Error *string       `json:"error" example:"the months parameter must be between 1 and 24"` // The error, if any occurred
}

// DayBucket is one calendar day of the daily series.
type DayBucket struct {
	Date     types.Date      `json:"date" example:"2024-01-05"` // The calendar day
	Label    string          `json:"label" example:"Jan 05"`    // Display label for the day
	Income   decimal.Decimal `json:"income" example:"0"`        // Income on this day
	Expenses decimal.Decimal `json:"expenses" example:"649"`    // Expenses on this day
}

func newDayBucket(bucket stats.DayBucket) DayBucket {
	return DayBucket{
		Date:     bucket.Date,
		Label:    bucket.Label,
		Income:   bucket.Income,
		Expenses: bucket.Expenses,
	}
}

type DaySeriesResponse struct {
	Data  []DayBucket `json:"data"`                                                         // Consecutive days, oldest first
	Error *string     `json:"error" example:"the days parameter must be between 1 and 366"` // The error, if any occurred
}
