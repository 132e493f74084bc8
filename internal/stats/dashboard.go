// Package stats computes dashboard and chart statistics over a user's
// transactions.
//
// All functions are pure: they operate on an already fetched transaction
// slice and an explicit "now" instant, never fail, and are cheap enough
// to recompute on every change to the underlying data.
package stats

import (
	"time"

	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Dashboard holds the headline statistics for the dashboard page.
//
// Rates are kept as numeric values here. Formatting to two decimal
// places happens at the API boundary only, so month-over-month
// comparisons do not accumulate rounding errors.
type Dashboard struct {
	Balance           decimal.Decimal // All-time income minus expenses
	MonthlyIncome     decimal.Decimal // Income in the current calendar month
	MonthlyExpenses   decimal.Decimal // Expenses in the current calendar month
	SavingsRate       float64         // Percent of monthly income not spent
	SavingsRateChange float64         // Savings rate delta to the previous month
}

// CalculateDashboard computes the dashboard statistics.
//
// The balance spans the whole history. Monthly figures only include
// transactions dated in the current calendar month; the savings rate
// change compares against the previous calendar month. A transaction
// contributes to at most one of the two monthly buckets.
func CalculateDashboard(transactions []models.Transaction, now time.Time) Dashboard {
	currentMonth := types.MonthOf(now)
	previousMonth := currentMonth.AddDate(0, -1)

	var totalIncome, totalExpenses decimal.Decimal
	var monthlyIncome, monthlyExpenses decimal.Decimal
	var previousIncome, previousExpenses decimal.Decimal

	for _, transaction := range transactions {
		income := transaction.Type == models.TransactionIncome
		if income {
			totalIncome = totalIncome.Add(transaction.Amount)
		} else {
			totalExpenses = totalExpenses.Add(transaction.Amount)
		}

		if currentMonth.ContainsDate(transaction.Date) {
			if income {
				monthlyIncome = monthlyIncome.Add(transaction.Amount)
			} else {
				monthlyExpenses = monthlyExpenses.Add(transaction.Amount)
			}
		} else if previousMonth.ContainsDate(transaction.Date) {
			if income {
				previousIncome = previousIncome.Add(transaction.Amount)
			} else {
				previousExpenses = previousExpenses.Add(transaction.Amount)
			}
		}
	}

	rate := savingsRate(monthlyIncome, monthlyExpenses)

	return Dashboard{
		Balance:           totalIncome.Sub(totalExpenses),
		MonthlyIncome:     monthlyIncome,
		MonthlyExpenses:   monthlyExpenses,
		SavingsRate:       rate,
		SavingsRateChange: rate - savingsRate(previousIncome, previousExpenses),
	}
}

// savingsRate returns the percentage of income that was not spent.
// Without income the rate is zero, never NaN or Inf.
func savingsRate(income, expenses decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}

	rate, _ := income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100)).Float64()
	return rate
}
