package stats

import (
	"time"

	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthBucket is one calendar month of a monthly chart series.
type MonthBucket struct {
	Month       types.Month
	Label       string // e.g. "Jan 2024"
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Savings     decimal.Decimal
	SavingsRate float64
}

// DayBucket is one calendar day of a daily chart series.
type DayBucket struct {
	Date     types.Date
	Label    string // e.g. "Jan 05"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// GroupByMonth buckets transactions into the given number of consecutive
// calendar months ending at the current one, oldest first.
func GroupByMonth(transactions []models.Transaction, months int, now time.Time) []MonthBucket {
	if months < 1 {
		return []MonthBucket{}
	}

	buckets := make([]MonthBucket, months)
	index := make(map[string]int, months)

	month := types.MonthOf(now).AddDate(0, -(months - 1))
	for i := range months {
		buckets[i] = MonthBucket{
			Month: month,
			Label: month.Label(),
		}
		index[month.String()] = i
		month = month.AddDate(0, 1)
	}

	for _, transaction := range transactions {
		i, ok := index[transaction.Date.Month().String()]
		if !ok {
			continue
		}

		if transaction.Type == models.TransactionIncome {
			buckets[i].Income = buckets[i].Income.Add(transaction.Amount)
		} else {
			buckets[i].Expenses = buckets[i].Expenses.Add(transaction.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Savings = buckets[i].Income.Sub(buckets[i].Expenses)
		buckets[i].SavingsRate = savingsRate(buckets[i].Income, buckets[i].Expenses)
	}

	return buckets
}

// GroupByDay buckets transactions into days+1 consecutive calendar days
// ending today, oldest first. Days without transactions appear with zero
// sums so that charts render a continuous series.
func GroupByDay(transactions []models.Transaction, days int, now time.Time) []DayBucket {
	if days < 0 {
		return []DayBucket{}
	}

	buckets := make([]DayBucket, days+1)
	index := make(map[string]int, days+1)

	date := types.DateOf(now).AddDate(0, 0, -days)
	for i := range days + 1 {
		buckets[i] = DayBucket{
			Date:     date,
			Label:    date.Label(),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		index[date.String()] = i
		date = date.AddDate(0, 0, 1)
	}

	for _, transaction := range transactions {
		i, ok := index[transaction.Date.String()]
		if !ok {
			continue
		}

		if transaction.Type == models.TransactionIncome {
			buckets[i].Income = buckets[i].Income.Add(transaction.Amount)
		} else {
			buckets[i].Expenses = buckets[i].Expenses.Add(transaction.Amount)
		}
	}

	return buckets
}
