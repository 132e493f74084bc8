// Package investments computes the year-by-year investment projection
// from the user's investment settings.
package investments

import (
	"github.com/gargantua-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ProjectionYear is one row of the projection table.
type ProjectionYear struct {
	Year          int             `json:"year"`          // 1-indexed projection year
	Contribution  decimal.Decimal `json:"contribution"`  // Contribution in this year
	Invested      decimal.Decimal `json:"invested"`      // Cumulative contributions
	YearlyReturn  decimal.Decimal `json:"yearlyReturn"`  // Interest earned in this year
	MonthlyReturn decimal.Decimal `json:"monthlyReturn"` // Monthly equivalent of the interest
	MarketValue   decimal.Decimal `json:"marketValue"`   // Value at the end of the year
}

// Project computes the projection table for the settings.
//
// Contributions are added at the start of each year, before interest
// accrues, and stop after the invested duration. Interest compounds
// annually on the combined balance. The function is pure, validation
// of the settings happens when they are saved.
func Project(settings models.InvestmentSettings) []ProjectionYear {
	rate := settings.ReturnRate.Div(decimal.NewFromInt(100))

	rows := make([]ProjectionYear, 0, settings.TotalDuration)

	var invested, marketValue decimal.Decimal
	for year := 1; year <= settings.TotalDuration; year++ {
		contribution := decimal.Zero
		if year <= settings.InvestedDuration {
			contribution = settings.YearlyAmount
		}

		// Contribution is invested before interest accrues
		beginBalance := marketValue.Add(contribution)
		yearlyReturn := beginBalance.Mul(rate)

		invested = invested.Add(contribution)
		marketValue = beginBalance.Add(yearlyReturn)

		rows = append(rows, ProjectionYear{
			Year:          year,
			Contribution:  contribution,
			Invested:      invested,
			YearlyReturn:  yearlyReturn,
			MonthlyReturn: yearlyReturn.Div(decimal.NewFromInt(12)),
			MarketValue:   marketValue,
		})
	}

	return rows
}
