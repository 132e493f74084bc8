// Package wishlist scores wishlist items for purchase affordability.
//
// The score is a weighted composite of how much the item is needed, how
// highly it is prioritized and whether its cost fits into the safe spend
// limit, which is 15% of the current balance.
package wishlist

import (
	"fmt"
	"math"

	"github.com/gargantua-app/backend/internal/currency"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// safeSpendRatio is the share of the balance that can be spent on a
// single wishlist purchase without it being flagged.
const safeSpendRatio = 0.15

// Composite weights: necessity 40%, priority 30%, affordability 30%.
const (
	necessityShare     = 0.4
	priorityShare      = 0.3
	affordabilityShare = 0.3
)

// Status classifies a wishlist item by how advisable the purchase is.
// The presentation layer maps the color tag to actual styling.
type Status uint8

const (
	StatusCannotAfford Status = iota
	StatusExceedsSafeLimit
	StatusRecommended
	StatusBorderline
	StatusNotRecommended
)

func (s Status) String() string {
	switch s {
	case StatusCannotAfford:
		return "cannot_afford"
	case StatusExceedsSafeLimit:
		return "exceeds_safe_limit"
	case StatusRecommended:
		return "recommended"
	case StatusBorderline:
		return "borderline"
	case StatusNotRecommended:
		return "not_recommended"
	}

	return "unknown"
}

// Color returns the semantic color tag for the status.
func (s Status) Color() string {
	switch s {
	case StatusCannotAfford:
		return "red"
	case StatusExceedsSafeLimit:
		return "orange"
	case StatusRecommended:
		return "green"
	case StatusBorderline:
		return "yellow"
	case StatusNotRecommended:
		return "gray"
	}

	return "gray"
}

// Evaluation is the result of scoring a wishlist item against the
// current balance.
type Evaluation struct {
	PurchaseScore  int             // 0 to 100
	Status         Status          //
	SafeSpendLimit decimal.Decimal // 15% of the balance at evaluation time
}

// Message returns the display message for the evaluation.
func (e Evaluation) Message() string {
	switch e.Status {
	case StatusCannotAfford:
		return "Cannot Afford"
	case StatusExceedsSafeLimit:
		return fmt.Sprintf("Exceeds Safe Limit (%s)", currency.Format(e.SafeSpendLimit))
	case StatusRecommended:
		return "Good to Purchase"
	case StatusBorderline:
		return "Borderline"
	}

	return "Not Recommended"
}

// Score evaluates a wishlist item.
//
// Necessity is mapped linearly from [1,5] to [2,10] and priority from
// [1,3] to [3.33,10]. Affordability is 10 within the safe spend limit
// and decays linearly with the overshoot. A negative balance routes to
// the cannot-afford or exceeds-limit status naturally.
func Score(priority models.Priority, necessity models.Necessity, cost, balance decimal.Decimal) Evaluation {
	safeSpendLimit := balance.Mul(decimal.NewFromFloat(safeSpendRatio))

	costF, _ := cost.Float64()
	limitF, _ := safeSpendLimit.Float64()

	necessityWeight := mapRange(float64(necessity), 1, 5, 2, 10)
	priorityWeight := mapRange(float64(priority), 1, 3, 3.33, 10)

	affordabilityWeight := 10.0
	if costF > limitF {
		affordabilityWeight = math.Max(0, 10-((costF-limitF)/limitF)*5)
	}

	score := int(math.Round((necessityWeight*necessityShare +
		priorityWeight*priorityShare +
		affordabilityWeight*affordabilityShare) * 10))

	var status Status
	switch {
	case balance.LessThan(cost):
		status = StatusCannotAfford
	case cost.GreaterThan(safeSpendLimit):
		status = StatusExceedsSafeLimit
	case score >= 70:
		status = StatusRecommended
	case score >= 40:
		status = StatusBorderline
	default:
		status = StatusNotRecommended
	}

	return Evaluation{
		PurchaseScore:  score,
		Status:         status,
		SafeSpendLimit: safeSpendLimit,
	}
}

// mapRange maps a value linearly from [inMin,inMax] to [outMin,outMax].
func mapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	return (value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
