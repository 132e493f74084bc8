package v1

import (
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/wishlist"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WishlistItemEditable struct {
	Name string `json:"name" example:"Espresso machine"` // Name of the item

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Cost decimal.Decimal `json:"cost" example:"24999" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // What the item costs

	Priority  models.Priority  `json:"priority" example:"2" minimum:"1" maximum:"3"`  // 1 is low, 2 is medium, 3 is high
	Necessity models.Necessity `json:"necessity" example:"4" minimum:"1" maximum:"5"` // How much the item is needed, from 1 to 5
	Purchased bool             `json:"purchased" example:"false" default:"false"`     // Whether the item has been bought
}

// model returns the database resource for the API representation of the editable fields
func (editable WishlistItemEditable) model(userID uuid.UUID) models.WishlistItem {
	return models.WishlistItem{
		UserID:    userID,
		Name:      editable.Name,
		Cost:      editable.Cost,
		Priority:  editable.Priority,
		Necessity: editable.Necessity,
		Purchased: editable.Purchased,
	}
}

// WishlistEvaluation is the affordability verdict for an item against
// the current balance.
type WishlistEvaluation struct {
	PurchaseScore  int             `json:"purchaseScore" example:"72" minimum:"0" maximum:"100"` // Composite affordability score
	Status         string          `json:"status" example:"recommended"`                         // Affordability status tier
	StatusColor    string          `json:"statusColor" example:"green"`                          // Display color for the status
	Message        string          `json:"message" example:"Good to Purchase"`                   // Display message for the status
	SafeSpendLimit decimal.Decimal `json:"safeSpendLimit" example:"15000"`                       // 15% of the balance at evaluation time
}

func newWishlistEvaluation(evaluation wishlist.Evaluation) WishlistEvaluation {
	return WishlistEvaluation{
		PurchaseScore:  evaluation.PurchaseScore,
		Status:         evaluation.Status.String(),
		StatusColor:    evaluation.Status.Color(),
		Message:        evaluation.Message(),
		SafeSpendLimit: evaluation.SafeSpendLimit,
	}
}

// WishlistItem is the API representation of a WishlistItem.
type WishlistItem struct {
	models.DefaultModel
	WishlistItemEditable
	Evaluation *WishlistEvaluation `json:"evaluation,omitempty"` // Only set on list responses, evaluated against the current balance
}

func newWishlistItem(model models.WishlistItem) WishlistItem {
	return WishlistItem{
		DefaultModel: model.DefaultModel,
		WishlistItemEditable: WishlistItemEditable{
			Name:      model.Name,
			Cost:      model.Cost,
			Priority:  model.Priority,
			Necessity: model.Necessity,
			Purchased: model.Purchased,
		},
	}
}

type WishlistListResponse struct {
	Data  []WishlistItem `json:"data"`                                                          // List of wishlist items
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type WishlistItemResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *WishlistItem `json:"data"`                                                          // The wishlist item data, if the request was successful
}

type WishlistQueryFilter struct {
	Purchased bool `form:"purchased"` // Whether the item has been bought
}

func (f WishlistQueryFilter) model() models.WishlistItem {
	return models.WishlistItem{
		Purchased: f.Purchased,
	}
}
