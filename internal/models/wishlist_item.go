package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Priority is the ordinal priority of a wishlist item.
type Priority uint8

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Valid reports whether the priority is in the allowed range.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	}

	return "unknown"
}

// Necessity rates how much a wishlist item is actually needed, from 1 to 5.
type Necessity uint8

// Valid reports whether the necessity is in the allowed range.
func (n Necessity) Valid() bool {
	return n >= 1 && n <= 5
}

// WishlistItem is a purchase the user is considering.
//
// Purchased items stay in the table so the purchase history is kept,
// they are only excluded from the active affordability display.
type WishlistItem struct {
	DefaultModel
	UserID    uuid.UUID `gorm:"index"`
	Name      string
	Cost      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Priority  Priority
	Necessity Necessity
	Purchased bool
}

// BeforeSave validates the ordinal fields and trims the name.
func (w *WishlistItem) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return ErrWishlistNameRequired
	}

	if !w.Priority.Valid() {
		return ErrPriorityInvalid
	}

	if !w.Necessity.Valid() {
		return ErrNecessityInvalid
	}

	return nil
}

// AfterSave enforces a positive cost.
func (w *WishlistItem) AfterSave(_ *gorm.DB) error {
	if !w.Cost.IsPositive() {
		return ErrCostNotPositive
	}

	return nil
}

// Returns all wishlist items on this instance for export
func (WishlistItem) Export() (json.RawMessage, error) {
	var items []WishlistItem
	err := DB.Unscoped().Where(&WishlistItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&items)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
