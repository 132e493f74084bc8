package models

import (
	"encoding/json"
	"fmt"

	"github.com/gargantua-app/backend/internal/types"
	"github.com/google/uuid"
)

// Model is the interface all models implement.
type Model interface {
	Export() (json.RawMessage, error) // All instances of this model for export.
}

// The "Registry" is a slice of all models available
//
// It is maintained so that operations that affect all models do not need to
// explicitly iterate over every single model, increasing the risk of
// forgetting something when adding a new model
var Registry = []Model{
	Transaction{},
	WishlistItem{},
	InvestmentSettings{},
	UserSettings{},
}

// UserTransactions returns all transactions of a user, newest first.
func UserTransactions(userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction

	err := DB.
		Where(&Transaction{UserID: userID}).
		Order("date(transactions.date) DESC, transactions.created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("getting transactions for user %s failed: %w", userID, err)
	}

	return transactions, nil
}

// RecurringTransactions returns all transactions of a user that are
// flagged as recurring.
func RecurringTransactions(userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction

	err := DB.
		Where(&Transaction{UserID: userID, IsRecurring: true}).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("getting recurring transactions for user %s failed: %w", userID, err)
	}

	return transactions, nil
}

// MonthTransactions returns all transactions of a user dated in the month.
func MonthTransactions(userID uuid.UUID, month types.Month) ([]Transaction, error) {
	var transactions []Transaction

	err := DB.
		Where(&Transaction{UserID: userID}).
		Where("date(transactions.date) >= date(?)", month).
		Where("date(transactions.date) < date(?)", month.AddDate(0, 1)).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("getting transactions for user %s in %s failed: %w", userID, month, err)
	}

	return transactions, nil
}
