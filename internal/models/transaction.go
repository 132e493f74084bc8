package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gargantua-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction represents a single entry in the ledger.
//
// Source is only meaningful for income, PaymentMethod only for expenses.
// BeforeSave clears whichever does not apply to the type.
type Transaction struct {
	DefaultModel
	UserID        uuid.UUID       `gorm:"index"`
	Type          TransactionType `gorm:"index"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date          types.Date      `gorm:"index"`
	Category      string
	Source        string
	PaymentMethod string
	Description   string
	IsRecurring   bool
}

// BeforeSave
//   - validates the transaction type
//   - trims whitespace from string fields
//   - clears the field that does not apply to the transaction type
//   - defaults the date to today
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Source = strings.TrimSpace(t.Source)
	t.PaymentMethod = strings.TrimSpace(t.PaymentMethod)
	t.Description = strings.TrimSpace(t.Description)

	switch t.Type {
	case TransactionIncome:
		t.PaymentMethod = ""
	case TransactionExpense:
		t.Source = ""
	}

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now().In(time.UTC))
	}

	return nil
}

// AfterSave enforces a positive amount.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// Returns all transactions on this instance for export
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
