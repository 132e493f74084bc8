package v1

import (
	"time"

	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type models.TransactionType `json:"type" example:"expense" enums:"income,expense"` // Whether money comes in or goes out

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"649" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction

	Date          types.Date `json:"date" example:"2024-03-15"`                       // Day the transaction happened. Defaults to today
	Category      string     `json:"category" example:"Entertainment" default:""`     // Category of the transaction
	Source        string     `json:"source" example:"Acme Corp" default:""`           // Where the money comes from. Only used for income
	PaymentMethod string     `json:"paymentMethod" example:"UPI" default:""`          // How the money was paid. Only used for expenses
	Description   string     `json:"description" example:"Movie tickets" default:""`  // A short description
	IsRecurring   bool       `json:"isRecurring" example:"false" default:"false"`     // Whether this transaction repeats monthly
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:        userID,
		Type:          editable.Type,
		Amount:        editable.Amount,
		Date:          editable.Date,
		Category:      editable.Category,
		Source:        editable.Source,
		PaymentMethod: editable.PaymentMethod,
		Description:   editable.Description,
		IsRecurring:   editable.IsRecurring,
	}
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:          model.Type,
			Amount:        model.Amount,
			Date:          model.Date,
			Category:      model.Category,
			Source:        model.Source,
			PaymentMethod: model.PaymentMethod,
			Description:   model.Description,
			IsRecurring:   model.IsRecurring,
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Type        models.TransactionType `form:"type" filterField:"false"`      // Type of the transaction
	Category    string                 `form:"category"`                      // Exact category. Set to an empty value to filter for uncategorized transactions
	Search      string                 `form:"search" filterField:"false"`    // Glob pattern matched against description and category, supports "*" wildcards
	IsRecurring bool                   `form:"recurring"`                     // Whether the transaction repeats monthly
	FromDate    time.Time              `form:"fromDate" filterField:"false"`  // Transactions at and after this date
	UntilDate   time.Time              `form:"untilDate" filterField:"false"` // Transactions before and at this date
	Offset      uint                   `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit       int                    `form:"limit" filterField:"false"`     // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// This does not set the type, string or date fields since they are
	// handled in the controller function
	return models.Transaction{
		Category:    f.Category,
		IsRecurring: f.IsRecurring,
	}
}
