package v1_test

import (
	"net/http"

	v1 "github.com/gargantua-app/backend/internal/controllers/v1"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRecurringCheckOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/recurring/check", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestRecurringCheckUnauthorized() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring/check", "", map[string]string{identity.HeaderUser: ""})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

// TestRecurringCheck verifies that a check materializes due recurring
// transactions and that an immediate second check is throttled.
func (suite *TestSuiteStandard) TestRecurringCheck() {
	// A template from two months ago is due for this month
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:        models.TransactionExpense,
		Amount:      decimal.NewFromInt(649),
		Description: "Music subscription",
		IsRecurring: true,
		Date:        firstOfMonth().AddDate(0, -2, 0),
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring/check", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecurringCheckResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 1, response.Data.Created)
	assert.False(suite.T(), response.Data.Skipped)

	// The materialized copy shows up in the ledger
	listRecorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?search=Music", "")
	test.AssertHTTPStatus(suite.T(), &listRecorder, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &listRecorder, &list)
	assert.Len(suite.T(), list.Data, 2)

	// The second check within the throttle window does not run
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring/check", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Zero(suite.T(), response.Data.Created)
	assert.True(suite.T(), response.Data.Skipped)
}

// TestRecurringCheckNothingDue verifies that a check without any due
// templates reports zero created transactions.
func (suite *TestSuiteStandard) TestRecurringCheckNothingDue() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      decimal.NewFromInt(649),
		IsRecurring: true,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring/check", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecurringCheckResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Zero(suite.T(), response.Data.Created)
	assert.False(suite.T(), response.Data.Skipped)
}
