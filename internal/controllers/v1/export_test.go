package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/gargantua-app/backend/internal/controllers/v1"
	"github.com/gargantua-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(649), Description: "Music subscription"})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Espresso machine"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.False(suite.T(), response.CreationTime.IsZero())
	require.Contains(suite.T(), response.Data, "Transaction")
	require.Contains(suite.T(), response.Data, "WishlistItem")
	require.Contains(suite.T(), response.Data, "InvestmentSettings")
	require.Contains(suite.T(), response.Data, "UserSettings")

	var transactions []v1.TransactionEditable
	require.NoError(suite.T(), json.Unmarshal(response.Data["Transaction"], &transactions))
	require.Len(suite.T(), transactions, 1)
	assert.Equal(suite.T(), "Music subscription", transactions[0].Description)
}
