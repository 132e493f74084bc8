package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/gargantua-app/backend/internal/controllers/v1"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWishlistOptions verifies that the HTTP OPTIONS response for /wishlist/{id} is correct.
func (suite *TestSuiteStandard) TestWishlistOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return fmt.Sprintf("http://example.com/v1/wishlist/%s", createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Espresso machine"}).ID)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("http://example.com/v1/wishlist/%s", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			assert.Equal(t, tt.status, r.Code)
			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestWishlistDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wishlist", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.WishlistListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestWishlistCreate() {
	item := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{
		Name:      "Espresso machine",
		Cost:      decimal.NewFromInt(24999),
		Priority:  models.PriorityHigh,
		Necessity: 4,
	})

	assert.Equal(suite.T(), "Espresso machine", item.Name)
	assert.True(suite.T(), item.Cost.Equal(decimal.NewFromInt(24999)))
	assert.Equal(suite.T(), models.PriorityHigh, item.Priority)
	assert.False(suite.T(), item.Purchased)

	// The create response carries no evaluation
	assert.Nil(suite.T(), item.Evaluation)
}

// TestWishlistCreateErrors verifies that invalid items fail the whole
// create request.
func (suite *TestSuiteStandard) TestWishlistCreateErrors() {
	tests := []struct {
		name string
		item v1.WishlistItemEditable
		err  error
	}{
		{"Missing name", v1.WishlistItemEditable{Cost: decimal.NewFromInt(100), Priority: models.PriorityLow, Necessity: 1}, models.ErrWishlistNameRequired},
		{"Zero cost", v1.WishlistItemEditable{Name: "Free stuff", Priority: models.PriorityLow, Necessity: 1}, models.ErrCostNotPositive},
		{"Invalid priority", v1.WishlistItemEditable{Name: "Item", Cost: decimal.NewFromInt(100), Priority: 4, Necessity: 1}, models.ErrPriorityInvalid},
		{"Invalid necessity", v1.WishlistItemEditable{Name: "Item", Cost: decimal.NewFromInt(100), Priority: models.PriorityLow, Necessity: 6}, models.ErrNecessityInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/wishlist", []v1.WishlistItemEditable{tt.item})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.WishlistListResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err.Error(), *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestWishlistGetSingle() {
	item := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Standing desk"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/wishlist/%s", item.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WishlistItemResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Standing desk", response.Data.Name)
}

// TestWishlistSorting verifies the priority, necessity, creation date
// sort order.
func (suite *TestSuiteStandard) TestWishlistSorting() {
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Low priority", Priority: models.PriorityLow, Necessity: 5})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "High, less needed", Priority: models.PriorityHigh, Necessity: 2})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "High, needed", Priority: models.PriorityHigh, Necessity: 4})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wishlist", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WishlistListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 3)

	assert.Equal(suite.T(), "High, needed", response.Data[0].Name)
	assert.Equal(suite.T(), "High, less needed", response.Data[1].Name)
	assert.Equal(suite.T(), "Low priority", response.Data[2].Name)
}

// TestWishlistEvaluation verifies that list responses carry an
// affordability evaluation against the current balance.
func (suite *TestSuiteStandard) TestWishlistEvaluation() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionIncome,
		Amount: decimal.NewFromInt(100000),
	})

	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{
		Name:      "Within limit",
		Cost:      decimal.NewFromInt(10000),
		Priority:  models.PriorityHigh,
		Necessity: 5,
	})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{
		Name:      "Above limit",
		Cost:      decimal.NewFromInt(20000),
		Priority:  models.PriorityHigh,
		Necessity: 5,
	})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{
		Name:      "Above balance",
		Cost:      decimal.NewFromInt(150000),
		Priority:  models.PriorityHigh,
		Necessity: 5,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wishlist", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WishlistListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 3)

	byName := make(map[string]v1.WishlistItem, len(response.Data))
	for _, item := range response.Data {
		require.NotNil(suite.T(), item.Evaluation, "item %q has no evaluation", item.Name)
		byName[item.Name] = item
	}

	within := byName["Within limit"].Evaluation
	assert.Equal(suite.T(), 100, within.PurchaseScore)
	assert.Equal(suite.T(), "recommended", within.Status)
	assert.Equal(suite.T(), "green", within.StatusColor)
	assert.Equal(suite.T(), "Good to Purchase", within.Message)
	assert.True(suite.T(), decimal.NewFromInt(15000).Equal(within.SafeSpendLimit), "safe spend limit is %s", within.SafeSpendLimit)

	assert.Equal(suite.T(), "exceeds_safe_limit", byName["Above limit"].Evaluation.Status)
	assert.Equal(suite.T(), "orange", byName["Above limit"].Evaluation.StatusColor)

	assert.Equal(suite.T(), "cannot_afford", byName["Above balance"].Evaluation.Status)
	assert.Equal(suite.T(), "red", byName["Above balance"].Evaluation.StatusColor)
	assert.Equal(suite.T(), "Cannot Afford", byName["Above balance"].Evaluation.Message)
}

func (suite *TestSuiteStandard) TestWishlistPurchasedFilter() {
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Bought", Purchased: true})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Open"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"Purchased", "purchased=true", 1},
		{"Not purchased", "purchased=false", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/wishlist?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.WishlistListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestWishlistUserScope() {
	item := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Mine"})

	otherUser := map[string]string{identity.HeaderUser: uuid.NewString()}

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/wishlist/%s", item.ID), "", otherUser)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wishlist", "", otherUser)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WishlistListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestWishlistUpdate() {
	item := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{
		Name:      "Espresso machine",
		Cost:      decimal.NewFromInt(24999),
		Priority:  models.PriorityMedium,
		Necessity: 3,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/wishlist/%s", item.ID), map[string]any{
		"purchased": true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WishlistItemResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Purchased)

	// Fields not part of the PATCH are unchanged
	assert.Equal(suite.T(), "Espresso machine", response.Data.Name)
	assert.True(suite.T(), response.Data.Cost.Equal(decimal.NewFromInt(24999)))
	assert.Equal(suite.T(), models.PriorityMedium, response.Data.Priority)
}

func (suite *TestSuiteStandard) TestWishlistUpdateErrors() {
	item := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Item"})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid priority", item.ID.String(), map[string]any{"priority": 17}, http.StatusBadRequest},
		{"Invalid body", item.ID.String(), `{"name":`, http.StatusBadRequest},
		{"Does not exist", uuid.New().String(), map[string]any{"purchased": true}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/wishlist/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestWishlistDelete() {
	item := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Short-lived"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/wishlist/%s", item.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/wishlist/%s", item.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
