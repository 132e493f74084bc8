package v1_test

import (
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

// updateTestInvestmentSettings saves investment settings via the v1 API.
func updateTestInvestmentSettings(t *testing.T, settings v1.InvestmentSettingsEditable) v1.InvestmentSettingsResponse {
	r := test.Request(t, http.MethodPut, "http://example.com/v1/investments/settings", settings)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.InvestmentSettingsResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestInvestmentsOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1/investments/settings", "OPTIONS, GET, PUT"},
		{"http://example.com/v1/investments/projection", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			assert.Equal(t, http.StatusNoContent, r.Code)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestInvestmentSettingsUnset verifies that unset settings are not an
// error, the data is null.
func (suite *TestSuiteStandard) TestInvestmentSettingsUnset() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/investments/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InvestmentSettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Error)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestInvestmentSettingsUpdate() {
	response := updateTestInvestmentSettings(suite.T(), v1.InvestmentSettingsEditable{
		YearlyAmount:     decimal.NewFromInt(100000),
		ReturnRate:       decimal.NewFromInt(10),
		InvestedDuration: 10,
		TotalDuration:    25,
	})

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.YearlyAmount.Equal(decimal.NewFromInt(100000)))
	assert.Equal(suite.T(), 25, response.Data.TotalDuration)

	// A second PUT replaces the settings instead of creating a second row
	replaced := updateTestInvestmentSettings(suite.T(), v1.InvestmentSettingsEditable{
		YearlyAmount:     decimal.NewFromInt(120000),
		ReturnRate:       decimal.NewFromInt(8),
		InvestedDuration: 5,
		TotalDuration:    30,
	})

	require.NotNil(suite.T(), replaced.Data)
	assert.Equal(suite.T(), response.Data.ID, replaced.Data.ID)
	assert.True(suite.T(), replaced.Data.YearlyAmount.Equal(decimal.NewFromInt(120000)))

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/investments/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var current v1.InvestmentSettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &current)
	require.NotNil(suite.T(), current.Data)
	assert.Equal(suite.T(), 30, current.Data.TotalDuration)
}

func (suite *TestSuiteStandard) TestInvestmentSettingsUpdateErrors() {
	tests := []struct {
		name     string
		settings v1.InvestmentSettingsEditable
		err      error
	}{
		{
			"Total shorter than invested",
			v1.InvestmentSettingsEditable{YearlyAmount: decimal.NewFromInt(100000), ReturnRate: decimal.NewFromInt(10), InvestedDuration: 10, TotalDuration: 5},
			models.ErrInvestmentDuration,
		},
		{
			"Negative duration",
			v1.InvestmentSettingsEditable{YearlyAmount: decimal.NewFromInt(100000), ReturnRate: decimal.NewFromInt(10), InvestedDuration: -1, TotalDuration: 5},
			models.ErrDurationNotPositive,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPut, "http://example.com/v1/investments/settings", tt.settings)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.InvestmentSettingsResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err.Error(), *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentSettingsUserScope() {
	_ = updateTestInvestmentSettings(suite.T(), v1.InvestmentSettingsEditable{
		YearlyAmount:     decimal.NewFromInt(100000),
		ReturnRate:       decimal.NewFromInt(10),
		InvestedDuration: 10,
		TotalDuration:    25,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/investments/settings", "", map[string]string{identity.HeaderUser: uuid.NewString()})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InvestmentSettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data)
}

// TestInvestmentProjectionEmpty verifies the projection response when no
// settings have been saved yet.
func (suite *TestSuiteStandard) TestInvestmentProjectionEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/investments/projection", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InvestmentProjectionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Nil(suite.T(), response.Data.Settings)
	assert.Empty(suite.T(), response.Data.Projection)
}

func (suite *TestSuiteStandard) TestInvestmentProjection() {
	_ = updateTestInvestmentSettings(suite.T(), v1.InvestmentSettingsEditable{
		YearlyAmount:     decimal.NewFromInt(100000),
		ReturnRate:       decimal.NewFromInt(10),
		InvestedDuration: 2,
		TotalDuration:    3,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/investments/projection", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InvestmentProjectionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	require.NotNil(suite.T(), response.Data.Settings)
	require.Len(suite.T(), response.Data.Projection, 3)

	assert.Equal(suite.T(), 1, response.Data.Projection[0].Year)
	assert.True(suite.T(), decimal.NewFromInt(110000).Equal(response.Data.Projection[0].MarketValue), "market value is %s", response.Data.Projection[0].MarketValue)

	// Contributions stop after the invested duration
	assert.True(suite.T(), response.Data.Projection[2].Contribution.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(254100).Equal(response.Data.Projection[2].MarketValue), "market value is %s", response.Data.Projection[2].MarketValue)
}

func (suite *TestSuiteStandard) TestInvestmentsDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/investments/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.InvestmentSettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}
