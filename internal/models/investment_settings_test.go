package models_test

import (
	"testing"

	"github.com/gargantua-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestInvestmentSettingsValidation() {
	user := uuid.New()

	tests := []struct {
		name     string
		settings models.InvestmentSettings
		err      error
	}{
		{"no user", models.InvestmentSettings{InvestedDuration: 10, TotalDuration: 10}, models.ErrSettingsUserIDRequired},
		{"zero durations", models.InvestmentSettings{UserID: user}, models.ErrDurationNotPositive},
		{"total shorter than invested", models.InvestmentSettings{UserID: user, InvestedDuration: 10, TotalDuration: 5}, models.ErrInvestmentDuration},
		{"equal durations", models.InvestmentSettings{UserID: user, InvestedDuration: 10, TotalDuration: 10}, nil},
		{"projection beyond contributions", models.InvestmentSettings{UserID: user, InvestedDuration: 10, TotalDuration: 30}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.settings.BeforeSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentSettingsOnePerUser() {
	user := uuid.New()

	settings := models.InvestmentSettings{
		UserID:           user,
		YearlyAmount:     decimal.NewFromFloat(120000),
		ReturnRate:       decimal.NewFromFloat(12),
		InvestedDuration: 10,
		TotalDuration:    20,
	}
	assert.Nil(suite.T(), models.DB.Create(&settings).Error)

	duplicate := models.InvestmentSettings{
		UserID:           user,
		YearlyAmount:     decimal.NewFromFloat(60000),
		ReturnRate:       decimal.NewFromFloat(8),
		InvestedDuration: 5,
		TotalDuration:    5,
	}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrSettingsNotUnique)
}
