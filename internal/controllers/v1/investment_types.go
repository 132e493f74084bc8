package v1

import (
	"github.com/gargantua-app/backend/internal/investments"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvestmentSettingsEditable struct {
	YearlyAmount     decimal.Decimal `json:"yearlyAmount" example:"100000" minimum:"0"`       // Contribution per year
	ReturnRate       decimal.Decimal `json:"returnRate" example:"10" minimum:"0"`             // Expected annual return in percent
	InvestedDuration int             `json:"investedDuration" example:"10" minimum:"1"`       // Years contributions continue
	TotalDuration    int             `json:"totalDuration" example:"25" minimum:"1"`          // Years projected in total
}

// model returns the database resource for the API representation of the editable fields
func (editable InvestmentSettingsEditable) model(userID uuid.UUID) models.InvestmentSettings {
	return models.InvestmentSettings{
		UserID:           userID,
		YearlyAmount:     editable.YearlyAmount,
		ReturnRate:       editable.ReturnRate,
		InvestedDuration: editable.InvestedDuration,
		TotalDuration:    editable.TotalDuration,
	}
}

// InvestmentSettings is the API representation of the InvestmentSettings.
type InvestmentSettings struct {
	models.DefaultModel
	InvestmentSettingsEditable
}

func newInvestmentSettings(model models.InvestmentSettings) InvestmentSettings {
	return InvestmentSettings{
		DefaultModel: model.DefaultModel,
		InvestmentSettingsEditable: InvestmentSettingsEditable{
			YearlyAmount:     model.YearlyAmount,
			ReturnRate:       model.ReturnRate,
			InvestedDuration: model.InvestedDuration,
			TotalDuration:    model.TotalDuration,
		},
	}
}

type InvestmentSettingsResponse struct {
	Error *string             `json:"error" example:"the total duration must not be shorter than the invested duration"` // The error, if any occurred
	Data  *InvestmentSettings `json:"data"`                                                                              // The settings. Null when the user has not configured any yet
}

// InvestmentProjection is the settings together with the year-by-year
// projection table they produce.
type InvestmentProjection struct {
	Settings   *InvestmentSettings          `json:"settings"`   // Null when the user has not configured any settings yet
	Projection []investments.ProjectionYear `json:"projection"` // Empty when there are no settings
}

type InvestmentProjectionResponse struct {
	Error *string               `json:"error" example:"there is no user for this request"` // The error, if any occurred
	Data  *InvestmentProjection `json:"data"`                                              // The projection data
}
