package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvestmentSettings holds the parameters for the investment projection.
// There is exactly one row per user.
type InvestmentSettings struct {
	DefaultModel
	UserID           uuid.UUID       `gorm:"uniqueIndex"`
	YearlyAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Contribution per year
	ReturnRate       decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Annual return in percent
	InvestedDuration int             // Years contributions continue
	TotalDuration    int             // Years projected in total
}

// BeforeSave validates the projection parameters.
// Projecting beyond the contribution phase is fine, the other way
// around is not.
func (s *InvestmentSettings) BeforeSave(_ *gorm.DB) error {
	if s.UserID == uuid.Nil {
		return ErrSettingsUserIDRequired
	}

	if s.InvestedDuration <= 0 || s.TotalDuration <= 0 {
		return ErrDurationNotPositive
	}

	if s.TotalDuration < s.InvestedDuration {
		return ErrInvestmentDuration
	}

	return nil
}

// Returns all investment settings on this instance for export
func (InvestmentSettings) Export() (json.RawMessage, error) {
	var settings []InvestmentSettings
	err := DB.Unscoped().Where(&InvestmentSettings{}).Find(&settings).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&settings)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
