package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings is per-user state that is not part of the ledger itself.
// Currently this is only the timestamp of the last recurring-transaction
// check, which throttles how often the materializer runs.
type UserSettings struct {
	DefaultModel
	UserID             uuid.UUID `gorm:"uniqueIndex"`
	LastRecurringCheck time.Time
}

func (s *UserSettings) BeforeSave(_ *gorm.DB) error {
	if s.UserID == uuid.Nil {
		return ErrSettingsUserIDRequired
	}

	return nil
}

// Returns all user settings on this instance for export
func (UserSettings) Export() (json.RawMessage, error) {
	var settings []UserSettings
	err := DB.Unscoped().Where(&UserSettings{}).Find(&settings).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&settings)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
