// Package recurring materializes recurring transactions into the
// current month.
//
// A transaction flagged as recurring acts as its own template: once a
// full month has passed since its date, a copy dated today is created
// unless the current month already contains a transaction with the same
// fingerprint. The fingerprint (description, category, amount and type)
// deliberately ignores source and payment method, so a changed amount
// counts as a legitimately new entry rather than a duplicate.
package recurring

import (
	"time"

	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CheckInterval is the minimum time between two materializer runs for
// the same user. This only throttles load on page visits, correctness
// is guaranteed by the fingerprint match.
const CheckInterval = 30 * time.Minute

// Materializer creates the due copies of recurring transactions.
type Materializer struct {
	// Now returns the current time. Defaults to time.Now in UTC,
	// tests override it.
	Now func() time.Time
}

type fingerprint struct {
	description string
	category    string
	amount      string
	typ         models.TransactionType
}

func fingerprintOf(t models.Transaction) fingerprint {
	return fingerprint{
		description: t.Description,
		category:    t.Category,
		amount:      t.Amount.String(),
		typ:         t.Type,
	}
}

func (m Materializer) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}

	return time.Now().In(time.UTC)
}

// Run executes a throttled materializer check for the user.
// It returns the created transactions and whether the check actually
// ran or was throttled.
func (m Materializer) Run(userID uuid.UUID) ([]models.Transaction, bool) {
	if !m.shouldCheck(userID) {
		return nil, false
	}

	created := m.CheckAndMaterialize(userID)
	m.markChecked(userID)

	return created, true
}

// CheckAndMaterialize creates the due copies of the user's recurring
// transactions and returns them.
//
// This runs as a best-effort background task on page load, so every
// internal error is logged and results in no created transactions
// instead of propagating. Re-running within the same month creates no
// further copies, the fingerprint match already sees the first one.
func (m Materializer) CheckAndMaterialize(userID uuid.UUID) []models.Transaction {
	now := m.now()

	recurring, err := models.RecurringTransactions(userID)
	if err != nil {
		log.Error().Err(err).Str("user", userID.String()).Msg("recurring check aborted")
		return nil
	}

	if len(recurring) == 0 {
		return nil
	}

	currentMonth, err := models.MonthTransactions(userID, types.MonthOf(now))
	if err != nil {
		log.Error().Err(err).Str("user", userID.String()).Msg("recurring check aborted")
		return nil
	}

	existing := make(map[fingerprint]struct{}, len(currentMonth))
	for _, transaction := range currentMonth {
		existing[fingerprintOf(transaction)] = struct{}{}
	}

	var create []models.Transaction
	for _, template := range recurring {
		// A recurring transaction is not re-materialized within
		// its own origination month
		if template.Date.WholeMonthsUntil(now) < 1 {
			continue
		}

		if _, ok := existing[fingerprintOf(template)]; ok {
			continue
		}

		create = append(create, models.Transaction{
			UserID:        userID,
			Type:          template.Type,
			Amount:        template.Amount,
			Date:          types.DateOf(now),
			Category:      template.Category,
			Source:        template.Source,
			PaymentMethod: template.PaymentMethod,
			Description:   template.Description,
			IsRecurring:   true,
		})
	}

	if len(create) == 0 {
		return nil
	}

	err = models.DB.Create(&create).Error
	if err != nil {
		log.Error().Err(err).Str("user", userID.String()).Msg("inserting materialized transactions failed")
		return nil
	}

	log.Info().Str("user", userID.String()).Int("created", len(create)).Msg("materialized recurring transactions")
	return create
}

// shouldCheck reports whether the check interval has elapsed since the
// last run for the user. Errors count as "check now", the check itself
// is idempotent.
func (m Materializer) shouldCheck(userID uuid.UUID) bool {
	var settings models.UserSettings
	err := models.DB.Where(&models.UserSettings{UserID: userID}).First(&settings).Error
	if err != nil {
		return true
	}

	return m.now().Sub(settings.LastRecurringCheck) >= CheckInterval
}

// markChecked persists the time of this run for the user.
func (m Materializer) markChecked(userID uuid.UUID) {
	var settings models.UserSettings
	err := models.DB.Where(&models.UserSettings{UserID: userID}).First(&settings).Error
	if err != nil {
		settings = models.UserSettings{UserID: userID, LastRecurringCheck: m.now()}
		if err := models.DB.Create(&settings).Error; err != nil {
			log.Error().Err(err).Str("user", userID.String()).Msg("persisting recurring check time failed")
		}
		return
	}

	err = models.DB.Model(&settings).Update("last_recurring_check", m.now()).Error
	if err != nil {
		log.Error().Err(err).Str("user", userID.String()).Msg("persisting recurring check time failed")
	}
}
