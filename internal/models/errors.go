package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Transaction errors
	ErrAmountNotPositive       = errors.New("the amount must be positive")
	ErrTransactionTypeInvalid  = errors.New("the transaction type must be income or expense")
	ErrTransactionDateRequired = errors.New("the transaction date must be set")

	// Wishlist errors
	ErrWishlistNameRequired = errors.New("the wishlist item name must be set")
	ErrCostNotPositive      = errors.New("the cost must be positive")
	ErrPriorityInvalid      = errors.New("the priority must be between 1 (low) and 3 (high)")
	ErrNecessityInvalid     = errors.New("the necessity must be between 1 and 5")

	// Investment settings errors
	ErrInvestmentDuration     = errors.New("the total duration must not be shorter than the invested duration")
	ErrDurationNotPositive    = errors.New("durations must be positive")
	ErrSettingsUserIDRequired = errors.New("settings must reference a user")
	ErrSettingsNotUnique      = errors.New("settings for this user already exist")
)
