package domain

import "errors"

// Domain errors as sentinel values
var (
	// Field access errors
	ErrUnknownField     = errors.New("unknown profile field")
	ErrFieldNotEditable = errors.New("profile field is not editable")
	ErrFieldType        = errors.New("value has the wrong type for profile field")

	// Store errors
	ErrSaveInProgress = errors.New("a save is already in progress")

	// Save errors
	ErrValidation = errors.New("profile failed validation")
	ErrSaveFailed = errors.New("failed to save partner profile")

	// Lookup errors
	ErrProfileNotFound = errors.New("partner profile not found")
	ErrSessionNotFound = errors.New("editing session not found")
)
