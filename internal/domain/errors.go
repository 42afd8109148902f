package domain

import "errors"

var (
	// Journal entry errors
	ErrBlankDescription = errors.New("description is required")
	ErrNegativeAmount   = errors.New("amounts must not be negative")
	ErrNoAmount         = errors.New("either debit or kredit must be positive")
	ErrBothSidesFilled  = errors.New("debit and kredit cannot both be filled")
	ErrEntryNotFound    = errors.New("journal entry not found")

	// Ledger errors
	ErrAccountNotFound = errors.New("account not found in ledger")

	// Trial balance errors
	ErrRowNotFound = errors.New("trial balance row not found")

	// Statement errors
	ErrUnknownSection = errors.New("unknown statement section")
	ErrItemNotFound   = errors.New("line item not found")

	// Period errors
	ErrInvalidPeriod = errors.New("month must be 1-12 and year 2000-2100")
)
