package domain

import "strings"

// ValidateEntry checks a journal row before it is committed to the store.
// Aggregation downstream tolerates malformed rows; this gate only rejects
// input the operator should immediately fix. With strict enabled, rows with
// both sides filled are rejected as well (some deployments validate this,
// most do not).
func ValidateEntry(e *JournalEntry, strict bool) error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrBlankDescription
	}
	if e.Debit.IsNegative() || e.Kredit.IsNegative() {
		return ErrNegativeAmount
	}
	if !e.Debit.IsPositive() && !e.Kredit.IsPositive() {
		return ErrNoAmount
	}
	if strict && e.Debit.IsPositive() && e.Kredit.IsPositive() {
		return ErrBothSidesFilled
	}
	return nil
}
