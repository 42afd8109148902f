package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/domain"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

// Amount decodes a numeric cell from the request body. Malformed input
// coerces to zero instead of failing the request, matching the tolerance of
// the entry grid: a bad cell never blocks the row, validation downstream
// decides whether the row as a whole is acceptable.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON accepts JSON numbers and numeric strings; anything else
// decodes as zero.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// EntryRequest represents a journal row to add or update.
type EntryRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Ref         string `json:"ref"`
	Account     string `json:"account"`
	Debit       Amount `json:"debit"`
	Kredit      Amount `json:"kredit"`
}

// ToUseCaseInput converts to use case input.
func (r *EntryRequest) ToUseCaseInput() usecase.EntryInput {
	return usecase.EntryInput{
		Date:        r.Date,
		Description: r.Description,
		Ref:         r.Ref,
		Account:     r.Account,
		Debit:       r.Debit.Decimal,
		Kredit:      r.Kredit.Decimal,
	}
}

// SyncRequest represents a trial balance synchronization command.
type SyncRequest struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Mode  string `json:"mode"`
}

// TrialBalanceRowRequest represents a manual trial balance row.
type TrialBalanceRowRequest struct {
	Ref     string `json:"ref"`
	Account string `json:"account"`
	Debit   Amount `json:"debit"`
	Kredit  Amount `json:"kredit"`
}

// ToDomain converts to a domain row.
func (r *TrialBalanceRowRequest) ToDomain() domain.TrialBalanceRow {
	return domain.TrialBalanceRow{
		Ref:     r.Ref,
		Account: r.Account,
		Debit:   r.Debit.Decimal,
		Kredit:  r.Kredit.Decimal,
	}
}

// LineItemRequest represents a statement line item to add.
type LineItemRequest struct {
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
}

// ToDomain converts to a domain line item.
func (r *LineItemRequest) ToDomain() domain.LineItem {
	return domain.LineItem{Label: r.Label, Amount: r.Amount.Decimal}
}

// EquityRequest represents the opening capital and prive figures.
type EquityRequest struct {
	OpeningCapital Amount `json:"opening_capital"`
	Withdrawals    Amount `json:"withdrawals"`
}
