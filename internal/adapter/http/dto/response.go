package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/domain"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

// EntryResponse represents a journal row in API responses.
type EntryResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Ref         string          `json:"ref,omitempty"`
	Account     string          `json:"account"`
	Debit       decimal.Decimal `json:"debit"`
	Kredit      decimal.Decimal `json:"kredit"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.JournalEntry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Ref:         e.Ref,
		Account:     e.Account,
		Debit:       e.Debit,
		Kredit:      e.Kredit,
		CreatedAt:   e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// JournalResponse is the printable journal view with its totals.
type JournalResponse struct {
	Entries     []*EntryResponse `json:"entries"`
	TotalDebit  decimal.Decimal  `json:"total_debit"`
	TotalKredit decimal.Decimal  `json:"total_kredit"`
}

// JournalFromView converts a journal view to a response.
func JournalFromView(v *usecase.JournalView) *JournalResponse {
	return &JournalResponse{
		Entries:     EntriesFromDomain(v.Entries),
		TotalDebit:  v.TotalDebit,
		TotalKredit: v.TotalKredit,
	}
}

// TransactionResponse represents one ledger posting.
type TransactionResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Kredit      decimal.Decimal `json:"kredit"`
}

// LedgerAccountResponse represents one ledger account's aggregates.
type LedgerAccountResponse struct {
	Ref          string                `json:"ref"`
	Name         string                `json:"name"`
	TotalDebit   decimal.Decimal       `json:"total_debit"`
	TotalKredit  decimal.Decimal       `json:"total_kredit"`
	NetDebit     decimal.Decimal       `json:"net_debit"`
	NetKredit    decimal.Decimal       `json:"net_kredit"`
	Transactions []TransactionResponse `json:"transactions"`
}

// LedgerAccountFromDomain converts a domain account to a response.
func LedgerAccountFromDomain(a *domain.Account) *LedgerAccountResponse {
	txs := make([]TransactionResponse, len(a.Transactions))
	for i, t := range a.Transactions {
		txs[i] = TransactionResponse{
			Date:        t.Date,
			Description: t.Description,
			Debit:       t.Debit,
			Kredit:      t.Kredit,
		}
	}
	return &LedgerAccountResponse{
		Ref:          a.Ref,
		Name:         a.Name,
		TotalDebit:   a.TotalDebit,
		TotalKredit:  a.TotalKredit,
		NetDebit:     a.NetDebit(),
		NetKredit:    a.NetKredit(),
		Transactions: txs,
	}
}

// LedgerResponse lists every account in ref order.
type LedgerResponse struct {
	Accounts []*LedgerAccountResponse `json:"accounts"`
}

// LedgerFromDomain converts a ledger to a response, accounts sorted by ref.
func LedgerFromDomain(l domain.Ledger) *LedgerResponse {
	resp := &LedgerResponse{Accounts: make([]*LedgerAccountResponse, 0, len(l))}
	for _, ref := range l.Refs() {
		resp.Accounts = append(resp.Accounts, LedgerAccountFromDomain(l[ref]))
	}
	return resp
}

// BalanceRowResponse represents one running balance row.
type BalanceRowResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Kredit      decimal.Decimal `json:"kredit"`
	SaldoDebit  decimal.Decimal `json:"saldo_debit"`
	SaldoKredit decimal.Decimal `json:"saldo_kredit"`
}

// AccountViewResponse is the per-account ledger page.
type AccountViewResponse struct {
	Account *LedgerAccountResponse `json:"account"`
	Rows    []BalanceRowResponse   `json:"rows"`
}

// AccountViewFromUseCase converts an account view to a response.
func AccountViewFromUseCase(v *usecase.AccountView) *AccountViewResponse {
	rows := make([]BalanceRowResponse, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = BalanceRowResponse{
			Date:        r.Date,
			Description: r.Description,
			Debit:       r.Debit,
			Kredit:      r.Kredit,
			SaldoDebit:  r.SaldoDebit,
			SaldoKredit: r.SaldoKredit,
		}
	}
	return &AccountViewResponse{
		Account: LedgerAccountFromDomain(v.Account),
		Rows:    rows,
	}
}

// TrialBalanceRowResponse represents one trial balance row.
type TrialBalanceRowResponse struct {
	Ref     string          `json:"ref,omitempty"`
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Kredit  decimal.Decimal `json:"kredit"`
}

// TrialBalanceResponse is the trial balance table with its totals.
type TrialBalanceResponse struct {
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"total_debit"`
	TotalKredit decimal.Decimal           `json:"total_kredit"`
}

// TrialBalanceFromView converts a trial balance view to a response.
func TrialBalanceFromView(v *usecase.TrialBalanceView) *TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = TrialBalanceRowResponse{
			Ref:     r.Ref,
			Account: r.Account,
			Debit:   r.Debit,
			Kredit:  r.Kredit,
		}
	}
	return &TrialBalanceResponse{
		Rows:        rows,
		TotalDebit:  v.TotalDebit,
		TotalKredit: v.TotalKredit,
	}
}

// LineItemResponse represents one statement line item.
type LineItemResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

func lineItemsFromDomain(items []domain.LineItem) []LineItemResponse {
	result := make([]LineItemResponse, len(items))
	for i, it := range items {
		result[i] = LineItemResponse{Label: it.Label, Amount: it.Amount}
	}
	return result
}

// IncomeStatementResponse is the Laba/Rugi report.
type IncomeStatementResponse struct {
	Revenues     []LineItemResponse `json:"pendapatan"`
	Expenses     []LineItemResponse `json:"beban"`
	TotalRevenue decimal.Decimal    `json:"total_pendapatan"`
	TotalExpense decimal.Decimal    `json:"total_beban"`
	NetResult    decimal.Decimal    `json:"laba_rugi_bersih"`
	Profit       bool               `json:"laba"`
}

// IncomeFromDomain converts an income statement to a response.
func IncomeFromDomain(s domain.IncomeStatement) *IncomeStatementResponse {
	return &IncomeStatementResponse{
		Revenues:     lineItemsFromDomain(s.Revenues),
		Expenses:     lineItemsFromDomain(s.Expenses),
		TotalRevenue: s.TotalRevenue,
		TotalExpense: s.TotalExpense,
		NetResult:    s.NetResult,
		Profit:       s.Profit,
	}
}

// BalanceSheetResponse is the Neraca report.
type BalanceSheetResponse struct {
	CurrentAssets []LineItemResponse `json:"aktiva_lancar"`
	FixedAssets   []LineItemResponse `json:"aktiva_tetap"`
	Liabilities   []LineItemResponse `json:"kewajiban"`

	TotalCurrentAssets decimal.Decimal `json:"total_aktiva_lancar"`
	TotalFixedAssets   decimal.Decimal `json:"total_aktiva_tetap"`
	TotalAssets        decimal.Decimal `json:"total_aktiva"`
	TotalLiabilities   decimal.Decimal `json:"total_kewajiban"`

	OpeningCapital decimal.Decimal `json:"modal_awal"`
	NetResult      decimal.Decimal `json:"laba_rugi_bersih"`
	Withdrawals    decimal.Decimal `json:"prive"`
	EndingEquity   decimal.Decimal `json:"modal_akhir"`

	TotalLiabilitiesEquity decimal.Decimal `json:"total_passiva"`
	Balanced               bool            `json:"seimbang"`
}

// BalanceSheetFromDomain converts a balance sheet to a response.
func BalanceSheetFromDomain(s domain.BalanceSheet) *BalanceSheetResponse {
	return &BalanceSheetResponse{
		CurrentAssets:          lineItemsFromDomain(s.CurrentAssets),
		FixedAssets:            lineItemsFromDomain(s.FixedAssets),
		Liabilities:            lineItemsFromDomain(s.Liabilities),
		TotalCurrentAssets:     s.TotalCurrentAssets,
		TotalFixedAssets:       s.TotalFixedAssets,
		TotalAssets:            s.TotalAssets,
		TotalLiabilities:       s.TotalLiabilities,
		OpeningCapital:         s.OpeningCapital,
		NetResult:              s.NetResult,
		Withdrawals:            s.Withdrawals,
		EndingEquity:           s.EndingEquity,
		TotalLiabilitiesEquity: s.TotalLiabilitiesEquity,
		Balanced:               s.Balanced,
	}
}

// CashFlowResponse is the Arus Kas report.
type CashFlowResponse struct {
	Operating []LineItemResponse `json:"arus_kas_operasi"`
	Investing []LineItemResponse `json:"arus_kas_investasi"`
	Financing []LineItemResponse `json:"arus_kas_pendanaan"`

	TotalOperating decimal.Decimal `json:"total_operasi"`
	TotalInvesting decimal.Decimal `json:"total_investasi"`
	TotalFinancing decimal.Decimal `json:"total_pendanaan"`
}

// CashFlowFromDomain converts a cash flow statement to a response.
func CashFlowFromDomain(s domain.CashFlowStatement) *CashFlowResponse {
	return &CashFlowResponse{
		Operating:      lineItemsFromDomain(s.Operating),
		Investing:      lineItemsFromDomain(s.Investing),
		Financing:      lineItemsFromDomain(s.Financing),
		TotalOperating: s.TotalOperating,
		TotalInvesting: s.TotalInvesting,
		TotalFinancing: s.TotalFinancing,
	}
}

// SeedResponse reports whether an auto-seed ran.
type SeedResponse struct {
	Seeded bool `json:"seeded"`
}

// StatusResponse is a minimal acknowledgement body.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
