package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/desadigital/bumdeskas/internal/adapter/http/dto"
	"github.com/desadigital/bumdeskas/internal/adapter/pdf"
	"github.com/desadigital/bumdeskas/internal/infrastructure/metrics"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

// StatementHandler handles financial statement HTTP requests.
type StatementHandler struct {
	stmtUC  *usecase.StatementUseCase
	metrics *metrics.Metrics
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(stmtUC *usecase.StatementUseCase, m *metrics.Metrics) *StatementHandler {
	return &StatementHandler{stmtUC: stmtUC, metrics: m}
}

// Income returns the Laba/Rugi statement, as JSON or PDF.
func (h *StatementHandler) Income(w http.ResponseWriter, r *http.Request) {
	stmt, err := h.stmtUC.Income(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to derive income statement", err.Error())
		return
	}

	if wantsPDF(r) {
		period, perr := parsePeriodQuery(r)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid period", perr.Error())
			return
		}
		doc := pdf.IncomeStatementDocument(stmt, periodOrDefault(period))
		if writePDF(w, doc, "laba_rugi.pdf") == nil {
			h.metrics.DocumentsExported.WithLabelValues("income").Inc()
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeFromDomain(stmt))
}

// BalanceSheet returns the Neraca statement, as JSON or PDF.
func (h *StatementHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	stmt, err := h.stmtUC.BalanceSheet(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to derive balance sheet", err.Error())
		return
	}

	if wantsPDF(r) {
		period, perr := parsePeriodQuery(r)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid period", perr.Error())
			return
		}
		doc := pdf.BalanceSheetDocument(stmt, periodOrDefault(period))
		if writePDF(w, doc, "neraca.pdf") == nil {
			h.metrics.DocumentsExported.WithLabelValues("balance_sheet").Inc()
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceSheetFromDomain(stmt))
}

// CashFlow returns the Arus Kas statement, as JSON or PDF.
func (h *StatementHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	stmt, err := h.stmtUC.CashFlow(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to derive cash flow statement", err.Error())
		return
	}

	if wantsPDF(r) {
		period, perr := parsePeriodQuery(r)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid period", perr.Error())
			return
		}
		doc := pdf.CashFlowDocument(stmt, periodOrDefault(period))
		if writePDF(w, doc, "arus_kas.pdf") == nil {
			h.metrics.DocumentsExported.WithLabelValues("cash_flow").Inc()
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.CashFlowFromDomain(stmt))
}

// Seed bulk-loads the statement tables from the trial balance. force=true
// resets the one-shot guard and reloads.
func (h *StatementHandler) Seed(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	seeded, err := h.stmtUC.Seed(r.Context(), force)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to seed statements", err.Error())
		return
	}

	if seeded {
		h.metrics.StatementSeeds.Inc()
	}
	writeJSON(w, http.StatusOK, dto.SeedResponse{Seeded: seeded})
}

// AddItem appends a line item to a statement section.
func (h *StatementHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")

	var req dto.LineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.stmtUC.AddItem(r.Context(), section, req.ToDomain()); err != nil {
		writeError(w, mapDomainError(err), "failed to add item", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.StatusResponse{Status: "added"})
}

// RemoveItem deletes a line item by label.
func (h *StatementHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	label := chi.URLParam(r, "label")

	if err := h.stmtUC.RemoveItem(r.Context(), section, label); err != nil {
		writeError(w, mapDomainError(err), "failed to remove item", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "removed"})
}

// SetEquity sets the opening capital and prive figures.
func (h *StatementHandler) SetEquity(w http.ResponseWriter, r *http.Request) {
	var req dto.EquityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.stmtUC.SetEquity(r.Context(), req.OpeningCapital.Decimal, req.Withdrawals.Decimal); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to set equity", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "updated"})
}
