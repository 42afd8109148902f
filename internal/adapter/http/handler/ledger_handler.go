package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/desadigital/bumdeskas/internal/adapter/http/dto"
	"github.com/desadigital/bumdeskas/internal/adapter/pdf"
	"github.com/desadigital/bumdeskas/internal/infrastructure/metrics"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

// LedgerHandler handles Buku Besar HTTP requests.
type LedgerHandler struct {
	ledgerUC *usecase.LedgerUseCase
	metrics  *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, metrics: m}
}

// List rebuilds the ledger and returns every account in ref order.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	ledger, err := h.ledgerUC.Build(r.Context(), period)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build ledger", err.Error())
		return
	}

	h.metrics.LedgerBuilds.Inc()
	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(ledger))
}

// Account returns one account's ledger page with running balances, as JSON
// or PDF.
func (h *LedgerHandler) Account(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	if ref == "" {
		writeError(w, http.StatusBadRequest, "missing account ref", "")
		return
	}

	period, err := parsePeriodQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	view, err := h.ledgerUC.Account(r.Context(), ref, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	h.metrics.LedgerBuilds.Inc()

	if wantsPDF(r) {
		doc := pdf.LedgerAccountDocument(view)
		if writePDF(w, doc, "buku_besar_"+view.Account.Ref+".pdf") == nil {
			h.metrics.DocumentsExported.WithLabelValues("ledger").Inc()
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountViewFromUseCase(view))
}
