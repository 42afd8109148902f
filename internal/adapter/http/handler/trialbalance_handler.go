package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/desadigital/bumdeskas/internal/adapter/http/dto"
	"github.com/desadigital/bumdeskas/internal/adapter/pdf"
	"github.com/desadigital/bumdeskas/internal/domain"
	"github.com/desadigital/bumdeskas/internal/infrastructure/metrics"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

// TrialBalanceHandler handles Neraca Saldo HTTP requests.
type TrialBalanceHandler struct {
	tbUC    *usecase.TrialBalanceUseCase
	metrics *metrics.Metrics
}

// NewTrialBalanceHandler creates a new TrialBalanceHandler.
func NewTrialBalanceHandler(tbUC *usecase.TrialBalanceUseCase, m *metrics.Metrics) *TrialBalanceHandler {
	return &TrialBalanceHandler{tbUC: tbUC, metrics: m}
}

// List returns the current rows and totals, as JSON or PDF.
func (h *TrialBalanceHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.tbUC.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list trial balance", err.Error())
		return
	}

	if wantsPDF(r) {
		period, perr := parsePeriodQuery(r)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid period", perr.Error())
			return
		}
		doc := pdf.TrialBalanceDocument(view, periodOrDefault(period))
		if writePDF(w, doc, "neraca_saldo.pdf") == nil {
			h.metrics.DocumentsExported.WithLabelValues("trial_balance").Inc()
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceFromView(view))
}

// Sync rebuilds the ledger for the given period and merges it into the
// trial balance.
func (h *TrialBalanceHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req dto.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var period *domain.Period
	if req.Month != 0 || req.Year != 0 {
		p, err := domain.NewPeriod(req.Month, req.Year)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid period", err.Error())
			return
		}
		period = &p
	}

	mode := domain.SyncMode(req.Mode)
	if req.Mode == "" {
		mode = domain.SyncMerge
	}

	view, err := h.tbUC.Sync(r.Context(), period, mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to sync trial balance", err.Error())
		return
	}

	h.metrics.TrialBalanceSyncs.WithLabelValues(string(mode)).Inc()
	writeJSON(w, http.StatusOK, dto.TrialBalanceFromView(view))
}

// AddRow appends a manual row.
func (h *TrialBalanceHandler) AddRow(w http.ResponseWriter, r *http.Request) {
	var req dto.TrialBalanceRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.tbUC.AddRow(r.Context(), req.ToDomain()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add row", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.StatusResponse{Status: "added"})
}

// DeleteRow removes a row by ref, or by account name for rows without one.
func (h *TrialBalanceHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "ref")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing row ref", "")
		return
	}

	if err := h.tbUC.DeleteRow(r.Context(), key); err != nil {
		writeError(w, mapDomainError(err), "failed to delete row", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}

// Cleanup drops rows with no account name.
func (h *TrialBalanceHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	if err := h.tbUC.RemoveBlankRows(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to remove blank rows", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "cleaned"})
}
