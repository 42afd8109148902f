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

// JournalHandler handles journal entry HTTP requests.
type JournalHandler struct {
	journalUC *usecase.JournalUseCase
	metrics   *metrics.Metrics
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalUC *usecase.JournalUseCase, m *metrics.Metrics) *JournalHandler {
	return &JournalHandler{journalUC: journalUC, metrics: m}
}

// Create appends a journal row.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.journalUC.AddEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusBadRequest {
			h.metrics.EntryRejections.WithLabelValues(rejectionReason(err)).Inc()
		}
		writeError(w, status, "failed to add entry", err.Error())
		return
	}

	h.metrics.EntriesRecorded.Inc()
	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// List lists journal rows, optionally filtered by month and year.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	entries, err := h.journalUC.ListEntries(r.Context(), period)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Journal returns the printable journal view with its TOTAL line, as JSON or
// PDF.
func (h *JournalHandler) Journal(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	view, err := h.journalUC.View(r.Context(), period)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build journal", err.Error())
		return
	}

	if wantsPDF(r) {
		doc := pdf.JournalDocument(view, periodOrDefault(period))
		if writePDF(w, doc, "jurnal_umum.pdf") == nil {
			h.metrics.DocumentsExported.WithLabelValues("journal").Inc()
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromView(view))
}

// Update replaces a row's cells in place.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	var req dto.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.journalUC.UpdateEntry(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusBadRequest {
			h.metrics.EntryRejections.WithLabelValues(rejectionReason(err)).Inc()
		}
		writeError(w, status, "failed to update entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Delete removes a row by ID.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.journalUC.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	h.metrics.EntriesDeleted.Inc()
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
