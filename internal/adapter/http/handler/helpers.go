package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/desadigital/bumdeskas/internal/adapter/http/dto"
	"github.com/desadigital/bumdeskas/internal/adapter/pdf"
	"github.com/desadigital/bumdeskas/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writePDF renders a document and writes it as an attachment.
func writePDF(w http.ResponseWriter, doc *pdf.Document, filename string) error {
	data, err := doc.Render()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render pdf", err.Error())
		return err
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
	return nil
}

// wantsPDF reports whether the request asked for the PDF rendition.
func wantsPDF(r *http.Request) bool {
	return r.URL.Query().Get("format") == "pdf"
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRowNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBlankDescription):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNegativeAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBothSidesFilled):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownSection):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// rejectionReason labels a validation failure for the rejection counter.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrBlankDescription):
		return "blank_description"
	case errors.Is(err, domain.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, domain.ErrNoAmount):
		return "no_amount"
	case errors.Is(err, domain.ErrBothSidesFilled):
		return "both_sides_filled"
	default:
		return "other"
	}
}

// parsePeriodQuery reads the optional month and year query parameters. Both
// absent means no period filter; one without the other is an error.
func parsePeriodQuery(r *http.Request) (*domain.Period, error) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if monthStr == "" && yearStr == "" {
		return nil, nil
	}
	if monthStr == "" || yearStr == "" {
		return nil, domain.ErrInvalidPeriod
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, domain.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, domain.ErrInvalidPeriod
	}

	period, err := domain.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// periodOrDefault falls back to the current month when no filter was given,
// for report headers that always print a period line.
func periodOrDefault(p *domain.Period) domain.Period {
	if p != nil {
		return *p
	}
	return domain.CurrentPeriod()
}
