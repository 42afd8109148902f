package handler

import (
	"encoding/json"
	"net/http"

	"github.com/desadigital/bumdeskas/internal/adapter/http/dto"
	"github.com/desadigital/bumdeskas/internal/infrastructure/metrics"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

// BackupHandler handles snapshot, backup and restore HTTP requests.
type BackupHandler struct {
	backupUC *usecase.BackupUseCase
	enabled  bool
	metrics  *metrics.Metrics
}

// NewBackupHandler creates a new BackupHandler. enabled reflects whether a
// remote destination is configured; snapshot and restore work either way.
func NewBackupHandler(backupUC *usecase.BackupUseCase, enabled bool, m *metrics.Metrics) *BackupHandler {
	return &BackupHandler{backupUC: backupUC, enabled: enabled, metrics: m}
}

// Backup pushes the current snapshot to the remote store.
func (h *BackupHandler) Backup(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		writeError(w, http.StatusServiceUnavailable, "backup not configured", "set BACKUP_REPO and BACKUP_TOKEN")
		return
	}

	h.metrics.BackupAttempts.Inc()
	if err := h.backupUC.Backup(r.Context()); err != nil {
		h.metrics.BackupFailures.Inc()
		writeError(w, http.StatusBadGateway, "backup failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "backed up"})
}

// Snapshot returns the raw session snapshot.
func (h *BackupHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.backupUC.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to take snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Restore replaces the whole session with the posted snapshot.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var snap usecase.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot body", err.Error())
		return
	}

	if err := h.backupUC.Restore(r.Context(), &snap); err != nil {
		writeError(w, http.StatusInternalServerError, "restore failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "restored"})
}
