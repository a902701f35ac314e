package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cashflow-api/internal/metrics"
	"cashflow-api/internal/model"
)

type pinger interface {
	Health(ctx context.Context) error
}

type poolStater interface {
	PoolStats() (total int32, idle int32, acquired int32)
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if stater, ok := h.db.(poolStater); ok {
		metrics.RecordPoolStats(stater.PoolStats())
	}

	if err := h.db.Health(ctx); err != nil {
		slog.WarnContext(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, model.APIResponse{
			Success: false,
			Data:    map[string]string{"status": "unavailable", "database": "down"},
		})
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok", "database": "up"})
}
