package api

import (
	"net/http"
	"time"

	"github.com/brewnote/brewnote/internal/api/respond"
	"github.com/brewnote/brewnote/internal/storage"
)

// HealthHandler reports whether the backing database is reachable.
type HealthHandler struct {
	storage storage.Storage
}

func NewHealthHandler(st storage.Storage) *HealthHandler { return &HealthHandler{storage: st} }

// CheckHealth serves GET /api/health. The reply is 200 either way; a failing
// database ping shows up as status "unhealthy" in the body.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if err := h.storage.HealthCheck(r.Context()); err != nil {
		status = "unhealthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
