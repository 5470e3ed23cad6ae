package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	respond "github.com/brewnote/brewnote/internal/api/respond"
	"github.com/brewnote/brewnote/internal/storage"
	"github.com/brewnote/brewnote/internal/store"
)

// maxSnapshotBytes bounds import payloads. Journals are small; anything
// larger is a wrong file.
const maxSnapshotBytes = 16 << 20

// SnapshotHandler serves whole-journal export and import.
type SnapshotHandler struct {
	storage storage.Storage
	store   *store.Store
	log     zerolog.Logger
}

func NewSnapshotHandler(st storage.Storage, s *store.Store, log zerolog.Logger) *SnapshotHandler {
	return &SnapshotHandler{storage: st, store: s, log: log}
}

// ExportSnapshot GET /api/snapshot
//
// The Content-Disposition filename is the suggested backup name,
// brewnote_backup_YYYYMMDD.json.
func (h *SnapshotHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.storage.ExportSnapshot(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	filename := fmt.Sprintf("brewnote_backup_%s.json", time.Now().Format("20060102"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	respond.WriteJSON(w, http.StatusOK, snap)
}

// ImportSnapshot POST /api/snapshot
//
// The whole payload is validated before anything is written; a rejected
// import leaves the stored journal untouched. After a successful import the
// in-memory collections reload from storage, which also re-runs migration
// over the imported beans.
func (h *SnapshotHandler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		respond.WriteBadRequest(w, "unreadable request body")
		return
	}
	if err := h.storage.ImportSnapshot(r.Context(), raw); err != nil {
		h.log.Warn().Err(err).Msg("snapshot import rejected")
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := h.store.Reload(r.Context()); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"beans":   len(h.store.Beans()),
		"recipes": len(h.store.Recipes()),
	})
}
