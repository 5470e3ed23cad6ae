package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	respond "github.com/brewnote/brewnote/internal/api/respond"
	"github.com/brewnote/brewnote/internal/migrate"
	"github.com/brewnote/brewnote/internal/model"
)

// Tasting records live inside their bean, so every record mutation reads the
// bean, edits the record list, and writes the whole bean back.

// AddRecord POST /api/beans/{beanId}/records
func (h *BeanHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	b, ok := h.store.GetBean(mux.Vars(r)["beanId"])
	if !ok {
		respond.WriteNotFound(w, "bean not found")
		return
	}
	var rec model.TastingRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	rec.ID = uuid.New().String()
	if rec.Date == "" {
		rec.Date = migrate.ToISOInstant(time.Now())
	}
	if rec.TastingNotes == nil {
		rec.TastingNotes = []string{}
	}
	b.TastingRecords = append(b.TastingRecords, rec)
	if err := h.store.UpdateBean(r.Context(), b); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rec)
}

// UpdateRecord PUT /api/beans/{beanId}/records/{recordId}
func (h *BeanHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	b, ok := h.store.GetBean(vars["beanId"])
	if !ok {
		respond.WriteNotFound(w, "bean not found")
		return
	}
	var rec model.TastingRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	rec.ID = vars["recordId"]
	found := false
	for i := range b.TastingRecords {
		if b.TastingRecords[i].ID == rec.ID {
			b.TastingRecords[i] = rec
			found = true
			break
		}
	}
	if !found {
		respond.WriteNotFound(w, "tasting record not found")
		return
	}
	if err := h.store.UpdateBean(r.Context(), b); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// DeleteRecord DELETE /api/beans/{beanId}/records/{recordId}
func (h *BeanHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	b, ok := h.store.GetBean(vars["beanId"])
	if !ok {
		respond.WriteNotFound(w, "bean not found")
		return
	}
	kept := b.TastingRecords[:0]
	for _, rec := range b.TastingRecords {
		if rec.ID != vars["recordId"] {
			kept = append(kept, rec)
		}
	}
	b.TastingRecords = kept
	if err := h.store.UpdateBean(r.Context(), b); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
