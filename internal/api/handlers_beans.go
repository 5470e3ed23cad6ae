package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/brewnote/brewnote/internal/api/respond"
	"github.com/brewnote/brewnote/internal/model"
	"github.com/brewnote/brewnote/internal/store"
	"github.com/brewnote/brewnote/internal/views"
)

// BeanHandler is a thin HTTP transport over the bean collection.
type BeanHandler struct {
	store *store.Store
}

func NewBeanHandler(st *store.Store) *BeanHandler { return &BeanHandler{store: st} }

// beanView decorates a bean with its derived display score for list and
// detail replies.
type beanView struct {
	model.Bean
	DisplayScore float64 `json:"displayScore"`
}

func newBeanView(b model.Bean) beanView {
	b.TastingRecords = views.SortRecordsByDate(b.TastingRecords)
	return beanView{Bean: b, DisplayScore: views.AggregateScore(b)}
}

// ListBeans GET /api/beans?q=<search>
func (h *BeanHandler) ListBeans(w http.ResponseWriter, r *http.Request) {
	beans := views.FilterBeans(h.store.Beans(), r.URL.Query().Get("q"))
	out := make([]beanView, 0, len(beans))
	for _, b := range beans {
		out = append(out, newBeanView(b))
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"beans": out, "count": len(out)})
}

// GetBean GET /api/beans/{beanId}
func (h *BeanHandler) GetBean(w http.ResponseWriter, r *http.Request) {
	b, ok := h.store.GetBean(mux.Vars(r)["beanId"])
	if !ok {
		respond.WriteNotFound(w, "bean not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, newBeanView(b))
}

// CreateBean POST /api/beans
func (h *BeanHandler) CreateBean(w http.ResponseWriter, r *http.Request) {
	var b model.Bean
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if b.Name == "" {
		respond.WriteBadRequest(w, "name is required")
		return
	}
	created, err := h.store.AddBean(r.Context(), b)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, newBeanView(created))
}

// UpdateBean PUT /api/beans/{beanId}
func (h *BeanHandler) UpdateBean(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["beanId"]
	if _, ok := h.store.GetBean(id); !ok {
		respond.WriteNotFound(w, "bean not found")
		return
	}
	var b model.Bean
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	b.ID = id
	if err := h.store.UpdateBean(r.Context(), b); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, newBeanView(b))
}

// DeleteBean DELETE /api/beans/{beanId}
func (h *BeanHandler) DeleteBean(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteBean(r.Context(), mux.Vars(r)["beanId"]); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
