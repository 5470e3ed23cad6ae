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

// RecipeHandler is a thin HTTP transport over the recipe collection.
type RecipeHandler struct {
	store *store.Store
}

func NewRecipeHandler(st *store.Store) *RecipeHandler { return &RecipeHandler{store: st} }

// recipeFacets carries the filter options derived from the full collection.
type recipeFacets struct {
	Types       []string `json:"types"`
	Drippers    []string `json:"drippers"`
	RoastLevels []string `json:"roastLevels"`
	BeanAmounts []string `json:"beanAmounts"`
}

// ListRecipes GET /api/recipes?type=&dripper=&roastLevel=&beanAmount=
//
// Facets are always derived from the full collection so the options stay
// stable while individual filters are applied.
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	all := h.store.Recipes()

	q := r.URL.Query()
	filter := views.RecipeFilter{
		Type:       q.Get("type"),
		Dripper:    q.Get("dripper"),
		RoastLevel: q.Get("roastLevel"),
		BeanAmount: q.Get("beanAmount"),
	}
	filtered := views.FilterRecipes(all, filter)

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"recipes": filtered,
		"count":   len(filtered),
		"facets": recipeFacets{
			Types:       views.DrinkTypeFacets(),
			Drippers:    views.DripperFacets(all),
			RoastLevels: views.RoastLevelFacets(all),
			BeanAmounts: views.BeanAmountFacets(all),
		},
	})
}

// GetRecipe GET /api/recipes/{recipeId}
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.store.GetRecipe(mux.Vars(r)["recipeId"])
	if !ok {
		respond.WriteNotFound(w, "recipe not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// CreateRecipe POST /api/recipes
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var rec model.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if rec.Title == "" {
		respond.WriteBadRequest(w, "title is required")
		return
	}
	created, err := h.store.AddRecipe(r.Context(), rec)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, created)
}

// UpdateRecipe PUT /api/recipes/{recipeId}
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["recipeId"]
	if _, ok := h.store.GetRecipe(id); !ok {
		respond.WriteNotFound(w, "recipe not found")
		return
	}
	var rec model.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	rec.ID = id
	if err := h.store.UpdateRecipe(r.Context(), rec); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// DeleteRecipe DELETE /api/recipes/{recipeId}
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteRecipe(r.Context(), mux.Vars(r)["recipeId"]); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
