package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/brewnote/brewnote/internal/api/recovery"
	"github.com/brewnote/brewnote/internal/storage"
	"github.com/brewnote/brewnote/internal/store"
)

// NewRouter wires all journal routes to their handlers.
func NewRouter(s *store.Store, st storage.Storage, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	// Beans and their tasting records
	beans := NewBeanHandler(s)
	router.HandleFunc("/api/beans", beans.ListBeans).Methods("GET")
	router.HandleFunc("/api/beans", beans.CreateBean).Methods("POST")
	router.HandleFunc("/api/beans/{beanId}", beans.GetBean).Methods("GET")
	router.HandleFunc("/api/beans/{beanId}", beans.UpdateBean).Methods("PUT")
	router.HandleFunc("/api/beans/{beanId}", beans.DeleteBean).Methods("DELETE")
	router.HandleFunc("/api/beans/{beanId}/records", beans.AddRecord).Methods("POST")
	router.HandleFunc("/api/beans/{beanId}/records/{recordId}", beans.UpdateRecord).Methods("PUT")
	router.HandleFunc("/api/beans/{beanId}/records/{recordId}", beans.DeleteRecord).Methods("DELETE")

	// Recipes
	recipes := NewRecipeHandler(s)
	router.HandleFunc("/api/recipes", recipes.ListRecipes).Methods("GET")
	router.HandleFunc("/api/recipes", recipes.CreateRecipe).Methods("POST")
	router.HandleFunc("/api/recipes/{recipeId}", recipes.GetRecipe).Methods("GET")
	router.HandleFunc("/api/recipes/{recipeId}", recipes.UpdateRecipe).Methods("PUT")
	router.HandleFunc("/api/recipes/{recipeId}", recipes.DeleteRecipe).Methods("DELETE")

	// Backup and restore
	snapshot := NewSnapshotHandler(st, s, log)
	router.HandleFunc("/api/snapshot", snapshot.ExportSnapshot).Methods("GET")
	router.HandleFunc("/api/snapshot", snapshot.ImportSnapshot).Methods("POST")

	// Health
	health := NewHealthHandler(st)
	router.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	return router
}
