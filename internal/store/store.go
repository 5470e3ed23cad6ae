// Package store owns the authoritative in-memory collections for the running
// session and keeps them write-through consistent with durable storage.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brewnote/brewnote/internal/migrate"
	"github.com/brewnote/brewnote/internal/model"
	"github.com/brewnote/brewnote/internal/storage"
)

// Store holds the session's beans and recipes. Every mutation persists the
// full collection before returning, so a reload after restart observes all
// completed writes. Methods are safe for concurrent use, though the expected
// caller is a single-threaded event loop.
type Store struct {
	mu      sync.Mutex
	log     zerolog.Logger
	storage storage.Storage
	engine  *migrate.Engine

	beans   []model.Bean
	recipes []model.Recipe
}

// Open loads both collections through the persistence adapter, runs the
// schema migration over the beans, and persists the migrated list when the
// migration changed anything.
func Open(ctx context.Context, st storage.Storage, engine *migrate.Engine, log zerolog.Logger) (*Store, error) {
	s := &Store{log: log, storage: st, engine: engine}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads both collections from storage, re-applying migration.
// Used at startup and after a snapshot import.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	beans, err := s.storage.LoadBeans(ctx)
	if err != nil {
		return fmt.Errorf("load beans: %w", err)
	}
	beans, changed := s.engine.Beans(beans)
	if changed {
		if err := s.storage.SaveBeans(ctx, beans); err != nil {
			return fmt.Errorf("persist migrated beans: %w", err)
		}
		s.log.Info().Int("count", len(beans)).Msg("persisted migrated bean list")
	}

	recipes, err := s.storage.LoadRecipes(ctx)
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}

	s.beans = beans
	s.recipes = recipes
	return nil
}

// --- Reads ---

// Beans returns a deep copy of the bean list in stored order.
func (s *Store) Beans() []model.Bean {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Bean, len(s.beans))
	for i, b := range s.beans {
		out[i] = b.Clone()
	}
	return out
}

// Recipes returns a deep copy of the recipe list in stored order.
func (s *Store) Recipes() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out
}

// GetBean returns a copy of the bean with the given id.
func (s *Store) GetBean(id string) (model.Bean, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.beans {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return model.Bean{}, false
}

// GetRecipe returns a copy of the recipe with the given id.
func (s *Store) GetRecipe(id string) (model.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return model.Recipe{}, false
}

// --- Bean mutations ---

// AddBean assigns a new id, prepends the bean, and persists the full list.
func (s *Store) AddBean(ctx context.Context, b model.Bean) (model.Bean, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b = b.Clone()
	b.ID = uuid.New().String()
	next := append([]model.Bean{b}, s.beans...)
	if err := s.storage.SaveBeans(ctx, next); err != nil {
		return model.Bean{}, err
	}
	s.beans = next
	s.log.Debug().Str("bean", b.ID).Msg("bean added")
	return b.Clone(), nil
}

// UpdateBean replaces the bean with a matching id in place. When no bean
// matches, the list is unchanged but still persisted; callers are expected to
// pass existing ids.
func (s *Store) UpdateBean(ctx context.Context, b model.Bean) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := false
	next := make([]model.Bean, len(s.beans))
	for i, cur := range s.beans {
		if cur.ID == b.ID {
			next[i] = b.Clone()
			matched = true
		} else {
			next[i] = cur
		}
	}
	if !matched {
		s.log.Debug().Str("bean", b.ID).Msg("update for unknown bean id is a no-op")
	}
	if err := s.storage.SaveBeans(ctx, next); err != nil {
		return err
	}
	s.beans = next
	return nil
}

// DeleteBean removes the matching bean; no-op if absent.
func (s *Store) DeleteBean(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.beans[:0:0]
	for _, cur := range s.beans {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if err := s.storage.SaveBeans(ctx, next); err != nil {
		return err
	}
	s.beans = next
	return nil
}

// --- Recipe mutations ---

// AddRecipe assigns a new id, prepends the recipe, and persists the full list.
func (s *Store) AddRecipe(ctx context.Context, r model.Recipe) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r = r.Clone()
	r.ID = uuid.New().String()
	next := append([]model.Recipe{r}, s.recipes...)
	if err := s.storage.SaveRecipes(ctx, next); err != nil {
		return model.Recipe{}, err
	}
	s.recipes = next
	s.log.Debug().Str("recipe", r.ID).Msg("recipe added")
	return r.Clone(), nil
}

// UpdateRecipe replaces the recipe with a matching id in place, preserving
// list order. Same missing-id semantics as UpdateBean.
func (s *Store) UpdateRecipe(ctx context.Context, r model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := false
	next := make([]model.Recipe, len(s.recipes))
	for i, cur := range s.recipes {
		if cur.ID == r.ID {
			next[i] = r.Clone()
			matched = true
		} else {
			next[i] = cur
		}
	}
	if !matched {
		s.log.Debug().Str("recipe", r.ID).Msg("update for unknown recipe id is a no-op")
	}
	if err := s.storage.SaveRecipes(ctx, next); err != nil {
		return err
	}
	s.recipes = next
	return nil
}

// DeleteRecipe removes the matching recipe; no-op if absent.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.recipes[:0:0]
	for _, cur := range s.recipes {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if err := s.storage.SaveRecipes(ctx, next); err != nil {
		return err
	}
	s.recipes = next
	return nil
}
