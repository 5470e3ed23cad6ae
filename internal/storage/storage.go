// Package storage defines the persistence boundary for the journal's two
// named collections and the portable snapshot format.
package storage

import (
	"context"
	"encoding/json"

	"github.com/go-openapi/strfmt"

	"github.com/brewnote/brewnote/internal/model"
)

// Collection names the two stored lists.
type Collection string

const (
	CollectionBeans   Collection = "beans"
	CollectionRecipes Collection = "recipes"
)

// SnapshotVersion is the current export format version.
const SnapshotVersion = 1

// Snapshot is the portable backup file: both full collections plus an export
// timestamp and a format version.
type Snapshot struct {
	Beans      []model.Bean    `json:"beans"`
	Recipes    []model.Recipe  `json:"recipes"`
	ExportedAt strfmt.DateTime `json:"exportedAt"`
	Version    int             `json:"version"`
}

// Storage reads and writes the journal's collections against durable local
// storage. Loads seed the built-in sample dataset on first run; saves fully
// overwrite the stored collection.
type Storage interface {
	LoadBeans(ctx context.Context) ([]model.Bean, error)
	SaveBeans(ctx context.Context, beans []model.Bean) error
	LoadRecipes(ctx context.Context) ([]model.Recipe, error)
	SaveRecipes(ctx context.Context, recipes []model.Recipe) error

	// ExportSnapshot returns both stored collections with an export timestamp.
	ExportSnapshot(ctx context.Context) (*Snapshot, error)
	// ImportSnapshot validates the raw payload (presence of array-typed beans
	// and recipes, nothing deeper) and replaces both stored collections
	// atomically. On validation failure stored state is untouched and
	// model.ErrInvalidSnapshot is returned.
	ImportSnapshot(ctx context.Context, raw json.RawMessage) error

	HealthCheck(ctx context.Context) error
}

// ValidateSnapshot performs the presence check the import path requires:
// the payload must be a JSON object with non-null, array-typed beans and
// recipes fields. It returns the decoded collections on success.
func ValidateSnapshot(raw json.RawMessage) ([]model.Bean, []model.Recipe, error) {
	var probe struct {
		Beans   json.RawMessage `json:"beans"`
		Recipes json.RawMessage `json:"recipes"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, nil, model.ErrInvalidSnapshot
	}
	if !isJSONArray(probe.Beans) || !isJSONArray(probe.Recipes) {
		return nil, nil, model.ErrInvalidSnapshot
	}

	var beans []model.Bean
	if err := json.Unmarshal(probe.Beans, &beans); err != nil {
		return nil, nil, model.ErrInvalidSnapshot
	}
	var recipes []model.Recipe
	if err := json.Unmarshal(probe.Recipes, &recipes); err != nil {
		return nil, nil, model.ErrInvalidSnapshot
	}
	return beans, recipes, nil
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
