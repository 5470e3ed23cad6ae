package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/brewnote/brewnote/internal/localstate"
	"github.com/brewnote/brewnote/internal/model"
	"github.com/brewnote/brewnote/internal/storage"
)

// SqliteStorage implements storage.Storage on a local SQLite key-value table.
// Each collection lives in one row as a JSON array, mirroring the snapshot
// wire format, so load/save are whole-collection operations.
type SqliteStorage struct {
	db *sql.DB
}

var _ storage.Storage = (*SqliteStorage)(nil)

// DB exposes the underlying *sql.DB connection (local-only use case).
func (s *SqliteStorage) DB() *sql.DB {
	return s.db
}

// NewSqliteStorage opens (or creates) a SQLite database file and ensures the
// schema exists.
func NewSqliteStorage(path string) (*SqliteStorage, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewSqliteStorageWithDB(db)
}

// NewSqliteStorageWithDB allows wiring with an existing connection (used by
// tests with in-memory databases).
func NewSqliteStorageWithDB(db *sql.DB) (*SqliteStorage, error) {
	if err := localstate.EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SqliteStorage{db: db}, nil
}

func (s *SqliteStorage) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Collection payloads ---

// loadPayload returns the raw JSON array for a collection, or sql.ErrNoRows
// for the first-run case.
func (s *SqliteStorage) loadPayload(ctx context.Context, name storage.Collection) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT Payload FROM Collections WHERE Name = ?`, string(name))
	var payload string
	if err := row.Scan(&payload); err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *SqliteStorage) savePayload(ctx context.Context, name storage.Collection, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Collections (Name, Payload, UpdateTime) VALUES (?,?,?)
         ON CONFLICT(Name) DO UPDATE SET Payload = excluded.Payload, UpdateTime = excluded.UpdateTime`,
		string(name), string(payload), time.Now().UTC())
	return err
}

// loadOrSeed reads a collection, seeding it with the given default value when
// no row exists yet. The seed write and the returned value use the same
// serialized payload, so the first read after seeding observes identical data.
func (s *SqliteStorage) loadOrSeed(ctx context.Context, name storage.Collection, seed any, out any) error {
	payload, err := s.loadPayload(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		payload, err = json.Marshal(seed)
		if err != nil {
			return fmt.Errorf("serialize seed %s: %w", name, err)
		}
		if err := s.savePayload(ctx, name, payload); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	} else if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

// --- storage.Storage ---

func (s *SqliteStorage) LoadBeans(ctx context.Context) ([]model.Bean, error) {
	var beans []model.Bean
	if err := s.loadOrSeed(ctx, storage.CollectionBeans, storage.SeedBeans(), &beans); err != nil {
		return nil, err
	}
	return beans, nil
}

func (s *SqliteStorage) SaveBeans(ctx context.Context, beans []model.Bean) error {
	payload, err := json.Marshal(beans)
	if err != nil {
		return fmt.Errorf("serialize beans: %w", err)
	}
	return s.savePayload(ctx, storage.CollectionBeans, payload)
}

func (s *SqliteStorage) LoadRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.loadOrSeed(ctx, storage.CollectionRecipes, storage.SeedRecipes(), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *SqliteStorage) SaveRecipes(ctx context.Context, recipes []model.Recipe) error {
	payload, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("serialize recipes: %w", err)
	}
	return s.savePayload(ctx, storage.CollectionRecipes, payload)
}

func (s *SqliteStorage) ExportSnapshot(ctx context.Context) (*storage.Snapshot, error) {
	beans, err := s.LoadBeans(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := s.LoadRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return &storage.Snapshot{
		Beans:      beans,
		Recipes:    recipes,
		ExportedAt: strfmt.DateTime(time.Now().UTC()),
		Version:    storage.SnapshotVersion,
	}, nil
}

// ImportSnapshot replaces both stored collections in one transaction. The
// presence check happens before any write, so a rejected snapshot leaves
// stored state untouched.
func (s *SqliteStorage) ImportSnapshot(ctx context.Context, raw json.RawMessage) error {
	beans, recipes, err := storage.ValidateSnapshot(raw)
	if err != nil {
		return err
	}

	beanPayload, err := json.Marshal(beans)
	if err != nil {
		return fmt.Errorf("serialize beans: %w", err)
	}
	recipePayload, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("serialize recipes: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, c := range []struct {
		name    storage.Collection
		payload []byte
	}{
		{storage.CollectionBeans, beanPayload},
		{storage.CollectionRecipes, recipePayload},
	} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO Collections (Name, Payload, UpdateTime) VALUES (?,?,?)
             ON CONFLICT(Name) DO UPDATE SET Payload = excluded.Payload, UpdateTime = excluded.UpdateTime`,
			string(c.name), string(c.payload), now); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
