package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/brewnote/brewnote/internal/model"
	"github.com/brewnote/brewnote/internal/storage"
)

func newTestAdapter(t *testing.T) *SqliteStorage {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "brewnote.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	adap, err := NewSqliteStorageWithDB(db)
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}
	return adap
}

func TestLoadBeans_SeedsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	s := newTestAdapter(t)

	beans, err := s.LoadBeans(ctx)
	if err != nil {
		t.Fatalf("load beans: %v", err)
	}
	if len(beans) == 0 {
		t.Fatal("expected seeded beans on first run")
	}

	// Second load must return the stored seed, not reseed.
	again, err := s.LoadBeans(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(again) != len(beans) || again[0].ID != beans[0].ID {
		t.Fatalf("seed not stable across loads: %+v vs %+v", again, beans)
	}
}

func TestSaveBeans_Overwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestAdapter(t)

	if _, err := s.LoadBeans(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []model.Bean{{ID: "b1", Name: "케냐 AA", Roastery: "테라로사", Country: "케냐", Process: "워시드"}}
	if err := s.SaveBeans(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadBeans(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b1" || got[0].Name != "케냐 AA" {
		t.Fatalf("unexpected beans after save: %+v", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestAdapter(t)

	beans := []model.Bean{{ID: "b1", Name: "온두라스", Roastery: "빈브라더스", Country: "온두라스", Process: "허니"}}
	recipes := []model.Recipe{{
		ID: "r1", Title: "모닝 드립", Type: model.DrinkHot, Dripper: "V60",
		BeanAmount: 15, WaterAmount: 240,
		Steps: []model.PourStep{{Label: "뜸들이기", StartTime: 0, EndTime: 30, WaterAmount: 45, AddedAmount: 45}},
	}}
	if err := s.SaveBeans(ctx, beans); err != nil {
		t.Fatalf("save beans: %v", err)
	}
	if err := s.SaveRecipes(ctx, recipes); err != nil {
		t.Fatalf("save recipes: %v", err)
	}

	snap, err := s.ExportSnapshot(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if snap.Version != storage.SnapshotVersion {
		t.Fatalf("unexpected snapshot version %d", snap.Version)
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	if err := s.ImportSnapshot(ctx, raw); err != nil {
		t.Fatalf("import own export: %v", err)
	}

	gotBeans, err := s.LoadBeans(ctx)
	if err != nil {
		t.Fatalf("load beans: %v", err)
	}
	gotRecipes, err := s.LoadRecipes(ctx)
	if err != nil {
		t.Fatalf("load recipes: %v", err)
	}
	if len(gotBeans) != 1 || gotBeans[0].ID != "b1" {
		t.Fatalf("beans changed across round trip: %+v", gotBeans)
	}
	if len(gotRecipes) != 1 || gotRecipes[0].ID != "r1" || len(gotRecipes[0].Steps) != 1 {
		t.Fatalf("recipes changed across round trip: %+v", gotRecipes)
	}
}

func TestImportSnapshot_RejectsMissingRecipes(t *testing.T) {
	ctx := context.Background()
	s := newTestAdapter(t)

	orig := []model.Bean{{ID: "keep-me", Name: "과테말라", Roastery: "모모스", Country: "과테말라", Process: "워시드"}}
	if err := s.SaveBeans(ctx, orig); err != nil {
		t.Fatalf("save: %v", err)
	}

	bad := json.RawMessage(`{"beans": [], "exportedAt": "2025-01-01T00:00:00.000Z", "version": 1}`)
	if err := s.ImportSnapshot(ctx, bad); err == nil {
		t.Fatal("expected format error for snapshot missing recipes")
	}

	got, err := s.LoadBeans(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "keep-me" {
		t.Fatalf("stored beans altered by rejected import: %+v", got)
	}
}

func TestImportSnapshot_RejectsNullCollections(t *testing.T) {
	ctx := context.Background()
	s := newTestAdapter(t)

	bad := json.RawMessage(`{"beans": null, "recipes": [], "version": 1}`)
	if err := s.ImportSnapshot(ctx, bad); err == nil {
		t.Fatal("expected format error for null beans")
	}
}

func TestOpen_CreatesFileUnderDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "brewnote.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if _, err := NewSqliteStorageWithDB(db); err != nil {
		t.Fatalf("schema: %v", err)
	}
}
