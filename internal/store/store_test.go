package store_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"setdex/internal/analysis"
	"setdex/internal/setdex"
	"setdex/internal/store"
)

func mustOpen(t *testing.T, path string) *store.Store {
	t.Helper()

	s, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func sampleDex() *setdex.Setdex {
	dex := setdex.New()
	first := analysis.NewDetails("OU")
	first.EVs = analysis.Spread{analysis.StatAttack: "252", analysis.StatSpeed: "252"}
	first.Nature = "Jolly"
	first.Item = "Life Orb"
	first.Moves = [4]string{"Swords Dance", "Earthquake", "Stone Edge", analysis.NullMove}
	second := analysis.NewDetails("UU")
	second.Nature = "Adamant"
	second.IVs = analysis.Spread{analysis.StatSpeed: "0"}

	dex.Add("Garchomp", setdex.Set{Label: "OU Swords Dance", Details: first})
	dex.Add("Garchomp", setdex.Set{Label: "UU Trick Room", Details: second})
	dex.Add("Zapdos", setdex.Set{Label: "OU Defog", Details: second})
	return dex
}

func TestReplaceGenerationRoundTrip(t *testing.T) {
	s := mustOpen(t, filepath.Join(t.TempDir(), "db", "setdex.db"))
	ctx := context.Background()
	dex := sampleDex()

	written, err := s.ReplaceGeneration(ctx, "xy", "run-1", dex)
	if err != nil {
		t.Fatalf("ReplaceGeneration: %v", err)
	}
	if written != 3 {
		t.Fatalf("written = %d, want 3", written)
	}

	got, err := s.Sets(ctx, "xy", "Garchomp")
	if err != nil {
		t.Fatalf("Sets: %v", err)
	}
	if diff := cmp.Diff(dex.Sets("Garchomp"), got); diff != "" {
		t.Fatalf("sets mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceGenerationReplacesOnlyThatGeneration(t *testing.T) {
	s := mustOpen(t, filepath.Join(t.TempDir(), "setdex.db"))
	ctx := context.Background()

	if _, err := s.ReplaceGeneration(ctx, "xy", "run-1", sampleDex()); err != nil {
		t.Fatalf("ReplaceGeneration xy: %v", err)
	}
	if _, err := s.ReplaceGeneration(ctx, "bw", "run-1", sampleDex()); err != nil {
		t.Fatalf("ReplaceGeneration bw: %v", err)
	}

	smaller := setdex.New()
	smaller.Add("Mew", setdex.Set{Label: "OU Lead", Details: analysis.NewDetails("OU")})
	if _, err := s.ReplaceGeneration(ctx, "xy", "run-2", smaller); err != nil {
		t.Fatalf("ReplaceGeneration xy again: %v", err)
	}

	summaries, err := s.Summaries(ctx)
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	want := []store.GenerationSummary{
		{Generation: "bw", Subjects: 2, Sets: 3},
		{Generation: "xy", Subjects: 1, Sets: 1},
	}
	if diff := cmp.Diff(want, summaries); diff != "" {
		t.Fatalf("summaries mismatch (-want +got):\n%s", diff)
	}

	garchomp, err := s.Sets(ctx, "xy", "Garchomp")
	if err != nil {
		t.Fatalf("Sets: %v", err)
	}
	if len(garchomp) != 0 {
		t.Fatalf("stale xy rows remain: %+v", garchomp)
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setdex.db")
	first, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := first.ReplaceGeneration(context.Background(), "xy", "run-1", sampleDex()); err != nil {
		t.Fatalf("ReplaceGeneration: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second := mustOpen(t, path)
	if second.Path() != path {
		t.Fatalf("Path = %q", second.Path())
	}
	summaries, err := second.Summaries(context.Background())
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Sets != 3 {
		t.Fatalf("summaries after reopen = %+v", summaries)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := store.Open(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestCloseNilStore(t *testing.T) {
	var s *store.Store
	if err := s.Close(); err != nil {
		t.Fatalf("Close on nil store: %v", err)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setdex.db")
	first, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = db.Close()

	if _, err := store.Open(context.Background(), path); !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
