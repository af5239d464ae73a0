package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/farmadados/farmacorpus/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleCorpus() *models.Corpus {
	c := models.NewCorpus()
	c.Add("dipirona sódica", "dipirona 500mg")
	c.Add("dipirona sódica", "novalgina gotas")
	c.Add("paracetamol", "tylenol 750mg")
	c.Add("ácido ascórbico", "vitamina c 1g")
	return c
}

func TestSaveRun_roundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := &models.BuildRun{
		ID:                "run1",
		Dataset:           "/data/eans.xlsx",
		DatasetChecksum:   "abc123",
		Identifier:        "abcfarma",
		Rows:              10,
		Indexed:           8,
		EmptyCompositions: 2,
		Terms:             3,
		SynonymTerms:      1,
		DurationMs:        42,
	}
	if err := store.SaveRun(ctx, run, sampleCorpus()); err != nil {
		t.Fatal(err)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := store.GetRun(ctx, "run1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Identifier != "abcfarma" || got.Rows != 10 || got.Terms != 3 {
		t.Errorf("got %+v", got)
	}

	n, err := store.CountTerms(ctx, "run1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("terms = %d, want 3", n)
	}
}

func TestTermNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := &models.BuildRun{ID: "run1", Dataset: "d", Identifier: "abcfarma"}
	if err := store.SaveRun(ctx, run, sampleCorpus()); err != nil {
		t.Fatal(err)
	}

	names, err := store.TermNames(ctx, "run1", "dipirona sódica")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"dipirona 500mg", "novalgina gotas"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}

	_, err = store.TermNames(ctx, "run1", "inexistente")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListTerms_orderAndPrefix(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := &models.BuildRun{ID: "run1", Dataset: "d", Identifier: "abcfarma"}
	if err := store.SaveRun(ctx, run, sampleCorpus()); err != nil {
		t.Fatal(err)
	}

	entries, err := store.ListTerms(ctx, "run1", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	gotTerms := make([]string, 0, len(entries))
	for _, e := range entries {
		gotTerms = append(gotTerms, e.Term)
	}
	want := []string{"dipirona sódica", "paracetamol", "ácido ascórbico"}
	if !reflect.DeepEqual(gotTerms, want) {
		t.Errorf("terms = %v, want insertion order %v", gotTerms, want)
	}
	if entries[1].Position != 1 {
		t.Errorf("position = %d, want 1", entries[1].Position)
	}

	entries, err = store.ListTerms(ctx, "run1", "para", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Term != "paracetamol" {
		t.Errorf("prefix filter = %v", entries)
	}

	entries, err = store.ListTerms(ctx, "run1", "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("limit = %d entries, want 2", len(entries))
	}

	entries, err = store.ListTerms(ctx, "run1", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("no limit = %d entries, want all 3", len(entries))
	}
}

func TestLatestRunAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.LatestRun(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty db: err = %v, want ErrNotFound", err)
	}

	for _, id := range []string{"run1", "run2", "run3"} {
		run := &models.BuildRun{ID: id, Dataset: "d", Identifier: "abcfarma"}
		if err := store.SaveRun(ctx, run, models.NewCorpus()); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := store.LatestRun(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != "run3" {
		t.Errorf("latest = %s, want run3", latest.ID)
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID != "run3" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestGetRun_notFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetRun(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveRun_emptyCorpus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := &models.BuildRun{ID: "run1", Dataset: "d", Identifier: "abcfarma"}
	if err := store.SaveRun(ctx, run, models.NewCorpus()); err != nil {
		t.Fatal(err)
	}
	n, err := store.CountTerms(ctx, "run1")
	if err != nil || n != 0 {
		t.Errorf("terms = %d err = %v, want 0", n, err)
	}
}
