package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestWatcher_TriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "eans.xlsx")
	if err := writeFile(dataset, "v1"); err != nil {
		t.Fatal(err)
	}

	var changed []string
	var mu sync.Mutex
	onChange := func(path string) {
		mu.Lock()
		changed = append(changed, path)
		mu.Unlock()
	}

	w := NewWatcher(dataset, onChange, WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := writeFile(dataset, "v2"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(changed) < 1 {
		t.Fatalf("expected at least one change callback, got %d", len(changed))
	}
	if changed[0] != dataset {
		t.Errorf("callback path = %q, want %q", changed[0], dataset)
	}
}

func TestWatcher_TriggersOnCreate(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "eans.csv")

	var count int
	var mu sync.Mutex
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w := NewWatcher(dataset, onChange, WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// The dataset did not exist when the watcher started.
	if err := writeFile(dataset, "header\nrow"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count < 1 {
		t.Errorf("expected a change callback after create, got %d", count)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "eans.xlsx")
	if err := writeFile(dataset, "v1"); err != nil {
		t.Fatal(err)
	}

	var count int
	var mu sync.Mutex
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w := NewWatcher(dataset, onChange, WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := writeFile(filepath.Join(dir, "other.xlsx"), "ignored"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("sibling file should not trigger a callback, got %d", count)
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "eans.xlsx")
	if err := writeFile(dataset, "v1"); err != nil {
		t.Fatal(err)
	}

	var count int
	var mu sync.Mutex
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w := NewWatcher(dataset, onChange, WithDebounce(300*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := writeFile(dataset, "burst"); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(900 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("expected a single debounced callback, got %d", count)
	}
}

func TestWatcher_RemoveCancelsPending(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "eans.xlsx")
	if err := writeFile(dataset, "v1"); err != nil {
		t.Fatal(err)
	}

	var count int
	var mu sync.Mutex
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w := NewWatcher(dataset, onChange, WithDebounce(300*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := writeFile(dataset, "v2"); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(dataset); err != nil {
		t.Fatal(err)
	}
	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("removal should cancel the pending callback, got %d", count)
	}
}

func TestMatchesPath(t *testing.T) {
	w := NewWatcher("/data/eans.xlsx", nil)
	tests := []struct {
		path string
		want bool
	}{
		{"/data/eans.xlsx", true},
		{"/data/./eans.xlsx", true},
		{"/data/other.xlsx", false},
		{"/data/sub/eans.xlsx", false},
	}
	for _, tt := range tests {
		if got := w.matchesPath(tt.path); got != tt.want {
			t.Errorf("matchesPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
