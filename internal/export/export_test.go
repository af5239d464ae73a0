package export

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/reader"
)

func TestWriteCorpus_bytes(t *testing.T) {
	c := models.NewCorpus()
	c.Add("dipirona sódica", "dipirona 500mg")
	c.Add("dipirona sódica", "novalgina gotas")

	path := CorpusPath(t.TempDir(), "abcfarma")
	if err := WriteCorpus(path, c); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "dipirona sódica": [
        "dipirona 500mg",
        "novalgina gotas"
    ]
}
`
	if string(data) != want {
		t.Errorf("corpus file:\n%s\nwant:\n%s", data, want)
	}
}

func TestWriteCorpus_deterministic(t *testing.T) {
	c := models.NewCorpus()
	c.Add("zeta", "Z")
	c.Add("alfa", "A")
	c.Add("meio", "M")

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.json")
	p2 := filepath.Join(dir, "b.json")
	if err := WriteCorpus(p1, c); err != nil {
		t.Fatal(err)
	}
	if err := WriteCorpus(p2, c); err != nil {
		t.Fatal(err)
	}

	b1, _ := os.ReadFile(p1)
	b2, _ := os.ReadFile(p2)
	if !bytes.Equal(b1, b2) {
		t.Error("two writes of the same corpus differ")
	}
	if !strings.HasPrefix(string(b1), "{\n    \"zeta\"") {
		t.Errorf("keys not in insertion order:\n%s", b1)
	}
}

func TestReadCorpus_roundTrip(t *testing.T) {
	c := models.NewCorpus()
	c.Add("paracetamol", "tylenol 750mg")
	c.Add("dipirona", "novalgina")

	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := WriteCorpus(path, c); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCorpus(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Keys(), c.Keys()) {
		t.Errorf("keys = %v, want %v", got.Keys(), c.Keys())
	}
	if !reflect.DeepEqual(got.Names("paracetamol"), []string{"tylenol 750mg"}) {
		t.Errorf("names = %v", got.Names("paracetamol"))
	}
}

func TestReadCorpus_missing(t *testing.T) {
	if _, err := ReadCorpus(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing corpus file")
	}
}

func snapshotFixture() *Snapshot {
	return &Snapshot{
		Columns:           []string{"nome", "composição", "preço"},
		NameColumn:        "nome",
		CompositionColumn: "composição",
		Records: []models.CleanRecord{
			{
				ProductName: "dipirona 500mg cx 20 comp",
				Composition: "dipirona sódica",
				Passthrough: map[string]string{"preço": "10,50"},
				Patterns: models.PatternFields{
					Dose:        "500mg",
					Form:        "comp",
					Recipient:   "cx",
					CleanedName: "dipirona 20",
				},
			},
			{
				ProductName: "vitamina c",
				Composition: "unknown",
				Passthrough: map[string]string{"preço": "5,00"},
			},
		},
	}
}

func TestWriteSnapshot_xlsxRoundTrip(t *testing.T) {
	s := snapshotFixture()
	path := SnapshotPath(t.TempDir(), "abcfarma", "xlsx")
	if err := WriteSnapshot(s, path, "xlsx"); err != nil {
		t.Fatal(err)
	}

	table, err := reader.Open(path, reader.Options{Sheet: "Planilha1"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(table.Columns, []string{"nome", "composição", "preço"}) {
		t.Errorf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if got := table.Rows[0]["composição"]; got != "dipirona sódica" {
		t.Errorf("composição = %q", got)
	}
	if got := table.Rows[1]["preço"]; got != "5,00" {
		t.Errorf("preço = %q", got)
	}
}

func TestWriteSnapshot_patternColumns(t *testing.T) {
	s := snapshotFixture()
	s.Patterns = true
	path := SnapshotPath(t.TempDir(), "abcfarma", "xlsx")
	if err := WriteSnapshot(s, path, "xlsx"); err != nil {
		t.Fatal(err)
	}

	table, err := reader.Open(path, reader.Options{Sheet: "Planilha1"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"nome", "composição", "preço", "dose", "form", "recipient", "nome_cleaned"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("columns = %v, want %v", table.Columns, want)
	}
	if got := table.Rows[0]["dose"]; got != "500mg" {
		t.Errorf("dose = %q", got)
	}
	if got := table.Rows[0]["nome_cleaned"]; got != "dipirona 20" {
		t.Errorf("nome_cleaned = %q", got)
	}
}

func TestWriteSnapshot_csv(t *testing.T) {
	s := snapshotFixture()
	path := SnapshotPath(t.TempDir(), "abcfarma", "csv")
	if err := WriteSnapshot(s, path, "csv"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "nome,composição,preço" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "vitamina c,unknown") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestWriteSnapshot_unknownFormat(t *testing.T) {
	s := snapshotFixture()
	if err := WriteSnapshot(s, filepath.Join(t.TempDir(), "x.parquet"), "parquet"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestArtifactPaths(t *testing.T) {
	if got := CorpusPath("/out", "abcfarma"); got != filepath.Join("/out", "abcfarma_corpus.json") {
		t.Errorf("corpus path = %q", got)
	}
	if got := SnapshotPath("/out", "abcfarma", "csv"); got != filepath.Join("/out", "abcfarma_preprocessed.csv") {
		t.Errorf("snapshot path = %q", got)
	}
}
