package e2e

import (
	"strings"
	"testing"
)

func TestBuildDataset_RowCounts(t *testing.T) {
	ds := BuildDataset()
	if ds.TotalRows != len(ds.Rows) {
		t.Errorf("TotalRows = %d, len(Rows) = %d", ds.TotalRows, len(ds.Rows))
	}
	if ds.TotalRows < 30 {
		t.Errorf("expected at least 30 rows, got %d", ds.TotalRows)
	}
	missing := 0
	for _, r := range ds.Rows {
		if r.Composition == "" {
			missing++
		}
	}
	if missing != ds.MissingRows {
		t.Errorf("MissingRows = %d, counted %d rows without composition", ds.MissingRows, missing)
	}
	if ds.MissingRows == 0 {
		t.Error("dataset should include rows without a composition")
	}
}

func TestBuildDataset_UniqueEANs(t *testing.T) {
	ds := BuildDataset()
	seen := make(map[string]bool, len(ds.Rows))
	for _, r := range ds.Rows {
		if r.EAN == "" {
			t.Error("row with empty EAN")
			continue
		}
		if seen[r.EAN] {
			t.Errorf("duplicate EAN %q", r.EAN)
		}
		seen[r.EAN] = true
	}
}

func TestBuildDataset_QueryTestCasesExist(t *testing.T) {
	ds := BuildDataset()
	if ds.TotalQueries == 0 {
		t.Fatal("expected at least one query test case")
	}
	compositions := make(map[string]bool)
	for _, r := range ds.Rows {
		compositions[r.Composition] = true
	}
	for i, tc := range ds.TestCases {
		if tc.Query == "" {
			t.Errorf("test case %d: empty query", i)
		}
		if tc.ExpectedComposition == "" {
			t.Errorf("test case %d: empty expected composition", i)
		}
		if !compositions[tc.ExpectedComposition] {
			t.Errorf("test case %d: composition %q not in dataset", i, tc.ExpectedComposition)
		}
	}
}

// Each query must be a token of at least one product of its expected
// composition and of no other composition's products, so search results
// have a single correct term.
func TestBuildDataset_QueryTokensAreUnique(t *testing.T) {
	ds := BuildDataset()
	for _, tc := range ds.TestCases {
		inExpected := false
		for _, r := range ds.Rows {
			if !nameHasToken(r.Name, tc.Query) {
				continue
			}
			if r.Composition == tc.ExpectedComposition {
				inExpected = true
				continue
			}
			t.Errorf("query %q is a token of %q (composition %q), not only of %q products",
				tc.Query, r.Name, r.Composition, tc.ExpectedComposition)
		}
		if !inExpected {
			t.Errorf("query %q is not a token of any %q product", tc.Query, tc.ExpectedComposition)
		}
	}
}

func nameHasToken(name, token string) bool {
	for _, f := range strings.Fields(strings.ToLower(name)) {
		if f == strings.ToLower(token) {
			return true
		}
	}
	return false
}
