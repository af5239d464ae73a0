// Package e2e provides end-to-end tests over a generated pharmaceutical
// dataset and multiple search queries.
package e2e

import "fmt"

// E2ERow is one product row of the generated dataset (EAN, name, composition).
type E2ERow struct {
	EAN         string
	Name        string
	Composition string
}

// QueryTestCase defines a search query and the raw composition whose corpus
// term must appear in the results. Corpus keys are normalized forms, so tests
// derive the expected key by normalizing ExpectedComposition with the same
// normalizer the pipeline uses.
type QueryTestCase struct {
	Query               string
	ExpectedComposition string
	Description         string
}

// Dataset holds generated rows and query test cases for E2E tests.
type Dataset struct {
	Rows         []E2ERow
	TestCases    []QueryTestCase
	TotalRows    int
	TotalQueries int
	// MissingRows counts generated rows without a composition; they must
	// appear in the preprocessed table but never in the corpus.
	MissingRows int
}

// BuildDataset returns a dataset of Brazilian pharmaceutical products
// covering ~35 active principles with one to three products each, plus rows
// with a missing composition. Each query is a brand token unique to one
// principle's products so every test case has a single correct term.
func BuildDataset() *Dataset {
	rows, missing := buildRows()
	cases := buildQueryTestCases()
	return &Dataset{
		Rows:         rows,
		TestCases:    cases,
		TotalRows:    len(rows),
		TotalQueries: len(cases),
		MissingRows:  missing,
	}
}

type principle struct {
	composition string
	products    []string
}

func principles() []principle {
	return []principle{
		{"Dipirona Sódica", []string{"Novalgina 500mg Comprimido", "Anador 500mg", "Dipirona Genérico EMS 500mg"}},
		{"Paracetamol", []string{"Tylenol 750mg", "Parador Gotas 200mg/ml"}},
		{"Ibuprofeno", []string{"Advil 400mg Cápsula", "Alivium 600mg"}},
		{"Cloridrato de Metformina", []string{"Glifage XR 500mg", "Glucoformin 850mg"}},
		{"Losartana Potássica", []string{"Cozaar 50mg", "Aradois 100mg"}},
		{"Cloridrato de Fluoxetina", []string{"Prozac 20mg Cápsula", "Daforin Gotas"}},
		{"Amoxicilina", []string{"Amoxil BD 875mg", "Velamox 500mg Cápsula"}},
		{"Azitromicina Di-hidratada", []string{"Zitromax 500mg", "Astro 500mg Comprimido"}},
		{"Omeprazol", []string{"Losec Mups 20mg", "Peprazol 40mg"}},
		{"Esomeprazol Magnésico", []string{"Nexium 40mg"}},
		{"Sinvastatina", []string{"Zocor 20mg", "Sinvastacor 40mg"}},
		{"Atenolol", []string{"Atenol 25mg"}},
		{"Captopril", []string{"Capoten 25mg Comprimido"}},
		{"Cloridrato de Sertralina", []string{"Zoloft 50mg"}},
		{"Clonazepam", []string{"Rivotril 2mg Comprimido", "Clonazepam Gotas Genérico"}},
		{"Diazepam", []string{"Valium 10mg"}},
		{"Loratadina", []string{"Claritin 10mg", "Loralerg Xarope"}},
		{"Cloridrato de Ranitidina", []string{"Antak 150mg"}},
		{"Nimesulida", []string{"Scaflam 100mg", "Nisulid 100mg Comprimido"}},
		{"Diclofenaco Sódico", []string{"Voltaren 50mg", "Biofenac Gel"}},
		{"Diclofenaco Potássico", []string{"Cataflam 50mg Drágea"}},
		{"Cefalexina", []string{"Keflex 500mg Cápsula"}},
		{"Prednisona", []string{"Meticorten 20mg"}},
		{"Dexametasona", []string{"Decadron 4mg", "Dexason Elixir"}},
		{"Salbutamol", []string{"Aerolin Spray 100mcg"}},
		{"Budesonida", []string{"Pulmicort Aerossol 200mcg"}},
		{"Cloridrato de Tramadol", []string{"Tramal 50mg Cápsula"}},
		{"Fosfato de Codeína + Paracetamol", []string{"Tylex 30mg"}},
		{"Levotiroxina Sódica", []string{"Puran T4 50mcg", "Synthroid 88mcg"}},
		{"Cloridrato de Propranolol", []string{"Inderal 40mg"}},
		{"Hidroclorotiazida", []string{"Clorana 25mg"}},
		{"Besilato de Anlodipino", []string{"Norvasc 5mg"}},
		{"Cetoconazol", []string{"Nizoral Creme 20mg/g"}},
		{"Aciclovir", []string{"Zovirax 200mg Comprimido"}},
		{"Carbonato de Cálcio + Colecalciferol", []string{"Caltrate 600D"}},
	}
}

func buildRows() (rows []E2ERow, missing int) {
	ean := 0
	next := func() string {
		ean++
		return fmt.Sprintf("78910%08d", ean)
	}
	for _, p := range principles() {
		for _, name := range p.products {
			rows = append(rows, E2ERow{EAN: next(), Name: name, Composition: p.composition})
		}
	}
	// Rows the source spreadsheets carry without a formulation text.
	for _, name := range []string{"Produto Importado Alfa", "Produto Importado Beta", "Kit Curativo Premium"} {
		rows = append(rows, E2ERow{EAN: next(), Name: name, Composition: ""})
		missing++
	}
	return rows, missing
}

func buildQueryTestCases() []QueryTestCase {
	pairs := []struct {
		query       string
		composition string
	}{
		{"novalgina", "Dipirona Sódica"},
		{"anador", "Dipirona Sódica"},
		{"tylenol", "Paracetamol"},
		{"advil", "Ibuprofeno"},
		{"glifage", "Cloridrato de Metformina"},
		{"cozaar", "Losartana Potássica"},
		{"prozac", "Cloridrato de Fluoxetina"},
		{"zitromax", "Azitromicina Di-hidratada"},
		{"losec", "Omeprazol"},
		{"zocor", "Sinvastatina"},
		{"rivotril", "Clonazepam"},
		{"cataflam", "Diclofenaco Potássico"},
		{"aerolin", "Salbutamol"},
		{"tramal", "Cloridrato de Tramadol"},
		{"synthroid", "Levotiroxina Sódica"},
		{"clorana", "Hidroclorotiazida"},
	}
	cases := make([]QueryTestCase, 0, len(pairs))
	for _, p := range pairs {
		cases = append(cases, QueryTestCase{
			Query:               p.query,
			ExpectedComposition: p.composition,
			Description:         fmt.Sprintf("query %q should surface the %s term", p.query, p.composition),
		})
	}
	return cases
}
