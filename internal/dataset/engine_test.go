package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func testGenerator(seed uint64) *Generator {
	return NewGenerator(seed, testNow)
}

func TestGenerate_RowAndColumnShape(t *testing.T) {
	g := testGenerator(1)

	for _, spec := range All() {
		tbl, err := g.Generate(spec, 50)
		require.NoError(t, err, spec.Domain)
		require.Len(t, tbl.Rows, 50, spec.Domain)

		for _, row := range tbl.Rows {
			assert.Len(t, row, len(tbl.Header), "%s row width", spec.Domain)
		}
	}
}

func TestGenerate_RequiredFieldsPresent(t *testing.T) {
	for _, spec := range All() {
		spec := spec
		t.Run(spec.Domain, func(t *testing.T) {
			g := testGenerator(2)
			fields := spec.Fields(testGenerator(2))

			tbl, err := g.Generate(spec, 200)
			require.NoError(t, err)

			for i, f := range fields {
				if f.Null > 0 {
					continue
				}
				// Suppliers' Ultima_Compra is pre-set and may legitimately
				// be absent even though its own Null is 0.
				if spec.Domain == "suppliers" && f.Name == "Ultima_Compra" {
					continue
				}
				for _, row := range tbl.Rows {
					require.NotNil(t, row[i], "field %s", f.Name)
				}
			}
		})
	}
}

func TestGenerate_ColumnTypesStable(t *testing.T) {
	g := testGenerator(3)

	for _, spec := range All() {
		tbl, err := g.Generate(spec, 300)
		require.NoError(t, err)

		for col := range tbl.Header {
			var want any
			for _, row := range tbl.Rows {
				v := row[col]
				if v == nil {
					continue
				}
				if want == nil {
					want = v
					continue
				}
				assert.IsType(t, want, v, "%s column %s", spec.Domain, tbl.Header[col])
			}
		}
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	for _, spec := range All() {
		a, err := testGenerator(77).Generate(spec, 25)
		require.NoError(t, err)
		b, err := testGenerator(77).Generate(spec, 25)
		require.NoError(t, err)

		assert.Equal(t, a.Header, b.Header, spec.Domain)
		assert.Equal(t, a.Rows, b.Rows, spec.Domain)
	}
}

func TestGenerate_SeedsDiverge(t *testing.T) {
	spec := Ecommerce()
	a, err := testGenerator(1).Generate(spec, 25)
	require.NoError(t, err)
	b, err := testGenerator(2).Generate(spec, 25)
	require.NoError(t, err)

	assert.NotEqual(t, a.Rows, b.Rows)
}

func TestGenerate_NegativeRowCount(t *testing.T) {
	_, err := testGenerator(1).Generate(Ecommerce(), -1)
	assert.Error(t, err)
}

func TestGenerate_OptionalFieldFraction(t *testing.T) {
	g := testGenerator(5)
	spec := Ecommerce()

	tbl, err := g.Generate(spec, 5000)
	require.NoError(t, err)

	col := indexOf(t, tbl.Header, "Avaliacao")
	nulls := 0
	for _, row := range tbl.Rows {
		if row[col] == nil {
			nulls++
		}
	}
	assert.InDelta(t, 0.3, float64(nulls)/float64(len(tbl.Rows)), 0.02)
}

func TestValidateFields(t *testing.T) {
	gen := func(r *Row) any { return 0 }

	tests := []struct {
		name   string
		fields []Field
	}{
		{"empty", nil},
		{"unnamed", []Field{{Name: "", Gen: gen}}},
		{"duplicate", []Field{{Name: "A", Gen: gen}, {Name: "A", Gen: gen}}},
		{"missing generator", []Field{{Name: "A"}}},
		{"bad null probability", []Field{{Name: "A", Null: 1.5, Gen: gen}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validateFields("test", tt.fields))
		})
	}
}

func TestRow_AccessBeforeGenerationPanics(t *testing.T) {
	r := &Row{Index: 1, values: map[string]any{}}
	assert.Panics(t, func() { r.Get("missing") })
}

func TestCatalog_OrderAndLookup(t *testing.T) {
	want := []string{
		"ecommerce", "controllership", "hr", "logistics", "marketing",
		"production", "inventory", "customers", "suppliers", "cashflow",
	}
	assert.Equal(t, want, DomainNames())

	spec, err := ByDomain("cashflow")
	require.NoError(t, err)
	assert.Equal(t, "financas_fluxo_caixa.csv", spec.FileName)

	_, err = ByDomain("nope")
	assert.Error(t, err)
}

func indexOf(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %q not in header", name)
	return -1
}
