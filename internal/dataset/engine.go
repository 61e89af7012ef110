package dataset

import (
	"fmt"
	"time"

	"github.com/insight-engine/datagen/internal/ptbr"
	"github.com/insight-engine/datagen/internal/sample"
)

// Generator holds the explicitly constructed random state for one run:
// the seeded sampler, the locale provider sharing its stream, and the
// reference time that anchors all relative date ranges.
type Generator struct {
	Sample *sample.Source
	Faker  *ptbr.Faker
	Now    time.Time
}

// NewGenerator builds a Generator from a seed and a reference time. The same
// (seed, now) pair reproduces a run exactly.
func NewGenerator(seed uint64, now time.Time) *Generator {
	s := sample.New(seed)
	return &Generator{
		Sample: s,
		Faker:  ptbr.New(s),
		Now:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// DaysAgo returns the reference time shifted back by the given number of
// days. Used for the "-2y"-style range starts of the date fields.
func (g *Generator) DaysAgo(days int) time.Time {
	return g.Now.AddDate(0, 0, -days)
}

// YearsAgo returns the reference time shifted back by whole years.
func (g *Generator) YearsAgo(years int) time.Time {
	return g.Now.AddDate(-years, 0, 0)
}

// Generate assembles rows for the given spec. The schema is validated once
// (non-empty unique column names); every produced row carries exactly the
// schema's columns in declaration order.
func (g *Generator) Generate(spec TableSpec, rows int) (*Table, error) {
	if rows < 0 {
		return nil, fmt.Errorf("dataset: negative row count %d for %s", rows, spec.Domain)
	}

	fields := spec.Fields(g)
	if err := validateFields(spec.Domain, fields); err != nil {
		return nil, err
	}

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name
	}

	t := &Table{
		Domain:   spec.Domain,
		FileName: spec.FileName,
		Header:   header,
		Rows:     make([][]any, 0, rows),
	}

	for i := 0; i < rows; i++ {
		r := &Row{Index: i + 1, values: make(map[string]any, len(fields))}
		out := make([]any, len(fields))
		for j, f := range fields {
			if v, ok := r.values[f.Name]; ok {
				// Pre-set by an earlier field that shares this draw.
				out[j] = v
				continue
			}
			var v any
			if f.Null > 0 && g.Sample.Maybe(f.Null) {
				v = nil
			} else {
				v = f.Gen(r)
			}
			r.values[f.Name] = v
			out[j] = v
		}
		t.Rows = append(t.Rows, out)
	}

	return t, nil
}

func validateFields(domain string, fields []Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("dataset: %s has no fields", domain)
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("dataset: %s has an unnamed field", domain)
		}
		if seen[f.Name] {
			return fmt.Errorf("dataset: %s declares field %q twice", domain, f.Name)
		}
		if f.Gen == nil {
			return fmt.Errorf("dataset: %s field %q has no generator", domain, f.Name)
		}
		if f.Null < 0 || f.Null >= 1 {
			return fmt.Errorf("dataset: %s field %q has null probability %v outside [0,1)", domain, f.Name, f.Null)
		}
		seen[f.Name] = true
	}
	return nil
}
