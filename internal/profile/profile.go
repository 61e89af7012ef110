// Package profile loads the optional YAML generation profile: output
// directory, default row count, seed, and per-domain overrides. The file is
// validated against an embedded CUE schema before unmarshalling, so typos
// and out-of-range values fail with a position instead of producing a half
// applied run.
package profile

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/insight-engine/datagen/internal/dataset"
)

//go:embed schema.cue
var schemaSrc string

// Profile holds run configuration defaults. Explicit CLI flags win over
// profile values.
type Profile struct {
	// OutputDir is where the CSV files are written.
	OutputDir string `yaml:"output_dir"`

	// Rows is the default row count per domain.
	Rows int `yaml:"rows"`

	// Seed makes the run reproducible. Zero means derive one from the clock.
	Seed uint64 `yaml:"seed"`

	// Domains carries per-domain overrides keyed by domain identifier.
	Domains map[string]Domain `yaml:"domains"`
}

// Domain overrides generation for a single domain.
type Domain struct {
	// Rows overrides the default row count; zero keeps the default.
	Rows int `yaml:"rows"`

	// Skip excludes the domain from the run.
	Skip bool `yaml:"skip"`
}

// Default returns the built-in profile used when no file is given.
func Default() *Profile {
	return &Profile{
		OutputDir: "samples",
		Rows:      5000,
	}
}

// Load reads and validates a profile file. Values absent from the file keep
// the defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	if err := validate(path, data); err != nil {
		return nil, err
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	for name := range p.Domains {
		if _, err := dataset.ByDomain(name); err != nil {
			return nil, fmt.Errorf("profile %s: unknown domain %q (known: %v)", path, name, dataset.DomainNames())
		}
	}

	return p, nil
}

// validate checks the YAML document against the embedded CUE schema.
func validate(path string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling profile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Profile"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("profile schema has no #Profile: %w", err)
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return fmt.Errorf("parsing profile %s: %w", path, err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("building profile %s: %w", path, err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return nil
}
