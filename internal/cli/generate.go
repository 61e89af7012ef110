package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/insight-engine/datagen/internal/csvout"
	"github.com/insight-engine/datagen/internal/dataset"
	"github.com/insight-engine/datagen/internal/profile"
	"github.com/insight-engine/datagen/internal/store"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	OutputDir   string
	Rows        int
	Seed        uint64
	ProfilePath string
	Domains     []string
	Database    string
}

// RunManifest records what a run produced, so any run can be reproduced from
// its seed.
type RunManifest struct {
	RunID       string          `json:"run_id"`
	Seed        uint64          `json:"seed"`
	GeneratedAt time.Time       `json:"generated_at"`
	Files       []ManifestEntry `json:"files"`
}

// ManifestEntry is one generated file in the manifest.
type ManifestEntry struct {
	Domain string `json:"domain"`
	File   string `json:"file"`
	Rows   int    `json:"rows"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the domain CSV files",
		Long: `Generate the synthetic CSV files for all domains (or a subset).

The output directory must already exist. Each run writes one CSV per domain
plus a manifest.json recording the seed, so the run can be reproduced with
--seed.

Example:
  datagen generate --out samples
  datagen generate --out /tmp/dados --rows 100 --seed 42 --domains ecommerce,cashflow
  datagen generate --out samples --db samples/datagen.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "out", "", "output directory (default from profile, \"samples\")")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "rows per domain (default from profile, 5000)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 derives one from the clock)")
	cmd.Flags().StringVar(&opts.ProfilePath, "profile", "", "path to a YAML generation profile")
	cmd.Flags().StringSliceVar(&opts.Domains, "domains", nil, "comma-separated subset of domains to generate")
	cmd.Flags().StringVar(&opts.Database, "db", "", "also mirror the tables into this SQLite database")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	prof, err := resolveProfile(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load profile", err)
	}

	specs, err := selectSpecs(opts.Domains, prof)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid domain selection", err)
	}
	if len(specs) == 0 {
		return NewExitError(ExitCommandError, "nothing to generate: every domain is skipped")
	}

	seed := prof.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	now := time.Now()
	gen := dataset.NewGenerator(seed, now)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var sink *store.Store
	if opts.Database != "" {
		slog.Info("opening database", "path", opts.Database)
		sink, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := sink.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
	}

	slog.Info("generation starting", "seed", seed, "out", prof.OutputDir, "domains", len(specs))

	manifest := RunManifest{
		RunID:       uuid.NewString(),
		Seed:        seed,
		GeneratedAt: now.UTC(),
	}

	for _, spec := range specs {
		rows := prof.Rows
		if d, ok := prof.Domains[spec.Domain]; ok && d.Rows > 0 {
			rows = d.Rows
		}

		slog.Debug("generating", "domain", spec.Domain, "rows", rows)
		tbl, err := gen.Generate(spec, rows)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("generating %s", spec.Domain), err)
		}

		path, n, err := csvout.Write(prof.OutputDir, tbl)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("output directory %q does not exist, create it first", prof.OutputDir), err)
			}
			return WrapExitError(ExitFailure, fmt.Sprintf("writing %s", spec.Domain), err)
		}

		if sink != nil {
			if err := sink.WriteTable(ctx, tbl); err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("storing %s", spec.Domain), err)
			}
		}

		slog.Info("table generated", "domain", spec.Domain, "rows", n, "file", path)
		if opts.Format == "text" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows -> %s\n", spec.Domain, n, path)
		}

		manifest.Files = append(manifest.Files, ManifestEntry{
			Domain: spec.Domain,
			File:   tbl.FileName,
			Rows:   n,
		})
	}

	if err := writeManifest(prof.OutputDir, manifest); err != nil {
		return WrapExitError(ExitFailure, "writing manifest", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return formatter.Success(manifest)
	}
	return formatter.Success(fmt.Sprintf("Generated %d file(s) in %s (seed %d)", len(manifest.Files), prof.OutputDir, seed))
}

// resolveProfile merges the profile file (or defaults) with explicit flags.
func resolveProfile(opts *GenerateOptions) (*profile.Profile, error) {
	prof := profile.Default()
	if opts.ProfilePath != "" {
		loaded, err := profile.Load(opts.ProfilePath)
		if err != nil {
			return nil, err
		}
		prof = loaded
	}

	if opts.OutputDir != "" {
		prof.OutputDir = opts.OutputDir
	}
	if opts.Rows > 0 {
		prof.Rows = opts.Rows
	}
	if opts.Seed != 0 {
		prof.Seed = opts.Seed
	}
	return prof, nil
}

// selectSpecs returns the specs to run, honoring --domains and profile
// skips, in catalog order.
func selectSpecs(names []string, prof *profile.Profile) ([]dataset.TableSpec, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if _, err := dataset.ByDomain(n); err != nil {
			return nil, err
		}
		wanted[n] = true
	}

	var specs []dataset.TableSpec
	for _, spec := range dataset.All() {
		if len(wanted) > 0 && !wanted[spec.Domain] {
			continue
		}
		if d, ok := prof.Domains[spec.Domain]; ok && d.Skip {
			continue
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func writeManifest(dir string, m RunManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "manifest.json"), append(data, '\n'), 0o644)
}
