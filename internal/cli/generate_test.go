package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insight-engine/datagen/internal/dataset"
	"github.com/insight-engine/datagen/internal/store"
)

func runGenerateCmd(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestGenerateAllDomains(t *testing.T) {
	outDir := t.TempDir()

	buf, err := runGenerateCmd(t, "--out", outDir, "--rows", "20", "--seed", "7")
	require.NoError(t, err)

	for _, spec := range dataset.All() {
		path := filepath.Join(outDir, spec.FileName)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr, "expected %s", spec.FileName)
		assert.Positive(t, info.Size())
	}

	assert.Contains(t, buf.String(), "Generated 10 file(s)")
	assert.Contains(t, buf.String(), "seed 7")
}

func TestGenerateWritesManifest(t *testing.T) {
	outDir := t.TempDir()

	_, err := runGenerateCmd(t, "--out", outDir, "--rows", "10", "--seed", "3")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)

	var m RunManifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotEmpty(t, m.RunID)
	assert.Equal(t, uint64(3), m.Seed)
	require.Len(t, m.Files, 10)
	assert.Equal(t, "ecommerce", m.Files[0].Domain)
	for _, f := range m.Files {
		assert.Equal(t, 10, f.Rows)
	}
}

func TestGenerateDomainSubset(t *testing.T) {
	outDir := t.TempDir()

	_, err := runGenerateCmd(t, "--out", outDir, "--rows", "5", "--seed", "1",
		"--domains", "ecommerce,cashflow")
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	// two CSVs plus the manifest
	assert.Len(t, entries, 3)
}

func TestGenerateUnknownDomain(t *testing.T) {
	_, err := runGenerateCmd(t, "--out", t.TempDir(), "--domains", "vendas")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGenerateMissingOutputDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	_, err := runGenerateCmd(t, "--out", missing, "--rows", "5", "--seed", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestGenerateWithProfile(t *testing.T) {
	outDir := t.TempDir()
	profilePath := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(profilePath, []byte(`
rows: 8
seed: 11
domains:
  marketing:
    skip: true
  cashflow:
    rows: 20
`), 0o644))

	_, err := runGenerateCmd(t, "--out", outDir, "--profile", profilePath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)

	var m RunManifest
	require.NoError(t, json.Unmarshal(data, &m))
	require.Len(t, m.Files, 9)
	for _, f := range m.Files {
		assert.NotEqual(t, "marketing", f.Domain)
		if f.Domain == "cashflow" {
			assert.Equal(t, 20, f.Rows)
		} else {
			assert.Equal(t, 8, f.Rows)
		}
	}
}

func TestGenerateInvalidProfile(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(profilePath, []byte("linhas: 10\n"), 0o644))

	_, err := runGenerateCmd(t, "--out", t.TempDir(), "--profile", profilePath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGenerateEverythingSkipped(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profile.yml")
	content := "domains:\n"
	for _, name := range dataset.DomainNames() {
		content += "  " + name + ":\n    skip: true\n"
	}
	require.NoError(t, os.WriteFile(profilePath, []byte(content), 0o644))

	_, err := runGenerateCmd(t, "--out", t.TempDir(), "--profile", profilePath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "nothing to generate")
}

func TestGenerateDatabaseSink(t *testing.T) {
	outDir := t.TempDir()
	dbPath := filepath.Join(outDir, "datagen.db")

	_, err := runGenerateCmd(t, "--out", outDir, "--rows", "6", "--seed", "2",
		"--domains", "inventory", "--db", dbPath)
	require.NoError(t, err)

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	n, err := db.CountRows(t.Context(), "inventory")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestGenerateJSONOutput(t *testing.T) {
	outDir := t.TempDir()

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--out", outDir, "--rows", "5", "--seed", "9", "--domains", "hr"})
	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}
