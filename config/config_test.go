package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CodMac/jsema/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jsema.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[scan]\nroot = \"src\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "src", cfg.Scan.Root)
	assert.Equal(t, []string{"**.java"}, cfg.Scan.Include)
	assert.Equal(t, 4, cfg.Analysis.Jobs)
	assert.Equal(t, "jsonl", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.JDKEnabled())
}

func TestLoadAnalysisOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[analysis]
jobs = 8
strict = true
keep_going = true
jdk = false

[output]
level = 2
noise_packages = ["com.acme.generated.**"]
`))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Analysis.Jobs)
	assert.Equal(t, core.Options{Strict: true, KeepGoing: true}, cfg.Options())
	assert.False(t, cfg.JDKEnabled())
	assert.Equal(t, core.LevelPure, cfg.FilterLevel())
	assert.Equal(t, []string{"com.acme.generated.**"}, cfg.Output.NoisePackages)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"version", "version = 3\n"},
		{"language", "[analysis]\nlanguage = \"kotlin\"\n"},
		{"format", "[output]\nformat = \"xml\"\n"},
		{"level", "[output]\nlevel = 5\n"},
		{"log level", "[log]\nlevel = \"trace\"\n"},
		{"scan pattern", "[scan]\ninclude = [\"[a-\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestMatcherIncludeExclude(t *testing.T) {
	m, err := NewMatcher(Scan{Include: []string{"**.java"}, Exclude: []string{"**/generated/**"}})
	require.NoError(t, err)

	assert.True(t, m.Match("A.java"))
	assert.True(t, m.Match("com/acme/A.java"))
	assert.False(t, m.Match("com/acme/generated/B.java"))
	assert.False(t, m.Match("com/acme/notes.txt"))
}

func TestScanFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "com", "acme"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "com", "acme", "A.java"), []byte("class A {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o644))

	m, err := NewMatcher(Default().Scan)
	require.NoError(t, err)
	files, err := m.ScanFiles(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "A.java", filepath.Base(files[0]))
}
