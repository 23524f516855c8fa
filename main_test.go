package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodMac/jsema/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, code := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(code), 0o644))
	}
	return root
}

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []map[string]any
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	require.NoError(t, sc.Err())
	return out
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stderr.String(), err
}

func TestAnalyze_JsonL(t *testing.T) {
	root := writeSources(t, map[string]string{
		"com/a/A.java": "package com.a;\npublic class A extends B { int x; int get() { return x; } }\n",
		"com/a/B.java": "package com.a;\npublic class B extends A { }\n",
		"com/a/C.java": "package com.a;\npublic class C { int f(A a) { return a.get(); } }\n",
		"README.md":    "not java",
	})
	outDir := t.TempDir()

	logs, err := runCLI(t, "analyze", "--path", root, "--out-dir", outDir, "--format", "jsonl", "--level", "0")
	require.NoError(t, err, logs)
	assert.Contains(t, logs, "done")

	sorted := readLines(t, filepath.Join(outDir, output.SortedTypesFile))
	require.Len(t, sorted, 3)
	var primaries []string
	for _, rec := range sorted {
		primaries = append(primaries, rec["Primary"].(string))
	}
	assert.ElementsMatch(t, []string{"com.a.A", "com.a.B", "com.a.C"}, primaries)
	// A 与 B 互为父类，构成同一组；C 依赖 A，排在环之后
	assert.Equal(t, sorted[0]["Group"], sorted[1]["Group"])
	assert.Equal(t, "com.a.C", sorted[2]["Primary"])
	assert.Len(t, sorted[0]["Cycle"], 2)

	rels := readLines(t, filepath.Join(outDir, output.RelationsFile))
	assert.NotEmpty(t, rels)

	data, err := os.ReadFile(filepath.Join(outDir, output.ManifestFile))
	require.NoError(t, err)
	var manifest output.Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.NotEmpty(t, manifest.RunID)
	assert.Equal(t, 3, manifest.Files)
	assert.Equal(t, 3, manifest.Types)
	assert.Equal(t, 1, manifest.Cycles)
	assert.Contains(t, manifest.Outputs, output.DiagnosticsFile)
}

func TestAnalyze_Mermaid(t *testing.T) {
	root := writeSources(t, map[string]string{
		"p/A.java": "package p;\nclass A { int x() { return B.y(); } static int z() { return 1; } }\n",
		"p/B.java": "package p;\nclass B { static int y() { return A.z(); } }\n",
	})
	outDir := t.TempDir()

	_, err := runCLI(t, "analyze", "--path", root, "--out-dir", outDir, "--format", "mermaid")
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(outDir, output.MermaidFile))
	require.NoError(t, err)
	assert.Contains(t, string(html), "graph LR")
	assert.Contains(t, string(html), "n_p_A")
	assert.Contains(t, string(html), "n_p_A ==> n_p_B")
	assert.Contains(t, string(html), "class n_p_A,n_p_B cycle")
}

func TestAnalyze_ConfigFileAndOverrides(t *testing.T) {
	root := writeSources(t, map[string]string{
		"src/p/A.java":     "package p;\nclass A { }\n",
		"gen/p/Gen.java":   "package p;\nclass Gen { }\n",
		"src/p/Other.java": "package p;\nclass Other { Object o = new A(); }\n",
	})
	outDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "jsema.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[scan]
exclude = ["gen/**"]

[output]
format = "mermaid"
level = 2
`), 0o644))

	_, err := runCLI(t, "analyze", "-c", cfgPath, "--path", root, "--out-dir", outDir, "--format", "jsonl")
	require.NoError(t, err)

	sorted := readLines(t, filepath.Join(outDir, output.SortedTypesFile))
	require.Len(t, sorted, 2)
	assert.Equal(t, "p.A", sorted[0]["Primary"])
	assert.Equal(t, "p.Other", sorted[1]["Primary"])
}

func TestAnalyze_InvalidFlags(t *testing.T) {
	_, err := runCLI(t, "analyze", "--path", t.TempDir(), "--format", "xml")
	assert.Error(t, err)

	_, err = runCLI(t, "analyze", "--path", t.TempDir(), "--level", "7")
	assert.Error(t, err)

	_, err = runCLI(t, "analyze", "-c", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
