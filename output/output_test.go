package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/model"
	"github.com/CodMac/jsema/processor"
	_ "github.com/CodMac/jsema/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, sources ...processor.Source) *processor.Result {
	t.Helper()
	proc := processor.NewFileProcessor(core.LangJava, 2, core.LevelRaw)
	res, err := proc.ProcessSources(sources)
	require.NoError(t, err)
	return res
}

var cyclicSources = []processor.Source{
	{Path: "p/A.java", Code: []byte("package p;\nclass A { int x() { return B.y(); } static int z() { return 1; } }\n")},
	{Path: "p/B.java", Code: []byte("package p;\nclass B { static int y() { return A.z(); } }\n")},
	{Path: "q/C.java", Code: []byte("package q;\nclass C { void run() { } }\n")},
}

func TestSortedTypeRecords(t *testing.T) {
	res := analyze(t, cyclicSources...)
	recs := NewSortedTypeRecords(res.Env.Registry, res.Sorted)
	require.Len(t, recs, 3)

	byName := map[string]SortedTypeRecord{}
	for i, r := range recs {
		assert.Equal(t, i, r.Order)
		byName[r.Primary] = r
	}
	a, b, c := byName["p.A"], byName["p.B"], byName["q.C"]
	assert.Equal(t, a.Group, b.Group)
	assert.NotEqual(t, a.Group, c.Group)
	assert.ElementsMatch(t, []string{"p.A", "p.B"}, a.Cycle)
	assert.Empty(t, c.Cycle)
	assert.Equal(t, "CLASS", strings.ToUpper(c.Nature))
	assert.Contains(t, c.Members, "q.C.run()")
}

func TestManifestSummarize(t *testing.T) {
	res := analyze(t, cyclicSources...)
	m := NewManifest("/src", "jsonl", 0)
	m.Summarize(res.Sorted, res.Relations)

	assert.Len(t, m.RunID, 36)
	assert.Equal(t, 3, m.Types)
	assert.Equal(t, 1, m.Cycles)
	assert.Equal(t, len(res.Relations), m.Relations)

	// 重复统计不累加
	m.Summarize(res.Sorted, res.Relations)
	assert.Equal(t, 3, m.Types)
}

func TestWriteMermaid(t *testing.T) {
	res := analyze(t, cyclicSources...)
	var buf bytes.Buffer
	require.NoError(t, WriteMermaid(&buf, res.Env.Registry, res.Sorted, res.Relations))
	html := buf.String()

	assert.Contains(t, html, "subgraph n_pkg_p [📦 p]")
	assert.Contains(t, html, "subgraph n_pkg_q [📦 q]")
	assert.Contains(t, html, "n_p_A ==> n_p_B")
	assert.Contains(t, html, "n_p_B ==> n_p_A")
	assert.Contains(t, html, "class n_p_A,n_p_B cycle")
	assert.NotContains(t, html, "n_q_C ==>")
}

func TestExporter_JsonL(t *testing.T) {
	res := analyze(t, cyclicSources...)
	dir := filepath.Join(t.TempDir(), "out")
	m := NewManifest("/src", "jsonl", 0)
	require.NoError(t, NewExporter(dir, JsonL).Export(res, m))

	for _, name := range []string{SortedTypesFile, RelationsFile, DiagnosticsFile, ManifestFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, MermaidFile))

	data, err := os.ReadFile(filepath.Join(dir, RelationsFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, len(res.Relations))

	var first model.DependencyRelation
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.NotEmpty(t, first.SourceName)
	assert.NotEmpty(t, first.TargetName)

	var written Manifest
	data, err = os.ReadFile(filepath.Join(dir, ManifestFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, m.RunID, written.RunID)
	assert.Equal(t, []string{SortedTypesFile, RelationsFile, DiagnosticsFile, ManifestFile}, written.Outputs)
}

func TestExporter_UnsupportedType(t *testing.T) {
	res := analyze(t, cyclicSources...)
	err := NewExporter(t.TempDir(), OutType("xml")).Export(res, NewManifest("", "xml", 0))
	assert.Error(t, err)
}

func TestSafeID(t *testing.T) {
	assert.Equal(t, "n_a_b_C_Inner", safeID("a.b.C$Inner"))
	assert.Equal(t, "n_m_int___", safeID("m(int[])"))
}
