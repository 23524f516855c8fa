package processor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	"github.com/CodMac/jsema/processor"
	_ "github.com/CodMac/jsema/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessSources_CrossFile(t *testing.T) {
	sources := []processor.Source{
		{Path: "com/a/Service.java", Code: []byte(`package com.a;
import com.b.Repo;
public class Service {
	private final Repo repo = new Repo();
	public int count() { return repo.size(); }
}`)},
		{Path: "com/b/Repo.java", Code: []byte(`package com.b;
public class Repo {
	public int size() { return 0; }
}`)},
	}

	proc := processor.NewFileProcessor(core.LangJava, 4, core.LevelRaw)
	res, err := proc.ProcessSources(sources)
	require.NoError(t, err)

	flat := res.Sorted.Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, "com.b.Repo", res.Env.Registry.Type(flat[0].Primary).FQN)
	assert.Equal(t, "com.a.Service", res.Env.Registry.Type(flat[1].Primary).FQN)

	var call *model.DependencyRelation
	for _, r := range res.Relations {
		if r.Type == model.Call && r.TargetName == "com.b.Repo.size()" {
			call = r
		}
	}
	require.NotNil(t, call)
	assert.Equal(t, "com.a.Service.count()", call.SourceName)
	require.NotNil(t, call.Location)
	assert.Equal(t, "com/a/Service.java", call.Location.FilePath)
	assert.Equal(t, 5, call.Location.StartLine)

	// 每个类型都走完两遍
	for _, st := range flat {
		assert.Equal(t, model.BodyReady, res.Env.Registry.Type(st.Primary).State())
	}
}

func TestProcessSources_Concurrency(t *testing.T) {
	var sources []processor.Source
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		sources = append(sources, processor.Source{
			Path: "p/" + name + ".java",
			Code: []byte("package p;\nclass " + name + " { String v() { return \"x\" + v().length(); } }\n"),
		})
	}
	for _, jobs := range []int{1, 3, 8} {
		res, err := processor.NewFileProcessor(core.LangJava, jobs, core.LevelRaw).ProcessSources(sources)
		require.NoError(t, err, "jobs=%d", jobs)
		assert.Len(t, res.Sorted.Flatten(), len(sources))
	}
}

func TestProcessSources_DisableJDK(t *testing.T) {
	sources := []processor.Source{
		{Path: "p/S.java", Code: []byte("package p;\nclass S { int n() { return \"x\".length(); } }\n")},
	}

	proc := processor.NewFileProcessor(core.LangJava, 1, core.LevelRaw)
	_, err := proc.ProcessSources(sources)
	require.NoError(t, err)

	proc.DisableJDK = true
	_, err = proc.ProcessSources(sources)
	require.Error(t, err)
}

func TestProcessSources_DuplicateType(t *testing.T) {
	sources := []processor.Source{
		{Path: "p/A.java", Code: []byte("package p;\nclass A { }\n")},
		{Path: "p/A2.java", Code: []byte("package p;\nclass A { }\n")},
	}
	_, err := processor.NewFileProcessor(core.LangJava, 1, core.LevelRaw).ProcessSources(sources)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeDuplicateDefinition), err.Error())
}

func TestProcessSources_NoisePackages(t *testing.T) {
	sources := []processor.Source{
		{Path: "p/N.java", Code: []byte("package p;\nclass N { int n() { return \"x\".length(); } }\n")},
	}
	proc := processor.NewFileProcessor(core.LangJava, 1, core.LevelBalanced)
	res, err := proc.ProcessSources(sources)
	require.NoError(t, err)
	for _, r := range res.Relations {
		assert.NotEqual(t, "java.lang.String.length()", r.TargetName)
	}

	proc.NoisePackages = []string{"org.none.**"}
	res, err = proc.ProcessSources(sources)
	require.NoError(t, err)
	found := false
	for _, r := range res.Relations {
		found = found || r.TargetName == "java.lang.String.length()"
	}
	assert.True(t, found)
}

func TestProcessSources_UnknownLanguage(t *testing.T) {
	_, err := processor.NewFileProcessor(core.Language("cobol"), 1, core.LevelRaw).ProcessSources(nil)
	assert.Error(t, err)
}

func TestProcessFiles_RelativePaths(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "p", "Q.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("package p;\nclass Q { int v() { return 1; } }\n"), 0o644))

	res, err := processor.NewFileProcessor(core.LangJava, 2, core.LevelRaw).ProcessFiles(root, []string{path})
	require.NoError(t, err)
	for _, r := range res.Relations {
		if r.Location != nil {
			assert.Equal(t, "p/Q.java", r.Location.FilePath)
		}
	}

	_, err = processor.NewFileProcessor(core.LangJava, 2, core.LevelRaw).ProcessFiles(root, []string{filepath.Join(root, "missing.java")})
	assert.Error(t, err)
}
