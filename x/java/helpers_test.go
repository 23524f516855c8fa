package java_test

import (
	"slices"
	"testing"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/model"
	"github.com/CodMac/jsema/processor"
	_ "github.com/CodMac/jsema/x/java"
	"github.com/stretchr/testify/require"
)

// analyzeWith 以内联源码跑完整流水线；key 为文件路径
func analyzeWith(t *testing.T, opts core.Options, level core.FilterLevel, files map[string]string) (*processor.Result, error) {
	t.Helper()
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	sources := make([]processor.Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, processor.Source{Path: p, Code: []byte(files[p])})
	}
	proc := processor.NewFileProcessor(core.LangJava, 2, level)
	proc.Options = opts
	return proc.ProcessSources(sources)
}

func analyze(t *testing.T, files map[string]string) *processor.Result {
	t.Helper()
	res, err := analyzeWith(t, core.Options{}, core.LevelRaw, files)
	require.NoError(t, err)
	return res
}

func typeOf(t *testing.T, res *processor.Result, fqn string) (model.TypeID, *model.TypeInspection) {
	t.Helper()
	id, ok := res.Env.Registry.Get(fqn)
	require.True(t, ok, "type %s not registered", fqn)
	ti, err := res.Env.Registry.TypeInspection(id)
	require.NoError(t, err)
	return id, ti
}

func methodOf(t *testing.T, res *processor.Result, fqn, name string) *model.MethodInfo {
	t.Helper()
	_, ti := typeOf(t, res, fqn)
	arena := res.Env.Registry.Arena()
	for _, mid := range ti.AllMethods() {
		if m := arena.Method(mid); m.Name == name {
			return m
		}
	}
	require.Failf(t, "method not found", "%s.%s", fqn, name)
	return nil
}

func fieldOf(t *testing.T, res *processor.Result, fqn, name string) *model.FieldInfo {
	t.Helper()
	_, ti := typeOf(t, res, fqn)
	arena := res.Env.Registry.Arena()
	for _, fid := range ti.Fields {
		if f := arena.Field(fid); f.Name == name {
			return f
		}
	}
	require.Failf(t, "field not found", "%s.%s", fqn, name)
	return nil
}

func bodyOf(t *testing.T, res *processor.Result, fqn, name string) []model.Statement {
	t.Helper()
	blk, ok := methodOf(t, res, fqn, name).Body.Get()
	require.True(t, ok, "body of %s.%s not set", fqn, name)
	return blk.Statements
}

// returned 方法体最后一条 return 语句的表达式
func returned(t *testing.T, res *processor.Result, fqn, name string) model.Expression {
	t.Helper()
	stmts := bodyOf(t, res, fqn, name)
	require.NotEmpty(t, stmts)
	ret, ok := stmts[len(stmts)-1].(*model.Return)
	require.True(t, ok, "last statement is %T", stmts[len(stmts)-1])
	return ret.Expr
}

func hasRelation(res *processor.Result, kind model.DependencyType, source, target string) bool {
	for _, r := range res.Relations {
		if r.Type == kind && r.SourceName == source && r.TargetName == target {
			return true
		}
	}
	return false
}

func diagnosticKinds(res *processor.Result) []string {
	var out []string
	for _, d := range res.Sorted.Diagnostics {
		out = append(out, d.Kind)
	}
	return out
}

func sortedOf(t *testing.T, res *processor.Result, fqn string) *model.SortedType {
	t.Helper()
	id, _ := typeOf(t, res, fqn)
	for _, st := range res.Sorted.Flatten() {
		if st.Primary == id {
			return st
		}
	}
	require.Failf(t, "sorted type not found", fqn)
	return nil
}

func indexOf(st *model.SortedType, ref model.MemberRef) int {
	return slices.Index(st.Members, ref)
}
