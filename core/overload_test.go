package core

import (
	"testing"

	"github.com/CodMac/jsema/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibleArgCount(t *testing.T) {
	tests := []struct {
		name      string
		declared  int
		varArgs   bool
		presented int
		want      bool
	}{
		{"no params, no args", 0, false, 0, true},
		{"no params, one arg", 0, false, 1, false},
		{"exact", 2, false, 2, true},
		{"too few", 2, false, 1, false},
		{"varargs empty tail", 2, true, 1, true},
		{"varargs many", 2, true, 4, true},
		{"varargs missing fixed", 2, true, 0, false},
		{"ignore count", 3, false, IgnoreArgCount, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompatibleArgCount(tt.declared, tt.varArgs, tt.presented))
		})
	}
}

func TestResolveCandidates_VarArgs(t *testing.T) {
	reg, _ := newTestRegistry()
	str := reg.StringType()
	var f model.MethodID
	util := declareClass(reg, "com.app", "Util", func(id model.TypeID, b *model.TypeInspectionBuilder) {
		f = addMethod(reg, id, b, "f", true, true, model.Int.PT(), str.WithArrays(1))
	})
	tc := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")

	for n := 1; n <= 4; n++ {
		cands := tc.ResolveCandidates(model.Of(util), "f", n, true)
		require.Len(t, cands, 1, "f(int, String...) with %d args", n)
		assert.Equal(t, f, cands[0].Method)
	}
	assert.Empty(t, tc.ResolveCandidates(model.Of(util), "f", 0, true))
}

func TestResolveCandidates_InheritanceAndCapture(t *testing.T) {
	reg, _ := newTestRegistry()
	var put model.MethodID
	box := declareClass(reg, "com.app", "Box", func(id model.TypeID, b *model.TypeInspectionBuilder) {
		tp := model.TypeParameter{Ref: model.TypeParamRef{Owner: id, Index: 0, Name: "T"}}
		b.AddTypeParameter(tp)
		put = addMethod(reg, id, b, "put", false, false, model.OfParam(tp.Ref))
	})
	sub := declareClass(reg, "com.app", "StringBox", func(id model.TypeID, b *model.TypeInspectionBuilder) {
		b.SetParent(model.Of(box, reg.StringType()))
	})
	tc := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")

	cands := tc.ResolveCandidates(model.Of(sub), "put", 1, false)
	require.Len(t, cands, 1)
	c := cands[0]
	assert.Equal(t, put, c.Method)
	assert.Equal(t, 1, c.Distance)

	param := reg.Arena().Param(mustInspection(t, reg, put).Params[0])
	pi, _ := param.Inspection.Get()
	assert.True(t, reg.IsString(pi.Type.Substitute(c.TypeMap)))

	assert.Empty(t, tc.ResolveCandidates(model.Of(sub), "put", 1, true), "instance method filtered in static context")
}

func TestResolveCandidates_FunctionalPositions(t *testing.T) {
	reg, _ := newTestRegistry()
	task, err := reg.DeclareSource("com.app", model.NoType, "Task")
	require.NoError(t, err)
	tb := model.NewTypeInspectionBuilder(model.NatureInterface)
	run := reg.Arena().NewMethod(task, "run", false)
	_ = run.Inspection.Set(model.NewMethodInspectionBuilder(model.KindMethod).
		SetModifiers(model.ModPublic | model.ModAbstract).SetReturnType(model.Void.PT()).Build())
	tb.AddMethod(run.ID)
	_ = reg.Type(task).Inspection.Set(tb.Build())

	exec := declareClass(reg, "com.app", "Executor", func(id model.TypeID, b *model.TypeInspectionBuilder) {
		addMethod(reg, id, b, "submit", false, false, model.Int.PT(), model.Of(task))
	})
	tc := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")

	cands := tc.ResolveCandidates(model.Of(exec), "submit", 2, false)
	require.Len(t, cands, 1)
	assert.Equal(t, []int{1}, cands[0].Functional)
	assert.True(t, reg.IsFunctionalInterface(model.Of(task)))
}

func TestResolveUnqualified_EnclosingAndStaticImports(t *testing.T) {
	reg, _ := newTestRegistry()
	var helper model.MethodID
	outer := declareClass(reg, "com.app", "Outer", func(id model.TypeID, b *model.TypeInspectionBuilder) {
		helper = addMethod(reg, id, b, "helper", false, false)
	})
	inner, err := reg.DeclareSource("com.app", outer, "Inner")
	require.NoError(t, err)
	_ = reg.Type(inner).Inspection.Set(model.NewTypeInspectionBuilder(model.NatureClass).
		SetModifiers(model.ModStatic).SetParent(model.Of(reg.Object())).Build())

	var join model.MethodID
	util := declareClass(reg, "com.util", "Strings", func(id model.TypeID, b *model.TypeInspectionBuilder) {
		join = addMethod(reg, id, b, "join", true, false, reg.StringType())
	})

	unit := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")
	unit.AddStaticImport(util, "join")

	inInner := unit.ResolveUnqualified(inner, "helper", 0, false)
	assert.Empty(t, inInner, "instance method of outer type not reachable from static nested type")

	cands := unit.ResolveUnqualified(outer, "helper", 0, false)
	require.Len(t, cands, 1)
	assert.Equal(t, helper, cands[0].Method)

	cands = unit.ResolveUnqualified(inner, "join", 1, false)
	require.Len(t, cands, 1)
	assert.Equal(t, join, cands[0].Method)
}

func mustInspection(t *testing.T, reg *TypeRegistry, id model.MethodID) *model.MethodInspection {
	t.Helper()
	mi, ok := reg.Arena().Method(id).Inspection.Get()
	require.True(t, ok)
	return mi
}
