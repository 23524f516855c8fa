package java_test

import (
	"testing"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	"github.com/CodMac/jsema/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LocalShadowsField(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/T.java": `package p;
class T {
	int x;
	int get() { int x = this.x; return x; }
	int outer() { { int x = 1; } return x; }
}`,
	})

	// return x 绑定局部变量
	ret, ok := returned(t, res, "p.T", "get").(*model.VariableExpression)
	require.True(t, ok)
	local, ok := ret.Var.(*model.LocalVariable)
	require.True(t, ok, "expected local, got %T", ret.Var)
	assert.Equal(t, "x", local.Name)
	assert.Equal(t, model.LocalPlain, local.Kind)

	// this.x 读字段
	decl, ok := bodyOf(t, res, "p.T", "get")[0].(*model.LocalVariableCreation)
	require.True(t, ok)
	init, ok := decl.Inits[0].(*model.VariableExpression)
	require.True(t, ok)
	_, isField := init.Var.(*model.FieldReference)
	assert.True(t, isField)

	// 离开块后字段重新可见
	ret, ok = returned(t, res, "p.T", "outer").(*model.VariableExpression)
	require.True(t, ok)
	_, isField = ret.Var.(*model.FieldReference)
	assert.True(t, isField)

	assert.True(t, hasRelation(res, model.Use, "p.T.get()", "p.T.x"))

	st := sortedOf(t, res, "p.T")
	x := fieldOf(t, res, "p.T", "x")
	get := methodOf(t, res, "p.T", "get")
	assert.Less(t, indexOf(st, model.FieldRef(x.ID)), indexOf(st, model.MethodRef(get.ID)))
}

func TestResolve_TypeCycle(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/A.java": "package p;\nclass A extends B { }\n",
		"p/B.java": "package p;\nclass B extends A { }\n",
		"p/C.java": "package p;\nclass C { }\n",
	})

	require.Len(t, res.Sorted.Cycles, 2)
	cycle := res.Sorted.Cycles[0]
	require.True(t, cycle.IsCycle())
	require.Len(t, cycle.Types, 2)

	a, _ := typeOf(t, res, "p.A")
	b, _ := typeOf(t, res, "p.B")
	for _, st := range cycle.Types {
		assert.ElementsMatch(t, []model.TypeID{a, b}, st.Cycle)
		assert.True(t, st.InCycle())
	}
	assert.False(t, res.Sorted.Cycles[1].IsCycle())
	assert.False(t, res.Sorted.Cycles[1].Types[0].InCycle())
}

func TestResolve_TopologicalOrder(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/A.java": "package p;\nclass A { static int a() { return 1; } }\n",
		"p/B.java": "package p;\nclass B { static int b() { return A.a(); } }\n",
		"p/C.java": "package p;\nclass C { int c() { return B.b(); } }\n",
	})

	var order []string
	for _, c := range res.Sorted.Cycles {
		require.False(t, c.IsCycle())
		order = append(order, res.Env.Registry.Type(c.Types[0].Primary).FQN)
	}
	assert.Equal(t, []string{"p.A", "p.B", "p.C"}, order)
	assert.True(t, hasRelation(res, model.Call, "p.C.c()", "p.B.b()"))
}

func TestResolve_MemberCycle(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/M.java": `package p;
class M {
	int even(int n) { return n == 0 ? 1 : odd(n - 1); }
	int odd(int n) { return n == 0 ? 0 : even(n - 1); }
	int leaf() { return 0; }
}`,
	})

	st := sortedOf(t, res, "p.M")
	even := methodOf(t, res, "p.M", "even")
	odd := methodOf(t, res, "p.M", "odd")
	require.Len(t, st.MemberCycles, 1)
	assert.ElementsMatch(t, []model.MemberRef{model.MethodRef(even.ID), model.MethodRef(odd.ID)}, st.MemberCycles[0])
	// 同一成员环内的元素相邻
	assert.Equal(t, 1, abs(indexOf(st, model.MethodRef(even.ID))-indexOf(st, model.MethodRef(odd.ID))))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestResolve_OperatorWidening(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/O.java": `package p;
class O {
	double d() { return 1 + 2.0; }
	String s() { return "a" + 1; }
	String s2() { return 1 + "a"; }
	long l() { return 1 + 2L; }
}`,
	})

	op := returned(t, res, "p.O", "d").(*model.BinaryOperation)
	assert.Equal(t, "+", op.Operator.Symbol)
	assert.Equal(t, model.Double, op.Operator.Operand)
	assert.Equal(t, model.Double.PT(), op.Type)

	for _, name := range []string{"s", "s2"} {
		op = returned(t, res, "p.O", name).(*model.BinaryOperation)
		assert.Equal(t, model.StringConcat, op.Operator.Family, name)
		assert.True(t, res.Env.Registry.IsString(op.Type), name)
	}

	op = returned(t, res, "p.O", "l").(*model.BinaryOperation)
	assert.Equal(t, model.Long, op.Operator.Operand)
}

func TestResolve_OperatorMismatch(t *testing.T) {
	_, err := analyzeWith(t, core.Options{}, core.LevelRaw, map[string]string{
		"p/O.java": "package p;\nclass O { boolean b() { return true + 1; } }\n",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeOperatorMismatch), err.Error())
}

func TestResolve_VarArgsOverload(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/V.java": `package p;
class V {
	void f(int a, String... rest) { }
	void f(String s) { }
	void g() {
		f(1);
		f(1, "a");
		f(1, "a", "b");
		f(1, "a", "b", "c");
		f("only");
	}
}`,
	})

	_, ti := typeOf(t, res, "p.V")
	arena := res.Env.Registry.Arena()
	var varargs, single model.MethodID
	for _, mid := range ti.Methods {
		m := arena.Method(mid)
		if m.Name != "f" {
			continue
		}
		if mi, _ := m.Inspection.Get(); mi.VarArgs {
			varargs = mid
		} else {
			single = mid
		}
	}
	require.NotEqual(t, model.NoMethod, varargs)
	require.NotEqual(t, model.NoMethod, single)

	stmts := bodyOf(t, res, "p.V", "g")
	require.Len(t, stmts, 5)
	for i, st := range stmts {
		call := st.(*model.ExpressionStatement).Expr.(*model.MethodCall)
		if i < 4 {
			assert.Equal(t, varargs, call.Method, "call %d", i)
			assert.Len(t, call.Args, i+1)
		} else {
			assert.Equal(t, single, call.Method)
		}
	}

	_, err := analyzeWith(t, core.Options{}, core.LevelRaw, map[string]string{
		"p/V.java": "package p;\nclass V { void f(int a, String... rest) { } void g() { f(); } }\n",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnresolvedName))
}

func TestResolve_ImportPriority(t *testing.T) {
	res := analyze(t, map[string]string{
		"p1/List.java": "package p1;\npublic class List { }\n",
		"p2/List.java": "package p2;\npublic class List { }\n",
		"q/U.java": `package q;
import p1.List;
import p2.*;
import java.util.*;
class U { List l; ArrayList<String> names; }`,
	})

	p1, _ := typeOf(t, res, "p1.List")
	fi, ok := fieldOf(t, res, "q.U", "l").Inspection.Get()
	require.True(t, ok)
	assert.Equal(t, p1, fi.Type.Type)

	al, _ := typeOf(t, res, "java.util.ArrayList")
	fi, ok = fieldOf(t, res, "q.U", "names").Inspection.Get()
	require.True(t, ok)
	assert.Equal(t, al, fi.Type.Type)
	require.Len(t, fi.Type.Args, 1)
	assert.True(t, res.Env.Registry.IsString(fi.Type.Args[0]))
}

func TestResolve_StaticImport(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/K.java": "package p;\npublic class K { public static final int MAX = 3; public static int twice(int v) { return v * 2; } }\n",
		"q/S.java": `package q;
import static p.K.MAX;
import static p.K.*;
class S { int m() { return twice(MAX); } }`,
	})

	call, ok := returned(t, res, "q.S", "m").(*model.MethodCall)
	require.True(t, ok)
	assert.True(t, call.Static)
	assert.Equal(t, methodOf(t, res, "p.K", "twice").ID, call.Method)
	assert.True(t, hasRelation(res, model.Use, "q.S.m()", "p.K.MAX"))
}

func TestResolve_EnumMembers(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/Color.java": `package p;
enum Color {
	RED, GREEN(2);
	private final int weight;
	Color() { this(1); }
	Color(int w) { weight = w; }
	Color next() { return this == RED ? GREEN : RED; }
}`,
	})

	id, ti := typeOf(t, res, "p.Color")
	assert.Equal(t, model.NatureEnum, ti.Nature)
	methodOf(t, res, "p.Color", java.ValuesMethod)
	methodOf(t, res, "p.Color", java.ValueOfMethod)

	red := fieldOf(t, res, "p.Color", "RED")
	init, ok := red.Initializer.Get()
	require.True(t, ok)
	create, ok := init.(*model.ConstructorCall)
	require.True(t, ok, "got %T", init)
	assert.Equal(t, id, create.Type.Type)
	assert.Empty(t, create.Args)

	green, ok := fieldOf(t, res, "p.Color", "GREEN").Initializer.Get()
	require.True(t, ok)
	assert.Len(t, green.(*model.ConstructorCall).Args, 1)

	// 常量依赖构造器，排在 next 之前
	st := sortedOf(t, res, "p.Color")
	next := methodOf(t, res, "p.Color", "next")
	assert.Less(t, indexOf(st, model.FieldRef(red.ID)), indexOf(st, model.MethodRef(next.ID)))
}

func TestResolve_RecordMembers(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/P.java": `package p;
record P(int x, String label) {
	P {
		if (x < 0) throw new IllegalArgumentException();
	}
	int doubled() { return x() * 2; }
}`,
	})

	_, ti := typeOf(t, res, "p.P")
	assert.Equal(t, model.NatureRecord, ti.Nature)

	x := fieldOf(t, res, "p.P", "x")
	fi, _ := x.Inspection.Get()
	assert.True(t, fi.RecordComponent)

	acc := methodOf(t, res, "p.P", "label")
	mi, _ := acc.Inspection.Get()
	assert.True(t, mi.Synthetic)
	assert.True(t, res.Env.Registry.IsString(mi.ReturnType))

	// 紧凑构造器：校验语句在前，组件赋值追加在后
	var compact *model.MethodInfo
	for _, mid := range ti.Constructors {
		if cmi, _ := res.Env.Registry.Arena().Method(mid).Inspection.Get(); cmi.Kind == model.KindCompactConstructor {
			compact = res.Env.Registry.Arena().Method(mid)
		}
	}
	require.NotNil(t, compact)
	blk, ok := compact.Body.Get()
	require.True(t, ok)
	require.Len(t, blk.Statements, 3)
	assert.IsType(t, &model.If{}, blk.Statements[0])
	assert.IsType(t, &model.ExpressionStatement{}, blk.Statements[1])
	assert.True(t, hasRelation(res, model.Assign, "p.P.<init>(int,java.lang.String)", "p.P.x"))

	call := returned(t, res, "p.P", "doubled").(*model.BinaryOperation).Lhs.(*model.MethodCall)
	assert.Equal(t, methodOf(t, res, "p.P", "x").ID, call.Method)
}

func TestResolve_Companions(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/K.java": `package p;
class K {
	int size$Modification$Len() { return 0; }
	int size() { return 0; }
	int dangling$Value() { return 1; }
}`,
	})

	size := methodOf(t, res, "p.K", "size")
	mi, _ := size.Inspection.Get()
	require.Len(t, mi.Companions, 1)
	for name := range mi.Companions {
		assert.Equal(t, "size", name.Main)
		assert.Equal(t, model.CompanionModification, name.Action)
		assert.Equal(t, "Len", name.Aspect)
	}
	assert.Contains(t, diagnosticKinds(res), java.DiagOrphanCompanion)
}

func TestResolve_LambdaAndMethodReference(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/L.java": `package p;
import java.util.function.Function;
class L {
	Function<String, Integer> f = s -> s.length();
	Function<String, Integer> g = String::length;
}`,
	})

	init, ok := fieldOf(t, res, "p.L", "f").Initializer.Get()
	require.True(t, ok)
	lambda, ok := init.(*model.Lambda)
	require.True(t, ok, "got %T", init)
	require.Len(t, lambda.Params, 1)
	assert.Equal(t, model.LocalLambdaParam, lambda.Params[0].Kind)
	assert.True(t, res.Env.Registry.IsString(lambda.Params[0].Type))
	assert.IsType(t, &model.MethodCall{}, lambda.Expr)

	length := methodOf(t, res, "java.lang.String", "length")
	init, ok = fieldOf(t, res, "p.L", "g").Initializer.Get()
	require.True(t, ok)
	ref, ok := init.(*model.MethodReference)
	require.True(t, ok, "got %T", init)
	assert.Equal(t, length.ID, ref.Method)
	assert.True(t, hasRelation(res, model.Reference, "p.L.g", "java.lang.String.length()"))
}

func TestResolve_UnsupportedConstruct(t *testing.T) {
	_, err := analyzeWith(t, core.Options{}, core.LevelRaw, map[string]string{
		"p/U.java": "package p;\nclass U { void m() { Object o = () -> 1; } }\n",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnsupportedConstruct), err.Error())
}

func TestResolve_MissingSupertype(t *testing.T) {
	_, err := analyzeWith(t, core.Options{}, core.LevelRaw, map[string]string{
		"p/A.java": "package p;\nclass A extends Nope { }\n",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMissingSupertype), err.Error())
}

func TestResolve_KeepGoing(t *testing.T) {
	files := map[string]string{
		"p/Bad.java":  "package p;\nclass Bad { void m() { undefined(); } }\n",
		"p/Good.java": "package p;\nclass Good { int v() { return 1; } }\n",
	}
	_, err := analyzeWith(t, core.Options{}, core.LevelRaw, files)
	require.Error(t, err)

	res, err := analyzeWith(t, core.Options{KeepGoing: true}, core.LevelRaw, files)
	require.NoError(t, err)
	assert.Contains(t, diagnosticKinds(res), java.DiagResolveFailed)

	var names []string
	for _, st := range res.Sorted.Flatten() {
		names = append(names, res.Env.Registry.Type(st.Primary).FQN)
	}
	assert.Equal(t, []string{"p.Good"}, names)
}

func TestResolve_NestedTypes(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/Outer.java": `package p;
class Outer {
	private int secret = 7;
	static class Helper { static int one() { return 1; } }
	class Inner { int peek() { return secret + Helper.one(); } }
}`,
	})

	st := sortedOf(t, res, "p.Outer")
	helper, _ := typeOf(t, res, "p.Outer.Helper")
	inner, _ := typeOf(t, res, "p.Outer.Inner")
	assert.GreaterOrEqual(t, indexOf(st, model.TypeRef(helper)), 0)
	assert.Less(t, indexOf(st, model.TypeRef(helper)), indexOf(st, model.TypeRef(inner)))
	assert.True(t, hasRelation(res, model.Use, "p.Outer.Inner.peek()", "p.Outer.secret"))
	assert.True(t, hasRelation(res, model.Call, "p.Outer.Inner.peek()", "p.Outer.Helper.one()"))
}
