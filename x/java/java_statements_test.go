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

func TestStatements_ControlFlow(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/F.java": `package p;
import java.util.List;
class F {
	int sum(List<String> items, int[] nums) {
		int total = 0;
		for (int i = 0; i < nums.length; i++) { total += nums[i]; }
		for (String s : items) { total += s.length(); }
		for (int n : nums) total -= n;
		outer:
		while (total > 100) {
			do { total--; } while (total % 2 == 0);
			if (total == 50) break outer; else continue;
		}
		assert total >= 0 : "negative";
		synchronized (this) { total++; }
		return total;
	}
}`,
	})

	stmts := bodyOf(t, res, "p.F", "sum")
	require.Len(t, stmts, 8)
	assert.IsType(t, &model.LocalVariableCreation{}, stmts[0])
	assert.IsType(t, &model.For{}, stmts[1])

	each, ok := stmts[2].(*model.ForEach)
	require.True(t, ok)
	assert.Equal(t, model.LocalLoopVar, each.Var.Kind)
	assert.True(t, res.Env.Registry.IsString(each.Var.Type))

	prim, ok := stmts[3].(*model.ForEach)
	require.True(t, ok)
	assert.Equal(t, model.Int.PT(), prim.Var.Type)

	labeled, ok := stmts[4].(*model.Labeled)
	require.True(t, ok)
	assert.Equal(t, "outer", labeled.Label)
	loop, ok := labeled.Body.(*model.While)
	require.True(t, ok)
	inner := loop.Body.(*model.Block).Statements
	require.Len(t, inner, 2)
	assert.IsType(t, &model.DoWhile{}, inner[0])
	branch := inner[1].(*model.If)
	assert.Equal(t, "outer", branch.Then.(*model.Break).Label)
	assert.IsType(t, &model.Continue{}, branch.Else)

	assertion, ok := stmts[5].(*model.Assert)
	require.True(t, ok)
	assert.NotNil(t, assertion.Message)
	assert.IsType(t, &model.Synchronized{}, stmts[6])
	assert.IsType(t, &model.Return{}, stmts[7])
}

func TestStatements_TryCatch(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/R.java": `package p;
class R implements AutoCloseable {
	public void close() { }
	void run() {
		try (R r = new R()) {
			r.close();
		} catch (IllegalArgumentException | IllegalStateException e) {
			throw e;
		} catch (Exception e) {
			e.getMessage();
		} finally {
			close();
		}
	}
}`,
	})

	stmts := bodyOf(t, res, "p.R", "run")
	require.Len(t, stmts, 1)
	try, ok := stmts[0].(*model.Try)
	require.True(t, ok)

	require.Len(t, try.Resources, 1)
	resource := try.Resources[0].(*model.LocalVariableCreation)
	assert.Equal(t, model.LocalResource, resource.Vars[0].Kind)
	assert.True(t, resource.Vars[0].Final)

	require.Len(t, try.Catches, 2)
	multi := try.Catches[0]
	assert.Len(t, multi.Types, 2)
	assert.Equal(t, model.LocalCatchParam, multi.Var.Kind)
	rte, _ := typeOf(t, res, "java.lang.RuntimeException")
	assert.Equal(t, rte, multi.Var.Type.Type)
	require.NotNil(t, try.Finally)
	assert.Len(t, try.Finally.Statements, 1)
}

func TestStatements_Switch(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/S.java": `package p;
class S {
	String name(int v) {
		switch (v) {
			case 1:
			case 2:
				return "small";
			default:
				break;
		}
		String s = switch (v) {
			case 3, 4 -> "mid";
			default -> {
				yield "big";
			}
		};
		return s;
	}
}`,
	})

	stmts := bodyOf(t, res, "p.S", "name")
	require.Len(t, stmts, 3)
	sw, ok := stmts[0].(*model.Switch)
	require.True(t, ok)
	require.NotEmpty(t, sw.Cases)
	assert.True(t, sw.Cases[len(sw.Cases)-1].Default)

	decl := stmts[1].(*model.LocalVariableCreation)
	expr, ok := decl.Inits[0].(*model.SwitchExpression)
	require.True(t, ok, "got %T", decl.Inits[0])
	assert.True(t, res.Env.Registry.IsString(expr.Type))
	require.Len(t, expr.Cases, 2)
	assert.True(t, expr.Cases[0].Arrow)
	assert.Len(t, expr.Cases[0].Labels, 2)
	assert.True(t, expr.Cases[1].Default)
}

func TestStatements_LocalAndAnonymousClasses(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/A.java": `package p;
class A {
	int base = 1;
	int run(int seed) {
		class Counter {
			int next() { return seed + base; }
		}
		Runnable r = new Runnable() {
			public void run() { new Counter().next(); }
		};
		r.run();
		return new Counter().next();
	}
}`,
	})

	stmts := bodyOf(t, res, "p.A", "run")
	require.Len(t, stmts, 4)

	local, ok := stmts[0].(*model.LocalClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "p.A$1Counter", res.Env.Registry.Type(local.Type).FQN)
	require.NotNil(t, local.Sorted)
	assert.Equal(t, local.Type, local.Sorted.Primary)

	// 局部类读取外层参数与字段
	next := methodOf(t, res, "p.A$1Counter", "next")
	blk, ok := next.Body.Get()
	require.True(t, ok)
	sum := blk.Statements[0].(*model.Return).Expr.(*model.BinaryOperation)
	param, ok := sum.Lhs.(*model.VariableExpression).Var.(*model.ParameterInfo)
	require.True(t, ok)
	assert.Equal(t, "seed", param.Name)

	decl := stmts[1].(*model.LocalVariableCreation)
	create, ok := decl.Inits[0].(*model.ConstructorCall)
	require.True(t, ok)
	require.NotEqual(t, model.NoType, create.Anonymous)
	assert.Equal(t, "p.A$2", res.Env.Registry.Type(create.Anonymous).FQN)
	_, anon := typeOf(t, res, "p.A$2")
	runnable, _ := typeOf(t, res, "java.lang.Runnable")
	require.Len(t, anon.Interfaces, 1)
	assert.Equal(t, runnable, anon.Interfaces[0].Type)

	// 局部类型成员体中的依赖并入所在方法
	assert.True(t, hasRelation(res, model.Use, "p.A$1Counter.next()", "p.A.base"))
	st := sortedOf(t, res, "p.A")
	base := fieldOf(t, res, "p.A", "base")
	run := methodOf(t, res, "p.A", "run")
	assert.Less(t, indexOf(st, model.FieldRef(base.ID)), indexOf(st, model.MethodRef(run.ID)))
}

func TestStatements_EnumConstantBody(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/Op.java": `package p;
enum Op {
	PLUS { int apply(int a, int b) { return a + b; } },
	MINUS { int apply(int a, int b) { return a - b; } };
	abstract int apply(int a, int b);
}`,
	})

	id, _ := typeOf(t, res, "p.Op")
	init, ok := fieldOf(t, res, "p.Op", "PLUS").Initializer.Get()
	require.True(t, ok)
	create := init.(*model.ConstructorCall)
	require.NotEqual(t, model.NoType, create.Anonymous)
	_, anon := typeOf(t, res, res.Env.Registry.Type(create.Anonymous).FQN)
	require.NotNil(t, anon.Parent)
	assert.Equal(t, id, anon.Parent.Type)
}

func TestStatements_DroppedStatement(t *testing.T) {
	files := map[string]string{
		"p/D.java": `package p;
class D {
	int m() {
		int a = ;
		int b = 2;
		return b;
	}
}`,
	}
	res, err := analyzeWith(t, core.Options{}, core.LevelRaw, files)
	require.NoError(t, err)
	assert.Contains(t, diagnosticKinds(res), java.DiagDroppedStatement)

	stmts := bodyOf(t, res, "p.D", "m")
	require.NotEmpty(t, stmts)
	assert.IsType(t, &model.Return{}, stmts[len(stmts)-1])
	for _, st := range stmts {
		if lvc, ok := st.(*model.LocalVariableCreation); ok {
			assert.NotEqual(t, "a", lvc.Vars[0].Name)
		}
	}

	_, err = analyzeWith(t, core.Options{Strict: true}, core.LevelRaw, files)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnsupportedConstruct))
}

func TestStatements_LocalInitializerSeesEarlierLocal(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/Seq.java": `package p;
class Seq {
	int m() {
		int v = 1;
		int w = v;
		return w;
	}
}`,
	})
	stmts := bodyOf(t, res, "p.Seq", "m")
	require.Len(t, stmts, 3)
	w := stmts[1].(*model.LocalVariableCreation)
	v, ok := w.Inits[0].(*model.VariableExpression).Var.(*model.LocalVariable)
	require.True(t, ok)
	assert.Equal(t, "v", v.Name)
}

func TestStatements_PatternScopeEndsWithIf(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/P.java": `package p;
class P {
	int m(Object a, Object b) {
		if (a instanceof String s) { s.length(); }
		if (b instanceof Integer s) { return s.intValue(); }
		return 0;
	}
	int n(Object o) {
		if (!(o instanceof String t)) {
			return -1;
		}
		return t.length();
	}
	boolean k(Object o) {
		boolean x = o instanceof String s && s.isEmpty();
		Integer s = 1;
		return x && s.intValue() > 0;
	}
}`,
	})

	assert.NotContains(t, diagnosticKinds(res), java.DiagDuplicateVariable)
	assert.True(t, hasRelation(res, model.Call, "p.P.m(java.lang.Object,java.lang.Object)", "java.lang.Integer.intValue()"))
	assert.True(t, hasRelation(res, model.Call, "p.P.n(java.lang.Object)", "java.lang.String.length()"))
	assert.True(t, hasRelation(res, model.Call, "p.P.k(java.lang.Object)", "java.lang.Integer.intValue()"))

	stmts := bodyOf(t, res, "p.P", "m")
	first := stmts[0].(*model.If).Condition.(*model.InstanceOf)
	second := stmts[1].(*model.If).Condition.(*model.InstanceOf)
	assert.NotSame(t, first.Pattern, second.Pattern)
	require.Len(t, second.Bindings, 1)
	assert.Same(t, second.Pattern, second.Bindings[0])

	// 条件为真才匹配的变量在 if 之后不可见
	_, err := analyzeWith(t, core.Options{}, core.LevelRaw, map[string]string{
		"p/Q.java": `package p;
class Q {
	int m(Object o) {
		if (o instanceof String s) { return 1; }
		return s.length();
	}
}`,
	})
	assert.Error(t, err)
}

func TestStatements_SwitchPatternGroups(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/W.java": `package p;
class W {
	int k(Object o) {
		switch (o) {
			case String s:
				return s.length();
			case Integer s:
				return s.intValue();
			default:
				return 0;
		}
	}
	int v(int i) {
		switch (i) {
			case 1:
				int x = 1;
				return x;
			default:
				x = 2;
				return x;
		}
	}
}`,
	})

	assert.NotContains(t, diagnosticKinds(res), java.DiagDuplicateVariable)
	assert.True(t, hasRelation(res, model.Call, "p.W.k(java.lang.Object)", "java.lang.String.length()"))
	assert.True(t, hasRelation(res, model.Call, "p.W.k(java.lang.Object)", "java.lang.Integer.intValue()"))

	sw := bodyOf(t, res, "p.W", "k")[0].(*model.Switch)
	require.Len(t, sw.Cases, 3)
	require.NotNil(t, sw.Cases[0].Pattern)
	require.NotNil(t, sw.Cases[1].Pattern)
	assert.True(t, res.Env.Registry.IsString(sw.Cases[0].Pattern.Type))
	integer, _ := typeOf(t, res, "java.lang.Integer")
	assert.Equal(t, integer, sw.Cases[1].Pattern.Type.Type)
}
