package java

import (
	"strconv"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// 展开可变参数的候选排在直接匹配之后
const varArgsPenalty = 100

// argument 实参；lambda 与方法引用要等选定候选后才能按形参类型构建
type argument struct {
	node *sitter.Node
	expr model.Expression
	poly bool
}

type choice struct {
	cand   core.Candidate
	mi     *model.MethodInspection
	expand bool
	cost   int
}

func (b *builder) arguments(f frame, list *sitter.Node) ([]*argument, error) {
	var out []*argument
	for _, c := range namedChildren(list) {
		inner := unwrapParens(c)
		if inner.Kind() == KindLambdaExpression || inner.Kind() == KindMethodReference {
			out = append(out, &argument{node: inner, poly: true})
			continue
		}
		e, err := b.expression(f, c, model.ParameterizedType{})
		if err != nil {
			return nil, err
		}
		out = append(out, &argument{node: c, expr: e})
	}
	return out, nil
}

// formalType 第 i 个实参对应的形参类型；展开可变参数时尾部实参对应数组元素类型
func (b *builder) formalType(mi *model.MethodInspection, capture map[model.TypeParamRef]model.ParameterizedType, i int, expand bool) model.ParameterizedType {
	n := len(mi.Params)
	if n == 0 {
		return model.ParameterizedType{}
	}
	idx := i
	if idx >= n {
		idx = n - 1
	}
	pi, ok := b.arena.Param(mi.Params[idx]).Inspection.Get()
	if !ok {
		return model.ParameterizedType{}
	}
	pt := pi.Type.Substitute(capture)
	if expand && mi.VarArgs && i >= n-1 {
		return pt.ElementType()
	}
	return pt
}

// choose 按实参到形参的赋值代价给候选打分，代价相同时继承距离近者优先，再相同取先声明者
func (b *builder) choose(cands []core.Candidate, args []*argument) (*choice, bool) {
	var best *choice
	consider := func(c *choice) {
		if best == nil || c.cost < best.cost || (c.cost == best.cost && c.cand.Distance < best.cand.Distance) {
			best = c
		}
	}
	for _, cand := range cands {
		mi, ok := b.arena.Method(cand.Method).Inspection.Get()
		if !ok {
			continue
		}
		for _, expand := range []bool{false, true} {
			if expand && !mi.VarArgs {
				break
			}
			if !expand && len(args) != len(mi.Params) {
				continue
			}
			if cost, ok := b.score(mi, cand, args, expand); ok {
				consider(&choice{cand: cand, mi: mi, expand: expand, cost: cost})
			}
		}
	}
	if best == nil && len(cands) == 1 {
		mi, ok := b.arena.Method(cands[0].Method).Inspection.Get()
		if ok {
			return &choice{cand: cands[0], mi: mi, expand: mi.VarArgs && len(args) != len(mi.Params)}, true
		}
	}
	return best, best != nil
}

func (b *builder) score(mi *model.MethodInspection, cand core.Candidate, args []*argument, expand bool) (int, bool) {
	cost := 0
	if expand {
		cost += varArgsPenalty
	}
	for i, a := range args {
		target := b.formalType(mi, cand.TypeMap, i, expand)
		if a.poly {
			if target.Param != nil {
				continue
			}
			mid, _, ok := b.reg.FunctionalMethod(b.unwild(target))
			if !ok {
				return 0, false
			}
			if a.node.Kind() == KindLambdaExpression && lambdaArity(a.node) != b.paramCount(mid) {
				return 0, false
			}
			continue
		}
		d := b.reg.AssignableDistance(target, a.expr.ReturnType())
		if d == core.NotAssignable {
			return 0, false
		}
		cost += d
	}
	return cost, true
}

func (b *builder) paramCount(mid model.MethodID) int {
	if mi, ok := b.arena.Method(mid).Inspection.Get(); ok {
		return len(mi.Params)
	}
	return -1
}

func lambdaArity(n *sitter.Node) int {
	params := n.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	if params.Kind() == KindIdentifier {
		return 1
	}
	count := 0
	for _, c := range namedChildren(params) {
		if c.Kind() != KindReceiverParameter {
			count++
		}
	}
	return count
}

// complete 推断方法类型参数，再按推断后的形参构建 lambda 与方法引用实参。
// 返回全部实参与最终的类型映射。
func (b *builder) complete(f frame, ch *choice, args []*argument, free func(model.TypeParamRef) bool,
	hint, declared model.ParameterizedType) ([]model.Expression, map[model.TypeParamRef]model.ParameterizedType, error) {
	inferred := make(map[model.TypeParamRef]model.ParameterizedType)
	for i, a := range args {
		if !a.poly {
			b.unify(b.formalType(ch.mi, ch.cand.TypeMap, i, ch.expand), a.expr.ReturnType(), free, inferred)
		}
	}
	for i, a := range args {
		if !a.poly {
			continue
		}
		target := b.formalType(ch.mi, mergeTypeMaps(ch.cand.TypeMap, inferred), i, ch.expand)
		e, err := b.expression(f, a.node, target)
		if err != nil {
			return nil, nil, err
		}
		a.expr = e
		if result, ok := b.polyResult(e); ok {
			if mid, capture, ok := b.reg.FunctionalMethod(b.unwild(target)); ok {
				if fmi, ok := b.arena.Method(mid).Inspection.Get(); ok {
					b.unify(b.unwild(fmi.ReturnType.Substitute(capture)), result, free, inferred)
				}
			}
		}
	}
	if !hint.IsNoType() {
		b.unify(declared, hint, free, inferred)
	}
	out := make([]model.Expression, len(args))
	for i, a := range args {
		out[i] = a.expr
	}
	return out, mergeTypeMaps(ch.cand.TypeMap, inferred), nil
}

// polyResult lambda 体或被引用方法的结果类型，用于反推外层方法的类型参数
func (b *builder) polyResult(e model.Expression) (model.ParameterizedType, bool) {
	switch p := e.(type) {
	case *model.Lambda:
		if p.Expr != nil {
			return p.Expr.ReturnType(), true
		}
		return returnedType(p.Block)
	case *model.MethodReference:
		m := b.arena.Method(p.Method)
		if m == nil {
			return model.ParameterizedType{}, false
		}
		if m.Constructor {
			return model.Of(m.Owner), true
		}
		if mi, ok := m.Inspection.Get(); ok && !mi.ReturnType.IsVoid() {
			return mi.ReturnType, true
		}
	}
	return model.ParameterizedType{}, false
}

func (b *builder) noCandidate(n *sitter.Node, name string, argc int) error {
	return b.fail(errors.CodeUnresolvedName, n, "cannot resolve method").
		WithContext(errors.CtxMethod, name+"/"+strconv.Itoa(argc)).
		WithContext(errors.CtxType, b.reg.Type(b.owner).FQN)
}

// ==========================================
// 1. 方法调用 (Method Invocation)
// ==========================================

func (b *builder) methodInvocation(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	nameNode := n.ChildByFieldName("name")
	name := b.text(nameNode)
	args, err := b.arguments(f, n.ChildByFieldName("arguments"))
	if err != nil {
		return nil, err
	}

	call := &model.MethodCall{}
	var cands []core.Candidate
	obj := n.ChildByFieldName("object")
	switch {
	case obj == nil:
		cands = f.types.ResolveUnqualified(b.owner, name, len(args), b.static)
	case unwrapParens(obj).Kind() == KindSuper:
		parent := b.parentOf(b.owner)
		call.Object = &model.This{Type: parent, Super: true}
		cands = f.types.ResolveCandidates(parent, name, len(args), false)
	default:
		q, err := b.qualifier(f, obj, model.Use)
		if err != nil {
			return nil, err
		}
		switch {
		case q.expr != nil:
			call.Object = q.expr
			cands = f.types.ResolveCandidates(q.expr.ReturnType(), name, len(args), false)
		case q.isType:
			call.Object = &model.TypeExpression{Type: q.typ}
			cands = f.types.ResolveCandidates(q.typ, name, len(args), true)
		default:
			return nil, b.fail(errors.CodeUnresolvedName, obj, "cannot resolve qualifier")
		}
	}

	ch, ok := b.choose(cands, args)
	if !ok {
		return nil, b.noCandidate(nameNode, name, len(args))
	}
	exprs, typeMap, err := b.complete(f, ch, args, methodParams(ch.cand.Method), hint, ch.mi.ReturnType)
	if err != nil {
		return nil, err
	}
	call.Method = ch.cand.Method
	call.Args = exprs
	call.Static = ch.mi.IsStatic()
	call.Type = ch.mi.ReturnType.Substitute(typeMap)
	b.deps.add(model.Call, model.MethodRef(ch.cand.Method), b.loc(nameNode))
	return call, nil
}

// ==========================================
// 2. 对象创建 (Object Creation)
// ==========================================

func (b *builder) objectCreation(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	if outer := n.ChildByFieldName("object"); outer != nil {
		if _, err := b.expression(f, outer, model.ParameterizedType{}); err != nil {
			return nil, err
		}
	}
	typeNode := n.ChildByFieldName("type")
	pt, err := b.parseType(f, typeNode)
	if err != nil {
		return nil, err
	}
	diamond := typeNode.Kind() == KindGenericType && len(pt.Args) == 0
	if diamond {
		pt = b.diamond(pt, hint)
	}
	args, err := b.arguments(f, n.ChildByFieldName("arguments"))
	if err != nil {
		return nil, err
	}
	cc := &model.ConstructorCall{Type: pt}

	ti, err := b.reg.TypeInspection(pt.Type)
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxLine, b.loc(n).StartLine)
	}
	body := findChildOfKind(n, KindClassBody)
	if ti.IsInterface() {
		if body == nil {
			return nil, b.fail(errors.CodeUnsupportedConstruct, n, "cannot instantiate interface")
		}
		for _, a := range args {
			if a.poly {
				return nil, b.unsupported(a.node)
			}
			cc.Args = append(cc.Args, a.expr)
		}
	} else {
		cands := f.types.ResolveConstructors(pt, len(args))
		ch, ok := b.choose(cands, args)
		if !ok {
			if len(cands) > 0 || b.reg.IsSource(pt.Type) {
				return nil, b.noCandidate(typeNode, ConstructorName, len(args))
			}
			// 字节码描述里没有构造器的外部类型
			for _, a := range args {
				if a.poly {
					return nil, b.unsupported(a.node)
				}
				cc.Args = append(cc.Args, a.expr)
			}
		} else {
			free := methodParams(ch.cand.Method)
			if diamond {
				own := typeParams(pt.Type)
				free = func(ref model.TypeParamRef) bool { return own(ref) || ref.Method == ch.cand.Method }
			}
			exprs, typeMap, err := b.complete(f, ch, args, free, model.ParameterizedType{}, model.ParameterizedType{})
			if err != nil {
				return nil, err
			}
			cc.Args, cc.Constructor = exprs, ch.cand.Method
			if diamond {
				cc.Type = b.diamondFromArgs(pt, typeMap)
			}
			b.deps.add(model.Create, model.MethodRef(ch.cand.Method), b.loc(typeNode))
		}
	}

	if body != nil {
		id, sorted, err := b.localType(f, n, &cc.Type)
		if err != nil {
			return nil, err
		}
		cc.Anonymous, cc.Sorted = id, sorted
	}
	return cc, nil
}

// diamond 用目标类型补全 <> 的类型实参
func (b *builder) diamond(pt, hint model.ParameterizedType) model.ParameterizedType {
	hint = b.unwild(hint)
	if hint.IsNoType() || len(hint.Args) == 0 {
		return pt
	}
	if hint.Type == pt.Type {
		return model.Of(pt.Type, hint.Args...)
	}
	ti, err := b.reg.TypeInspection(pt.Type)
	if err != nil || len(ti.TypeParameters) == 0 {
		return pt
	}
	// 以自身类型参数为实参沿继承链找到目标类型，再把目标实参对回来
	self := make([]model.ParameterizedType, len(ti.TypeParameters))
	for i, tp := range ti.TypeParameters {
		self[i] = model.OfParam(tp.Ref)
	}
	sup, ok := b.reg.FindSupertype(model.Of(pt.Type, self...), hint.Type)
	if !ok {
		return pt
	}
	inferred := make(map[model.TypeParamRef]model.ParameterizedType)
	b.unifyArgs(sup, hint, typeParams(pt.Type), inferred)
	return b.diamondFromArgs(pt, inferred)
}

func (b *builder) unifyArgs(formal, actual model.ParameterizedType, free func(model.TypeParamRef) bool, out map[model.TypeParamRef]model.ParameterizedType) {
	if len(formal.Args) != len(actual.Args) {
		return
	}
	for i := range formal.Args {
		b.unify(formal.Args[i], b.unwild(actual.Args[i]), free, out)
	}
}

func (b *builder) diamondFromArgs(pt model.ParameterizedType, typeMap map[model.TypeParamRef]model.ParameterizedType) model.ParameterizedType {
	if len(pt.Args) > 0 {
		return pt
	}
	ti, err := b.reg.TypeInspection(pt.Type)
	if err != nil || len(ti.TypeParameters) == 0 {
		return pt
	}
	args := make([]model.ParameterizedType, len(ti.TypeParameters))
	for i, tp := range ti.TypeParameters {
		v := model.OfParam(tp.Ref).Substitute(typeMap)
		if v.Param != nil && v.Param.Owner == pt.Type && v.Param.Method == model.NoMethod {
			return pt
		}
		args[i] = v
	}
	return model.Of(pt.Type, args...)
}

// ==========================================
// 3. 显式构造器调用 (this(...) / super(...))
// ==========================================

func (b *builder) explicitConstructorInvocation(f frame, n *sitter.Node) (model.Statement, error) {
	ctor := n.ChildByFieldName("constructor")
	if obj := n.ChildByFieldName("object"); obj != nil {
		if _, err := b.expression(f, obj, model.ParameterizedType{}); err != nil {
			return nil, err
		}
	}
	args, err := b.arguments(f, n.ChildByFieldName("arguments"))
	if err != nil {
		return nil, err
	}
	super := ctor != nil && ctor.Kind() == KindSuper
	target := model.Of(b.owner)
	if super {
		target = b.parentOf(b.owner)
	}
	stmt := &model.ExplicitConstructorInvocation{StatementBase: model.At(b.loc(n)), Super: super}
	cands := f.types.ResolveConstructors(target, len(args))
	ch, ok := b.choose(cands, args)
	if !ok {
		if super && len(cands) == 0 && !b.reg.IsSource(target.Type) {
			for _, a := range args {
				if a.poly {
					return nil, b.unsupported(a.node)
				}
				stmt.Args = append(stmt.Args, a.expr)
			}
			return stmt, nil
		}
		return nil, b.noCandidate(n, ConstructorName, len(args))
	}
	exprs, _, err := b.complete(f, ch, args, methodParams(ch.cand.Method), model.ParameterizedType{}, model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	stmt.Constructor, stmt.Args = ch.cand.Method, exprs
	b.deps.add(model.Call, model.MethodRef(ch.cand.Method), b.loc(n))
	return stmt, nil
}
