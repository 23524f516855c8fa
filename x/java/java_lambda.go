package java

import (
	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ==========================================
// 1. Lambda
// ==========================================

// lambda 参数类型与返回类型都取自目标函数式接口的唯一抽象方法；目标不是函数式接口时失败
func (b *builder) lambda(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	target := b.unwild(hint)
	mid, capture, ok := b.reg.FunctionalMethod(target)
	if !ok {
		return nil, b.fail(errors.CodeUnsupportedConstruct, n, "lambda without functional interface target").
			WithContext(errors.CtxType, b.arena.TypeString(hint))
	}
	fmi, _ := b.arena.Method(mid).Inspection.Get()
	lf := f.child()
	l := &model.Lambda{Type: target, Method: mid}

	params := n.ChildByFieldName("parameters")
	var nodes []*sitter.Node
	switch {
	case params == nil:
	case params.Kind() == KindIdentifier:
		nodes = []*sitter.Node{params}
	default:
		for _, c := range namedChildren(params) {
			if c.Kind() != KindReceiverParameter {
				nodes = append(nodes, c)
			}
		}
	}
	if fmi == nil || len(nodes) != len(fmi.Params) {
		return nil, b.fail(errors.CodeUnsupportedConstruct, n, "lambda arity does not match functional interface")
	}
	for i, c := range nodes {
		pi, _ := b.arena.Param(fmi.Params[i]).Inspection.Get()
		var pt model.ParameterizedType
		if pi != nil {
			pt = b.unwild(pi.Type.Substitute(capture))
		}
		name, final := c, false
		if c.Kind() == KindFormalParameter {
			mods, _ := b.s.modifiers(lf.types, b.fc, c)
			final = mods.Has(model.ModFinal)
			name = c.ChildByFieldName("name")
			if typeNode := c.ChildByFieldName("type"); b.text(typeNode) != "var" {
				declared, err := b.parseType(lf, typeNode)
				if err != nil {
					return nil, err
				}
				pt = declared
			}
		}
		l.Params = append(l.Params, b.bindLocal(lf, name, pt, model.LocalLambdaParam, final))
	}

	saved := b.ret
	defer func() { b.ret = saved }()
	b.ret = b.unwild(fmi.ReturnType.Substitute(capture))

	body := n.ChildByFieldName("body")
	if body.Kind() == KindBlock {
		blk, err := b.block(lf, body)
		if err != nil {
			return nil, err
		}
		l.Block = blk
		return l, nil
	}
	var bodyHint model.ParameterizedType
	if !b.ret.IsVoid() {
		bodyHint = b.ret
	}
	e, err := b.expression(lf, body, bodyHint)
	if err != nil {
		return nil, err
	}
	l.Expr = e
	return l, nil
}

// ==========================================
// 2. 方法引用 (Method Reference)
// ==========================================

func (b *builder) methodReference(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	children := namedChildren(n)
	if len(children) == 0 {
		return nil, b.unsupported(n)
	}
	scopeNode := children[0]
	last := n.Child(n.ChildCount() - 1)
	isNew := last.Kind() == "new"
	name := b.text(last)

	target := b.unwild(hint)
	mr := &model.MethodReference{Type: target, Constructor: isNew}
	var fparams []model.ParameterizedType
	arity := core.IgnoreArgCount
	if fmid, capture, ok := b.reg.FunctionalMethod(target); ok {
		fmi, _ := b.arena.Method(fmid).Inspection.Get()
		for _, pid := range fmi.Params {
			pi, _ := b.arena.Param(pid).Inspection.Get()
			var pt model.ParameterizedType
			if pi != nil {
				pt = b.unwild(pi.Type.Substitute(capture))
			}
			fparams = append(fparams, pt)
		}
		arity = len(fparams)
	}

	var scope model.ParameterizedType
	isType := false
	switch scopeNode.Kind() {
	case KindSuper:
		scope = b.parentOf(b.owner)
		mr.Scope = &model.This{Type: scope, Super: true}
	case KindGenericType, KindArrayType, KindIntegralType, KindFloatingPointType, KindBooleanType, KindScopedTypeIdentifier, KindTypeIdentifier:
		pt, err := b.parseType(f, scopeNode)
		if err != nil {
			return nil, err
		}
		scope, isType = pt, true
	default:
		q, err := b.qualifier(f, scopeNode, model.Use)
		if err != nil {
			return nil, err
		}
		switch {
		case q.expr != nil:
			scope = q.expr.ReturnType()
			mr.Scope = q.expr
		case q.isType:
			scope, isType = q.typ, true
		default:
			return nil, b.fail(errors.CodeUnresolvedName, scopeNode, "cannot resolve method reference scope")
		}
	}
	if isType {
		mr.Scope = &model.TypeExpression{Type: scope}
	}

	if isNew {
		if scope.Arrays > 0 {
			return mr, nil
		}
		mid, ok := b.pickReference(f.types.ResolveConstructors(scope, arity), fparams, false)
		if !ok {
			return nil, b.noCandidate(last, ConstructorName, arity)
		}
		mr.Method = mid
		b.deps.add(model.Reference, model.MethodRef(mid), b.loc(n))
		return mr, nil
	}

	cands := f.types.ResolveCandidates(scope, name, core.IgnoreArgCount, false)
	mid, ok := b.pickReference(cands, fparams, isType)
	if !ok {
		return nil, b.noCandidate(last, name, arity)
	}
	mr.Method = mid
	b.deps.add(model.Reference, model.MethodRef(mid), b.loc(n))
	return mr, nil
}

// pickReference 按函数式方法的参数选择被引用方法。类型限定时实例方法的首个参数是接收者。
// 没有函数式目标时取第一个同名方法。
func (b *builder) pickReference(cands []core.Candidate, fparams []model.ParameterizedType, typeScope bool) (model.MethodID, bool) {
	if len(cands) == 0 {
		return model.NoMethod, false
	}
	if fparams == nil {
		return cands[0].Method, true
	}
	best, bestCost := model.NoMethod, -1
	for _, c := range cands {
		mi, ok := b.arena.Method(c.Method).Inspection.Get()
		if !ok {
			continue
		}
		args := fparams
		if typeScope && !mi.IsStatic() && !mi.IsConstructor() {
			if len(fparams) == 0 {
				continue
			}
			args = fparams[1:]
		}
		if len(mi.Params) != len(args) && !(mi.VarArgs && len(args) >= len(mi.Params)-1) {
			continue
		}
		cost, ok := 0, true
		for i, a := range args {
			d := b.reg.AssignableDistance(b.formalType(mi, c.TypeMap, i, mi.VarArgs && len(args) != len(mi.Params)), a)
			if d == core.NotAssignable {
				ok = false
				break
			}
			cost += d
		}
		if ok && (bestCost < 0 || cost < bestCost) {
			best, bestCost = c.Method, cost
		}
	}
	if best == model.NoMethod && len(cands) == 1 {
		return cands[0].Method, true
	}
	return best, best != model.NoMethod
}

// ==========================================
// 3. Switch
// ==========================================

func (b *builder) switchExpression(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	selector, err := b.expression(f, n.ChildByFieldName("condition"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	var yields []model.ParameterizedType
	saved := b.yields
	b.yields = &yields
	defer func() { b.yields = saved }()

	cases, err := b.switchCases(f, n.ChildByFieldName("body"), selector.ReturnType(), hint, true)
	if err != nil {
		return nil, err
	}
	types := yields
	for _, c := range cases {
		if c.Expr != nil {
			types = append(types, c.Expr.ReturnType())
		}
	}
	var pt model.ParameterizedType
	for i, t := range types {
		if i == 0 {
			pt = t
			continue
		}
		pt = b.commonType(pt, t, hint)
	}
	if pt.IsNoType() {
		pt = hint
	}
	return &model.SwitchExpression{Selector: selector, Cases: cases, Type: pt}, nil
}

func (b *builder) switchStatement(f frame, n *sitter.Node) (model.Statement, error) {
	selector, err := b.expression(f, n.ChildByFieldName("condition"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	cases, err := b.switchCases(f, n.ChildByFieldName("body"), selector.ReturnType(), model.ParameterizedType{}, false)
	if err != nil {
		return nil, err
	}
	return &model.Switch{StatementBase: model.At(b.loc(n)), Selector: selector, Cases: cases}, nil
}

// switchCases 旧式分组共用一个帧，带模式变量的分组在其下另开一帧；箭头分支各自一个新帧
func (b *builder) switchCases(f frame, body *sitter.Node, selector, hint model.ParameterizedType, isExpr bool) ([]*model.SwitchCase, error) {
	var out []*model.SwitchCase
	shared := f.child()
	for _, c := range namedChildren(body) {
		switch c.Kind() {
		case KindSwitchGroup:
			sc := &model.SwitchCase{}
			group := shared
			if hasPatternLabel(c) {
				group = shared.child()
			}
			for _, cc := range namedChildren(c) {
				if cc.Kind() == KindSwitchLabel {
					if err := b.switchLabel(group, cc, selector, sc); err != nil {
						return nil, err
					}
					continue
				}
				st, err := b.statement(group, cc)
				if err != nil {
					return nil, err
				}
				if st != nil {
					sc.Statements = append(sc.Statements, st)
				}
			}
			out = append(out, sc)

		case KindSwitchRule:
			arm := f.child()
			sc := &model.SwitchCase{Arrow: true}
			for _, cc := range namedChildren(c) {
				switch {
				case cc.Kind() == KindSwitchLabel:
					if err := b.switchLabel(arm, cc, selector, sc); err != nil {
						return nil, err
					}
				case isExpr && cc.Kind() == KindExpressionStatement:
					inner := namedChildren(cc)
					if len(inner) != 1 {
						return nil, b.unsupported(cc)
					}
					e, err := b.expression(arm, inner[0], hint)
					if err != nil {
						return nil, err
					}
					sc.Expr = e
				default:
					st, err := b.statement(arm, cc)
					if err != nil {
						return nil, err
					}
					if st != nil {
						sc.Statements = append(sc.Statements, st)
					}
				}
			}
			out = append(out, sc)

		case KindError:
			if _, err := b.statement(f, c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// switchLabel case 常量、枚举常量名或模式；default 可与 case null 同时出现
func (b *builder) switchLabel(f frame, n *sitter.Node, selector model.ParameterizedType, sc *model.SwitchCase) error {
	if hasToken(n, "default") {
		sc.Default = true
	}
	for _, c := range namedChildren(n) {
		switch c.Kind() {
		case KindPattern, KindTypePattern, KindRecordPattern:
			_, lv, err := b.pattern(f, c)
			if err != nil {
				return err
			}
			sc.Pattern = lv
		case KindGuard:
			inner := namedChildren(c)
			if len(inner) != 1 {
				return b.unsupported(c)
			}
			g, err := b.expression(f, inner[0], model.Boolean.PT())
			if err != nil {
				return err
			}
			sc.Guard = g
		case KindIdentifier:
			if fid, capture, ok := b.findField(selector, b.text(c)); ok {
				if fi, _ := b.arena.Field(fid).Inspection.Get(); fi != nil && fi.EnumConstant {
					b.deps.add(model.Use, model.FieldRef(fid), b.loc(c))
					sc.Labels = append(sc.Labels, &model.VariableExpression{Var: b.fieldReference(fid, capture, nil)})
					continue
				}
			}
			fallthrough
		default:
			e, err := b.expression(f, c, selector)
			if err != nil {
				return err
			}
			sc.Labels = append(sc.Labels, e)
		}
	}
	return nil
}

func hasPatternLabel(group *sitter.Node) bool {
	for _, cc := range namedChildren(group) {
		if cc.Kind() != KindSwitchLabel {
			continue
		}
		for _, l := range namedChildren(cc) {
			switch l.Kind() {
			case KindPattern, KindTypePattern, KindRecordPattern:
				return true
			}
		}
	}
	return false
}
