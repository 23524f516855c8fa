package java

import (
	"slices"
	"strings"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// exprHandler hint 为目标类型（赋值左侧、形参、返回类型），没有时为 NoType
type exprHandler func(b *builder, f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error)

var expressionHandlers map[string]exprHandler

func init() {
	expressionHandlers = map[string]exprHandler{
		KindDecimalInteger: (*builder).literal,
		KindHexInteger:     (*builder).literal,
		KindOctalInteger:   (*builder).literal,
		KindBinaryInteger:  (*builder).literal,
		KindDecimalFloat:   (*builder).literal,
		KindHexFloat:       (*builder).literal,
		KindTrue:           (*builder).literal,
		KindFalse:          (*builder).literal,
		KindCharacter:      (*builder).literal,
		KindString:         (*builder).literal,
		KindTextBlock:      (*builder).literal,
		KindNull:           (*builder).literal,

		KindIdentifier:           (*builder).identifier,
		KindFieldAccess:          (*builder).fieldAccess,
		KindThis:                 (*builder).this,
		KindSuper:                (*builder).super,
		KindArrayAccess:          (*builder).arrayAccess,
		KindAssignmentExpression: (*builder).assignment,
		KindUpdateExpression:     (*builder).update,
		KindBinaryExpression:     (*builder).binary,
		KindUnaryExpression:      (*builder).unary,
		KindCastExpression:       (*builder).cast,
		KindInstanceofExpression: (*builder).instanceOf,
		KindTernaryExpression:    (*builder).conditional,
		KindClassLiteral:         (*builder).classLiteral,
		KindArrayCreation:        (*builder).arrayCreation,
		KindArrayInitializer:     (*builder).arrayInitializer,
		KindMethodInvocation:     (*builder).methodInvocation,
		KindObjectCreation:       (*builder).objectCreation,
		KindLambdaExpression:     (*builder).lambda,
		KindMethodReference:      (*builder).methodReference,
		KindSwitchExpression:     (*builder).switchExpression,
	}
}

// ==========================================
// 1. 表达式分派 (Expression Dispatch)
// ==========================================

func (b *builder) expression(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	n = unwrapParens(n)
	if n == nil {
		return nil, errors.New(errors.CodeInternal, "missing expression node").WithContext(errors.CtxPath, b.fc.FilePath)
	}
	if n.Kind() == KindError {
		return nil, b.unsupported(n)
	}
	h, ok := expressionHandlers[n.Kind()]
	if !ok {
		return nil, b.unsupported(n)
	}
	return h(b, f, n, hint)
}

func (b *builder) expressions(f frame, nodes []*sitter.Node, hint model.ParameterizedType) ([]model.Expression, error) {
	out := make([]model.Expression, 0, len(nodes))
	for _, n := range nodes {
		e, err := b.expression(f, n, hint)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ==========================================
// 2. 字面量与名称 (Literals & Names)
// ==========================================

func (b *builder) literal(_ frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	text := b.text(n)
	lit := &model.Literal{Value: text}
	switch n.Kind() {
	case KindDecimalInteger, KindHexInteger, KindOctalInteger, KindBinaryInteger:
		if strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L") {
			lit.Kind, lit.Type = model.LitLong, model.Long.PT()
		} else {
			lit.Kind, lit.Type = model.LitInt, model.Int.PT()
		}
	case KindDecimalFloat, KindHexFloat:
		if strings.HasSuffix(text, "f") || strings.HasSuffix(text, "F") {
			lit.Kind, lit.Type = model.LitFloat, model.Float.PT()
		} else {
			lit.Kind, lit.Type = model.LitDouble, model.Double.PT()
		}
	case KindTrue, KindFalse:
		lit.Kind, lit.Type = model.LitBoolean, model.Boolean.PT()
	case KindCharacter:
		lit.Kind, lit.Type = model.LitChar, model.Char.PT()
	case KindString, KindTextBlock:
		lit.Kind, lit.Type = model.LitString, b.reg.StringType()
	default:
		lit.Kind, lit.Type = model.LitNull, model.NullType
	}
	return lit, nil
}

func (b *builder) identifier(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	return b.variable(f, n, model.Use)
}

// variable 简单名读写：局部变量、参数、本类字段，其次是继承字段与静态导入
func (b *builder) variable(f frame, n *sitter.Node, kind model.DependencyType) (model.Expression, error) {
	name := b.text(n)
	if v, ok := f.vars.Resolve(name); ok {
		if fr, isField := v.(*model.FieldReference); isField {
			b.deps.add(kind, model.FieldRef(fr.Field), b.loc(n))
		}
		return &model.VariableExpression{Var: v}, nil
	}
	if fr, ok := b.unqualifiedField(f, name); ok {
		b.deps.add(kind, model.FieldRef(fr.Field), b.loc(n))
		return &model.VariableExpression{Var: fr}, nil
	}
	return nil, b.fail(errors.CodeUnresolvedName, n, "cannot resolve variable")
}

// qualifier 点号左侧：表达式、类型或包名前缀
type qualifier struct {
	expr   model.Expression
	typ    model.ParameterizedType
	isType bool
	pkg    string
}

func (b *builder) qualifier(f frame, n *sitter.Node, kind model.DependencyType) (qualifier, error) {
	n = unwrapParens(n)
	switch n.Kind() {
	case KindIdentifier:
		name := b.text(n)
		if _, ok := f.vars.Resolve(name); ok {
			e, err := b.variable(f, n, kind)
			return qualifier{expr: e}, err
		}
		if fr, ok := b.unqualifiedField(f, name); ok {
			b.deps.add(kind, model.FieldRef(fr.Field), b.loc(n))
			return qualifier{expr: &model.VariableExpression{Var: fr}}, nil
		}
		if nt, ok := f.types.Lookup(name); ok {
			return qualifier{typ: nt.PT(), isType: true}, nil
		}
		return qualifier{pkg: name}, nil

	case KindFieldAccess:
		obj, field := n.ChildByFieldName("object"), n.ChildByFieldName("field")
		if field.Kind() == KindThis || field.Kind() == KindSuper || obj.Kind() == KindSuper {
			e, err := b.fieldAccessExpr(f, n, kind)
			return qualifier{expr: e}, err
		}
		q, err := b.qualifier(f, obj, model.Use)
		if err != nil {
			return q, err
		}
		name := b.text(field)
		switch {
		case q.pkg != "":
			fqn := q.pkg + "." + name
			if nt, ok := f.types.Lookup(fqn); ok && nt.Param == nil {
				return qualifier{typ: nt.PT(), isType: true}, nil
			}
			return qualifier{pkg: fqn}, nil
		case q.isType:
			if fid, capture, ok := b.findField(q.typ, name); ok {
				b.deps.add(kind, model.FieldRef(fid), b.loc(field))
				ref := b.fieldReference(fid, capture, &model.TypeExpression{Type: q.typ})
				return qualifier{expr: &model.VariableExpression{Var: ref}}, nil
			}
			if id, ok := b.reg.MemberType(q.typ.Type, name); ok {
				return qualifier{typ: model.Of(id), isType: true}, nil
			}
			return qualifier{}, b.fail(errors.CodeUnresolvedName, n, "cannot resolve static member")
		}
		e, err := b.selectField(q.expr, field, kind)
		return qualifier{expr: e}, err
	}
	e, err := b.expression(f, n, model.ParameterizedType{})
	return qualifier{expr: e}, err
}

func (b *builder) fieldAccess(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	return b.fieldAccessExpr(f, n, model.Use)
}

func (b *builder) fieldAccessExpr(f frame, n *sitter.Node, kind model.DependencyType) (model.Expression, error) {
	obj, field := n.ChildByFieldName("object"), n.ChildByFieldName("field")
	switch {
	case field.Kind() == KindThis || field.Kind() == KindSuper:
		// Outer.this / Outer.super
		outer, err := b.parseType(f, obj)
		if err != nil {
			return nil, err
		}
		if field.Kind() == KindSuper {
			return &model.This{Type: b.parentOf(outer.Type), Super: true}, nil
		}
		return &model.This{Type: outer}, nil
	case obj.Kind() == KindSuper:
		return b.selectField(&model.This{Type: b.parentOf(b.owner), Super: true}, field, kind)
	}
	q, err := b.qualifier(f, n, kind)
	if err != nil {
		return nil, err
	}
	switch {
	case q.expr != nil:
		return q.expr, nil
	case q.isType:
		return &model.TypeExpression{Type: q.typ}, nil
	}
	return nil, b.fail(errors.CodeUnresolvedName, n, "cannot resolve name")
}

// selectField obj.name；数组的 length 单独建模
func (b *builder) selectField(obj model.Expression, field *sitter.Node, kind model.DependencyType) (model.Expression, error) {
	name := b.text(field)
	ot := obj.ReturnType()
	if ot.Arrays > 0 && name == "length" {
		return &model.ArrayLength{Array: obj}, nil
	}
	fid, capture, ok := b.findField(ot, name)
	if !ok {
		return nil, b.fail(errors.CodeUnresolvedName, field, "cannot resolve field").
			WithContext(errors.CtxType, b.arena.TypeString(ot))
	}
	b.deps.add(kind, model.FieldRef(fid), b.loc(field))
	return &model.VariableExpression{Var: b.fieldReference(fid, capture, obj)}, nil
}

func (b *builder) parentOf(id model.TypeID) model.ParameterizedType {
	if ti, ok := b.reg.TryTypeInspection(id); ok && ti.Parent != nil {
		return *ti.Parent
	}
	return model.Of(b.reg.Object())
}

func (b *builder) this(_ frame, _ *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	return &model.This{Type: model.Of(b.owner)}, nil
}

func (b *builder) super(_ frame, _ *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	return &model.This{Type: b.parentOf(b.owner), Super: true}, nil
}

// target 赋值左侧：字段写入记为 ASSIGN
func (b *builder) target(f frame, n *sitter.Node) (model.Expression, error) {
	n = unwrapParens(n)
	switch n.Kind() {
	case KindIdentifier:
		return b.variable(f, n, model.Assign)
	case KindFieldAccess:
		return b.fieldAccessExpr(f, n, model.Assign)
	case KindArrayAccess:
		return b.arrayAccess(f, n, model.ParameterizedType{})
	}
	return nil, b.unsupported(n)
}

func (b *builder) arrayAccess(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	arr, err := b.expression(f, n.ChildByFieldName("array"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	idx, err := b.expression(f, n.ChildByFieldName("index"), model.Int.PT())
	if err != nil {
		return nil, err
	}
	return &model.ArrayAccess{Array: arr, Index: idx, Type: arr.ReturnType().ElementType()}, nil
}

// ==========================================
// 3. 运算符 (Operators)
// ==========================================

func (b *builder) assignment(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	target, err := b.target(f, n.ChildByFieldName("left"))
	if err != nil {
		return nil, err
	}
	tt := target.ReturnType()
	value, err := b.expression(f, n.ChildByFieldName("right"), tt)
	if err != nil {
		return nil, err
	}
	a := &model.Assignment{Target: target, Value: value}
	if op := b.text(n.ChildByFieldName("operator")); op != "=" {
		sym := strings.TrimSuffix(op, "=")
		if sym == "+" && b.reg.IsString(tt) {
			a.Operator = model.StringConcatOperator
			return a, nil
		}
		oper, _, err := b.binaryOperator(n, sym, tt, value.ReturnType())
		if err != nil {
			return nil, err
		}
		a.Operator = oper
	}
	return a, nil
}

func (b *builder) update(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	children := namedChildren(n)
	if len(children) != 1 {
		return nil, b.unsupported(n)
	}
	target, err := b.target(f, children[0])
	if err != nil {
		return nil, err
	}
	first := n.Child(0)
	pre := first != nil && !first.IsNamed()
	sym := b.text(first)
	if !pre {
		sym = b.text(n.Child(n.ChildCount() - 1))
	}
	var incDec model.IncDec
	switch {
	case sym == "++" && pre:
		incDec = model.PreIncrement
	case sym == "--" && pre:
		incDec = model.PreDecrement
	case sym == "++":
		incDec = model.PostIncrement
	case sym == "--":
		incDec = model.PostDecrement
	default:
		return nil, b.unsupported(n)
	}

	k := model.UnaryPromotion(b.kindOf(target.ReturnType()))
	oper, ok := model.BinaryOperator(sym[:1], k)
	if !ok {
		return nil, b.mismatch(n, sym, target.ReturnType())
	}
	one := &model.Literal{Kind: model.LitInt, Value: "1", Type: model.Int.PT()}
	return &model.Assignment{Target: target, Value: one, Operator: oper, IncDec: incDec}, nil
}

func (b *builder) binary(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	lhs, err := b.expression(f, n.ChildByFieldName("left"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	rhs, err := b.expression(f, n.ChildByFieldName("right"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	sym := b.text(n.ChildByFieldName("operator"))
	oper, pt, err := b.binaryOperator(n, sym, lhs.ReturnType(), rhs.ReturnType())
	if err != nil {
		return nil, err
	}
	return &model.BinaryOperation{Operator: oper, Lhs: lhs, Rhs: rhs, Type: pt}, nil
}

// binaryOperator 按操作数类型选择内置运算符：字符串拼接、引用相等，其余先拆箱再做数值提升
func (b *builder) binaryOperator(n *sitter.Node, sym string, lt, rt model.ParameterizedType) (*model.Operator, model.ParameterizedType, error) {
	if sym == "+" && (b.reg.IsString(lt) || b.reg.IsString(rt)) {
		return model.StringConcatOperator, b.reg.StringType(), nil
	}
	lk, rk := b.kindOf(lt), b.kindOf(rt)
	if sym == "==" || sym == "!=" {
		if (!lt.IsPrimitive() && !rt.IsPrimitive()) || lk == model.PrimitiveNone || rk == model.PrimitiveNone {
			if sym == "==" {
				return model.ReferenceEquals, model.Boolean.PT(), nil
			}
			return model.ReferenceNotEquals, model.Boolean.PT(), nil
		}
	}
	var k model.PrimitiveKind
	switch {
	case lk == model.Boolean && rk == model.Boolean:
		k = model.Boolean
	case sym == "<<" || sym == ">>" || sym == ">>>":
		if rk.IsIntegral() {
			k = model.UnaryPromotion(lk)
		}
	default:
		k = model.WidestNumeric(lk, rk)
	}
	oper, ok := model.BinaryOperator(sym, k)
	if k == model.PrimitiveNone || !ok {
		return nil, model.ParameterizedType{}, b.mismatch(n, sym, lt, rt)
	}
	return oper, oper.Result.PT(), nil
}

func (b *builder) mismatch(n *sitter.Node, sym string, types ...model.ParameterizedType) error {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = b.arena.TypeString(t)
	}
	return b.fail(errors.CodeOperatorMismatch, n, "no operator for operand types").
		WithContext(errors.CtxName, sym).
		WithContext(errors.CtxType, strings.Join(names, ","))
}

func (b *builder) unary(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	operand, err := b.expression(f, n.ChildByFieldName("operand"), hint)
	if err != nil {
		return nil, err
	}
	sym := b.text(n.ChildByFieldName("operator"))
	k := b.kindOf(operand.ReturnType())
	if sym != "!" {
		k = model.UnaryPromotion(k)
	}
	oper, ok := model.UnaryOperator(sym, k)
	if k == model.PrimitiveNone || !ok {
		return nil, b.mismatch(n, sym, operand.ReturnType())
	}
	return &model.UnaryOperation{Operator: oper, Operand: operand}, nil
}

// ==========================================
// 4. 类型相关表达式 (Type Expressions)
// ==========================================

func (b *builder) cast(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	types := childrenByField(n, "type")
	if len(types) == 0 {
		return nil, b.unsupported(n)
	}
	pt, err := b.parseType(f, types[0])
	if err != nil {
		return nil, err
	}
	value, err := b.expression(f, n.ChildByFieldName("value"), pt)
	if err != nil {
		return nil, err
	}
	if !pt.IsPrimitive() && pt.Type != model.NoType {
		b.deps.add(model.RelCast, model.TypeRef(pt.Type), b.loc(n))
	}
	return &model.Cast{Type: pt, Expr: value}, nil
}

// instanceOf 模式变量立即绑定到当前帧，同一条件中后续的操作数可见；
// 条件之外的可见范围由所在语句决定，见 ifStatement
func (b *builder) instanceOf(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	expr, err := b.expression(f, n.ChildByFieldName("left"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	inst := &model.InstanceOf{Expr: expr, Boolean: model.Boolean.PT()}
	before := len(f.vars.Locals())
	defer func() { inst.Bindings = slices.Clone(f.vars.Locals()[before:]) }()
	if r := n.ChildByFieldName("right"); r != nil {
		pt, err := b.parseType(f, r)
		if err != nil {
			return nil, err
		}
		inst.Type = pt
		if name := n.ChildByFieldName("name"); name != nil {
			inst.Pattern = b.bindLocal(f, name, pt, model.LocalPattern, false)
		}
		return inst, nil
	}
	if p := n.ChildByFieldName("pattern"); p != nil {
		pt, lv, err := b.pattern(f, p)
		if err != nil {
			return nil, err
		}
		inst.Type, inst.Pattern = pt, lv
		return inst, nil
	}
	return nil, b.unsupported(n)
}

// pattern type_pattern 绑定一个变量；record_pattern 递归绑定各组件，var 组件取记录字段类型
func (b *builder) pattern(f frame, p *sitter.Node) (model.ParameterizedType, *model.LocalVariable, error) {
	if p.Kind() == KindPattern {
		children := namedChildren(p)
		if len(children) != 1 {
			return model.ParameterizedType{}, nil, b.unsupported(p)
		}
		p = children[0]
	}
	switch p.Kind() {
	case KindTypePattern:
		var typeNode, name *sitter.Node
		for _, c := range namedChildren(p) {
			switch {
			case c.Kind() == KindModifiers:
			case typeNode == nil:
				typeNode = c
			default:
				name = c
			}
		}
		if typeNode == nil {
			return model.ParameterizedType{}, nil, b.unsupported(p)
		}
		pt, err := b.parseType(f, typeNode)
		if err != nil {
			return pt, nil, err
		}
		if name == nil {
			return pt, nil, nil
		}
		return pt, b.bindLocal(f, name, pt, model.LocalPattern, false), nil

	case KindRecordPattern:
		children := namedChildren(p)
		if len(children) == 0 {
			return model.ParameterizedType{}, nil, b.unsupported(p)
		}
		pt, err := b.parseType(f, children[0])
		if err != nil {
			return pt, nil, err
		}
		var components []model.FieldID
		if ti, err := b.reg.TypeInspection(pt.Type); err == nil {
			for _, fid := range ti.Fields {
				if fi, ok := b.arena.Field(fid).Inspection.Get(); ok && fi.RecordComponent {
					components = append(components, fid)
				}
			}
		}
		body := findChildOfKind(p, "record_pattern_body")
		for i, c := range namedChildren(body) {
			if c.Kind() == "record_pattern_component" {
				if err := b.recordComponentPattern(f, c, components, i); err != nil {
					return pt, nil, err
				}
				continue
			}
			if _, _, err := b.pattern(f, c); err != nil {
				return pt, nil, err
			}
		}
		return pt, nil, nil
	}
	return model.ParameterizedType{}, nil, b.unsupported(p)
}

func (b *builder) recordComponentPattern(f frame, c *sitter.Node, components []model.FieldID, i int) error {
	children := namedChildren(c)
	if len(children) == 1 {
		_, _, err := b.pattern(f, children[0])
		return err
	}
	if len(children) != 2 {
		return b.unsupported(c)
	}
	var pt model.ParameterizedType
	if b.text(children[0]) == "var" {
		if i < len(components) {
			fi, _ := b.arena.Field(components[i]).Inspection.Get()
			if fi != nil {
				pt = fi.Type
			}
		}
	} else {
		parsed, err := b.parseType(f, children[0])
		if err != nil {
			return err
		}
		pt = parsed
	}
	b.bindLocal(f, children[1], pt, model.LocalPattern, false)
	return nil
}

// bindLocal 同一帧内重名的变量保留先绑定者并告警
func (b *builder) bindLocal(f frame, name *sitter.Node, pt model.ParameterizedType, kind model.LocalKind, final bool) *model.LocalVariable {
	lv := &model.LocalVariable{Name: b.text(name), Type: pt, Kind: kind, Final: final, Owner: b.method}
	if !f.vars.BindLocal(lv) {
		b.s.env.Warn(DiagDuplicateVariable, b.loc(name), lv.Name, "variable already declared in this scope")
	}
	return lv
}

func (b *builder) conditional(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	cond, err := b.expression(f, n.ChildByFieldName("condition"), model.Boolean.PT())
	if err != nil {
		return nil, err
	}
	then, err := b.expression(f, n.ChildByFieldName("consequence"), hint)
	if err != nil {
		return nil, err
	}
	els, err := b.expression(f, n.ChildByFieldName("alternative"), hint)
	if err != nil {
		return nil, err
	}
	return &model.Conditional{Condition: cond, Then: then, Else: els, Type: b.commonType(then.ReturnType(), els.ReturnType(), hint)}, nil
}

// commonType 条件表达式与 switch 表达式各分支的结果类型
func (b *builder) commonType(t, e, hint model.ParameterizedType) model.ParameterizedType {
	switch {
	case t.Equal(e):
		return t
	case t.Null:
		return b.boxed(e)
	case e.Null:
		return b.boxed(t)
	}
	if tk, ek := b.kindOf(t), b.kindOf(e); tk.IsNumeric() && ek.IsNumeric() && (t.IsPrimitive() || e.IsPrimitive()) {
		return model.WidestNumeric(tk, ek).PT()
	}
	if !hint.IsNoType() {
		return hint
	}
	if b.reg.AssignableDistance(t, e) >= 0 {
		return t
	}
	if b.reg.AssignableDistance(e, t) >= 0 {
		return e
	}
	return model.Of(b.reg.Object())
}

func (b *builder) classLiteral(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	children := namedChildren(n)
	if len(children) == 0 {
		return nil, b.unsupported(n)
	}
	var target model.ParameterizedType
	if children[0].Kind() == KindVoidType {
		target = model.Void.PT()
	} else {
		pt, err := b.parseType(f, children[0])
		if err != nil {
			return nil, err
		}
		target = pt
	}
	arg := b.boxed(target)
	if target.IsVoid() {
		arg = model.Of(b.reg.GetOrCreate(model.Void.BoxedName()))
	}
	return &model.ClassLiteral{Target: target, Type: model.Of(b.reg.GetOrCreate(core.ClassFQN), arg)}, nil
}

// ==========================================
// 5. 数组 (Arrays)
// ==========================================

func (b *builder) arrayCreation(f frame, n *sitter.Node, _ model.ParameterizedType) (model.Expression, error) {
	elem, err := b.parseType(f, n.ChildByFieldName("type"))
	if err != nil {
		return nil, err
	}
	ac := &model.ArrayCreation{}
	count := 0
	for _, d := range childrenByField(n, "dimensions") {
		if d.Kind() != KindDimensionsExpr {
			count += dimensionCount(d)
			continue
		}
		inner := namedChildren(d)
		if len(inner) == 0 {
			return nil, b.unsupported(d)
		}
		e, err := b.expression(f, inner[0], model.Int.PT())
		if err != nil {
			return nil, err
		}
		ac.Dimensions = append(ac.Dimensions, e)
		count++
	}
	ac.Type = elem.WithArrays(elem.Arrays + count)
	if v := n.ChildByFieldName("value"); v != nil {
		init, err := b.arrayInitializer(f, v, ac.Type)
		if err != nil {
			return nil, err
		}
		ac.Initializer = init.(*model.ArrayInitializer)
	}
	return ac, nil
}

func (b *builder) arrayInitializer(f frame, n *sitter.Node, hint model.ParameterizedType) (model.Expression, error) {
	var elemHint model.ParameterizedType
	if hint.Arrays > 0 {
		elemHint = hint.ElementType()
	}
	ai := &model.ArrayInitializer{Type: hint}
	for _, c := range namedChildren(n) {
		e, err := b.expression(f, c, elemHint)
		if err != nil {
			return nil, err
		}
		ai.Values = append(ai.Values, e)
	}
	if hint.Arrays == 0 {
		if len(ai.Values) > 0 {
			first := ai.Values[0].ReturnType()
			ai.Type = first.WithArrays(first.Arrays + 1)
		} else {
			ai.Type = model.Of(b.reg.Object()).WithArrays(1)
		}
	}
	return ai, nil
}
