package java

import (
	"slices"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type stmtHandler func(b *builder, f frame, n *sitter.Node) (model.Statement, error)

var statementHandlers map[string]stmtHandler

func init() {
	statementHandlers = map[string]stmtHandler{
		KindBlock:                         (*builder).blockStatement,
		KindExpressionStatement:           (*builder).expressionStatement,
		KindLocalVariableDeclaration:      (*builder).localVariables,
		KindIfStatement:                   (*builder).ifStatement,
		KindWhileStatement:                (*builder).whileStatement,
		KindDoStatement:                   (*builder).doStatement,
		KindForStatement:                  (*builder).forStatement,
		KindEnhancedForStatement:          (*builder).forEachStatement,
		KindReturnStatement:               (*builder).returnStatement,
		KindBreakStatement:                (*builder).breakStatement,
		KindContinueStatement:             (*builder).continueStatement,
		KindThrowStatement:                (*builder).throwStatement,
		KindYieldStatement:                (*builder).yieldStatement,
		KindAssertStatement:               (*builder).assertStatement,
		KindSynchronizedStatement:         (*builder).synchronizedStatement,
		KindLabeledStatement:              (*builder).labeledStatement,
		KindTryStatement:                  (*builder).tryStatement,
		KindTryWithResourcesStatement:     (*builder).tryStatement,
		KindSwitchExpression:              (*builder).switchStatement,
		KindExplicitConstructorInvocation: (*builder).explicitConstructorInvocation,
		KindEmptyStatement:                (*builder).emptyStatement,
	}
}

// ==========================================
// 1. 语句分派 (Statement Dispatch)
// ==========================================

// statement 含语法错误的语句被丢弃并告警，返回 nil；严格模式下作为不支持的结构失败
func (b *builder) statement(f frame, n *sitter.Node) (model.Statement, error) {
	if brokenStatement(n) {
		if b.s.env.Options.Strict {
			return nil, b.fail(errors.CodeUnsupportedConstruct, n, "statement with syntax error")
		}
		b.s.env.Warn(DiagDroppedStatement, b.loc(n), b.reg.Type(b.owner).FQN, "statement with syntax error dropped")
		return nil, nil
	}
	if isTypeDeclaration(n.Kind()) {
		return b.localClass(f, n)
	}
	h, ok := statementHandlers[n.Kind()]
	if !ok {
		return nil, b.unsupported(n)
	}
	return h(b, f, n)
}

// brokenStatement 语句自身或其非语句部分（条件、初始化器等）有语法错误；
// 错误只出现在嵌套语句里时交给嵌套语句处理
func brokenStatement(n *sitter.Node) bool {
	if n.IsError() || n.IsMissing() {
		return true
	}
	if !n.HasError() {
		return false
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || !c.HasError() && !c.IsMissing() && !c.IsError() {
			continue
		}
		if _, nested := statementHandlers[c.Kind()]; nested || c.Kind() == KindConstructorBody || isTypeDeclaration(c.Kind()) {
			continue
		}
		switch c.Kind() {
		case KindCatchClause, KindFinallyClause, KindSwitchBlock, KindSwitchGroup, KindSwitchRule:
			continue
		}
		return true
	}
	return false
}

// block 新帧；constructor_body 同样处理
func (b *builder) block(f frame, n *sitter.Node) (*model.Block, error) {
	bf := f.child()
	blk := &model.Block{StatementBase: model.At(b.loc(n))}
	for _, c := range namedChildren(n) {
		st, err := b.statement(bf, c)
		if err != nil {
			return nil, err
		}
		if st != nil {
			blk.Statements = append(blk.Statements, st)
		}
	}
	return blk, nil
}

func (b *builder) blockStatement(f frame, n *sitter.Node) (model.Statement, error) {
	return b.block(f, n)
}

func (b *builder) emptyStatement(_ frame, n *sitter.Node) (model.Statement, error) {
	return &model.Empty{StatementBase: model.At(b.loc(n))}, nil
}

func (b *builder) expressionStatement(f frame, n *sitter.Node) (model.Statement, error) {
	inner := namedChildren(n)
	if len(inner) != 1 {
		return nil, b.unsupported(n)
	}
	// 表达式中的模式变量只在本语句内可见
	e, err := b.expression(f.child(), inner[0], model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	return &model.ExpressionStatement{StatementBase: model.At(b.loc(n)), Expr: e}, nil
}

// ==========================================
// 2. 声明 (Declarations)
// ==========================================

// localVariables var 取初始化器类型；变量在自己的初始化器构建之后才绑定
func (b *builder) localVariables(f frame, n *sitter.Node) (model.Statement, error) {
	mods, _ := b.s.modifiers(f.types, b.fc, n)
	typeNode := n.ChildByFieldName("type")
	inferred := b.text(typeNode) == "var"
	var base model.ParameterizedType
	if !inferred {
		pt, err := b.parseType(f, typeNode)
		if err != nil {
			return nil, err
		}
		base = pt
	}
	lvc := &model.LocalVariableCreation{StatementBase: model.At(b.loc(n))}
	for _, d := range childrenByField(n, "declarator") {
		pt := base.WithArrays(base.Arrays + dimensionCount(d.ChildByFieldName("dimensions")))
		var init model.Expression
		if v := d.ChildByFieldName("value"); v != nil {
			hint := pt
			if inferred {
				hint = model.ParameterizedType{}
			}
			e, err := b.expression(f.child(), v, hint)
			if err != nil {
				return nil, err
			}
			init = e
			if inferred {
				pt = e.ReturnType()
				if pt.Null {
					pt = model.Of(b.reg.Object())
				}
			}
		}
		lv := b.bindLocal(f, d.ChildByFieldName("name"), pt, model.LocalPlain, mods.Has(model.ModFinal))
		lvc.Vars = append(lvc.Vars, lv)
		lvc.Inits = append(lvc.Inits, init)
	}
	return lvc, nil
}

func (b *builder) localClass(f frame, n *sitter.Node) (model.Statement, error) {
	id, sorted, err := b.localType(f, n, nil)
	if err != nil {
		return nil, err
	}
	return &model.LocalClassDeclaration{StatementBase: model.At(b.loc(n)), Type: id, Sorted: sorted}, nil
}

// ==========================================
// 3. 控制流 (Control Flow)
// ==========================================

func (b *builder) condition(f frame, n *sitter.Node) (model.Expression, error) {
	return b.expression(f, n, model.Boolean.PT())
}

// nested 分支与循环体各自一个帧
func (b *builder) nested(f frame, n *sitter.Node) (model.Statement, error) {
	if n == nil {
		return nil, nil
	}
	st, err := b.statement(f.child(), n)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return &model.Empty{StatementBase: model.At(b.loc(n))}, nil
	}
	return st, nil
}

// ifStatement 条件中的模式变量绑定在条件自己的帧，两个分支都在其下。
// 没有 else 且 then 分支不能正常结束时，条件为假引入的模式变量在 if 之后可见
func (b *builder) ifStatement(f frame, n *sitter.Node) (model.Statement, error) {
	cf := f.child()
	cond, err := b.condition(cf, n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	then, err := b.nested(cf, n.ChildByFieldName("consequence"))
	if err != nil {
		return nil, err
	}
	els, err := b.nested(cf, n.ChildByFieldName("alternative"))
	if err != nil {
		return nil, err
	}
	if els == nil && !completesNormally(then) {
		for _, lv := range patternBindings(cond, false) {
			if !f.vars.BindLocal(lv) {
				b.s.env.Warn(DiagDuplicateVariable, b.loc(n), lv.Name, "variable already declared in this scope")
			}
		}
	}
	return &model.If{StatementBase: model.At(b.loc(n)), Condition: cond, Then: then, Else: els}, nil
}

// patternBindings 条件为真（whenTrue）或为假时一定匹配成功的模式变量
func patternBindings(e model.Expression, whenTrue bool) []*model.LocalVariable {
	switch x := e.(type) {
	case *model.InstanceOf:
		if whenTrue {
			return x.Bindings
		}
	case *model.UnaryOperation:
		if x.Operator != nil && x.Operator.Symbol == "!" {
			return patternBindings(x.Operand, !whenTrue)
		}
	case *model.BinaryOperation:
		if x.Operator == nil {
			return nil
		}
		if x.Operator.Symbol == "&&" && whenTrue || x.Operator.Symbol == "||" && !whenTrue {
			return slices.Concat(patternBindings(x.Lhs, whenTrue), patternBindings(x.Rhs, whenTrue))
		}
	}
	return nil
}

// completesNormally 只识别跳转语句、以跳转结尾的块和两支都跳转的 if
func completesNormally(st model.Statement) bool {
	switch s := st.(type) {
	case *model.Return, *model.Throw, *model.Break, *model.Continue, *model.Yield:
		return false
	case *model.Block:
		return len(s.Statements) == 0 || completesNormally(s.Statements[len(s.Statements)-1])
	case *model.If:
		return s.Else == nil || completesNormally(s.Then) || completesNormally(s.Else)
	}
	return true
}

func (b *builder) whileStatement(f frame, n *sitter.Node) (model.Statement, error) {
	wf := f.child()
	cond, err := b.condition(wf, n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	body, err := b.nested(wf, n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return &model.While{StatementBase: model.At(b.loc(n)), Condition: cond, Body: body}, nil
}

func (b *builder) doStatement(f frame, n *sitter.Node) (model.Statement, error) {
	body, err := b.nested(f, n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	cond, err := b.condition(f.child(), n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	return &model.DoWhile{StatementBase: model.At(b.loc(n)), Body: body, Condition: cond}, nil
}

func (b *builder) forStatement(f frame, n *sitter.Node) (model.Statement, error) {
	ff := f.child()
	fs := &model.For{StatementBase: model.At(b.loc(n))}
	for _, c := range childrenByField(n, "init") {
		if c.Kind() == KindLocalVariableDeclaration {
			st, err := b.localVariables(ff, c)
			if err != nil {
				return nil, err
			}
			fs.Init = append(fs.Init, st)
			continue
		}
		e, err := b.expression(ff, c, model.ParameterizedType{})
		if err != nil {
			return nil, err
		}
		fs.Init = append(fs.Init, &model.ExpressionStatement{StatementBase: model.At(b.loc(c)), Expr: e})
	}
	if c := n.ChildByFieldName("condition"); c != nil {
		cond, err := b.condition(ff, c)
		if err != nil {
			return nil, err
		}
		fs.Condition = cond
	}
	updates, err := b.expressions(ff, childrenByField(n, "update"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	fs.Updates = updates
	body, err := b.nested(ff, n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	fs.Body = body
	return fs, nil
}

func (b *builder) forEachStatement(f frame, n *sitter.Node) (model.Statement, error) {
	iter, err := b.expression(f, n.ChildByFieldName("value"), model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	ff := f.child()
	typeNode := n.ChildByFieldName("type")
	var pt model.ParameterizedType
	if b.text(typeNode) == "var" {
		pt = b.elementType(iter.ReturnType())
	} else {
		if pt, err = b.parseType(ff, typeNode); err != nil {
			return nil, err
		}
	}
	pt = pt.WithArrays(pt.Arrays + dimensionCount(n.ChildByFieldName("dimensions")))
	mods, _ := b.s.modifiers(ff.types, b.fc, n)
	lv := b.bindLocal(ff, n.ChildByFieldName("name"), pt, model.LocalLoopVar, mods.Has(model.ModFinal))
	body, err := b.nested(ff, n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return &model.ForEach{StatementBase: model.At(b.loc(n)), Var: lv, Iterable: iter, Body: body}, nil
}

// elementType 数组元素类型，或 Iterable 的类型实参
func (b *builder) elementType(pt model.ParameterizedType) model.ParameterizedType {
	if pt.Arrays > 0 {
		return pt.ElementType()
	}
	if id, ok := b.reg.Get(core.IterableFQ); ok {
		if sup, ok := b.reg.FindSupertype(b.reg.Bound(b.unwild(pt)), id); ok && len(sup.Args) == 1 {
			return b.unwild(sup.Args[0])
		}
	}
	return model.Of(b.reg.Object())
}

func (b *builder) returnStatement(f frame, n *sitter.Node) (model.Statement, error) {
	rs := &model.Return{StatementBase: model.At(b.loc(n))}
	if inner := namedChildren(n); len(inner) > 0 {
		var hint model.ParameterizedType
		if !b.ret.IsVoid() {
			hint = b.ret
		}
		e, err := b.expression(f.child(), inner[0], hint)
		if err != nil {
			return nil, err
		}
		rs.Expr = e
	}
	return rs, nil
}

func (b *builder) label(n *sitter.Node) string {
	if id := findChildOfKind(n, KindIdentifier); id != nil {
		return b.text(id)
	}
	return ""
}

func (b *builder) breakStatement(_ frame, n *sitter.Node) (model.Statement, error) {
	return &model.Break{StatementBase: model.At(b.loc(n)), Label: b.label(n)}, nil
}

func (b *builder) continueStatement(_ frame, n *sitter.Node) (model.Statement, error) {
	return &model.Continue{StatementBase: model.At(b.loc(n)), Label: b.label(n)}, nil
}

func (b *builder) throwStatement(f frame, n *sitter.Node) (model.Statement, error) {
	inner := namedChildren(n)
	if len(inner) != 1 {
		return nil, b.unsupported(n)
	}
	e, err := b.expression(f, inner[0], model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	return &model.Throw{StatementBase: model.At(b.loc(n)), Expr: e}, nil
}

func (b *builder) yieldStatement(f frame, n *sitter.Node) (model.Statement, error) {
	inner := namedChildren(n)
	if len(inner) != 1 {
		return nil, b.unsupported(n)
	}
	e, err := b.expression(f, inner[0], model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	if b.yields != nil {
		*b.yields = append(*b.yields, e.ReturnType())
	}
	return &model.Yield{StatementBase: model.At(b.loc(n)), Expr: e}, nil
}

func (b *builder) assertStatement(f frame, n *sitter.Node) (model.Statement, error) {
	inner := namedChildren(n)
	if len(inner) == 0 {
		return nil, b.unsupported(n)
	}
	as := &model.Assert{StatementBase: model.At(b.loc(n))}
	cond, err := b.condition(f, inner[0])
	if err != nil {
		return nil, err
	}
	as.Condition = cond
	if len(inner) > 1 {
		msg, err := b.expression(f, inner[1], model.ParameterizedType{})
		if err != nil {
			return nil, err
		}
		as.Message = msg
	}
	return as, nil
}

func (b *builder) synchronizedStatement(f frame, n *sitter.Node) (model.Statement, error) {
	inner := namedChildren(n)
	if len(inner) < 2 {
		return nil, b.unsupported(n)
	}
	lock, err := b.expression(f, inner[0], model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	body, err := b.block(f, n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return &model.Synchronized{StatementBase: model.At(b.loc(n)), Lock: lock, Body: body}, nil
}

func (b *builder) labeledStatement(f frame, n *sitter.Node) (model.Statement, error) {
	inner := namedChildren(n)
	if len(inner) != 2 {
		return nil, b.unsupported(n)
	}
	body, err := b.nested(f, inner[1])
	if err != nil {
		return nil, err
	}
	return &model.Labeled{StatementBase: model.At(b.loc(n)), Label: b.text(inner[0]), Body: body}, nil
}

// ==========================================
// 4. 异常处理 (Try / Catch)
// ==========================================

// tryStatement 资源声明只在 try 块内可见
func (b *builder) tryStatement(f frame, n *sitter.Node) (model.Statement, error) {
	ts := &model.Try{StatementBase: model.At(b.loc(n))}
	rf := f.child()
	if spec := n.ChildByFieldName("resources"); spec != nil {
		for _, r := range namedChildren(spec) {
			st, err := b.resource(rf, r)
			if err != nil {
				return nil, err
			}
			ts.Resources = append(ts.Resources, st)
		}
	}
	body, err := b.block(rf, n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	ts.Body = body
	for _, c := range namedChildren(n) {
		switch c.Kind() {
		case KindCatchClause:
			cc, err := b.catchClause(f, c)
			if err != nil {
				return nil, err
			}
			ts.Catches = append(ts.Catches, cc)
		case KindFinallyClause:
			fin, err := b.block(f, findChildOfKind(c, KindBlock))
			if err != nil {
				return nil, err
			}
			ts.Finally = fin
		}
	}
	return ts, nil
}

func (b *builder) resource(f frame, r *sitter.Node) (model.Statement, error) {
	typeNode := r.ChildByFieldName("type")
	if typeNode == nil {
		inner := namedChildren(r)
		if len(inner) != 1 {
			return nil, b.unsupported(r)
		}
		e, err := b.expression(f, inner[0], model.ParameterizedType{})
		if err != nil {
			return nil, err
		}
		return &model.ExpressionStatement{StatementBase: model.At(b.loc(r)), Expr: e}, nil
	}
	var pt model.ParameterizedType
	inferred := b.text(typeNode) == "var"
	if !inferred {
		parsed, err := b.parseType(f, typeNode)
		if err != nil {
			return nil, err
		}
		pt = parsed
	}
	init, err := b.expression(f, r.ChildByFieldName("value"), pt)
	if err != nil {
		return nil, err
	}
	if inferred {
		pt = init.ReturnType()
	}
	lv := b.bindLocal(f, r.ChildByFieldName("name"), pt, model.LocalResource, true)
	return &model.LocalVariableCreation{
		StatementBase: model.At(b.loc(r)),
		Vars:          []*model.LocalVariable{lv},
		Inits:         []model.Expression{init},
	}, nil
}

func (b *builder) catchClause(f frame, c *sitter.Node) (*model.CatchClause, error) {
	cf := f.child()
	param := findChildOfKind(c, KindCatchFormalParameter)
	if param == nil {
		return nil, b.unsupported(c)
	}
	cc := &model.CatchClause{}
	for _, t := range namedChildren(findChildOfKind(param, KindCatchType)) {
		pt, err := b.parseType(cf, t)
		if err != nil {
			return nil, err
		}
		cc.Types = append(cc.Types, pt)
	}
	if len(cc.Types) == 0 {
		return nil, b.unsupported(param)
	}
	varType := cc.Types[0]
	if len(cc.Types) > 1 {
		varType = b.commonSupertype(cc.Types)
	}
	mods, _ := b.s.modifiers(cf.types, b.fc, param)
	cc.Var = b.bindLocal(cf, param.ChildByFieldName("name"), varType, model.LocalCatchParam, mods.Has(model.ModFinal))
	body, err := b.block(cf, c.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	cc.Body = body
	return cc, nil
}

// commonSupertype 多重 catch 变量的类型：沿第一个类型的父类链找到能接收全部类型的最近者
func (b *builder) commonSupertype(types []model.ParameterizedType) model.ParameterizedType {
	for cur := types[0]; cur.Type != model.NoType; {
		all := true
		for _, t := range types[1:] {
			if b.reg.AssignableDistance(cur, t) < 0 {
				all = false
				break
			}
		}
		if all {
			return cur
		}
		ti, ok := b.reg.TryTypeInspection(cur.Type)
		if !ok || ti.Parent == nil {
			break
		}
		cur = *ti.Parent
	}
	return model.Of(b.reg.GetOrCreate("java.lang.Throwable"))
}
