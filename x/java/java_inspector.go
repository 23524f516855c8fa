package java

import (
	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Inspector Java 第一遍：声明预扫描、类型头与成员签名
type Inspector struct {
	s *Session
}

func NewInspector(s *Session) *Inspector {
	return &Inspector{s: s}
}

// ==========================================
// 1. 核心生命周期 (Core Workflow)
// ==========================================

func (i *Inspector) Declare(fc *core.FileContext) error {
	return i.s.declare(fc)
}

func (i *Inspector) InspectHeaders(fc *core.FileContext) error {
	s := i.s
	s.ensureImports(fc)
	for _, id := range s.unitOrder(fc) {
		site := s.site(id)
		h, err := s.header(site)
		if err != nil {
			return err
		}
		if h == nil {
			return errors.New(errors.CodeInternal, "type header not built").WithContext(errors.CtxType, s.reg.Type(id).FQN)
		}
	}
	return nil
}

// InspectSignatures 为本单元的全部类型（外层先于内层）写入签名，返回顶层类型
func (i *Inspector) InspectSignatures(fc *core.FileContext) ([]model.TypeID, error) {
	for _, id := range i.s.unitOrder(fc) {
		if err := i.s.inspectType(i.s.site(id)); err != nil {
			return nil, err
		}
	}
	return fc.Types, nil
}

func (s *Session) unitOrder(fc *core.FileContext) []model.TypeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order[fc]
}

// ==========================================
// 2. 类型签名 (Type Signature)
// ==========================================

type pendingCompanion struct {
	name   model.CompanionName
	method model.MethodID
	loc    *model.Location
}

type recordComponent struct {
	name  string
	field model.FieldID
	pt    model.ParameterizedType
}

// signatureBuilder 单个类型的成员签名构建状态
type signatureBuilder struct {
	s    *Session
	site *typeSite
	h    *typeHeader
	tb   *model.TypeInspectionBuilder
	tp   typeParser

	pending    []pendingCompanion
	components []recordComponent
	compact    model.MethodID
	abstract   int
}

func (s *Session) inspectType(site *typeSite) error {
	t := s.reg.Type(site.id)
	if !t.Transition(model.Uninspected, model.SignatureStarted) {
		return errors.New(errors.CodeDuplicateDefinition, "signature built twice").WithContext(errors.CtxType, t.FQN)
	}
	h, err := s.header(site)
	if err != nil {
		return err
	}

	tb := model.NewTypeInspectionBuilder(h.nature).SetModifiers(h.modifiers).SetFromSource(site.fc.Location(site.node))
	for _, tp := range h.typeParams {
		tb.AddTypeParameter(tp)
	}
	if h.parent != nil {
		tb.SetParent(*h.parent)
	}
	for _, iface := range h.interfaces {
		tb.AddInterface(iface)
	}
	for _, a := range h.annotations {
		tb.AddAnnotation(a)
	}

	sb := &signatureBuilder{s: s, site: site, h: h, tb: tb, tp: typeParser{reg: s.reg, fc: site.fc}}
	if err := sb.build(); err != nil {
		return errors.AddContext(err, errors.CtxType, t.FQN)
	}
	if err := t.Inspection.Set(tb.Build()); err != nil {
		return errors.AddContext(err, errors.CtxType, t.FQN)
	}
	t.Transition(model.SignatureStarted, model.SignatureReady)
	return nil
}

func (sb *signatureBuilder) isInterface() bool {
	return sb.h.nature == model.NatureInterface || sb.h.nature == model.NatureAnnotation
}

func (sb *signatureBuilder) build() error {
	node := sb.site.node
	if sb.h.nature == model.NatureRecord {
		if err := sb.recordComponents(node.ChildByFieldName("parameters")); err != nil {
			return err
		}
	}
	body := node.ChildByFieldName("body")
	if body == nil {
		// 匿名类
		body = findChildOfKind(node, KindClassBody)
	}
	if err := sb.members(body); err != nil {
		return err
	}
	return sb.finish()
}

func (sb *signatureBuilder) members(body *sitter.Node) error {
	for _, c := range namedChildren(body) {
		if err := sb.member(c); err != nil {
			return err
		}
	}
	return nil
}

func (sb *signatureBuilder) member(c *sitter.Node) error {
	switch c.Kind() {
	case KindFieldDeclaration, KindConstantDeclaration:
		return sb.fields(c)
	case KindMethodDeclaration, KindAnnotationElement:
		return sb.method(c, model.KindMethod)
	case KindConstructorDeclaration:
		return sb.method(c, model.KindConstructor)
	case KindCompactConstructor:
		return sb.compactConstructor(c)
	case KindStaticInitializer:
		return sb.initializer(findChildOfKind(c, KindBlock), true)
	case KindBlock:
		return sb.initializer(c, false)
	case KindEnumConstant:
		return sb.enumConstant(c)
	case KindEnumBodyDeclarations:
		return sb.members(c)
	case KindError:
		sb.s.env.Warn(DiagDroppedMember, sb.site.fc.Location(c), sb.s.reg.Type(sb.site.id).FQN, "member with syntax error dropped")
	default:
		if isTypeDeclaration(c.Kind()) {
			if id, ok := sb.s.typeOfNode(c); ok {
				sb.tb.AddSubType(id)
			}
		}
	}
	return nil
}

// ==========================================
// 3. 成员签名 (Member Signatures)
// ==========================================

func (sb *signatureBuilder) fields(c *sitter.Node) error {
	s, site := sb.s, sb.site
	mods, annos := s.modifiers(site.scope, site.fc, c)
	if sb.isInterface() {
		mods |= model.ModPublic | model.ModStatic | model.ModFinal
	}
	base, err := sb.tp.parse(site.scope, c.ChildByFieldName("type"))
	if err != nil {
		return err
	}
	for _, d := range childrenByField(c, "declarator") {
		name := site.fc.Text(d.ChildByFieldName("name"))
		f := s.reg.Arena().NewField(site.id, name)
		fi := &model.FieldInspection{
			Modifiers:      mods,
			Type:           base.WithArrays(base.Arrays + dimensionCount(d.ChildByFieldName("dimensions"))),
			Annotations:    annos,
			HasInitializer: d.ChildByFieldName("value") != nil,
			Location:       site.fc.Location(d),
		}
		if err := f.Inspection.Set(fi); err != nil {
			return errors.AddContext(err, errors.CtxField, name)
		}
		sb.tb.AddField(f.ID)
		s.addFieldSite(f.ID, &memberSite{kind: memberField, node: d, fc: site.fc, scope: site.scope, owner: site.id})
	}
	return nil
}

func (sb *signatureBuilder) enumConstant(c *sitter.Node) error {
	s, site := sb.s, sb.site
	name := site.fc.Text(c.ChildByFieldName("name"))
	_, annos := s.modifiers(site.scope, site.fc, c)
	f := s.reg.Arena().NewField(site.id, name)
	fi := &model.FieldInspection{
		Modifiers:      model.ModPublic | model.ModStatic | model.ModFinal,
		Type:           model.Of(site.id),
		Annotations:    annos,
		EnumConstant:   true,
		HasInitializer: true,
		Location:       site.fc.Location(c),
	}
	if err := f.Inspection.Set(fi); err != nil {
		return errors.AddContext(err, errors.CtxField, name)
	}
	sb.tb.AddField(f.ID)
	s.addFieldSite(f.ID, &memberSite{kind: memberEnumConstant, node: c, fc: site.fc, scope: site.scope, owner: site.id})
	return nil
}

func (sb *signatureBuilder) method(c *sitter.Node, kind model.MethodKind) error {
	s, site := sb.s, sb.site
	arena := s.reg.Arena()
	name := site.fc.Text(c.ChildByFieldName("name"))
	if kind == model.KindConstructor {
		name = ConstructorName
	}
	companion, isCompanion := model.CompanionName{}, false
	if kind == model.KindMethod {
		companion, isCompanion = model.ParseCompanionName(name)
	}

	m := arena.NewMethod(site.id, name, kind != model.KindMethod)
	msc := site.scope.NewChild()
	body := c.ChildByFieldName("body")
	mods, annos := s.modifiers(msc, site.fc, c)
	if sb.isInterface() && kind == model.KindMethod {
		if !mods.Has(model.ModPrivate) {
			mods |= model.ModPublic
		}
		if body == nil && !mods.Has(model.ModStatic|model.ModDefault|model.ModPrivate) {
			mods |= model.ModAbstract
		}
	}
	if mods.Has(model.ModAbstract) && !isCompanion && !isObjectMethod(name, countParams(c)) {
		sb.abstract++
	}
	mb := model.NewMethodInspectionBuilder(kind).
		SetModifiers(mods).
		SetHasBody(body != nil).
		SetLocation(site.fc.Location(c))
	for _, a := range annos {
		mb.AddAnnotation(a)
	}

	fail := func(err error) error {
		return errors.AddContext(err, errors.CtxMethod, name)
	}
	tps, err := s.typeParameters(msc, sb.tp, c.ChildByFieldName("type_parameters"), site.id, m.ID)
	if err != nil {
		return fail(err)
	}
	for _, tp := range tps {
		mb.AddTypeParameter(tp)
	}
	if kind == model.KindMethod {
		ret, err := sb.tp.parse(msc, c.ChildByFieldName("type"))
		if err != nil {
			return fail(err)
		}
		mb.SetReturnType(ret.WithArrays(ret.Arrays + dimensionCount(c.ChildByFieldName("dimensions"))))
	}
	if err := sb.parameters(msc, m.ID, c.ChildByFieldName("parameters"), mb); err != nil {
		return fail(err)
	}
	if throws := findChildOfKind(c, KindThrows); throws != nil {
		for _, tn := range namedChildren(throws) {
			pt, err := sb.tp.parse(msc, tn)
			if err != nil {
				return fail(err)
			}
			mb.AddException(pt)
		}
	}

	s.addMethodSite(m.ID, &memberSite{kind: memberMethod, node: c, fc: site.fc, scope: msc, owner: site.id})
	if isCompanion {
		if err := m.Inspection.Set(mb.Build()); err != nil {
			return fail(err)
		}
		sb.pending = append(sb.pending, pendingCompanion{name: companion, method: m.ID, loc: site.fc.Location(c)})
		return nil
	}

	sb.attachCompanions(name, mb)
	if err := m.Inspection.Set(mb.Build()); err != nil {
		return fail(err)
	}
	if kind == model.KindMethod {
		sb.tb.AddMethod(m.ID)
	} else {
		sb.tb.AddConstructor(m.ID)
	}
	return nil
}

// attachCompanions 缓冲的伴生方法挂到紧随其后的主方法上；名称不符的视为孤立并告警
func (sb *signatureBuilder) attachCompanions(main string, mb *model.MethodInspectionBuilder) {
	for _, p := range sb.pending {
		if p.name.Main == main {
			mb.AddCompanion(p.name, p.method)
			continue
		}
		sb.orphan(p)
	}
	sb.pending = sb.pending[:0]
}

func (sb *signatureBuilder) orphan(p pendingCompanion) {
	sb.s.env.Warn(DiagOrphanCompanion, p.loc, p.name.String(), "companion method has no following main method")
}

func (sb *signatureBuilder) parameters(msc *core.TypeContext, owner model.MethodID, list *sitter.Node, mb *model.MethodInspectionBuilder) error {
	params, err := sb.s.formalParameters(msc, sb.site.fc, list)
	if err != nil {
		return err
	}
	arena := sb.s.reg.Arena()
	for i, fp := range params {
		p := arena.NewParameter(owner, i, fp.name)
		if err := p.Inspection.Set(&model.ParameterInspection{Type: fp.pt, VarArgs: fp.varArgs, Final: fp.final, Annotations: fp.annotations}); err != nil {
			return err
		}
		mb.AddParameter(p.ID, fp.varArgs)
	}
	return nil
}

type formalParam struct {
	name        string
	pt          model.ParameterizedType
	varArgs     bool
	final       bool
	annotations []model.Annotation
	node        *sitter.Node
}

// formalParameters 解析 formal_parameters，跳过接收者参数
func (s *Session) formalParameters(tc *core.TypeContext, fc *core.FileContext, list *sitter.Node) ([]formalParam, error) {
	tp := typeParser{reg: s.reg, fc: fc}
	var out []formalParam
	for _, c := range namedChildren(list) {
		mods, annos := s.modifiers(tc, fc, c)
		fp := formalParam{final: mods.Has(model.ModFinal), annotations: annos, node: c}
		switch c.Kind() {
		case KindFormalParameter:
			pt, err := tp.parse(tc, c.ChildByFieldName("type"))
			if err != nil {
				return nil, err
			}
			fp.name = fc.Text(c.ChildByFieldName("name"))
			fp.pt = pt.WithArrays(pt.Arrays + dimensionCount(c.ChildByFieldName("dimensions")))
		case KindSpreadParameter:
			var typeNode *sitter.Node
			for _, cc := range namedChildren(c) {
				if cc.Kind() != KindModifiers && cc.Kind() != KindVariableDeclarator && cc.Kind() != KindMarkerAnnotation && cc.Kind() != KindAnnotation {
					typeNode = cc
					break
				}
			}
			pt, err := tp.parse(tc, typeNode)
			if err != nil {
				return nil, err
			}
			decl := findChildOfKind(c, KindVariableDeclarator)
			fp.name = fc.Text(decl.ChildByFieldName("name"))
			fp.pt = pt.WithArrays(pt.Arrays + 1)
			fp.varArgs = true
		default:
			continue
		}
		out = append(out, fp)
	}
	return out, nil
}

func (sb *signatureBuilder) initializer(block *sitter.Node, static bool) error {
	if block == nil {
		return nil
	}
	s, site := sb.s, sb.site
	name, kind, mods := InstanceBlockName, model.KindInstanceBlock, model.ModPrivate
	if static {
		name, kind, mods = StaticBlockName, model.KindStaticBlock, model.ModPrivate|model.ModStatic
	}
	m := s.reg.Arena().NewMethod(site.id, name, false)
	mb := model.NewMethodInspectionBuilder(kind).
		SetModifiers(mods).
		SetReturnType(model.Void.PT()).
		SetSynthetic().
		SetHasBody(true).
		SetLocation(site.fc.Location(block))
	if err := m.Inspection.Set(mb.Build()); err != nil {
		return err
	}
	sb.tb.AddInitializer(m.ID)
	s.addMethodSite(m.ID, &memberSite{kind: memberInitializer, node: block, fc: site.fc, scope: site.scope, owner: site.id})
	return nil
}

// ==========================================
// 4. 记录类型 (Records)
// ==========================================

func (sb *signatureBuilder) recordComponents(list *sitter.Node) error {
	s, site := sb.s, sb.site
	params, err := s.formalParameters(site.scope, site.fc, list)
	if err != nil {
		return err
	}
	for _, fp := range params {
		f := s.reg.Arena().NewField(site.id, fp.name)
		fi := &model.FieldInspection{
			Modifiers:       model.ModPrivate | model.ModFinal,
			Type:            fp.pt,
			Annotations:     fp.annotations,
			RecordComponent: true,
			Location:        site.fc.Location(fp.node),
		}
		if err := f.Inspection.Set(fi); err != nil {
			return errors.AddContext(err, errors.CtxField, fp.name)
		}
		sb.tb.AddField(f.ID)
		sb.components = append(sb.components, recordComponent{name: fp.name, field: f.ID, pt: fp.pt})
	}
	return nil
}

// compactConstructor 参数取自记录组件；方法体末尾由第二遍补上组件字段赋值
func (sb *signatureBuilder) compactConstructor(c *sitter.Node) error {
	s, site := sb.s, sb.site
	m := s.reg.Arena().NewMethod(site.id, ConstructorName, true)
	mods, annos := s.modifiers(site.scope, site.fc, c)
	mb := model.NewMethodInspectionBuilder(model.KindCompactConstructor).
		SetModifiers(mods).
		SetHasBody(true).
		SetLocation(site.fc.Location(c))
	for _, a := range annos {
		mb.AddAnnotation(a)
	}
	if err := sb.componentParameters(m.ID, mb); err != nil {
		return err
	}
	if err := m.Inspection.Set(mb.Build()); err != nil {
		return err
	}
	sb.tb.AddConstructor(m.ID)
	sb.compact = m.ID
	s.addMethodSite(m.ID, &memberSite{kind: memberMethod, node: c, fc: site.fc, scope: site.scope.NewChild(), owner: site.id})
	return nil
}

func (sb *signatureBuilder) componentParameters(owner model.MethodID, mb *model.MethodInspectionBuilder) error {
	for i, rc := range sb.components {
		p := sb.s.reg.Arena().NewParameter(owner, i, rc.name)
		if err := p.Inspection.Set(&model.ParameterInspection{Type: rc.pt}); err != nil {
			return err
		}
		mb.AddParameter(p.ID, false)
	}
	return nil
}

// componentAssignments this.c = c，紧凑构造器与合成的规范构造器共用
func (s *Session) componentAssignments(owner model.TypeID, params []model.ParamID, fields []model.FieldID, loc *model.Location) ([]model.Statement, []model.MemberRef) {
	arena := s.reg.Arena()
	var stmts []model.Statement
	var deps []model.MemberRef
	for i, fid := range fields {
		if i >= len(params) {
			break
		}
		f := arena.Field(fid)
		fi, _ := f.Inspection.Get()
		target := &model.FieldReference{Field: fid, Name: f.Name, Type: fi.Type, Scope: &model.This{Type: model.Of(owner)}}
		stmts = append(stmts, &model.ExpressionStatement{
			StatementBase: model.At(loc),
			Expr: &model.Assignment{
				Target: &model.VariableExpression{Var: target},
				Value:  &model.VariableExpression{Var: arena.Param(params[i])},
			},
		})
		deps = append(deps, model.FieldRef(fid))
	}
	return stmts, deps
}

// ==========================================
// 5. 合成成员 (Synthesized Members)
// ==========================================

func (sb *signatureBuilder) finish() error {
	for _, p := range sb.pending {
		sb.orphan(p)
	}
	sb.pending = nil

	switch sb.h.nature {
	case model.NatureRecord:
		if err := sb.recordMembers(); err != nil {
			return err
		}
	case model.NatureEnum:
		if err := sb.enumMembers(); err != nil {
			return err
		}
	}
	if !sb.isInterface() && len(sb.tb.Constructors()) == 0 {
		if err := sb.defaultConstructor(); err != nil {
			return err
		}
	}
	if sb.h.nature == model.NatureInterface {
		sb.tb.SetFunctionalInterface(hasAnnotation(sb.s.reg, sb.h.annotations, "java.lang.FunctionalInterface") ||
			(sb.abstract == 1 && sb.s.superAbstractCount(sb.h.interfaces, map[model.TypeID]bool{}) == 0))
	}
	return nil
}

// synthetic 新建合成方法，方法体在第一遍就已确定
func (sb *signatureBuilder) synthetic(name string, kind model.MethodKind, mods model.Modifiers, ret model.ParameterizedType,
	params func(model.MethodID, *model.MethodInspectionBuilder) error, body func(*model.MethodInfo) (*model.Block, []model.MemberRef)) (model.MethodID, error) {
	site := sb.site
	m := sb.s.reg.Arena().NewMethod(site.id, name, kind == model.KindConstructor)
	loc := site.fc.Location(site.node)
	mb := model.NewMethodInspectionBuilder(kind).SetModifiers(mods).SetSynthetic().SetHasBody(true).SetLocation(loc)
	if kind == model.KindMethod {
		mb.SetReturnType(ret)
	}
	if params != nil {
		if err := params(m.ID, mb); err != nil {
			return model.NoMethod, err
		}
	}
	if err := m.Inspection.Set(mb.Build()); err != nil {
		return model.NoMethod, err
	}
	block, deps := body(m)
	sb.s.addMethodSite(m.ID, &memberSite{kind: memberSynthetic, fc: site.fc, scope: site.scope, owner: site.id, body: block, deps: deps})
	if kind == model.KindConstructor {
		sb.tb.AddConstructor(m.ID)
	} else {
		sb.tb.AddMethod(m.ID)
	}
	return m.ID, nil
}

func emptyBody(loc *model.Location) func(*model.MethodInfo) (*model.Block, []model.MemberRef) {
	return func(*model.MethodInfo) (*model.Block, []model.MemberRef) {
		return &model.Block{StatementBase: model.At(loc)}, nil
	}
}

func (sb *signatureBuilder) defaultConstructor() error {
	mods := sb.h.modifiers & (model.ModPublic | model.ModProtected | model.ModPrivate)
	if sb.h.nature == model.NatureEnum {
		mods = model.ModPrivate
	}
	_, err := sb.synthetic(ConstructorName, model.KindConstructor, mods, model.ParameterizedType{}, nil, emptyBody(sb.site.fc.Location(sb.site.node)))
	return err
}

func (sb *signatureBuilder) enumMembers() error {
	self := model.Of(sb.site.id)
	loc := sb.site.fc.Location(sb.site.node)
	static := model.ModPublic | model.ModStatic
	if _, err := sb.synthetic(ValuesMethod, model.KindMethod, static, self.WithArrays(1), nil, emptyBody(loc)); err != nil {
		return err
	}
	valueOfParams := func(owner model.MethodID, mb *model.MethodInspectionBuilder) error {
		p := sb.s.reg.Arena().NewParameter(owner, 0, "name")
		if err := p.Inspection.Set(&model.ParameterInspection{Type: sb.s.reg.StringType()}); err != nil {
			return err
		}
		mb.AddParameter(p.ID, false)
		return nil
	}
	_, err := sb.synthetic(ValueOfMethod, model.KindMethod, static, self, valueOfParams, emptyBody(loc))
	return err
}

// recordMembers 组件访问器与规范构造器，已显式声明的不再合成
func (sb *signatureBuilder) recordMembers() error {
	s, site := sb.s, sb.site
	arena := s.reg.Arena()
	loc := site.fc.Location(site.node)
	declared := map[string]bool{}
	for _, mid := range sb.tb.Methods() {
		m := arena.Method(mid)
		if mi, ok := m.Inspection.Get(); ok && len(mi.Params) == 0 {
			declared[m.Name] = true
		}
	}
	for _, rc := range sb.components {
		if declared[rc.name] {
			continue
		}
		rc := rc
		body := func(*model.MethodInfo) (*model.Block, []model.MemberRef) {
			f := arena.Field(rc.field)
			read := &model.FieldReference{Field: rc.field, Name: f.Name, Type: rc.pt, Scope: &model.This{Type: model.Of(site.id)}}
			ret := &model.Return{StatementBase: model.At(loc), Expr: &model.VariableExpression{Var: read}}
			return &model.Block{StatementBase: model.At(loc), Statements: []model.Statement{ret}}, []model.MemberRef{model.FieldRef(rc.field)}
		}
		if _, err := sb.synthetic(rc.name, model.KindMethod, model.ModPublic, rc.pt, nil, body); err != nil {
			return err
		}
	}

	if sb.compact != model.NoMethod || sb.hasCanonical() {
		return nil
	}
	fields := make([]model.FieldID, len(sb.components))
	for i, rc := range sb.components {
		fields[i] = rc.field
	}
	body := func(m *model.MethodInfo) (*model.Block, []model.MemberRef) {
		mi, _ := m.Inspection.Get()
		stmts, deps := s.componentAssignments(site.id, mi.Params, fields, loc)
		return &model.Block{StatementBase: model.At(loc), Statements: stmts}, deps
	}
	mods := sb.h.modifiers & (model.ModPublic | model.ModProtected | model.ModPrivate)
	_, err := sb.synthetic(ConstructorName, model.KindConstructor, mods, model.ParameterizedType{}, sb.componentParameters, body)
	return err
}

func (sb *signatureBuilder) hasCanonical() bool {
	arena := sb.s.reg.Arena()
	for _, mid := range sb.tb.Constructors() {
		mi, ok := arena.Method(mid).Inspection.Get()
		if !ok || len(mi.Params) != len(sb.components) {
			continue
		}
		match := true
		for i, pid := range mi.Params {
			pi, _ := arena.Param(pid).Inspection.Get()
			if pi == nil || !pi.Type.Equal(sb.components[i].pt) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// superAbstractCount 父接口中的抽象方法数。源码接口按语法统计，其余取签名。
func (s *Session) superAbstractCount(ifaces []model.ParameterizedType, visited map[model.TypeID]bool) int {
	n := 0
	for _, iface := range ifaces {
		if visited[iface.Type] {
			continue
		}
		visited[iface.Type] = true
		if site := s.site(iface.Type); site != nil {
			if site.header == nil {
				continue
			}
			n += declaredAbstract(site)
			n += s.superAbstractCount(site.header.interfaces, visited)
			continue
		}
		if _, ok := s.reg.TryTypeInspection(iface.Type); ok && s.reg.IsFunctionalInterface(iface) {
			n++
		}
	}
	return n
}

// declaredAbstract 接口体中没有方法体、也不是 default/static/private 的方法数
func declaredAbstract(site *typeSite) int {
	n := 0
	for _, c := range namedChildren(site.node.ChildByFieldName("body")) {
		if c.Kind() != KindMethodDeclaration || c.ChildByFieldName("body") != nil {
			continue
		}
		name := site.fc.Text(c.ChildByFieldName("name"))
		if _, companion := model.ParseCompanionName(name); companion || isObjectMethod(name, countParams(c)) {
			continue
		}
		mods := findChildOfKind(c, KindModifiers)
		if mods != nil && (hasToken(mods, "static") || hasToken(mods, "default") || hasToken(mods, "private")) {
			continue
		}
		n++
	}
	return n
}

func countParams(method *sitter.Node) int {
	n := 0
	for _, c := range namedChildren(method.ChildByFieldName("parameters")) {
		if c.Kind() == KindFormalParameter || c.Kind() == KindSpreadParameter {
			n++
		}
	}
	return n
}
