package java

import (
	"slices"
	"strings"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Resolver Java 第二遍：方法体、字段初始化器与依赖排序
type Resolver struct {
	s *Session
}

func NewResolver(s *Session) *Resolver {
	return &Resolver{s: s}
}

// ==========================================
// 1. 核心生命周期 (Core Workflow)
// ==========================================

// Resolve 按 FQN 顺序构建每个主类型的成员体，再把主类型按依赖排序，互相依赖的主类型归为一个 TypeCycle。
func (r *Resolver) Resolve(types map[model.TypeID]*core.TypeContext) (*model.SortedTypes, error) {
	s := r.s
	arena := s.reg.Arena()
	ids := make([]model.TypeID, 0, len(types))
	for id := range types {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b model.TypeID) int {
		return strings.Compare(s.reg.Type(a).FQN, s.reg.Type(b).FQN)
	})
	rank := make(map[model.TypeID]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}

	out := &model.SortedTypes{}
	sorted := make(map[model.TypeID]*model.SortedType, len(ids))
	graph := core.NewDependencyGraph[model.TypeID]()
	for _, id := range ids {
		fqn := s.reg.Type(id).FQN
		res, err := s.resolveType(id, nil)
		if err != nil {
			if !s.env.Options.KeepGoing {
				return nil, err
			}
			s.env.Error(DiagResolveFailed, s.typeLocation(id), fqn, err)
			continue
		}
		s.env.Logger.Debug("type resolved", "type", fqn, "members", len(res.sorted.Members))
		sorted[id] = res.sorted
		graph.AddNode(id, res.typeDependencies(arena, id)...)
		out.Relations = append(out.Relations, res.deps.relations...)
	}

	for _, g := range graph.Sort(func(id model.TypeID) int { return rank[id] }) {
		tc := model.TypeCycle{}
		for _, id := range g.Members {
			st := sorted[id]
			if g.Cycle {
				st.Cycle = g.Members
			}
			tc.Types = append(tc.Types, st)
		}
		if g.Cycle {
			s.env.Logger.Info("type cycle", "type", s.reg.Type(g.Members[0]).FQN, "size", len(g.Members))
		}
		out.Cycles = append(out.Cycles, tc)
	}

	for _, rel := range out.Relations {
		rel.SourceName = arena.MemberName(rel.Source)
		rel.TargetName = arena.MemberName(rel.Target)
	}
	out.Diagnostics = s.env.Diagnostics.Items()
	return out, nil
}

func (s *Session) typeLocation(id model.TypeID) *model.Location {
	if site := s.site(id); site != nil {
		return site.fc.Location(site.node)
	}
	return nil
}

// ==========================================
// 2. 类型解析 (Type Resolution)
// ==========================================

// typeResult 一个类型（含嵌套类型）的第二遍产出
type typeResult struct {
	sorted *model.SortedType
	deps   *depCollector
	// supertypes 该类型及其嵌套类型的直接父类型
	supertypes []model.TypeID
}

// typeDependencies 依赖的其他主类型：成员体引用与继承结构，均折算到主类型
func (res *typeResult) typeDependencies(arena *model.Arena, self model.TypeID) []model.TypeID {
	var out []model.TypeID
	seen := map[model.TypeID]bool{self: true}
	add := func(id model.TypeID) {
		if id == model.NoType {
			return
		}
		p := arena.PrimaryType(id)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, id := range res.supertypes {
		add(id)
	}
	for _, ref := range res.deps.refs {
		add(arena.Owner(ref))
	}
	return out
}

// typeResolver 单个主类型（或局部类型）的第二遍状态
type typeResolver struct {
	s       *Session
	primary model.TypeID
	outer   *core.VariableContext
	frames  map[model.TypeID]*core.VariableContext
	graph   *core.DependencyGraph[model.MemberRef]
	rank    map[model.MemberRef]int
	res     *typeResult
}

// resolveType 构建类型及其嵌套类型的全部成员体并对成员做依赖排序。outer 为局部类型所在方法的变量帧。
func (s *Session) resolveType(id model.TypeID, outer *core.VariableContext) (*typeResult, error) {
	tr := &typeResolver{
		s:       s,
		primary: id,
		outer:   outer,
		frames:  make(map[model.TypeID]*core.VariableContext),
		graph:   core.NewDependencyGraph[model.MemberRef](),
		rank:    make(map[model.MemberRef]int),
		res:     &typeResult{deps: newDepCollector(s.reg, model.TypeRef(id))},
	}
	if err := tr.resolve(id); err != nil {
		return nil, errors.AddContext(err, errors.CtxType, s.reg.Type(id).FQN)
	}

	st := &model.SortedType{Primary: id}
	for _, g := range tr.graph.Sort(func(m model.MemberRef) int { return tr.rank[m] }) {
		st.Members = append(st.Members, g.Members...)
		if g.Cycle {
			st.MemberCycles = append(st.MemberCycles, g.Members)
		}
	}
	tr.res.sorted = st
	return tr.res, nil
}

type memberEntry struct {
	ref model.MemberRef
	loc *model.Location
}

func (tr *typeResolver) resolve(id model.TypeID) error {
	s := tr.s
	t := s.reg.Type(id)
	if !t.Transition(model.SignatureReady, model.BodyStarted) {
		return errors.New(errors.CodeInternal, "type not ready for body resolution").
			WithContext(errors.CtxType, t.FQN).
			WithContext(errors.CtxKind, t.State().String())
	}
	ti, err := s.reg.TypeInspection(id)
	if err != nil {
		return err
	}
	if site := s.site(id); site != nil && site.header != nil {
		tr.res.supertypes = append(tr.res.supertypes, site.header.supertypeIDs()...)
	}
	vc := s.typeFrame(id, tr.outer, tr.frames)

	var own []model.MemberRef
	for _, m := range tr.members(ti) {
		tr.rank[m.ref] = len(tr.rank)
		own = append(own, m.ref)
		var err error
		switch m.ref.Kind {
		case model.MemberField:
			err = tr.field(m.ref.Field, vc)
		case model.MemberMethod:
			err = tr.method(m.ref.Method, ti, vc)
		default:
			err = tr.resolve(m.ref.Type)
		}
		if err != nil {
			return err
		}
	}
	if id != tr.primary {
		deps := own
		if site := s.site(id); site != nil && site.header != nil {
			for _, sup := range site.header.supertypeIDs() {
				deps = append(deps, model.TypeRef(sup))
			}
		}
		tr.graph.AddNode(model.TypeRef(id), deps...)
	}
	t.Transition(model.BodyStarted, model.BodyReady)
	return nil
}

// members 字段、方法（含伴生方法）、初始化块与嵌套类型，按声明位置排列；合成成员位于类型声明处，排在最前
func (tr *typeResolver) members(ti *model.TypeInspection) []memberEntry {
	arena := tr.s.reg.Arena()
	var out []memberEntry
	for _, fid := range ti.Fields {
		var loc *model.Location
		if fi, ok := arena.Field(fid).Inspection.Get(); ok {
			loc = fi.Location
		}
		out = append(out, memberEntry{ref: model.FieldRef(fid), loc: loc})
	}
	for _, mid := range ti.AllMethods() {
		mi, ok := arena.Method(mid).Inspection.Get()
		if !ok {
			continue
		}
		out = append(out, memberEntry{ref: model.MethodRef(mid), loc: mi.Location})
		companions := make([]model.MethodID, 0, len(mi.Companions))
		for _, cid := range mi.Companions {
			companions = append(companions, cid)
		}
		slices.Sort(companions)
		for _, cid := range companions {
			var loc *model.Location
			if ci, ok := arena.Method(cid).Inspection.Get(); ok {
				loc = ci.Location
			}
			out = append(out, memberEntry{ref: model.MethodRef(cid), loc: loc})
		}
	}
	for _, sub := range ti.SubTypes {
		var loc *model.Location
		if si, ok := tr.s.reg.TryTypeInspection(sub); ok {
			loc = si.Location
		}
		out = append(out, memberEntry{ref: model.TypeRef(sub), loc: loc})
	}
	slices.SortStableFunc(out, func(a, b memberEntry) int { return compareLocation(a.loc, b.loc) })
	return out
}

func compareLocation(a, b *model.Location) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.StartLine != b.StartLine:
		return a.StartLine - b.StartLine
	}
	return a.StartColumn - b.StartColumn
}

// ==========================================
// 3. 成员体 (Member Bodies)
// ==========================================

func (tr *typeResolver) method(mid model.MethodID, ti *model.TypeInspection, vc *core.VariableContext) error {
	s := tr.s
	arena := s.reg.Arena()
	m := arena.Method(mid)
	ref := model.MethodRef(mid)
	site := s.methodSite(mid)
	mi, ok := m.Inspection.Get()
	if site == nil || !ok {
		tr.graph.AddNode(ref)
		return nil
	}
	fail := func(err error) error { return errors.AddContext(err, errors.CtxMethod, m.Name) }

	if site.kind == memberSynthetic {
		if site.body != nil {
			if err := m.Body.Set(site.body); err != nil {
				return fail(err)
			}
		}
		tr.graph.AddNode(ref, site.deps...)
		for _, d := range site.deps {
			tr.res.deps.ref(d)
		}
		return nil
	}

	body := site.node
	if site.kind == memberMethod {
		body = site.node.ChildByFieldName("body")
	}
	if body == nil {
		tr.graph.AddNode(ref)
		return nil
	}

	b := s.newBuilder(site, ref, mid, mi.IsStatic(), tr.outer)
	b.ret = mi.ReturnType
	f := frame{vars: vc.NewChild(), types: site.scope}
	for _, pid := range mi.Params {
		p := arena.Param(pid)
		if !f.vars.BindParameter(p) {
			s.env.Warn(DiagDuplicateVariable, mi.Location, p.Name, "parameter declared twice")
		}
	}
	blk, err := b.block(f, body)
	if err != nil {
		return fail(err)
	}
	if mi.Kind == model.KindCompactConstructor {
		loc := site.fc.Location(site.node)
		stmts, deps := s.componentAssignments(m.Owner, mi.Params, recordFields(arena, ti), loc)
		blk.Statements = append(blk.Statements, stmts...)
		for _, d := range deps {
			b.deps.add(model.Assign, d, loc)
		}
	}
	if err := m.Body.Set(blk); err != nil {
		return fail(err)
	}
	tr.graph.AddNode(ref, b.deps.refs...)
	tr.res.deps.absorb(b.deps)
	return nil
}

func recordFields(arena *model.Arena, ti *model.TypeInspection) []model.FieldID {
	var out []model.FieldID
	for _, fid := range ti.Fields {
		if fi, ok := arena.Field(fid).Inspection.Get(); ok && fi.RecordComponent {
			out = append(out, fid)
		}
	}
	return out
}

// field 没有初始化器（含记录组件）的字段写入 EmptyExpression
func (tr *typeResolver) field(fid model.FieldID, vc *core.VariableContext) error {
	s := tr.s
	f := s.reg.Arena().Field(fid)
	ref := model.FieldRef(fid)
	site := s.fieldSite(fid)
	fi, ok := f.Inspection.Get()
	fail := func(err error) error { return errors.AddContext(err, errors.CtxField, f.Name) }
	if site == nil || !ok {
		if err := f.Initializer.Set(&model.EmptyExpression{}); err != nil {
			return fail(err)
		}
		tr.graph.AddNode(ref)
		return nil
	}

	b := s.newBuilder(site, ref, model.NoMethod, fi.IsStatic(), tr.outer)
	fr := frame{vars: vc.NewChild(), types: site.scope}
	var init model.Expression = &model.EmptyExpression{}
	switch site.kind {
	case memberField:
		if v := site.node.ChildByFieldName("value"); v != nil {
			e, err := b.expression(fr, v, fi.Type)
			if err != nil {
				return fail(err)
			}
			init = e
		}
	case memberEnumConstant:
		e, err := b.enumConstant(fr, site.node)
		if err != nil {
			return fail(err)
		}
		init = e
	}
	if err := f.Initializer.Set(init); err != nil {
		return fail(err)
	}
	tr.graph.AddNode(ref, b.deps.refs...)
	tr.res.deps.absorb(b.deps)
	return nil
}

// enumConstant 枚举常量等价于对枚举构造器的调用；带类体的常量是以枚举为父类的匿名类
func (b *builder) enumConstant(f frame, n *sitter.Node) (model.Expression, error) {
	self := model.Of(b.owner)
	args, err := b.arguments(f, n.ChildByFieldName("arguments"))
	if err != nil {
		return nil, err
	}
	ch, ok := b.choose(f.types.ResolveConstructors(self, len(args)), args)
	if !ok {
		return nil, b.noCandidate(n.ChildByFieldName("name"), ConstructorName, len(args))
	}
	exprs, _, err := b.complete(f, ch, args, methodParams(ch.cand.Method), model.ParameterizedType{}, model.ParameterizedType{})
	if err != nil {
		return nil, err
	}
	cc := &model.ConstructorCall{Type: self, Constructor: ch.cand.Method, Args: exprs}
	b.deps.add(model.Create, model.MethodRef(ch.cand.Method), b.loc(n))
	if n.ChildByFieldName("body") != nil {
		id, sorted, err := b.localType(f, n, &self)
		if err != nil {
			return nil, err
		}
		cc.Anonymous, cc.Sorted = id, sorted
	}
	return cc, nil
}
