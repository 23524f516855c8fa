package java

import (
	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// frame 第二遍的作用域：变量帧与类型名作用域同步推进，局部类声明只在所在块内可见
type frame struct {
	vars  *core.VariableContext
	types *core.TypeContext
}

func (f frame) child() frame {
	return frame{vars: f.vars.NewChild(), types: f.types.NewChild()}
}

// ==========================================
// 依赖收集 (Dependency Collector)
// ==========================================

// depCollector 记录一个成员体内引用到的成员：去重后的 refs 进入成员依赖图，relations 原样导出
type depCollector struct {
	reg       *core.TypeRegistry
	source    model.MemberRef
	refs      []model.MemberRef
	seen      map[model.MemberRef]bool
	relations []*model.DependencyRelation
}

func newDepCollector(reg *core.TypeRegistry, source model.MemberRef) *depCollector {
	return &depCollector{reg: reg, source: source, seen: make(map[model.MemberRef]bool)}
}

func (d *depCollector) ref(target model.MemberRef) {
	if d.seen[target] {
		return
	}
	d.seen[target] = true
	d.refs = append(d.refs, target)
}

func (d *depCollector) add(kind model.DependencyType, target model.MemberRef, loc *model.Location) {
	d.ref(target)
	d.relations = append(d.relations, &model.DependencyRelation{
		Type:     kind,
		Source:   d.source,
		Target:   target,
		Location: loc,
		External: !d.reg.IsSource(d.reg.Arena().Owner(target)),
	})
}

// absorb 并入局部类型成员的依赖；关系保留原来的来源成员
func (d *depCollector) absorb(o *depCollector) {
	for _, r := range o.refs {
		d.ref(r)
	}
	d.relations = append(d.relations, o.relations...)
}

// ==========================================
// 成员体构建上下文 (Body Builder)
// ==========================================

// builder 构建单个成员的方法体或初始化器。只在解析线程内使用。
type builder struct {
	s      *Session
	reg    *core.TypeRegistry
	arena  *model.Arena
	fc     *core.FileContext
	owner  model.TypeID
	method model.MethodID
	static bool
	// ret 当前方法或 lambda 的返回类型，作为 return 表达式的目标类型
	ret  model.ParameterizedType
	deps *depCollector
	// yields switch 表达式中 yield 的值类型
	yields *[]model.ParameterizedType
	// outer 局部类型所在方法的变量帧
	outer *core.VariableContext
}

func (s *Session) newBuilder(site *memberSite, source model.MemberRef, method model.MethodID, static bool, outer *core.VariableContext) *builder {
	return &builder{
		s:      s,
		reg:    s.reg,
		arena:  s.reg.Arena(),
		fc:     site.fc,
		owner:  site.owner,
		method: method,
		static: static,
		deps:   newDepCollector(s.reg, source),
		outer:  outer,
	}
}

func (b *builder) loc(n *sitter.Node) *model.Location { return b.fc.Location(n) }

func (b *builder) text(n *sitter.Node) string { return b.fc.Text(n) }

func (b *builder) parseType(f frame, n *sitter.Node) (model.ParameterizedType, error) {
	return typeParser{reg: b.reg, fc: b.fc}.parse(f.types, n)
}

func (b *builder) fail(code errors.ErrorCode, n *sitter.Node, msg string) *errors.DomainError {
	return errors.New(code, msg).
		WithContext(errors.CtxName, b.text(n)).
		WithContext(errors.CtxKind, n.Kind()).
		WithContext(errors.CtxPath, b.fc.FilePath).
		WithContext(errors.CtxLine, b.loc(n).StartLine)
}

func (b *builder) unsupported(n *sitter.Node) error {
	return b.fail(errors.CodeUnsupportedConstruct, n, "unsupported construct")
}

// typeFrame 类型体帧：绑定该类型自身声明的字段。外层类型的帧在外，局部类型接到所在方法的帧上。
func (s *Session) typeFrame(id model.TypeID, outer *core.VariableContext, cache map[model.TypeID]*core.VariableContext) *core.VariableContext {
	if vc, ok := cache[id]; ok {
		return vc
	}
	var parent *core.VariableContext
	t := s.reg.Type(id)
	site := s.site(id)
	switch {
	case site != nil && site.local:
		parent = outer
	case t.Enclosing != model.NoType:
		parent = s.typeFrame(t.Enclosing, outer, cache)
	}
	var vc *core.VariableContext
	if parent != nil {
		vc = parent.NewChild()
	} else {
		vc = core.NewVariableContext()
	}
	if ti, ok := t.Inspection.Get(); ok {
		arena := s.reg.Arena()
		for _, fid := range ti.Fields {
			f := arena.Field(fid)
			fi, ok := f.Inspection.Get()
			if !ok {
				continue
			}
			vc.BindField(&model.FieldReference{Field: fid, Name: f.Name, Type: fi.Type, Static: fi.IsStatic()})
		}
	}
	cache[id] = vc
	return vc
}

// ==========================================
// 成员查找 (Member Lookup)
// ==========================================

// findField 在类型及其父类型中查找字段，返回字段所在层的捕获表
func (b *builder) findField(pt model.ParameterizedType, name string) (model.FieldID, map[model.TypeParamRef]model.ParameterizedType, bool) {
	visited := map[model.TypeID]bool{}
	var rec func(p model.ParameterizedType) (model.FieldID, map[model.TypeParamRef]model.ParameterizedType, bool)
	rec = func(p model.ParameterizedType) (model.FieldID, map[model.TypeParamRef]model.ParameterizedType, bool) {
		if p.Type == model.NoType || visited[p.Type] {
			return model.NoField, nil, false
		}
		visited[p.Type] = true
		ti, err := b.reg.TypeInspection(p.Type)
		if err != nil {
			return model.NoField, nil, false
		}
		for _, fid := range ti.Fields {
			if b.arena.Field(fid).Name == name {
				return fid, b.reg.CaptureMap(p), true
			}
		}
		for _, sup := range b.reg.DirectSupertypes(p) {
			if fid, capture, ok := rec(sup); ok {
				return fid, capture, true
			}
		}
		return model.NoField, nil, false
	}
	return rec(b.reg.Bound(pt))
}

func (b *builder) fieldReference(fid model.FieldID, capture map[model.TypeParamRef]model.ParameterizedType, scope model.Expression) *model.FieldReference {
	f := b.arena.Field(fid)
	fi, _ := f.Inspection.Get()
	ref := &model.FieldReference{Field: fid, Name: f.Name, Scope: scope}
	if fi != nil {
		ref.Type = fi.Type.Substitute(capture)
		ref.Static = fi.IsStatic()
	}
	return ref
}

// unqualifiedField 当前类型及外层类型的继承字段，最后看静态导入
func (b *builder) unqualifiedField(f frame, name string) (*model.FieldReference, bool) {
	for id := b.owner; id != model.NoType; id = b.reg.Type(id).Enclosing {
		if fid, capture, ok := b.findField(model.Of(id), name); ok {
			return b.fieldReference(fid, capture, nil), true
		}
	}
	for _, owner := range f.types.StaticImportOwners(name) {
		if fid, capture, ok := b.findField(model.Of(owner), name); ok {
			return b.fieldReference(fid, capture, nil), true
		}
	}
	return nil, false
}

// ==========================================
// 类型推断辅助 (Inference Helpers)
// ==========================================

// unwild 通配符取其边界，无界通配符为 Object
func (b *builder) unwild(pt model.ParameterizedType) model.ParameterizedType {
	if pt.Wildcard == model.NoWildcard {
		return pt
	}
	if pt.Type == model.NoType && pt.Param == nil {
		return model.Of(b.reg.Object())
	}
	q := pt
	q.Wildcard = model.NoWildcard
	return q
}

func (b *builder) boxed(pt model.ParameterizedType) model.ParameterizedType {
	if k := pt.Primitive(); k != model.PrimitiveNone && k != model.Void {
		return model.Of(b.reg.GetOrCreate(k.BoxedName()))
	}
	return pt
}

// kindOf 基本类型或可拆箱的包装类型对应的基本类型
func (b *builder) kindOf(pt model.ParameterizedType) model.PrimitiveKind {
	if k := pt.Primitive(); k != model.PrimitiveNone {
		return k
	}
	if pt.Param != nil || pt.Arrays > 0 || pt.Type == model.NoType {
		return model.PrimitiveNone
	}
	return model.UnboxedKind(b.reg.Type(pt.Type).FQN)
}

// unify 把形参类型与实参类型对齐，为 free 接受的类型参数记下首个推断结果
func (b *builder) unify(formal, actual model.ParameterizedType, free func(model.TypeParamRef) bool, out map[model.TypeParamRef]model.ParameterizedType) {
	if actual.IsNoType() || actual.Null {
		return
	}
	if formal.Param != nil {
		ref := *formal.Param
		if !free(ref) || actual.Arrays < formal.Arrays {
			return
		}
		v := b.boxed(b.unwild(actual.WithArrays(actual.Arrays - formal.Arrays)))
		for k := range out {
			if k.Owner == ref.Owner && k.Method == ref.Method && k.Index == ref.Index {
				return
			}
		}
		out[ref] = v
		return
	}
	if formal.Arrays > 0 {
		if actual.Arrays > 0 {
			b.unify(formal.ElementType(), actual.ElementType(), free, out)
		}
		return
	}
	if len(formal.Args) == 0 {
		return
	}
	actual = b.reg.Bound(b.unwild(actual))
	sup, ok := b.reg.FindSupertype(actual, formal.Type)
	if !ok || len(sup.Args) != len(formal.Args) {
		return
	}
	for i := range formal.Args {
		b.unify(formal.Args[i], sup.Args[i], free, out)
	}
}

func methodParams(method model.MethodID) func(model.TypeParamRef) bool {
	return func(ref model.TypeParamRef) bool { return method != model.NoMethod && ref.Method == method }
}

func typeParams(owner model.TypeID) func(model.TypeParamRef) bool {
	return func(ref model.TypeParamRef) bool { return ref.Method == model.NoMethod && ref.Owner == owner }
}

func mergeTypeMaps(maps ...map[model.TypeParamRef]model.ParameterizedType) map[model.TypeParamRef]model.ParameterizedType {
	out := make(map[model.TypeParamRef]model.ParameterizedType)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// returnedType lambda 块体中第一个带值 return 的类型
func returnedType(st model.Statement) (model.ParameterizedType, bool) {
	switch s := st.(type) {
	case *model.Return:
		if s.Expr != nil {
			return s.Expr.ReturnType(), true
		}
	case *model.Block:
		if s == nil {
			return model.ParameterizedType{}, false
		}
		for _, c := range s.Statements {
			if pt, ok := returnedType(c); ok {
				return pt, true
			}
		}
	case *model.If:
		if pt, ok := returnedType(s.Then); ok {
			return pt, true
		}
		if s.Else != nil {
			return returnedType(s.Else)
		}
	case *model.While:
		return returnedType(s.Body)
	case *model.DoWhile:
		return returnedType(s.Body)
	case *model.For:
		return returnedType(s.Body)
	case *model.ForEach:
		return returnedType(s.Body)
	case *model.Labeled:
		return returnedType(s.Body)
	case *model.Synchronized:
		return returnedType(s.Body)
	case *model.Try:
		if pt, ok := returnedType(s.Body); ok {
			return pt, true
		}
		for _, c := range s.Catches {
			if pt, ok := returnedType(c.Body); ok {
				return pt, true
			}
		}
	case *model.Switch:
		for _, c := range s.Cases {
			for _, st := range c.Statements {
				if pt, ok := returnedType(st); ok {
					return pt, true
				}
			}
		}
	}
	return model.ParameterizedType{}, false
}
