package java

import (
	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/model"
)

// Linker 由第一遍产出的签名推导结构关系，不依赖方法体
type Linker struct{}

func NewJavaLinker() *Linker {
	return &Linker{}
}

// LinkHierarchy 为每个源码类型（含嵌套类型）输出：
// 1. Type -> Parent / Interface (EXTEND / IMPLEMENT)
// 2. Type -> Member / SubType (CONTAIN)
// 3. 签名中的类型引用 (ANNOTATION / PARAMETER / RETURN / THROW)
func (l *Linker) LinkHierarchy(env *core.Environment, types []model.TypeID) []*model.DependencyRelation {
	ls := &linkState{reg: env.Registry, arena: env.Registry.Arena(), seen: make(map[linkKey]bool)}
	for _, id := range types {
		ls.linkType(id)
	}
	return ls.out
}

type linkKey struct {
	kind   model.DependencyType
	source model.MemberRef
	target model.MemberRef
}

type linkState struct {
	reg   *core.TypeRegistry
	arena *model.Arena
	seen  map[linkKey]bool
	out   []*model.DependencyRelation
}

func (ls *linkState) add(kind model.DependencyType, source, target model.MemberRef, loc *model.Location) {
	key := linkKey{kind: kind, source: source, target: target}
	if ls.seen[key] {
		return
	}
	ls.seen[key] = true
	ls.out = append(ls.out, &model.DependencyRelation{
		Type:       kind,
		Source:     source,
		Target:     target,
		SourceName: ls.arena.MemberName(source),
		TargetName: ls.arena.MemberName(target),
		Location:   loc,
		External:   !ls.reg.IsSource(ls.arena.Owner(target)),
	})
}

// addType 类型实参一并计入；原始类型、类型参数与 void 跳过
func (ls *linkState) addType(kind model.DependencyType, source model.MemberRef, pt model.ParameterizedType, loc *model.Location) {
	if pt.Param == nil && pt.Type != model.NoType {
		if t := ls.arena.Type(pt.Type); t != nil && !t.IsPrimitive() {
			ls.add(kind, source, model.TypeRef(pt.Type), loc)
		}
	}
	for _, arg := range pt.Args {
		ls.addType(kind, source, arg, loc)
	}
}

func (ls *linkState) annotations(source model.MemberRef, annos []model.Annotation, loc *model.Location) {
	for _, a := range annos {
		ls.add(model.RelAnnotation, source, model.TypeRef(a.Type), loc)
	}
}

func (ls *linkState) linkType(id model.TypeID) {
	ti, ok := ls.reg.TryTypeInspection(id)
	if !ok {
		return
	}
	self := model.TypeRef(id)
	loc := ti.Location

	if ti.Parent != nil {
		ls.addType(model.Extend, self, *ti.Parent, loc)
	}
	ifaceKind := model.Implement
	if ti.IsInterface() {
		ifaceKind = model.Extend
	}
	for _, iface := range ti.Interfaces {
		ls.addType(ifaceKind, self, iface, loc)
	}
	ls.annotations(self, ti.Annotations, loc)

	for _, fid := range ti.Fields {
		ref := model.FieldRef(fid)
		ls.add(model.Contain, self, ref, loc)
		if fi, ok := ls.arena.Field(fid).Inspection.Get(); ok {
			ls.annotations(ref, fi.Annotations, fi.Location)
		}
	}
	for _, mid := range ti.AllMethods() {
		ls.add(model.Contain, self, model.MethodRef(mid), loc)
		ls.linkMethod(mid)
	}
	for _, sub := range ti.SubTypes {
		ls.add(model.Contain, self, model.TypeRef(sub), loc)
		ls.linkType(sub)
	}
}

func (ls *linkState) linkMethod(mid model.MethodID) {
	mi, ok := ls.arena.Method(mid).Inspection.Get()
	if !ok || mi.Synthetic {
		return
	}
	ref := model.MethodRef(mid)
	loc := mi.Location
	ls.annotations(ref, mi.Annotations, loc)
	if !mi.IsConstructor() {
		ls.addType(model.RelReturn, ref, mi.ReturnType, loc)
	}
	for _, pid := range mi.Params {
		if pi, ok := ls.arena.Param(pid).Inspection.Get(); ok {
			ls.addType(model.Parameter, ref, pi.Type, loc)
			ls.annotations(ref, pi.Annotations, loc)
		}
	}
	for _, ex := range mi.Exceptions {
		ls.addType(model.RelThrow, ref, ex, loc)
	}
}
