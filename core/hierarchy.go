package core

import (
	"strconv"

	"github.com/CodMac/jsema/model"
)

// CaptureMap 类型实参到声明类型参数的映射；实参个数不符（原始类型）时为空
func (r *TypeRegistry) CaptureMap(pt model.ParameterizedType) map[model.TypeParamRef]model.ParameterizedType {
	if len(pt.Args) == 0 || pt.Param != nil {
		return nil
	}
	ti, err := r.TypeInspection(pt.Type)
	if err != nil || len(ti.TypeParameters) != len(pt.Args) {
		return nil
	}
	m := make(map[model.TypeParamRef]model.ParameterizedType, len(pt.Args))
	for i, tp := range ti.TypeParameters {
		m[tp.Ref] = pt.Args[i]
	}
	return m
}

// DirectSupertypes 父类在前、接口在后，类型实参已替换
func (r *TypeRegistry) DirectSupertypes(pt model.ParameterizedType) []model.ParameterizedType {
	if pt.Param != nil || pt.Arrays > 0 || pt.Type == model.NoType {
		return nil
	}
	ti, err := r.TypeInspection(pt.Type)
	if err != nil {
		return nil
	}
	capture := r.CaptureMap(pt)
	var out []model.ParameterizedType
	if ti.Parent != nil {
		out = append(out, ti.Parent.Substitute(capture))
	}
	for _, i := range ti.Interfaces {
		out = append(out, i.Substitute(capture))
	}
	return out
}

// FindSupertype 在 sub 的继承链中查找 target 类型（带替换后的实参）
func (r *TypeRegistry) FindSupertype(sub model.ParameterizedType, target model.TypeID) (model.ParameterizedType, bool) {
	visited := map[model.TypeID]bool{}
	var rec func(p model.ParameterizedType) (model.ParameterizedType, bool)
	rec = func(p model.ParameterizedType) (model.ParameterizedType, bool) {
		if p.Type == target {
			return p, true
		}
		if visited[p.Type] {
			return model.ParameterizedType{}, false
		}
		visited[p.Type] = true
		for _, s := range r.DirectSupertypes(p) {
			if found, ok := rec(s); ok {
				return found, true
			}
		}
		return model.ParameterizedType{}, false
	}
	return rec(sub)
}

// Bound 类型参数取第一个上界，没有上界为 Object
func (r *TypeRegistry) Bound(pt model.ParameterizedType) model.ParameterizedType {
	if pt.Param == nil {
		return pt
	}
	if tp := r.TypeParameter(*pt.Param); tp != nil && len(tp.Bounds) > 0 {
		return tp.Bounds[0].WithArrays(tp.Bounds[0].Arrays + pt.Arrays)
	}
	return model.Of(r.Object()).WithArrays(pt.Arrays)
}

// TypeParameter 根据引用找到声明
func (r *TypeRegistry) TypeParameter(ref model.TypeParamRef) *model.TypeParameter {
	var tps []model.TypeParameter
	if ref.Method != model.NoMethod {
		if m := r.arena.Method(ref.Method); m != nil {
			if mi, ok := m.Inspection.Get(); ok {
				tps = mi.TypeParameters
			}
		}
	} else if t := r.arena.Type(ref.Owner); t != nil {
		if ti, ok := t.Inspection.Get(); ok {
			tps = ti.TypeParameters
		}
	}
	if ref.Index >= 0 && ref.Index < len(tps) {
		return &tps[ref.Index]
	}
	return nil
}

// ==========================================
// 可赋值性 (Assignability)
// ==========================================

const (
	NotAssignable  = -1
	boxingPenalty  = 10
	unknownPenalty = 20
)

// AssignableDistance source 赋给 target 的代价，不可赋值返回 NotAssignable。
// 只做擦除层面的判断，不求解泛型约束。
func (r *TypeRegistry) AssignableDistance(target, source model.ParameterizedType) int {
	if source.IsNoType() || target.IsNoType() {
		return unknownPenalty
	}
	if source.Null {
		if target.IsPrimitive() {
			return NotAssignable
		}
		return 1
	}
	tp, sp := target.Primitive(), source.Primitive()
	switch {
	case tp != model.PrimitiveNone && sp != model.PrimitiveNone:
		return model.WideningDistance(sp, tp)
	case tp != model.PrimitiveNone:
		if source.Param != nil || source.Arrays > 0 {
			return NotAssignable
		}
		unboxed := model.UnboxedKind(r.arena.Type(source.Type).FQN)
		if unboxed == model.PrimitiveNone {
			return NotAssignable
		}
		if d := model.WideningDistance(unboxed, tp); d >= 0 {
			return boxingPenalty + d
		}
		return NotAssignable
	case sp != model.PrimitiveNone:
		if target.Param != nil {
			return boxingPenalty
		}
		if sp == model.Void {
			return NotAssignable
		}
		boxed := model.Of(r.GetOrCreate(sp.BoxedName()))
		if d := r.AssignableDistance(target, boxed); d >= 0 {
			return boxingPenalty + d
		}
		return NotAssignable
	}

	if target.Param != nil {
		if target.Arrays > 0 && source.Arrays < target.Arrays {
			return NotAssignable
		}
		return 1
	}
	if source.Param != nil {
		if r.IsObject(target.Type) && target.Arrays <= source.Arrays {
			return 1
		}
		return r.AssignableDistance(target, r.Bound(source))
	}
	if target.Arrays > 0 || source.Arrays > 0 {
		if target.Arrays == source.Arrays {
			if target.Type == source.Type {
				return 0
			}
			return r.AssignableDistance(target.WithArrays(0), source.WithArrays(0))
		}
		if target.Arrays == 0 && r.IsObject(target.Type) {
			return 1
		}
		return NotAssignable
	}
	if target.Type == source.Type {
		return 0
	}
	if d := r.supertypeDistance(source.Type, target.Type); d >= 0 {
		return d
	}
	if r.IsObject(target.Type) {
		return unknownPenalty
	}
	return NotAssignable
}

func (r *TypeRegistry) supertypeDistance(from, to model.TypeID) int {
	type item struct {
		id    model.TypeID
		depth int
	}
	visited := map[model.TypeID]bool{from: true}
	queue := []item{{from, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.id == to {
			return cur.depth
		}
		for _, s := range r.DirectSupertypes(model.Of(cur.id)) {
			if !visited[s.Type] {
				visited[s.Type] = true
				queue = append(queue, item{s.Type, cur.depth + 1})
			}
		}
	}
	return NotAssignable
}

// ==========================================
// 函数式接口 (Functional Interfaces)
// ==========================================

var objectMethodNames = map[string]int{"equals": 1, "hashCode": 0, "toString": 0}

// FunctionalMethod 函数式接口的唯一抽象方法，连同到该方法声明类型的捕获表
func (r *TypeRegistry) FunctionalMethod(pt model.ParameterizedType) (model.MethodID, map[model.TypeParamRef]model.ParameterizedType, bool) {
	if pt.Param != nil || pt.Arrays > 0 || pt.Type == model.NoType {
		return model.NoMethod, nil, false
	}
	ti, err := r.TypeInspection(pt.Type)
	if err != nil || ti.Nature != model.NatureInterface {
		return model.NoMethod, nil, false
	}

	type found struct {
		id      model.MethodID
		capture map[model.TypeParamRef]model.ParameterizedType
	}
	seen := map[string]bool{}
	var abstract []found
	visited := map[model.TypeID]bool{}
	var rec func(p model.ParameterizedType, capture map[model.TypeParamRef]model.ParameterizedType)
	rec = func(p model.ParameterizedType, capture map[model.TypeParamRef]model.ParameterizedType) {
		if visited[p.Type] {
			return
		}
		visited[p.Type] = true
		ti, err := r.TypeInspection(p.Type)
		if err != nil {
			return
		}
		for _, mid := range ti.Methods {
			m := r.arena.Method(mid)
			mi, ok := m.Inspection.Get()
			if !ok || mi.IsStatic() || mi.Modifiers.Has(model.ModDefault) || !mi.IsAbstract() {
				continue
			}
			if n, isObj := objectMethodNames[m.Name]; isObj && n == len(mi.Params) {
				continue
			}
			key := m.Name + "/" + strconv.Itoa(len(mi.Params))
			if seen[key] {
				continue
			}
			seen[key] = true
			abstract = append(abstract, found{mid, capture})
		}
		for _, s := range ti.Interfaces {
			sub := s.Substitute(capture)
			rec(sub, mergeCapture(capture, r.CaptureMap(sub)))
		}
	}
	rec(pt, r.CaptureMap(pt))
	if len(abstract) != 1 {
		return model.NoMethod, nil, false
	}
	return abstract[0].id, abstract[0].capture, true
}

func (r *TypeRegistry) IsFunctionalInterface(pt model.ParameterizedType) bool {
	_, _, ok := r.FunctionalMethod(pt)
	return ok
}

func mergeCapture(a, b map[model.TypeParamRef]model.ParameterizedType) map[model.TypeParamRef]model.ParameterizedType {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[model.TypeParamRef]model.ParameterizedType, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
