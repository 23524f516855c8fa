package core

import (
	"github.com/CodMac/jsema/model"
)

// IgnoreArgCount 方法引用等场景不限制参数个数
const IgnoreArgCount = -1

// Candidate 重载候选：距离越小越优先；TypeMap 是从接收者到声明类型的类型参数捕获
type Candidate struct {
	Method   model.MethodID
	Distance int
	TypeMap  map[model.TypeParamRef]model.ParameterizedType
	// Functional 接受函数式接口的参数下标
	Functional []int
}

// CompatibleArgCount 参数个数兼容：无参只接受 0 个实参；末参为可变参时至少 declared-1 个；否则严格相等
func CompatibleArgCount(declared int, varArgs bool, presented int) bool {
	if presented == IgnoreArgCount {
		return true
	}
	if declared == 0 {
		return presented == 0
	}
	if varArgs {
		return presented >= declared-1
	}
	return presented == declared
}

// ResolveCandidates 在接收者类型上收集名为 name 的方法：自身声明，父类链，接口（递归），
// 实例调用最后兜底 java.lang.Object。
func (tc *TypeContext) ResolveCandidates(receiver model.ParameterizedType, name string, argCount int, staticOnly bool) []Candidate {
	reg := tc.registry
	var out []Candidate
	visited := map[model.TypeID]bool{}
	receiver = reg.Bound(receiver)
	if receiver.Arrays > 0 {
		receiver = model.Of(reg.Object())
	}
	tc.collectCandidates(receiver, name, argCount, staticOnly, reg.CaptureMap(receiver), 0, visited, &out)
	if !staticOnly && !visited[reg.Object()] {
		tc.collectCandidates(model.Of(reg.Object()), name, argCount, false, nil, len(visited), visited, &out)
	}
	return out
}

func (tc *TypeContext) collectCandidates(pt model.ParameterizedType, name string, argCount int, staticOnly bool,
	capture map[model.TypeParamRef]model.ParameterizedType, distance int, visited map[model.TypeID]bool, out *[]Candidate) {
	reg := tc.registry
	if pt.Type == model.NoType || visited[pt.Type] {
		return
	}
	visited[pt.Type] = true
	ti, err := reg.TypeInspection(pt.Type)
	if err != nil {
		return
	}
	for _, mid := range ti.Methods {
		if c, ok := tc.candidate(mid, name, argCount, staticOnly, capture, distance); ok {
			*out = append(*out, c)
		}
	}
	if ti.Parent != nil {
		parent := ti.Parent.Substitute(capture)
		tc.collectCandidates(parent, name, argCount, staticOnly, mergeCapture(capture, reg.CaptureMap(parent)), distance+1, visited, out)
	}
	for _, i := range ti.Interfaces {
		iface := i.Substitute(capture)
		tc.collectCandidates(iface, name, argCount, staticOnly, mergeCapture(capture, reg.CaptureMap(iface)), distance+1, visited, out)
	}
}

func (tc *TypeContext) candidate(mid model.MethodID, name string, argCount int, staticOnly bool,
	capture map[model.TypeParamRef]model.ParameterizedType, distance int) (Candidate, bool) {
	arena := tc.registry.Arena()
	m := arena.Method(mid)
	if m == nil || m.Name != name {
		return Candidate{}, false
	}
	mi, ok := m.Inspection.Get()
	if !ok || (staticOnly && !mi.IsStatic()) {
		return Candidate{}, false
	}
	if !CompatibleArgCount(len(mi.Params), mi.VarArgs, argCount) {
		return Candidate{}, false
	}
	c := Candidate{Method: mid, Distance: distance, TypeMap: capture}
	for i, pid := range mi.Params {
		if pi, ok := arena.Param(pid).Inspection.Get(); ok && tc.registry.IsFunctionalInterface(pi.Type.Substitute(capture)) {
			c.Functional = append(c.Functional, i)
		}
	}
	return c, true
}

// ResolveConstructors 只看类型自身声明的构造器
func (tc *TypeContext) ResolveConstructors(pt model.ParameterizedType, argCount int) []Candidate {
	ti, err := tc.registry.TypeInspection(pt.Type)
	if err != nil {
		return nil
	}
	capture := tc.registry.CaptureMap(pt)
	var out []Candidate
	for _, mid := range ti.Constructors {
		m := tc.registry.Arena().Method(mid)
		if c, ok := tc.candidate(mid, m.Name, argCount, false, capture, 0); ok {
			out = append(out, c)
		}
	}
	return out
}

// ResolveUnqualified 无限定调用：从当前类型向外逐层查找，首个有同名方法的层即为结果。
// 跨过静态嵌套类型之后只接受静态候选；都没有时再看静态导入。
func (tc *TypeContext) ResolveUnqualified(current model.TypeID, name string, argCount int, staticContext bool) []Candidate {
	reg := tc.registry
	staticOnly := staticContext
	for id := current; id != model.NoType; {
		t := reg.Type(id)
		if cands := tc.ResolveCandidates(model.Of(id), name, argCount, staticOnly); len(cands) > 0 {
			return cands
		}
		if ti, ok := t.Inspection.Get(); ok && (ti.IsStatic() || ti.IsInterface() || ti.Nature == model.NatureEnum || ti.Nature == model.NatureRecord) {
			staticOnly = true
		}
		id = t.Enclosing
	}
	var out []Candidate
	for _, owner := range tc.StaticImportOwners(name) {
		out = append(out, tc.ResolveCandidates(model.Of(owner), name, argCount, true)...)
	}
	return out
}
