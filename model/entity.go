package model

import (
	"strings"
	"sync"
	"sync/atomic"
)

// 实体句柄。0 表示"无"，因此零值结构天然不指向任何实体。
type (
	TypeID   int32
	MethodID int32
	FieldID  int32
	ParamID  int32
)

const (
	NoType   TypeID   = 0
	NoMethod MethodID = 0
	NoField  FieldID  = 0
)

// InspectionState 类型的两阶段检查状态机
type InspectionState int32

const (
	Uninspected InspectionState = iota
	SignatureStarted
	SignatureReady
	BodyStarted
	BodyReady
)

func (s InspectionState) String() string {
	switch s {
	case SignatureStarted:
		return "SIGNATURE_STARTED"
	case SignatureReady:
		return "SIGNATURE_READY"
	case BodyStarted:
		return "BODY_STARTED"
	case BodyReady:
		return "BODY_READY"
	}
	return "UNINSPECTED"
}

type TypeInfo struct {
	ID          TypeID
	FQN         string
	SimpleName  string
	PackageName string
	Enclosing   TypeID
	Primitive   PrimitiveKind

	Inspection Once[*TypeInspection]
	state      atomic.Int32
}

func (t *TypeInfo) State() InspectionState { return InspectionState(t.state.Load()) }

// Transition CAS 推进状态，失败说明有其他调用者抢先或状态不符
func (t *TypeInfo) Transition(from, to InspectionState) bool {
	return t.state.CompareAndSwap(int32(from), int32(to))
}

func (t *TypeInfo) IsPrimitive() bool { return t.Primitive != PrimitiveNone }

type MethodInfo struct {
	ID          MethodID
	Owner       TypeID
	Name        string
	Constructor bool

	Inspection Once[*MethodInspection]
	Body       Once[*Block]
}

type FieldInfo struct {
	ID    FieldID
	Owner TypeID
	Name  string

	Inspection  Once[*FieldInspection]
	Initializer Once[Expression]
}

type ParameterInfo struct {
	ID    ParamID
	Owner MethodID
	Index int
	Name  string

	Inspection Once[*ParameterInspection]
}

// Arena 持有所有实体，交叉引用一律通过 ID。
// 追加与读取都在锁内完成；实体本身创建后只读（Once 单元除外）。
type Arena struct {
	mu      sync.RWMutex
	types   []*TypeInfo
	methods []*MethodInfo
	fields  []*FieldInfo
	params  []*ParameterInfo
}

func NewArena() *Arena {
	a := &Arena{}
	for _, k := range primitiveOrder {
		t := a.NewType(k.String(), "", k.String(), NoType)
		t.Primitive = k
	}
	return a
}

func (a *Arena) NewType(fqn, packageName, simpleName string, enclosing TypeID) *TypeInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := &TypeInfo{
		ID:          TypeID(len(a.types) + 1),
		FQN:         fqn,
		SimpleName:  simpleName,
		PackageName: packageName,
		Enclosing:   enclosing,
	}
	a.types = append(a.types, t)
	return t
}

func (a *Arena) NewMethod(owner TypeID, name string, constructor bool) *MethodInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	m := &MethodInfo{ID: MethodID(len(a.methods) + 1), Owner: owner, Name: name, Constructor: constructor}
	a.methods = append(a.methods, m)
	return m
}

func (a *Arena) NewField(owner TypeID, name string) *FieldInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	f := &FieldInfo{ID: FieldID(len(a.fields) + 1), Owner: owner, Name: name}
	a.fields = append(a.fields, f)
	return f
}

func (a *Arena) NewParameter(owner MethodID, index int, name string) *ParameterInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := &ParameterInfo{ID: ParamID(len(a.params) + 1), Owner: owner, Index: index, Name: name}
	a.params = append(a.params, p)
	return p
}

func (a *Arena) Type(id TypeID) *TypeInfo {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if id <= 0 || int(id) > len(a.types) {
		return nil
	}
	return a.types[id-1]
}

func (a *Arena) Method(id MethodID) *MethodInfo {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if id <= 0 || int(id) > len(a.methods) {
		return nil
	}
	return a.methods[id-1]
}

func (a *Arena) Field(id FieldID) *FieldInfo {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if id <= 0 || int(id) > len(a.fields) {
		return nil
	}
	return a.fields[id-1]
}

func (a *Arena) Param(id ParamID) *ParameterInfo {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if id <= 0 || int(id) > len(a.params) {
		return nil
	}
	return a.params[id-1]
}

func (a *Arena) TypeCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.types)
}

// PrimaryType 沿 Enclosing 链找到最外层类型
func (a *Arena) PrimaryType(id TypeID) TypeID {
	for {
		t := a.Type(id)
		if t == nil || t.Enclosing == NoType {
			return id
		}
		id = t.Enclosing
	}
}

// IsEnclosedBy 判断 inner 是否（间接）嵌套在 outer 内，自身也算
func (a *Arena) IsEnclosedBy(inner, outer TypeID) bool {
	for id := inner; id != NoType; {
		if id == outer {
			return true
		}
		t := a.Type(id)
		if t == nil {
			return false
		}
		id = t.Enclosing
	}
	return false
}

// Owner 成员所属的类型；类型句柄返回自身
func (a *Arena) Owner(ref MemberRef) TypeID {
	switch ref.Kind {
	case MemberMethod:
		if m := a.Method(ref.Method); m != nil {
			return m.Owner
		}
	case MemberField:
		if f := a.Field(ref.Field); f != nil {
			return f.Owner
		}
	default:
		return ref.Type
	}
	return NoType
}

// MemberName 用于日志、诊断与导出的可读名称
func (a *Arena) MemberName(ref MemberRef) string {
	switch ref.Kind {
	case MemberMethod:
		return a.MethodFQN(ref.Method)
	case MemberField:
		if f := a.Field(ref.Field); f != nil {
			return a.typeName(f.Owner) + "." + f.Name
		}
	default:
		return a.typeName(ref.Type)
	}
	return ref.String()
}

// MethodFQN 形如 a.b.C.m(int,java.lang.String)
func (a *Arena) MethodFQN(id MethodID) string {
	m := a.Method(id)
	if m == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(a.typeName(m.Owner))
	sb.WriteByte('.')
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	if mi, ok := m.Inspection.Get(); ok {
		for i, pid := range mi.Params {
			if i > 0 {
				sb.WriteByte(',')
			}
			if pi, ok := a.Param(pid).Inspection.Get(); ok {
				if pi.VarArgs {
					sb.WriteString(a.Erasure(pi.Type.ElementType()))
					sb.WriteString("...")
				} else {
					sb.WriteString(a.Erasure(pi.Type))
				}
			}
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func (a *Arena) typeName(id TypeID) string {
	if t := a.Type(id); t != nil {
		return t.FQN
	}
	return "?"
}
