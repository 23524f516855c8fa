package model

import "strings"

type WildcardKind int

const (
	NoWildcard WildcardKind = iota
	WildcardUnbound
	WildcardExtends
	WildcardSuper
)

// TypeParamRef 类型参数的身份：属于某个类型（Method 为 0）或某个方法，按声明下标区分
type TypeParamRef struct {
	Owner  TypeID
	Method MethodID
	Index  int
	Name   string
}

type TypeParameter struct {
	Ref    TypeParamRef
	Bounds []ParameterizedType
}

// ParameterizedType 值类型：类型 + 类型实参 + 数组维度；或类型参数；或占位（NoType / null）
type ParameterizedType struct {
	Type     TypeID
	Param    *TypeParamRef
	Args     []ParameterizedType
	Arrays   int
	Wildcard WildcardKind
	Null     bool
}

var NullType = ParameterizedType{Null: true}

func Of(id TypeID, args ...ParameterizedType) ParameterizedType {
	return ParameterizedType{Type: id, Args: args}
}

func OfParam(ref TypeParamRef) ParameterizedType {
	r := ref
	return ParameterizedType{Param: &r}
}

func (p ParameterizedType) IsNoType() bool {
	return p.Type == NoType && p.Param == nil && !p.Null && p.Wildcard == NoWildcard
}

func (p ParameterizedType) IsTypeParameter() bool { return p.Param != nil }

// Primitive 非数组的基本类型返回其种类
func (p ParameterizedType) Primitive() PrimitiveKind {
	if p.Arrays == 0 && p.Param == nil && p.Type > NoType && int(p.Type) <= len(primitiveOrder) {
		return PrimitiveKind(p.Type)
	}
	return PrimitiveNone
}

func (p ParameterizedType) IsPrimitive() bool { return p.Primitive() != PrimitiveNone }

func (p ParameterizedType) IsVoid() bool { return p.Primitive() == Void }

func (p ParameterizedType) IsArray() bool { return p.Arrays > 0 }

func (p ParameterizedType) WithArrays(n int) ParameterizedType {
	q := p
	q.Arrays = n
	return q
}

func (p ParameterizedType) ElementType() ParameterizedType {
	if p.Arrays == 0 {
		return p
	}
	return p.WithArrays(p.Arrays - 1)
}

func (p ParameterizedType) Equal(o ParameterizedType) bool {
	if p.Type != o.Type || p.Arrays != o.Arrays || p.Null != o.Null || p.Wildcard != o.Wildcard {
		return false
	}
	if (p.Param == nil) != (o.Param == nil) {
		return false
	}
	if p.Param != nil && (p.Param.Owner != o.Param.Owner || p.Param.Method != o.Param.Method || p.Param.Index != o.Param.Index) {
		return false
	}
	if len(p.Args) != len(o.Args) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Substitute 用捕获表替换类型参数，数组维度叠加
func (p ParameterizedType) Substitute(m map[TypeParamRef]ParameterizedType) ParameterizedType {
	if len(m) == 0 {
		return p
	}
	if p.Param != nil {
		if r, ok := lookupParam(m, *p.Param); ok {
			r = r.WithArrays(r.Arrays + p.Arrays)
			if p.Wildcard != NoWildcard && r.Wildcard == NoWildcard {
				r.Wildcard = p.Wildcard
			}
			return r
		}
		return p
	}
	if len(p.Args) == 0 {
		return p
	}
	q := p
	q.Args = make([]ParameterizedType, len(p.Args))
	for i, a := range p.Args {
		q.Args[i] = a.Substitute(m)
	}
	return q
}

func lookupParam(m map[TypeParamRef]ParameterizedType, ref TypeParamRef) (ParameterizedType, bool) {
	for k, v := range m {
		if k.Owner == ref.Owner && k.Method == ref.Method && k.Index == ref.Index {
			return v, true
		}
	}
	return ParameterizedType{}, false
}

// Erasure 擦除后的名称，类型参数取其名字
func (a *Arena) Erasure(p ParameterizedType) string {
	var base string
	switch {
	case p.Null:
		base = "null"
	case p.Param != nil:
		base = p.Param.Name
	case p.Type == NoType:
		if p.Wildcard != NoWildcard {
			base = "?"
		} else {
			base = "<no type>"
		}
	default:
		base = a.typeName(p.Type)
	}
	return base + strings.Repeat("[]", p.Arrays)
}

// TypeString 带类型实参的完整描述
func (a *Arena) TypeString(p ParameterizedType) string {
	var sb strings.Builder
	switch p.Wildcard {
	case WildcardUnbound:
		if p.Type == NoType && p.Param == nil {
			return "?"
		}
	case WildcardExtends:
		sb.WriteString("? extends ")
	case WildcardSuper:
		sb.WriteString("? super ")
	}
	elem := p.WithArrays(0)
	elem.Args = nil
	sb.WriteString(a.Erasure(elem))
	if len(p.Args) > 0 {
		sb.WriteByte('<')
		for i, arg := range p.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(a.TypeString(arg))
		}
		sb.WriteByte('>')
	}
	sb.WriteString(strings.Repeat("[]", p.Arrays))
	return sb.String()
}
