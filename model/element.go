package model

import "fmt"

// Location 源码位置
type Location struct {
	FilePath    string `json:"FilePath"`
	StartLine   int    `json:"StartLine"`
	EndLine     int    `json:"EndLine"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
}

func (l *Location) String() string {
	if l == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.StartLine, l.StartColumn)
}

// MemberKind 依赖图节点种类
type MemberKind string

const (
	MemberType   MemberKind = "TYPE"
	MemberMethod MemberKind = "METHOD"
	MemberField  MemberKind = "FIELD"
)

// MemberRef 可分析单元的句柄：类型、方法或字段。值可比较，直接作为图节点使用。
type MemberRef struct {
	Kind   MemberKind `json:"Kind"`
	Type   TypeID     `json:"Type,omitempty"`
	Method MethodID   `json:"Method,omitempty"`
	Field  FieldID    `json:"Field,omitempty"`
}

func TypeRef(id TypeID) MemberRef     { return MemberRef{Kind: MemberType, Type: id} }
func MethodRef(id MethodID) MemberRef { return MemberRef{Kind: MemberMethod, Method: id} }
func FieldRef(id FieldID) MemberRef   { return MemberRef{Kind: MemberField, Field: id} }

func (r MemberRef) String() string {
	switch r.Kind {
	case MemberMethod:
		return fmt.Sprintf("M%d", r.Method)
	case MemberField:
		return fmt.Sprintf("F%d", r.Field)
	default:
		return fmt.Sprintf("T%d", r.Type)
	}
}
