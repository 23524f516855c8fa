package model

// Variable 变量作用域中可绑定的实体：局部变量、参数或字段引用
type Variable interface {
	VariableName() string
	VariableType() ParameterizedType
	variable()
}

type LocalKind int

const (
	LocalPlain LocalKind = iota
	LocalLambdaParam
	LocalPattern
	LocalResource
	LocalCatchParam
	LocalLoopVar
)

type LocalVariable struct {
	Name  string
	Type  ParameterizedType
	Kind  LocalKind
	Final bool
	// Owner 声明所在的方法；字段初始化器中为 NoMethod
	Owner MethodID
}

func (lv *LocalVariable) VariableName() string            { return lv.Name }
func (lv *LocalVariable) VariableType() ParameterizedType { return lv.Type }
func (*LocalVariable) variable()                          {}

func (p *ParameterInfo) VariableName() string { return p.Name }

// VariableType 签名尚未建立时为 NoType
func (p *ParameterInfo) VariableType() ParameterizedType {
	if pi, ok := p.Inspection.Get(); ok {
		return pi.Type
	}
	return ParameterizedType{}
}

func (*ParameterInfo) variable() {}

// FieldReference 字段访问；实例字段的 Scope 缺省为隐式 this
type FieldReference struct {
	Field  FieldID
	Name   string
	Type   ParameterizedType
	Static bool
	// Scope 显式的限定表达式，nil 表示隐式 this 或静态所属类型
	Scope Expression
}

func (f *FieldReference) VariableName() string            { return f.Name }
func (f *FieldReference) VariableType() ParameterizedType { return f.Type }
func (*FieldReference) variable()                         {}
