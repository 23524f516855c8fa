package model

// Expression 语义表达式。变体集合封闭，只能在本包内扩展。
type Expression interface {
	ReturnType() ParameterizedType
	expression()
}

type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitLong
	LitFloat
	LitDouble
	LitBoolean
	LitChar
	LitString
	LitNull
)

type Literal struct {
	Kind  LiteralKind
	Value string
	Type  ParameterizedType
}

// VariableExpression 读取局部变量、参数或字段
type VariableExpression struct {
	Var Variable
}

// ArrayLength arr.length
type ArrayLength struct {
	Array Expression
}

type ArrayAccess struct {
	Array Expression
	Index Expression
	Type  ParameterizedType
}

type IncDec int

const (
	NoIncDec IncDec = iota
	PreIncrement
	PreDecrement
	PostIncrement
	PostDecrement
)

// Assignment 普通赋值 Operator 为 nil；复合赋值与 ++/-- 携带已解析的二元运算符
type Assignment struct {
	Target   Expression
	Value    Expression
	Operator *Operator
	IncDec   IncDec
}

type BinaryOperation struct {
	Operator *Operator
	Lhs, Rhs Expression
	Type     ParameterizedType
}

type UnaryOperation struct {
	Operator *Operator
	Operand  Expression
}

type Cast struct {
	Type ParameterizedType
	Expr Expression
}

type InstanceOf struct {
	Expr    Expression
	Type    ParameterizedType
	Pattern *LocalVariable
	Boolean ParameterizedType

	// Bindings 模式引入的全部变量，记录模式的各组件也在其中
	Bindings []*LocalVariable
}

type Conditional struct {
	Condition Expression
	Then      Expression
	Else      Expression
	Type      ParameterizedType
}

// MethodCall Object 为 nil 时是对当前类型（或静态导入）的无限定调用
type MethodCall struct {
	Object Expression
	Method MethodID
	Args   []Expression
	Type   ParameterizedType
	Static bool
}

// ConstructorCall new T(...)；匿名类的 Anonymous 指向合成类型
type ConstructorCall struct {
	Type        ParameterizedType
	Constructor MethodID
	Args        []Expression
	Anonymous   TypeID
	Sorted      *SortedType
}

type ArrayCreation struct {
	Type        ParameterizedType
	Dimensions  []Expression
	Initializer *ArrayInitializer
}

type ArrayInitializer struct {
	Values []Expression
	Type   ParameterizedType
}

type Lambda struct {
	Params []*LocalVariable
	// 表达式体与块体二选一
	Expr  Expression
	Block *Block
	Type  ParameterizedType
	// Method 函数式接口的唯一抽象方法
	Method MethodID
}

type MethodReference struct {
	Scope       Expression
	Method      MethodID
	Constructor bool
	Type        ParameterizedType
}

type This struct {
	Type  ParameterizedType
	Super bool
}

// TypeExpression 作为静态调用或静态字段访问限定符的类型名
type TypeExpression struct {
	Type ParameterizedType
}

type ClassLiteral struct {
	Target ParameterizedType
	Type   ParameterizedType
}

type SwitchExpression struct {
	Selector Expression
	Cases    []*SwitchCase
	Type     ParameterizedType
}

// EmptyExpression 没有初始化器的字段
type EmptyExpression struct{}

func (e *Literal) ReturnType() ParameterizedType            { return e.Type }
func (e *VariableExpression) ReturnType() ParameterizedType { return e.Var.VariableType() }
func (e *ArrayLength) ReturnType() ParameterizedType        { return Int.PT() }
func (e *ArrayAccess) ReturnType() ParameterizedType        { return e.Type }
func (e *Assignment) ReturnType() ParameterizedType         { return e.Target.ReturnType() }
func (e *BinaryOperation) ReturnType() ParameterizedType    { return e.Type }
func (e *UnaryOperation) ReturnType() ParameterizedType {
	if e.Operator != nil && e.Operator.Result != PrimitiveNone {
		return e.Operator.Result.PT()
	}
	return e.Operand.ReturnType()
}
func (e *Cast) ReturnType() ParameterizedType             { return e.Type }
func (e *InstanceOf) ReturnType() ParameterizedType       { return Boolean.PT() }
func (e *Conditional) ReturnType() ParameterizedType      { return e.Type }
func (e *MethodCall) ReturnType() ParameterizedType       { return e.Type }
func (e *ConstructorCall) ReturnType() ParameterizedType  { return e.Type }
func (e *ArrayCreation) ReturnType() ParameterizedType    { return e.Type }
func (e *ArrayInitializer) ReturnType() ParameterizedType { return e.Type }
func (e *Lambda) ReturnType() ParameterizedType           { return e.Type }
func (e *MethodReference) ReturnType() ParameterizedType  { return e.Type }
func (e *This) ReturnType() ParameterizedType             { return e.Type }
func (e *TypeExpression) ReturnType() ParameterizedType   { return e.Type }
func (e *ClassLiteral) ReturnType() ParameterizedType     { return e.Type }
func (e *SwitchExpression) ReturnType() ParameterizedType { return e.Type }
func (e *EmptyExpression) ReturnType() ParameterizedType  { return ParameterizedType{} }

func (*Literal) expression()            {}
func (*VariableExpression) expression() {}
func (*ArrayLength) expression()        {}
func (*ArrayAccess) expression()        {}
func (*Assignment) expression()         {}
func (*BinaryOperation) expression()    {}
func (*UnaryOperation) expression()     {}
func (*Cast) expression()               {}
func (*InstanceOf) expression()         {}
func (*Conditional) expression()        {}
func (*MethodCall) expression()         {}
func (*ConstructorCall) expression()    {}
func (*ArrayCreation) expression()      {}
func (*ArrayInitializer) expression()   {}
func (*Lambda) expression()             {}
func (*MethodReference) expression()    {}
func (*This) expression()               {}
func (*TypeExpression) expression()     {}
func (*ClassLiteral) expression()       {}
func (*SwitchExpression) expression()   {}
func (*EmptyExpression) expression()    {}
