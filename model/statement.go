package model

// Statement 语义语句
type Statement interface {
	Location() *Location
	statement()
}

type StatementBase struct {
	Loc *Location
}

func (s StatementBase) Location() *Location { return s.Loc }
func (StatementBase) statement()            {}

func At(loc *Location) StatementBase { return StatementBase{Loc: loc} }

type Block struct {
	StatementBase
	Statements []Statement
}

type ExpressionStatement struct {
	StatementBase
	Expr Expression
}

// LocalVariableCreation 一条声明语句中的全部声明符，Inits 与 Vars 对齐，无初始化器为 nil
type LocalVariableCreation struct {
	StatementBase
	Vars  []*LocalVariable
	Inits []Expression
}

type If struct {
	StatementBase
	Condition Expression
	Then      Statement
	Else      Statement
}

type While struct {
	StatementBase
	Condition Expression
	Body      Statement
}

type DoWhile struct {
	StatementBase
	Body      Statement
	Condition Expression
}

type For struct {
	StatementBase
	Init      []Statement
	Condition Expression
	Updates   []Expression
	Body      Statement
}

type ForEach struct {
	StatementBase
	Var      *LocalVariable
	Iterable Expression
	Body     Statement
}

type Return struct {
	StatementBase
	Expr Expression
}

type Break struct {
	StatementBase
	Label string
}

type Continue struct {
	StatementBase
	Label string
}

type Throw struct {
	StatementBase
	Expr Expression
}

type Yield struct {
	StatementBase
	Expr Expression
}

type Assert struct {
	StatementBase
	Condition Expression
	Message   Expression
}

type Synchronized struct {
	StatementBase
	Lock Expression
	Body *Block
}

type Labeled struct {
	StatementBase
	Label string
	Body  Statement
}

type CatchClause struct {
	Var   *LocalVariable
	Types []ParameterizedType
	Body  *Block
}

// Try 资源声明只在 Body 内可见
type Try struct {
	StatementBase
	Resources []Statement
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block
}

// SwitchCase 旧式分组标签或新式箭头分支；Default 与 Labels 可同时出现
type SwitchCase struct {
	Labels  []Expression
	Default bool
	Pattern *LocalVariable
	Guard   Expression
	Arrow   bool
	// Arrow 分支为表达式时仅 Expr 非空
	Expr       Expression
	Statements []Statement
}

type Switch struct {
	StatementBase
	Selector Expression
	Cases    []*SwitchCase
}

type LocalClassDeclaration struct {
	StatementBase
	Type   TypeID
	Sorted *SortedType
}

type ExplicitConstructorInvocation struct {
	StatementBase
	Super       bool
	Constructor MethodID
	Args        []Expression
}

type Empty struct {
	StatementBase
}
