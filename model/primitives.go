package model

import "fmt"

// PrimitiveKind 基本类型。取值与 NewArena 预注册的 TypeID 一一对应。
type PrimitiveKind int

const (
	PrimitiveNone PrimitiveKind = iota
	Void
	Boolean
	Byte
	Short
	Char
	Int
	Long
	Float
	Double
)

var primitiveOrder = []PrimitiveKind{Void, Boolean, Byte, Short, Char, Int, Long, Float, Double}

var primitiveNames = map[PrimitiveKind]string{
	Void: "void", Boolean: "boolean", Byte: "byte", Short: "short", Char: "char",
	Int: "int", Long: "long", Float: "float", Double: "double",
}

var boxedNames = map[PrimitiveKind]string{
	Void:    "java.lang.Void",
	Boolean: "java.lang.Boolean",
	Byte:    "java.lang.Byte",
	Short:   "java.lang.Short",
	Char:    "java.lang.Character",
	Int:     "java.lang.Integer",
	Long:    "java.lang.Long",
	Float:   "java.lang.Float",
	Double:  "java.lang.Double",
}

func (k PrimitiveKind) String() string {
	if n, ok := primitiveNames[k]; ok {
		return n
	}
	return "none"
}

// TypeID 基本类型在每个 Arena 中的固定句柄
func (k PrimitiveKind) TypeID() TypeID { return TypeID(k) }

func (k PrimitiveKind) PT() ParameterizedType { return ParameterizedType{Type: k.TypeID()} }

func (k PrimitiveKind) BoxedName() string { return boxedNames[k] }

func (k PrimitiveKind) IsNumeric() bool { return k >= Byte && k <= Double }

func (k PrimitiveKind) IsIntegral() bool { return k >= Byte && k <= Long }

func PrimitiveByName(name string) (PrimitiveKind, bool) {
	for k, n := range primitiveNames {
		if n == name {
			return k, true
		}
	}
	return PrimitiveNone, false
}

// UnboxedKind java.lang.Integer -> int，非包装类型返回 PrimitiveNone
func UnboxedKind(fqn string) PrimitiveKind {
	for k, n := range boxedNames {
		if n == fqn && k != Void {
			return k
		}
	}
	return PrimitiveNone
}

// ==========================================
// 数值提升 (Numeric Promotion)
// ==========================================

// 加宽全序：double > float > long > int > char/short/byte
func numericRank(k PrimitiveKind) int {
	switch k {
	case Double:
		return 4
	case Float:
		return 3
	case Long:
		return 2
	case Int:
		return 1
	case Char, Short, Byte:
		return 0
	}
	return -1
}

// WidestNumeric 二元数值提升，byte/short/char 一律提升为 int
func WidestNumeric(a, b PrimitiveKind) PrimitiveKind {
	if !a.IsNumeric() || !b.IsNumeric() {
		return PrimitiveNone
	}
	w := a
	if numericRank(b) > numericRank(a) {
		w = b
	}
	return UnaryPromotion(w)
}

func UnaryPromotion(k PrimitiveKind) PrimitiveKind {
	if numericRank(k) == 0 {
		return Int
	}
	return k
}

var wideningTargets = map[PrimitiveKind][]PrimitiveKind{
	Byte:  {Short, Int, Long, Float, Double},
	Short: {Int, Long, Float, Double},
	Char:  {Int, Long, Float, Double},
	Int:   {Long, Float, Double},
	Long:  {Float, Double},
	Float: {Double},
}

// WideningDistance from 可加宽为 to 时返回步数（相同为 0），否则 -1
func WideningDistance(from, to PrimitiveKind) int {
	if from == to {
		return 0
	}
	for i, t := range wideningTargets[from] {
		if t == to {
			return i + 1
		}
	}
	return -1
}

// ==========================================
// 内置运算符 (Built-in Operators)
// ==========================================

type OperatorFamily int

const (
	Arithmetic OperatorFamily = iota
	Comparison
	Equality
	Logical
	Bitwise
	Shift
	StringConcat
	ReferenceEquality
	UnaryArithmetic
	Complement
	Not
)

type Operator struct {
	Symbol  string
	Family  OperatorFamily
	Operand PrimitiveKind
	// Result 为 PrimitiveNone 时结果是 java.lang.String
	Result PrimitiveKind
}

func (o *Operator) String() string {
	switch o.Family {
	case StringConcat:
		return "String" + o.Symbol
	case ReferenceEquality:
		return "Object" + o.Symbol
	}
	return fmt.Sprintf("%s%s", o.Operand, o.Symbol)
}

var (
	StringConcatOperator = &Operator{Symbol: "+", Family: StringConcat}
	ReferenceEquals      = &Operator{Symbol: "==", Family: ReferenceEquality, Result: Boolean}
	ReferenceNotEquals   = &Operator{Symbol: "!=", Family: ReferenceEquality, Result: Boolean}
)

type operatorKey struct {
	symbol  string
	operand PrimitiveKind
	unary   bool
}

var operatorTable = map[operatorKey]*Operator{}

func register(unary bool, family OperatorFamily, result func(PrimitiveKind) PrimitiveKind, operands []PrimitiveKind, symbols ...string) {
	for _, s := range symbols {
		for _, k := range operands {
			operatorTable[operatorKey{s, k, unary}] = &Operator{Symbol: s, Family: family, Operand: k, Result: result(k)}
		}
	}
}

func init() {
	numeric := []PrimitiveKind{Int, Long, Float, Double}
	integral := []PrimitiveKind{Int, Long}
	same := func(k PrimitiveKind) PrimitiveKind { return k }
	boolean := func(PrimitiveKind) PrimitiveKind { return Boolean }

	register(false, Arithmetic, same, numeric, "+", "-", "*", "/", "%")
	register(false, Comparison, boolean, numeric, "<", ">", "<=", ">=")
	register(false, Equality, boolean, append(numeric, Boolean), "==", "!=")
	register(false, Logical, boolean, []PrimitiveKind{Boolean}, "&&", "||")
	register(false, Bitwise, same, append(integral, Boolean), "&", "|", "^")
	register(false, Shift, same, integral, "<<", ">>", ">>>")
	register(true, UnaryArithmetic, same, numeric, "+", "-")
	register(true, Complement, same, integral, "~")
	register(true, Not, boolean, []PrimitiveKind{Boolean}, "!")
}

func BinaryOperator(symbol string, operand PrimitiveKind) (*Operator, bool) {
	op, ok := operatorTable[operatorKey{symbol, operand, false}]
	return op, ok
}

func UnaryOperator(symbol string, operand PrimitiveKind) (*Operator, bool) {
	op, ok := operatorTable[operatorKey{symbol, operand, true}]
	return op, ok
}
