package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_PrimitivesHaveFixedIDs(t *testing.T) {
	a := NewArena()
	for _, k := range primitiveOrder {
		ti := a.Type(k.TypeID())
		require.NotNil(t, ti)
		assert.Equal(t, k.String(), ti.FQN)
		assert.Equal(t, k, ti.Primitive)
	}
	assert.Nil(t, a.Type(NoType))
}

func TestArena_PrimaryAndEnclosure(t *testing.T) {
	a := NewArena()
	outer := a.NewType("p.Outer", "p", "Outer", NoType)
	inner := a.NewType("p.Outer.Inner", "p", "Inner", outer.ID)
	deepest := a.NewType("p.Outer.Inner.Leaf", "p", "Leaf", inner.ID)

	assert.Equal(t, outer.ID, a.PrimaryType(deepest.ID))
	assert.True(t, a.IsEnclosedBy(deepest.ID, outer.ID))
	assert.False(t, a.IsEnclosedBy(outer.ID, inner.ID))
}

func TestParameterizedType_EqualityAndSubstitution(t *testing.T) {
	a := NewArena()
	list := a.NewType("java.util.List", "java.util", "List", NoType)
	str := a.NewType("java.lang.String", "java.lang", "String", NoType)

	e := TypeParamRef{Owner: list.ID, Index: 0, Name: "E"}
	listOfE := Of(list.ID, OfParam(e))
	listOfString := Of(list.ID, Of(str.ID))

	assert.False(t, listOfE.Equal(listOfString))
	got := listOfE.Substitute(map[TypeParamRef]ParameterizedType{e: Of(str.ID)})
	assert.True(t, got.Equal(listOfString))
	assert.Equal(t, "java.util.List<java.lang.String>", a.TypeString(got))

	arr := OfParam(e).WithArrays(1).Substitute(map[TypeParamRef]ParameterizedType{e: Of(str.ID).WithArrays(1)})
	assert.Equal(t, 2, arr.Arrays)
	assert.Equal(t, "java.lang.String[][]", a.Erasure(arr))

	assert.True(t, ParameterizedType{}.IsNoType())
	assert.False(t, NullType.IsNoType())
	assert.Equal(t, Int, Int.PT().Primitive())
	assert.Equal(t, PrimitiveNone, Int.PT().WithArrays(1).Primitive())
}

func TestOperators_Widening(t *testing.T) {
	assert.Equal(t, Double, WidestNumeric(Int, Double))
	assert.Equal(t, Int, WidestNumeric(Byte, Char))
	assert.Equal(t, Long, WidestNumeric(Short, Long))
	assert.Equal(t, PrimitiveNone, WidestNumeric(Boolean, Int))

	op, ok := BinaryOperator("+", Double)
	require.True(t, ok)
	assert.Equal(t, "double+", op.String())

	_, ok = BinaryOperator("&&", Int)
	assert.False(t, ok)

	assert.Equal(t, 2, WideningDistance(Int, Float))
	assert.Equal(t, -1, WideningDistance(Double, Int))
	assert.Equal(t, Int, UnboxedKind("java.lang.Integer"))
}

func TestParseCompanionName(t *testing.T) {
	cn, ok := ParseCompanionName("append$Modification$Len")
	require.True(t, ok)
	assert.Equal(t, CompanionName{Main: "append", Action: CompanionModification, Aspect: "Len"}, cn)
	assert.Equal(t, "append$Modification$Len", cn.String())

	cn, ok = ParseCompanionName("size$Invariant")
	require.True(t, ok)
	assert.Equal(t, CompanionInvariant, cn.Action)

	for _, name := range []string{"size", "size$Unknown", "$Value", "a$Value$", "a$Value$b$c"} {
		_, ok := ParseCompanionName(name)
		assert.False(t, ok, name)
	}
}
