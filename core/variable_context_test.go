package core

import (
	"testing"

	"github.com/CodMac/jsema/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableContext_Shadowing(t *testing.T) {
	field := &model.FieldReference{Field: 1, Name: "x", Type: model.Int.PT()}
	param := &model.ParameterInfo{ID: 1, Name: "x"}
	local := &model.LocalVariable{Name: "x", Type: model.Int.PT()}

	typeFrame := NewVariableContext()
	typeFrame.BindField(field)
	methodFrame := typeFrame.NewChild()

	v, ok := methodFrame.Resolve("x")
	require.True(t, ok)
	assert.Same(t, field, v)

	methodFrame.BindParameter(param)
	v, _ = methodFrame.Resolve("x")
	assert.Same(t, param, v, "parameter shadows field")

	block := methodFrame.NewChild()
	block.BindLocal(local)
	v, _ = block.Resolve("x")
	assert.Same(t, local, v, "local shadows parameter")
	assert.True(t, block.IsLocal("x"))

	// 离开块后局部变量不可见
	v, _ = methodFrame.Resolve("x")
	assert.Same(t, param, v)
	v, _ = typeFrame.Resolve("x")
	assert.Same(t, field, v)
}

func TestVariableContext_LocalBeatsFieldInSameFrame(t *testing.T) {
	vc := NewVariableContext()
	field := &model.FieldReference{Field: 1, Name: "x"}
	local := &model.LocalVariable{Name: "x"}
	vc.BindField(field)
	vc.BindLocal(local)

	v, ok := vc.Resolve("x")
	require.True(t, ok)
	assert.Same(t, local, v)
}

func TestVariableContext_BindRules(t *testing.T) {
	vc := NewVariableContext()
	first := &model.LocalVariable{Name: "a"}
	second := &model.LocalVariable{Name: "a"}

	assert.True(t, vc.BindLocal(first))
	assert.False(t, vc.BindLocal(second), "same-frame rebind is ignored")
	v, _ := vc.Resolve("a")
	assert.Same(t, first, v)

	field := &model.FieldReference{Field: 3, Name: "f"}
	assert.True(t, vc.BindField(field))
	assert.False(t, vc.BindField(field))

	siblingA := vc.NewChild()
	siblingB := vc.NewChild()
	siblingA.BindLocal(&model.LocalVariable{Name: "tmp"})
	_, ok := siblingB.Resolve("tmp")
	assert.False(t, ok, "siblings do not see each other")
	_, ok = vc.Resolve("tmp")
	assert.False(t, ok)
}

func TestVariableContext_LocalsInBindOrder(t *testing.T) {
	vc := NewVariableContext()
	a := &model.LocalVariable{Name: "a"}
	b := &model.LocalVariable{Name: "b"}
	dup := &model.LocalVariable{Name: "a"}

	assert.True(t, vc.BindLocal(a))
	assert.True(t, vc.BindLocal(b))
	assert.False(t, vc.BindLocal(dup))
	assert.Equal(t, []*model.LocalVariable{a, b}, vc.Locals())

	child := vc.NewChild()
	assert.Empty(t, child.Locals(), "parent bindings are not listed")
}
