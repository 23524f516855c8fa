package core

import (
	"sync"
	"testing"

	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRegistry_GetOrCreateConcurrent(t *testing.T) {
	reg, _ := newTestRegistry()

	const workers = 16
	ids := make([]model.TypeID, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = reg.GetOrCreate("com.example.service.UserService")
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	typ := reg.Type(ids[0])
	assert.Equal(t, "UserService", typ.SimpleName)
	assert.Equal(t, "com.example.service", typ.PackageName)
}

func TestTypeRegistry_NestedAndPackages(t *testing.T) {
	reg, _ := newTestRegistry()
	reg.RegisterPackage("com.example")

	inner := reg.GetOrCreate("com.example.Outer.Inner")
	outer, ok := reg.Get("com.example.Outer")
	require.True(t, ok)
	assert.Equal(t, outer, reg.Type(inner).Enclosing)
	assert.Equal(t, outer, reg.Arena().PrimaryType(inner))

	assert.True(t, reg.IsPackagePrefix("com"))
	assert.True(t, reg.IsPackagePrefix("com.example"))
	assert.False(t, reg.IsPackagePrefix("org"))

	_, ok = reg.Get("com.example.Missing")
	assert.False(t, ok, "Get must not create")
}

func TestTypeRegistry_Visit(t *testing.T) {
	reg, _ := newTestRegistry()
	reg.GetOrCreate("com.example.b.Beta")
	reg.GetOrCreate("com.example.a.Alpha")
	reg.GetOrCreate("com.example.a.Alpha.Nested")
	reg.GetOrCreate("org.other.Gamma")

	var seen []string
	reg.Visit("com.example", func(fqn string, _ model.TypeID) {
		seen = append(seen, fqn)
	})
	assert.Equal(t, []string{"com.example.a.Alpha", "com.example.a.Alpha.Nested", "com.example.b.Beta"}, seen)
}

func TestTypeRegistry_DeclareSource(t *testing.T) {
	reg, _ := newTestRegistry()

	placeholder := reg.GetOrCreate("com.example.Foo")
	id, err := reg.DeclareSource("com.example", model.NoType, "Foo")
	require.NoError(t, err)
	assert.Equal(t, placeholder, id, "placeholder is claimed by the source declaration")
	assert.True(t, reg.IsSource(id))

	_, err = reg.DeclareSource("com.example", model.NoType, "Foo")
	assert.True(t, errors.IsCode(err, errors.CodeDuplicateDefinition))

	_, err = reg.TypeInspection(id)
	assert.True(t, errors.IsCode(err, errors.CodeNotSet), "source signature is not ready before pass 1")
	_, ok := reg.TryTypeInspection(id)
	assert.False(t, ok)

	local, err := reg.DeclareLocal(id, "1Helper")
	require.NoError(t, err)
	assert.Equal(t, "com.example.Foo$1Helper", reg.Type(local).FQN)
	assert.Equal(t, id, reg.Type(local).Enclosing)
}

func TestTypeRegistry_LoadType(t *testing.T) {
	reg, stub := newTestRegistry()

	id, err := reg.LoadType(StringFQN)
	require.NoError(t, err)
	again, err := reg.LoadType(StringFQN)
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, 1, stub.calls[StringFQN], "loaded types are not inspected twice")

	_, err = reg.LoadType("com.unknown.Thing")
	assert.True(t, errors.IsCode(err, errors.CodeUnresolvedType))

	// 首次读取非源码类型的签名时同步触发加载
	obj := reg.GetOrCreate(ObjectFQN)
	ti, err := reg.TypeInspection(obj)
	require.NoError(t, err)
	assert.Nil(t, ti.Parent)
}

func TestTypeRegistry_Primitives(t *testing.T) {
	reg, _ := newTestRegistry()
	id, ok := reg.Get("int")
	require.True(t, ok)
	assert.Equal(t, model.Int.TypeID(), id)
	ti, err := reg.TypeInspection(id)
	require.NoError(t, err)
	assert.Equal(t, model.NaturePrimitive, ti.Nature)
	assert.Equal(t, model.BodyReady, reg.Type(id).State())
}
