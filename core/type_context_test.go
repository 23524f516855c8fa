package core

import (
	"testing"

	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeContext_ImportPriority(t *testing.T) {
	reg, _ := newTestRegistry()
	explicit := declareClass(reg, "com.a", "List", nil)
	wildcard := declareClass(reg, "com.b", "List", nil)
	declareClass(reg, "com.b", "Map", nil)

	unit := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")
	unit.AddWildcardImport("com.b")
	unit.AddExplicitImport("List", explicit)

	nt, err := unit.Resolve("List")
	require.NoError(t, err)
	assert.Equal(t, explicit, nt.Type)
	assert.NotEqual(t, wildcard, nt.Type)

	// 通配导入只补空缺
	nt, err = unit.Resolve("Map")
	require.NoError(t, err)
	assert.Equal(t, "com.b.Map", reg.Type(nt.Type).FQN)

	// 显式导入晚于通配命中也会覆盖
	other := declareClass(reg, "com.c", "Map", nil)
	unit.AddExplicitImport("Map", other)
	nt, _ = unit.Resolve("Map")
	assert.Equal(t, other, nt.Type)
}

func TestTypeContext_PackageAndJavaLang(t *testing.T) {
	reg, _ := newTestRegistry()
	sibling := declareClass(reg, "com.app", "Helper", nil)

	unit := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")
	body := unit.NewTypeBodyContext(sibling).NewChild()

	nt, err := body.Resolve("Helper")
	require.NoError(t, err)
	assert.Equal(t, sibling, nt.Type)

	nt, err = body.Resolve("String")
	require.NoError(t, err)
	assert.Equal(t, StringFQN, reg.Type(nt.Type).FQN)

	_, ok := body.Lookup("Nope")
	assert.False(t, ok, "probing never fails")

	_, err = body.Resolve("Nope")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnresolvedName))
}

func TestTypeContext_MemberTypesAndTypeParameters(t *testing.T) {
	reg, _ := newTestRegistry()
	base := declareClass(reg, "com.app", "Base", nil)
	entry, err := reg.DeclareSource("com.app", base, "Entry")
	require.NoError(t, err)
	_ = reg.Type(entry).Inspection.Set(model.NewTypeInspectionBuilder(model.NatureClass).Build())
	derived := declareClass(reg, "com.app", "Derived", func(_ model.TypeID, b *model.TypeInspectionBuilder) {
		b.SetParent(model.Of(base))
	})

	unit := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")
	body := unit.NewTypeBodyContext(derived)

	nt, err := body.Resolve("Entry")
	require.NoError(t, err, "member types are inherited")
	assert.Equal(t, entry, nt.Type)

	nt, err = unit.Resolve("Base.Entry")
	require.NoError(t, err)
	assert.Equal(t, entry, nt.Type)

	tp := &model.TypeParameter{Ref: model.TypeParamRef{Owner: derived, Index: 0, Name: "Entry"}}
	method := body.NewChild()
	method.BindTypeParameter(tp)
	nt, err = method.Resolve("Entry")
	require.NoError(t, err)
	assert.Same(t, tp, nt.Param, "type parameters shadow member types")
	assert.True(t, nt.PT().IsTypeParameter())
}

func TestTypeContext_StaticImports(t *testing.T) {
	reg, _ := newTestRegistry()
	util := declareClass(reg, "com.util", "Strings", nil)
	math := declareClass(reg, "com.util", "Maths", nil)

	unit := NewRootTypeContext(reg).NewCompilationUnitContext("com.app")
	unit.AddStaticImport(util, "join")
	unit.AddStaticWildcardImport(math)

	assert.Equal(t, []model.TypeID{util, math}, unit.StaticImportOwners("join"))
	assert.Equal(t, []model.TypeID{math}, unit.NewChild().StaticImportOwners("max"))
}
