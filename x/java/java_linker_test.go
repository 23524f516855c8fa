package java_test

import (
	"testing"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/model"
	"github.com/CodMac/jsema/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceSources = `package com.example;
import java.util.List;
import java.io.IOException;

interface Repo { User find(long id) throws IOException; }

@Deprecated
class UserService implements Repo {
	private List<User> cache;
	public User find(long id) throws IOException { return new User(); }
	static class Stats { int hits; }
}

class User { }
`

func TestLinker_HierarchyRelations(t *testing.T) {
	res := analyze(t, map[string]string{"com/example/UserService.java": serviceSources})

	cases := []struct {
		kind   model.DependencyType
		source string
		target string
	}{
		{model.Implement, "com.example.UserService", "com.example.Repo"},
		{model.RelAnnotation, "com.example.UserService", "java.lang.Deprecated"},
		{model.Contain, "com.example.UserService", "com.example.UserService.cache"},
		{model.Contain, "com.example.UserService", "com.example.UserService.find(long)"},
		{model.Contain, "com.example.UserService", "com.example.UserService.Stats"},
		{model.Contain, "com.example.UserService.Stats", "com.example.UserService.Stats.hits"},
		{model.RelReturn, "com.example.UserService.find(long)", "com.example.User"},
		{model.RelThrow, "com.example.UserService.find(long)", "java.io.IOException"},
		{model.Create, "com.example.UserService.find(long)", "com.example.User.<init>()"},
	}
	for _, c := range cases {
		assert.True(t, hasRelation(res, c.kind, c.source, c.target), "%s %s -> %s", c.kind, c.source, c.target)
	}

	// 原始类型不产生关系；合成构造器不输出签名关系
	assert.False(t, hasRelation(res, model.Parameter, "com.example.UserService.find(long)", "long"))
	for _, r := range res.Relations {
		if r.Type == model.RelReturn {
			assert.NotContains(t, r.SourceName, "<init>")
		}
	}
}

func TestLinker_ExternalFlag(t *testing.T) {
	res := analyze(t, map[string]string{"com/example/UserService.java": serviceSources})
	for _, r := range res.Relations {
		if r.TargetName == "java.io.IOException" {
			assert.True(t, r.External)
		}
		if r.TargetName == "com.example.User" {
			assert.False(t, r.External)
		}
	}
}

func TestLinker_Deduplicates(t *testing.T) {
	res := analyze(t, map[string]string{
		"p/D.java": "package p;\nclass D { D a(D x, D y) { return x; } }\n",
	})
	count := 0
	for _, r := range res.Relations {
		if r.Type == model.Parameter && r.TargetName == "p.D" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNoiseFilter_Levels(t *testing.T) {
	files := map[string]string{"com/example/UserService.java": serviceSources}

	raw, err := analyzeWith(t, core.Options{}, core.LevelRaw, files)
	require.NoError(t, err)
	balanced, err := analyzeWith(t, core.Options{}, core.LevelBalanced, files)
	require.NoError(t, err)
	pure, err := analyzeWith(t, core.Options{}, core.LevelPure, files)
	require.NoError(t, err)

	assert.True(t, hasRelation(raw, model.RelAnnotation, "com.example.UserService", "java.lang.Deprecated"))
	assert.False(t, hasRelation(balanced, model.RelAnnotation, "com.example.UserService", "java.lang.Deprecated"))
	assert.True(t, hasRelation(balanced, model.Implement, "com.example.UserService", "com.example.Repo"))

	assert.Less(t, len(balanced.Relations), len(raw.Relations))
	assert.LessOrEqual(t, len(pure.Relations), len(balanced.Relations))
	for _, r := range pure.Relations {
		assert.False(t, r.External, "%s -> %s", r.SourceName, r.TargetName)
	}
}

func TestNoiseFilter_Rules(t *testing.T) {
	f := java.NewJavaNoiseFilter(core.LevelBalanced)
	external := func(kind model.DependencyType, targetKind model.MemberKind, name string) *model.DependencyRelation {
		return &model.DependencyRelation{Type: kind, Target: model.MemberRef{Kind: targetKind}, TargetName: name, External: true}
	}

	assert.True(t, f.IsNoise(external(model.Call, model.MemberMethod, "java.lang.String.length()")))
	assert.True(t, f.IsNoise(external(model.Use, model.MemberField, "java.lang.System.out")))
	assert.True(t, f.IsNoise(external(model.Extend, model.MemberType, "java.util.Map.Entry")))
	assert.False(t, f.IsNoise(external(model.Call, model.MemberMethod, "org.lib.Client.send(java.lang.String)")))
	assert.False(t, f.IsNoise(external(model.Contain, model.MemberType, "java.lang.Object")))
	assert.False(t, f.IsNoise(&model.DependencyRelation{Type: model.Call, TargetName: "java.lang.Local.m()"}))

	require.NoError(t, f.SetPackages([]string{"org.lib.**"}))
	assert.True(t, f.IsNoise(external(model.Call, model.MemberMethod, "org.lib.Client.send(java.lang.String)")))
	assert.False(t, f.IsNoise(external(model.Call, model.MemberMethod, "java.lang.String.length()")))

	// 空列表恢复默认
	require.NoError(t, f.SetPackages(nil))
	assert.True(t, f.IsNoise(external(model.Call, model.MemberMethod, "java.lang.String.length()")))

	f.SetLevel(core.LevelRaw)
	assert.False(t, f.IsNoise(external(model.Call, model.MemberMethod, "java.lang.String.length()")))
	f.SetLevel(core.LevelPure)
	assert.True(t, f.IsNoise(external(model.Call, model.MemberMethod, "org.other.X.y()")))
}

func TestBuiltinInspector(t *testing.T) {
	b := java.NewBuiltinInspector()
	reg := core.NewTypeRegistry(b)

	assert.True(t, b.Knows("java.util.ArrayList"))
	assert.False(t, b.Knows("com.example.Nope"))

	id, err := b.Inspect(reg, "java.util.ArrayList")
	require.NoError(t, err)
	again, err := b.Inspect(reg, "java.util.ArrayList")
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, model.SignatureReady, reg.Type(id).State())

	ti, err := reg.TypeInspection(id)
	require.NoError(t, err)
	assert.Len(t, ti.TypeParameters, 1)
	assert.NotEmpty(t, ti.Constructors)
	assert.False(t, ti.FromSource)

	_, err = b.Inspect(reg, "com.example.Nope")
	assert.Error(t, err)
}

func TestBuiltinInspector_Constructors(t *testing.T) {
	b := java.NewBuiltinInspector()
	reg := core.NewTypeRegistry(b)
	arena := reg.Arena()

	for fqn, want := range map[string]int{"java.lang.Object": 1, "java.lang.String": 4} {
		id, err := b.Inspect(reg, fqn)
		require.NoError(t, err, fqn)
		ti, err := reg.TypeInspection(id)
		require.NoError(t, err)
		require.Len(t, ti.Constructors, want, fqn)
		for _, cid := range ti.Constructors {
			m := arena.Method(cid)
			assert.Equal(t, java.ConstructorName, m.Name)
			assert.True(t, m.Constructor)
		}
	}

	res := analyze(t, map[string]string{
		"p/N.java": "package p;\nclass N { Object o() { return new Object(); } String s() { return new String(\"x\"); } }\n",
	})
	assert.True(t, hasRelation(res, model.Create, "p.N.o()", "java.lang.Object.<init>()"))
	assert.True(t, hasRelation(res, model.Create, "p.N.s()", "java.lang.String.<init>(java.lang.String)"))
}

func TestBuiltinTable_Parses(t *testing.T) {
	b := java.NewBuiltinInspector()
	reg := core.NewTypeRegistry(b)
	for fqn := range java.BuiltinTable {
		_, err := b.Inspect(reg, fqn)
		assert.NoError(t, err, fqn)
	}
}
