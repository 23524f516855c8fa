package core

import (
	"strings"

	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
)

// NamedType 简单名解析的结果：类型或类型参数
type NamedType struct {
	Type  model.TypeID
	Param *model.TypeParameter
}

func (n NamedType) PT() model.ParameterizedType {
	if n.Param != nil {
		return model.OfParam(n.Param.Ref)
	}
	return model.Of(n.Type)
}

type importMap struct {
	// wildcards 包名或类型 FQN（导入其成员类型）
	wildcards []string
	// staticMembers 成员名 -> 提供该静态成员的类型，按导入顺序
	staticMembers   map[string][]model.TypeID
	staticWildcards []model.TypeID
}

// TypeContext 类型名作用域链。编译单元根节点持有导入表，类型体节点可以查找继承来的成员类型。
// 只在单个 goroutine 内使用。
type TypeContext struct {
	parent      *TypeContext
	registry    *TypeRegistry
	packageName string
	unitRoot    bool
	imports     *importMap
	owner       model.TypeID
	bindings    map[string]NamedType
}

// NewRootTypeContext 最外层作用域，兜底查找 java.lang
func NewRootTypeContext(reg *TypeRegistry) *TypeContext {
	return &TypeContext{registry: reg, bindings: make(map[string]NamedType)}
}

func (tc *TypeContext) NewCompilationUnitContext(packageName string) *TypeContext {
	tc.registry.RegisterPackage(packageName)
	return &TypeContext{
		parent:      tc,
		registry:    tc.registry,
		packageName: packageName,
		unitRoot:    true,
		imports:     &importMap{staticMembers: make(map[string][]model.TypeID)},
		bindings:    make(map[string]NamedType),
	}
}

// NewTypeBodyContext 进入类型体；owner 的嵌套类型与继承来的成员类型在此层可见
func (tc *TypeContext) NewTypeBodyContext(owner model.TypeID) *TypeContext {
	c := tc.NewChild()
	c.owner = owner
	return c
}

func (tc *TypeContext) NewChild() *TypeContext {
	return &TypeContext{
		parent:      tc,
		registry:    tc.registry,
		packageName: tc.packageName,
		imports:     tc.imports,
		bindings:    make(map[string]NamedType),
	}
}

func (tc *TypeContext) Registry() *TypeRegistry { return tc.registry }

func (tc *TypeContext) PackageName() string { return tc.packageName }

// EnclosingType 最近的类型体
func (tc *TypeContext) EnclosingType() model.TypeID {
	for c := tc; c != nil; c = c.parent {
		if c.owner != model.NoType {
			return c.owner
		}
	}
	return model.NoType
}

// ==========================================
// 1. 绑定与导入 (Bindings & Imports)
// ==========================================

// Bind 不覆盖同层已有绑定
func (tc *TypeContext) Bind(name string, nt NamedType) {
	if _, exists := tc.bindings[name]; !exists {
		tc.bindings[name] = nt
	}
}

func (tc *TypeContext) BindTypeParameter(tp *model.TypeParameter) {
	tc.Bind(tp.Ref.Name, NamedType{Param: tp})
}

// AddExplicitImport 单类型导入，优先级最高，可以覆盖已有绑定
func (tc *TypeContext) AddExplicitImport(simpleName string, id model.TypeID) {
	tc.bindings[simpleName] = NamedType{Type: id}
}

func (tc *TypeContext) AddWildcardImport(prefix string) {
	if tc.imports != nil {
		tc.imports.wildcards = append(tc.imports.wildcards, prefix)
	}
}

func (tc *TypeContext) AddStaticImport(owner model.TypeID, member string) {
	if tc.imports != nil {
		tc.imports.staticMembers[member] = append(tc.imports.staticMembers[member], owner)
	}
}

func (tc *TypeContext) AddStaticWildcardImport(owner model.TypeID) {
	if tc.imports != nil {
		tc.imports.staticWildcards = append(tc.imports.staticWildcards, owner)
	}
}

// StaticImportOwners 可能提供静态成员 member 的类型：显式静态导入在前，通配静态导入在后
func (tc *TypeContext) StaticImportOwners(member string) []model.TypeID {
	if tc.imports == nil {
		return nil
	}
	out := append([]model.TypeID(nil), tc.imports.staticMembers[member]...)
	return append(out, tc.imports.staticWildcards...)
}

// ==========================================
// 2. 名称解析 (Name Resolution)
// ==========================================

// Lookup 探测简单名或限定名，找不到返回 false，不产生错误
func (tc *TypeContext) Lookup(name string) (NamedType, bool) {
	if strings.Contains(name, ".") {
		return tc.lookupQualified(name)
	}
	return tc.lookupSimple(name)
}

// Resolve 与 Lookup 相同，但找不到时返回 UNRESOLVED_NAME
func (tc *TypeContext) Resolve(name string) (NamedType, error) {
	if nt, ok := tc.Lookup(name); ok {
		return nt, nil
	}
	err := errors.New(errors.CodeUnresolvedName, "cannot resolve type name").WithContext(errors.CtxName, name)
	if owner := tc.EnclosingType(); owner != model.NoType {
		err.WithContext(errors.CtxType, tc.registry.Type(owner).FQN)
	}
	return NamedType{}, err
}

func (tc *TypeContext) lookupSimple(name string) (NamedType, bool) {
	for c := tc; c != nil; c = c.parent {
		if nt, ok := c.bindings[name]; ok {
			return nt, true
		}
		if c.owner != model.NoType {
			if id, ok := tc.registry.MemberType(c.owner, name); ok {
				return NamedType{Type: id}, true
			}
		}
		if c.unitRoot {
			if nt, ok := c.lookupInPackageAndWildcards(name); ok {
				return nt, true
			}
		}
		if c.parent == nil {
			if id, ok := tc.registry.Get(JavaLang + "." + name); ok {
				return NamedType{Type: id}, true
			}
			if id, err := tc.registry.LoadType(JavaLang + "." + name); err == nil {
				return NamedType{Type: id}, true
			}
		}
	}
	return NamedType{}, false
}

// 编译单元根：同包类型优先于通配导入；通配导入命中后缓存为不可覆盖的绑定
func (tc *TypeContext) lookupInPackageAndWildcards(name string) (NamedType, bool) {
	fqn := name
	if tc.packageName != "" {
		fqn = tc.packageName + "." + name
	}
	if id, ok := tc.registry.Get(fqn); ok {
		return NamedType{Type: id}, true
	}
	for _, prefix := range tc.imports.wildcards {
		if id, ok := tc.registry.Get(prefix + "." + name); ok {
			tc.Bind(name, NamedType{Type: id})
			return NamedType{Type: id}, true
		}
		if owner, ok := tc.registry.Get(prefix); ok {
			if id, ok := tc.registry.MemberType(owner, name); ok {
				tc.Bind(name, NamedType{Type: id})
				return NamedType{Type: id}, true
			}
		}
	}
	for _, prefix := range tc.imports.wildcards {
		if id, err := tc.registry.LoadType(prefix + "." + name); err == nil {
			tc.Bind(name, NamedType{Type: id})
			return NamedType{Type: id}, true
		}
	}
	return NamedType{}, false
}

func (tc *TypeContext) lookupQualified(name string) (NamedType, bool) {
	parts := strings.Split(name, ".")
	if nt, ok := tc.lookupSimple(parts[0]); ok && nt.Param == nil {
		if id, ok := tc.registry.walkMembers(nt.Type, parts[1:]); ok {
			return NamedType{Type: id}, true
		}
	}
	for i := len(parts); i >= 1; i-- {
		prefix := strings.Join(parts[:i], ".")
		id, ok := tc.registry.Get(prefix)
		if !ok && i > 1 && tc.registry.IsPackagePrefix(strings.Join(parts[:i-1], ".")) {
			if loaded, err := tc.registry.LoadType(prefix); err == nil {
				id, ok = loaded, true
			}
		}
		if ok {
			if nested, ok := tc.registry.walkMembers(id, parts[i:]); ok {
				return NamedType{Type: nested}, true
			}
		}
	}
	return NamedType{}, false
}

// MemberType 查找 owner 的成员类型：自身声明的嵌套类型，其次沿继承链查找
func (r *TypeRegistry) MemberType(owner model.TypeID, name string) (model.TypeID, bool) {
	visited := map[model.TypeID]bool{}
	var rec func(id model.TypeID) (model.TypeID, bool)
	rec = func(id model.TypeID) (model.TypeID, bool) {
		if visited[id] {
			return model.NoType, false
		}
		visited[id] = true
		t := r.arena.Type(id)
		if t == nil {
			return model.NoType, false
		}
		if nested, ok := r.Get(t.FQN + "." + name); ok {
			if nt := r.arena.Type(nested); nt != nil && nt.Enclosing == id {
				return nested, true
			}
		}
		for _, sup := range r.supertypeIDs(id) {
			if found, ok := rec(sup); ok {
				return found, true
			}
		}
		return model.NoType, false
	}
	return rec(owner)
}

func (r *TypeRegistry) walkMembers(id model.TypeID, rest []string) (model.TypeID, bool) {
	for _, s := range rest {
		next, ok := r.MemberType(id, s)
		if !ok {
			return model.NoType, false
		}
		id = next
	}
	return id, true
}
