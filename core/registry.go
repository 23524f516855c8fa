package core

import (
	"strings"
	"sync"
	"unicode"

	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
)

const (
	JavaLang   = "java.lang"
	ObjectFQN  = "java.lang.Object"
	StringFQN  = "java.lang.String"
	ClassFQN   = "java.lang.Class"
	EnumFQN    = "java.lang.Enum"
	RecordFQN  = "java.lang.Record"
	IterableFQ = "java.lang.Iterable"
)

// BytecodeInspector 为没有源码的类型同步产出签名。
// 必须幂等：同一名称的重复调用在首次之后不产生任何效果。
type BytecodeInspector interface {
	Inspect(reg *TypeRegistry, fqn string) (model.TypeID, error)
}

// TypeRegistry 全局类型表：FQN -> TypeID，外加包前缀树。
// 创建路径互斥，查询只持读锁。
type TypeRegistry struct {
	arena    *model.Arena
	mu       sync.RWMutex
	byFQN    map[string]model.TypeID
	packages *packageTrie
	source   map[model.TypeID]bool

	bytecode BytecodeInspector
	loadMu   sync.Mutex

	headers HeaderSource
}

// HeaderSource 第一遍中先于完整签名产出的源码类型头（直接父类型），供成员类型查找使用
type HeaderSource interface {
	DirectSupertypes(id model.TypeID) ([]model.TypeID, bool)
}

func NewTypeRegistry(bytecode BytecodeInspector) *TypeRegistry {
	r := &TypeRegistry{
		arena:    model.NewArena(),
		byFQN:    make(map[string]model.TypeID),
		packages: newPackageTrie(),
		source:   make(map[model.TypeID]bool),
		bytecode: bytecode,
	}
	// 基本类型在 Arena 中已预注册，这里补上名称索引与签名
	for id := model.TypeID(1); int(id) <= r.arena.TypeCount(); id++ {
		t := r.arena.Type(id)
		r.byFQN[t.FQN] = id
		b := model.NewTypeInspectionBuilder(model.NaturePrimitive).SetModifiers(model.ModPublic | model.ModFinal)
		_ = t.Inspection.Set(b.Build())
		t.Transition(model.Uninspected, model.BodyReady)
	}
	return r
}

func (r *TypeRegistry) Arena() *model.Arena { return r.arena }

func (r *TypeRegistry) SetHeaderSource(h HeaderSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers = h
}

// supertypeIDs 已有签名时取签名，否则退回源码类型头
func (r *TypeRegistry) supertypeIDs(id model.TypeID) []model.TypeID {
	if ti, ok := r.TryTypeInspection(id); ok {
		var out []model.TypeID
		if ti.Parent != nil {
			out = append(out, ti.Parent.Type)
		}
		for _, i := range ti.Interfaces {
			out = append(out, i.Type)
		}
		return out
	}
	r.mu.RLock()
	h := r.headers
	r.mu.RUnlock()
	if h != nil {
		if ids, ok := h.DirectSupertypes(id); ok {
			return ids
		}
	}
	return nil
}

func (r *TypeRegistry) Type(id model.TypeID) *model.TypeInfo { return r.arena.Type(id) }

// ==========================================
// 1. 查询 (Lookup)
// ==========================================

// Get 未注册时返回 false，不是错误
func (r *TypeRegistry) Get(fqn string) (model.TypeID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byFQN[fqn]
	return id, ok
}

func (r *TypeRegistry) IsPackagePrefix(prefix string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.packages.isPackagePrefix(prefix)
}

// Visit 枚举 prefix 之下的全部已知类型，顺序确定
func (r *TypeRegistry) Visit(prefix string, fn func(fqn string, id model.TypeID)) {
	type entry struct {
		fqn string
		id  model.TypeID
	}
	var entries []entry
	r.mu.RLock()
	r.packages.visit(prefix, func(fqn string, id model.TypeID) {
		entries = append(entries, entry{fqn, id})
	})
	r.mu.RUnlock()
	for _, e := range entries {
		fn(e.fqn, e.id)
	}
}

func (r *TypeRegistry) IsSource(id model.TypeID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.source[id]
}

// ==========================================
// 2. 创建 (Create-or-Get)
// ==========================================

func (r *TypeRegistry) RegisterPackage(pkg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packages.addPackage(pkg)
}

// GetOrCreate 按 FQN 创建或返回类型。包与外部类的划分优先依据已知包，
// 否则按首字母大写的段判定最外层类。
func (r *TypeRegistry) GetOrCreate(fqn string) model.TypeID {
	if id, ok := r.Get(fqn); ok {
		return id
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byFQN[fqn]; ok {
		return id
	}

	segments := strings.Split(fqn, ".")
	pkgLen := r.packageLength(segments)
	pkg := strings.Join(segments[:pkgLen], ".")
	r.packages.addPackage(pkg)

	enclosing := model.NoType
	current := pkg
	for _, s := range segments[pkgLen:] {
		if current == "" {
			current = s
		} else {
			current = current + "." + s
		}
		id, ok := r.byFQN[current]
		if !ok {
			id = r.createLocked(current, pkg, s, enclosing)
		}
		enclosing = id
	}
	return enclosing
}

func (r *TypeRegistry) packageLength(segments []string) int {
	for i := len(segments) - 1; i > 0; i-- {
		if r.packages.isPackage(strings.Join(segments[:i], ".")) {
			return i
		}
	}
	for i, s := range segments {
		if s != "" && unicode.IsUpper([]rune(s)[0]) {
			return i
		}
	}
	return len(segments) - 1
}

func (r *TypeRegistry) createLocked(fqn, pkg, simpleName string, enclosing model.TypeID) model.TypeID {
	t := r.arena.NewType(fqn, pkg, simpleName, enclosing)
	r.byFQN[fqn] = t.ID
	r.packages.addType(fqn, t.ID)
	return t.ID
}

// DeclareSource 为源码中声明的类型创建条目。
// 此前由 import 等途径创建的占位条目会被认领；已被其他源码声明则返回 DUPLICATE_DEFINITION。
func (r *TypeRegistry) DeclareSource(pkg string, enclosing model.TypeID, simpleName string) (model.TypeID, error) {
	var fqn string
	if enclosing != model.NoType {
		fqn = r.arena.Type(enclosing).FQN + "." + simpleName
	} else if pkg != "" {
		fqn = pkg + "." + simpleName
	} else {
		fqn = simpleName
	}
	return r.declareSource(fqn, pkg, simpleName, enclosing)
}

// DeclareLocal 方法内局部类与匿名类，名称形如 Outer$1Local / Outer$1
func (r *TypeRegistry) DeclareLocal(enclosing model.TypeID, binarySuffix string) (model.TypeID, error) {
	outer := r.arena.Type(enclosing)
	return r.declareSource(outer.FQN+"$"+binarySuffix, outer.PackageName, binarySuffix, enclosing)
}

func (r *TypeRegistry) declareSource(fqn, pkg, simpleName string, enclosing model.TypeID) (model.TypeID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packages.addPackage(pkg)
	id, ok := r.byFQN[fqn]
	if ok {
		if r.source[id] {
			return id, errors.New(errors.CodeDuplicateDefinition, "type declared twice").WithContext(errors.CtxType, fqn)
		}
		t := r.arena.Type(id)
		if t.Inspection.IsSet() {
			return id, errors.New(errors.CodeDuplicateDefinition, "source type already inspected from bytecode").WithContext(errors.CtxType, fqn)
		}
		t.Enclosing = enclosing
		t.PackageName = pkg
	} else {
		id = r.createLocked(fqn, pkg, simpleName, enclosing)
	}
	r.source[id] = true
	return id, nil
}

// ==========================================
// 3. 按需检查 (On-demand Inspection)
// ==========================================

// LoadType 确保类型存在且签名可用；源码类型直接返回，其余交给字节码检查器
func (r *TypeRegistry) LoadType(fqn string) (model.TypeID, error) {
	if id, ok := r.Get(fqn); ok {
		if r.IsSource(id) || r.arena.Type(id).Inspection.IsSet() {
			return id, nil
		}
	}
	return r.inspectBytecode(fqn)
}

func (r *TypeRegistry) inspectBytecode(fqn string) (model.TypeID, error) {
	if r.bytecode == nil {
		return model.NoType, errors.New(errors.CodeUnresolvedType, "no bytecode inspector").WithContext(errors.CtxType, fqn)
	}
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	id, err := r.bytecode.Inspect(r, fqn)
	if err != nil {
		return model.NoType, errors.AddContext(err, errors.CtxType, fqn)
	}
	if t := r.arena.Type(id); t == nil || !t.Inspection.IsSet() {
		return model.NoType, errors.New(errors.CodeUnresolvedType, "bytecode inspector produced no signature").WithContext(errors.CtxType, fqn)
	}
	return id, nil
}

// TypeInspection 返回签名；非源码类型首次访问时同步触发字节码检查。
// 源码类型尚未完成第一遍时返回 NOT_SET。
func (r *TypeRegistry) TypeInspection(id model.TypeID) (*model.TypeInspection, error) {
	t := r.arena.Type(id)
	if t == nil {
		return nil, errors.New(errors.CodeUnresolvedType, "unknown type id")
	}
	if ti, ok := t.Inspection.Get(); ok {
		return ti, nil
	}
	if r.IsSource(id) {
		return nil, errors.New(errors.CodeNotSet, "signature not ready").WithContext(errors.CtxType, t.FQN)
	}
	if _, err := r.inspectBytecode(t.FQN); err != nil {
		return nil, err
	}
	return t.Inspection.Value()
}

// TryTypeInspection 不触发源码检查，也不返回错误；用于第一遍中的探测
func (r *TypeRegistry) TryTypeInspection(id model.TypeID) (*model.TypeInspection, bool) {
	t := r.arena.Type(id)
	if t == nil {
		return nil, false
	}
	if ti, ok := t.Inspection.Get(); ok {
		return ti, true
	}
	if r.IsSource(id) {
		return nil, false
	}
	ti, err := r.TypeInspection(id)
	return ti, err == nil
}

// ==========================================
// 4. 常用类型 (Well-known Types)
// ==========================================

func (r *TypeRegistry) Object() model.TypeID { return r.GetOrCreate(ObjectFQN) }

func (r *TypeRegistry) StringType() model.ParameterizedType {
	return model.Of(r.GetOrCreate(StringFQN))
}

func (r *TypeRegistry) IsObject(id model.TypeID) bool {
	t := r.arena.Type(id)
	return t != nil && t.FQN == ObjectFQN
}

func (r *TypeRegistry) IsString(p model.ParameterizedType) bool {
	if p.Arrays > 0 || p.Param != nil {
		return false
	}
	t := r.arena.Type(p.Type)
	return t != nil && t.FQN == StringFQN
}
