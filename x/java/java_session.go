package java

import (
	"strings"
	"sync"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	"github.com/CodMac/jsema/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// typeSite 源码类型在语法树中的位置与作用域
type typeSite struct {
	id   model.TypeID
	node *sitter.Node
	fc   *core.FileContext
	// decl 声明所在作用域：编译单元、外层类型体或方法体
	decl *core.TypeContext
	// scope 类型体作用域，类型参数已绑定
	scope *core.TypeContext
	local bool

	header     *typeHeader
	headerErr  error
	inProgress bool
}

// typeHeader 第一遍中先于成员签名产出的部分
type typeHeader struct {
	nature      model.TypeNature
	modifiers   model.Modifiers
	typeParams  []model.TypeParameter
	parent      *model.ParameterizedType
	interfaces  []model.ParameterizedType
	annotations []model.Annotation
}

func (h *typeHeader) supertypeIDs() []model.TypeID {
	var out []model.TypeID
	if h.parent != nil {
		out = append(out, h.parent.Type)
	}
	for _, i := range h.interfaces {
		out = append(out, i.Type)
	}
	return out
}

type memberKind int

const (
	memberField memberKind = iota
	memberEnumConstant
	memberMethod
	memberInitializer
	memberSynthetic
)

// memberSite 方法或字段的来源，第二遍据此构建方法体与初始化器
type memberSite struct {
	kind  memberKind
	node  *sitter.Node
	fc    *core.FileContext
	scope *core.TypeContext
	owner model.TypeID
	// 合成成员在第一遍就确定方法体及其依赖
	body *model.Block
	deps []model.MemberRef
}

type unitSite struct {
	ctx         *core.TypeContext
	imports     []importMatch
	importsDone bool
}

// Session 一次运行中 Inspector 与 Resolver 共享的语法位置索引。
// Declare 阶段并发写入，之后只读；局部类型在单线程的第二遍中追加。
type Session struct {
	env *core.Environment
	reg *core.TypeRegistry

	declQuery   *sitter.Query
	importQuery *sitter.Query

	mu       sync.RWMutex
	types    map[model.TypeID]*typeSite
	byNode   map[uintptr]model.TypeID
	methods  map[model.MethodID]*memberSite
	fields   map[model.FieldID]*memberSite
	units    map[*core.FileContext]*unitSite
	order    map[*core.FileContext][]model.TypeID
	localSeq map[model.TypeID]int
}

func NewSession(env *core.Environment) (*Session, error) {
	lang, err := parser.GetLanguage(core.LangJava)
	if err != nil {
		return nil, err
	}
	declQuery, qErr := sitter.NewQuery(lang, JavaDeclarationQuery)
	if qErr != nil {
		return nil, errors.Wrap(qErr, errors.CodeInternal, "declaration query init")
	}
	importQuery, qErr := sitter.NewQuery(lang, JavaImportQuery)
	if qErr != nil {
		declQuery.Close()
		return nil, errors.Wrap(qErr, errors.CodeInternal, "import query init")
	}
	s := &Session{
		env:         env,
		reg:         env.Registry,
		declQuery:   declQuery,
		importQuery: importQuery,
		types:       make(map[model.TypeID]*typeSite),
		byNode:      make(map[uintptr]model.TypeID),
		methods:     make(map[model.MethodID]*memberSite),
		fields:      make(map[model.FieldID]*memberSite),
		units:       make(map[*core.FileContext]*unitSite),
		order:       make(map[*core.FileContext][]model.TypeID),
		localSeq:    make(map[model.TypeID]int),
	}
	env.Registry.SetHeaderSource(s)
	return s, nil
}

func (s *Session) Close() {
	s.declQuery.Close()
	s.importQuery.Close()
}

func (s *Session) site(id model.TypeID) *typeSite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.types[id]
}

func (s *Session) methodSite(id model.MethodID) *memberSite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.methods[id]
}

func (s *Session) fieldSite(id model.FieldID) *memberSite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields[id]
}

func (s *Session) addMethodSite(id model.MethodID, ms *memberSite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods[id] = ms
}

func (s *Session) addFieldSite(id model.FieldID, ms *memberSite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[id] = ms
}

func (s *Session) typeOfNode(n *sitter.Node) (model.TypeID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byNode[n.Id()]
	return id, ok
}

// DirectSupertypes 实现 core.HeaderSource；类型头尚未建立时按需建立
func (s *Session) DirectSupertypes(id model.TypeID) ([]model.TypeID, bool) {
	site := s.site(id)
	if site == nil {
		return nil, false
	}
	h, err := s.header(site)
	if err != nil || h == nil {
		return nil, false
	}
	return h.supertypeIDs(), true
}

// ==========================================
// 1. 声明预扫描 (Declare)
// ==========================================

func (s *Session) declare(fc *core.FileContext) error {
	source := *fc.SourceBytes
	pkg, imports := collectImports(s.importQuery, fc.RootNode, source)
	fc.PackageName = pkg
	for _, imp := range imports {
		fc.AddImport(&core.ImportEntry{
			RawImportPath: strings.Join(strings.Fields(fc.Text(&imp.path)), ""),
			IsWildcard:    findChildOfKind(&imp.stmt, "asterisk") != nil,
			IsStatic:      hasToken(&imp.stmt, "static"),
			Location:      fc.Location(&imp.stmt),
		})
	}

	unit := &unitSite{ctx: s.env.Root.NewCompilationUnitContext(pkg), imports: imports}
	var order []model.TypeID
	for _, m := range collectDeclarations(s.declQuery, fc.RootNode, source) {
		decl := m.decl
		enclosing, ok := s.enclosingDeclared(&decl)
		if !ok {
			continue
		}
		id, err := s.reg.DeclareSource(pkg, enclosing, fc.Text(&m.name))
		if err != nil {
			return errors.AddContext(err, errors.CtxPath, fc.FilePath)
		}
		site := &typeSite{id: id, node: &decl, fc: fc}
		if enclosing == model.NoType {
			site.decl = unit.ctx
			fc.AddType(id)
			fc.SetScope(id, unit.ctx)
		}
		s.mu.Lock()
		s.types[id] = site
		s.byNode[decl.Id()] = id
		s.mu.Unlock()
		order = append(order, id)
	}

	s.mu.Lock()
	s.units[fc] = unit
	s.order[fc] = order
	s.mu.Unlock()
	return nil
}

// enclosingDeclared 最近的外层类型声明；途经方法体、lambda 或匿名类时为局部类型，返回 false
func (s *Session) enclosingDeclared(n *sitter.Node) (model.TypeID, bool) {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Kind() {
		case KindBlock, KindConstructorBody, KindLambdaExpression, KindObjectCreation, KindEnumConstant, KindSwitchBlock:
			return model.NoType, false
		}
		if isTypeDeclaration(p.Kind()) {
			id, ok := s.typeOfNode(p)
			return id, ok
		}
	}
	return model.NoType, true
}

// ==========================================
// 2. 导入 (Imports)
// ==========================================

// ensureImports 类型头按需跨单元建立，导入也随之按需登记
func (s *Session) ensureImports(fc *core.FileContext) {
	s.mu.RLock()
	unit := s.units[fc]
	s.mu.RUnlock()
	if unit == nil || unit.importsDone {
		return
	}
	unit.importsDone = true
	for _, imp := range fc.Imports {
		s.applyImport(unit.ctx, fc, imp)
	}
}

func (s *Session) applyImport(tc *core.TypeContext, fc *core.FileContext, imp *core.ImportEntry) {
	path := imp.RawImportPath
	switch {
	case imp.IsStatic && imp.IsWildcard:
		tc.AddStaticWildcardImport(s.importedType(fc, imp, path))
	case imp.IsStatic:
		i := strings.LastIndexByte(path, '.')
		if i < 0 {
			return
		}
		owner, member := s.importedType(fc, imp, path[:i]), path[i+1:]
		tc.AddStaticImport(owner, member)
		if nested, ok := s.reg.MemberType(owner, member); ok {
			tc.AddExplicitImport(member, nested)
		}
	case imp.IsWildcard:
		tc.AddWildcardImport(path)
	default:
		tc.AddExplicitImport(path[strings.LastIndexByte(path, '.')+1:], s.importedType(fc, imp, path))
	}
}

// importedType 源码或字节码中找不到时登记为占位类型，直到需要其成员时才失败
func (s *Session) importedType(fc *core.FileContext, imp *core.ImportEntry, fqn string) model.TypeID {
	if id, ok := s.reg.Get(fqn); ok {
		return id
	}
	if id, err := s.reg.LoadType(fqn); err == nil {
		return id
	}
	if nt, ok := s.env.Root.Lookup(fqn); ok && nt.Param == nil {
		return nt.Type
	}
	s.env.Warn(DiagUnresolvedImport, imp.Location, fqn, "imported type not found, using placeholder")
	return s.reg.GetOrCreate(fqn)
}

// ==========================================
// 3. 类型头 (Headers)
// ==========================================

// header 建立类型头：性质、修饰符、类型参数与直接父类型。结果与错误都会被记住。
// 继承环上的类型在建立过程中再次被查询时返回 nil。
func (s *Session) header(site *typeSite) (*typeHeader, error) {
	if site.header != nil || site.headerErr != nil {
		return site.header, site.headerErr
	}
	if site.inProgress {
		return nil, nil
	}
	site.inProgress = true
	defer func() { site.inProgress = false }()

	if site.decl == nil {
		t := s.reg.Type(site.id)
		encl := s.site(t.Enclosing)
		if encl == nil {
			site.headerErr = errors.New(errors.CodeInternal, "enclosing type has no source site").WithContext(errors.CtxType, t.FQN)
			return nil, site.headerErr
		}
		if _, err := s.header(encl); err != nil {
			site.headerErr = err
			return nil, err
		}
		if encl.scope == nil {
			// 外层类型的类型头正在建立（嵌套类型出现在外层的 extends 子句中）
			return nil, nil
		}
		site.decl = encl.scope
	}
	s.ensureImports(site.fc)

	h, scope, err := s.buildHeader(site)
	if err != nil {
		site.headerErr = errors.AddContext(err, errors.CtxType, s.reg.Type(site.id).FQN)
		return nil, site.headerErr
	}
	site.header, site.scope = h, scope
	return h, nil
}

func (s *Session) buildHeader(site *typeSite) (*typeHeader, *core.TypeContext, error) {
	n, fc := site.node, site.fc
	t := s.reg.Type(site.id)
	tp := typeParser{reg: s.reg, fc: fc}
	h := &typeHeader{}

	switch n.Kind() {
	case KindInterfaceDeclaration:
		h.nature = model.NatureInterface
	case KindEnumDeclaration:
		h.nature = model.NatureEnum
	case KindRecordDeclaration:
		h.nature = model.NatureRecord
	case KindAnnotationTypeDeclaration:
		h.nature = model.NatureAnnotation
	default:
		h.nature = model.NatureClass
	}

	headerCtx := site.decl.NewChild()
	h.modifiers, h.annotations = s.modifiers(headerCtx, fc, n)
	h.modifiers |= s.implicitTypeModifiers(site, h.nature)

	tps, err := s.typeParameters(headerCtx, tp, n.ChildByFieldName("type_parameters"), site.id, model.NoMethod)
	if err != nil {
		return nil, nil, err
	}
	h.typeParams = tps

	supertype := func(node *sitter.Node) (model.ParameterizedType, error) {
		pt, err := tp.parse(headerCtx, node)
		if err != nil {
			return pt, errors.Wrap(err, errors.CodeMissingSupertype, "cannot resolve supertype").
				WithContext(errors.CtxName, fc.Text(node)).
				WithContext(errors.CtxPath, fc.FilePath)
		}
		return pt, nil
	}

	if sc := n.ChildByFieldName("superclass"); sc != nil {
		children := namedChildren(sc)
		if len(children) > 0 {
			pt, err := supertype(children[len(children)-1])
			if err != nil {
				return nil, nil, err
			}
			h.parent = &pt
		}
	}
	var ifaceList *sitter.Node
	if h.nature == model.NatureInterface {
		ifaceList = findChildOfKind(n, KindExtendsInterfaces)
	} else {
		ifaceList = n.ChildByFieldName("interfaces")
	}
	if list := findChildOfKind(ifaceList, KindTypeList); list != nil {
		for _, c := range namedChildren(list) {
			pt, err := supertype(c)
			if err != nil {
				return nil, nil, err
			}
			h.interfaces = append(h.interfaces, pt)
		}
	}

	if h.parent == nil {
		var parent model.ParameterizedType
		switch h.nature {
		case model.NatureClass:
			if t.FQN != core.ObjectFQN {
				parent = model.Of(s.reg.Object())
			}
		case model.NatureEnum:
			parent = model.Of(s.reg.GetOrCreate(core.EnumFQN), model.Of(site.id))
		case model.NatureRecord:
			parent = model.Of(s.reg.GetOrCreate(core.RecordFQN))
		}
		if parent.Type != model.NoType {
			h.parent = &parent
		}
	}
	if h.nature == model.NatureAnnotation {
		h.interfaces = append(h.interfaces, model.Of(s.reg.GetOrCreate("java.lang.annotation.Annotation")))
	}

	return h, headerCtx.NewTypeBodyContext(site.id), nil
}

// implicitTypeModifiers 接口、枚举、记录与注解的隐式修饰符；接口成员类型隐式 public static
func (s *Session) implicitTypeModifiers(site *typeSite, nature model.TypeNature) model.Modifiers {
	var mods model.Modifiers
	switch nature {
	case model.NatureInterface, model.NatureAnnotation:
		mods |= model.ModAbstract
	case model.NatureRecord:
		mods |= model.ModFinal
	}
	t := s.reg.Type(site.id)
	if t.Enclosing == model.NoType || site.local {
		return mods
	}
	if nature != model.NatureClass {
		mods |= model.ModStatic
	}
	if encl := s.site(t.Enclosing); encl != nil && encl.header != nil && (encl.header.nature == model.NatureInterface || encl.header.nature == model.NatureAnnotation) {
		mods |= model.ModPublic | model.ModStatic
	}
	return mods
}

// typeParameters 先绑定全部名称再解析上界，上界可以引用同组的类型参数
func (s *Session) typeParameters(tc *core.TypeContext, tp typeParser, list *sitter.Node, owner model.TypeID, method model.MethodID) ([]model.TypeParameter, error) {
	if list == nil {
		return nil, nil
	}
	var nodes []*sitter.Node
	for _, c := range namedChildren(list) {
		if c.Kind() == KindTypeParameter {
			nodes = append(nodes, c)
		}
	}
	tps := make([]model.TypeParameter, len(nodes))
	for i, c := range nodes {
		name := findChildOfKind(c, KindTypeIdentifier, KindIdentifier)
		tps[i] = model.TypeParameter{Ref: model.TypeParamRef{Owner: owner, Method: method, Index: i, Name: tp.text(name)}}
		tc.BindTypeParameter(&tps[i])
	}
	for i, c := range nodes {
		bound := findChildOfKind(c, KindTypeBound)
		for _, b := range namedChildren(bound) {
			pt, err := tp.parse(tc, b)
			if err != nil {
				return nil, err
			}
			tps[i].Bounds = append(tps[i].Bounds, pt)
		}
	}
	return tps, nil
}
