package java

import (
	"strconv"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ==========================================
// 局部类型与匿名类 (Local & Anonymous Types)
// ==========================================

// localType 在第二遍中声明、检查并解析方法体内的类型。
// base 非空时为匿名类，其父类型由 base 决定；否则 n 是局部类型声明，名称绑定到当前块。
// 成员体中的依赖并入当前成员。
func (b *builder) localType(f frame, n *sitter.Node, base *model.ParameterizedType) (model.TypeID, *model.SortedType, error) {
	s := b.s
	s.localSeq[b.owner]++
	suffix := strconv.Itoa(s.localSeq[b.owner])
	if base == nil {
		suffix += b.text(n.ChildByFieldName("name"))
	}
	id, err := b.reg.DeclareLocal(b.owner, suffix)
	if err != nil {
		return model.NoType, nil, errors.AddContext(err, errors.CtxLine, b.loc(n).StartLine)
	}

	site := &typeSite{id: id, node: n, fc: b.fc, decl: f.types, local: true}
	if base == nil {
		f.types.Bind(b.text(n.ChildByFieldName("name")), core.NamedType{Type: id})
	} else {
		site.header, site.scope = s.anonymousHeader(b.unwild(*base), f.types, id)
	}
	order := []*typeSite{site}
	s.registerSite(site)
	order = s.declareMembers(site, order)

	for _, ts := range order {
		if err := s.inspectType(ts); err != nil {
			return model.NoType, nil, err
		}
	}
	res, err := s.resolveType(id, f.vars)
	if err != nil {
		return model.NoType, nil, err
	}
	b.deps.absorb(res.deps)
	return id, res.sorted, nil
}

// anonymousHeader 接口作为唯一实现接口，类作为父类
func (s *Session) anonymousHeader(base model.ParameterizedType, decl *core.TypeContext, id model.TypeID) (*typeHeader, *core.TypeContext) {
	h := &typeHeader{nature: model.NatureClass}
	if ti, err := s.reg.TypeInspection(base.Type); err == nil && ti.IsInterface() {
		parent := model.Of(s.reg.Object())
		h.parent = &parent
		h.interfaces = []model.ParameterizedType{base}
	} else {
		h.parent = &base
	}
	return h, decl.NewChild().NewTypeBodyContext(id)
}

func (s *Session) registerSite(site *typeSite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types[site.id] = site
	s.byNode[site.node.Id()] = site.id
}

// declareMembers 声明局部类型体内的成员类型，外层在前；成员类型的作用域经由外层局部类型接到方法帧
func (s *Session) declareMembers(site *typeSite, order []*typeSite) []*typeSite {
	body := site.node.ChildByFieldName("body")
	if body == nil {
		body = findChildOfKind(site.node, KindClassBody)
	}
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		for _, c := range namedChildren(n) {
			if c.Kind() == KindEnumBodyDeclarations {
				walk(c)
				continue
			}
			if !isTypeDeclaration(c.Kind()) {
				continue
			}
			id, err := s.reg.DeclareSource(site.fc.PackageName, site.id, site.fc.Text(c.ChildByFieldName("name")))
			if err != nil {
				s.env.Warn(DiagDroppedMember, site.fc.Location(c), s.reg.Type(site.id).FQN, err.Error())
				continue
			}
			nested := &typeSite{id: id, node: c, fc: site.fc}
			s.registerSite(nested)
			order = append(order, nested)
			order = s.declareMembers(nested, order)
		}
	}
	walk(body)
	return order
}
