package java

import (
	"strings"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// typeParser 在给定作用域内把类型节点解析为 ParameterizedType
type typeParser struct {
	reg *core.TypeRegistry
	fc  *core.FileContext
}

func (p typeParser) text(n *sitter.Node) string { return p.fc.Text(n) }

func (p typeParser) parse(tc *core.TypeContext, n *sitter.Node) (model.ParameterizedType, error) {
	if n == nil {
		return model.ParameterizedType{}, errors.New(errors.CodeInternal, "missing type node")
	}
	switch n.Kind() {
	case KindIntegralType, KindFloatingPointType, KindBooleanType, KindVoidType:
		k, ok := model.PrimitiveByName(strings.TrimSpace(p.text(n)))
		if !ok {
			return model.ParameterizedType{}, p.fail(errors.CodeUnresolvedType, n, "unknown primitive")
		}
		return k.PT(), nil

	case KindTypeIdentifier, KindIdentifier:
		return p.named(tc, n, p.text(n))

	case KindScopedTypeIdentifier:
		children := namedChildren(n)
		last := children[len(children)-1]
		if first := children[0]; first.Kind() == KindGenericType || first.Kind() == KindAnnotatedType {
			outer, err := p.parse(tc, first)
			if err != nil {
				return outer, err
			}
			id, ok := p.reg.MemberType(outer.Type, p.text(last))
			if !ok {
				return model.ParameterizedType{}, p.fail(errors.CodeUnresolvedName, n, "cannot resolve member type")
			}
			return model.Of(id), nil
		}
		return p.named(tc, n, p.qualifiedName(n))

	case KindGenericType:
		var base model.ParameterizedType
		var args []model.ParameterizedType
		for _, c := range namedChildren(n) {
			if c.Kind() == KindTypeArguments {
				for _, a := range namedChildren(c) {
					if a.Kind() == KindMarkerAnnotation || a.Kind() == KindAnnotation {
						continue
					}
					arg, err := p.parse(tc, a)
					if err != nil {
						return model.ParameterizedType{}, err
					}
					args = append(args, arg)
				}
				continue
			}
			b, err := p.parse(tc, c)
			if err != nil {
				return b, err
			}
			base = b
		}
		base.Args = args
		return base, nil

	case KindArrayType:
		elem, err := p.parse(tc, n.ChildByFieldName("element"))
		if err != nil {
			return elem, err
		}
		return elem.WithArrays(elem.Arrays + dimensionCount(n.ChildByFieldName("dimensions"))), nil

	case KindAnnotatedType:
		children := namedChildren(n)
		return p.parse(tc, children[len(children)-1])

	case KindWildcard:
		wk := model.WildcardUnbound
		if hasToken(n, "extends") {
			wk = model.WildcardExtends
		} else if hasToken(n, "super") {
			wk = model.WildcardSuper
		}
		var bound *sitter.Node
		for _, c := range namedChildren(n) {
			if c.Kind() != KindMarkerAnnotation && c.Kind() != KindAnnotation {
				bound = c
			}
		}
		if bound == nil {
			return model.ParameterizedType{Wildcard: model.WildcardUnbound}, nil
		}
		pt, err := p.parse(tc, bound)
		pt.Wildcard = wk
		return pt, err
	}
	return model.ParameterizedType{}, p.fail(errors.CodeUnsupportedConstruct, n, "unsupported type node")
}

func (p typeParser) named(tc *core.TypeContext, n *sitter.Node, name string) (model.ParameterizedType, error) {
	nt, err := tc.Resolve(name)
	if err != nil {
		return model.ParameterizedType{}, errors.AddContext(err, errors.CtxLine, p.fc.Location(n).StartLine)
	}
	return nt.PT(), nil
}

// qualifiedName 去掉注解与空白后的限定名
func (p typeParser) qualifiedName(n *sitter.Node) string {
	var parts []string
	for _, c := range namedChildren(n) {
		switch c.Kind() {
		case KindScopedTypeIdentifier:
			parts = append(parts, p.qualifiedName(c))
		case KindTypeIdentifier, KindIdentifier:
			parts = append(parts, p.text(c))
		}
	}
	return strings.Join(parts, ".")
}

func (p typeParser) fail(code errors.ErrorCode, n *sitter.Node, msg string) error {
	return errors.New(code, msg).
		WithContext(errors.CtxName, p.text(n)).
		WithContext(errors.CtxKind, n.Kind()).
		WithContext(errors.CtxPath, p.fc.FilePath).
		WithContext(errors.CtxLine, p.fc.Location(n).StartLine)
}

// ==========================================
// 修饰符与注解 (Modifiers & Annotations)
// ==========================================

// modifiers 解析 modifiers 子节点；注解类型找不到时登记占位类型并告警
func (s *Session) modifiers(tc *core.TypeContext, fc *core.FileContext, decl *sitter.Node) (model.Modifiers, []model.Annotation) {
	var mods model.Modifiers
	var annos []model.Annotation
	m := findChildOfKind(decl, KindModifiers)
	if m == nil {
		return 0, nil
	}
	for i := uint(0); i < m.ChildCount(); i++ {
		c := m.Child(i)
		if c == nil {
			continue
		}
		if !c.IsNamed() {
			if mod, ok := model.ParseModifier(c.Kind()); ok {
				mods |= mod
			}
			continue
		}
		if c.Kind() == KindMarkerAnnotation || c.Kind() == KindAnnotation {
			annos = append(annos, s.annotation(tc, fc, c))
		}
	}
	return mods, annos
}

func (s *Session) annotation(tc *core.TypeContext, fc *core.FileContext, n *sitter.Node) model.Annotation {
	name := fc.Text(n.ChildByFieldName("name"))
	var id model.TypeID
	if nt, ok := tc.Lookup(name); ok && nt.Param == nil {
		id = nt.Type
	} else {
		id = s.reg.GetOrCreate(name)
		s.env.Warn(DiagUnresolvedAnnotation, fc.Location(n), name, "annotation type not found, using placeholder")
	}
	a := model.Annotation{Type: id}
	args := n.ChildByFieldName("arguments")
	for _, c := range namedChildren(args) {
		if a.Values == nil {
			a.Values = make(map[string]string)
		}
		if c.Kind() == "element_value_pair" {
			a.Values[fc.Text(c.ChildByFieldName("key"))] = fc.Text(c.ChildByFieldName("value"))
		} else {
			a.Values["value"] = fc.Text(c)
		}
	}
	return a
}

func hasAnnotation(reg *core.TypeRegistry, annos []model.Annotation, fqn string) bool {
	for _, a := range annos {
		if t := reg.Type(a.Type); t != nil && t.FQN == fqn {
			return true
		}
	}
	return false
}
