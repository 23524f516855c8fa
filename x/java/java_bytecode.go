package java

import (
	"strconv"
	"strings"
	"sync"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
)

// BuiltinInspector 基于内置 JDK 签名表的字节码检查器。
// 对同一名称重复调用时直接返回已有条目。
type BuiltinInspector struct {
	table map[string]string

	mu     sync.Mutex
	loaded map[string]bool
}

func NewBuiltinInspector() *BuiltinInspector {
	return &BuiltinInspector{table: BuiltinTable, loaded: make(map[string]bool)}
}

// Knows 表中是否有该类型
func (b *BuiltinInspector) Knows(fqn string) bool {
	_, ok := b.table[fqn]
	return ok
}

func (b *BuiltinInspector) Inspect(reg *core.TypeRegistry, fqn string) (model.TypeID, error) {
	desc, ok := b.table[fqn]
	if !ok {
		return model.NoType, errors.New(errors.CodeUnresolvedType, "type not available as bytecode")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	id := reg.GetOrCreate(fqn)
	t := reg.Type(id)
	if b.loaded[fqn] || t.Inspection.IsSet() {
		return id, nil
	}

	insp, err := newDescriptorParser(reg, id).parse(desc)
	if err != nil {
		return model.NoType, errors.AddContext(err, errors.CtxType, fqn)
	}
	if err := t.Inspection.Set(insp); err != nil {
		return model.NoType, err
	}
	t.Transition(model.Uninspected, model.SignatureReady)
	b.loaded[fqn] = true
	return id, nil
}

// ==========================================
// 签名描述解析 (Descriptor Parsing)
// ==========================================

// 描述格式：
//
//	[modifiers] class|interface|enum|annotation FQN[<T, U extends B>] [extends T] [implements T, U]
//	field [static] Type name
//	<init>(Type, Type)
//	[static|default] [<T>] ReturnType name(Type, Type...)
type descriptorParser struct {
	reg     *core.TypeRegistry
	id      model.TypeID
	typeTPs []model.TypeParameter
}

func newDescriptorParser(reg *core.TypeRegistry, id model.TypeID) *descriptorParser {
	return &descriptorParser{reg: reg, id: id}
}

func (p *descriptorParser) parse(desc string) (*model.TypeInspection, error) {
	var lines []string
	for _, l := range strings.Split(desc, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.CodeInternal, "empty descriptor")
	}

	b, err := p.parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	isInterface := b.Nature() == model.NatureInterface || b.Nature() == model.NatureAnnotation
	for _, l := range lines[1:] {
		if err := p.parseMember(b, l, isInterface); err != nil {
			return nil, errors.AddContext(err, errors.CtxName, l)
		}
	}
	if isInterface {
		b.SetFunctionalInterface(countAbstract(p.reg, b.Methods()) == 1)
	}
	return b.Build(), nil
}

func (p *descriptorParser) parseHeader(line string) (*model.TypeInspectionBuilder, error) {
	var mods model.Modifiers
	nature := model.NatureClass
	rest := line
	for {
		word, tail, _ := strings.Cut(rest, " ")
		if m, ok := model.ParseModifier(word); ok {
			mods |= m
			rest = tail
			continue
		}
		switch word {
		case "class":
		case "interface":
			nature = model.NatureInterface
		case "enum":
			nature = model.NatureEnum
		case "annotation":
			nature = model.NatureAnnotation
		default:
			return nil, errors.New(errors.CodeInternal, "bad descriptor header").WithContext(errors.CtxName, line)
		}
		rest = tail
		break
	}
	b := model.NewTypeInspectionBuilder(nature).SetModifiers(mods | model.ModPublic)
	if nature == model.NatureInterface || nature == model.NatureAnnotation {
		b.SetModifiers(model.ModAbstract)
	}

	// FQN 与类型参数
	name, rest := splitHead(rest)
	if i := strings.IndexByte(name, '<'); i >= 0 {
		for idx, raw := range splitTopLevel(name[i+1 : len(name)-1]) {
			tpName, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
			p.typeTPs = append(p.typeTPs, model.TypeParameter{Ref: model.TypeParamRef{Owner: p.id, Index: idx, Name: tpName}})
		}
		for idx, raw := range splitTopLevel(name[i+1 : len(name)-1]) {
			if _, bound, ok := strings.Cut(strings.TrimSpace(raw), " extends "); ok {
				for _, bs := range strings.Split(bound, "&") {
					pt, err := p.parseType(strings.TrimSpace(bs), nil)
					if err != nil {
						return nil, err
					}
					p.typeTPs[idx].Bounds = append(p.typeTPs[idx].Bounds, pt)
				}
			}
		}
	}
	for _, tp := range p.typeTPs {
		b.AddTypeParameter(tp)
	}

	rest = strings.TrimSpace(rest)
	if after, ok := strings.CutPrefix(rest, "extends "); ok {
		extends, tail, _ := strings.Cut(after, " implements ")
		for i, s := range splitTopLevel(extends) {
			pt, err := p.parseType(strings.TrimSpace(s), nil)
			if err != nil {
				return nil, err
			}
			if nature == model.NatureInterface || i > 0 {
				b.AddInterface(pt)
			} else {
				b.SetParent(pt)
			}
		}
		if tail != "" {
			rest = "implements " + tail
		} else {
			rest = ""
		}
	}
	if after, ok := strings.CutPrefix(rest, "implements "); ok {
		for _, s := range splitTopLevel(after) {
			pt, err := p.parseType(strings.TrimSpace(s), nil)
			if err != nil {
				return nil, err
			}
			b.AddInterface(pt)
		}
	}

	fqn := p.reg.Type(p.id).FQN
	if b.Parent() == nil && nature != model.NatureInterface && nature != model.NatureAnnotation && fqn != core.ObjectFQN {
		if nature == model.NatureEnum {
			b.SetParent(model.Of(p.reg.GetOrCreate(core.EnumFQN), model.Of(p.id)))
		} else {
			b.SetParent(model.Of(p.reg.Object()))
		}
	}
	if nature == model.NatureAnnotation {
		b.AddInterface(model.Of(p.reg.GetOrCreate("java.lang.annotation.Annotation")))
	}
	return b, nil
}

func (p *descriptorParser) parseMember(b *model.TypeInspectionBuilder, line string, isInterface bool) error {
	arena := p.reg.Arena()

	if after, ok := strings.CutPrefix(line, "field "); ok {
		mods := model.ModPublic
		if isInterface {
			mods |= model.ModStatic | model.ModFinal
		}
		if s, ok := strings.CutPrefix(after, "static "); ok {
			mods |= model.ModStatic | model.ModFinal
			after = s
		}
		i := strings.LastIndexByte(after, ' ')
		pt, err := p.parseType(after[:i], nil)
		if err != nil {
			return err
		}
		f := arena.NewField(p.id, after[i+1:])
		fi := &model.FieldInspection{Modifiers: mods, Type: pt, EnumConstant: b.Nature() == model.NatureEnum && pt.Type == p.id}
		if err := f.Inspection.Set(fi); err != nil {
			return err
		}
		b.AddField(f.ID)
		return nil
	}

	open := strings.IndexByte(line, '(')
	if open < 0 || !strings.HasSuffix(line, ")") {
		return errors.New(errors.CodeInternal, "bad member descriptor")
	}
	head, params := line[:open], line[open+1:len(line)-1]

	mods := model.ModPublic
	for {
		word, tail, _ := strings.Cut(head, " ")
		m, ok := model.ParseModifier(word)
		if !ok {
			break
		}
		mods |= m
		head = tail
	}

	// 构造器名本身以 '<' 开头，不能当作类型参数列表
	var tpSrc string
	if strings.HasPrefix(head, "<") && !strings.HasPrefix(head, ConstructorName) {
		end := matchAngle(head)
		tpSrc, head = head[1:end], strings.TrimSpace(head[end+1:])
	}

	var name, retSrc string
	if head == ConstructorName {
		name = ConstructorName
	} else {
		i := strings.LastIndexByte(head, ' ')
		if i < 0 {
			return errors.New(errors.CodeInternal, "member descriptor without return type").WithContext(errors.CtxName, head)
		}
		retSrc, name = head[:i], head[i+1:]
	}
	ctor := name == ConstructorName
	if isInterface && !ctor && !mods.Has(model.ModStatic) && !mods.Has(model.ModDefault) {
		mods |= model.ModAbstract
	}

	m := arena.NewMethod(p.id, name, ctor)
	kind := model.KindMethod
	if ctor {
		kind = model.KindConstructor
	}
	mb := model.NewMethodInspectionBuilder(kind).SetModifiers(mods)

	var methodTPs []model.TypeParameter
	if tpSrc != "" {
		raws := splitTopLevel(tpSrc)
		for idx, raw := range raws {
			tpName, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
			methodTPs = append(methodTPs, model.TypeParameter{Ref: model.TypeParamRef{Owner: p.id, Method: m.ID, Index: idx, Name: tpName}})
		}
		for idx, raw := range raws {
			if _, bound, ok := strings.Cut(strings.TrimSpace(raw), " extends "); ok {
				pt, err := p.parseType(strings.TrimSpace(bound), methodTPs)
				if err != nil {
					return err
				}
				methodTPs[idx].Bounds = append(methodTPs[idx].Bounds, pt)
			}
		}
		for _, tp := range methodTPs {
			mb.AddTypeParameter(tp)
		}
	}

	if !ctor {
		ret, err := p.parseType(retSrc, methodTPs)
		if err != nil {
			return err
		}
		mb.SetReturnType(ret)
	}

	if strings.TrimSpace(params) != "" {
		raws := splitTopLevel(params)
		for idx, raw := range raws {
			raw = strings.TrimSpace(raw)
			varArgs := strings.HasSuffix(raw, "...")
			if varArgs {
				raw = strings.TrimSuffix(raw, "...") + "[]"
			}
			pt, err := p.parseType(raw, methodTPs)
			if err != nil {
				return err
			}
			param := arena.NewParameter(m.ID, idx, "p"+strconv.Itoa(idx))
			if err := param.Inspection.Set(&model.ParameterInspection{Type: pt, VarArgs: varArgs}); err != nil {
				return err
			}
			mb.AddParameter(param.ID, varArgs)
		}
	}
	if err := m.Inspection.Set(mb.Build()); err != nil {
		return err
	}
	if ctor {
		b.AddConstructor(m.ID)
	} else {
		b.AddMethod(m.ID)
	}
	return nil
}

// parseType 解析描述中的类型：基本类型、FQN、类型参数名、泛型实参、数组与通配符
func (p *descriptorParser) parseType(s string, methodTPs []model.TypeParameter) (model.ParameterizedType, error) {
	s = strings.TrimSpace(s)
	arrays := 0
	for strings.HasSuffix(s, "[]") {
		arrays++
		s = strings.TrimSpace(s[:len(s)-2])
	}

	if s == "?" {
		return model.ParameterizedType{Wildcard: model.WildcardUnbound}, nil
	}
	if after, ok := strings.CutPrefix(s, "? extends "); ok {
		pt, err := p.parseType(after, methodTPs)
		pt.Wildcard = model.WildcardExtends
		return pt, err
	}
	if after, ok := strings.CutPrefix(s, "? super "); ok {
		pt, err := p.parseType(after, methodTPs)
		pt.Wildcard = model.WildcardSuper
		return pt, err
	}

	var args []model.ParameterizedType
	if i := strings.IndexByte(s, '<'); i >= 0 {
		for _, raw := range splitTopLevel(s[i+1 : len(s)-1]) {
			arg, err := p.parseType(raw, methodTPs)
			if err != nil {
				return model.ParameterizedType{}, err
			}
			args = append(args, arg)
		}
		s = s[:i]
	}

	var pt model.ParameterizedType
	switch {
	case strings.Contains(s, "."):
		pt = model.Of(p.reg.GetOrCreate(s), args...)
	default:
		if k, ok := model.PrimitiveByName(s); ok {
			pt = k.PT()
		} else if ref, ok := findTypeParam(s, methodTPs, p.typeTPs); ok {
			pt = model.OfParam(ref)
		} else {
			return model.ParameterizedType{}, errors.New(errors.CodeInternal, "unknown name in descriptor").WithContext(errors.CtxName, s)
		}
	}
	return pt.WithArrays(arrays), nil
}

func findTypeParam(name string, scopes ...[]model.TypeParameter) (model.TypeParamRef, bool) {
	for _, tps := range scopes {
		for _, tp := range tps {
			if tp.Ref.Name == name {
				return tp.Ref, true
			}
		}
	}
	return model.TypeParamRef{}, false
}

// splitHead 第一个顶层空格之前的部分（尖括号内的空格不算）
func splitHead(s string) (string, string) {
	depth := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ' ':
			if depth == 0 {
				return s[:i], s[i+1:]
			}
		}
	}
	return s, ""
}

// splitTopLevel 按顶层逗号切分
func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// matchAngle s 以 '<' 开头，返回匹配的 '>' 下标
func matchAngle(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s) - 1
}

// countAbstract 自身声明的抽象方法数（不含与 Object 同签名的方法）
func countAbstract(reg *core.TypeRegistry, methods []model.MethodID) int {
	n := 0
	for _, mid := range methods {
		m := reg.Arena().Method(mid)
		if mi, ok := m.Inspection.Get(); ok && mi.IsAbstract() && !isObjectMethod(m.Name, len(mi.Params)) {
			n++
		}
	}
	return n
}

func isObjectMethod(name string, params int) bool {
	switch name {
	case "equals":
		return params == 1
	case "hashCode", "toString":
		return params == 0
	}
	return false
}
