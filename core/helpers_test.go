package core

import (
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
)

// stubInspector 以回调形式提供签名，记录调用次数
type stubInspector struct {
	known map[string]func(b *model.TypeInspectionBuilder)
	calls map[string]int
}

func newStubInspector() *stubInspector {
	return &stubInspector{
		known: make(map[string]func(b *model.TypeInspectionBuilder)),
		calls: make(map[string]int),
	}
}

func (s *stubInspector) add(fqn string, fill func(b *model.TypeInspectionBuilder)) *stubInspector {
	s.known[fqn] = fill
	return s
}

func (s *stubInspector) Inspect(reg *TypeRegistry, fqn string) (model.TypeID, error) {
	s.calls[fqn]++
	fill, ok := s.known[fqn]
	if !ok {
		return model.NoType, errors.New(errors.CodeUnresolvedType, "unknown")
	}
	id := reg.GetOrCreate(fqn)
	t := reg.Type(id)
	if t.Inspection.IsSet() {
		return id, nil
	}
	b := model.NewTypeInspectionBuilder(model.NatureClass).SetModifiers(model.ModPublic)
	if fqn != ObjectFQN {
		b.SetParent(model.Of(reg.Object()))
	}
	if fill != nil {
		fill(b)
	}
	_ = t.Inspection.Set(b.Build())
	return id, nil
}

func newTestRegistry() (*TypeRegistry, *stubInspector) {
	stub := newStubInspector().
		add(ObjectFQN, nil).
		add(StringFQN, nil)
	return NewTypeRegistry(stub), stub
}

// addMethod 给 builder 所属类型追加一个方法签名，参数类型依次给出
func addMethod(reg *TypeRegistry, owner model.TypeID, b *model.TypeInspectionBuilder, name string, static, varArgs bool, params ...model.ParameterizedType) model.MethodID {
	m := reg.Arena().NewMethod(owner, name, false)
	mb := model.NewMethodInspectionBuilder(model.KindMethod).SetModifiers(model.ModPublic).SetReturnType(model.Void.PT())
	if static {
		mb.SetModifiers(model.ModStatic)
	}
	for i, pt := range params {
		p := reg.Arena().NewParameter(m.ID, i, string(rune('a'+i)))
		last := varArgs && i == len(params)-1
		_ = p.Inspection.Set(&model.ParameterInspection{Type: pt, VarArgs: last})
		mb.AddParameter(p.ID, last)
	}
	_ = m.Inspection.Set(mb.Build())
	b.AddMethod(m.ID)
	return m.ID
}

// declareClass 声明源码类并立即写入签名
func declareClass(reg *TypeRegistry, pkg, name string, fill func(id model.TypeID, b *model.TypeInspectionBuilder)) model.TypeID {
	id, err := reg.DeclareSource(pkg, model.NoType, name)
	if err != nil {
		panic(err)
	}
	b := model.NewTypeInspectionBuilder(model.NatureClass).SetParent(model.Of(reg.Object()))
	if fill != nil {
		fill(id, b)
	}
	_ = reg.Type(id).Inspection.Set(b.Build())
	return id
}
