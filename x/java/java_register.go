package java

import (
	"github.com/CodMac/jsema/core"
)

func init() {
	core.RegisterFrontend(core.LangJava, func(env *core.Environment) (*core.Frontend, error) {
		s, err := NewSession(env)
		if err != nil {
			return nil, err
		}
		return &core.Frontend{Inspector: NewInspector(s), Resolver: NewResolver(s), Close: s.Close}, nil
	})
	core.RegisterBytecodeInspector(core.LangJava, func() core.BytecodeInspector { return NewBuiltinInspector() })
	core.RegisterLinker(core.LangJava, NewJavaLinker())
	core.RegisterNoiseFilter(core.LangJava, NewJavaNoiseFilter(core.LevelBalanced))
}
