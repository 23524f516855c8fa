package java

import (
	"strings"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/model"
	"github.com/gobwas/glob"
)

// 平衡模式下默认视为背景噪音的外部包
var defaultNoisePackages = []string{"java.lang.**", "java.util.**", "java.io.**"}

type NoiseFilter struct {
	core.DefaultNoiseFilter
	packages []glob.Glob
}

func NewJavaNoiseFilter(level core.FilterLevel) *NoiseFilter {
	f := &NoiseFilter{DefaultNoiseFilter: core.DefaultNoiseFilter{Level: level}}
	_ = f.SetPackages(defaultNoisePackages)
	return f
}

// SetPackages 以 glob 描述外部噪音包，'.' 为分隔符；为空时恢复默认
func (f *NoiseFilter) SetPackages(patterns []string) error {
	if len(patterns) == 0 {
		patterns = defaultNoisePackages
	}
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return err
		}
		compiled = append(compiled, g)
	}
	f.packages = compiled
	return nil
}

func (f *NoiseFilter) IsNoise(rel *model.DependencyRelation) bool {
	if f.Level == core.LevelRaw {
		return false
	}

	// 规则 1 & 2: 源码目标与包含关系始终保留
	if !rel.External || rel.Type == model.Contain {
		return false
	}

	if f.Level == core.LevelPure {
		return true
	}

	// 规则 3: 平衡模式下指向噪音包的外部引用 -> 噪音
	return f.matches(targetType(rel))
}

func (f *NoiseFilter) matches(fqn string) bool {
	for _, g := range f.packages {
		if g.Match(fqn) {
			return true
		}
	}
	return false
}

// targetType 目标所属类型的 FQN；方法名形如 a.b.C.m(int)，字段名形如 a.b.C.f
func targetType(rel *model.DependencyRelation) string {
	name := rel.TargetName
	switch rel.Target.Kind {
	case model.MemberMethod:
		if i := strings.IndexByte(name, '('); i >= 0 {
			name = name[:i]
		}
		fallthrough
	case model.MemberField:
		if j := strings.LastIndexByte(name, '.'); j >= 0 {
			name = name[:j]
		}
	}
	return name
}

func (f *NoiseFilter) SetLevel(level core.FilterLevel) {
	f.Level = level
}
