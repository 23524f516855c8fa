package core

import (
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
)

// Linker 根据第一遍产出的签名推导结构关系（继承、实现、包含、签名中的类型引用）。
type Linker interface {
	LinkHierarchy(env *Environment, types []model.TypeID) []*model.DependencyRelation
}

var linkerMap = make(map[Language]Linker)

// RegisterLinker 注册一个语言与其对应的 Linker
func RegisterLinker(lang Language, linker Linker) {
	linkerMap[lang] = linker
}

// GetLinker 根据语言类型获取对应的 Linker 实例。
func GetLinker(lang Language) (Linker, error) {
	linker, ok := linkerMap[lang]
	if !ok {
		return nil, errors.New(errors.CodeInternal, "no linker registered").WithContext(errors.CtxKind, string(lang))
	}
	return linker, nil
}
