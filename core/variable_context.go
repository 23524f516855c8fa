package core

import (
	"github.com/CodMac/jsema/model"
)

// VariableContext 变量作用域帧。每个帧只持有自己新增的绑定，父链只读，
// 闭包可以直接引用所在帧而无需复制整条链。只在单个 goroutine 内使用。
type VariableContext struct {
	parent *VariableContext
	locals map[string]*model.LocalVariable
	order  []*model.LocalVariable
	params map[string]*model.ParameterInfo
	fields map[string]*model.FieldReference
}

func NewVariableContext() *VariableContext {
	return &VariableContext{}
}

// NewChild 进入块、循环体、分支、catch、lambda 等结构时创建新帧
func (vc *VariableContext) NewChild() *VariableContext {
	return &VariableContext{parent: vc}
}

func (vc *VariableContext) Parent() *VariableContext { return vc.parent }

// BindLocal 同一帧内同名局部变量先到先得，重复绑定被忽略并返回 false
func (vc *VariableContext) BindLocal(lv *model.LocalVariable) bool {
	if vc.locals == nil {
		vc.locals = make(map[string]*model.LocalVariable)
	}
	if _, exists := vc.locals[lv.Name]; exists {
		return false
	}
	vc.locals[lv.Name] = lv
	vc.order = append(vc.order, lv)
	return true
}

// Locals 本帧绑定的局部变量，按绑定顺序
func (vc *VariableContext) Locals() []*model.LocalVariable {
	return vc.order
}

func (vc *VariableContext) BindParameter(p *model.ParameterInfo) bool {
	if vc.params == nil {
		vc.params = make(map[string]*model.ParameterInfo)
	}
	if _, exists := vc.params[p.Name]; exists {
		return false
	}
	vc.params[p.Name] = p
	return true
}

// BindField 幂等：同一字段重复绑定不产生任何效果
func (vc *VariableContext) BindField(f *model.FieldReference) bool {
	if vc.fields == nil {
		vc.fields = make(map[string]*model.FieldReference)
	}
	if _, exists := vc.fields[f.Name]; exists {
		return false
	}
	vc.fields[f.Name] = f
	return true
}

// Resolve 逐帧查找：局部变量 > 参数 > 字段 > 外层帧
func (vc *VariableContext) Resolve(name string) (model.Variable, bool) {
	for c := vc; c != nil; c = c.parent {
		if lv, ok := c.locals[name]; ok {
			return lv, true
		}
		if p, ok := c.params[name]; ok {
			return p, true
		}
		if f, ok := c.fields[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// IsLocal 名称当前解析到的是否为局部变量（含 lambda 参数与模式变量）
func (vc *VariableContext) IsLocal(name string) bool {
	v, ok := vc.Resolve(name)
	if !ok {
		return false
	}
	_, local := v.(*model.LocalVariable)
	return local
}
