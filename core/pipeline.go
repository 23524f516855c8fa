package core

import (
	"log/slog"

	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
)

// Options 影响容错行为的开关
type Options struct {
	// Strict 含语法错误的语句不再丢弃告警，而是作为 UNSUPPORTED_CONSTRUCT 失败
	Strict bool
	// KeepGoing 某个类型组解析失败时记录诊断并继续其余类型
	KeepGoing bool
}

// Environment 一次分析运行共享的全局状态。Registry 是唯一跨 goroutine 修改的结构。
type Environment struct {
	Registry    *TypeRegistry
	Root        *TypeContext
	Diagnostics DiagnosticSink
	Logger      *slog.Logger
	Options     Options
}

func NewEnvironment(bytecode BytecodeInspector, logger *slog.Logger) *Environment {
	if logger == nil {
		logger = slog.Default()
	}
	reg := NewTypeRegistry(bytecode)
	return &Environment{
		Registry:    reg,
		Root:        NewRootTypeContext(reg),
		Diagnostics: NewDiagnostics(),
		Logger:      logger,
	}
}

// Error 同时写日志与诊断
func (env *Environment) Error(kind string, loc *model.Location, subject string, err error) {
	env.Logger.Error("resolution failed", "kind", kind, "subject", subject, "error", err)
	env.Diagnostics.Report(model.Diagnostic{
		Severity: model.SeverityError,
		Kind:     kind,
		Location: loc,
		Subject:  subject,
		Detail:   err.Error(),
	})
}

// Warn 同时写日志与诊断
func (env *Environment) Warn(kind string, loc *model.Location, subject, detail string) {
	env.Logger.Warn(detail, "kind", kind, "subject", subject, "location", loc.String())
	env.Diagnostics.Report(model.Diagnostic{
		Severity: model.SeverityWarning,
		Kind:     kind,
		Location: loc,
		Subject:  subject,
		Detail:   detail,
	})
}

// ==========================================
// 语言前端 (Language Frontend)
// ==========================================

// Inspector 第一遍：声明预扫描、类型头与成员签名三个阶段。
// 每个阶段须在全部编译单元上完成后才能进入下一阶段。
// Declare 与 InspectSignatures 可以按单元并行；InspectHeaders 按需跨单元递归，须在单个 goroutine 中调用。
type Inspector interface {
	Declare(fc *FileContext) error
	InspectHeaders(fc *FileContext) error
	InspectSignatures(fc *FileContext) ([]model.TypeID, error)
}

// Resolver 第二遍：构建方法体与字段初始化器，并对类型及成员做依赖排序。单线程调用。
type Resolver interface {
	Resolve(types map[model.TypeID]*TypeContext) (*model.SortedTypes, error)
}

// Frontend 同一次运行中共享状态的一组语言组件
type Frontend struct {
	Inspector Inspector
	Resolver  Resolver
	// Close 释放前端持有的语法查询等资源，可为 nil
	Close func()
}

type FrontendFactory func(env *Environment) (*Frontend, error)

var (
	frontendMap = make(map[Language]FrontendFactory)
	bytecodeMap = make(map[Language]func() BytecodeInspector)
)

func RegisterFrontend(lang Language, factory FrontendFactory) {
	frontendMap[lang] = factory
}

func GetFrontend(lang Language, env *Environment) (*Frontend, error) {
	factory, ok := frontendMap[lang]
	if !ok {
		return nil, errors.New(errors.CodeInternal, "no frontend registered").WithContext(errors.CtxKind, string(lang))
	}
	return factory(env)
}

// RegisterBytecodeInspector 注册语言内置的非源码类型签名来源
func RegisterBytecodeInspector(lang Language, factory func() BytecodeInspector) {
	bytecodeMap[lang] = factory
}

// GetBytecodeInspector 未注册时返回 nil，此时所有非源码类型都无法加载
func GetBytecodeInspector(lang Language) BytecodeInspector {
	if factory, ok := bytecodeMap[lang]; ok {
		return factory()
	}
	return nil
}
