package errors

import (
	"errors"
	"fmt"
)

// ErrorCode 语义模型构建过程中的错误分类
type ErrorCode string

const (
	CodeUnresolvedName       ErrorCode = "UNRESOLVED_NAME"
	CodeUnresolvedType       ErrorCode = "UNRESOLVED_TYPE"
	CodeUnsupportedConstruct ErrorCode = "UNSUPPORTED_CONSTRUCT"
	CodeOperatorMismatch     ErrorCode = "OPERATOR_TYPE_MISMATCH"
	CodeDuplicateDefinition  ErrorCode = "DUPLICATE_DEFINITION"
	CodeMissingSupertype     ErrorCode = "MISSING_SUPERTYPE"
	CodeNotSet               ErrorCode = "NOT_SET"
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// 上下文键名
const (
	CtxName   = "name"
	CtxType   = "type"
	CtxMethod = "method"
	CtxField  = "field"
	CtxPath   = "path"
	CtxLine   = "line"
	CtxKind   = "kind"
)

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

func Newf(code ErrorCode, format string, args ...interface{}) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(err error, code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg, Err: err}
}

// AddContext 给已有错误追加上下文；非 DomainError 会被包装为 INTERNAL_ERROR。
// 已存在的键不会被覆盖，保留最内层的信息。
func AddContext(err error, key string, value interface{}) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		if _, exists := de.Context[key]; !exists {
			de.WithContext(key, value)
		}
		return err
	}
	return &DomainError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     err,
		Context: map[string]interface{}{key: value},
	}
}

func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf 返回错误码，非 DomainError 返回空串
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
