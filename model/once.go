package model

import (
	"sync/atomic"

	"github.com/CodMac/jsema/core/errors"
)

// Once 写一次单元：Unset | Set(value)。第二次 Set 返回 DUPLICATE_DEFINITION。
// 零值可用，不可复制。
type Once[T any] struct {
	p atomic.Pointer[T]
}

func (o *Once[T]) Set(v T) error {
	if !o.p.CompareAndSwap(nil, &v) {
		return errors.New(errors.CodeDuplicateDefinition, "value already set")
	}
	return nil
}

func (o *Once[T]) IsSet() bool { return o.p.Load() != nil }

// Get 未设置时 ok 为 false
func (o *Once[T]) Get() (T, bool) {
	if p := o.p.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Value 未设置时返回 NOT_SET 错误
func (o *Once[T]) Value() (T, error) {
	if p := o.p.Load(); p != nil {
		return *p, nil
	}
	var zero T
	return zero, errors.New(errors.CodeNotSet, "value not yet set")
}
