package core

import (
	"sync"

	"github.com/CodMac/jsema/model"
)

// DiagnosticSink 接收结构化诊断，Items 返回目前收到的全部诊断
type DiagnosticSink interface {
	Report(d model.Diagnostic)
	Items() []model.Diagnostic
}

var _ DiagnosticSink = (*Diagnostics)(nil)

// Diagnostics 线程安全的收集器
type Diagnostics struct {
	mu    sync.Mutex
	items []model.Diagnostic
}

func NewDiagnostics() *Diagnostics { return &Diagnostics{} }

func (d *Diagnostics) Report(diag model.Diagnostic) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = append(d.items, diag)
}

func (d *Diagnostics) Items() []model.Diagnostic {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Diagnostic(nil), d.items...)
}
