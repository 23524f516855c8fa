package core

import (
	"io"
	"log/slog"
	"testing"

	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink 只记录收到的诊断，不加锁
type recordingSink struct {
	items []model.Diagnostic
}

func (r *recordingSink) Report(d model.Diagnostic) { r.items = append(r.items, d) }
func (r *recordingSink) Items() []model.Diagnostic { return r.items }

func TestEnvironment_ReportsToSink(t *testing.T) {
	env := NewEnvironment(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	sink := &recordingSink{}
	env.Diagnostics = sink

	loc := &model.Location{FilePath: "p/A.java", StartLine: 3}
	env.Warn("DROPPED_STATEMENT", loc, "p.A", "statement dropped")
	env.Error("RESOLVE_FAILED", nil, "p.B", errors.New(errors.CodeUnresolvedName, "cannot resolve"))

	require.Len(t, env.Diagnostics.Items(), 2)
	warn, fail := sink.items[0], sink.items[1]
	assert.Equal(t, model.SeverityWarning, warn.Severity)
	assert.Equal(t, "DROPPED_STATEMENT", warn.Kind)
	assert.Same(t, loc, warn.Location)
	assert.Equal(t, model.SeverityError, fail.Severity)
	assert.Equal(t, "p.B", fail.Subject)
	assert.Contains(t, fail.Detail, "cannot resolve")
}

func TestDiagnostics_ConcurrentReport(t *testing.T) {
	d := NewDiagnostics()
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 25; j++ {
				d.Report(model.Diagnostic{Kind: "K"})
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	assert.Len(t, d.Items(), 100)
}
