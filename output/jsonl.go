package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/model"
)

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{encoder: enc}
}

func (w *JSONLWriter) Write(v interface{}) error {
	return w.encoder.Encode(v)
}

// SortedTypeRecord sorted_types.jsonl 的一行；成员以全限定名输出
type SortedTypeRecord struct {
	Order        int        `json:"Order"`
	Group        int        `json:"Group"`
	Primary      string     `json:"Primary"`
	Nature       string     `json:"Nature,omitempty"`
	Members      []string   `json:"Members"`
	MemberCycles [][]string `json:"MemberCycles,omitempty"`
	Cycle        []string   `json:"Cycle,omitempty"`
}

// NewSortedTypeRecords 按解析顺序展开；Group 为类型环的序号，同组即同一强连通分量
func NewSortedTypeRecords(reg *core.TypeRegistry, sorted *model.SortedTypes) []SortedTypeRecord {
	arena := reg.Arena()
	var out []SortedTypeRecord
	for g, c := range sorted.Cycles {
		for _, st := range c.Types {
			rec := SortedTypeRecord{
				Order:   len(out),
				Group:   g,
				Primary: arena.Type(st.Primary).FQN,
				Members: memberNames(arena, st.Members),
			}
			if ti, ok := reg.TryTypeInspection(st.Primary); ok {
				rec.Nature = ti.Nature.String()
			}
			for _, mc := range st.MemberCycles {
				rec.MemberCycles = append(rec.MemberCycles, memberNames(arena, mc))
			}
			for _, id := range st.Cycle {
				rec.Cycle = append(rec.Cycle, arena.Type(id).FQN)
			}
			out = append(out, rec)
		}
	}
	return out
}

func memberNames(arena *model.Arena, refs []model.MemberRef) []string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, arena.MemberName(r))
	}
	return names
}

func writeJSONL[T any](path string, items []T) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	writer := NewJSONLWriter(f)
	for _, item := range items {
		if err := writer.Write(item); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

func ExportSortedTypes(path string, reg *core.TypeRegistry, sorted *model.SortedTypes) (int, error) {
	return writeJSONL(path, NewSortedTypeRecords(reg, sorted))
}

func ExportRelations(path string, rels []*model.DependencyRelation) (int, error) {
	return writeJSONL(path, rels)
}

func ExportDiagnostics(path string, diags []model.Diagnostic) (int, error) {
	return writeJSONL(path, diags)
}
