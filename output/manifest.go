package output

import (
	"encoding/json"
	"os"
	"time"

	"github.com/CodMac/jsema/model"
	"github.com/google/uuid"
)

// Manifest 一次运行的摘要，写入 manifest.json
type Manifest struct {
	RunID     string    `json:"RunID"`
	CreatedAt time.Time `json:"CreatedAt"`
	Root      string    `json:"Root"`
	Format    string    `json:"Format"`
	Level     int       `json:"Level"`

	Files     int `json:"Files"`
	Types     int `json:"Types"`
	Cycles    int `json:"Cycles"`
	Relations int `json:"Relations"`

	Diagnostics map[model.Severity]int `json:"Diagnostics"`
	// Outputs 本次写出的文件名
	Outputs []string `json:"Outputs"`
}

func NewManifest(root, format string, level int) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Root:        root,
		Format:      format,
		Level:       level,
		Diagnostics: make(map[model.Severity]int),
	}
}

// Summarize 从排序结果与关系中统计计数
func (m *Manifest) Summarize(sorted *model.SortedTypes, rels []*model.DependencyRelation) {
	m.Types, m.Cycles = 0, 0
	for _, c := range sorted.Cycles {
		m.Types += len(c.Types)
		if c.IsCycle() {
			m.Cycles++
		}
	}
	m.Relations = len(rels)
	clear(m.Diagnostics)
	for _, d := range sorted.Diagnostics {
		m.Diagnostics[d.Severity]++
	}
}

func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
