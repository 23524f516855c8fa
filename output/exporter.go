package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodMac/jsema/processor"
)

type OutType string

const (
	JsonL   OutType = "jsonl"
	Mermaid OutType = "mermaid"
)

const (
	SortedTypesFile = "sorted_types.jsonl"
	RelationsFile   = "relations.jsonl"
	DiagnosticsFile = "diagnostics.jsonl"
	MermaidFile     = "dependency.html"
	ManifestFile    = "manifest.json"
)

type Exporter struct {
	outputDir  string
	outputType OutType
}

func NewExporter(outputDir string, outputType OutType) *Exporter {
	return &Exporter{outputDir: outputDir, outputType: OutType(strings.ToLower(string(outputType)))}
}

// Export 按输出类型写出结果，最后写 manifest.json
func (p *Exporter) Export(res *processor.Result, manifest *Manifest) error {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return err
	}
	manifest.Summarize(res.Sorted, res.Relations)

	switch p.outputType {
	case JsonL:
		if err := p.exportJsonL(res); err != nil {
			return err
		}
		manifest.Outputs = append(manifest.Outputs, SortedTypesFile, RelationsFile, DiagnosticsFile)
	case Mermaid:
		if err := ExportMermaidHTML(p.path(MermaidFile), res.Env.Registry, res.Sorted, res.Relations); err != nil {
			return err
		}
		manifest.Outputs = append(manifest.Outputs, MermaidFile)
	default:
		return fmt.Errorf("unsupported output type: %s", p.outputType)
	}
	manifest.Outputs = append(manifest.Outputs, ManifestFile)
	return manifest.WriteFile(p.path(ManifestFile))
}

func (p *Exporter) exportJsonL(res *processor.Result) error {
	if _, err := ExportSortedTypes(p.path(SortedTypesFile), res.Env.Registry, res.Sorted); err != nil {
		return err
	}
	if _, err := ExportRelations(p.path(RelationsFile), res.Relations); err != nil {
		return err
	}
	_, err := ExportDiagnostics(p.path(DiagnosticsFile), res.Sorted.Diagnostics)
	return err
}

func (p *Exporter) path(name string) string {
	return filepath.Join(p.outputDir, name)
}
