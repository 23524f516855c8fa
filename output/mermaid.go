package output

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/model"
)

func safeID(id string) string {
	r := strings.NewReplacer(".", "_", "$", "_", "(", "_", ")", "_", "[", "_", "]", "_", " ", "_", "@", "at")
	return "n_" + r.Replace(id)
}

func getNodeShape(nature model.TypeNature, name string) string {
	switch nature {
	case model.NatureInterface, model.NatureAnnotation:
		return fmt.Sprintf("([\"%s <small>(%s)</small>\"])", name, nature)
	case model.NatureEnum, model.NatureRecord:
		return fmt.Sprintf("[/\"%s <small>(%s)</small>\"/]", name, nature)
	default:
		return fmt.Sprintf("[\"%s <small>(%s)</small>\"]", name, nature)
	}
}

// typeEdge 主类型之间的聚合边
type typeEdge struct {
	from, to model.TypeID
}

// ExportMermaidHTML 输出主类型级依赖图：按包分组，类型环内的节点高亮，外部目标不画
func ExportMermaidHTML(outputPath string, reg *core.TypeRegistry, sorted *model.SortedTypes, rels []*model.DependencyRelation) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteMermaid(f, reg, sorted, rels)
}

func WriteMermaid(w io.Writer, reg *core.TypeRegistry, sorted *model.SortedTypes, rels []*model.DependencyRelation) error {
	arena := reg.Arena()

	// 1. 节点按包分组
	byPackage := make(map[string][]*model.SortedType)
	var packages []string
	inCycle := make(map[model.TypeID]bool)
	for _, st := range sorted.Flatten() {
		t := arena.Type(st.Primary)
		if _, ok := byPackage[t.PackageName]; !ok {
			packages = append(packages, t.PackageName)
		}
		byPackage[t.PackageName] = append(byPackage[t.PackageName], st)
		if st.InCycle() {
			inCycle[st.Primary] = true
		}
	}
	slices.Sort(packages)

	// 2. 成员级关系折叠到主类型
	var edges []typeEdge
	seen := make(map[typeEdge]bool)
	for _, rel := range rels {
		if rel.External || rel.Type == model.Contain {
			continue
		}
		e := typeEdge{from: arena.PrimaryType(arena.Owner(rel.Source)), to: arena.PrimaryType(arena.Owner(rel.Target))}
		if e.from == e.to || e.from == model.NoType || e.to == model.NoType || seen[e] {
			continue
		}
		seen[e] = true
		edges = append(edges, e)
	}

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8"><script src="https://cdn.jsdelivr.net/npm/mermaid/dist/mermaid.min.js"></script></head>
<body><div class="mermaid">graph LR
`)
	for _, pkg := range packages {
		label := pkg
		if label == "" {
			label = "(default)"
		}
		fmt.Fprintf(&sb, "  subgraph %s [📦 %s]\n", safeID("pkg."+pkg), label)
		for _, st := range byPackage[pkg] {
			t := arena.Type(st.Primary)
			nature := model.NatureClass
			if ti, ok := reg.TryTypeInspection(st.Primary); ok {
				nature = ti.Nature
			}
			fmt.Fprintf(&sb, "    %s%s\n", safeID(t.FQN), getNodeShape(nature, t.SimpleName))
		}
		sb.WriteString("  end\n")
	}
	for _, e := range edges {
		style := "-->"
		if inCycle[e.from] && inCycle[e.to] {
			style = "==>"
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", safeID(arena.Type(e.from).FQN), style, safeID(arena.Type(e.to).FQN))
	}
	if len(inCycle) > 0 {
		sb.WriteString("  classDef cycle fill:#fde2e1,stroke:#c0392b,stroke-width:2px\n")
		ids := make([]string, 0, len(inCycle))
		for id := range inCycle {
			ids = append(ids, safeID(arena.Type(id).FQN))
		}
		slices.Sort(ids)
		fmt.Fprintf(&sb, "  class %s cycle\n", strings.Join(ids, ","))
	}
	sb.WriteString(`</div><script>mermaid.initialize({startOnLoad:true, maxTextSize:1000000});</script></body></html>
`)
	_, err := io.WriteString(w, sb.String())
	return err
}
