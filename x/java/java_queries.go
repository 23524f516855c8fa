package java

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// JavaDeclarationQuery 声明预扫描：全部类型声明，按文档顺序返回（外层先于内层）。
// 约定：@type_decl 为声明节点，@type_name 为名称。
const JavaDeclarationQuery = `
[
  (class_declaration name: (identifier) @type_name) @type_decl
  (interface_declaration name: (identifier) @type_name) @type_decl
  (enum_declaration name: (identifier) @type_name) @type_decl
  (record_declaration name: (identifier) @type_name) @type_decl
  (annotation_type_declaration name: (identifier) @type_name) @type_decl
]
`

// JavaImportQuery 导入与包声明
const JavaImportQuery = `
[
  (package_declaration [(identifier) (scoped_identifier)] @package_name)
  (import_declaration [(identifier) (scoped_identifier)] @import_path) @import_stmt
]
`

// declarationMatch 一条类型声明命中
type declarationMatch struct {
	decl sitter.Node
	name sitter.Node
}

type importMatch struct {
	stmt sitter.Node
	path sitter.Node
}

func runQuery(q *sitter.Query, root *sitter.Node, source []byte, handle func(match *sitter.QueryMatch)) {
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(q, root, source)
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		handle(match)
	}
}

func findCapturedNode(q *sitter.Query, match *sitter.QueryMatch, name string) *sitter.Node {
	idx, ok := q.CaptureIndexForName(name)
	if !ok {
		return nil
	}
	nodes := match.NodesForCaptureIndex(idx)
	if len(nodes) > 0 {
		return &nodes[0]
	}
	return nil
}

func collectDeclarations(q *sitter.Query, root *sitter.Node, source []byte) []declarationMatch {
	var out []declarationMatch
	runQuery(q, root, source, func(match *sitter.QueryMatch) {
		decl, name := findCapturedNode(q, match, "type_decl"), findCapturedNode(q, match, "type_name")
		if decl != nil && name != nil {
			out = append(out, declarationMatch{decl: *decl, name: *name})
		}
	})
	return out
}

// collectImports 返回包名（可能为空）与导入列表
func collectImports(q *sitter.Query, root *sitter.Node, source []byte) (string, []importMatch) {
	var pkg string
	var out []importMatch
	runQuery(q, root, source, func(match *sitter.QueryMatch) {
		if n := findCapturedNode(q, match, "package_name"); n != nil {
			pkg = n.Utf8Text(source)
			return
		}
		stmt, path := findCapturedNode(q, match, "import_stmt"), findCapturedNode(q, match, "import_path")
		if stmt != nil && path != nil {
			out = append(out, importMatch{stmt: *stmt, path: *path})
		}
	})
	return pkg, out
}
