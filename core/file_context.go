package core

import (
	"sync"

	"github.com/CodMac/jsema/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type ImportEntry struct {
	RawImportPath string          `json:"RawImportPath"`
	IsWildcard    bool            `json:"IsWildcard"`
	IsStatic      bool            `json:"IsStatic"`
	Location      *model.Location `json:"Location,omitempty"`
}

// FileContext 一个编译单元：语法树、源码与第一遍中登记的顶层类型
type FileContext struct {
	FilePath    string
	PackageName string
	RootNode    *sitter.Node
	SourceBytes *[]byte
	Imports     []*ImportEntry
	// Types 本单元声明的顶层类型，按出现顺序
	Types []model.TypeID
	// Scopes 顶层类型所在的编译单元作用域，供第二遍使用
	Scopes map[model.TypeID]*TypeContext

	mutex sync.Mutex
}

func NewFileContext(filePath string, rootNode *sitter.Node, sourceBytes *[]byte) *FileContext {
	return &FileContext{
		FilePath:    filePath,
		RootNode:    rootNode,
		SourceBytes: sourceBytes,
		Scopes:      make(map[model.TypeID]*TypeContext),
	}
}

func (fc *FileContext) AddImport(imp *ImportEntry) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.Imports = append(fc.Imports, imp)
}

func (fc *FileContext) AddType(id model.TypeID) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.Types = append(fc.Types, id)
}

func (fc *FileContext) SetScope(id model.TypeID, tc *TypeContext) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.Scopes[id] = tc
}

// Location 行号从 1 开始，列号保持 tree-sitter 的 0 起
func (fc *FileContext) Location(n *sitter.Node) *model.Location {
	if n == nil {
		return nil
	}
	return &model.Location{
		FilePath:    fc.FilePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}

// Text 节点对应的源码
func (fc *FileContext) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(*fc.SourceBytes)
}
