package parser

import (
	"sync"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

var (
	poolsMu sync.Mutex
	pools   = make(map[core.Language]*ParserPool)
)

// GetLanguage 返回语言对应的 tree-sitter 语法
func GetLanguage(lang core.Language) (*sitter.Language, error) {
	switch lang {
	case core.LangJava:
		return sitter.NewLanguage(tree_sitter_java.Language()), nil
	}
	return nil, errors.New(errors.CodeInternal, "unsupported language").WithContext(errors.CtxKind, string(lang))
}

func poolFor(lang core.Language) (*ParserPool, error) {
	poolsMu.Lock()
	defer poolsMu.Unlock()
	if p, ok := pools[lang]; ok {
		return p, nil
	}
	tsLang, err := GetLanguage(lang)
	if err != nil {
		return nil, err
	}
	p := NewParserPool(tsLang)
	pools[lang] = p
	return p, nil
}

// TreeSitterParser 每个 worker 持有一个；语法树由调用方负责 Close
type TreeSitterParser struct {
	Language core.Language
	pool     *ParserPool
	sp       *sitter.Parser
}

func NewParser(lang core.Language) (*TreeSitterParser, error) {
	pool, err := poolFor(lang)
	if err != nil {
		return nil, err
	}
	return &TreeSitterParser{Language: lang, pool: pool, sp: pool.Get()}, nil
}

func (p *TreeSitterParser) ParseSource(source []byte) (*sitter.Tree, error) {
	tree := p.sp.Parse(source, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeInternal, "tree-sitter returned no tree")
	}
	return tree, nil
}

// Close 将底层 parser 归还池中
func (p *TreeSitterParser) Close() {
	if p.sp != nil {
		p.pool.Put(p.sp)
		p.sp = nil
	}
}
