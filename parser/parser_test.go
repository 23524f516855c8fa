package parser

import (
	"sync"
	"testing"

	"github.com/CodMac/jsema/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseSource(t *testing.T) {
	p, err := NewParser(core.LangJava)
	require.NoError(t, err)
	defer p.Close()

	tree, err := p.ParseSource([]byte("package a; class A { int x; }"))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "program", root.Kind())
	assert.False(t, root.HasError())
}

func TestParser_UnsupportedLanguage(t *testing.T) {
	_, err := NewParser(core.Language("cobol"))
	assert.Error(t, err)
}

func TestParserPool_Concurrent(t *testing.T) {
	lang, err := GetLanguage(core.LangJava)
	require.NoError(t, err)
	pool := NewParserPool(lang)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sp := pool.Get()
			defer pool.Put(sp)
			tree := sp.Parse([]byte("class C { void m() {} }"), nil)
			defer tree.Close()
			assert.False(t, tree.RootNode().HasError())
		}()
	}
	wg.Wait()
	pool.Put(nil)
}
