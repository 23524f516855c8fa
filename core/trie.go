package core

import (
	"sort"
	"strings"

	"github.com/CodMac/jsema/model"
)

// packageTrie 以点号分段的前缀树，同时记录包与类型
type packageTrie struct {
	root *trieNode
}

type trieNode struct {
	children  map[string]*trieNode
	typeID    model.TypeID
	isPackage bool
	// pkgPrefix 该节点是某个已知包的前缀（含自身）
	pkgPrefix bool
}

func newPackageTrie() *packageTrie {
	return &packageTrie{root: &trieNode{}}
}

func (t *packageTrie) walk(segments []string, create bool) *trieNode {
	n := t.root
	for _, s := range segments {
		child, ok := n.children[s]
		if !ok {
			if !create {
				return nil
			}
			if n.children == nil {
				n.children = make(map[string]*trieNode)
			}
			child = &trieNode{}
			n.children[s] = child
		}
		n = child
	}
	return n
}

func (t *packageTrie) addPackage(pkg string) {
	if pkg == "" {
		return
	}
	n := t.root
	for _, s := range strings.Split(pkg, ".") {
		n = t.walkChild(n, s)
		n.pkgPrefix = true
	}
	n.isPackage = true
}

func (t *packageTrie) walkChild(n *trieNode, s string) *trieNode {
	child, ok := n.children[s]
	if !ok {
		if n.children == nil {
			n.children = make(map[string]*trieNode)
		}
		child = &trieNode{}
		n.children[s] = child
	}
	return child
}

func (t *packageTrie) addType(fqn string, id model.TypeID) {
	t.walk(strings.Split(fqn, "."), true).typeID = id
}

func (t *packageTrie) isPackagePrefix(prefix string) bool {
	n := t.walk(strings.Split(prefix, "."), false)
	return n != nil && n.pkgPrefix
}

func (t *packageTrie) isPackage(pkg string) bool {
	n := t.walk(strings.Split(pkg, "."), false)
	return n != nil && n.isPackage
}

// visit 深度优先枚举 prefix 之下（含自身）的全部类型，同层按名称排序
func (t *packageTrie) visit(prefix string, fn func(fqn string, id model.TypeID)) {
	var n *trieNode
	if prefix == "" {
		n = t.root
	} else {
		n = t.walk(strings.Split(prefix, "."), false)
	}
	if n == nil {
		return
	}
	var rec func(path string, node *trieNode)
	rec = func(path string, node *trieNode) {
		if node.typeID != model.NoType {
			fn(path, node.typeID)
		}
		keys := make([]string, 0, len(node.children))
		for k := range node.children {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			next := k
			if path != "" {
				next = path + "." + k
			}
			rec(next, node.children[k])
		}
	}
	rec(prefix, n)
}
