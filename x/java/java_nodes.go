package java

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ==========================================
// 语法树遍历辅助 (Node Helpers)
// ==========================================

func isComment(n *sitter.Node) bool {
	k := n.Kind()
	return k == KindLineComment || k == KindBlockComment
}

// namedChildren 具名子节点，跳过注释
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := n.NamedChildCount()
	out := make([]*sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || isComment(child) {
			continue
		}
		out = append(out, child)
	}
	return out
}

// childrenByField 同名字段可能出现多次（for 的 init/update、数组维度）
func childrenByField(n *sitter.Node, field string) []*sitter.Node {
	if n == nil {
		return nil
	}
	var out []*sitter.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		if n.FieldNameForChild(uint32(i)) == field {
			if child := n.Child(i); child != nil {
				out = append(out, child)
			}
		}
	}
	return out
}

func findChildOfKind(n *sitter.Node, kinds ...string) *sitter.Node {
	for _, child := range namedChildren(n) {
		for _, k := range kinds {
			if child.Kind() == k {
				return child
			}
		}
	}
	return nil
}

// hasToken 是否有指定的匿名子节点（如 static、default、...）
func hasToken(n *sitter.Node, token string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child != nil && !child.IsNamed() && child.Kind() == token {
			return true
		}
	}
	return false
}

// hasParseError ERROR 节点或缺失节点
func hasParseError(n *sitter.Node) bool {
	return n.IsError() || n.IsMissing() || n.HasError()
}

// unwrapParens 去掉 parenthesized_expression 外壳
func unwrapParens(n *sitter.Node) *sitter.Node {
	for n != nil && n.Kind() == KindParenthesized {
		children := namedChildren(n)
		if len(children) != 1 {
			return n
		}
		n = children[0]
	}
	return n
}

// dimensionCount dimensions 节点中 [] 的个数
func dimensionCount(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	count := 0
	for i := uint(0); i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil && c.Kind() == "[" {
			count++
		}
	}
	return count
}

func isTypeDeclaration(kind string) bool {
	switch kind {
	case KindClassDeclaration, KindInterfaceDeclaration, KindEnumDeclaration,
		KindRecordDeclaration, KindAnnotationTypeDeclaration:
		return true
	}
	return false
}
