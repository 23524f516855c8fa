package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(groups []Group[string]) map[string]int {
	pos := make(map[string]int)
	for i, g := range groups {
		for _, m := range g.Members {
			pos[m] = i
		}
	}
	return pos
}

func declOrder(order ...string) func(string) int {
	rank := make(map[string]int)
	for i, n := range order {
		rank[n] = i
	}
	return func(s string) int { return rank[s] }
}

func TestDependencyGraph_TopologicalValidity(t *testing.T) {
	g := NewDependencyGraph[string]()
	g.AddNode("a", "b", "c")
	g.AddNode("b", "d")
	g.AddNode("c", "d")
	g.AddNode("d")
	g.AddNode("e", "a")

	groups := g.Sort(declOrder("a", "b", "c", "d", "e"))
	require.Len(t, groups, 5)
	pos := positions(groups)
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		for _, d := range g.Dependencies(n) {
			assert.Less(t, pos[d], pos[n], "%s must come before %s", d, n)
		}
	}
	for _, grp := range groups {
		assert.False(t, grp.Cycle)
	}
	// 就绪的 b 与 c 按声明顺序
	assert.Less(t, pos["b"], pos["c"])
}

func TestDependencyGraph_CyclesAreGrouped(t *testing.T) {
	g := NewDependencyGraph[string]()
	g.AddNode("a", "b")
	g.AddNode("b", "c")
	g.AddNode("c", "a", "d")
	g.AddNode("d")
	g.AddNode("e", "e", "c")

	groups := g.Sort(declOrder("a", "b", "c", "d", "e"))
	require.Len(t, groups, 3)

	assert.Equal(t, []string{"d"}, groups[0].Members)

	cycle := append([]string(nil), groups[1].Members...)
	sort.Strings(cycle)
	assert.True(t, groups[1].Cycle)
	assert.Equal(t, []string{"a", "b", "c"}, cycle, "cycle equals the strongly connected component")

	assert.Equal(t, []string{"e"}, groups[2].Members)
	assert.False(t, groups[2].Cycle, "self edges do not form a cycle")
}

func TestDependencyGraph_EdgesOutsideAreDropped(t *testing.T) {
	g := NewDependencyGraph[string]()
	g.AddNode("x", "outside")
	g.AddNode("y", "x")

	assert.Equal(t, []string{}, append([]string{}, g.Dependencies("x")...))
	groups := g.Sort(declOrder("y", "x"))
	require.Len(t, groups, 2)
	assert.Equal(t, "x", groups[0].Members[0])
	assert.Equal(t, "y", groups[1].Members[0])
	assert.False(t, g.Contains("outside"))
}

func TestDependencyGraph_DeclarationOrderTieBreak(t *testing.T) {
	g := NewDependencyGraph[string]()
	for _, n := range []string{"z", "m", "a"} {
		g.AddNode(n)
	}
	groups := g.Sort(declOrder("z", "m", "a"))
	var order []string
	for _, grp := range groups {
		order = append(order, grp.Members...)
	}
	assert.Equal(t, []string{"z", "m", "a"}, order)
}
