package core

// Group 拓扑序中的一个单元：单个节点，或一个强连通分量（Cycle 为 true）
type Group[T comparable] struct {
	Members []T
	Cycle   bool
}

// DependencyGraph 有向依赖图，边 a -> b 表示 a 依赖 b（b 须先处理）。
// 指向图外节点的边与自环在排序时忽略。
type DependencyGraph[T comparable] struct {
	nodes []T
	index map[T]int
	deps  [][]T
}

func NewDependencyGraph[T comparable]() *DependencyGraph[T] {
	return &DependencyGraph[T]{index: make(map[T]int)}
}

// AddNode 登记节点及其依赖；重复调用时合并依赖
func (g *DependencyGraph[T]) AddNode(n T, deps ...T) {
	i, ok := g.index[n]
	if !ok {
		i = len(g.nodes)
		g.index[n] = i
		g.nodes = append(g.nodes, n)
		g.deps = append(g.deps, nil)
	}
	g.deps[i] = append(g.deps[i], deps...)
}

func (g *DependencyGraph[T]) Contains(n T) bool {
	_, ok := g.index[n]
	return ok
}

func (g *DependencyGraph[T]) Len() int { return len(g.nodes) }

// Dependencies 图内的直接依赖，不含自环，去重
func (g *DependencyGraph[T]) Dependencies(n T) []T {
	i, ok := g.index[n]
	if !ok {
		return nil
	}
	return g.edges(i)
}

func (g *DependencyGraph[T]) edges(i int) []T {
	var out []T
	seen := make(map[int]bool)
	for _, d := range g.deps[i] {
		j, ok := g.index[d]
		if !ok || j == i || seen[j] {
			continue
		}
		seen[j] = true
		out = append(out, d)
	}
	return out
}

// ==========================================
// 排序 (Tarjan SCC + Kahn)
// ==========================================

// Sort 依赖在前的拓扑序。强连通分量整体作为一个 Group 输出；
// 同时就绪的多个单元按 rank 最小者优先，环内成员也按 rank 排列。
func (g *DependencyGraph[T]) Sort(rank func(T) int) []Group[T] {
	comps := g.tarjan()

	compOf := make([]int, len(g.nodes))
	for c, members := range comps {
		for _, i := range members {
			compOf[i] = c
		}
	}

	// 分量间的依赖：pending[c] 为 c 尚未满足的依赖数，dependents 为反向边
	pending := make([]int, len(comps))
	dependents := make([][]int, len(comps))
	for c, members := range comps {
		seen := make(map[int]bool)
		for _, i := range members {
			for _, d := range g.edges(i) {
				dc := compOf[g.index[d]]
				if dc == c || seen[dc] {
					continue
				}
				seen[dc] = true
				pending[c]++
				dependents[dc] = append(dependents[dc], c)
			}
		}
	}

	compRank := make([]int, len(comps))
	for c, members := range comps {
		sortByRank(members, func(i int) int { return rank(g.nodes[i]) })
		compRank[c] = rank(g.nodes[members[0]])
	}

	var ready []int
	for c := range comps {
		if pending[c] == 0 {
			ready = append(ready, c)
		}
	}

	out := make([]Group[T], 0, len(comps))
	for len(ready) > 0 {
		best := 0
		for k := 1; k < len(ready); k++ {
			if compRank[ready[k]] < compRank[ready[best]] {
				best = k
			}
		}
		c := ready[best]
		ready = append(ready[:best], ready[best+1:]...)

		grp := Group[T]{Cycle: len(comps[c]) > 1}
		for _, i := range comps[c] {
			grp.Members = append(grp.Members, g.nodes[i])
		}
		out = append(out, grp)

		for _, dc := range dependents[c] {
			pending[dc]--
			if pending[dc] == 0 {
				ready = append(ready, dc)
			}
		}
	}
	return out
}

// tarjan 返回全部强连通分量（节点下标）
func (g *DependencyGraph[T]) tarjan() [][]int {
	n := len(g.nodes)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var stack []int
	var comps [][]int
	counter := 0

	var strongConnect func(v int)
	strongConnect = func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, d := range g.edges(v) {
			w := g.index[d]
			if index[w] == -1 {
				strongConnect(w)
				low[v] = min(low[v], low[w])
			} else if onStack[w] {
				low[v] = min(low[v], index[w])
			}
		}

		if low[v] == index[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			comps = append(comps, comp)
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongConnect(v)
		}
	}
	return comps
}

func sortByRank(xs []int, rank func(int) int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && rank(xs[j]) < rank(xs[j-1]); j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
