package treegen

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/treealign/ograph"
)

// RandomTree returns a uniformly random directed ordered tree on n
// vertices named idFn(0)..idFn(n-1), rooted at vertex 0.
//
// Sampling: a random Prüfer sequence of length n-2 decoded into an
// undirected tree, then oriented away from vertex 0 by DFS with
// neighbors in ascending order.
//
// Complexity: O(n log n).
func RandomTree(n int, opts ...Option) (*ograph.Graph, error) {
	return randomTree(n, true, resolve(opts))
}

// RandomOrderedTree is RandomTree with an explicit directedness flag;
// the undirected flavor exists mainly to exercise graph-class
// validation in callers.
func RandomOrderedTree(n int, directed bool, opts ...Option) (*ograph.Graph, error) {
	return randomTree(n, directed, resolve(opts))
}

func randomTree(n int, directed bool, o Options) (*ograph.Graph, error) {
	// 1) Validate the vertex count; the null graph is not a tree.
	if n < 1 {
		return nil, fmt.Errorf("treegen: n=%d: %w", n, ErrTooFewVertices)
	}

	var g *ograph.Graph
	if directed {
		g = ograph.New()
	} else {
		g = ograph.New(ograph.WithUndirected())
	}

	// 2) Vertices in ascending index order.
	for i := 0; i < n; i++ {
		if err := g.AddVertex(o.IDFn(i)); err != nil {
			return nil, fmt.Errorf("treegen: AddVertex(%d): %w", i, err)
		}
	}
	if n == 1 {
		return g, nil
	}

	// 3) Sample a Prüfer sequence and decode the undirected skeleton.
	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = o.Rng.Intn(n)
	}
	adj := decodePrufer(n, seq)

	// 4) Orient edges away from vertex 0, neighbors ascending, and copy
	// them into the container in DFS order.
	visited := make([]bool, n)
	var walk func(u int) error
	walk = func(u int) error {
		visited[u] = true
		sort.Ints(adj[u])
		for _, v := range adj[u] {
			if visited[v] {
				continue
			}
			if err := g.AddEdge(o.IDFn(u), o.IDFn(v)); err != nil {
				return fmt.Errorf("treegen: AddEdge(%d, %d): %w", u, v, err)
			}
			if err := walk(v); err != nil {
				return err
			}
		}

		return nil
	}
	if err := walk(0); err != nil {
		return nil, err
	}

	return g, nil
}

// decodePrufer turns a Prüfer sequence into undirected adjacency lists.
// Leaves are consumed smallest-first via a min-heap, which is what
// makes the decoding unique.
func decodePrufer(n int, seq []int) [][]int {
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	leaves := &intHeap{}
	heap.Init(leaves)
	for i := 0; i < n; i++ {
		if degree[i] == 1 {
			heap.Push(leaves, i)
		}
	}

	adj := make([][]int, n)
	link := func(u, v int) {
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	for _, v := range seq {
		leaf := heap.Pop(leaves).(int)
		link(leaf, v)
		if degree[v]--; degree[v] == 1 {
			heap.Push(leaves, v)
		}
	}

	// Exactly two leaves remain; they form the last edge.
	u := heap.Pop(leaves).(int)
	v := heap.Pop(leaves).(int)
	link(u, v)

	return adj
}

// intHeap is a minimal min-heap of ints for leaf selection.
type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
