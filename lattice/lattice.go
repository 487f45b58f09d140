package lattice

import "fmt"

// Lattice is spec §4.1's mutable-during-construction, read-only-after
// structure: a length N (codepoints), an ordered list of all edges, and
// an index from start position to edges beginning there.
type Lattice struct {
	length     int
	edges      []Edge
	byStart    [][]int // byStart[p] holds indices into edges, for p in [0,N]
	stringPool []string
}

// New allocates a lattice over a text of the given codepoint length,
// matching spec §4.1's new(text_length N): "allocate an index of N+1
// buckets."
func New(length int) *Lattice {
	return &Lattice{
		length:  length,
		byStart: make([][]int, length+1),
	}
}

// Length returns N, the number of codepoints the lattice covers.
func (l *Lattice) Length() int { return l.length }

func (l *Lattice) intern(s string) int {
	if s == "" {
		return -1
	}
	l.stringPool = append(l.stringPool, s)
	return len(l.stringPool) - 1
}

func (l *Lattice) resolve(idx int) string {
	if idx < 0 {
		return ""
	}
	return l.stringPool[idx]
}

// AddEdge appends an edge and returns its stable id, per spec §4.1:
// "append an edge; constraint start <= N, end <= N. Strings are copied
// into stable storage; returned id indexes the edges list in insertion
// order." lemma may be "" when the edge has no lemma.
func (l *Lattice) AddEdge(surface string, start, end int, pos PartOfSpeech, cost float64, flags EdgeFlags, lemma string, conjType ConjType) (int, error) {
	if start < 0 || end > l.length || start > end {
		return -1, fmt.Errorf("lattice: addEdge: invalid span [%d,%d) for length %d", start, end, l.length)
	}
	id := len(l.edges)
	e := Edge{
		ID:         id,
		Start:      start,
		End:        end,
		surfaceIdx: l.intern(surface),
		POS:        pos,
		Cost:       cost,
		Flags:      flags,
		lemmaIdx:   l.intern(lemma),
		ConjType:   conjType,
	}
	l.edges = append(l.edges, e)
	l.byStart[start] = append(l.byStart[start], id)
	return id, nil
}

// EdgesAt returns the edges starting at codepoint position p.
func (l *Lattice) EdgesAt(p int) []Edge {
	if p < 0 || p >= len(l.byStart) {
		return nil
	}
	ids := l.byStart[p]
	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = l.edges[id]
	}
	return out
}

// GetEdge returns the edge with the given id.
func (l *Lattice) GetEdge(id int) (Edge, bool) {
	if id < 0 || id >= len(l.edges) {
		return Edge{}, false
	}
	return l.edges[id], true
}

// EdgeCount returns the total number of edges added.
func (l *Lattice) EdgeCount() int { return len(l.edges) }

// Surface resolves an edge's surface string from the lattice's string
// pool (spec §9: edges hold stable views into lattice-owned storage).
func (l *Lattice) Surface(e Edge) string { return l.resolve(e.surfaceIdx) }

// Lemma resolves an edge's lemma string, or "" if the edge has none.
func (l *Lattice) Lemma(e Edge) string { return l.resolve(e.lemmaIdx) }

// BumpCost adds delta to the cost of the edge with the given id, for the
// tokenizer's post-filter penalties (spec §4.7). EdgesAt returns copies,
// so adjustments must go through this method rather than mutating a
// returned Edge directly.
func (l *Lattice) BumpCost(id int, delta float64) {
	if id < 0 || id >= len(l.edges) {
		return
	}
	l.edges[id].Cost += delta
}

// IsValid reports whether a path of edges exists from 0 to Length via a
// breadth-first search over edge ends, per spec §4.1.
func (l *Lattice) IsValid() bool {
	if l.length == 0 {
		return true
	}
	visited := make([]bool, l.length+1)
	visited[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == l.length {
			return true
		}
		for _, id := range l.byStart[p] {
			end := l.edges[id].End
			if !visited[end] {
				visited[end] = true
				queue = append(queue, end)
			}
		}
	}
	return visited[l.length]
}
