package lattice

import "math"

// Scorer is the structural interface Viterbi.Solve depends on (spec
// §4.2). The score package implements this; lattice does not import
// score to avoid a cycle.
type Scorer interface {
	// WordCost returns the intrinsic cost of placing edge e in the path.
	WordCost(l *Lattice, e Edge) float64
	// ConnectionCost returns the bigram cost of transitioning from prev
	// to next. prev is nil for the synthetic BOS predecessor at position 0.
	ConnectionCost(l *Lattice, prev *Edge, next Edge) float64
}

// Result is the outcome of a Viterbi search: the edge ids forming the
// minimum-cost path, in left-to-right order, and the path's total cost.
type Result struct {
	Path      []int
	TotalCost float64
}

// Solve runs the single-source shortest-path algorithm from spec §4.2
// over the lattice using scorer for edge weights.
//
// costs[0..N] starts at +Inf except costs[0]=0. For p=0..N-1 in order,
// for every edge e starting at p: total = costs[p] + wordCost(e) +
// connectionCost(prevEdgeEndingAtP, e). If total < costs[end(e)]
// (strict "<", first-seen wins), record e as the predecessor of end(e).
// After the scan, backtrack from N via recorded predecessors and reverse.
// When N is unreachable, Result.Path is empty and the caller substitutes
// a whole-span fallback edge (spec §7 InvalidLattice).
func Solve(l *Lattice, scorer Scorer) Result {
	n := l.Length()
	costs := make([]float64, n+1)
	predEdge := make([]int, n+1) // edge id ending at position p that is on the best path
	predPos := make([]int, n+1)  // the position that edge starts at
	for i := range costs {
		costs[i] = math.Inf(1)
		predEdge[i] = -1
		predPos[i] = -1
	}
	costs[0] = 0

	// bestEdgeEndingAt tracks, per position, the Edge object recorded as
	// predecessor — needed so ConnectionCost can see the actual previous
	// edge rather than just its id (spec's "prev_edge_ending_at_p").
	bestEdgeEndingAt := make([]*Edge, n+1)

	for p := 0; p < n; p++ {
		if math.IsInf(costs[p], 1) {
			continue
		}
		prev := bestEdgeEndingAt[p]
		for _, e := range l.EdgesAt(p) {
			total := costs[p] + scorer.WordCost(l, e) + scorer.ConnectionCost(l, prev, e)
			if total < costs[e.End] {
				costs[e.End] = total
				predEdge[e.End] = e.ID
				predPos[e.End] = p
				eCopy := e
				bestEdgeEndingAt[e.End] = &eCopy
			}
		}
	}

	if math.IsInf(costs[n], 1) {
		return Result{}
	}

	var path []int
	pos := n
	for pos > 0 {
		id := predEdge[pos]
		if id < 0 {
			return Result{} // no consistent path; treat as invalid
		}
		path = append(path, id)
		pos = predPos[pos]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return Result{Path: path, TotalCost: costs[n]}
}
