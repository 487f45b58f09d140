// Package lattice implements spec §4.1 (the Lattice) and §4.2 (Viterbi
// search): a DAG of candidate morpheme edges indexed by character
// position, and the shortest-path algorithm that selects a minimum-cost
// covering path through it.
//
// Grounded on _examples/original_source/src/core/lattice.h (EdgeFlags
// bitset, addEdge/edgesAt/getEdge/isValid) and src/core/viterbi.h (the
// single-source shortest-path DP). Per spec §9's note on shared lemma
// storage, the lattice owns a single backing string pool that edges
// index into by int rather than each edge holding its own string copy.
package lattice

import "github.com/suzume-nlp/suzume/dictionary"

// PartOfSpeech and ConjType alias the dictionary package's enumerations so
// callers building edges don't need to import dictionary directly for the
// common case.
type PartOfSpeech = dictionary.PartOfSpeech
type ConjType = dictionary.ConjugationType

// EdgeFlags mirrors spec §3's lattice-edge flag bitset.
type EdgeFlags uint8

const (
	FlagNone EdgeFlags = 0
	FromDictionary EdgeFlags = 1 << iota
	FromUserDict
	FromFormalNoun
	FromLowInfo
	FromUnknown
	HasSuffix
)

func (f EdgeFlags) Has(bit EdgeFlags) bool { return f&bit != 0 }

// Edge is the immutable lattice-edge record from spec §3. Surface and
// Lemma are indices into the owning Lattice's string pool rather than
// Go strings, matching the "edges reference strings inside the lattice
// via stable views" ownership note in spec §3/§9.
type Edge struct {
	ID       int
	Start    int
	End      int
	surfaceIdx int
	POS      dictionary.PartOfSpeech
	Cost     float64
	Flags    EdgeFlags
	lemmaIdx int // -1 when no lemma
	ConjType dictionary.ConjugationType
}

// Length returns the edge's span in codepoints.
func (e Edge) Length() int { return e.End - e.Start }
