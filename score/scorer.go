package score

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/debuglog"
	"github.com/suzume-nlp/suzume/lattice"
)

// Scorer implements lattice.Scorer per spec §4.6. It holds no mutable
// state beyond its Options, so a single Scorer is safe to share across
// concurrent analyses (spec §5: "no shared mutable state" beyond the
// inflection cache, which lives in the inflect package, not here).
type Scorer struct {
	opts  Options
	rules []ConnectionRule
}

// New returns a Scorer configured with opts.
func New(opts Options) *Scorer {
	return &Scorer{opts: opts, rules: allRules()}
}

var _ lattice.Scorer = (*Scorer)(nil)

// WordCost implements spec §4.6: the edge's intrinsic cost, a POS prior,
// and the cascade of flag/length/unknown-word adjustments.
func (s *Scorer) WordCost(l *lattice.Lattice, e lattice.Edge) float64 {
	cost := e.Cost + s.opts.posPrior(e.POS)
	cost += s.flagAdjustments(e)
	cost += s.lengthAdjustments(l, e)
	cost += s.unknownWordAdjustments(l, e)
	debuglog.Printf("score", "wordCost surface=%q pos=%v total=%.3f", l.Surface(e), e.POS, cost)
	return cost
}

// ConnectionCost implements spec §4.6: the 13x13 bigram base cost plus
// every rule in rulesAux/rulesVerb/rulesOther that matches (prev, next).
// The synthetic BOS predecessor (prev == nil at position 0) is scored
// against dictionary.Other, since BOS carries no lexical category of its
// own but still needs a bigram row to look up.
func (s *Scorer) ConnectionCost(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) float64 {
	prevPOS := dictionary.Other
	if prev != nil {
		prevPOS = prev.POS
	}
	cost := s.opts.bigramCost(prevPOS, next.POS)
	for _, rule := range s.rules {
		if rule.Match(l, prev, next) {
			cost += rule.Delta
			debuglog.Printf("score", "connectionCost rule=%s delta=%+.2f", rule.Name, rule.Delta)
		}
	}
	return cost
}
