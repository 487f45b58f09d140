package inflect

import (
	"sort"
	"strings"
	"sync"
)

// Candidate is spec §3's inflection candidate: a (base form, stem,
// suffix-chain string, verb type, confidence, decomposed morpheme list)
// tuple produced by the inflection engine and consumed by candidate
// generators. Origin and Confidence are debug-info fields; per SPEC_FULL §C.2's
// resolution of the Open Question in spec §9, these are unconditional
// rather than compiled out.
type Candidate struct {
	BaseForm    string
	Stem        string
	SuffixChain string
	VerbType    VerbType
	Confidence  float64
	Morphemes   []string
	Origin      string
}

// Engine is spec §4.4's reverse inflection analyzer: given a conjugated
// surface, peel auxiliary suffixes from the right until a stem remains
// that matches a known verb ending, producing ranked Candidates. Analyze
// results are memoized per spec §4.4/§5: "analysis is memoized keyed by
// surface; concurrent readers use a shared/exclusive lock so that cache
// misses serialize only when inserting."
type Engine struct {
	opts  Options
	mu    sync.RWMutex
	cache map[string][]Candidate
}

// NewEngine returns an Engine configured with opts.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts, cache: make(map[string][]Candidate)}
}

// Analyze returns surface's ranked inflection candidates, sorted by
// descending confidence with a stable tie-break preserving discovery
// order (spec §4.4, §5's "stable sort ... reproducible" ordering
// guarantee), deduplicated on (base_form, verb_type). Repeated calls with
// the same surface return equal results (spec §8's cache round-trip
// property) because the second call is served from cache.
func (e *Engine) Analyze(surface string) []Candidate {
	e.mu.RLock()
	if cached, ok := e.cache[surface]; ok {
		e.mu.RUnlock()
		return cached
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cache[surface]; ok {
		return cached
	}
	result := e.analyze(surface)
	e.cache[surface] = result
	return result
}

// CacheSize reports how many distinct surfaces have been memoized. Tests
// use this to confirm a repeated Analyze call hit the cache rather than
// recomputing.
func (e *Engine) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

func (e *Engine) analyze(surface string) []Candidate {
	if surface == "" {
		return nil
	}
	var out []Candidate
	out = append(out, e.directMatches(surface)...)
	out = append(out, e.peelTop(surface)...)
	return e.rank(out)
}

// directMatches is spec §4.4's "also attempt direct stem matching against
// the original surface (for base and renyokei forms) as well as for
// Suru/Ichidan/Kuru imperative" clause: the surface itself, with nothing
// peeled, may already be a dictionary-form or renyokei-form verb/adjective.
func (e *Engine) directMatches(surface string) []Candidate {
	var out []Candidate
	for _, conn := range []ConnID{ConnVerbBase, ConnVerbRenyokei, ConnVerbMeireikei} {
		for _, m := range MatchVerbEndings(surface, conn) {
			out = append(out, e.makeCandidate(RemapIchidanKuru(m), "", "direct"))
		}
	}
	return out
}

// peelTop tries every auxiliary entry as the rightmost element of
// surface, unconstrained by RightID since nothing sits to its right at
// the top of the recursion (spec's peel-then-recurse algorithm, step 1).
func (e *Engine) peelTop(surface string) []Candidate {
	var out []Candidate
	for _, aux := range AuxiliaryEntries {
		prefix, ok := peelSuffix(surface, aux.Surface)
		if !ok {
			continue
		}
		out = append(out, e.peelInner(prefix, aux.RequiredConn, aux.Surface, 1)...)
	}
	return out
}

// peelInner is the recursive step: remainder must either directly match a
// verb ending providing requiredConn (the base case, spec step 2), or
// have a further auxiliary peeled off whose RightID offers requiredConn
// (spec step 1's recursive case, covering auxiliary-on-auxiliary chains
// such as さ+せ+られ+た when a seed is ever given a ConnAuxOut*
// RequiredConn; none of the built-in seeds currently do, since causative-
// passive chains are hand-written as single flattened entries in
// auxiliaryHandWritten, but the recursion supports it for future entries).
func (e *Engine) peelInner(remainder string, requiredConn ConnID, chain string, depth int) []Candidate {
	var out []Candidate
	for _, m := range MatchVerbEndings(remainder, requiredConn) {
		out = append(out, e.makeCandidate(RemapIchidanKuru(m), chain, "peeled"))
	}
	if depth >= e.opts.MaxAuxChainDepth {
		return out
	}
	for _, aux := range AuxiliaryEntries {
		if aux.RightID != requiredConn {
			continue
		}
		prefix, ok := peelSuffix(remainder, aux.Surface)
		if !ok {
			continue
		}
		out = append(out, e.peelInner(prefix, aux.RequiredConn, aux.Surface+chain, depth+1)...)
	}
	return out
}

// peelSuffix strips suffix from the tail of s, rejecting an empty
// remainder (every chain must bottom out in an actual verb/adjective
// stem, not nothing).
func peelSuffix(s, suffix string) (string, bool) {
	if !strings.HasSuffix(s, suffix) {
		return "", false
	}
	prefix := s[:len(s)-len(suffix)]
	if prefix == "" {
		return "", false
	}
	return prefix, true
}

func (e *Engine) makeCandidate(m StemMatch, chain, origin string) Candidate {
	conf := e.opts.score(m, chain)
	morphemes := []string{m.Stem}
	if chain != "" {
		morphemes = append(morphemes, chain)
	}
	return Candidate{
		BaseForm:    m.BaseForm(),
		Stem:        m.Stem,
		SuffixChain: chain,
		VerbType:    m.Ending.VerbType,
		Confidence:  conf,
		Morphemes:   morphemes,
		Origin:      origin,
	}
}

// rank sorts candidates by descending confidence (stable, so ties
// preserve discovery order per spec §5) and deduplicates on
// (base_form, verb_type), keeping the first (highest-confidence)
// occurrence of each key.
func (e *Engine) rank(candidates []Candidate) []Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	seen := make(map[string]bool, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := c.BaseForm + "\x00" + c.VerbType.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
