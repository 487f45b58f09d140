// Package tokenize implements spec §4.7's orchestrator: it constructs an
// empty lattice of the input's length and, for each character position,
// invokes every candidate generator family in the fixed order spec §2/
// §4.5 documents, then applies the post-filter cost adjustments spec
// §4.7 names.
//
// Grounded on the teacher's tokenizer/tokenizer.go orchestration of
// scanner.go helpers in a fixed pass order.
package tokenize

import (
	"strings"

	"github.com/suzume-nlp/suzume/candidate"
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// Options exposes the post-filter tunables spec §4.7 names.
type Options struct {
	// OverrunPenalty is the +3.5 cost spec §4.7 adds to an unknown-word
	// candidate that extends beyond a dictionary entry starting at the
	// same position, unless a generator-specific exemption applies.
	OverrunPenalty float64
	// StandaloneParticlePenalty is the +1.5 cost added when an unknown
	// verb's hiragana tail equals a standalone particle.
	StandaloneParticlePenalty float64
}

// DefaultOptions returns spec §4.7's documented defaults.
func DefaultOptions() Options {
	return Options{OverrunPenalty: 3.5, StandaloneParticlePenalty: 1.5}
}

// standaloneParticles backs the tail-equals-a-particle post-filter.
var standaloneParticles = map[string]bool{
	"は": true, "が": true, "を": true, "に": true, "で": true,
	"と": true, "の": true, "も": true, "から": true, "まで": true, "より": true,
}

// Build constructs the lattice for a decoded codepoint sequence by
// invoking every candidate generator at every position, then applying
// the post-filter penalties.
func Build(ctx *candidate.Context, opts Options) *lattice.Lattice {
	n := len(ctx.Runes)
	l := lattice.New(n)
	generators := candidate.All()
	for p := 0; p < n; p++ {
		for _, gen := range generators {
			gen(ctx, l, p)
		}
	}
	applyPostFilter(l, opts)
	return l
}

// applyPostFilter implements spec §4.7's post-construction cost
// adjustments. EdgesAt returns copies, so the filter adds each penalty to
// the stored edge in place through Lattice.BumpCost, addressed by the
// edge's id; no edges are added or removed, so every edge is visited
// exactly once.
func applyPostFilter(l *lattice.Lattice, opts Options) {
	n := l.Length()
	for p := 0; p < n; p++ {
		edges := l.EdgesAt(p)
		maxDictEnd := -1
		for _, e := range edges {
			if e.Flags.Has(lattice.FromDictionary) && e.End > maxDictEnd {
				maxDictEnd = e.End
			}
		}
		for i := range edges {
			e := edges[i]
			if !e.Flags.Has(lattice.FromUnknown) {
				continue
			}
			if maxDictEnd >= 0 && e.End > maxDictEnd && !isOverrunExempt(l, e) {
				l.BumpCost(e.ID, opts.OverrunPenalty)
			}
			if e.POS == dictionary.Verb && particleTail(l, e) != "" {
				l.BumpCost(e.ID, opts.StandaloneParticlePenalty)
			}
		}
	}
}

// isOverrunExempt implements spec §4.7's "exemptions" clause: an unknown
// verb or adjective edge that is itself inflection-confirmed, or a
// pure-hiragana verb edge of >= 3 characters competing against a short
// dictionary entry, is not penalized for extending past the dictionary's
// reach at the same position.
func isOverrunExempt(l *lattice.Lattice, e lattice.Edge) bool {
	switch e.POS {
	case dictionary.Verb, dictionary.Adjective:
		if l.Lemma(e) != "" {
			return true
		}
	}
	if e.POS == dictionary.Verb && e.Length() >= 3 {
		hiragana := true
		for _, r := range l.Surface(e) {
			if !charclass.IsHiragana(r) {
				hiragana = false
				break
			}
		}
		if hiragana {
			return true
		}
	}
	// Mixed-script merged nouns (Web開発, 3月) deliberately extend past
	// the alphabet/digit dictionary entry they begin with; penalizing
	// them would always hand the span back to the split halves.
	if e.POS == dictionary.Noun && mixesScripts(l.Surface(e)) {
		return true
	}
	return false
}

// mixesScripts reports whether the surface combines an ASCII-ish run
// (alphabet/digit) with a Japanese one (kanji/katakana), the shape only
// the mixed-script merge generator produces.
func mixesScripts(s string) bool {
	var ascii, ja bool
	for _, r := range s {
		switch charclass.Of(r) {
		case charclass.Alphabet, charclass.Digit:
			ascii = true
		case charclass.Kanji, charclass.Katakana:
			ja = true
		}
	}
	return ascii && ja
}

// particleTail returns the longest standalone particle the edge's
// surface ends with, or "" when none matches, for the "hiragana tail
// equals a standalone particle" check. Each candidate particle is
// compared against the surface tail of its own length, so the multi-rune
// particles (から, まで, より) match alongside the single-rune ones.
func particleTail(l *lattice.Lattice, e lattice.Edge) string {
	s := l.Surface(e)
	best := ""
	for p := range standaloneParticles {
		if strings.HasSuffix(s, p) && len(p) > len(best) {
			best = p
		}
	}
	return best
}
