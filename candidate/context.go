// Package candidate implements spec §4.5's nine generator families: the
// functions the tokenizer orchestrator invokes at every character
// position to populate the lattice with dictionary, unknown-word, verb,
// adjective, suffix, compound-join, mixed-script, split, and
// auxiliary-contraction edges.
//
// Grounded on _examples/original_source/src/analysis/*_candidates.h (the
// per-family generator headers) and the teacher's morph/fsm.go
// backtracking walker for the general shape of "probe multiple
// generators per position, collect edges." Per SPEC_FULL §C.5, the two
// largest generator families (kanji-stem and hiragana-only verb
// candidates) are kept in separate files since their exclusion-rule sets
// genuinely differ.
package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// Context bundles the per-analysis inputs every generator needs: the
// decoded codepoint sequence, its per-rune classification, and the
// dictionary/inflection collaborators.
type Context struct {
	Runes   []rune
	Classes []charclass.Class
	Dict    *dictionary.Manager
	Infl    *inflect.Engine
	Opts    Options
}

// NewContext classifies already-decoded runes once, ready for repeated
// generator invocation across every position.
func NewContext(runes []rune, dict *dictionary.Manager, infl *inflect.Engine, opts Options) *Context {
	return &Context{
		Runes:   runes,
		Classes: charclass.Classify(runes),
		Dict:    dict,
		Infl:    infl,
		Opts:    opts,
	}
}

// Generator is the common shape every candidate family implements: given
// a position p, add zero or more edges starting at p to l.
type Generator func(ctx *Context, l *lattice.Lattice, p int)

// All returns the fixed-order generator list spec §2/§4.7 describes:
// "dictionary candidates; unknown candidates ...; mixed-script merge;
// compound-noun split; noun+verb split; compound-verb join; prefix+noun
// join; te-form+auxiliary join", with the verb/adjective kanji+hiragana
// and hiragana-only families interleaved per spec §4.5's ordering (they
// run alongside unknown candidates, before the split/join families).
func All() []Generator {
	return []Generator{
		DictionaryCandidates,
		UnknownCandidates,
		VerbKanjiCandidates,
		VerbHiraganaCandidates,
		AdjectiveCandidates,
		SuffixCandidates,
		MixedScriptCandidates,
		CompoundNounSplit,
		NounVerbSplit,
		CompoundVerbJoin,
		PrefixNounJoin,
		TeFormAuxiliary,
	}
}

func runeAt(ctx *Context, i int) (rune, bool) {
	if i < 0 || i >= len(ctx.Runes) {
		return 0, false
	}
	return ctx.Runes[i], true
}

func classAt(ctx *Context, i int) charclass.Class {
	if i < 0 || i >= len(ctx.Classes) {
		return charclass.Unknown
	}
	return ctx.Classes[i]
}

// runOfClass returns the end position of the maximal run of class c
// starting at p (exclusive end), capped at maxLen when maxLen > 0.
func runOfClass(ctx *Context, p int, c charclass.Class, maxLen int) int {
	end := p
	for end < len(ctx.Runes) && classAt(ctx, end) == c {
		end++
		if maxLen > 0 && end-p >= maxLen {
			break
		}
	}
	return end
}

func sub(ctx *Context, start, end int) string {
	return string(ctx.Runes[start:end])
}
