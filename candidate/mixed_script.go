package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// mixedScriptTransitions is spec §4.5's closed transition set: "Alphabet
// -> Kanji, Alphabet -> Katakana, Digit -> Kanji emit a merged-noun edge
// (e.g., Web開発, 3月)".
var mixedScriptTransitions = map[charclass.Class][]charclass.Class{
	charclass.Alphabet: {charclass.Kanji, charclass.Katakana},
	charclass.Digit:    {charclass.Kanji},
}

// MixedScriptCandidates emits one merged edge per recognized script
// transition starting at p, with a modest bonus over treating the two
// halves as separate unknown-word edges.
func MixedScriptCandidates(ctx *Context, l *lattice.Lattice, p int) {
	first := classAt(ctx, p)
	targets, ok := mixedScriptTransitions[first]
	if !ok {
		return
	}
	mid := runOfClass(ctx, p, first, 0)
	if mid >= len(ctx.Runes) {
		return
	}
	second := classAt(ctx, mid)
	matched := false
	for _, t := range targets {
		if second == t {
			matched = true
			break
		}
	}
	if !matched {
		return
	}
	end := runOfClass(ctx, mid, second, 0)
	surface := sub(ctx, p, end)
	cost := 2.5 + ctx.Opts.MixedScriptBonus
	l.AddEdge(surface, p, end, dictionary.Noun, cost, lattice.FromUnknown, surface, dictionary.None)
}
