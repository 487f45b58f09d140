package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// CompoundNounSplit is spec §4.5's family: "for kanji sequences of >= 4
// characters, try every split point; emit the first-half edge when at
// least one half matches a dictionary entry."
func CompoundNounSplit(ctx *Context, l *lattice.Lattice, p int) {
	if classAt(ctx, p) != charclass.Kanji {
		return
	}
	end := runOfClass(ctx, p, charclass.Kanji, 0)
	if end-p < ctx.Opts.MinCompoundNounLength {
		return
	}
	for split := p + 1; split < end; split++ {
		first := sub(ctx, p, split)
		second := sub(ctx, split, end)
		if len(ctx.Dict.Lookup(first)) == 0 && len(ctx.Dict.Lookup(second)) == 0 {
			continue
		}
		l.AddEdge(first, p, split, dictionary.Noun, 2.0+ctx.Opts.NounSplitBonus, lattice.FromUnknown, first, dictionary.None)
	}
}

// NounVerbSplit is spec §4.5's family: "kanji prefix followed by kanji+
// hiragana tail: if the tail looks like a conjugated verb (inflection
// confidence > 0.5 or dictionary-verified base form), emit the noun-half
// edge with bonuses that stack when both halves are dictionary-verified."
func NounVerbSplit(ctx *Context, l *lattice.Lattice, p int) {
	if classAt(ctx, p) != charclass.Kanji {
		return
	}
	kanjiEnd := runOfClass(ctx, p, charclass.Kanji, 0)
	if kanjiEnd-p < 2 {
		return
	}
	maxTailEnd := kanjiEnd + maxVerbTail
	if maxTailEnd > len(ctx.Runes) {
		maxTailEnd = len(ctx.Runes)
	}
	for split := p + 1; split < kanjiEnd; split++ {
		nounHalf := sub(ctx, p, split)
		for tailEnd := split + 2; tailEnd <= maxTailEnd; tailEnd++ {
			if classAt(ctx, tailEnd-1) != charclass.Hiragana {
				continue
			}
			tail := sub(ctx, split, tailEnd)
			best := firstVerbStemCandidate(ctx, tail)
			verified := best != nil && dictVerifiesBase(ctx, best.BaseForm)
			if best == nil || (best.Confidence <= 0.5 && !verified) {
				continue
			}
			cost := 2.0 + ctx.Opts.NounSplitBonus
			if verified && len(ctx.Dict.Lookup(nounHalf)) > 0 {
				cost = 2.0 + ctx.Opts.NounSplitBothVerified
			}
			l.AddEdge(nounHalf, p, split, dictionary.Noun, cost, lattice.FromUnknown, nounHalf, dictionary.None)
		}
	}
}
