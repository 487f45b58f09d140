package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

const maxHiraganaVerbLen = 10

// VerbHiraganaCandidates is spec §4.5's "Hiragana-only verb candidates"
// family: symmetric to VerbKanjiCandidates for pure-hiragana strings, with
// a lower confidence bar when the recovered base form is itself
// dictionary-verified, and with special handling of passive mizenkei
// (いわ+れる where the reconstructed いう must exist in the dictionary for
// the split to be trusted).
func VerbHiraganaCandidates(ctx *Context, l *lattice.Lattice, p int) {
	if classAt(ctx, p) != charclass.Hiragana {
		return
	}
	r := ctx.Runes[p]
	if hiraganaParticleStarts[r] {
		return
	}
	emitJoinedHiraganaVerbs(ctx, l, p)
	emitHiraganaMizenkeiSplits(ctx, l, p)
}

func emitJoinedHiraganaVerbs(ctx *Context, l *lattice.Lattice, p int) {
	maxEnd := p + maxHiraganaVerbLen
	if maxEnd > len(ctx.Runes) {
		maxEnd = len(ctx.Runes)
	}
	for end := p + 2; end <= maxEnd; end++ {
		if classAt(ctx, end-1) != charclass.Hiragana {
			break
		}
		surface := sub(ctx, p, end)
		candidates := ctx.Infl.Analyze(surface)
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		if best.VerbType == inflect.VerbNone {
			continue
		}
		verified := dictVerifiesBase(ctx, best.BaseForm)
		threshold := ctx.Opts.UnverifiedVerbConfidenceThreshold
		if verified {
			threshold = ctx.Opts.HiraganaVerbConfidenceThreshold
		}
		if best.Confidence < threshold {
			continue
		}
		cost := costFromConfidence(best.Confidence)
		if verified {
			cost += ctx.Opts.DictVerifiedBonus
		}
		l.AddEdge(surface, p, end, dictionary.Verb, cost, lattice.FromUnknown, best.BaseForm, best.VerbType.ConjType())
	}
}

// emitHiraganaMizenkeiSplits is the passive-mizenkei special case: a
// pure-hiragana mizenkei stem before a れる-family auxiliary splits into
// its own edge only when the stem reconstructs to a dictionary-verified
// base (いわ+れる is trusted because いう is a known verb; an arbitrary
// hiragana run before れる is not).
func emitHiraganaMizenkeiSplits(ctx *Context, l *lattice.Lattice, p int) {
	maxStemEnd := p + maxHiraganaVerbLen
	if maxStemEnd > len(ctx.Runes) {
		maxStemEnd = len(ctx.Runes)
	}
	for stemEnd := p + 2; stemEnd <= maxStemEnd; stemEnd++ {
		if classAt(ctx, stemEnd-1) != charclass.Hiragana {
			break
		}
		emitStemSplit(ctx, l, p, stemEnd, inflect.ConnVerbMizenkei, mizenkeiAuxSurfaces)
	}
}
