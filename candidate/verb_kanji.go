package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// maxKanjiVerbStem/maxVerbTail bound how far the kanji+hiragana verb
// scan looks, keeping per-position work O(1) (spec §5's O(N*K) bound).
const (
	maxKanjiVerbStem = 3
	maxVerbTail      = 8
)

// costFromConfidence turns an inflection Candidate's confidence into an
// edge cost: higher confidence produces a lower cost, so Viterbi prefers
// well-supported reverse-inflection candidates over weaker ones.
func costFromConfidence(conf float64) float64 {
	return (1 - conf) * 4.0
}

// mizenkeiAuxSurfaces are the passive/potential/causative/negative
// auxiliary openings a Godan mizenkei stem may split before (spec §4.5:
// "Godan mizenkei stems followed by passive/potential/causative
// auxiliaries (split at mizenkei, e.g., 書か+れる)").
var mizenkeiAuxSurfaces = []string{
	"れる", "れた", "れて", "れない", "れます",
	"られる", "られた", "られて", "られない",
	"せる", "せた", "せて", "せない", "させる", "させた", "させて",
	"ない", "なかった", "ず", "ぬ",
}

// ichidanStemAuxSurfaces are the polite/past/te/rareru openings a
// single-kanji Ichidan stem may split before (spec §4.5: "Single-kanji
// Ichidan stems followed by polite/past/te/rareru patterns (見+られる)").
var ichidanStemAuxSurfaces = []string{
	"られる", "られた", "られて", "られない", "られます",
	"させる", "させた", "させられる",
	"ます", "ました", "ません", "た", "て", "ない", "よう",
}

// onbinContractionSurfaces are the contracted-auxiliary openings a Godan
// onbin stem may split before (spec §4.5: "Godan onbin + contraction
// auxiliary (読ん+でる, 書い+とく)").
var onbinContractionSurfaces = []string{
	"でる", "でた", "でます", "てる", "てた", "てます",
	"とく", "といた", "といて", "どく", "どいた",
	"ちゃう", "ちゃった", "じゃう", "じゃった",
}

// VerbKanjiCandidates is spec §4.5's "Verb candidates (kanji+hiragana)"
// family. Two edge shapes are produced at a kanji position:
//
//  1. Joined edges: every kanji-stem/hiragana-tail span whose best
//     inflection-engine interpretation is a verb above a context-dependent
//     confidence threshold (lower when the recovered base form is itself a
//     dictionary entry, higher when the engine is the only witness).
//  2. Split edges for the specialized stem patterns: Godan mizenkei before
//     passive/potential/causative (書か+れる), single-kanji Ichidan stems
//     before polite/past/te/rareru (見+られる), Godan onbin before a
//     contraction auxiliary (読ん+でる), and Ichidan renyokei stems before
//     て/た (食べ+て). The stem edge carries the reconstructed base form
//     as its lemma; the auxiliary half is covered by the dictionary layer.
func VerbKanjiCandidates(ctx *Context, l *lattice.Lattice, p int) {
	if classAt(ctx, p) != charclass.Kanji {
		return
	}
	emitJoinedVerbs(ctx, l, p)
	emitMizenkeiSplits(ctx, l, p)
	emitIchidanStemSplits(ctx, l, p)
	emitOnbinContractionSplits(ctx, l, p)
	emitRenyokeiSplits(ctx, l, p)
}

func emitJoinedVerbs(ctx *Context, l *lattice.Lattice, p int) {
	kanjiEnd := runOfClass(ctx, p, charclass.Kanji, maxKanjiVerbStem)
	maxEnd := kanjiEnd + maxVerbTail
	if maxEnd > len(ctx.Runes) {
		maxEnd = len(ctx.Runes)
	}
	for end := p + 2; end <= maxEnd; end++ {
		if classAt(ctx, end-1) != charclass.Hiragana {
			continue
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
		threshold := ctx.Opts.VerbConfidenceThreshold
		if !verified {
			threshold = ctx.Opts.UnverifiedVerbConfidenceThreshold
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

// emitStemSplit adds one stem edge [p,stemEnd) whose lemma is the
// dictionary-verified base form recovered for the given connection, when
// the runes after stemEnd open with one of followers. Shared by the
// mizenkei/onbin/renyokei split families.
func emitStemSplit(ctx *Context, l *lattice.Lattice, p, stemEnd int, conn inflect.ConnID, followers []string) {
	if stemEnd > len(ctx.Runes) {
		return
	}
	followed := false
	for _, aux := range followers {
		if hasRunePrefix(ctx.Runes, stemEnd, aux) {
			followed = true
			break
		}
	}
	if !followed {
		return
	}
	stem := sub(ctx, p, stemEnd)
	for _, m := range inflect.MatchVerbEndings(stem, conn) {
		m = inflect.RemapIchidanKuru(m)
		base := m.BaseForm()
		if !dictVerifiesBase(ctx, base) {
			continue
		}
		cost := ctx.Opts.SplitStemCost + ctx.Opts.DictVerifiedBonus
		l.AddEdge(stem, p, stemEnd, dictionary.Verb, cost, lattice.FromUnknown, base, m.Ending.VerbType.ConjType())
	}
}

func emitMizenkeiSplits(ctx *Context, l *lattice.Lattice, p int) {
	kanjiEnd := runOfClass(ctx, p, charclass.Kanji, maxKanjiVerbStem)
	// Godan mizenkei is kanji stem + exactly one mizenkei kana.
	for stemEnd := p + 2; stemEnd <= kanjiEnd+1 && stemEnd <= len(ctx.Runes); stemEnd++ {
		if classAt(ctx, stemEnd-1) != charclass.Hiragana {
			continue
		}
		emitStemSplit(ctx, l, p, stemEnd, inflect.ConnVerbMizenkei, mizenkeiAuxSurfaces)
	}
}

func emitIchidanStemSplits(ctx *Context, l *lattice.Lattice, p int) {
	// Single-kanji Ichidan stems (見, 着, 出, 寝): the bare kanji itself
	// is every stem form at once, so the split point is p+1.
	emitStemSplit(ctx, l, p, p+1, inflect.ConnVerbMizenkei, ichidanStemAuxSurfaces)
}

func emitOnbinContractionSplits(ctx *Context, l *lattice.Lattice, p int) {
	kanjiEnd := runOfClass(ctx, p, charclass.Kanji, maxKanjiVerbStem)
	for stemEnd := p + 2; stemEnd <= kanjiEnd+1 && stemEnd <= len(ctx.Runes); stemEnd++ {
		if classAt(ctx, stemEnd-1) != charclass.Hiragana {
			continue
		}
		emitStemSplit(ctx, l, p, stemEnd, inflect.ConnVerbOnbinkei, onbinContractionSurfaces)
	}
}

func emitRenyokeiSplits(ctx *Context, l *lattice.Lattice, p int) {
	// Ichidan renyokei stems before て/た (食べ+て), spec §4.5: gated by
	// dictionary verification, which subsumes the confidence gate since a
	// verified base is the strongest confirmation available.
	kanjiEnd := runOfClass(ctx, p, charclass.Kanji, maxKanjiVerbStem)
	maxStemEnd := kanjiEnd + 2
	if maxStemEnd > len(ctx.Runes) {
		maxStemEnd = len(ctx.Runes)
	}
	for stemEnd := p + 1; stemEnd <= maxStemEnd; stemEnd++ {
		if stemEnd > p+1 && classAt(ctx, stemEnd-1) != charclass.Hiragana {
			continue
		}
		emitStemSplit(ctx, l, p, stemEnd, inflect.ConnVerbRenyokei, []string{"て", "た"})
	}
}

// dictVerifiesBase reports whether base is itself a known dictionary
// entry, the "dictionary verification" gate spec §4.5 repeatedly
// references for stacking bonuses.
func dictVerifiesBase(ctx *Context, base string) bool {
	return len(ctx.Dict.Lookup(base)) > 0
}
