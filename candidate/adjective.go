package candidate

import (
	"strings"

	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

const maxAdjectiveLen = 10

// naAdjectiveSuffix is the closed set of productive na-adjective markers
// spec §4.5 names ("Na-adjective candidates for kanji+的 patterns").
const naAdjectiveSuffix = "的"

// AdjectiveCandidates is spec §4.5's i-adjective/na-adjective family: it
// generates i-adjective edges from kanji-stem + hiragana-ending splits
// the inflection engine confirms, na-adjective edges for kanji+的, and
// (for pure-hiragana starts) i-adjective edges at a higher confidence bar.
func AdjectiveCandidates(ctx *Context, l *lattice.Lattice, p int) {
	class := classAt(ctx, p)
	switch class {
	case charclass.Kanji:
		emitKanjiIAdjective(ctx, l, p)
		emitNaAdjective(ctx, l, p)
	case charclass.Hiragana:
		emitHiraganaIAdjective(ctx, l, p)
	}
}

func emitKanjiIAdjective(ctx *Context, l *lattice.Lattice, p int) {
	maxEnd := p + maxAdjectiveLen
	if maxEnd > len(ctx.Runes) {
		maxEnd = len(ctx.Runes)
	}
	for end := p + 2; end <= maxEnd; end++ {
		if classAt(ctx, end-1) != charclass.Hiragana {
			continue
		}
		surface := sub(ctx, p, end)
		if isVerbFormFalsePositive(surface) {
			continue
		}
		best := bestCandidateOfType(ctx, surface, inflect.IAdjective)
		if best == nil || best.Confidence < ctx.Opts.AdjectiveConfidenceThreshold {
			continue
		}
		cost := costFromConfidence(best.Confidence)
		l.AddEdge(surface, p, end, dictionary.Adjective, cost, lattice.FromUnknown, best.BaseForm, dictionary.IAdjective)
	}
}

func emitHiraganaIAdjective(ctx *Context, l *lattice.Lattice, p int) {
	r := ctx.Runes[p]
	if hiraganaParticleStarts[r] {
		return
	}
	maxEnd := p + maxAdjectiveLen
	if maxEnd > len(ctx.Runes) {
		maxEnd = len(ctx.Runes)
	}
	for end := p + 2; end <= maxEnd; end++ {
		if classAt(ctx, end-1) != charclass.Hiragana {
			break
		}
		surface := sub(ctx, p, end)
		if isVerbFormFalsePositive(surface) {
			continue
		}
		best := bestCandidateOfType(ctx, surface, inflect.IAdjective)
		if best == nil || best.Confidence < ctx.Opts.HiraganaAdjectiveConfidenceThreshold {
			continue
		}
		cost := costFromConfidence(best.Confidence)
		l.AddEdge(surface, p, end, dictionary.Adjective, cost, lattice.FromUnknown, best.BaseForm, dictionary.IAdjective)
	}
}

func emitNaAdjective(ctx *Context, l *lattice.Lattice, p int) {
	end := runOfClass(ctx, p, charclass.Kanji, 0)
	if end <= p {
		return
	}
	suffixLen := len([]rune(naAdjectiveSuffix))
	if end-p <= suffixLen {
		return
	}
	if !strings.HasSuffix(sub(ctx, p, end), naAdjectiveSuffix) {
		return
	}
	surface := sub(ctx, p, end)
	l.AddEdge(surface, p, end, dictionary.Adjective, 2.0, lattice.FromUnknown, surface, dictionary.NaAdjective)
}

// isVerbFormFalsePositive screens out surfaces spec §4.5 explicitly
// excludes from i-adjective candidacy ("extensive exclusion rules for
// verb-form false positives (ない patterns, passive-negative-renyokei,
// contractions like 〜てく, 〜んでい, 〜てく)").
func isVerbFormFalsePositive(surface string) bool {
	for _, pat := range []string{"れない", "られない", "せない", "させない", "てく", "んでい", "ている", "でいる"} {
		if strings.HasSuffix(surface, pat) {
			return true
		}
	}
	return false
}

// bestCandidateOfType returns the highest-confidence candidate of the
// requested VerbType, or nil if none matches.
func bestCandidateOfType(ctx *Context, surface string, want inflect.VerbType) *inflect.Candidate {
	for _, c := range ctx.Infl.Analyze(surface) {
		if c.VerbType == want {
			cc := c
			return &cc
		}
	}
	return nil
}
