package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// classKey names a Class for Options map lookups.
func classKey(c charclass.Class) string {
	switch c {
	case charclass.Kanji:
		return "Kanji"
	case charclass.Hiragana:
		return "Hiragana"
	case charclass.Katakana:
		return "Katakana"
	case charclass.Alphabet:
		return "Alphabet"
	case charclass.Digit:
		return "Digit"
	case charclass.Symbol:
		return "Symbol"
	case charclass.Unknown:
		return "Unknown"
	default:
		return ""
	}
}

// defaultPOSForClass is spec §4.5's "default POS (Noun for
// kanji/katakana/alphabet/digit, Other for hiragana, Symbol for symbols)".
// Unclassified codepoints (U+FFFD) get POS Unknown, one edge per
// codepoint, so a run of them never collapses into the whole-span
// fallback.
func defaultPOSForClass(c charclass.Class) dictionary.PartOfSpeech {
	switch c {
	case charclass.Kanji, charclass.Katakana, charclass.Alphabet, charclass.Digit:
		return dictionary.Noun
	case charclass.Hiragana:
		return dictionary.Other
	case charclass.Symbol:
		return dictionary.Symbol
	default:
		return dictionary.Unknown
	}
}

// hiraganaParticleStarts are the particle-like openings spec §4.5 says to
// skip for hiragana runs ("skip hiragana runs starting with a particle
// that is never a verb/noun stem").
var hiraganaParticleStarts = map[rune]bool{
	'は': true, 'が': true, 'を': true, 'で': true, 'と': true,
	'の': true, 'も': true, 'へ': true, 'や': true,
}

// demonstrativeStarts implements spec's "skip demonstrative-pronoun
// starts (こ/そ/あ/ど + れ/こ/ち)" exclusion: these prefixes (plus あそこ) are
// already covered by the dictionary layer (pronouns これ/それ/あれ/どれ
// etc.) and should not also spawn an unknown-word edge with a worse POS.
var demonstrativeStarts = map[string]bool{
	"これ": true, "それ": true, "あれ": true, "どれ": true,
	"ここ": true, "そこ": true, "あそこ": true, "どこ": true,
	"こち": true, "そち": true, "あち": true, "どち": true,
}

// UnknownCandidates is spec §4.5's second generator family: one-or-more
// same-class-run edges starting at p, for lengths 1..class-specific max,
// with the classifier-specific exclusion filters spec §4.5 names.
func UnknownCandidates(ctx *Context, l *lattice.Lattice, p int) {
	class := classAt(ctx, p)
	key := classKey(class)
	if key == "" {
		return
	}
	if class == charclass.Hiragana {
		r := ctx.Runes[p]
		if hiraganaParticleStarts[r] {
			return
		}
		for prefix := range demonstrativeStarts {
			if hasRunePrefix(ctx.Runes, p, prefix) {
				return
			}
		}
	}

	maxLen := ctx.Opts.MaxUnknownRunLength[key]
	baseCost := ctx.Opts.UnknownBaseCost[key]
	pos := defaultPOSForClass(class)
	end := runOfClass(ctx, p, class, maxLen)

	for length := 1; p+length <= end; length++ {
		cost := baseCost + lengthPenalty(length)
		l.AddEdge(sub(ctx, p, p+length), p, p+length, pos, cost, lattice.FromUnknown, "", dictionary.None)
	}
}

// lengthPenalty favors typical word lengths (2-3 characters) over very
// short or very long unknown-word spans, matching spec §4.5's "cost that
// favors typical word lengths".
func lengthPenalty(length int) float64 {
	switch {
	case length == 1:
		return 0.5
	case length == 2 || length == 3:
		return 0.0
	default:
		return 0.2 * float64(length-3)
	}
}

func hasRunePrefix(runes []rune, start int, prefix string) bool {
	pr := []rune(prefix)
	if start+len(pr) > len(runes) {
		return false
	}
	for i, r := range pr {
		if runes[start+i] != r {
			return false
		}
	}
	return true
}
