package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// productiveSuffixes is the closed set spec §4.5 names ("kanji compounds
// ending in a closed set of suffixes (化, 性, 者, 的, …)").
var productiveSuffixes = []string{"化", "性", "者", "的", "家", "長", "員", "感", "力", "化率"}

// SuffixCandidates is spec §4.5's "Suffix-separated candidates" family:
// for a kanji compound ending in a productive suffix, emit both the
// whole compound and the stem-without-suffix as separate edges, letting
// Viterbi pick whichever the rest of the lattice favors.
func SuffixCandidates(ctx *Context, l *lattice.Lattice, p int) {
	if classAt(ctx, p) != charclass.Kanji {
		return
	}
	end := runOfClass(ctx, p, charclass.Kanji, 0)
	if end-p < 2 {
		return
	}
	whole := sub(ctx, p, end)
	for _, suf := range productiveSuffixes {
		sufRunes := []rune(suf)
		if end-p <= len(sufRunes) {
			continue
		}
		if !hasRuneSuffix(ctx.Runes, p, end, sufRunes) {
			continue
		}
		stemEnd := end - len(sufRunes)
		l.AddEdge(whole, p, end, dictionary.Noun, 2.0, lattice.HasSuffix, whole, dictionary.None)
		stem := sub(ctx, p, stemEnd)
		l.AddEdge(stem, p, stemEnd, dictionary.Noun, 2.2, lattice.FromUnknown, stem, dictionary.None)
	}
}

func hasRuneSuffix(runes []rune, start, end int, suffix []rune) bool {
	if end-start < len(suffix) {
		return false
	}
	for i, r := range suffix {
		if runes[end-len(suffix)+i] != r {
			return false
		}
	}
	return true
}
