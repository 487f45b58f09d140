package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// productivePrefixes is spec §4.5's closed set: "不, 未, 非, 無, 超, 再,
// 準, 副, 総, 各, 両, 最, 全, 半".
var productivePrefixes = []string{"不", "未", "非", "無", "超", "再", "準", "副", "総", "各", "両", "最", "全", "半"}

// PrefixNounJoin is spec §4.5's family: a productive prefix followed by a
// noun joins into a single edge, unless the combined form already exists
// in the dictionary (in which case DictionaryCandidates already covers
// it and a duplicate unknown-word edge would only add noise).
func PrefixNounJoin(ctx *Context, l *lattice.Lattice, p int) {
	if classAt(ctx, p) != charclass.Kanji {
		return
	}
	for _, prefix := range productivePrefixes {
		pr := []rune(prefix)
		if !hasRunePrefix(ctx.Runes, p, prefix) {
			continue
		}
		nounStart := p + len(pr)
		if classAt(ctx, nounStart) != charclass.Kanji {
			continue
		}
		nounEnd := runOfClass(ctx, nounStart, charclass.Kanji, 0)
		if nounEnd == nounStart {
			continue
		}
		joined := sub(ctx, p, nounEnd)
		if len(ctx.Dict.Lookup(joined)) > 0 {
			continue
		}
		cost := 2.0 + ctx.Opts.PrefixJoinBonus
		l.AddEdge(joined, p, nounEnd, dictionary.Noun, cost, lattice.FromUnknown, joined, dictionary.None)
	}
}
