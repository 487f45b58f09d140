package candidate

import (
	"github.com/suzume-nlp/suzume/lattice"
)

// DictionaryCandidates is spec §4.5's first generator family: "prefix-
// match the text at p, one edge per hit, flags include FromDictionary /
// FromUserDict / FromFormalNoun / FromLowInfo as applicable."
func DictionaryCandidates(ctx *Context, l *lattice.Lattice, p int) {
	for _, res := range ctx.Dict.PrefixMatch(ctx.Runes, p) {
		e := res.Entry
		flags := lattice.FromDictionary
		if e.FromUserDict() {
			flags |= lattice.FromUserDict
		}
		if e.IsFormalNoun() {
			flags |= lattice.FromFormalNoun
		}
		if e.IsLowInfo() {
			flags |= lattice.FromLowInfo
		}
		l.AddEdge(e.Surface, p, p+res.Length, e.POS, e.Cost, flags, e.Lemma, e.ConjType)
	}
}
