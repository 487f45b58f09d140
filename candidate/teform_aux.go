package candidate

import (
	"strings"

	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/lattice"
)

// teFormContractions is spec §4.5's closed colloquial-contraction set:
// "〜てく, 〜ちゃう, 〜じゃう, 〜とく, 〜もらう, 〜くれる, 〜あげる, 〜やる".
var teFormContractions = []string{"く", "ちゃう", "じゃう", "とく", "もらう", "くれる", "あげる", "やる"}

// benefactiveContractions are the subset spec §4.5 calls out for
// negative-form exclusion: "benefactives specifically disabled for
// negative forms to preserve 教えて+あげない splits."
var benefactiveContractions = map[string]bool{"もらう": true, "くれる": true, "あげる": true, "やる": true}

// TeFormAuxiliary is spec §4.5's "Te-form + auxiliary" family: hiragana
// て/で followed by one of the closed contraction surfaces joins into a
// single auxiliary-chain edge, unless the contraction is a benefactive
// immediately followed by a negative ない (in which case the split must
// stay separate so ない attaches to the benefactive itself).
func TeFormAuxiliary(ctx *Context, l *lattice.Lattice, p int) {
	r, ok := runeAt(ctx, p)
	if !ok || (r != 'て' && r != 'で') {
		return
	}
	for _, contraction := range teFormContractions {
		cr := []rune(contraction)
		if !hasRunePrefix(ctx.Runes, p+1, contraction) {
			continue
		}
		end := p + 1 + len(cr)
		if benefactiveContractions[contraction] && hasRunePrefix(ctx.Runes, end, "ない") {
			continue
		}
		surface := sub(ctx, p, end)
		lemma := string(r) + contraction
		if strings.HasPrefix(lemma, "で") && contraction == "く" {
			lemma = "でいく"
		} else if contraction == "く" {
			lemma = "ていく"
		}
		cost := 1.5 + ctx.Opts.TeFormAuxBonus
		l.AddEdge(surface, p, end, dictionary.Auxiliary, cost, lattice.FromUnknown, lemma, dictionary.None)
	}
}
