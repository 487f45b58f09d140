package score

import (
	"strings"

	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/lattice"
)

// ConnectionRule is one named connection-cost adjustment: Match decides
// whether the rule fires for a given (prev, next) edge pair, Delta is the
// cost it contributes when it does. Grounded on
// original_source/src/grammar/connection_rules_{aux,verb,other}.cpp,
// which SPEC_FULL §C.4 keeps split into three families rather than one
// monolithic table for the same maintainability reason the original does.
type ConnectionRule struct {
	Name  string
	Match func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool
	Delta float64
}

func surfaceOf(l *lattice.Lattice, e lattice.Edge) string { return l.Surface(e) }

// rulesAux covers auxiliary-input connections: which POS an auxiliary
// may plausibly follow, and copula-specific handling.
var rulesAux = []ConnectionRule{
	{
		Name:  "aux-after-verb-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Verb && next.POS == dictionary.Auxiliary
		},
	},
	{
		Name:  "aux-after-adjective-bonus",
		Delta: -0.2,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Adjective && next.POS == dictionary.Auxiliary
		},
	},
	{
		Name:  "copula-after-noun-bonus",
		Delta: -0.4,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Noun || next.POS != dictionary.Auxiliary {
				return false
			}
			s := surfaceOf(l, next)
			return strings.HasPrefix(s, "だ") || strings.HasPrefix(s, "です")
		},
	},
	{
		Name:  "aux-after-particle-penalty",
		Delta: 0.6,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Particle && next.POS == dictionary.Auxiliary
		},
	},
	{
		Name:  "copula-after-pronoun-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Pronoun || next.POS != dictionary.Auxiliary {
				return false
			}
			s := surfaceOf(l, next)
			return strings.HasPrefix(s, "だ") || strings.HasPrefix(s, "です")
		},
	},
	{
		Name:  "polite-masu-after-verb-bonus",
		Delta: -0.2,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Verb || next.POS != dictionary.Auxiliary {
				return false
			}
			return strings.HasPrefix(surfaceOf(l, next), "ます") || strings.HasPrefix(surfaceOf(l, next), "ませ")
		},
	},
	{
		Name:  "aux-at-start-penalty",
		Delta: 0.8,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev == nil && next.POS == dictionary.Auxiliary
		},
	},
}

// rulesVerb covers verb-stem connections: te-form chaining into
// progressive/benefactive auxiliaries, and onbin-specific bonuses.
var rulesVerb = []ConnectionRule{
	{
		Name:  "te-form-into-teiru-bonus",
		Delta: -0.4,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Verb {
				return false
			}
			ps := surfaceOf(l, *prev)
			ns := surfaceOf(l, next)
			if !strings.HasSuffix(ps, "て") && !strings.HasSuffix(ps, "で") {
				return false
			}
			for _, cont := range []string{"いる", "しまう", "みる", "おく", "くる", "いく"} {
				if strings.HasPrefix(ns, cont) {
					return true
				}
			}
			return false
		},
	},
	{
		Name:  "verb-verb-compound-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Verb && next.POS == dictionary.Verb
		},
	},
	{
		Name:  "verb-after-noun-object-bonus",
		Delta: -0.1,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Particle && next.POS == dictionary.Verb &&
				surfaceOf(l, *prev) == "を"
		},
	},
	{
		Name:  "adverb-before-verb-bonus",
		Delta: -0.2,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Adverb && next.POS == dictionary.Verb
		},
	},
	{
		Name:  "contracted-aux-after-onbin-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Verb || next.POS != dictionary.Auxiliary {
				return false
			}
			ps := []rune(surfaceOf(l, *prev))
			if len(ps) == 0 {
				return false
			}
			switch ps[len(ps)-1] {
			case 'ん', 'い', 'っ':
			default:
				return false
			}
			switch surfaceOf(l, next) {
			case "てる", "でる", "とく", "どく", "ちゃう", "じゃう":
				return true
			}
			return false
		},
	},
	{
		Name:  "determiner-before-verb-penalty",
		Delta: 0.5,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Determiner && next.POS == dictionary.Verb
		},
	},
}

// rulesOther covers particle restrictions, suffix attachment, and
// determiner/prefix adjacency that don't belong to either family above.
var rulesOther = []ConnectionRule{
	{
		Name:  "suffix-after-noun-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Noun && next.POS == dictionary.Suffix
		},
	},
	{
		Name:  "prefix-before-noun-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Prefix && next.POS == dictionary.Noun
		},
	},
	{
		Name:  "determiner-before-noun-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Determiner && next.POS == dictionary.Noun
		},
	},
	{
		Name:  "particle-particle-penalty",
		Delta: 0.5,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Particle || next.POS != dictionary.Particle {
				return false
			}
			combo := surfaceOf(l, *prev) + surfaceOf(l, next)
			switch combo {
			case "かも", "では", "には", "とは", "からは":
				return false // legitimate compound particle, not a penalized run
			default:
				return true
			}
		},
	},
	{
		Name:  "sentence-start-particle-penalty",
		Delta: 0.8,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev == nil && next.POS == dictionary.Particle
		},
	},
	{
		Name:  "sentence-start-conjunction-bonus",
		Delta: -0.3,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev == nil && next.POS == dictionary.Conjunction
		},
	},
	{
		Name:  "particle-after-symbol-penalty",
		Delta: 0.5,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			return prev != nil && prev.POS == dictionary.Symbol && next.POS == dictionary.Particle
		},
	},
	{
		Name:  "counter-after-digit-bonus",
		Delta: -0.5,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Noun || next.POS != dictionary.Noun {
				return false
			}
			for _, r := range surfaceOf(l, *prev) {
				if r < '0' || r > '9' {
					return false
				}
			}
			switch surfaceOf(l, next) {
			case "月", "日", "年", "時", "分", "円", "人", "回":
				return true
			}
			return false
		},
	},
	{
		Name:  "topic-after-pronoun-bonus",
		Delta: -0.2,
		Match: func(l *lattice.Lattice, prev *lattice.Edge, next lattice.Edge) bool {
			if prev == nil || prev.POS != dictionary.Pronoun || next.POS != dictionary.Particle {
				return false
			}
			s := surfaceOf(l, next)
			return s == "は" || s == "が"
		},
	},
}

// allRules concatenates the three families in the fixed evaluation order
// SPEC_FULL §C.4 documents (aux, verb, other).
func allRules() []ConnectionRule {
	out := make([]ConnectionRule, 0, len(rulesAux)+len(rulesVerb)+len(rulesOther))
	out = append(out, rulesAux...)
	out = append(out, rulesVerb...)
	out = append(out, rulesOther...)
	return out
}
