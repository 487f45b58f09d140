package score

import (
	"strings"

	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// flagAdjustments applies the dictionary/user-dict/formal-noun/low-info
// rows of spec §4.6's adjustment table.
func (s *Scorer) flagAdjustments(e lattice.Edge) float64 {
	var delta float64
	if e.Flags.Has(lattice.FromDictionary) {
		delta += s.opts.DictionaryBonus
	}
	if e.Flags.Has(lattice.FromUserDict) {
		delta += s.opts.UserDictBonus
	}
	if e.Flags.Has(lattice.FromFormalNoun) {
		delta += s.opts.FormalNounPenalty
	}
	if e.Flags.Has(lattice.FromLowInfo) {
		delta += s.opts.LowInfoPenalty
	}
	return delta
}

// particleRunes are the single-hiragana particles exempted from the
// single-hiragana penalty (spec: "with particle exceptions").
var particleRunes = map[rune]bool{
	'は': true, 'が': true, 'を': true, 'に': true, 'で': true,
	'と': true, 'の': true, 'も': true, 'へ': true, 'や': true, 'か': true,
}

// optimalLengthBands is the POS-specific "typical word length" band from
// spec §4.6 ("edge length within a POS-specific band").
var optimalLengthBands = map[dictionary.PartOfSpeech][2]int{
	dictionary.Noun:      {2, 3},
	dictionary.Verb:      {2, 4},
	dictionary.Adjective: {2, 4},
	dictionary.Adverb:    {2, 4},
}

// lengthAdjustments applies the single-kanji/single-hiragana penalties
// and the optimal-length bonus.
func (s *Scorer) lengthAdjustments(l *lattice.Lattice, e lattice.Edge) float64 {
	var delta float64
	length := e.Length()
	surface := l.Surface(e)
	runes := []rune(surface)

	if length == 1 && len(runes) == 1 {
		r := runes[0]
		switch {
		case charclass.IsKanji(r) && e.POS != dictionary.Particle && e.POS != dictionary.Suffix && e.POS != dictionary.Prefix:
			delta += s.opts.SingleKanjiPenalty
		case charclass.IsHiragana(r) && e.POS != dictionary.Particle && !particleRunes[r]:
			delta += s.opts.SingleHiraganaPenalty
		}
	}

	if band, ok := optimalLengthBands[e.POS]; ok && length >= band[0] && length <= band[1] {
		delta += s.opts.OptimalLengthBonus
	}
	return delta
}

// unknownWordAdjustments applies spec §4.6's dozen-odd unknown-word
// pattern rules: plausible-but-wrong adjective/verb shapes an unknown-word
// candidate can take on, each nudged toward or away from being chosen.
func (s *Scorer) unknownWordAdjustments(l *lattice.Lattice, e lattice.Edge) float64 {
	if !e.Flags.Has(lattice.FromUnknown) {
		return 0
	}
	surface := l.Surface(e)
	lemma := l.Lemma(e)
	var delta float64

	if e.POS == dictionary.Adjective {
		switch {
		case strings.HasSuffix(surface, "くない"):
			delta += s.opts.IAdjKunaiBonus
		case strings.HasSuffix(surface, "そう") && lemma != "" && !strings.HasSuffix(lemma, "い"):
			delta += s.opts.InvalidAdjSouPenalty
		case strings.HasSuffix(lemma, "たい") && len([]rune(lemma)) <= 2:
			delta += s.opts.InvalidTaiPenalty
		case strings.HasSuffix(surface, "んどい") || strings.HasSuffix(surface, "とい"):
			delta += s.opts.VerbContractionAsAdjPen
		case strings.Contains(surface, "てる") || strings.Contains(surface, "でる"):
			delta += s.opts.VerbAuxInAdjPenalty
		case surface == "しまい" || surface == "じまい":
			delta += s.opts.ShimaiAsAdjPenalty
		case strings.HasSuffix(surface, "たいらしい"):
			delta += s.opts.VerbTaiRashiiPenalty
		case strings.HasSuffix(lemma, "ない"):
			delta += s.opts.VerbNaiPatternPenalty
		}
	}

	if e.POS == dictionary.Verb {
		runes := []rune(surface)
		switch {
		case strings.HasSuffix(surface, "さん") && strings.Contains(surface, "し"):
			delta += s.opts.VerbSanHonorificPenalty
		case len(runes) == 2 && isAllHiragana(runes) && strings.HasSuffix(surface, "ん"):
			delta += s.opts.VerbContractedNegPenalty
		}
	}
	return delta
}

func isAllHiragana(runes []rune) bool {
	for _, r := range runes {
		if !charclass.IsHiragana(r) {
			return false
		}
	}
	return len(runes) > 0
}
