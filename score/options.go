// Package score implements spec §4.6's Scorer: per-edge word cost and
// bigram connection cost, plus the cascade of linguistic adjustments that
// shape lattice search toward plausible Japanese segmentations.
//
// Grounded on _examples/original_source/src/grammar/connection.cpp
// (ConnectionMatrix::initRules, the packed-key bigram lookup) and the
// teacher's morph/suffixes.go suffixRule table-of-rules pattern, mirrored
// here for the word-cost adjustment cascade.
package score

import "github.com/suzume-nlp/suzume/dictionary"

// Options exposes every tunable named in spec §4.6 and §9 as fields with
// documented defaults, per §9's explicit call-out: "scorer penalty
// constants ... should be exposed as options rather than hard-coded,
// matching the source's ScorerOptions.BigramOverrides pattern."
type Options struct {
	// POSPriors is spec §4.6's per-POS prior added to wordCost (Noun:0,
	// Verb:0.2, Adj:0.3, Adv:0.4, Particle:0.1, Aux:0.2, Pronoun:0.1,
	// default:0.5).
	POSPriors map[dictionary.PartOfSpeech]float64

	DictionaryBonus       float64 // -1.0
	UserDictBonus         float64 // -2.0
	FormalNounPenalty     float64 // +1.0
	LowInfoPenalty        float64 // +0.5
	SingleKanjiPenalty    float64 // +2.0
	SingleHiraganaPenalty float64 // +1.5
	OptimalLengthBonus    float64 // -0.5

	IAdjKunaiBonus           float64
	InvalidAdjSouPenalty     float64
	InvalidTaiPenalty        float64
	VerbContractionAsAdjPen  float64
	VerbAuxInAdjPenalty      float64
	ShimaiAsAdjPenalty       float64
	VerbTaiRashiiPenalty     float64
	VerbNaiPatternPenalty    float64
	VerbSanHonorificPenalty  float64
	VerbContractedNegPenalty float64

	// UnknownOverrunPenalty mirrors spec §4.7's tokenizer post-filter
	// penalty (+3.5) for unknown-word candidates that extend beyond a
	// dictionary entry starting at the same position. Scorer does not read
	// it; the tokenizer applies tokenize.Options.OverrunPenalty instead.
	UnknownOverrunPenalty float64
	// StandaloneParticlePenalty mirrors spec §4.7's +1.5 penalty for an
	// unknown verb's hiragana tail equaling a standalone particle. Scorer
	// does not read it; the tokenizer applies
	// tokenize.Options.StandaloneParticlePenalty instead.
	StandaloneParticlePenalty float64

	// BigramOverrides lets a caller retune specific POS-pair connection
	// costs without recompiling the built-in matrix (spec §4.6,
	// §9 — the Options.BigramOverrides pattern named explicitly).
	BigramOverrides map[BigramKey]float64
}

// BigramKey indexes the POS-pair bigram table and BigramOverrides.
type BigramKey struct {
	Prev dictionary.PartOfSpeech
	Next dictionary.PartOfSpeech
}

// DefaultOptions returns the documented defaults from spec §4.6.
func DefaultOptions() Options {
	return Options{
		POSPriors: map[dictionary.PartOfSpeech]float64{
			dictionary.Noun:      0,
			dictionary.Verb:      0.2,
			dictionary.Adjective: 0.3,
			dictionary.Adverb:    0.4,
			dictionary.Particle:  0.1,
			dictionary.Auxiliary: 0.2,
			dictionary.Pronoun:   0.1,
		},
		DictionaryBonus:           -1.0,
		UserDictBonus:             -2.0,
		FormalNounPenalty:         1.0,
		LowInfoPenalty:            0.5,
		SingleKanjiPenalty:        2.0,
		SingleHiraganaPenalty:     1.5,
		OptimalLengthBonus:        -0.5,
		IAdjKunaiBonus:            -0.3,
		InvalidAdjSouPenalty:      1.0,
		InvalidTaiPenalty:         1.0,
		VerbContractionAsAdjPen:   1.2,
		VerbAuxInAdjPenalty:       1.5,
		ShimaiAsAdjPenalty:        1.5,
		VerbTaiRashiiPenalty:      1.2,
		VerbNaiPatternPenalty:     1.0,
		VerbSanHonorificPenalty:   1.0,
		VerbContractedNegPenalty:  0.8,
		UnknownOverrunPenalty:     3.5,
		StandaloneParticlePenalty: 1.5,
		BigramOverrides:           nil,
	}
}

// defaultPOSPrior is the fallback prior for any POS not present in
// POSPriors (spec: "default:0.5").
const defaultPOSPrior = 0.5

func (o Options) posPrior(p dictionary.PartOfSpeech) float64 {
	if v, ok := o.POSPriors[p]; ok {
		return v
	}
	return defaultPOSPrior
}
