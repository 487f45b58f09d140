package candidate

// Options exposes every generator tunable as a first-class struct per
// SPEC_FULL §C.1, mirroring the scorer's ScorerOptions pattern.
type Options struct {
	// MaxUnknownRunLength bounds how many characters of a same-class run
	// the unknown-word generator will emit one edge for, per class.
	MaxUnknownRunLength map[string]int
	// UnknownBaseCost is the default per-class cost for an unknown-word
	// edge before the length-dependent adjustment.
	UnknownBaseCost map[string]float64

	// VerbConfidenceThreshold gates kanji+hiragana verb candidates (spec:
	// "admit the candidate whose best interpretation is a verb with
	// confidence above a context-dependent threshold").
	VerbConfidenceThreshold float64
	// UnverifiedVerbConfidenceThreshold is the stricter bar applied when
	// the recovered base form is not itself a dictionary entry, so the
	// inflection engine is the only witness for the split.
	UnverifiedVerbConfidenceThreshold float64
	// HiraganaVerbConfidenceThreshold is the lower bar spec §4.5 grants
	// pure-hiragana verb candidates "when dictionary verification
	// succeeds".
	HiraganaVerbConfidenceThreshold float64
	// AdjectiveConfidenceThreshold gates kanji-stem i-adjective candidates.
	AdjectiveConfidenceThreshold float64
	// HiraganaAdjectiveConfidenceThreshold is the higher bar spec §4.5
	// grants pure-hiragana i-adjective candidates.
	HiraganaAdjectiveConfidenceThreshold float64

	// MinCompoundNounLength is the kanji-sequence length floor for
	// compound-noun splitting (spec: "for kanji sequences of >= 4
	// characters").
	MinCompoundNounLength int

	// CompoundVerbBonus/DictVerifiedBonus are costs subtracted when a
	// compound-verb join succeeds and when its first half is separately
	// dictionary-verified.
	CompoundVerbBonus     float64
	DictVerifiedBonus     float64
	MixedScriptBonus      float64
	PrefixJoinBonus       float64
	NounSplitBonus        float64
	NounSplitBothVerified float64
	TeFormAuxBonus        float64

	// SplitStemCost is the base cost of a specialized stem edge (Godan
	// mizenkei before れる, Ichidan renyokei before て/た, onbin before a
	// contraction); every such edge is dictionary-verified by
	// construction, so DictVerifiedBonus stacks on top of it.
	SplitStemCost float64

	UnknownEdgeCost float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxUnknownRunLength: map[string]int{
			"Kanji": 4, "Hiragana": 6, "Katakana": 8, "Alphabet": 12, "Digit": 8, "Symbol": 1, "Unknown": 1,
		},
		UnknownBaseCost: map[string]float64{
			"Kanji": 3.0, "Hiragana": 2.5, "Katakana": 2.5, "Alphabet": 2.0, "Digit": 1.5, "Symbol": 1.0, "Unknown": 3.0,
		},
		VerbConfidenceThreshold:              0.55,
		UnverifiedVerbConfidenceThreshold:    0.70,
		HiraganaVerbConfidenceThreshold:      0.45,
		AdjectiveConfidenceThreshold:         0.55,
		HiraganaAdjectiveConfidenceThreshold: 0.65,
		MinCompoundNounLength:                4,
		CompoundVerbBonus:                    -1.0,
		DictVerifiedBonus:                    -0.5,
		MixedScriptBonus:                     -0.7,
		PrefixJoinBonus:                      -0.5,
		NounSplitBonus:                       -0.3,
		NounSplitBothVerified:                -0.6,
		TeFormAuxBonus:                       -0.7,
		SplitStemCost:                        1.2,
		UnknownEdgeCost:                      0,
	}
}
