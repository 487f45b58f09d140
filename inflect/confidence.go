package inflect

import (
	"strings"

	"github.com/suzume-nlp/suzume/internal/debuglog"
)

// Options exposes the inflection engine's tunables as a first-class
// struct per SPEC_FULL §C.1 ("every tunable behind an options struct
// rather than a bare constant"), mirroring the scorer's
// ScorerOptions.BigramOverrides pattern spec §9 calls out by name.
type Options struct {
	// BaseConfidence is the starting value every candidate's score cascade
	// begins from before adjustments are applied.
	BaseConfidence float64
	// Floor and Ceiling bound every candidate's final confidence (spec
	// §4.4: "clamped to [floor, ceiling]").
	Floor   float64
	Ceiling float64
	// SurvivalThreshold is the default minimum confidence a candidate
	// needs downstream in candidate generators (spec: "only candidates
	// with confidence >= 0.5 ... survive"); category-specific callers may
	// override it per generator.
	SurvivalThreshold float64
	// MaxAuxChainDepth bounds how many auxiliary layers peelInner will
	// recurse through before giving up, guarding against pathological
	// inputs (spec §5: "callers bound wall-clock time by bounding input
	// length", but a depth cap keeps a single call itself linear).
	MaxAuxChainDepth int
}

// DefaultOptions returns the engine's documented defaults.
func DefaultOptions() Options {
	return Options{
		BaseConfidence:    0.6,
		Floor:             0.05,
		Ceiling:           0.99,
		SurvivalThreshold: 0.5,
		MaxAuxChainDepth:  4,
	}
}

// uRowHiragana is the godan dictionary-form-ending row: an Ichidan stem
// that ends in one of these is almost always a Godan verb misparsed as
// Ichidan (spec: "Ichidan stems ending in u-row hiragana").
var uRowHiragana = map[rune]bool{
	'う': true, 'く': true, 'ぐ': true, 'す': true, 'つ': true,
	'ぬ': true, 'ふ': true, 'ぶ': true, 'む': true, 'ゆ': true, 'る': true,
}

var aRowHiragana = map[rune]bool{
	'あ': true, 'か': true, 'が': true, 'さ': true, 'た': true, 'だ': true,
	'な': true, 'は': true, 'ば': true, 'ぱ': true, 'ま': true, 'や': true, 'ら': true, 'わ': true,
}

var smallKana = map[rune]bool{
	'っ': true, 'ゃ': true, 'ゅ': true, 'ょ': true,
	'ぁ': true, 'ぃ': true, 'ぅ': true, 'ぇ': true, 'ぉ': true,
}

var eRowHiragana = map[rune]bool{
	'え': true, 'け': true, 'げ': true, 'せ': true, 'ぜ': true, 'て': true,
	'で': true, 'ね': true, 'へ': true, 'べ': true, 'ぺ': true, 'め': true, 'れ': true,
}

func isAllKanji(runes []rune) bool {
	for _, r := range runes {
		if r < 0x3400 || (r > 0x4DBF && r < 0x4E00) || r > 0x9FFF {
			// crude kanji test matching charclass's main CJK block; good
			// enough for a confidence heuristic, not a classifier.
			if !(r >= 0x4E00 && r <= 0x9FFF) {
				return false
			}
		}
	}
	return len(runes) > 0
}

// score computes spec §4.4's confidence cascade for one (stem, ending,
// chain) combination. Every adjustment is always computed (SPEC_FULL
// §C.2's Open Question resolution); it is recorded as a debug event only
// when SUZUME_DEBUG is set, since debuglog.Printf is a no-op otherwise.
func (opts Options) score(m StemMatch, chain string) float64 {
	conf := opts.BaseConfidence
	stem := []rune(m.Stem)
	n := len(stem)

	adjust := func(delta float64, reason string) {
		conf += delta
		debuglog.Printf("inflect", "stem=%q ending=%v delta=%+.2f reason=%s", m.Stem, m.Ending.VerbType, delta, reason)
	}

	switch {
	case n == 0:
		// Suru/Kuru empty-stem exception: no length-based adjustment.
	case n == 1:
		adjust(0.05, "one-char-stem moderate bonus")
	case n == 2:
		adjust(0.15, "two-char-stem bonus")
	case n > 6:
		adjust(-0.2, "very-long-stem penalty")
	}

	if chain != "" {
		bonus := 0.01 * float64(len(chain))
		if bonus > 0.15 {
			bonus = 0.15
		}
		adjust(bonus, "aux-chain-length bonus")
	}

	if n > 0 {
		last := stem[n-1]
		switch m.Ending.VerbType {
		case Ichidan:
			if uRowHiragana[last] {
				adjust(-0.3, "ichidan-stem-ends-u-row invalidity")
			}
			if m.Ending.IsOnbin && aRowHiragana[last] {
				adjust(-0.2, "ichidan-stem-a-row-in-onbin invalidity")
			}
			if smallKana[last] {
				adjust(-0.25, "ichidan-stem-small-kana invalidity")
			}
		case GodanWa:
			if m.Ending.IsOnbin && n >= 2 && last >= 0x4E00 && last <= 0x9FFF {
				adjust(0.1, "godan-wa-multikanji-onbin disambiguation")
			}
		case Suru:
			if n == 2 && isAllKanji(stem) &&
				(m.Ending.ProvidesConn == ConnVerbRenyokei || m.Ending.ProvidesConn == ConnVerbOnbinkei) {
				adjust(0.2, "suru-2kanji-renyokei-onbin boost")
			}
		case GodanSa:
			if n == 1 && last >= 0x4E00 && last <= 0x9FFF {
				adjust(0.15, "godansa-1kanji boost")
			}
		case IAdjective:
			if isAllKanji(stem) {
				adjust(-0.15, "iadjective-all-kanji penalty")
			}
			if eRowHiragana[last] {
				adjust(-0.2, "iadjective-e-row-ending penalty")
			}
		}
	}

	if strings.Contains(m.Stem, "て") || strings.Contains(m.Stem, "で") {
		adjust(-0.4, "stem-contains-te-marker invalidity")
	}

	if conf < opts.Floor {
		conf = opts.Floor
	}
	if conf > opts.Ceiling {
		conf = opts.Ceiling
	}
	return conf
}
