package inflect

import "strings"

// VerbEnding is spec §3's reverse index from the tail of a surface to a
// candidate stem: (suffix, base_suffix, verb_type, provides_conn,
// is_onbin). Suffix is the kana the stem keeps right before the peeled
// auxiliary (e.g. か for Godan-Ka mizenkei); BaseSuffix is appended to the
// stem to reconstruct the dictionary form (e.g. く).
type VerbEnding struct {
	Suffix       string
	BaseSuffix   string
	VerbType     VerbType
	ProvidesConn ConnID
	IsOnbin      bool
}

// godanEndingSpec mirrors dictionary.godanRow but inverted: each row
// yields one VerbEnding per stem form the row exposes.
type godanEndingSpec struct {
	vt         VerbType
	mizen      string
	ren        string
	katei      string
	volitional string
	onbin      string
}

var godanSpecs = []godanEndingSpec{
	{GodanKa, "か", "き", "け", "こ", "い"},
	{GodanGa, "が", "ぎ", "げ", "ご", "い"},
	{GodanSa, "さ", "し", "せ", "そ", "し"},
	{GodanTa, "た", "ち", "て", "と", "っ"},
	{GodanNa, "な", "に", "ね", "の", "ん"},
	{GodanBa, "ば", "び", "べ", "ぼ", "ん"},
	{GodanMa, "ま", "み", "め", "も", "ん"},
	{GodanRa, "ら", "り", "れ", "ろ", "っ"},
	{GodanWa, "わ", "い", "え", "お", "っ"},
}

var godanBaseSuffix = map[VerbType]string{
	GodanKa: "く", GodanGa: "ぐ", GodanSa: "す", GodanTa: "つ", GodanNa: "ぬ",
	GodanBa: "ぶ", GodanMa: "む", GodanRa: "る", GodanWa: "う",
}

// VerbEndings is the full reverse-index table (spec's "verb ending
// table"), built once at package init and never mutated at runtime
// (spec §9: "never mutate at runtime").
var VerbEndings = buildVerbEndings()

func buildVerbEndings() []VerbEnding {
	var out []VerbEnding
	for _, spec := range godanSpecs {
		base := godanBaseSuffix[spec.vt]
		out = append(out,
			VerbEnding{Suffix: spec.mizen, BaseSuffix: base, VerbType: spec.vt, ProvidesConn: ConnVerbMizenkei},
			VerbEnding{Suffix: spec.ren, BaseSuffix: base, VerbType: spec.vt, ProvidesConn: ConnVerbRenyokei},
			VerbEnding{Suffix: spec.katei, BaseSuffix: base, VerbType: spec.vt, ProvidesConn: ConnVerbKatei},
			VerbEnding{Suffix: spec.volitional, BaseSuffix: base, VerbType: spec.vt, ProvidesConn: ConnVerbVolitional},
			VerbEnding{Suffix: spec.onbin, BaseSuffix: base, VerbType: spec.vt, ProvidesConn: ConnVerbOnbinkei, IsOnbin: true},
		)
	}
	// Ichidan: the stem itself (empty suffix) serves every attachment
	// point alike, since Ichidan has no row-dependent sound change.
	for _, conn := range []ConnID{ConnVerbMizenkei, ConnVerbRenyokei, ConnVerbOnbinkei, ConnVerbKatei, ConnVerbVolitional} {
		out = append(out, VerbEnding{Suffix: "", BaseSuffix: "る", VerbType: Ichidan, ProvidesConn: conn})
	}
	// Suru: irregular stems per spec §4.4's explicit empty-stem exceptions.
	out = append(out,
		VerbEnding{Suffix: "さ", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbMizenkei},
		VerbEnding{Suffix: "し", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbRenyokei},
		VerbEnding{Suffix: "し", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbOnbinkei},
		VerbEnding{Suffix: "すれ", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbKatei},
		VerbEnding{Suffix: "しよ", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbVolitional},
	)
	// Kuru: irregular across the reading, not just the stem.
	out = append(out,
		VerbEnding{Suffix: "こ", BaseSuffix: "くる", VerbType: Kuru, ProvidesConn: ConnVerbMizenkei},
		VerbEnding{Suffix: "き", BaseSuffix: "くる", VerbType: Kuru, ProvidesConn: ConnVerbRenyokei},
		VerbEnding{Suffix: "き", BaseSuffix: "くる", VerbType: Kuru, ProvidesConn: ConnVerbOnbinkei},
		VerbEnding{Suffix: "くれ", BaseSuffix: "くる", VerbType: Kuru, ProvidesConn: ConnVerbKatei},
		VerbEnding{Suffix: "こよ", BaseSuffix: "くる", VerbType: Kuru, ProvidesConn: ConnVerbVolitional},
	)
	// I-adjectives: the stem before い (e.g. 高 from 高い) provides
	// ConnIAdjStem for くない/かった/くて/etc.
	out = append(out, VerbEnding{Suffix: "", BaseSuffix: "い", VerbType: IAdjective, ProvidesConn: ConnIAdjStem})

	// Base (dictionary/terminal-attributive form) endings: spec §4.4's
	// "attempt direct stem matching against the original surface (for
	// base ... forms)". Suffix equals BaseSuffix, so matching the
	// surface's own dictionary ending reconstructs an identity base form.
	for vt, base := range godanBaseSuffix {
		out = append(out, VerbEnding{Suffix: base, BaseSuffix: base, VerbType: vt, ProvidesConn: ConnVerbBase})
	}
	out = append(out,
		VerbEnding{Suffix: "る", BaseSuffix: "る", VerbType: Ichidan, ProvidesConn: ConnVerbBase},
		VerbEnding{Suffix: "する", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbBase},
		VerbEnding{Suffix: "来る", BaseSuffix: "来る", VerbType: Kuru, ProvidesConn: ConnVerbBase},
		VerbEnding{Suffix: "くる", BaseSuffix: "くる", VerbType: Kuru, ProvidesConn: ConnVerbBase},
		VerbEnding{Suffix: "い", BaseSuffix: "い", VerbType: IAdjective, ProvidesConn: ConnVerbBase},
	)

	// Imperative (meireikei) stems, deliberately restricted to
	// Suru/Ichidan/Kuru per spec §4.4 ("other imperatives are
	// deliberately excluded to avoid collision with conditional" — Godan
	// imperative and katei share a row-final vowel and would otherwise
	// be indistinguishable here).
	out = append(out,
		VerbEnding{Suffix: "ろ", BaseSuffix: "る", VerbType: Ichidan, ProvidesConn: ConnVerbMeireikei},
		VerbEnding{Suffix: "よ", BaseSuffix: "る", VerbType: Ichidan, ProvidesConn: ConnVerbMeireikei},
		VerbEnding{Suffix: "しろ", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbMeireikei},
		VerbEnding{Suffix: "せよ", BaseSuffix: "する", VerbType: Suru, ProvidesConn: ConnVerbMeireikei},
		VerbEnding{Suffix: "こい", BaseSuffix: "くる", VerbType: Kuru, ProvidesConn: ConnVerbMeireikei},
	)
	return out
}

// MatchVerbEndings returns every VerbEnding whose ProvidesConn equals
// requiredConn and whose Suffix is a valid tail of remainder, together
// with the reconstructed stem. Validity filters from spec §4.4 are
// applied here so every caller benefits from them uniformly.
func MatchVerbEndings(remainder string, requiredConn ConnID) []StemMatch {
	var out []StemMatch
	for _, ending := range VerbEndings {
		if requiredConn != ConnAny && ending.ProvidesConn != requiredConn {
			continue
		}
		stem, ok := splitStem(remainder, ending)
		if !ok {
			continue
		}
		if !isValidStem(stem, ending) {
			continue
		}
		out = append(out, StemMatch{Stem: stem, Ending: ending})
	}
	return out
}

// StemMatch pairs a reconstructed stem with the VerbEnding that produced
// it.
type StemMatch struct {
	Stem   string
	Ending VerbEnding
}

func (m StemMatch) BaseForm() string { return m.Stem + m.Ending.BaseSuffix }

// splitStem removes ending.Suffix from the tail of remainder, honoring
// the empty-stem exceptions spec §4.4 grants to Suru and Kuru.
func splitStem(remainder string, ending VerbEnding) (string, bool) {
	if !strings.HasSuffix(remainder, ending.Suffix) {
		return "", false
	}
	stem := remainder[:len(remainder)-len(ending.Suffix)]
	if stem == "" {
		switch ending.VerbType {
		case Suru, Kuru:
			return "", true
		default:
			return "", false // spec: minimum stem length >= 1 codepoint
		}
	}
	return stem, true
}

// isValidStem applies spec §4.4's validity filters.
func isValidStem(stem string, ending VerbEnding) bool {
	if stem == "" {
		return true // already passed the Suru/Kuru exception above
	}
	runes := []rune(stem)

	// Reject stems starting with te (て-form is never a verb stem).
	if runes[0] == 'て' || runes[0] == 'で' {
		return false
	}

	switch ending.VerbType {
	case Ichidan:
		last := runes[len(runes)-1]
		// Reject Ichidan stems ending in small-tsu (onbin never belongs
		// to Ichidan).
		if last == 'っ' {
			return false
		}
		// Reject invalid reconstructions くる/する/こる built from く+る,
		// す+る, こ+る (these are not genuine Ichidan verbs).
		if stem == "く" || stem == "す" || stem == "こ" {
			return false
		}
	case GodanSa:
		// Reject Suru-adjacent stems whose tail looks particle-like or
		// embeds a te-form marker mid-stem.
		last := runes[len(runes)-1]
		if last == 'は' || last == 'も' || last == 'ね' {
			return false
		}
		if strings.Contains(stem, "て") || strings.Contains(stem, "で") {
			return false
		}
	}
	return true
}

// RemapIchidanKuru remaps an Ichidan stem match ending in 来 to Kuru, per
// spec §4.4's "Remap Ichidan + 来 to Kuru (with base_suffix る)" rule.
// Ichidan's own stem-matching would otherwise treat 来 as a one-kanji
// Ichidan stem, which is never correct: 来る is always Kuru.
func RemapIchidanKuru(m StemMatch) StemMatch {
	if m.Ending.VerbType == Ichidan && strings.HasSuffix(m.Stem, "来") {
		m.Ending.VerbType = Kuru
		m.Ending.BaseSuffix = "る"
	}
	return m
}
