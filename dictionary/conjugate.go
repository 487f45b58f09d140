package dictionary

import "strings"

// godanRow describes the six stem forms of one Godan conjugation row,
// keyed by the final dictionary-form kana. This is the forward direction
// that inflect's reverse engine inverts (spec §4.4, glossary: Mizenkei /
// Renyokei / Onbinkei / Katei / Meireikei / Volitional).
type godanRow struct {
	final      rune // dictionary-form ending, e.g. 'く' for GodanKa
	mizenkei   rune // negative/passive/causative stem, e.g. 'か'
	renyokei   rune // polite/stem form, e.g. 'き'
	katei      rune // conditional/potential stem, e.g. 'け'
	meireikei  rune // imperative stem, e.g. 'け'
	volitional rune // volitional stem, e.g. 'こ'
	onbin      rune // sound-change stem before た/て, e.g. 'い'
	voicedOnbin bool // true when onbin attaches で/だ rather than て/た (GodanGa, GodanBa, GodanMa, GodanNa)
}

var godanRows = map[ConjugationType]godanRow{
	GodanKa: {'く', 'か', 'き', 'け', 'け', 'こ', 'い', false},
	GodanGa: {'ぐ', 'が', 'ぎ', 'げ', 'げ', 'ご', 'い', true},
	GodanSa: {'す', 'さ', 'し', 'せ', 'せ', 'そ', 'し', false},
	GodanTa: {'つ', 'た', 'ち', 'て', 'て', 'と', 'っ', false},
	GodanNa: {'ぬ', 'な', 'に', 'ね', 'ね', 'の', 'ん', true},
	GodanBa: {'ぶ', 'ば', 'び', 'べ', 'べ', 'ぼ', 'ん', true},
	GodanMa: {'む', 'ま', 'み', 'め', 'め', 'も', 'ん', true},
	GodanRa: {'る', 'ら', 'り', 'れ', 'れ', 'ろ', 'っ', false},
	GodanWa: {'う', 'わ', 'い', 'え', 'え', 'お', 'っ', false},
}

// stemOf returns the surface and reading with the final dictionary kana
// removed (the stem shared by every conjugated form).
func stemOf(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// ExpandConjugations generates the conjugated surface forms for a verb or
// adjective entry whose Reading and ConjType are known, per spec §4.3:
// "adjectives and verbs with known reading and conjugation type are
// automatically expanded into their conjugated surface forms ... so that
// 高かった lookups succeed even when only 高い is listed."
//
// The returned entries share base.Lemma, base.POS and base.ConjType but
// carry the conjugated Surface/Reading and a small cost increment
// (conjugated forms are slightly less likely a priori than the dictionary
// form itself).
func ExpandConjugations(base *DictionaryEntry) []*DictionaryEntry {
	if base.Reading == "" {
		return nil
	}
	switch base.ConjType {
	case Ichidan:
		return expandIchidan(base)
	case Suru:
		return expandSuru(base)
	case Kuru:
		return expandKuru(base)
	case IAdjective:
		return expandIAdjective(base)
	default:
		if row, ok := godanRows[base.ConjType]; ok {
			return expandGodan(base, row)
		}
	}
	return nil
}

func cloneWith(base *DictionaryEntry, surface, reading string, costDelta float64) *DictionaryEntry {
	return &DictionaryEntry{
		Surface:  surface,
		POS:      base.POS,
		Cost:     base.Cost + costDelta,
		Lemma:    base.Lemma,
		Reading:  reading,
		ConjType: base.ConjType,
		Flags:    base.Flags,
	}
}

func expandGodan(base *DictionaryEntry, row godanRow) []*DictionaryEntry {
	stem := stemOf(base.Surface)
	readingStem := stemOf(base.Reading)
	te, ta := "て", "た"
	if row.voicedOnbin {
		te, ta = "で", "だ"
	}
	forms := []struct {
		suffix    string
		costDelta float64
	}{
		{string(row.mizenkei) + "ない", 0.3},       // negative
		{string(row.renyokei) + "ます", 0.3},       // polite
		{string(row.renyokei) + "たい", 0.5},       // desiderative
		{string(row.onbin) + te, 0.2},            // te-form
		{string(row.onbin) + ta, 0.2},            // past
		{string(row.katei) + "ば", 0.5},           // conditional
		{string(row.meireikei), 0.6},              // imperative
		{string(row.volitional) + "う", 0.4},      // volitional
	}
	var out []*DictionaryEntry
	for _, f := range forms {
		out = append(out, cloneWith(base, stem+f.suffix, readingStem+f.suffix, f.costDelta))
	}
	return out
}

func expandIchidan(base *DictionaryEntry) []*DictionaryEntry {
	stem := stemOf(base.Surface)
	readingStem := stemOf(base.Reading)
	forms := []struct {
		suffix    string
		costDelta float64
	}{
		{"ない", 0.3},
		{"ます", 0.3},
		{"たい", 0.5},
		{"て", 0.2},
		{"た", 0.2},
		{"れば", 0.5},
		{"ろ", 0.6},
		{"よう", 0.4},
		{"られる", 0.4},
		{"させる", 0.4},
	}
	var out []*DictionaryEntry
	for _, f := range forms {
		out = append(out, cloneWith(base, stem+f.suffix, readingStem+f.suffix, f.costDelta))
	}
	return out
}

func expandSuru(base *DictionaryEntry) []*DictionaryEntry {
	stem := strings.TrimSuffix(base.Surface, "する")
	readingStem := strings.TrimSuffix(base.Reading, "する")
	forms := []struct {
		suffix    string
		costDelta float64
	}{
		{"しない", 0.3}, {"します", 0.3}, {"した", 0.2}, {"して", 0.2},
		{"すれば", 0.5}, {"しろ", 0.6}, {"せよ", 0.6}, {"しよう", 0.4}, {"される", 0.4}, {"させる", 0.4},
	}
	var out []*DictionaryEntry
	for _, f := range forms {
		out = append(out, cloneWith(base, stem+f.suffix, readingStem+f.suffix, f.costDelta))
	}
	return out
}

func expandKuru(base *DictionaryEntry) []*DictionaryEntry {
	// 来る conjugates irregularly across readings (こ/き/く/くれ/こい);
	// base.Surface is expected to end in 来る, base.Reading in くる.
	stem := strings.TrimSuffix(base.Surface, "来る")
	readingStem := strings.TrimSuffix(base.Reading, "くる")
	forms := []struct {
		kanjiSuffix, readingSuffix string
		costDelta                 float64
	}{
		{"来ない", "こない", 0.3},
		{"来ます", "きます", 0.3},
		{"来た", "きた", 0.2},
		{"来て", "きて", 0.2},
		{"来れば", "くれば", 0.5},
		{"来い", "こい", 0.6},
		{"来よう", "こよう", 0.4},
		{"来られる", "こられる", 0.4},
		{"来させる", "こさせる", 0.4},
	}
	var out []*DictionaryEntry
	for _, f := range forms {
		out = append(out, cloneWith(base, stem+f.kanjiSuffix, readingStem+f.readingSuffix, f.costDelta))
	}
	return out
}

func expandIAdjective(base *DictionaryEntry) []*DictionaryEntry {
	stem := strings.TrimSuffix(base.Surface, "い")
	readingStem := strings.TrimSuffix(base.Reading, "い")
	forms := []struct {
		suffix    string
		costDelta float64
	}{
		{"くない", 0.3},
		{"かった", 0.2},
		{"くなかった", 0.3},
		{"くて", 0.2},
		{"ければ", 0.5},
		{"そう", 0.4},
		{"すぎる", 0.5},
	}
	var out []*DictionaryEntry
	for _, f := range forms {
		out = append(out, cloneWith(base, stem+f.suffix, readingStem+f.suffix, f.costDelta))
	}
	return out
}
