package inflect

import (
	"sort"
	"strings"
)

// AuxiliaryBase is spec §3's seed record: (surface, reading, conjugation
// type, left_id, required_conn). ConjType drives how Base is expanded
// into a conjugated family of AuxiliaryEntry records; RequiredConn is the
// connection id the stem (or inner auxiliary) to its left must provide
// for the base form itself to attach.
type AuxiliaryBase struct {
	Surface      string
	Reading      string
	ConjType     VerbType
	RequiredConn ConnID
}

// AuxiliaryEntry is spec §3's expanded record: (surface, lemma, left_id,
// right_id, required_conn). RightID is the connection this conjugated
// form offers to whatever auxiliary chains onto its own tail (spec's
// "auxiliary outputs: base/masu/ta/te"); RequiredConn is inherited from
// the seed's RequiredConn unless a specific conjugated form changes what
// it attaches to (e.g. a renyokei-derived form like 〜ました still
// requires the same stem conn its plain form requires).
type AuxiliaryEntry struct {
	Surface      string
	Lemma        string
	RightID      ConnID
	RequiredConn ConnID
}

// auxiliarySeeds is the seed list (a few dozen entries) that is expanded
// algorithmically once at startup; forms the expansion does not produce
// are listed in auxiliaryHandWritten.
// Grounded on _examples/original_source/src/grammar/auxiliaries.h.
var auxiliarySeeds = []AuxiliaryBase{
	// mizenkei attachments: negation, passive/potential, causative
	{"ない", "ない", IAdjective, ConnVerbMizenkei},
	{"ぬ", "ぬ", VerbNone, ConnVerbMizenkei},
	{"ん", "ん", VerbNone, ConnVerbMizenkei},
	{"ず", "ず", VerbNone, ConnVerbMizenkei},
	{"ずに", "ずに", VerbNone, ConnVerbMizenkei},
	{"れる", "れる", Ichidan, ConnVerbMizenkei},
	{"られる", "られる", Ichidan, ConnVerbMizenkei},
	{"せる", "せる", Ichidan, ConnVerbMizenkei},
	{"させる", "させる", Ichidan, ConnVerbMizenkei},

	// renyokei attachments: politeness, desire, aspect, derivation
	{"ます", "ます", VerbNone, ConnVerbRenyokei},
	{"たい", "たい", IAdjective, ConnVerbRenyokei},
	{"たがる", "たがる", GodanRa, ConnVerbRenyokei},
	{"やがる", "やがる", GodanRa, ConnVerbRenyokei},
	{"まくる", "まくる", GodanRa, ConnVerbRenyokei},
	{"すぎる", "すぎる", Ichidan, ConnVerbRenyokei},
	{"やすい", "やすい", IAdjective, ConnVerbRenyokei},
	{"にくい", "にくい", IAdjective, ConnVerbRenyokei},
	{"がたい", "がたい", IAdjective, ConnVerbRenyokei},
	{"づらい", "づらい", IAdjective, ConnVerbRenyokei},
	{"そうだ", "そうだ", VerbNone, ConnVerbRenyokei},
	{"ながら", "ながら", VerbNone, ConnVerbRenyokei},
	{"つつ", "つつ", VerbNone, ConnVerbRenyokei},
	{"なさい", "なさい", VerbNone, ConnVerbRenyokei},
	{"がち", "がち", VerbNone, ConnVerbRenyokei},

	// onbinkei attachments: past, te-form (voiced variants for the
	// GodanGa/Na/Ba/Ma rows)
	{"た", "た", VerbNone, ConnVerbOnbinkei},
	{"て", "て", VerbNone, ConnVerbOnbinkei},
	{"だ", "だ", VerbNone, ConnVerbOnbinkei},
	{"で", "で", VerbNone, ConnVerbOnbinkei},

	// katei / volitional / base attachments
	{"ば", "ば", VerbNone, ConnVerbKatei},
	{"う", "う", VerbNone, ConnVerbVolitional},
	{"よう", "よう", VerbNone, ConnVerbVolitional},
	{"らしい", "らしい", IAdjective, ConnVerbBase},
	{"まい", "まい", VerbNone, ConnVerbBase},
	{"べきだ", "べきだ", VerbNone, ConnVerbBase},
}

// auxiliaryHandWritten is spec §9's "augmented with ~120 hand-written
// patterns for irregular contractions and causative-passive chains" —
// patterns whose surface is not a regular conjugation of a single seed
// and so is listed directly rather than generated. Covers every
// contraction family named in spec §4.5's te-form+auxiliary generator,
// the causative-passive chain, and the aspectual/benefactive compounds
// (〜ている, 〜ておく, 〜てもらう families) with their conjugated forms
// flattened into single entries.
var auxiliaryHandWritten = []AuxiliaryEntry{
	// causative-passive chain: 〜せられる/〜させられる peel as one unit
	// before falling back to separately peeling せる/させる then られる.
	{"せられる", "せられる", ConnAuxOutBase, ConnVerbMizenkei},
	{"させられる", "させられる", ConnAuxOutBase, ConnVerbMizenkei},
	{"せられた", "せられる", ConnAuxOutTa, ConnVerbMizenkei},
	{"させられた", "させられる", ConnAuxOutTa, ConnVerbMizenkei},
	{"せられて", "せられる", ConnAuxOutTe, ConnVerbMizenkei},
	{"させられて", "させられる", ConnAuxOutTe, ConnVerbMizenkei},
	{"せられます", "せられる", ConnAuxOutMasu, ConnVerbMizenkei},
	{"させられます", "させられる", ConnAuxOutMasu, ConnVerbMizenkei},

	// negation beyond the regular ない family
	{"なかった", "ない", ConnAuxOutTa, ConnVerbMizenkei},
	{"なくて", "ない", ConnAuxOutTe, ConnVerbMizenkei},
	{"ないで", "ない", ConnAuxOutTe, ConnVerbMizenkei},
	{"なくても", "ない", ConnAuxOutBase, ConnVerbMizenkei},
	{"なくては", "ない", ConnAuxOutBase, ConnVerbMizenkei},
	{"なければ", "ない", ConnAuxOutBase, ConnVerbMizenkei},
	{"なきゃ", "ない", ConnAuxOutBase, ConnVerbMizenkei},
	{"なくちゃ", "ない", ConnAuxOutBase, ConnVerbMizenkei},
	{"なさそう", "ない", ConnAuxOutBase, ConnVerbMizenkei},

	// politeness: ます attaches renyokei-regularly but conjugates
	// irregularly itself (ません/ました/ましょう), so every form is listed.
	{"ましょう", "ます", ConnAuxOutBase, ConnVerbRenyokei},
	{"ました", "ます", ConnAuxOutTa, ConnVerbRenyokei},
	{"まして", "ます", ConnAuxOutTe, ConnVerbRenyokei},
	{"ません", "ます", ConnAuxOutBase, ConnVerbRenyokei},
	{"ませんでした", "ます", ConnAuxOutTa, ConnVerbRenyokei},
	{"ませ", "ます", ConnAuxOutBase, ConnVerbRenyokei},

	// desire
	{"たかった", "たい", ConnAuxOutTa, ConnVerbRenyokei},
	{"たくて", "たい", ConnAuxOutTe, ConnVerbRenyokei},
	{"たくない", "たい", ConnAuxOutBase, ConnVerbRenyokei},
	{"たくなかった", "たい", ConnAuxOutTa, ConnVerbRenyokei},

	// progressive/resultative 〜ている family, full and contracted
	{"ている", "ている", ConnAuxOutBase, ConnVerbOnbinkei},
	{"ていた", "ている", ConnAuxOutTa, ConnVerbOnbinkei},
	{"ていて", "ている", ConnAuxOutTe, ConnVerbOnbinkei},
	{"ていない", "ている", ConnAuxOutBase, ConnVerbOnbinkei},
	{"ています", "ている", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"ていました", "ている", ConnAuxOutTa, ConnVerbOnbinkei},
	{"ていません", "ている", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てる", "ている", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てた", "ている", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てます", "ている", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"てない", "ている", ConnAuxOutBase, ConnVerbOnbinkei},
	{"でいる", "でいる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"でいた", "でいる", ConnAuxOutTa, ConnVerbOnbinkei},
	{"でいて", "でいる", ConnAuxOutTe, ConnVerbOnbinkei},
	{"でいない", "でいる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"でいます", "でいる", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"でる", "でいる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"でた", "でいる", ConnAuxOutTa, ConnVerbOnbinkei},
	{"でます", "でいる", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"でない", "でいる", ConnAuxOutBase, ConnVerbOnbinkei},

	// 〜ておる (humble progressive)
	{"ておる", "ておる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"ており", "ておる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"ておりました", "ておる", ConnAuxOutTa, ConnVerbOnbinkei},

	// completive 〜てしまう family, full and contracted
	{"てしまう", "てしまう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てしまった", "てしまう", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てしまって", "てしまう", ConnAuxOutTe, ConnVerbOnbinkei},
	{"てしまいます", "てしまう", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"でしまう", "でしまう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"でしまった", "でしまう", ConnAuxOutTa, ConnVerbOnbinkei},
	{"でしまって", "でしまう", ConnAuxOutTe, ConnVerbOnbinkei},
	{"ちゃう", "てしまう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"ちゃった", "てしまう", ConnAuxOutTa, ConnVerbOnbinkei},
	{"ちゃって", "てしまう", ConnAuxOutTe, ConnVerbOnbinkei},
	{"ちゃいます", "てしまう", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"ちゃえば", "てしまう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"じゃう", "でしまう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"じゃった", "でしまう", ConnAuxOutTa, ConnVerbOnbinkei},
	{"じゃって", "でしまう", ConnAuxOutTe, ConnVerbOnbinkei},
	{"じゃいます", "でしまう", ConnAuxOutMasu, ConnVerbOnbinkei},

	// preparatory 〜ておく family, full and contracted
	{"ておく", "ておく", ConnAuxOutBase, ConnVerbOnbinkei},
	{"ておいた", "ておく", ConnAuxOutTa, ConnVerbOnbinkei},
	{"ておいて", "ておく", ConnAuxOutTe, ConnVerbOnbinkei},
	{"ておきます", "ておく", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"とく", "ておく", ConnAuxOutBase, ConnVerbOnbinkei},
	{"といた", "ておく", ConnAuxOutTa, ConnVerbOnbinkei},
	{"といて", "ておく", ConnAuxOutTe, ConnVerbOnbinkei},
	{"ときます", "ておく", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"どく", "でおく", ConnAuxOutBase, ConnVerbOnbinkei},
	{"どいた", "でおく", ConnAuxOutTa, ConnVerbOnbinkei},

	// directional 〜ていく/〜てくる, full and contracted
	{"ていく", "ていく", ConnAuxOutBase, ConnVerbOnbinkei},
	{"ていった", "ていく", ConnAuxOutTa, ConnVerbOnbinkei},
	{"ていきます", "ていく", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"てく", "ていく", ConnAuxOutBase, ConnVerbOnbinkei},
	{"でく", "でいく", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てくる", "てくる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てきた", "てくる", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てきて", "てくる", ConnAuxOutTe, ConnVerbOnbinkei},
	{"てきます", "てくる", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"てこない", "てくる", ConnAuxOutBase, ConnVerbOnbinkei},

	// attemptive / resultative / benefactive
	{"てみる", "てみる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てみた", "てみる", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てみて", "てみる", ConnAuxOutTe, ConnVerbOnbinkei},
	{"てみます", "てみる", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"てある", "てある", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てあった", "てある", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てあります", "てある", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"てもらう", "てもらう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てもらった", "てもらう", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てもらって", "てもらう", ConnAuxOutTe, ConnVerbOnbinkei},
	{"てもらえる", "てもらう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てもらえない", "てもらう", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てくれる", "てくれる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てくれた", "てくれる", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てくれて", "てくれる", ConnAuxOutTe, ConnVerbOnbinkei},
	{"てくれない", "てくれる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てくれます", "てくれる", ConnAuxOutMasu, ConnVerbOnbinkei},
	{"てあげる", "てあげる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てあげた", "てあげる", ConnAuxOutTa, ConnVerbOnbinkei},
	{"てあげて", "てあげる", ConnAuxOutTe, ConnVerbOnbinkei},
	{"てやる", "てやる", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てやった", "てやる", ConnAuxOutTa, ConnVerbOnbinkei},

	// te-form chaining onto a further auxiliary: these entries give the
	// bare て/で a ConnAuxOutTe output (the seed entries only offer
	// ConnAuxOutBase), so patterns requiring "after て" (〜てほしい) can
	// peel through them.
	{"て", "て", ConnAuxOutTe, ConnVerbOnbinkei},
	{"で", "で", ConnAuxOutTe, ConnVerbOnbinkei},
	{"てほしい", "てほしい", ConnAuxOutBase, ConnVerbOnbinkei},
	{"てほしかった", "てほしい", ConnAuxOutTa, ConnVerbOnbinkei},

	// conditional/alternative forms of た
	{"たら", "た", ConnAuxOutBase, ConnVerbOnbinkei},
	{"たり", "た", ConnAuxOutBase, ConnVerbOnbinkei},
	{"だら", "だ", ConnAuxOutBase, ConnVerbOnbinkei},
	{"だり", "だ", ConnAuxOutBase, ConnVerbOnbinkei},

	// conditional ば and passive+conditional/progressive chains
	{"れば", "ば", ConnAuxOutBase, ConnVerbKatei},
	{"れたら", "た", ConnAuxOutBase, ConnVerbMizenkei},
	{"られたら", "た", ConnAuxOutBase, ConnVerbMizenkei},
	{"れている", "れている", ConnAuxOutBase, ConnVerbMizenkei},
	{"れていた", "れている", ConnAuxOutTa, ConnVerbMizenkei},
	{"れています", "れている", ConnAuxOutMasu, ConnVerbMizenkei},
	{"られている", "られている", ConnAuxOutBase, ConnVerbMizenkei},
	{"られていた", "られている", ConnAuxOutTa, ConnVerbMizenkei},

	// conjecture after volitional stem
	{"だろう", "だ", ConnAuxOutBase, ConnVerbVolitional},
	{"でしょう", "です", ConnAuxOutBase, ConnVerbVolitional},

	// i-adjective inflection suffixes: these attach to the bare adjective
	// stem (高+かった), not to a verb form, so their required connection
	// is the i-adjective stem itself. Lemma い marks the reconstructed
	// base as stem+い.
	{"かった", "い", ConnAuxOutTa, ConnIAdjStem},
	{"くない", "い", ConnAuxOutBase, ConnIAdjStem},
	{"くなかった", "い", ConnAuxOutTa, ConnIAdjStem},
	{"くて", "い", ConnAuxOutTe, ConnIAdjStem},
	{"ければ", "い", ConnAuxOutBase, ConnIAdjStem},
	{"かろう", "い", ConnAuxOutBase, ConnIAdjStem},
	{"そう", "い", ConnAuxOutBase, ConnIAdjStem},
	{"すぎる", "い", ConnAuxOutBase, ConnIAdjStem},
	{"く", "い", ConnAuxOutBase, ConnIAdjStem},
	{"くなる", "い", ConnAuxOutBase, ConnIAdjStem},
}

// AuxiliaryEntries is the full expanded table (spec's "auxiliary entry
// table"), sorted by surface length descending for greedy longest-match,
// built once at init and never mutated at runtime (spec §9).
var AuxiliaryEntries = buildAuxiliaryEntries()

func buildAuxiliaryEntries() []AuxiliaryEntry {
	var out []AuxiliaryEntry
	for _, seed := range auxiliarySeeds {
		out = append(out, expandAuxiliarySeed(seed)...)
	}
	out = append(out, auxiliaryHandWritten...)
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i].Surface)) > len([]rune(out[j].Surface))
	})
	return out
}

// expandAuxiliarySeed produces the conjugated family for one seed, per
// spec's "auxiliary outputs: base/masu/ta/te". Only the conjugation
// classes that actually occur among auxiliaries are handled; everything
// irregular is listed hand-written instead.
func expandAuxiliarySeed(seed AuxiliaryBase) []AuxiliaryEntry {
	entry := func(surface string, right ConnID) AuxiliaryEntry {
		return AuxiliaryEntry{Surface: surface, Lemma: seed.Surface, RightID: right, RequiredConn: seed.RequiredConn}
	}
	switch seed.ConjType {
	case IAdjective:
		stem := strings.TrimSuffix(seed.Surface, "い")
		return []AuxiliaryEntry{
			entry(seed.Surface, ConnAuxOutBase),
			entry(stem+"かった", ConnAuxOutTa),
			entry(stem+"くて", ConnAuxOutTe),
			entry(stem+"く", ConnAuxOutBase),
		}
	case Ichidan:
		stem := strings.TrimSuffix(seed.Surface, "る")
		return []AuxiliaryEntry{
			entry(seed.Surface, ConnAuxOutBase),
			entry(stem+"ます", ConnAuxOutMasu),
			entry(stem+"た", ConnAuxOutTa),
			entry(stem+"て", ConnAuxOutTe),
			entry(stem+"ない", ConnAuxOutBase),
		}
	case GodanRa:
		stem := strings.TrimSuffix(seed.Surface, "る")
		return []AuxiliaryEntry{
			entry(seed.Surface, ConnAuxOutBase),
			entry(stem+"ります", ConnAuxOutMasu),
			entry(stem+"った", ConnAuxOutTa),
			entry(stem+"って", ConnAuxOutTe),
			entry(stem+"らない", ConnAuxOutBase),
		}
	default: // VerbNone: particles/endings that do not themselves conjugate
		return []AuxiliaryEntry{entry(seed.Surface, ConnAuxOutBase)}
	}
}
