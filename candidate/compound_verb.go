package candidate

import (
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/internal/charclass"
	"github.com/suzume-nlp/suzume/lattice"
)

// subsidiaryVerb is one entry of spec §9's "constant array of ~50
// subsidiary verbs with both kanji and hiragana forms and base-form
// strings": the second halves a V1 renyokei stem productively joins
// with (込む, 出す, 始める, 続ける, …).
type subsidiaryVerb struct {
	Kanji    string
	Hiragana string
	Base     string
}

var compoundVerbs = []subsidiaryVerb{
	{"込む", "こむ", "込む"},
	{"込める", "こめる", "込める"},
	{"出す", "だす", "出す"},
	{"出る", "でる", "出る"},
	{"始める", "はじめる", "始める"},
	{"出せる", "だせる", "出せる"},
	{"続ける", "つづける", "続ける"},
	{"続く", "つづく", "続く"},
	{"終わる", "おわる", "終わる"},
	{"終える", "おえる", "終える"},
	{"切る", "きる", "切る"},
	{"切れる", "きれる", "切れる"},
	{"上げる", "あげる", "上げる"},
	{"上がる", "あがる", "上がる"},
	{"下げる", "さげる", "下げる"},
	{"下がる", "さがる", "下がる"},
	{"直す", "なおす", "直す"},
	{"直る", "なおる", "直る"},
	{"合う", "あう", "合う"},
	{"合わせる", "あわせる", "合わせる"},
	{"過ぎる", "すぎる", "過ぎる"},
	{"尽くす", "つくす", "尽くす"},
	{"かける", "かける", "かける"},
	{"かかる", "かかる", "かかる"},
	{"返す", "かえす", "返す"},
	{"返る", "かえる", "返る"},
	{"戻す", "もどす", "戻す"},
	{"戻る", "もどる", "戻る"},
	{"回る", "まわる", "回る"},
	{"回す", "まわす", "回す"},
	{"抜く", "ぬく", "抜く"},
	{"抜ける", "ぬける", "抜ける"},
	{"入る", "はいる", "入る"},
	{"入れる", "いれる", "入れる"},
	{"付く", "つく", "付く"},
	{"付ける", "つける", "付ける"},
	{"取る", "とる", "取る"},
	{"渡る", "わたる", "渡る"},
	{"渡す", "わたす", "渡す"},
	{"立てる", "たてる", "立てる"},
	{"立つ", "たつ", "立つ"},
	{"忘れる", "わすれる", "忘れる"},
	{"慣れる", "なれる", "慣れる"},
	{"飽きる", "あきる", "飽きる"},
	{"損なう", "そこなう", "損なう"},
	{"逃す", "のがす", "逃す"},
	{"急ぐ", "いそぐ", "急ぐ"},
	{"歩く", "あるく", "歩く"},
	{"換える", "かえる", "換える"},
	{"替える", "かえる", "替える"},
}

// CompoundVerbJoin is spec §4.5's "Compound-verb join" family: at a
// kanji+hiragana span matching a Godan-renyokei or Ichidan-stem pattern,
// check whether the following characters match the kanji or hiragana
// form of a subsidiary verb, and if so emit one edge spanning V1+V2 with
// a bonus, stacking an additional bonus when V1's base form is
// dictionary-verified.
func CompoundVerbJoin(ctx *Context, l *lattice.Lattice, p int) {
	if classAt(ctx, p) != charclass.Kanji {
		return
	}
	kanjiEnd := runOfClass(ctx, p, charclass.Kanji, maxKanjiVerbStem)
	maxV1End := kanjiEnd + maxVerbTail
	if maxV1End > len(ctx.Runes) {
		maxV1End = len(ctx.Runes)
	}
	for v1End := p + 1; v1End <= maxV1End; v1End++ {
		if classAt(ctx, v1End-1) != charclass.Hiragana {
			continue
		}
		v1Surface := sub(ctx, p, v1End)
		v1Best := firstVerbStemCandidate(ctx, v1Surface)
		if v1Best == nil {
			continue
		}
		for _, sv := range compoundVerbs {
			if v2End, ok := matchSubsidiaryForm(ctx.Runes, v1End, sv); ok {
				joined := sub(ctx, p, v2End)
				// The joined surface is already in its own dictionary
				// (terminal) form, since V2 supplies the terminal ending.
				lemma := joined
				cost := 1.5 + ctx.Opts.CompoundVerbBonus
				if dictVerifiesBase(ctx, v1Best.BaseForm) {
					cost += ctx.Opts.DictVerifiedBonus
				}
				l.AddEdge(joined, p, v2End, dictionary.Verb, cost, lattice.FromUnknown, lemma, v1Best.VerbType.ConjType())
			}
		}
	}
}

// firstVerbStemCandidate returns the highest-confidence candidate whose
// VerbType is a Godan row or Ichidan (the renyokei-capable types), or nil.
func firstVerbStemCandidate(ctx *Context, surface string) *inflect.Candidate {
	for _, c := range ctx.Infl.Analyze(surface) {
		switch c.VerbType {
		case inflect.Ichidan, inflect.GodanKa, inflect.GodanGa, inflect.GodanSa, inflect.GodanTa,
			inflect.GodanNa, inflect.GodanBa, inflect.GodanMa, inflect.GodanRa, inflect.GodanWa:
			cc := c
			return &cc
		}
	}
	return nil
}

func matchSubsidiaryForm(runes []rune, start int, sv subsidiaryVerb) (int, bool) {
	if hasRunePrefix(runes, start, sv.Kanji) {
		return start + len([]rune(sv.Kanji)), true
	}
	if hasRunePrefix(runes, start, sv.Hiragana) {
		return start + len([]rune(sv.Hiragana)), true
	}
	return 0, false
}
