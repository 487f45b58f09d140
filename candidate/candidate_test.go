package candidate

import (
	"testing"

	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/lattice"
)

func newTestContext(text string) *Context {
	runes := []rune(text)
	return NewContext(runes, dictionary.NewManager(), inflect.NewEngine(inflect.DefaultOptions()), DefaultOptions())
}

func edgesWithSurface(l *lattice.Lattice, surface string, maxP int) []lattice.Edge {
	var out []lattice.Edge
	for p := 0; p <= maxP; p++ {
		for _, e := range l.EdgesAt(p) {
			if l.Surface(e) == surface {
				out = append(out, e)
			}
		}
	}
	return out
}

func TestDictionaryCandidatesFindsCoreEntry(t *testing.T) {
	ctx := newTestContext("水を飲む")
	l := lattice.New(len(ctx.Runes))
	DictionaryCandidates(ctx, l, 0)
	edges := l.EdgesAt(0)
	found := false
	for _, e := range edges {
		if l.Surface(e) == "水" && e.POS == dictionary.Noun {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 水 dictionary edge at position 0, got %+v", edges)
	}
}

func TestUnknownCandidatesSkipsParticleStart(t *testing.T) {
	ctx := newTestContext("はがき")
	l := lattice.New(len(ctx.Runes))
	UnknownCandidates(ctx, l, 0)
	if edges := l.EdgesAt(0); len(edges) != 0 {
		t.Errorf("expected no unknown-word edges starting with は, got %+v", edges)
	}
}

func TestUnknownCandidatesEmitsRunLengths(t *testing.T) {
	ctx := newTestContext("京都大学")
	l := lattice.New(len(ctx.Runes))
	UnknownCandidates(ctx, l, 0)
	edges := l.EdgesAt(0)
	if len(edges) == 0 {
		t.Fatal("expected at least one unknown-word edge for a kanji run")
	}
	for _, e := range edges {
		if e.POS != dictionary.Noun {
			t.Errorf("unknown kanji edge POS = %v, want Noun", e.POS)
		}
	}
}

func TestVerbKanjiCandidatesRecoverBaseForm(t *testing.T) {
	ctx := newTestContext("食べました")
	l := lattice.New(len(ctx.Runes))
	VerbKanjiCandidates(ctx, l, 0)
	edges := l.EdgesAt(0)
	found := false
	for _, e := range edges {
		if l.Lemma(e) == "食べる" && e.POS == dictionary.Verb {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 食べる verb edge from 食べました, got %+v", edgesSurfaces(l, edges))
	}
}

func edgesSurfaces(l *lattice.Lattice, edges []lattice.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = l.Surface(e)
	}
	return out
}

func TestUnknownCandidatesUnclassifiedCodepoint(t *testing.T) {
	ctx := newTestContext("��")
	l := lattice.New(len(ctx.Runes))
	UnknownCandidates(ctx, l, 0)
	edges := l.EdgesAt(0)
	if len(edges) != 1 {
		t.Fatalf("expected exactly one single-codepoint edge for U+FFFD, got %v", edgesSurfaces(l, edges))
	}
	if edges[0].POS != dictionary.Unknown {
		t.Errorf("POS = %v, want Unknown", edges[0].POS)
	}
	if edges[0].End != 1 {
		t.Errorf("End = %d, want 1 (unclassified codepoints never merge)", edges[0].End)
	}
}

func TestVerbKanjiMizenkeiSplit(t *testing.T) {
	ctx := newTestContext("書かれる")
	l := lattice.New(len(ctx.Runes))
	VerbKanjiCandidates(ctx, l, 0)
	found := false
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "書か" && l.Lemma(e) == "書く" && e.End == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 書か stem edge with lemma 書く before れる, got %v", edgesSurfaces(l, l.EdgesAt(0)))
	}
}

func TestVerbKanjiSingleKanjiIchidanStemSplit(t *testing.T) {
	ctx := newTestContext("見られる")
	l := lattice.New(len(ctx.Runes))
	VerbKanjiCandidates(ctx, l, 0)
	found := false
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "見" && l.Lemma(e) == "見る" && e.End == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 見 stem edge with lemma 見る before られる, got %v", edgesSurfaces(l, l.EdgesAt(0)))
	}
}

func TestVerbKanjiOnbinContractionSplit(t *testing.T) {
	ctx := newTestContext("読んでる")
	l := lattice.New(len(ctx.Runes))
	VerbKanjiCandidates(ctx, l, 0)
	found := false
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "読ん" && l.Lemma(e) == "読む" && e.End == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 読ん stem edge with lemma 読む before でる, got %v", edgesSurfaces(l, l.EdgesAt(0)))
	}
}

func TestVerbKanjiRenyokeiSplit(t *testing.T) {
	ctx := newTestContext("食べて")
	l := lattice.New(len(ctx.Runes))
	VerbKanjiCandidates(ctx, l, 0)
	found := false
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "食べ" && l.Lemma(e) == "食べる" && e.End == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 食べ stem edge with lemma 食べる before て, got %v", edgesSurfaces(l, l.EdgesAt(0)))
	}
}

func TestVerbKanjiUnverifiedBaseNeedsHigherConfidence(t *testing.T) {
	// 書い alone reconstructs only the nonexistent 書う (GodanWa renyokei
	// reading of the い tail); with no dictionary backing it must not
	// clear the stricter unverified threshold.
	ctx := newTestContext("書いて")
	l := lattice.New(len(ctx.Runes))
	VerbKanjiCandidates(ctx, l, 0)
	for _, e := range l.EdgesAt(0) {
		if l.Lemma(e) == "書う" {
			t.Fatalf("unverified 書う candidate should not produce an edge")
		}
	}
}

func TestVerbHiraganaPassiveMizenkeiSplit(t *testing.T) {
	ctx := newTestContext("いわれる")
	l := lattice.New(len(ctx.Runes))
	VerbHiraganaCandidates(ctx, l, 0)
	found := false
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "いわ" && l.Lemma(e) == "いう" && e.End == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a いわ stem edge with lemma いう before れる, got %v", edgesSurfaces(l, l.EdgesAt(0)))
	}
}

func TestCompoundVerbJoinEmitsDictionaryVerifiedJoin(t *testing.T) {
	ctx := newTestContext("飛び込む")
	l := lattice.New(len(ctx.Runes))
	CompoundVerbJoin(ctx, l, 0)
	found := false
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "飛び込む" && e.End == len(ctx.Runes) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a joined 飛び込む edge, got %v", edgesSurfaces(l, l.EdgesAt(0)))
	}
}

func TestSuffixCandidatesEmitsWholeAndStem(t *testing.T) {
	ctx := newTestContext("国際化")
	l := lattice.New(len(ctx.Runes))
	SuffixCandidates(ctx, l, 0)
	edges := l.EdgesAt(0)
	surfaces := edgesSurfaces(l, edges)
	wantWhole, wantStem := false, false
	for _, s := range surfaces {
		if s == "国際化" {
			wantWhole = true
		}
		if s == "国際" {
			wantStem = true
		}
	}
	if !wantWhole || !wantStem {
		t.Fatalf("SuffixCandidates surfaces = %v, want both 国際化 and 国際", surfaces)
	}
}

func TestMixedScriptCandidatesMergesAlphabetKanji(t *testing.T) {
	ctx := newTestContext("Web開発")
	l := lattice.New(len(ctx.Runes))
	MixedScriptCandidates(ctx, l, 0)
	edges := l.EdgesAt(0)
	found := false
	for _, e := range edges {
		if l.Surface(e) == "Web開発" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a merged Web開発 edge, got %v", edgesSurfaces(l, edges))
	}
}

func TestPrefixNounJoinEmitsUnlistedForm(t *testing.T) {
	ctx := newTestContext("不明")
	l := lattice.New(len(ctx.Runes))
	PrefixNounJoin(ctx, l, 0)
	// 不明 is not in the core seed, so the join should fire.
	edges := l.EdgesAt(0)
	found := false
	for _, e := range edges {
		if l.Surface(e) == "不明" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected PrefixNounJoin to emit 不明, got %v", edgesSurfaces(l, edges))
	}
}

func TestTeFormAuxiliaryJoinsTeku(t *testing.T) {
	ctx := newTestContext("てく")
	l := lattice.New(len(ctx.Runes))
	TeFormAuxiliary(ctx, l, 0)
	edges := l.EdgesAt(0)
	if len(edges) != 1 {
		t.Fatalf("TeFormAuxiliary(てく) edges = %v, want exactly one", edgesSurfaces(l, edges))
	}
	if edges[0].POS != dictionary.Auxiliary {
		t.Errorf("POS = %v, want Auxiliary", edges[0].POS)
	}
}

func TestTeFormAuxiliaryExcludesBenefactiveBeforeNai(t *testing.T) {
	// TeFormAuxiliary matches contraction surfaces literally, so the
	// exclusion guard fires on the literal もらう tail followed by ない
	// (a synthetic boundary case, not natural text) rather than on the
	// conjugated もらわない form.
	ctx := newTestContext("てもらうない")
	l := lattice.New(len(ctx.Runes))
	TeFormAuxiliary(ctx, l, 0)
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "てもらう" {
			t.Fatalf("expected てもらう to be excluded before ない, but found it")
		}
	}
}

func TestAdjectiveCandidatesPastForm(t *testing.T) {
	ctx := newTestContext("楽しかった")
	l := lattice.New(len(ctx.Runes))
	AdjectiveCandidates(ctx, l, 0)
	found := false
	for _, e := range l.EdgesAt(0) {
		if l.Surface(e) == "楽しかった" && l.Lemma(e) == "楽しい" && e.POS == dictionary.Adjective {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 楽しかった adjective edge with lemma 楽しい, got %v", edgesSurfaces(l, l.EdgesAt(0)))
	}
}

func TestAdjectiveCandidatesExcludeVerbContraction(t *testing.T) {
	ctx := newTestContext("食べている")
	l := lattice.New(len(ctx.Runes))
	AdjectiveCandidates(ctx, l, 0)
	for _, e := range l.EdgesAt(0) {
		if e.POS == dictionary.Adjective {
			t.Fatalf("progressive 〜ている must not spawn an adjective edge, got %q", l.Surface(e))
		}
	}
}

func TestCompoundNounSplitRequiresMinLength(t *testing.T) {
	ctx := newTestContext("日")
	l := lattice.New(len(ctx.Runes))
	CompoundNounSplit(ctx, l, 0)
	if edges := l.EdgesAt(0); len(edges) != 0 {
		t.Errorf("expected no compound-noun split for a single kanji, got %v", edgesSurfaces(l, edges))
	}
}

func TestAllReturnsTwelveGenerators(t *testing.T) {
	if n := len(All()); n != 12 {
		t.Errorf("All() returned %d generators, want 12", n)
	}
}
