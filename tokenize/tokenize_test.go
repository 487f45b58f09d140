package tokenize

import (
	"testing"

	"github.com/suzume-nlp/suzume/candidate"
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/lattice"
)

func newTestContext(text string) *candidate.Context {
	runes := []rune(text)
	return candidate.NewContext(runes, dictionary.NewManager(), inflect.NewEngine(inflect.DefaultOptions()), candidate.DefaultOptions())
}

func findEdge(l *lattice.Lattice, p int, surface string) (lattice.Edge, bool) {
	for _, e := range l.EdgesAt(p) {
		if l.Surface(e) == surface {
			return e, true
		}
	}
	return lattice.Edge{}, false
}

func TestBuildCoversEveryPosition(t *testing.T) {
	ctx := newTestContext("水を飲む")
	l := Build(ctx, DefaultOptions())
	if !l.IsValid() {
		t.Fatal("Build produced a lattice with no 0->N path")
	}
	if l.Length() != len(ctx.Runes) {
		t.Errorf("Length = %d, want %d", l.Length(), len(ctx.Runes))
	}
}

func TestApplyPostFilterOverrunPenalty(t *testing.T) {
	l := lattice.New(3)
	dictID, _ := l.AddEdge("水", 0, 1, dictionary.Noun, 2.0, lattice.FromDictionary, "", dictionary.None)
	// An unknown-word edge extending past the dictionary entry's reach at
	// the same position, with no lemma and too short to qualify for the
	// pure-hiragana-verb exemption, should be penalized.
	unkID, _ := l.AddEdge("水を", 0, 2, dictionary.Noun, 2.0, lattice.FromUnknown, "", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	dictEdge, _ := l.GetEdge(dictID)
	if dictEdge.Cost != 2.0 {
		t.Errorf("dictionary edge cost changed to %.2f, want unchanged 2.0", dictEdge.Cost)
	}
	unkEdge, _ := l.GetEdge(unkID)
	want := 2.0 + DefaultOptions().OverrunPenalty
	if unkEdge.Cost != want {
		t.Errorf("overrunning unknown edge cost = %.2f, want %.2f", unkEdge.Cost, want)
	}
}

func TestApplyPostFilterExemptsConfirmedInflection(t *testing.T) {
	l := lattice.New(3)
	l.AddEdge("水", 0, 1, dictionary.Noun, 2.0, lattice.FromDictionary, "", dictionary.None)
	// Same overrun shape, but this unknown edge carries a lemma (as an
	// inflection-confirmed verb/adjective edge would), so it is exempt.
	unkID, _ := l.AddEdge("水泳", 0, 2, dictionary.Verb, 2.0, lattice.FromUnknown, "水泳する", dictionary.Suru)

	applyPostFilter(l, DefaultOptions())

	unkEdge, _ := l.GetEdge(unkID)
	if unkEdge.Cost != 2.0 {
		t.Errorf("lemma-confirmed overrunning edge cost = %.2f, want unchanged 2.0", unkEdge.Cost)
	}
}

func TestApplyPostFilterExemptsLongHiraganaVerb(t *testing.T) {
	l := lattice.New(4)
	l.AddEdge("水", 0, 1, dictionary.Noun, 2.0, lattice.FromDictionary, "", dictionary.None)
	// No lemma, but a pure-hiragana verb edge of length >= 3 is exempt
	// regardless.
	unkID, _ := l.AddEdge("およぐ", 0, 3, dictionary.Verb, 2.0, lattice.FromUnknown, "", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	unkEdge, _ := l.GetEdge(unkID)
	if unkEdge.Cost != 2.0 {
		t.Errorf("long hiragana verb edge cost = %.2f, want unchanged 2.0", unkEdge.Cost)
	}
}

func TestApplyPostFilterNoOverrunWhenWithinDictReach(t *testing.T) {
	l := lattice.New(3)
	l.AddEdge("水泳", 0, 2, dictionary.Noun, 2.0, lattice.FromDictionary, "", dictionary.None)
	unkID, _ := l.AddEdge("水", 0, 1, dictionary.Noun, 2.0, lattice.FromUnknown, "", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	unkEdge, _ := l.GetEdge(unkID)
	if unkEdge.Cost != 2.0 {
		t.Errorf("edge ending within dictionary reach cost = %.2f, want unchanged 2.0", unkEdge.Cost)
	}
}

func TestApplyPostFilterStandaloneParticlePenalty(t *testing.T) {
	l := lattice.New(2)
	// An unknown verb edge whose hiragana tail equals a standalone
	// particle is penalized, independent of the overrun check (no
	// dictionary edge exists at this position at all).
	id, _ := l.AddEdge("すが", 0, 2, dictionary.Verb, 1.0, lattice.FromUnknown, "", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	e, _ := l.GetEdge(id)
	want := 1.0 + DefaultOptions().StandaloneParticlePenalty
	if e.Cost != want {
		t.Errorf("cost = %.2f, want %.2f", e.Cost, want)
	}
}

func TestApplyPostFilterNoParticlePenaltyForNonVerb(t *testing.T) {
	l := lattice.New(2)
	id, _ := l.AddEdge("すが", 0, 2, dictionary.Noun, 1.0, lattice.FromUnknown, "", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	e, _ := l.GetEdge(id)
	if e.Cost != 1.0 {
		t.Errorf("non-verb edge cost = %.2f, want unchanged 1.0", e.Cost)
	}
}

func TestApplyPostFilterIgnoresDictionaryEdges(t *testing.T) {
	l := lattice.New(2)
	dictID, _ := l.AddEdge("すが", 0, 2, dictionary.Verb, 1.0, lattice.FromDictionary, "", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	e, _ := l.GetEdge(dictID)
	if e.Cost != 1.0 {
		t.Errorf("dictionary-backed edge cost = %.2f, want unchanged 1.0 (post-filter only touches FromUnknown edges)", e.Cost)
	}
}

func TestApplyPostFilterExemptsMixedScriptMerge(t *testing.T) {
	l := lattice.New(5)
	l.AddEdge("Web", 0, 3, dictionary.Noun, 2.0, lattice.FromDictionary, "", dictionary.None)
	// The merged mixed-script edge extends past the dictionary entry at
	// the same position but must keep its cost.
	id, _ := l.AddEdge("Web開発", 0, 5, dictionary.Noun, 1.8, lattice.FromUnknown, "Web開発", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	e, _ := l.GetEdge(id)
	if e.Cost != 1.8 {
		t.Errorf("mixed-script merged edge cost = %.2f, want unchanged 1.8", e.Cost)
	}
}

func TestIsOverrunExemptAdjectiveWithLemma(t *testing.T) {
	l := lattice.New(1)
	id, _ := l.AddEdge("高", 0, 1, dictionary.Adjective, 1.0, lattice.FromUnknown, "高い", dictionary.IAdjective)
	e, _ := l.GetEdge(id)
	if !isOverrunExempt(l, e) {
		t.Error("expected lemma-bearing adjective edge to be overrun-exempt")
	}
}

func TestIsOverrunExemptFalseForUnrelatedPOS(t *testing.T) {
	l := lattice.New(2)
	id, _ := l.AddEdge("はが", 0, 2, dictionary.Noun, 1.0, lattice.FromUnknown, "", dictionary.None)
	e, _ := l.GetEdge(id)
	if isOverrunExempt(l, e) {
		t.Error("expected noun edge with no lemma to not be overrun-exempt")
	}
}

func TestParticleTailSingleRune(t *testing.T) {
	l := lattice.New(2)
	id, _ := l.AddEdge("飲んで", 0, 2, dictionary.Verb, 1.0, lattice.FromUnknown, "", dictionary.None)
	e, _ := l.GetEdge(id)
	if got := particleTail(l, e); got != "で" {
		t.Errorf("particleTail = %q, want で", got)
	}
}

func TestParticleTailMultiRune(t *testing.T) {
	l := lattice.New(4)
	id, _ := l.AddEdge("飲むから", 0, 4, dictionary.Verb, 1.0, lattice.FromUnknown, "", dictionary.None)
	e, _ := l.GetEdge(id)
	if got := particleTail(l, e); got != "から" {
		t.Errorf("particleTail = %q, want から (multi-rune particles must match whole)", got)
	}
}

func TestParticleTailEmptySurface(t *testing.T) {
	l := lattice.New(1)
	id, _ := l.AddEdge("", 0, 0, dictionary.Unknown, 0, lattice.FlagNone, "", dictionary.None)
	e, _ := l.GetEdge(id)
	if got := particleTail(l, e); got != "" {
		t.Errorf("particleTail(empty) = %q, want empty string", got)
	}
}

func TestApplyPostFilterMultiRuneParticlePenalty(t *testing.T) {
	l := lattice.New(4)
	id, _ := l.AddEdge("飲むまで", 0, 4, dictionary.Verb, 1.0, lattice.FromUnknown, "", dictionary.None)

	applyPostFilter(l, DefaultOptions())

	e, _ := l.GetEdge(id)
	want := 1.0 + DefaultOptions().StandaloneParticlePenalty
	if e.Cost != want {
		t.Errorf("cost = %.2f, want %.2f (まで tail must trigger the penalty)", e.Cost, want)
	}
}
