package score

import (
	"testing"

	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/lattice"
)

func TestWordCostAppliesDictionaryBonus(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(2)
	id, _ := l.AddEdge("水", 0, 1, dictionary.Noun, 2.0, lattice.FromDictionary, "水", dictionary.None)
	e, _ := l.GetEdge(id)

	got := s.WordCost(l, e)
	// base cost 2.0 + noun prior 0 + dictionary bonus -1.0 + single-kanji
	// penalty 2.0 (length 1, not particle/suffix/prefix) = 3.0
	want := 2.0 + 0 + DefaultOptions().DictionaryBonus + DefaultOptions().SingleKanjiPenalty
	if got != want {
		t.Errorf("WordCost = %.3f, want %.3f", got, want)
	}
}

func TestWordCostOptimalLengthBonus(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(2)
	id, _ := l.AddEdge("食べる", 0, 2, dictionary.Verb, 2.0, lattice.FromDictionary, "食べる", dictionary.Ichidan)
	e, _ := l.GetEdge(id)

	got := s.WordCost(l, e)
	want := 2.0 + DefaultOptions().POSPriors[dictionary.Verb] + DefaultOptions().DictionaryBonus + DefaultOptions().OptimalLengthBonus
	if got != want {
		t.Errorf("WordCost = %.3f, want %.3f", got, want)
	}
}

func TestConnectionCostUsesBigramTable(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(3)
	prevID, _ := l.AddEdge("水", 0, 1, dictionary.Noun, 2.0, lattice.FlagNone, "", dictionary.None)
	nextID, _ := l.AddEdge("を", 1, 2, dictionary.Particle, 0.5, lattice.FlagNone, "", dictionary.None)
	prev, _ := l.GetEdge(prevID)
	next, _ := l.GetEdge(nextID)

	got := s.ConnectionCost(l, &prev, next)
	want := BigramCost(dictionary.Noun, dictionary.Particle)
	if got != want {
		t.Errorf("ConnectionCost = %.3f, want bigram-only %.3f (no rule should fire for noun->particle)", got, want)
	}
}

func TestConnectionCostFiresAuxAfterVerbRule(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(3)
	prevID, _ := l.AddEdge("食べ", 0, 1, dictionary.Verb, 2.0, lattice.FlagNone, "", dictionary.None)
	nextID, _ := l.AddEdge("た", 1, 2, dictionary.Auxiliary, 0.5, lattice.FlagNone, "", dictionary.None)
	prev, _ := l.GetEdge(prevID)
	next, _ := l.GetEdge(nextID)

	got := s.ConnectionCost(l, &prev, next)
	want := BigramCost(dictionary.Verb, dictionary.Auxiliary) - 0.3
	if got != want {
		t.Errorf("ConnectionCost = %.3f, want %.3f (bigram + aux-after-verb-bonus)", got, want)
	}
}

func TestConnectionCostBOSPenalizesLeadingParticle(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(2)
	id, _ := l.AddEdge("は", 0, 1, dictionary.Particle, 0.5, lattice.FlagNone, "", dictionary.None)
	e, _ := l.GetEdge(id)

	got := s.ConnectionCost(l, nil, e)
	want := BigramCost(dictionary.Other, dictionary.Particle) + 0.8
	if got != want {
		t.Errorf("ConnectionCost(BOS, は) = %.3f, want %.3f", got, want)
	}
}

func TestConnectionCostParticleParticlePenaltyExemptsCompounds(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(3)
	prevID, _ := l.AddEdge("か", 0, 1, dictionary.Particle, 0.5, lattice.FlagNone, "", dictionary.None)
	nextID, _ := l.AddEdge("も", 1, 2, dictionary.Particle, 0.5, lattice.FlagNone, "", dictionary.None)
	prev, _ := l.GetEdge(prevID)
	next, _ := l.GetEdge(nextID)

	got := s.ConnectionCost(l, &prev, next)
	want := BigramCost(dictionary.Particle, dictionary.Particle)
	if got != want {
		t.Errorf("ConnectionCost(か,も) = %.3f, want bigram-only %.3f (かも is a legitimate compound)", got, want)
	}
}

func TestBigramOverridesTakePriority(t *testing.T) {
	opts := DefaultOptions()
	opts.BigramOverrides = map[BigramKey]float64{{Prev: dictionary.Noun, Next: dictionary.Particle}: -9.0}
	s := New(opts)
	l := lattice.New(3)
	prevID, _ := l.AddEdge("水", 0, 1, dictionary.Noun, 2.0, lattice.FlagNone, "", dictionary.None)
	nextID, _ := l.AddEdge("を", 1, 2, dictionary.Particle, 0.5, lattice.FlagNone, "", dictionary.None)
	prev, _ := l.GetEdge(prevID)
	next, _ := l.GetEdge(nextID)

	got := s.ConnectionCost(l, &prev, next)
	if got != -9.0 {
		t.Errorf("ConnectionCost with override = %.3f, want -9.0", got)
	}
}

func TestConnectionCostContractedAuxAfterOnbin(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(4)
	prevID, _ := l.AddEdge("読ん", 0, 2, dictionary.Verb, 1.0, lattice.FlagNone, "読む", dictionary.GodanMa)
	nextID, _ := l.AddEdge("でる", 2, 4, dictionary.Auxiliary, 0.7, lattice.FlagNone, "でいる", dictionary.None)
	prev, _ := l.GetEdge(prevID)
	next, _ := l.GetEdge(nextID)

	got := s.ConnectionCost(l, &prev, next)
	// bigram + aux-after-verb (-0.3) + contracted-aux-after-onbin (-0.3)
	want := BigramCost(dictionary.Verb, dictionary.Auxiliary) - 0.3 - 0.3
	if got != want {
		t.Errorf("ConnectionCost(読ん,でる) = %.3f, want %.3f", got, want)
	}
}

func TestConnectionCostCounterAfterDigit(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(2)
	prevID, _ := l.AddEdge("3", 0, 1, dictionary.Noun, 1.5, lattice.FlagNone, "", dictionary.None)
	nextID, _ := l.AddEdge("月", 1, 2, dictionary.Noun, 2.2, lattice.FlagNone, "", dictionary.None)
	prev, _ := l.GetEdge(prevID)
	next, _ := l.GetEdge(nextID)

	got := s.ConnectionCost(l, &prev, next)
	want := BigramCost(dictionary.Noun, dictionary.Noun) - 0.5
	if got != want {
		t.Errorf("ConnectionCost(3,月) = %.3f, want %.3f", got, want)
	}
}

func TestConnectionCostConjunctionAtStart(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(3)
	id, _ := l.AddEdge("しかし", 0, 3, dictionary.Conjunction, 1.0, lattice.FlagNone, "", dictionary.None)
	e, _ := l.GetEdge(id)

	got := s.ConnectionCost(l, nil, e)
	want := BigramCost(dictionary.Other, dictionary.Conjunction) - 0.3
	if got != want {
		t.Errorf("ConnectionCost(BOS, しかし) = %.3f, want %.3f", got, want)
	}
}

func TestUnknownWordKunaiBonus(t *testing.T) {
	s := New(DefaultOptions())
	l := lattice.New(5)
	id, _ := l.AddEdge("面白くない", 0, 5, dictionary.Adjective, 3.0, lattice.FromUnknown, "面白い", dictionary.IAdjective)
	e, _ := l.GetEdge(id)
	delta := s.unknownWordAdjustments(l, e)
	if delta != DefaultOptions().IAdjKunaiBonus {
		t.Errorf("unknownWordAdjustments = %.3f, want %.3f", delta, DefaultOptions().IAdjKunaiBonus)
	}
}

func TestPosPriorDefaultsForUnlistedPOS(t *testing.T) {
	o := DefaultOptions()
	if got := o.posPrior(dictionary.Symbol); got != defaultPOSPrior {
		t.Errorf("posPrior(Symbol) = %.2f, want default %.2f", got, defaultPOSPrior)
	}
	if got := o.posPrior(dictionary.Noun); got != 0 {
		t.Errorf("posPrior(Noun) = %.2f, want 0", got)
	}
}
