package lattice

import "testing"

func TestAddEdgeAndEdgesAt(t *testing.T) {
	l := New(3)
	id, err := l.AddEdge("食べ", 0, 2, PartOfSpeech(0), 1.0, FlagNone, "食べる", ConjType(0))
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	edges := l.EdgesAt(0)
	if len(edges) != 1 || edges[0].ID != id {
		t.Fatalf("EdgesAt(0) = %+v", edges)
	}
	if l.Surface(edges[0]) != "食べ" {
		t.Errorf("Surface = %q, want 食べ", l.Surface(edges[0]))
	}
	if l.Lemma(edges[0]) != "食べる" {
		t.Errorf("Lemma = %q, want 食べる", l.Lemma(edges[0]))
	}
}

func TestAddEdgeRejectsOutOfBounds(t *testing.T) {
	l := New(2)
	if _, err := l.AddEdge("x", 0, 3, PartOfSpeech(0), 1.0, FlagNone, "", ConjType(0)); err == nil {
		t.Fatal("expected error for end > length")
	}
}

func TestIsValid(t *testing.T) {
	l := New(2)
	if l.IsValid() {
		t.Fatal("empty lattice with no edges over length 2 should be invalid")
	}
	l.AddEdge("ab", 0, 2, PartOfSpeech(0), 1.0, FlagNone, "", ConjType(0))
	if !l.IsValid() {
		t.Fatal("single covering edge should make the lattice valid")
	}
}

func TestIsValidZeroLength(t *testing.T) {
	l := New(0)
	if !l.IsValid() {
		t.Fatal("zero-length lattice is trivially valid")
	}
}

type constScorer struct {
	word float64
	conn float64
}

func (c constScorer) WordCost(l *Lattice, e Edge) float64                 { return c.word + e.Cost }
func (c constScorer) ConnectionCost(l *Lattice, prev *Edge, next Edge) float64 { return c.conn }

func TestSolvePicksCheapestCover(t *testing.T) {
	l := New(2)
	l.AddEdge("a", 0, 1, PartOfSpeech(0), 5.0, FlagNone, "", ConjType(0))
	l.AddEdge("b", 1, 2, PartOfSpeech(0), 5.0, FlagNone, "", ConjType(0))
	cheapID, _ := l.AddEdge("ab", 0, 2, PartOfSpeech(0), 1.0, FlagNone, "", ConjType(0))

	result := Solve(l, constScorer{})
	if len(result.Path) != 1 || result.Path[0] != cheapID {
		t.Fatalf("path = %v, want single cheap edge %d", result.Path, cheapID)
	}
}

func TestSolveNoPathReturnsEmpty(t *testing.T) {
	l := New(3)
	l.AddEdge("a", 0, 1, PartOfSpeech(0), 1.0, FlagNone, "", ConjType(0))
	result := Solve(l, constScorer{})
	if len(result.Path) != 0 {
		t.Fatalf("expected empty path when N unreachable, got %v", result.Path)
	}
}
