package dictionary

import "testing"

func TestTrieExactAndPrefix(t *testing.T) {
	tr := NewTrie()
	e := &DictionaryEntry{Surface: "食べる", POS: Verb, Lemma: "食べる"}
	tr.Insert(e.Surface, e)

	if got := tr.Lookup("食べる"); len(got) != 1 || got[0] != e {
		t.Fatalf("Lookup exact = %v", got)
	}
	if got := tr.Lookup("食べ"); got != nil {
		t.Fatalf("Lookup partial should miss, got %v", got)
	}

	runes := []rune("食べるとき")
	results := tr.PrefixMatch(runes, 0)
	if len(results) != 1 || results[0].Length != 3 {
		t.Fatalf("PrefixMatch = %+v, want one match of length 3", results)
	}
}

func TestManagerLookupCoreLayer(t *testing.T) {
	m := NewManager()
	entries := m.Lookup("食べる")
	if len(entries) == 0 {
		t.Fatalf("expected core seed to contain 食べる")
	}
	found := false
	for _, e := range entries {
		if e.Lemma == "食べる" && e.ConjType == Ichidan {
			found = true
		}
	}
	if !found {
		t.Errorf("食べる entry missing Ichidan conj type")
	}
}

func TestManagerLookupExpandedForm(t *testing.T) {
	m := NewManager()
	// 高かった is the expanded past form of the seed 高い entry.
	entries := m.Lookup("高かった")
	if len(entries) == 0 {
		t.Fatalf("expected expanded form 高かった to be reachable")
	}
	if entries[0].Lemma != "高い" {
		t.Errorf("lemma = %q, want 高い", entries[0].Lemma)
	}
}

func TestPartOfSpeechJSONRoundTrip(t *testing.T) {
	data, err := Verb.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var p PartOfSpeech
	if err := p.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if p != Verb {
		t.Errorf("round trip = %v, want Verb", p)
	}
}

func TestExpandConjugationsGodanKa(t *testing.T) {
	base := &DictionaryEntry{Surface: "書く", Lemma: "書く", Reading: "かく", ConjType: GodanKa, POS: Verb}
	forms := ExpandConjugations(base)
	want := map[string]bool{"書かない": false, "書きます": false, "書いて": false, "書いた": false}
	for _, f := range forms {
		if _, ok := want[f.Surface]; ok {
			want[f.Surface] = true
		}
	}
	for surface, seen := range want {
		if !seen {
			t.Errorf("expected conjugated form %q", surface)
		}
	}
}
