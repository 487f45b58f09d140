package analyze

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/internal/debuglog"
)

func morphemeSurfaces(ms []Morpheme) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Surface
	}
	return out
}

func TestAnalyzeSimpleSentence(t *testing.T) {
	a := New(DefaultOptions())
	ms, err := a.Analyze("水を飲む")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(ms) == 0 {
		t.Fatal("Analyze returned no morphemes")
	}

	var foundVerb bool
	for _, m := range ms {
		if m.Surface == "飲む" {
			foundVerb = true
			if m.Lemma != "飲む" {
				t.Errorf("lemma = %q, want 飲む", m.Lemma)
			}
			if m.POS != dictionary.Verb {
				t.Errorf("POS = %v, want Verb", m.POS)
			}
		}
	}
	if !foundVerb {
		t.Errorf("expected a 飲む morpheme, got surfaces %v", morphemeSurfaces(ms))
	}

	// Offsets must be monotonic and cover the whole input.
	end := 0
	for _, m := range ms {
		if m.Start != end {
			t.Fatalf("morpheme %+v does not start where the previous one ended (want %d)", m, end)
		}
		end = m.End
	}
	if want := len([]rune("水を飲む")); end != want {
		t.Errorf("final morpheme end = %d, want %d", end, want)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := New(DefaultOptions())
	ms, err := a.Analyze("")
	if err != nil {
		t.Fatalf("Analyze(\"\") returned error: %v", err)
	}
	if len(ms) != 0 {
		t.Errorf("Analyze(\"\") = %+v, want empty", ms)
	}
}

func TestAnalyzeInvalidUTF8ReturnsEmptyResult(t *testing.T) {
	a := New(DefaultOptions())
	ms, err := a.Analyze("\xff\xfe")
	if err != nil {
		t.Fatalf("Analyze(invalid utf-8) returned error %v, want degraded empty result", err)
	}
	if len(ms) != 0 {
		t.Errorf("Analyze(invalid utf-8) = %+v, want empty morpheme list", ms)
	}
}

func TestAnalyzeTooLargeReturnsEmptyResult(t *testing.T) {
	a := New(DefaultOptions())
	huge := strings.Repeat("水", 1<<20)
	ms, err := a.Analyze(huge)
	if err != nil {
		t.Fatalf("Analyze(oversized) returned error %v, want degraded empty result", err)
	}
	if len(ms) != 0 {
		t.Errorf("Analyze(oversized) = %d morphemes, want empty morpheme list", len(ms))
	}
}

func TestAnalyzeUnclassifiedCodepoints(t *testing.T) {
	// A literal replacement character is valid UTF-8 but classifies as
	// Unknown; each codepoint must come back as its own morpheme rather
	// than collapsing into the whole-span fallback.
	a := New(DefaultOptions())
	input := "���"
	ms, err := a.Analyze(input)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(ms) != 3 {
		t.Fatalf("Analyze(%q) = %d morphemes (%v), want one per codepoint", input, len(ms), morphemeSurfaces(ms))
	}
	for _, m := range ms {
		if m.POS != dictionary.Unknown {
			t.Errorf("morpheme %q POS = %v, want Unknown", m.Surface, m.POS)
		}
	}
}

func TestAnalyzePretokenizerURLPassthrough(t *testing.T) {
	a := New(DefaultOptions())
	ms, err := a.Analyze("詳細は「https://example.com/path」を見てください")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	var found bool
	for _, m := range ms {
		if m.Surface == "https://example.com/path" {
			found = true
			if m.POS != dictionary.Noun {
				t.Errorf("URL morpheme POS = %v, want Noun", m.POS)
			}
			if m.Lemma != m.Surface {
				t.Errorf("URL morpheme lemma = %q, want equal to surface %q", m.Lemma, m.Surface)
			}
		}
	}
	if !found {
		t.Fatalf("expected the URL to pass through as a single morpheme, got %v", morphemeSurfaces(ms))
	}
}

func TestAnalyzeDebugRecordsEvents(t *testing.T) {
	old := os.Getenv("SUZUME_DEBUG")
	os.Setenv("SUZUME_DEBUG", "1")
	debuglog.Reset()
	defer func() {
		os.Setenv("SUZUME_DEBUG", old)
		debuglog.Reset()
	}()

	a := New(DefaultOptions())
	ms, events, err := a.AnalyzeDebug("水")
	if err != nil {
		t.Fatalf("AnalyzeDebug returned error: %v", err)
	}
	if len(ms) == 0 {
		t.Fatal("AnalyzeDebug returned no morphemes")
	}
	if len(events) == 0 {
		t.Error("expected AnalyzeDebug to record at least one scorer event when SUZUME_DEBUG is set")
	}
}

func TestAnalyzeDebugClearsEventsBetweenCalls(t *testing.T) {
	old := os.Getenv("SUZUME_DEBUG")
	os.Setenv("SUZUME_DEBUG", "1")
	debuglog.Reset()
	defer func() {
		os.Setenv("SUZUME_DEBUG", old)
		debuglog.Reset()
	}()

	a := New(DefaultOptions())
	_, first, _ := a.AnalyzeDebug("水")
	_, second, _ := a.AnalyzeDebug("水")
	if len(first) == 0 || len(second) == 0 {
		t.Fatal("expected both calls to record events")
	}
	if len(first) != len(second) {
		t.Errorf("event count differs between identical calls: %d vs %d (ClearEvents should reset between calls)", len(first), len(second))
	}
}

func TestAddUserDictionaryWrapsLoadError(t *testing.T) {
	a := New(DefaultOptions())
	err := a.AddUserDictionary("/nonexistent/path/does-not-exist.tsv")
	if !errors.Is(err, ErrDictionaryLoad) {
		t.Errorf("err = %v, want ErrDictionaryLoad", err)
	}
}

func TestTryAutoLoadCoreDictionaryNoCandidates(t *testing.T) {
	old := os.Getenv("SUZUME_DATA_DIR")
	os.Setenv("SUZUME_DATA_DIR", "/nonexistent/suzume-data-dir")
	defer os.Setenv("SUZUME_DATA_DIR", old)

	a := New(DefaultOptions())
	if a.TryAutoLoadCoreDictionary() {
		t.Error("expected TryAutoLoadCoreDictionary to fail when no core dictionary is reachable")
	}
}
