// Package analyze implements spec §6's top-level Analyzer façade: wire
// the Normalizer, Pretokenizer, layered Dictionary, inflection Engine,
// candidate generators, Scorer, and Viterbi search together into a
// single Analyze(text) -> []Morpheme operation, plus the error kinds
// spec §7 names.
//
// Grounded on the teacher's cmd/smoketest/main.go, which is the one
// place in the teacher repo that wires multiple packages (tokenizer,
// translit) together end to end; this package generalizes that wiring
// style into a reusable type instead of a one-off main().
package analyze

import (
	"errors"
	"fmt"

	"github.com/suzume-nlp/suzume/candidate"
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/inflect"
	"github.com/suzume-nlp/suzume/internal/debuglog"
	"github.com/suzume-nlp/suzume/lattice"
	"github.com/suzume-nlp/suzume/normalize"
	"github.com/suzume-nlp/suzume/pretoken"
	"github.com/suzume-nlp/suzume/score"
	"github.com/suzume-nlp/suzume/tokenize"
)

// Sentinel errors for the failure kinds spec §7 lets escape to callers.
// InvalidUtf8 and NormalizationFailure are NOT here: per §7 they degrade
// to an empty morpheme list inside Analyze rather than surfacing as
// errors ("Callers never receive exceptions from analyze").
var (
	// ErrInvalidLattice is returned when an edge id on the Viterbi path
	// cannot be resolved in the span's lattice (a lattice-internal
	// inconsistency). A span for which Viterbi finds no path at all is not
	// an error: Analyze emits it as a single-morpheme fallback instead.
	ErrInvalidLattice = errors.New("analyze: invalid lattice for span")
	// ErrDictionaryLoad is returned by AddUserDictionary/loading helpers
	// when a dictionary file cannot be read or parsed.
	ErrDictionaryLoad = errors.New("analyze: dictionary load failed")
)

// Morpheme is spec §3's output record: a decoded unit of the analyzed
// text with its part of speech, lemma, and the debug-info fields spec §9
// keeps unconditional (Origin, Confidence) rather than compiled out.
type Morpheme struct {
	Surface    string
	Start      int
	End        int
	POS        dictionary.PartOfSpeech
	Lemma      string
	Reading    string
	ConjType   dictionary.ConjugationType
	Cost       float64
	Origin     string
	Confidence float64
}

// Analyzer bundles the collaborators spec §6 names behind a single
// Analyze call. It holds no per-call mutable state of its own; the
// dictionary Manager and inflection Engine each manage their own
// concurrency (spec §5), so a single Analyzer is safe for concurrent use.
type Analyzer struct {
	dict       *dictionary.Manager
	infl       *inflect.Engine
	scorer     *score.Scorer
	candOpts   candidate.Options
	tokenOpts  tokenize.Options
}

// Options bundles the sub-package Options spec §9 keeps as first-class
// structs, so New can be called with one aggregate value.
type Options struct {
	Inflect  inflect.Options
	Score    score.Options
	Candidate candidate.Options
	Tokenize tokenize.Options
}

// DefaultOptions returns every sub-package's documented defaults.
func DefaultOptions() Options {
	return Options{
		Inflect:   inflect.DefaultOptions(),
		Score:     score.DefaultOptions(),
		Candidate: candidate.DefaultOptions(),
		Tokenize:  tokenize.DefaultOptions(),
	}
}

// New returns an Analyzer with only the hardcoded core dictionary layer
// populated; call TryAutoLoadCoreDictionary or AddUserDictionary to add
// more (spec §6).
func New(opts Options) *Analyzer {
	return &Analyzer{
		dict:      dictionary.NewManager(),
		infl:      inflect.NewEngine(opts.Inflect),
		scorer:    score.New(opts.Score),
		candOpts:  opts.Candidate,
		tokenOpts: opts.Tokenize,
	}
}

// TryAutoLoadCoreDictionary walks spec §6's documented search path
// ($SUZUME_DATA_DIR/core.dic, ./data/core.dic, ~/.suzume/core.dic, then
// the two /usr paths) and loads the first binary dictionary found.
// Returns true iff a dictionary was loaded.
func (a *Analyzer) TryAutoLoadCoreDictionary() bool {
	return a.dict.TryAutoLoadCoreDictionary()
}

// AddUserDictionary appends a CSV/TSV user-dictionary layer (spec §4.3
// layer 4, spec §6 addUserDictionary).
func (a *Analyzer) AddUserDictionary(path string) error {
	if err := a.dict.AddUserDictionary(path); err != nil {
		return fmt.Errorf("%w: %v", ErrDictionaryLoad, err)
	}
	return nil
}

// Analyze runs spec §6's full pipeline: normalize, pretokenize, then for
// each analyzable span build a lattice, run Viterbi, and decode the
// winning path into Morphemes. Fixed tokens from the pretokenizer (URLs,
// emails, emoji) are emitted as Noun morphemes, matching spec §6's
// documented treatment of "pretokenizer output passes through untouched
// as a single morpheme".
func (a *Analyzer) Analyze(text string) ([]Morpheme, error) {
	normalized, err := normalize.Normalize(text)
	if err != nil {
		// spec §7: InvalidUtf8 and NormalizationFailure degrade to an
		// empty morpheme list for the affected span — callers never
		// receive an error from Analyze for bad input.
		debuglog.Printf("analyze", "normalization failed for input, returning empty result: %v", err)
		return []Morpheme{}, nil
	}

	var out []Morpheme
	for _, piece := range pretoken.Split(normalized) {
		if piece.Kind != pretoken.Span {
			out = append(out, Morpheme{
				Surface: piece.Text,
				Start:   piece.Start,
				End:     piece.End,
				POS:     dictionary.Noun,
				Lemma:   piece.Text,
			})
			continue
		}
		spanMorphemes, err := a.analyzeSpan(piece.Text, piece.Start)
		if err != nil {
			return nil, err
		}
		out = append(out, spanMorphemes...)
	}
	return out, nil
}

// AnalyzeDebug runs Analyze and, when $SUZUME_DEBUG is set, also returns
// the debug trace accumulated during the call (spec §9's debuglog
// events: scorer adjustments, inflection confidence deltas).
func (a *Analyzer) AnalyzeDebug(text string) ([]Morpheme, []string, error) {
	debuglog.ClearEvents()
	morphemes, err := a.Analyze(text)
	return morphemes, debuglog.Events(), err
}

// readingFor looks up the dictionary reading for a winning edge, trying
// the lemma first (so conjugated surfaces like 高かった resolve to the
// dictionary-form reading たかい) and falling back to the surface itself.
// Unknown-word edges have no dictionary entry and resolve to "".
func (a *Analyzer) readingFor(lemma, surface string) string {
	for _, key := range []string{lemma, surface} {
		if key == "" {
			continue
		}
		for _, entry := range a.dict.Lookup(key) {
			if entry.Reading != "" {
				return entry.Reading
			}
		}
	}
	return ""
}

func (a *Analyzer) analyzeSpan(text string, offset int) ([]Morpheme, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}
	ctx := candidate.NewContext(runes, a.dict, a.infl, a.candOpts)
	l := tokenize.Build(ctx, a.tokenOpts)
	result := lattice.Solve(l, a.scorer)
	if result.Path == nil {
		// spec §7 InvalidLattice: fall back to a single whole-span Noun
		// morpheme rather than failing the entire Analyze call.
		debuglog.Printf("analyze", "invalid lattice for span %q, falling back to single morpheme", text)
		return []Morpheme{{
			Surface: text,
			Start:   offset,
			End:     offset + len(runes),
			POS:     dictionary.Noun,
			Lemma:   text,
			Origin:  "fallback",
		}}, nil
	}

	out := make([]Morpheme, 0, len(result.Path))
	for _, id := range result.Path {
		e, ok := l.GetEdge(id)
		if !ok {
			return nil, fmt.Errorf("%w: edge id %d missing from span %q", ErrInvalidLattice, id, text)
		}
		lemma := l.Lemma(e)
		if lemma == "" {
			lemma = l.Surface(e)
		}
		origin := "dictionary"
		if e.Flags.Has(lattice.FromUnknown) {
			origin = "unknown"
		} else if e.Flags.Has(lattice.FromUserDict) {
			origin = "userdict"
		}
		out = append(out, Morpheme{
			Surface:    l.Surface(e),
			Start:      offset + e.Start,
			End:        offset + e.End,
			POS:        e.POS,
			Lemma:      lemma,
			Reading:    a.readingFor(lemma, l.Surface(e)),
			ConjType:   e.ConjType,
			Cost:       e.Cost,
			Origin:     origin,
			Confidence: 1.0,
		})
	}
	return out, nil
}
