// Package dictionary implements the layered dictionary lookup subsystem
// from spec §4.3: a prefix trie over a hardcoded core layer, an optional
// memory-mapped binary core dictionary, an optional memory-mapped binary
// user dictionary, and zero-or-more CSV/TSV user dictionaries.
//
// Known limitations: the binary dictionary format is a simple
// newline-separated TSV-in-mmap layout private to this package, not a
// MeCab-compatible binary format; it exists to exercise mmap-based
// zero-copy loading (spec §6's "dictionary format (binary) is opaque to
// this spec" clause), not to interoperate with existing MeCab dictionaries.
package dictionary

import "encoding/json"

// PartOfSpeech is the closed POS enumeration from spec §3.
type PartOfSpeech int

const (
	Unknown PartOfSpeech = iota
	Noun
	Verb
	Adjective
	Adverb
	Particle
	Auxiliary
	Conjunction
	Determiner
	Pronoun
	Prefix
	Suffix
	Symbol
	Other
)

var posNames = [...]string{
	Unknown:     "Unknown",
	Noun:        "Noun",
	Verb:        "Verb",
	Adjective:   "Adjective",
	Adverb:      "Adverb",
	Particle:    "Particle",
	Auxiliary:   "Auxiliary",
	Conjunction: "Conjunction",
	Determiner:  "Determiner",
	Pronoun:     "Pronoun",
	Prefix:      "Prefix",
	Suffix:      "Suffix",
	Symbol:      "Symbol",
	Other:       "Other",
}

func (p PartOfSpeech) String() string {
	if p >= 0 && int(p) < len(posNames) {
		return posNames[p]
	}
	return "PartOfSpeech(invalid)"
}

func (p PartOfSpeech) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PartOfSpeech) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range posNames {
		if name == s {
			*p = PartOfSpeech(i)
			return nil
		}
	}
	*p = Unknown
	return nil
}

// ConjugationType is the closed enumeration from spec §3. The zero value
// None means the entry does not conjugate (particles, nouns, etc.).
//
// Per spec §9's documented Open Question, this enum intentionally has no
// counterpart relationship requirement with inflect.VerbType: the two are
// related but not isomorphic (see the inflect.VerbType doc comment).
type ConjugationType int

const (
	None ConjugationType = iota
	Ichidan
	GodanKa
	GodanGa
	GodanSa
	GodanTa
	GodanNa
	GodanBa
	GodanMa
	GodanRa
	GodanWa
	Suru
	Kuru
	IAdjective
	NaAdjective
)

var conjNames = [...]string{
	None:       "None",
	Ichidan:    "Ichidan",
	GodanKa:    "GodanKa",
	GodanGa:    "GodanGa",
	GodanSa:    "GodanSa",
	GodanTa:    "GodanTa",
	GodanNa:    "GodanNa",
	GodanBa:    "GodanBa",
	GodanMa:    "GodanMa",
	GodanRa:    "GodanRa",
	GodanWa:    "GodanWa",
	Suru:       "Suru",
	Kuru:       "Kuru",
	IAdjective: "IAdjective",
	NaAdjective: "NaAdjective",
}

func (c ConjugationType) String() string {
	if c >= 0 && int(c) < len(conjNames) {
		return conjNames[c]
	}
	return "ConjugationType(invalid)"
}

func (c ConjugationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ConjugationType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range conjNames {
		if name == s {
			*c = ConjugationType(i)
			return nil
		}
	}
	*c = None
	return nil
}

// EntryFlags mirrors the boolean flag set on DictionaryEntry (spec §3).
type EntryFlags uint8

const (
	FlagNone EntryFlags = 0
	IsFormalNoun EntryFlags = 1 << iota
	IsLowInfo
	IsPrefix
	FromUserDict
)

// DictionaryEntry is the record spec §3 defines: surface form, POS, cost,
// lemma, reading, conjugation type, and boolean flags. Entries are owned
// by the dictionary layer that produced them and are never mutated after
// load.
type DictionaryEntry struct {
	Surface  string
	POS      PartOfSpeech
	Cost     float64
	Lemma    string
	Reading  string
	ConjType ConjugationType
	Flags    EntryFlags
}

func (e DictionaryEntry) IsFormalNoun() bool { return e.Flags&IsFormalNoun != 0 }
func (e DictionaryEntry) IsLowInfo() bool    { return e.Flags&IsLowInfo != 0 }
func (e DictionaryEntry) IsPrefix() bool     { return e.Flags&IsPrefix != 0 }
func (e DictionaryEntry) FromUserDict() bool { return e.Flags&FromUserDict != 0 }

// LookupResult is the transient record spec §3 defines: an entry
// reference plus the match length in characters (codepoints), produced
// by lookups and consumed by candidate generators.
type LookupResult struct {
	Entry  *DictionaryEntry
	Length int
}
