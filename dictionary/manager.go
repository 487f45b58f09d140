package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Manager is the layered dictionary per spec §4.3: four layers consulted
// in order — (1) the built-in hardcoded core, (2) an optional binary core
// dictionary loaded from a standard search path, (3) an optional binary
// user dictionary, (4) zero-or-more CSV/TSV user dictionaries. Lookups
// concatenate results from every layer without deduplication; lexical
// ambiguities are resolved downstream by Viterbi.
type Manager struct {
	core       *Trie
	binaryCore *BinaryDictionary
	binaryUser *BinaryDictionary
	userLayers []*Trie
}

// NewManager returns a Manager with only the hardcoded core layer
// populated.
func NewManager() *Manager {
	return &Manager{core: newCoreLayer()}
}

// PrefixMatch runs prefixMatch against every loaded layer in the spec §4.3
// order and concatenates the results.
func (m *Manager) PrefixMatch(runes []rune, start int) []LookupResult {
	var out []LookupResult
	out = append(out, m.core.PrefixMatch(runes, start)...)
	if m.binaryCore != nil {
		out = append(out, m.binaryCore.PrefixMatch(runes, start)...)
	}
	if m.binaryUser != nil {
		out = append(out, m.binaryUser.PrefixMatch(runes, start)...)
	}
	for _, layer := range m.userLayers {
		out = append(out, layer.PrefixMatch(runes, start)...)
	}
	return out
}

// Lookup runs an exact-match lookup against every loaded layer in order.
func (m *Manager) Lookup(key string) []*DictionaryEntry {
	var out []*DictionaryEntry
	out = append(out, m.core.Lookup(key)...)
	if m.binaryCore != nil {
		out = append(out, m.binaryCore.trie.Lookup(key)...)
	}
	if m.binaryUser != nil {
		out = append(out, m.binaryUser.trie.Lookup(key)...)
	}
	for _, layer := range m.userLayers {
		out = append(out, layer.Lookup(key)...)
	}
	return out
}

// HasCoreBinaryDictionary reports whether a binary core dictionary is
// loaded (layer 2).
func (m *Manager) HasCoreBinaryDictionary() bool { return m.binaryCore != nil }

// HasUserBinaryDictionary reports whether a binary user dictionary is
// loaded (layer 3).
func (m *Manager) HasUserBinaryDictionary() bool { return m.binaryUser != nil }

// LoadCoreBinary loads a binary dictionary file into layer 2.
func (m *Manager) LoadCoreBinary(path string) error {
	d, err := LoadBinaryDictionary(path)
	if err != nil {
		return fmt.Errorf("dictionary: load core binary: %w", err)
	}
	m.binaryCore = d
	return nil
}

// LoadUserBinary loads a binary dictionary file into layer 3.
func (m *Manager) LoadUserBinary(path string) error {
	d, err := LoadBinaryDictionary(path)
	if err != nil {
		return fmt.Errorf("dictionary: load user binary: %w", err)
	}
	m.binaryUser = d
	return nil
}

// coreSearchPath is spec §6's documented auto-load search path, in order.
// $SUZUME_DATA_DIR is resolved lazily so tests can set the env var.
func coreSearchPath() []string {
	var paths []string
	if dir := os.Getenv("SUZUME_DATA_DIR"); dir != "" {
		paths = append(paths, filepath.Join(dir, "core.dic"))
	}
	paths = append(paths, filepath.Join("data", "core.dic"))
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".suzume", "core.dic"))
	}
	paths = append(paths,
		filepath.Join("/usr/local/share/suzume", "core.dic"),
		filepath.Join("/usr/share/suzume", "core.dic"),
	)
	return paths
}

// TryAutoLoadCoreDictionary walks the auto-load search path from spec §6
// and loads the first existing file as the binary core layer. Returns
// true iff a dictionary was loaded.
func (m *Manager) TryAutoLoadCoreDictionary() bool {
	for _, path := range coreSearchPath() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := m.LoadCoreBinary(path); err == nil {
			return true
		}
	}
	return false
}

// AddUserDictionary appends a CSV/TSV user-dictionary layer (spec §4.3
// layer 4, spec §6 addUserDictionary). The file format is tab-separated:
// surface, pos, cost, lemma, reading, conj_type (conj_type and reading
// optional). Multiple calls append additional layers; none are ever
// removed for the lifetime of the Manager.
func (m *Manager) AddUserDictionary(path string) error {
	layer, err := loadUserDictFile(path)
	if err != nil {
		return fmt.Errorf("dictionary: add user dictionary %s: %w", path, err)
	}
	m.userLayers = append(m.userLayers, layer)
	return nil
}

func loadUserDictFile(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	layer := NewTrie()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseUserDictLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		layer.Insert(entry.Surface, entry)
		for _, expanded := range ExpandConjugations(entry) {
			layer.Insert(expanded.Surface, expanded)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return layer, nil
}

func parseUserDictLine(line string) (*DictionaryEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return nil, fmt.Errorf("expected at least surface\\tpos, got %q", line)
	}
	if fields[0] == "" {
		return nil, fmt.Errorf("empty surface in %q", line)
	}
	entry := &DictionaryEntry{
		Surface: fields[0],
		Lemma:   fields[0],
		Flags:   FromUserDict,
	}
	entry.POS = parsePOS(fields[1])
	if len(fields) > 2 && fields[2] != "" {
		cost, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cost %q: %w", fields[2], err)
		}
		entry.Cost = cost
	} else {
		entry.Cost = 3.0
	}
	if len(fields) > 3 && fields[3] != "" {
		entry.Lemma = fields[3]
	}
	if len(fields) > 4 {
		entry.Reading = fields[4]
	}
	if len(fields) > 5 && fields[5] != "" {
		entry.ConjType = parseConjType(fields[5])
	}
	return entry, nil
}

func parsePOS(s string) PartOfSpeech {
	for i, name := range posNames {
		if name == s {
			return PartOfSpeech(i)
		}
	}
	return Unknown
}

func parseConjType(s string) ConjugationType {
	for i, name := range conjNames {
		if name == s {
			return ConjugationType(i)
		}
	}
	return None
}
