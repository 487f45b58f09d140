// Command dictgen converts a JMDict XML dump into the tab-separated
// user-dictionary format dictionary.Manager.AddUserDictionary loads (spec
// §4.3 layer 4): surface, pos, cost, lemma, reading, conj_type.
//
// Download JMdict_e from http://ftp.edrdg.org/pub/Nihongo/ then run:
//
//	go run ./cmd/dictgen -input JMdict_e -output data/jmdict.tsv
//
// Regenerate when a new JMdict release is available.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	jmdict "github.com/yomidevs/jmdict-go"

	"github.com/suzume-nlp/suzume/dictionary"
)

const (
	defaultInput  = "data/JMdict_e"
	defaultOutput = "data/jmdict.tsv"
	defaultCost   = 4.0
)

func main() {
	inputPath := flag.String("input", defaultInput, "path to a JMdict XML dump")
	outputPath := flag.String("output", defaultOutput, "output path for the user-dictionary TSV")
	flag.Parse()

	f, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: open input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	dict, _, err := jmdict.LoadJmdict(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: load JMdict: %v\n", err)
		os.Exit(1)
	}

	lines := make([]string, 0, len(dict.Entries))
	posCounts := make(map[dictionary.PartOfSpeech]int)
	skipped := 0

	for i := range dict.Entries {
		line, ok := convertEntry(&dict.Entries[i])
		if !ok {
			skipped++
			continue
		}
		lines = append(lines, line)
	}

	sort.Strings(lines)

	out, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: create output: %v\n", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(out)
	for _, l := range lines {
		if _, writeErr := fmt.Fprintln(w, l); writeErr != nil {
			fmt.Fprintf(os.Stderr, "dictgen: write error: %v\n", writeErr)
			os.Exit(1)
		}
		posCounts[posOf(l)]++
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: flush error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: close output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Entries written: %d (skipped %d unsupported)\n", len(lines), skipped)
	for pos, count := range posCounts {
		fmt.Fprintf(os.Stderr, "  %-12s %d\n", pos.String()+":", count)
	}
	fmt.Fprintf(os.Stderr, "Output file: %s\n", *outputPath)
}

// posOf recovers the POS field (second tab-separated column) from an
// already-built TSV line, for the summary counts printed above.
func posOf(line string) dictionary.PartOfSpeech {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) < 2 {
		return dictionary.Unknown
	}
	for p := dictionary.Unknown; int(p) <= int(dictionary.Other); p++ {
		if p.String() == fields[1] {
			return p
		}
	}
	return dictionary.Unknown
}

// convertEntry maps one JMdict entry to a TSV line. Entries with no kanji
// or kana form, or whose first sense carries no POS tag that mapJMDictPOS
// recognizes (for example expression-only senses), are rejected; senses
// after the first are not consulted.
func convertEntry(e *jmdict.JmdictEntry) (string, bool) {
	surface := ""
	if len(e.Kanji) > 0 {
		surface = e.Kanji[0].Expression
	} else if len(e.Readings) > 0 {
		surface = e.Readings[0].Reading
	}
	if surface == "" {
		return "", false
	}

	reading := ""
	if len(e.Readings) > 0 {
		reading = e.Readings[0].Reading
	}

	if len(e.Sense) == 0 {
		return "", false
	}
	pos, conj, ok := mapJMDictPOS(e.Sense[0].PartsOfSpeech)
	if !ok {
		return "", false
	}

	cost := defaultCost
	if pos == dictionary.Particle || pos == dictionary.Auxiliary {
		cost = 1.0 // closed-class words are near-certain once matched
	}

	fields := []string{
		surface,
		pos.String(),
		fmt.Sprintf("%.1f", cost),
		surface, // lemma: JMDict's first kanji/reading form is already the
		// dictionary (terminal) form for every POS family we accept.
		reading,
		conj.String(),
	}
	return strings.Join(fields, "\t"), true
}

// jmdictVerbConjType maps a JMDict verb POS tag to this package's
// ConjugationType, per https://www.edrdg.org/jmdict/edict_doc.html's
// documented tag list.
var jmdictVerbConjType = map[string]dictionary.ConjugationType{
	"v1":    dictionary.Ichidan,
	"v5k":   dictionary.GodanKa,
	"v5g":   dictionary.GodanGa,
	"v5s":   dictionary.GodanSa,
	"v5t":   dictionary.GodanTa,
	"v5n":   dictionary.GodanNa,
	"v5b":   dictionary.GodanBa,
	"v5m":   dictionary.GodanMa,
	"v5r":   dictionary.GodanRa,
	"v5u":   dictionary.GodanWa,
	"v5u-s": dictionary.GodanWa,
	"vs":    dictionary.Suru,
	"vs-i":  dictionary.Suru,
	"vs-s":  dictionary.Suru,
	"vk":    dictionary.Kuru,
}

// mapJMDictPOS maps a JMDict sense's part-of-speech tag set to our POS and
// (for verbs/adjectives) ConjugationType. Only the first recognized tag is
// consulted, mirroring JMDict's own convention that a sense's POS tags are
// listed with the primary reading first. Returns ok=false for tag families
// with no standalone-morpheme counterpart (expressions, unclassified).
func mapJMDictPOS(tags []string) (dictionary.PartOfSpeech, dictionary.ConjugationType, bool) {
	for _, tag := range tags {
		if conj, ok := jmdictVerbConjType[tag]; ok {
			return dictionary.Verb, conj, true
		}
		switch tag {
		case "adj-i":
			return dictionary.Adjective, dictionary.IAdjective, true
		case "adj-na":
			return dictionary.Adjective, dictionary.NaAdjective, true
		case "n", "n-pr", "n-adv", "n-t", "pn", "num", "ctr":
			return dictionary.Noun, dictionary.None, true
		case "adv", "adv-to":
			return dictionary.Adverb, dictionary.None, true
		case "conj":
			return dictionary.Conjunction, dictionary.None, true
		case "prt":
			return dictionary.Particle, dictionary.None, true
		case "aux-v", "aux", "aux-adj":
			return dictionary.Auxiliary, dictionary.None, true
		case "pref":
			return dictionary.Prefix, dictionary.None, true
		case "suf":
			return dictionary.Suffix, dictionary.None, true
		case "int":
			return dictionary.Other, dictionary.None, true
		}
	}
	return dictionary.Unknown, dictionary.None, false
}
