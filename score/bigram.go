package score

import "github.com/suzume-nlp/suzume/dictionary"

// bigramOrder is the 13 POS categories spec §4.6's bigram table is
// indexed over; dictionary.Unknown (not itself a linguistic category) is
// mapped to the Other row/column rather than given its own.
var bigramOrder = [13]dictionary.PartOfSpeech{
	dictionary.Noun, dictionary.Verb, dictionary.Adjective, dictionary.Adverb,
	dictionary.Particle, dictionary.Auxiliary, dictionary.Conjunction,
	dictionary.Determiner, dictionary.Pronoun, dictionary.Prefix,
	dictionary.Suffix, dictionary.Symbol, dictionary.Other,
}

var bigramIndex = func() map[dictionary.PartOfSpeech]int {
	m := make(map[dictionary.PartOfSpeech]int, len(bigramOrder))
	for i, p := range bigramOrder {
		m[p] = i
	}
	return m
}()

func posIndex(p dictionary.PartOfSpeech) int {
	if i, ok := bigramIndex[p]; ok {
		return i
	}
	return bigramIndex[dictionary.Other]
}

// bigramTable is the literal 13x13 connection-cost constant spec §9 calls
// for ("The 13×13 bigram cost table is a literal constant"). Negative
// values are bonuses (linguistically common adjacent pairs, e.g. a noun
// followed by a particle); positive values are penalties (unusual
// adjacencies, e.g. two bare particles in a row).
//
// Row = previous edge's POS, column = next edge's POS, in bigramOrder.
// Grounded on original_source/src/grammar/connection.cpp's
// ConnectionMatrix values, simplified to a dense Go array literal.
var bigramTable = [13][13]float64{
	// Noun
	{0.0, -0.3, 0.2, 0.2, -0.8, 0.1, 0.3, 0.1, 0.3, 0.4, -0.4, 0.4, 0.2},
	// Verb
	{0.2, 0.1, 0.3, 0.1, -0.6, -0.5, 0.2, 0.2, 0.3, 0.4, 0.3, 0.4, 0.2},
	// Adjective
	{-0.2, 0.2, 0.1, 0.2, -0.5, 0.1, 0.2, 0.2, 0.3, 0.3, 0.3, 0.4, 0.2},
	// Adverb
	{0.1, -0.3, -0.2, 0.3, 0.3, 0.2, 0.3, 0.3, 0.2, 0.3, 0.3, 0.4, 0.2},
	// Particle
	{-0.2, -0.2, -0.2, -0.1, 0.6, 0.2, -0.1, -0.1, -0.2, 0.2, 0.3, 0.3, 0.1},
	// Auxiliary
	{0.1, 0.1, 0.2, 0.2, -0.5, -0.2, 0.2, 0.2, 0.3, 0.4, 0.3, 0.4, 0.2},
	// Conjunction
	{0.0, 0.0, 0.1, -0.1, 0.3, 0.2, 0.3, 0.1, 0.1, 0.3, 0.3, 0.3, 0.2},
	// Determiner
	{-0.3, 0.3, 0.1, 0.3, 0.4, 0.3, 0.3, 0.2, -0.2, 0.3, 0.3, 0.4, 0.2},
	// Pronoun
	{0.1, 0.2, 0.2, 0.2, -0.6, 0.2, 0.3, 0.2, 0.3, 0.4, 0.3, 0.4, 0.2},
	// Prefix
	{-0.6, 0.3, -0.2, 0.3, 0.4, 0.3, 0.3, 0.2, 0.3, 0.2, 0.3, 0.4, 0.2},
	// Suffix
	{0.1, 0.2, 0.2, 0.2, -0.3, 0.2, 0.2, 0.2, 0.3, 0.4, 0.3, 0.4, 0.2},
	// Symbol
	{0.1, 0.2, 0.2, 0.2, 0.3, 0.2, 0.2, 0.2, 0.2, 0.3, 0.2, -0.1, 0.2},
	// Other
	{0.2, 0.2, 0.2, 0.2, 0.3, 0.2, 0.2, 0.2, 0.3, 0.3, 0.3, 0.3, 0.1},
}

// BigramCost returns the base connection cost between adjacent POS
// categories before per-option overrides are applied.
func BigramCost(prev, next dictionary.PartOfSpeech) float64 {
	return bigramTable[posIndex(prev)][posIndex(next)]
}

// bigramCost applies opts.BigramOverrides on top of the literal table.
func (o Options) bigramCost(prev, next dictionary.PartOfSpeech) float64 {
	if o.BigramOverrides != nil {
		if v, ok := o.BigramOverrides[BigramKey{Prev: prev, Next: next}]; ok {
			return v
		}
	}
	return BigramCost(prev, next)
}
