// Package inflect implements spec §4.4, the reverse inflection engine:
// given a conjugated surface, it peels auxiliary suffixes from the right
// until a stem remains that matches a known verb ending, producing
// (base form, verb type, confidence) candidates.
//
// Grounded on _examples/original_source/src/grammar/inflection.h (the
// InflectionCandidate shape and the peel-then-match recursive design) and
// src/grammar/connection.cpp (the named connection-id constants, here
// translated into a Go const block rather than a C++ enum).
package inflect

// ConnID is the 16-bit connection-id namespace from spec §3: "a fixed
// namespace (sentence boundaries, verb stem endings ..., auxiliary
// inputs ..., auxiliary outputs ...)." It governs which stem and which
// auxiliary may join: an auxiliary may peel off the tail of a remainder
// only when its RequiredConn matches the ConnID the remaining stem (or a
// further-nested auxiliary) provides.
type ConnID uint16

const (
	// ConnAny is a wildcard required-connection: MatchVerbEndings given
	// ConnAny accepts every ending regardless of ProvidesConn. Engine.Analyze
	// does not pass it; its top level matches ConnVerbBase, ConnVerbRenyokei
	// and ConnVerbMeireikei directly and peels auxiliaries by RequiredConn.
	ConnAny ConnID = iota

	// Verb stem endings (the forms a bare verb/adjective stem provides).
	ConnVerbMizenkei   // negative / passive / causative stem
	ConnVerbRenyokei   // polite / desiderative stem
	ConnVerbOnbinkei   // te/ta stem (post sound-change)
	ConnVerbKatei      // conditional (-eba) stem
	ConnVerbVolitional // volitional (-ou/-you) stem
	ConnVerbBase       // dictionary (terminal/attributive) form itself
	ConnVerbMeireikei  // imperative stem (Suru/Ichidan/Kuru only, spec §4.4)
	ConnIAdjStem       // i-adjective stem (before くない/かった/くて/…)

	// Auxiliary outputs: the connection an already-peeled auxiliary
	// offers to a further auxiliary chained onto its own tail (spec's
	// "auxiliary outputs: base/masu/ta/te").
	ConnAuxOutBase
	ConnAuxOutMasu
	ConnAuxOutTa
	ConnAuxOutTe
)
