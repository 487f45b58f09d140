package inflect

import "github.com/suzume-nlp/suzume/dictionary"

// VerbType is the closed enumeration the inflection engine produces
// (spec §3). Per spec §9's documented Open Question, this enum is
// deliberately NOT isomorphic to dictionary.ConjugationType: it has no
// NaAdjective counterpart, since na-adjectives do not conjugate and so
// never arise from reverse inflection. Reimplementations should retain
// this asymmetry rather than "completing" the enum.
type VerbType int

const (
	VerbNone VerbType = iota
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
)

var verbTypeNames = [...]string{
	VerbNone:   "VerbNone",
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
}

func (v VerbType) String() string {
	if v >= 0 && int(v) < len(verbTypeNames) {
		return verbTypeNames[v]
	}
	return "VerbType(invalid)"
}

// verbTypeToConjType maps a VerbType to its dictionary.ConjugationType
// counterpart. Every VerbType has exactly one counterpart; the converse
// (conjTypeToVerbType) is partial because ConjugationType has the extra
// NaAdjective value.
var verbTypeToConjType = map[VerbType]dictionary.ConjugationType{
	Ichidan:    dictionary.Ichidan,
	GodanKa:    dictionary.GodanKa,
	GodanGa:    dictionary.GodanGa,
	GodanSa:    dictionary.GodanSa,
	GodanTa:    dictionary.GodanTa,
	GodanNa:    dictionary.GodanNa,
	GodanBa:    dictionary.GodanBa,
	GodanMa:    dictionary.GodanMa,
	GodanRa:    dictionary.GodanRa,
	GodanWa:    dictionary.GodanWa,
	Suru:       dictionary.Suru,
	Kuru:       dictionary.Kuru,
	IAdjective: dictionary.IAdjective,
}

var conjTypeToVerbType = func() map[dictionary.ConjugationType]VerbType {
	m := make(map[dictionary.ConjugationType]VerbType, len(verbTypeToConjType))
	for vt, ct := range verbTypeToConjType {
		m[ct] = vt
	}
	return m
}()

// ConjType returns v's dictionary.ConjugationType counterpart.
func (v VerbType) ConjType() dictionary.ConjugationType {
	return verbTypeToConjType[v]
}

// VerbTypeFromConjType returns ct's VerbType counterpart and true, or
// (VerbNone, false) when ct has no counterpart (dictionary.NaAdjective
// and dictionary.None).
func VerbTypeFromConjType(ct dictionary.ConjugationType) (VerbType, bool) {
	vt, ok := conjTypeToVerbType[ct]
	return vt, ok
}
