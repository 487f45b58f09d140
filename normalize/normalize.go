// Package normalize implements the Normalizer collaborator from spec §6:
// NFKC-style compatibility folding plus half-width/full-width kana folding.
//
// Known limitations: normalization operates on the whole input as one
// pass; it does not attempt per-script segmentation, so a mixed
// Japanese/Latin string is folded uniformly. Inputs larger than
// maxInputBytes are rejected rather than silently truncated.
package normalize

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// maxInputBytes bounds the size of a single normalize call. The analyzer
// façade normalizes each Analyze input whole, before pretokenizing, so an
// input over this size yields an empty result there (cmd/suzumeanalyze
// feeds one line at a time); the guard exists to fail fast rather than
// let a pathological input cause unbounded allocation.
const maxInputBytes = 1 << 20

// ErrInvalidUTF8 is returned when the input is not well-formed UTF-8.
// The analyzer façade treats this as spec §7's InvalidUtf8 error kind.
var ErrInvalidUTF8 = errors.New("normalize: invalid utf-8 input")

// ErrTooLarge is returned when the input exceeds maxInputBytes.
var ErrTooLarge = errors.New("normalize: input too large")

// Normalize folds text to NFKC and maps half-width kana/symbols to their
// full-width equivalents, matching spec §6's Normalizer collaborator
// contract: normalize(text) -> string | error.
func Normalize(text string) (string, error) {
	if len(text) > maxInputBytes {
		return "", ErrTooLarge
	}
	if !isValidUTF8(text) {
		return "", ErrInvalidUTF8
	}
	folded, _, err := transform.String(width.Fold, text)
	if err != nil {
		return "", fmt.Errorf("normalize: width fold: %w", err)
	}
	return norm.NFKC.String(folded), nil
}

// NormalizeWord applies the same folding as Normalize but is intended for
// single dictionary keys or short candidate surfaces where the caller has
// already validated UTF-8 upstream; it never returns ErrTooLarge.
func NormalizeWord(word string) string {
	folded, _, err := transform.String(width.Fold, word)
	if err != nil {
		return norm.NFKC.String(word)
	}
	return norm.NFKC.String(folded)
}

func isValidUTF8(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		i += size
	}
	return true
}
