// Package pretoken implements the Pretokenizer collaborator from spec §6:
// it splits input text into fixed tokens (URLs, emails, emoji) that bypass
// the analyzer, and the remaining spans that still need lattice analysis.
// Pre-tagged spans are not recognized; such text is returned as part of an
// analyzable span.
//
// Grounded on the teacher's tokenizer/scanner.go rune-by-rune scanning
// style: a single left-to-right pass that, at each position, takes the
// first fixed token that matches (URL, then email, then emoji) before
// falling back to widening an analyzable span.
package pretoken

import "unicode/utf8"

// Kind classifies a fixed token produced by the pretokenizer.
type Kind int

const (
	// Span is not a fixed token; it marks text that still needs analysis.
	Span Kind = iota
	URL
	Email
	Emoji
)

var kindNames = [...]string{
	Span:  "Span",
	URL:   "URL",
	Email: "Email",
	Emoji: "Emoji",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(invalid)"
}

// Piece is one segment of the pretokenizer's output: either a fixed token
// (Kind != Span) or an analyzable span (Kind == Span). Start/End are
// codepoint offsets into the original, already-normalized input, matching
// the offset convention used by Morpheme in the analyze package.
type Piece struct {
	Text  string
	Start int
	End   int
	Kind  Kind
}

// Split scans text and returns the ordered sequence of fixed tokens and
// analyzable spans. Adjacent analyzable runs are coalesced into a single
// Span piece so the caller builds one lattice per contiguous run rather
// than one per codepoint.
func Split(text string) []Piece {
	runes := []rune(text)
	n := len(runes)
	var pieces []Piece
	spanStart := -1

	flushSpan := func(end int) {
		if spanStart >= 0 && end > spanStart {
			pieces = append(pieces, Piece{
				Text:  string(runes[spanStart:end]),
				Start: spanStart,
				End:   end,
				Kind:  Span,
			})
		}
		spanStart = -1
	}

	for i := 0; i < n; {
		if end, ok := matchURL(runes, i); ok {
			flushSpan(i)
			pieces = append(pieces, Piece{Text: string(runes[i:end]), Start: i, End: end, Kind: URL})
			i = end
			continue
		}
		if end, ok := matchEmail(runes, i); ok {
			flushSpan(i)
			pieces = append(pieces, Piece{Text: string(runes[i:end]), Start: i, End: end, Kind: Email})
			i = end
			continue
		}
		if end, ok := matchEmoji(runes, i); ok {
			flushSpan(i)
			pieces = append(pieces, Piece{Text: string(runes[i:end]), Start: i, End: end, Kind: Emoji})
			i = end
			continue
		}
		if spanStart < 0 {
			spanStart = i
		}
		i++
	}
	flushSpan(n)
	return pieces
}

// matchURL recognizes a leading http:// or https:// scheme and greedily
// consumes URL-safe characters, mirroring the teacher's scanURL which
// stops at the first whitespace or quote-like delimiter.
func matchURL(runes []rune, start int) (int, bool) {
	schemes := []string{"https://", "http://"}
	for _, scheme := range schemes {
		if hasPrefixRunes(runes, start, scheme) {
			end := start + utf8.RuneCountInString(scheme)
			for end < len(runes) && isURLRune(runes[end]) {
				end++
			}
			if end > start+utf8.RuneCountInString(scheme) {
				return end, true
			}
		}
	}
	return 0, false
}

func isURLRune(r rune) bool {
	switch {
	case r <= 0x20:
		return false
	case r == '"' || r == '\'' || r == '<' || r == '>' || r == '「' || r == '」' || r == '『' || r == '』':
		return false
	default:
		return true
	}
}

// matchEmail recognizes local@domain.tld where local and domain use a
// conservative character set, mirroring the teacher's scanEmail.
func matchEmail(runes []rune, start int) (int, bool) {
	i := start
	localStart := i
	for i < len(runes) && isEmailLocalRune(runes[i]) {
		i++
	}
	if i == localStart || i >= len(runes) || runes[i] != '@' {
		return 0, false
	}
	i++
	domainStart := i
	sawDot := false
	for i < len(runes) && (isEmailDomainRune(runes[i]) || runes[i] == '.') {
		if runes[i] == '.' {
			sawDot = true
		}
		i++
	}
	if i == domainStart || !sawDot {
		return 0, false
	}
	// trailing dot is not part of the domain
	for i > domainStart && runes[i-1] == '.' {
		i--
	}
	return i, true
}

func isEmailLocalRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r == '.' || r == '_' || r == '+' || r == '-'
}

func isEmailDomainRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

// matchEmoji recognizes a single codepoint in one of the emoji
// presentation blocks (spec §6), optionally followed by the variation
// selector U+FE0F.
func matchEmoji(runes []rune, start int) (int, bool) {
	r := runes[start]
	if !isEmojiRune(r) {
		return 0, false
	}
	end := start + 1
	if end < len(runes) && runes[end] == 0xFE0F {
		end++
	}
	return end, true
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x1F300 && r <= 0x1F5FF:
		return true
	case r >= 0x1F600 && r <= 0x1F64F:
		return true
	case r >= 0x1F680 && r <= 0x1F6FF:
		return true
	default:
		return false
	}
}

func hasPrefixRunes(runes []rune, start int, prefix string) bool {
	prefixRunes := []rune(prefix)
	if start+len(prefixRunes) > len(runes) {
		return false
	}
	for i, pr := range prefixRunes {
		if runes[start+i] != pr {
			return false
		}
	}
	return true
}
