package charclass

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{"kanji", '食', Kanji},
		{"kanji radical", '⺼', Kanji},
		{"hiragana", 'べ', Hiragana},
		{"katakana", 'ベ', Katakana},
		{"halfwidth katakana", 0xFF71, Katakana},
		{"ascii alpha", 'W', Alphabet},
		{"fullwidth alpha", 0xFF37, Alphabet},
		{"ascii digit", '3', Digit},
		{"fullwidth digit", 0xFF13, Digit},
		{"emoji", 0x1F600, Emoji},
		{"symbol", '@', Symbol},
		{"replacement char", 0xFFFD, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.r); got != tt.want {
				t.Errorf("Of(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	s := string([]byte{0xFF, 0xFE, 'a'})
	runes := Decode(s)
	if len(runes) != 3 {
		t.Fatalf("len(runes) = %d, want 3", len(runes))
	}
	if runes[0] != 0xFFFD || runes[1] != 0xFFFD {
		t.Errorf("invalid bytes did not decode to U+FFFD: %v", runes[:2])
	}
	if runes[2] != 'a' {
		t.Errorf("runes[2] = %q, want 'a'", runes[2])
	}
}

func TestClassString(t *testing.T) {
	if Kanji.String() != "Kanji" {
		t.Errorf("Kanji.String() = %q", Kanji.String())
	}
	if Class(99).String() == "" {
		t.Errorf("invalid class should still stringify")
	}
}
