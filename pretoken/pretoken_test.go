package pretoken

import "testing"

func TestSplitURL(t *testing.T) {
	pieces := Split("見て https://example.com/path を見た")
	var foundURL bool
	for _, p := range pieces {
		if p.Kind == URL {
			foundURL = true
			if p.Text != "https://example.com/path" {
				t.Errorf("URL piece text = %q", p.Text)
			}
		}
	}
	if !foundURL {
		t.Fatalf("no URL piece found in %+v", pieces)
	}
}

func TestSplitEmail(t *testing.T) {
	pieces := Split("connect test@example.com now")
	var found bool
	for _, p := range pieces {
		if p.Kind == Email && p.Text == "test@example.com" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no email piece found in %+v", pieces)
	}
}

func TestSplitEmoji(t *testing.T) {
	pieces := Split("嬉しい😀です")
	var found bool
	for _, p := range pieces {
		if p.Kind == Emoji {
			found = true
		}
	}
	if !found {
		t.Fatalf("no emoji piece found in %+v", pieces)
	}
}

func TestSplitPlainTextIsSingleSpan(t *testing.T) {
	pieces := Split("お水を飲む")
	if len(pieces) != 1 || pieces[0].Kind != Span {
		t.Fatalf("pieces = %+v, want single Span piece", pieces)
	}
	if pieces[0].Start != 0 || pieces[0].End != 5 {
		t.Errorf("span offsets = [%d,%d), want [0,5)", pieces[0].Start, pieces[0].End)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	if pieces := Split(""); len(pieces) != 0 {
		t.Errorf("Split(\"\") = %+v, want empty", pieces)
	}
}
