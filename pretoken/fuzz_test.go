package pretoken

import "testing"

func FuzzSplit(f *testing.F) {
	f.Add("hello@example.com visit https://example.com/path today")
	f.Add("こんにちは😀世界")
	f.Add("")
	f.Add("   ")
	f.Add("水を飲む")
	f.Add("\x00")
	f.Add("\xff\xfe")
	f.Add("a@b")
	f.Add("http://")

	f.Fuzz(func(t *testing.T, s string) {
		runes := []rune(s)
		pieces := Split(s)

		// Coverage invariant (spec §8): offsets are monotonic and gapless.
		want := 0
		for _, p := range pieces {
			if p.Start != want {
				t.Fatalf("gap/overlap before piece %+v (expected start %d) in %q", p, want, s)
			}
			if p.End < p.Start {
				t.Fatalf("piece %+v has End < Start in %q", p, s)
			}
			if p.End > len(runes) {
				t.Fatalf("piece %+v exceeds input length %d in %q", p, len(runes), s)
			}
			want = p.End
		}
		if want != len(runes) {
			t.Fatalf("pieces cover [0,%d) but input has %d codepoints in %q", want, len(runes), s)
		}
	})
}
