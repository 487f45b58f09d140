package normalize

import "testing"

func FuzzNormalize(f *testing.F) {
	f.Add("こんにちは")
	f.Add("ｺﾝﾆﾁﾊ")
	f.Add("Web開発")
	f.Add("")
	f.Add("   ")
	f.Add("123")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("書いて、食べた。")
	f.Add("ａｂｃ１２３")

	f.Fuzz(func(t *testing.T, s string) {
		result, err := Normalize(s)
		if err != nil {
			return
		}

		// Idempotency: re-normalizing an already-normalized string must
		// not change it further.
		second, err2 := Normalize(result)
		if err2 != nil {
			t.Errorf("re-normalizing normalized output failed: %v", err2)
			return
		}
		if second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}
	})
}

func FuzzNormalizeWord(f *testing.F) {
	f.Add("ｶﾀｶﾅ")
	f.Add("かな")
	f.Add("")
	f.Add("Ａ")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, word string) {
		result := NormalizeWord(word)
		if second := NormalizeWord(result); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", word, result, second)
		}
	})
}
