package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// foldString lowercases s rune by rune with unicode.ToLower. Bytes that are
// not valid UTF-8 are copied unchanged so that they still compare equal to
// themselves.
func foldString(s string) string {
	if isFoldedASCII(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		i += size
	}
	return b.String()
}

func isFoldedASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// foldedText is the folded form of a line plus, for every folded byte, the
// byte range of the original rune that produced it. Lowercasing can change
// the encoded length of a rune (U+212A KELVIN SIGN becomes ASCII 'k'), so
// folded offsets cannot be used on the original line directly.
type foldedText struct {
	text    string
	aligned bool
	starts  []int
	ends    []int
}

func foldWithOffsets(s string) foldedText {
	if isASCII(s) {
		return foldedText{text: foldString(s), aligned: true}
	}

	var b strings.Builder
	b.Grow(len(s))
	starts := make([]int, 0, len(s))
	ends := make([]int, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(s[i])
			starts = append(starts, i)
			ends = append(ends, i+1)
			i++
			continue
		}
		n, _ := b.WriteRune(unicode.ToLower(r))
		for k := 0; k < n; k++ {
			starts = append(starts, i)
			ends = append(ends, i+size)
		}
		i += size
	}
	return foldedText{text: b.String(), starts: starts, ends: ends}
}

// originalRange maps the non-empty folded range [start, end) to the smallest
// range of whole original runes covering it.
func (f foldedText) originalRange(start, end int) (int, int) {
	if f.aligned {
		return start, end
	}
	return f.starts[start], f.ends[end-1]
}

// resumeAt returns the first folded offset at or after end that begins a new
// original rune, so consecutive spans never share an original rune.
func (f foldedText) resumeAt(end int) int {
	if f.aligned {
		return end
	}
	for end > 0 && end < len(f.text) && f.starts[end] == f.starts[end-1] {
		end++
	}
	return end
}
