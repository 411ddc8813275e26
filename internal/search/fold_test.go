package search

import "testing"

func TestFoldStringMatchesFoldedText(t *testing.T) {
	inputs := []string{"", "plain", "MiXeD", "\u212Aelvin", "\u0130stanbul", "x\u023Ax", "bad\xffbyte", "ÉCOLE"}
	for _, in := range inputs {
		if got, want := foldWithOffsets(in).text, foldString(in); got != want {
			t.Fatalf("foldWithOffsets(%q).text = %q, foldString = %q", in, got, want)
		}
	}
}

func TestFoldedTextOffsets(t *testing.T) {
	ft := foldWithOffsets("a\u212Ab")
	if ft.aligned {
		t.Fatalf("expected non-ASCII input to carry an offset table")
	}
	if ft.text != "akb" {
		t.Fatalf("folded text = %q, want akb", ft.text)
	}
	if start, end := ft.originalRange(1, 2); start != 1 || end != 4 {
		t.Fatalf("originalRange(1,2) = (%d,%d), want (1,4)", start, end)
	}
	if start, end := ft.originalRange(2, 3); start != 4 || end != 5 {
		t.Fatalf("originalRange(2,3) = (%d,%d), want (4,5)", start, end)
	}
}

func TestFoldedTextResumeSkipsPartialRune(t *testing.T) {
	// U+023A lowercases to the three-byte U+2C65.
	ft := foldWithOffsets("\u023Az")
	if got := ft.resumeAt(1); got != 3 {
		t.Fatalf("resumeAt(1) = %d, want 3", got)
	}
	if got := ft.resumeAt(3); got != 3 {
		t.Fatalf("resumeAt(3) = %d, want 3", got)
	}
}

func TestFoldStringASCIIFastPath(t *testing.T) {
	s := "already lower"
	if got := foldString(s); got != s {
		t.Fatalf("foldString(%q) = %q", s, got)
	}
	if got := foldString("ABC"); got != "abc" {
		t.Fatalf("foldString(ABC) = %q", got)
	}
}
