package search

import (
	"reflect"
	"testing"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

func TestSearchCaseSensitive(t *testing.T) {
	matches := Search("ick", poem, Sensitive)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].Line != "Pick three." || matches[0].LineNumber != 3 {
		t.Fatalf("unexpected match %+v", matches[0])
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	matches := Search("rUst", poem, Insensitive)
	if got := Lines(matches); !reflect.DeepEqual(got, []string{"Rust:"}) {
		t.Fatalf("Lines = %q, want [\"Rust:\"]", got)
	}
	if matches[0].LineNumber != 1 {
		t.Fatalf("expected line 1, got %d", matches[0].LineNumber)
	}
}

func TestSearchLinesHelpers(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	if got := SearchLines("ick", contents); !reflect.DeepEqual(got, []string{"Pick three."}) {
		t.Fatalf("SearchLines = %q", got)
	}
	want := []string{"Rust:", "Trust me."}
	if got := SearchLinesInsensitive("rUst", contents); !reflect.DeepEqual(got, want) {
		t.Fatalf("SearchLinesInsensitive = %q, want %q", got, want)
	}
}

func TestSearchEmptyText(t *testing.T) {
	for _, query := range []string{"", "a", "Rust"} {
		for _, mode := range []CaseMode{Sensitive, Insensitive} {
			if got := Search(query, "", mode); len(got) != 0 {
				t.Fatalf("Search(%q, \"\", %v) = %+v, want none", query, mode, got)
			}
		}
	}
}

func TestSearchEmptyQueryMatchesEveryLine(t *testing.T) {
	matches := Search("", "a\n\nb\n", Sensitive)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}
	for i, m := range matches {
		if m.LineNumber != i+1 {
			t.Fatalf("match %d has line number %d", i, m.LineNumber)
		}
	}
	if matches[1].Line != "" {
		t.Fatalf("expected empty second line, got %q", matches[1].Line)
	}
}

func TestSearchLineSplitting(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []string
		numbers []int
	}{
		{"trailing newline adds no line", "x1\nx2\n", []string{"x1", "x2"}, []int{1, 2}},
		{"unterminated last line", "x1\ny\nx3", []string{"x1", "x3"}, []int{1, 3}},
		{"crlf separators", "x1\r\ny\r\nx3\r\n", []string{"x1", "x3"}, []int{1, 3}},
		{"lone carriage return kept", "x1\r", []string{"x1\r"}, []int{1}},
		{"blank lines still counted", "\n\nx", []string{"x"}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Search("x", tt.text, Sensitive)
			if got := Lines(matches); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Lines = %q, want %q", got, tt.want)
			}
			for i, m := range matches {
				if m.LineNumber != tt.numbers[i] {
					t.Fatalf("match %d line number = %d, want %d", i, m.LineNumber, tt.numbers[i])
				}
				if tt.text[m.Start:m.End] != m.Line {
					t.Fatalf("range [%d,%d) = %q does not match line %q", m.Start, m.End, tt.text[m.Start:m.End], m.Line)
				}
			}
		})
	}
}

func TestSearchOneMatchPerLine(t *testing.T) {
	matches := Search("ab", "abababab\nab", Sensitive)
	if len(matches) != 2 {
		t.Fatalf("expected one match per line, got %d", len(matches))
	}
}

func TestSearchInsensitiveUnicode(t *testing.T) {
	text := "ÉCOLE normale\nécole\nKELVIN \u212A\nnothing"
	if got := Lines(Search("éCOLE", text, Insensitive)); !reflect.DeepEqual(got, []string{"ÉCOLE normale", "école"}) {
		t.Fatalf("unexpected accented matches %q", got)
	}
	if got := Lines(Search("in k", text, Insensitive)); !reflect.DeepEqual(got, []string{"KELVIN \u212A"}) {
		t.Fatalf("expected kelvin sign to fold to k, got %q", got)
	}
}

func TestMatcherFoldsQueryOnce(t *testing.T) {
	m := NewMatcher("HeLLo", Insensitive)
	if m.folded != "hello" {
		t.Fatalf("folded query = %q, want hello", m.folded)
	}
	if !m.Matches("say HELLO") || m.Matches("help") {
		t.Fatalf("unexpected Matches results")
	}
	if NewMatcher("HeLLo", Sensitive).Matches("say hello") {
		t.Fatalf("sensitive matcher should not fold")
	}
}

func TestCountLines(t *testing.T) {
	tests := map[string]int{
		"":         0,
		"a":        1,
		"a\n":      1,
		"a\nb":     2,
		"\n\n":     2,
		poem:       4,
		"a\r\nb\r": 2,
	}
	for text, want := range tests {
		if got := CountLines(text); got != want {
			t.Fatalf("CountLines(%q) = %d, want %d", text, got, want)
		}
		if got := len(Search("", text, Sensitive)); got != want {
			t.Fatalf("empty-query Search over %q visited %d lines, want %d", text, got, want)
		}
	}
}

func TestModeFor(t *testing.T) {
	if ModeFor(true) != Insensitive || ModeFor(false) != Sensitive {
		t.Fatalf("ModeFor mapping is wrong")
	}
	if Insensitive.String() != "insensitive" || Sensitive.String() != "sensitive" {
		t.Fatalf("unexpected CaseMode strings")
	}
}
