package search

import "strings"

// Matcher reports which lines of a text contain a query. The folded query is
// computed once when the Matcher is built and reused for every line.
type Matcher struct {
	query  string
	folded string
	mode   CaseMode
}

func NewMatcher(query string, mode CaseMode) *Matcher {
	m := &Matcher{query: query, mode: mode}
	if mode == Insensitive {
		m.folded = foldString(query)
	}
	return m
}

// Matches reports whether line contains the query under the matcher's mode.
// An empty query is contained in every line.
func (m *Matcher) Matches(line string) bool {
	if m.query == "" {
		return true
	}
	if m.mode == Insensitive {
		return strings.Contains(foldString(line), m.folded)
	}
	return strings.Contains(line, m.query)
}

// Search scans text once and returns one Match per matching line in
// ascending line order. Lines are separated by '\n'; a '\r' directly before
// the separator is dropped and a final unterminated line is still counted.
func (m *Matcher) Search(text string) []Match {
	var matches []Match
	lineNumber := 0
	for pos := 0; pos < len(text); {
		start, end, next := nextLine(text, pos)
		lineNumber++
		if line := text[start:end]; m.Matches(line) {
			matches = append(matches, Match{
				LineNumber: lineNumber,
				Start:      start,
				End:        end,
				Line:       line,
			})
		}
		pos = next
	}
	return matches
}

func nextLine(text string, pos int) (start, end, next int) {
	idx := strings.IndexByte(text[pos:], '\n')
	if idx < 0 {
		return pos, len(text), len(text)
	}
	end = pos + idx
	next = end + 1
	if end > pos && text[end-1] == '\r' {
		end--
	}
	return pos, end, next
}

// CountLines returns the number of lines Search would visit in text.
func CountLines(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// Search is a one-shot form of NewMatcher(query, mode).Search(text).
func Search(query, text string, mode CaseMode) []Match {
	return NewMatcher(query, mode).Search(text)
}

// Lines returns the line text of each match, in order.
func Lines(matches []Match) []string {
	if len(matches) == 0 {
		return nil
	}
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = m.Line
	}
	return lines
}

func SearchLines(query, text string) []string {
	return Lines(Search(query, text, Sensitive))
}

func SearchLinesInsensitive(query, text string) []string {
	return Lines(Search(query, text, Insensitive))
}
