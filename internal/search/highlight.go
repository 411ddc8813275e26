package search

import "strings"

// Highlighter wraps every occurrence of a query in a line with emphasis
// markers. Occurrences are found leftmost first and never overlap: after a
// hit the scan resumes at the end of that hit.
type Highlighter struct {
	query    string
	folded   string
	mode     CaseMode
	emphasis Emphasis
}

func NewHighlighter(query string, mode CaseMode, emphasis Emphasis) *Highlighter {
	h := &Highlighter{query: query, mode: mode, emphasis: emphasis}
	if mode == Insensitive {
		h.folded = foldString(query)
	}
	return h
}

// Spans returns the byte ranges of the original line that match the query.
// An empty query yields no spans.
func (h *Highlighter) Spans(line string) []MatchSpan {
	if h.query == "" || line == "" {
		return nil
	}
	if h.mode == Insensitive {
		return foldedSpans(line, h.folded)
	}
	return literalSpans(line, h.query)
}

// Highlight renders line with each span wrapped in the emphasis markers.
// Text outside the spans is copied verbatim.
func (h *Highlighter) Highlight(line string) string {
	spans := h.Spans(line)
	if len(spans) == 0 {
		return line
	}
	return renderSpans(line, spans, h.emphasis)
}

// Highlight is a one-shot form of NewHighlighter(query, mode, emphasis).Highlight(line).
func Highlight(line, query string, mode CaseMode, emphasis Emphasis) string {
	return NewHighlighter(query, mode, emphasis).Highlight(line)
}

func literalSpans(line, needle string) []MatchSpan {
	var spans []MatchSpan
	for from := 0; from < len(line); {
		idx := strings.Index(line[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(needle)
		spans = append(spans, MatchSpan{Start: start, End: end})
		from = end
	}
	return spans
}

func foldedSpans(line, foldedNeedle string) []MatchSpan {
	ft := foldWithOffsets(line)
	var spans []MatchSpan
	for from := 0; from < len(ft.text); {
		idx := strings.Index(ft.text[from:], foldedNeedle)
		if idx < 0 {
			break
		}
		foldStart := from + idx
		foldEnd := foldStart + len(foldedNeedle)
		start, end := ft.originalRange(foldStart, foldEnd)
		spans = append(spans, MatchSpan{Start: start, End: end})
		from = ft.resumeAt(foldEnd)
	}
	return spans
}

func renderSpans(line string, spans []MatchSpan, emphasis Emphasis) string {
	var b strings.Builder
	b.Grow(len(line) + len(spans)*(len(emphasis.Begin)+len(emphasis.End)))
	last := 0
	for _, sp := range spans {
		b.WriteString(line[last:sp.Start])
		b.WriteString(emphasis.Begin)
		b.WriteString(line[sp.Start:sp.End])
		b.WriteString(emphasis.End)
		last = sp.End
	}
	b.WriteString(line[last:])
	return b.String()
}
