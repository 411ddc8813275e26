package search

// CaseMode selects how query and line text are compared.
type CaseMode int

const (
	Sensitive CaseMode = iota
	Insensitive
)

func (m CaseMode) String() string {
	if m == Insensitive {
		return "insensitive"
	}
	return "sensitive"
}

// ModeFor maps an ignore-case toggle to a CaseMode.
func ModeFor(ignoreCase bool) CaseMode {
	if ignoreCase {
		return Insensitive
	}
	return Sensitive
}

// Match is a line of the searched text that contains the query.
// Start and End are byte offsets of the line within the text; Line is
// text[Start:End] and shares its backing memory.
type Match struct {
	LineNumber int
	Start      int
	End        int
	Line       string
}

// MatchSpan is the half-open byte range [Start, End) of one query occurrence
// within a line.
type MatchSpan struct {
	Start int
	End   int
}

// Emphasis holds the literal markers written around every highlighted span.
type Emphasis struct {
	Begin string
	End   string
}

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// DefaultEmphasis renders spans as terminal bold text.
var DefaultEmphasis = Emphasis{Begin: ansiBold, End: ansiReset}
