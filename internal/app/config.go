package app

import (
	"os"
	"strconv"

	"github.com/kk-code-lab/minigrep/internal/render"
)

const (
	ignoreCaseEnv = "IGNORE_CASE"
	debugLogEnv   = "MINIGREP_DEBUG_LOG"
)

// Config is everything one search run needs, built from the command line
// on top of the Env defaults.
type Config struct {
	Query           string
	FilePath        string
	IgnoreCase      bool
	ShowLineNumbers bool
	CountOnly       bool
	MaxColumns      int
	Color           render.ColorMode
	HighlightColor  string
}

// Env carries the process environment the command depends on. It is read
// once by the caller and passed in explicitly.
type Env struct {
	// IgnoreCase is the case-insensitivity default before flags apply.
	IgnoreCase bool
	// DebugLog is the debug log file path; empty disables debug logging.
	DebugLog string
}

// EnvFromOS reads Env from the process environment. IGNORE_CASE counts as set
// whenever it is present, even with an empty value.
func EnvFromOS() Env {
	_, ignoreCase := os.LookupEnv(ignoreCaseEnv)
	return Env{
		IgnoreCase: ignoreCase,
		DebugLog:   os.Getenv(debugLogEnv),
	}
}

// caseFlag backs both -i and -I. Each occurrence writes its own value into
// the shared target, so whichever appears last on the command line wins.
type caseFlag struct {
	target *bool
	value  bool
}

func (f *caseFlag) String() string {
	if f.target == nil {
		return "false"
	}
	return strconv.FormatBool(*f.target == f.value)
}

func (f *caseFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.value
	} else {
		*f.target = !f.value
	}
	return nil
}

func (f *caseFlag) Type() string { return "bool" }
