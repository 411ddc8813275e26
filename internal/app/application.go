package app

import (
	"bufio"
	"fmt"
	"io"
	"time"

	fsutil "github.com/kk-code-lab/minigrep/internal/fs"
	"github.com/kk-code-lab/minigrep/internal/search"
	"github.com/kk-code-lab/minigrep/internal/textutil"
	"github.com/sirupsen/logrus"
)

const truncatedSuffix = " [...]"

// Application performs one search over one file.
type Application struct {
	cfg      Config
	emphasis search.Emphasis
	out      io.Writer
	log      *logrus.Logger
}

func NewApplication(cfg Config, emphasis search.Emphasis, out io.Writer, logger *logrus.Logger) *Application {
	if logger == nil {
		logger, _ = NewLogger("")
	}
	return &Application{cfg: cfg, emphasis: emphasis, out: out, log: logger}
}

// Run loads the file, searches it once and writes the rendered matches.
func (app *Application) Run() error {
	text, enc, err := fsutil.ReadTextFile(app.cfg.FilePath)
	if err != nil {
		return &IoError{Path: app.cfg.FilePath, Err: err}
	}
	app.log.WithFields(logrus.Fields{
		"path":     app.cfg.FilePath,
		"bytes":    len(text),
		"encoding": enc.String(),
	}).Debug("file loaded")

	mode := search.ModeFor(app.cfg.IgnoreCase)
	started := time.Now()
	matches := search.NewMatcher(app.cfg.Query, mode).Search(text)
	app.log.WithFields(logrus.Fields{
		"lines":    search.CountLines(text),
		"matches":  len(matches),
		"mode":     mode.String(),
		"duration": time.Since(started),
	}).Debug("search finished")

	w := bufio.NewWriter(app.out)
	if app.cfg.CountOnly {
		fmt.Fprintln(w, len(matches))
	} else {
		app.writeMatches(w, matches, search.NewHighlighter(app.cfg.Query, mode, app.emphasis))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (app *Application) writeMatches(w io.Writer, matches []search.Match, h *search.Highlighter) {
	for _, m := range matches {
		line, cut := textutil.TruncateToWidth(m.Line, app.cfg.MaxColumns)
		rendered := h.Highlight(line)
		if cut {
			rendered += truncatedSuffix
		}
		if app.cfg.ShowLineNumbers {
			fmt.Fprintf(w, "%d: %s\n", m.LineNumber, rendered)
		} else {
			fmt.Fprintln(w, rendered)
		}
	}
}
