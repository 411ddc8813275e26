package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/minigrep/internal/search"
)

// ColorMode controls whether emphasis markers are written at all.
type ColorMode int

const (
	ColorAlways ColorMode = iota
	ColorAuto
	ColorNever
)

// ParseColorMode accepts "always", "auto" or "never" (case-insensitive).
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "always":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAlways, fmt.Errorf("invalid color mode %q (want always, auto or never)", value)
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return "always"
	}
}

// Enabled reports whether markers should be emitted for an output stream.
// isTerminal is only consulted in auto mode.
func (m ColorMode) Enabled(isTerminal func() bool) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAuto:
		return isTerminal != nil && isTerminal()
	default:
		return true
	}
}

const (
	sgrBold  = "1"
	sgrReset = "\x1b[0m"
)

// EmphasisFor builds the markers for a highlight color. An empty name keeps
// plain bold. Names are resolved by tcell: the basic palette names ("red",
// "navy", ...), X11 names and "#rrggbb" hex values.
func EmphasisFor(colorName string) (search.Emphasis, error) {
	name := strings.ToLower(strings.TrimSpace(colorName))
	if name == "" {
		return search.DefaultEmphasis, nil
	}

	color := tcell.GetColor(name)
	if color == tcell.ColorDefault || !color.Valid() {
		return search.Emphasis{}, fmt.Errorf("unknown highlight color %q", colorName)
	}

	return search.Emphasis{
		Begin: "\x1b[" + sgrBold + ";" + foregroundSGR(color) + "m",
		End:   sgrReset,
	}, nil
}

// Resolve picks the markers for one run: none when color is disabled,
// otherwise the (possibly colored) bold markers.
func Resolve(mode ColorMode, colorName string, isTerminal func() bool) (search.Emphasis, error) {
	emphasis, err := EmphasisFor(colorName)
	if err != nil {
		return search.Emphasis{}, err
	}
	if !mode.Enabled(isTerminal) {
		return search.Emphasis{}, nil
	}
	return emphasis, nil
}

func foregroundSGR(color tcell.Color) string {
	if color&tcell.ColorIsRGB != 0 {
		r, g, b := color.RGB()
		return fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
	}

	idx := int(color - tcell.ColorValid)
	switch {
	case idx < 8:
		return strconv.Itoa(30 + idx)
	case idx < 16:
		return strconv.Itoa(90 + idx - 8)
	default:
		return "38;5;" + strconv.Itoa(idx)
	}
}
