package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kk-code-lab/minigrep/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const usageText = `Usage: minigrep [OPTIONS] <query> <file_path>

OPTIONS:
    -i, --ignore-case           Search without case sensitivity (default when IGNORE_CASE is set).
    -I, --no-ignore-case        Force case-sensitive search even if IGNORE_CASE is set.
    -n, --line-number           Prefix matches with their line number.
    -c, --count                 Print only the number of matching lines.
    -M, --max-columns N         Cut matching lines wider than N columns (0 = no limit).
        --color WHEN            Highlight matches: always, auto or never (default always).
        --highlight-color NAME  Color for highlighted matches (e.g. red, navy, #ff8000).
    -h, --help                  Print this help and exit.

Use -- to stop option parsing, e.g. minigrep -- -n notes.txt
`

// NewCommand builds the minigrep command. Once the command line validates,
// the parsed Config is handed to run.
func NewCommand(env Env, stdout io.Writer, run func(Config) error) *cobra.Command {
	cfg := Config{IgnoreCase: env.IgnoreCase}
	var colorMode string

	cmd := &cobra.Command{
		Use:           "minigrep [OPTIONS] <query> <file_path>",
		Short:         "Print the lines of a file that contain a query",
		Args:          positionalArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg.Query = args[0]
			cfg.FilePath = args[1]

			mode, err := render.ParseColorMode(colorMode)
			if err != nil {
				return &ConfigError{Message: err.Error()}
			}
			cfg.Color = mode
			if cfg.MaxColumns < 0 {
				return configErrorf("invalid --max-columns %d: must not be negative", cfg.MaxColumns)
			}
			if _, err := render.EmphasisFor(cfg.HighlightColor); err != nil {
				return &ConfigError{Message: err.Error()}
			}
			return run(cfg)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(c.OutOrStdout(), usageText)
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		msg := err.Error()
		if strings.HasPrefix(msg, "unknown ") {
			msg += " (put -- before a query that starts with '-')"
		}
		return &ConfigError{Message: msg}
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.VarPF(&caseFlag{target: &cfg.IgnoreCase, value: true}, "ignore-case", "i",
		"search without case sensitivity").NoOptDefVal = "true"
	flags.VarPF(&caseFlag{target: &cfg.IgnoreCase, value: false}, "no-ignore-case", "I",
		"force case-sensitive search").NoOptDefVal = "true"
	flags.BoolVarP(&cfg.ShowLineNumbers, "line-number", "n", false, "prefix matches with their line number")
	flags.BoolVar(&cfg.ShowLineNumbers, "line-numbers", false, "alias of --line-number")
	_ = flags.MarkHidden("line-numbers")
	flags.BoolVarP(&cfg.CountOnly, "count", "c", false, "print only the number of matching lines")
	flags.IntVarP(&cfg.MaxColumns, "max-columns", "M", 0, "cut matching lines wider than N columns")
	flags.StringVar(&colorMode, "color", render.ColorAlways.String(), "highlight matches: always, auto or never")
	flags.StringVar(&cfg.HighlightColor, "highlight-color", "", "color for highlighted matches")

	return cmd
}

func positionalArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return configErrorf("Missing search query.")
	case len(args) == 1:
		return configErrorf("Missing file path.")
	case len(args) > 2:
		return configErrorf("Unexpected extra argument '%s'.", args[2])
	}
	return nil
}

// runCommand parses args and runs cmd directly. cobra's Execute is not used
// because it hands a leading "__complete" argument to its completion command,
// and every string is a valid query.
func runCommand(cmd *cobra.Command, args []string) error {
	cmd.InitDefaultHelpFlag()
	if err := cmd.ParseFlags(args); err != nil {
		return cmd.FlagErrorFunc()(cmd, err)
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		cmd.HelpFunc()(cmd, args)
		return nil
	}
	positionals := cmd.Flags().Args()
	if err := cmd.ValidateArgs(positionals); err != nil {
		return err
	}
	return cmd.RunE(cmd, positionals)
}

// Main runs minigrep with args (without the program name) and returns the
// process exit code.
func Main(args []string, env Env, stdout, stderr io.Writer) int {
	logger, closeLog := NewLogger(env.DebugLog)
	defer func() {
		_ = closeLog()
	}()

	cmd := NewCommand(env, stdout, func(cfg Config) error {
		logger.WithFields(logrus.Fields{
			"query":        cfg.Query,
			"path":         cfg.FilePath,
			"ignore_case":  cfg.IgnoreCase,
			"line_numbers": cfg.ShowLineNumbers,
			"color":        cfg.Color.String(),
		}).Debug("config built")

		emphasis, err := render.Resolve(cfg.Color, cfg.HighlightColor, func() bool {
			return isTerminal(stdout)
		})
		if err != nil {
			return err
		}
		return NewApplication(cfg, emphasis, stdout, logger).Run()
	})

	err := runCommand(cmd, args)
	if err != nil {
		logger.WithError(err).Debug("run failed")
	}
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stderr, "minigrep: %s\n\n%s", cfgErr.Message, usageText)
		return exitUsage
	}

	fmt.Fprintf(stderr, "minigrep: %v\n", err)
	return exitRuntimeFail
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
