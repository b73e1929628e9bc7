// Command corpl toggles sections and options that config files expose
// through directive comments.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Icelk/iclu/internal/config"
	"github.com/Icelk/iclu/internal/corpl"
	"github.com/Icelk/iclu/internal/style"
	"github.com/Icelk/iclu/internal/termcolor"
	"github.com/Icelk/iclu/internal/version"
)

var (
	flagEnable  []string
	flagDisable []string
	flagKeep    bool
	flagComment string
	flagClosing string
	flagLong    bool
	flagStyle   string
	flagColor   string
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "corpl [flags] FILE...",
	Short: "Changes exposed values in config files",
	Long: `Changes exposed values in config files.

Files opt in through directive comments:

  # CORPL section <text>   following lines carry <text> when active; the
                           identifier after the last '# ' on a line picks
                           which flag controls it
  # CORPL option <expr>    following lines are commented in or out to
                           match <expr>, e.g. 'tls && !wan'
  # CORPL end              following lines pass through untouched

Tries to find the appropriate comment string (e.g. '#' and '//') in the
first line. A good practice is for the first line to only contain the
comment string.

It is recommended to only use one config file per invocation when
passing -c, since that option overrides all unrecognised comment
strings.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringArrayVarP(&flagEnable, "enable", "e", nil, "identifiers to enable (repeatable, comma separated)")
	f.StringArrayVarP(&flagDisable, "disable", "d", nil, "identifiers to disable (repeatable, comma separated; implies --keep)")
	f.BoolVarP(&flagKeep, "keep", "k", false, "keep the on-disk state of identifiers neither enabled nor disabled")
	f.StringVarP(&flagComment, "comment", "c", "", "override comment marker detection")
	f.StringVar(&flagClosing, "closing-comment", "", "closing marker for languages with block comments (e.g. '-->')")
	f.BoolVarP(&flagLong, "long-comment", "l", false, "lift the four byte cap on detected comment markers")
	f.StringVar(&flagStyle, "style", "", "language whose markers to use (e.g. go, lua); 'auto' derives it per file")
	f.StringVar(&flagColor, "color", "", "colorize diagnostics (auto|always|never)")
	f.StringVar(&flagConfig, "config", "", "config file (default: .iclu.* upward from the cwd, then XDG, then home)")
}

func main() {
	rootCmd.Version = version.String()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	errOut := cmd.ErrOrStderr()
	settings, err := resolveSettings(cmd)
	if err != nil {
		termcolor.Errorf(errOut, "%v", err)
		return err
	}
	mode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		termcolor.Errorf(errOut, "%v", err)
		return err
	}
	termcolor.Apply(termcolor.Resolve(mode, os.Stderr, termcolor.EnvMap(os.Environ())))

	opts := settings.EngineOptions()
	var fixedStyle *style.Style
	autoStyle := false
	if opts.Comment == nil {
		switch name := style.Normalize(settings.Style); {
		case name == "":
		case name == "auto":
			autoStyle = true
		default:
			st, ok := style.Lookup(name)
			if !ok {
				err := fmt.Errorf("unknown style %q (try a language name like go, lua or html)", settings.Style)
				termcolor.Errorf(errOut, "%v", err)
				return err
			}
			fixedStyle = &st
		}
	}

	failed := 0
	for _, path := range args {
		fileOpts := opts
		if fileOpts.Comment == nil {
			if fixedStyle != nil {
				fileOpts.Comment = markerFor(*fixedStyle, settings.ClosingComment)
			} else if autoStyle {
				if st, ok := style.ByPath(path); ok {
					fileOpts.Comment = markerFor(st, settings.ClosingComment)
				}
			}
		}
		res, err := corpl.ProcessFile(path, fileOpts)
		if res != nil {
			printWarnings(errOut, path, res.Warnings)
		}
		if err != nil {
			failed++
			termcolor.Errorf(errOut, "%v: error when processing %s", err, path)
			if errors.Is(err, corpl.ErrNoComment) {
				printMarkerHint(errOut, path)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to process %d of %d files", failed, len(args))
	}
	return nil
}

// resolveSettings layers defaults, the config file, the environment and
// the flags the user actually set, in that order.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	explicit := flagConfig
	if explicit == "" {
		explicit = os.Getenv("ICLU_CONFIG")
	}
	layers := make([]config.Config, 0, 3)
	path, _, err := config.Find(".", explicit, os.Getenv("XDG_CONFIG_HOME"), "")
	if err != nil {
		return config.Settings{}, err
	}
	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return config.Settings{}, err
		}
		layers = append(layers, fileCfg)
	}
	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return config.Settings{}, err
	}
	layers = append(layers, envCfg, flagLayer(cmd))
	return config.Normalize(config.Merge(config.Defaults(), layers...))
}

// flagLayer builds a config layer from the flags that were set on the
// command line. Unset flags stay nil so lower layers shine through.
func flagLayer(cmd *cobra.Command) config.Config {
	var layer config.Config
	f := cmd.Flags()
	if f.Changed("enable") {
		v := config.SplitMulti(flagEnable)
		layer.Corpl.Enable = &v
	}
	if f.Changed("disable") {
		v := config.SplitMulti(flagDisable)
		layer.Corpl.Disable = &v
	}
	if f.Changed("keep") {
		layer.Corpl.Keep = &flagKeep
	}
	if f.Changed("comment") {
		layer.Corpl.Comment = &flagComment
	}
	if f.Changed("closing-comment") {
		layer.Corpl.ClosingComment = &flagClosing
	}
	if f.Changed("long-comment") {
		layer.Corpl.LongComment = &flagLong
	}
	if f.Changed("style") {
		layer.Corpl.Style = &flagStyle
	}
	if f.Changed("color") {
		layer.Color = &flagColor
	}
	return layer
}

// markerFor builds the override marker for a style. An explicit closing
// marker wins over the style's own.
func markerFor(st style.Style, closing string) *corpl.Comment {
	c := closing
	if c == "" {
		c = st.Close
	}
	return corpl.NewComment(st.Open, c)
}
