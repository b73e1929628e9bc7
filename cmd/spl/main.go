// Command spl splits standard input by one separator and joins the
// parts with another, streaming all the way.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Icelk/iclu/internal/escape"
	"github.com/Icelk/iclu/internal/splitstream"
	"github.com/Icelk/iclu/internal/termcolor"
	"github.com/Icelk/iclu/internal/version"
)

var flagNull bool

var rootCmd = &cobra.Command{
	Use:   "spl [flags] SPLIT [JOIN]",
	Short: "Split stdin by one separator and join it with another",
	Long: `Splits standard input by the SPLIT string and writes it to standard
output joined by the JOIN string (a newline when omitted).

Like tr, but for whole strings instead of single characters, and
streaming: memory use stays flat however large the input.

Both separators accept backslash escapes such as \n, \t, \0, \xHH and
\u{HHHH}. With -0 the input is split on NUL bytes and the only
positional argument is JOIN, which pairs well with find -print0 and
xargs -0.`,
	Args:          checkArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagNull, "null", "0", false, "split on NUL bytes instead of the SPLIT argument")
}

func main() {
	rootCmd.Version = version.String()
	if err := rootCmd.Execute(); err != nil {
		termcolor.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

// checkArgs validates the positionals, whose meaning shifts under -0:
// the SPLIT slot disappears and only JOIN may be given.
func checkArgs(cmd *cobra.Command, args []string) error {
	if flagNull {
		if len(args) > 1 {
			return fmt.Errorf("accepts at most 1 arg (JOIN) with -0, received %d", len(args))
		}
		return nil
	}
	if len(args) < 1 {
		return errors.New("a SPLIT separator is required unless -0 is set")
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts at most 2 args (SPLIT and JOIN), received %d", len(args))
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	sep := []byte{0}
	join := []byte("\n")
	rest := args
	if !flagNull {
		s, err := escape.Unescape(rest[0])
		if err != nil {
			return fmt.Errorf("invalid SPLIT separator: %w", err)
		}
		if len(s) == 0 {
			return errors.New("the SPLIT separator cannot be empty")
		}
		sep = s
		rest = rest[1:]
	}
	if len(rest) > 0 {
		j, err := escape.Unescape(rest[0])
		if err != nil {
			return fmt.Errorf("invalid JOIN separator: %w", err)
		}
		join = j
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if _, err := splitstream.Copy(out, cmd.InOrStdin(), sep, join); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
