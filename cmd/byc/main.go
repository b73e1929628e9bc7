// Command byc converts numbers from standard input to the characters
// they encode.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Icelk/iclu/internal/baseconv"
	"github.com/Icelk/iclu/internal/termcolor"
	"github.com/Icelk/iclu/internal/version"
)

var (
	flagBinary  bool
	flagHex     bool
	flagDecimal bool
	flagRadix   int
	flagSep     string
)

var rootCmd = &cobra.Command{
	Use:   "byc [flags]",
	Short: "Convert numbers to their character representation",
	Long: `Converts numbers read from standard input to the characters they
encode and writes the result to standard output.

Numbers are separated by the -s string (a newline when omitted);
whitespace around each number is ignored and empty entries are skipped.
The base defaults to decimal and can be switched with -b, -h or -d, or
set to anything from 2 through 36 with -r.

  printf '72 105 33' | byc -s ' '          Hi!
  printf '48,65,6c,6c,6f' | byc -h -s ,    Hello`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagBinary, "binary", "b", false, "parse the input as binary")
	f.BoolVarP(&flagHex, "hex", "h", false, "parse the input as hexadecimal")
	f.BoolVarP(&flagDecimal, "decimal", "d", false, "parse the input as decimal (the default)")
	f.IntVarP(&flagRadix, "radix", "r", 10, "parse the input in this base, 2 through 36")
	f.StringVarP(&flagSep, "separator", "s", "\n", "string between the input numbers")
	// -h belongs to --hex here; --help stays available under its long name.
	f.Bool("help", false, "help for byc")
	rootCmd.MarkFlagsMutuallyExclusive("binary", "hex", "decimal", "radix")
}

func main() {
	rootCmd.Version = version.String()
	if err := rootCmd.Execute(); err != nil {
		termcolor.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	base := 10
	switch {
	case flagBinary:
		base = 2
	case flagHex:
		base = 16
	case flagDecimal:
		base = 10
	case cmd.Flags().Changed("radix"):
		base = flagRadix
	}

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	s, err := baseconv.Convert(input, flagSep, base)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
