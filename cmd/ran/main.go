// Command ran generates cryptographically secure random numbers within
// caller-supplied ranges.
package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Icelk/iclu/internal/randrange"
	"github.com/Icelk/iclu/internal/termcolor"
	"github.com/Icelk/iclu/internal/version"
)

var (
	flagSep   string
	flagCount int
)

var rootCmd = &cobra.Command{
	Use:   "ran [flags] RANGE...",
	Short: "Generate cryptographically secure random numbers",
	Long: `Generates cryptographically secure random numbers within the given
ranges. A range is half-open, written 'from..to'; either bound may be
negative and magnitudes up to 128 bits are accepted. Several ranges can
be given, comma or space separated. Each draw is uniform over their
union, so wider ranges are proportionally more likely.

Presets expand to common ranges: ascii, ascii-ext, alphabet (letters),
uppercase, lowercase, numbers, password, and the integer type names i8,
u8, i16, u16, i32, u32, i64 and u64.

  ran 0..6            ten dice rolls, zero based
  ran -n 32 password  thirty-two password code points
  ran u16 -s ' '      ten 16-bit values on one line`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagSep, "separator", "s", "\n", "string between the generated numbers")
	f.IntVarP(&flagCount, "count", "n", 10, "how many numbers to generate")
}

func main() {
	rootCmd.Version = version.String()
	if err := rootCmd.Execute(); err != nil {
		termcolor.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagCount < 0 {
		return fmt.Errorf("the count cannot be negative, got %d", flagCount)
	}
	ranges, err := randrange.ParseAll(args)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	for i := 0; i < flagCount; i++ {
		v, err := randrange.Sample(rand.Reader, ranges)
		if err != nil {
			return err
		}
		if i > 0 {
			out.WriteString(flagSep)
		}
		out.WriteString(v.String())
	}
	out.WriteByte('\n')
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
