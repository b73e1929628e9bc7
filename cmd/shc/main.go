// Command shc converts shell scripts to Windows batch files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Icelk/iclu/internal/prompt"
	"github.com/Icelk/iclu/internal/sh2bat"
	"github.com/Icelk/iclu/internal/termcolor"
	"github.com/Icelk/iclu/internal/version"
)

var (
	flagBatch bool
	flagForce bool
)

var rootCmd = &cobra.Command{
	Use:   "shc [flags] FILE...",
	Short: "Convert shell scripts to batch files",
	Long: `Converts shell scripts to Windows batch files, writing each FILE's
translation next to it with a .bat extension.

The conversion is line based and intentionally small: comments, echo
toggles, variable references and a handful of common commands (ls, cp,
mv, rm, cat, grep, pwd, clear) are mapped; everything else passes
through untouched. Only conversion to batch is supported, which the
mandatory -b flag spells out.

Existing targets prompt before being overwritten unless -f is given.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagBatch, "batch", "b", false, "convert to a batch file (the only supported target)")
	f.BoolVarP(&flagForce, "force", "f", false, "overwrite existing target files without asking")
	_ = rootCmd.MarkFlagRequired("batch")
}

func main() {
	rootCmd.Version = version.String()
	if err := rootCmd.Execute(); err != nil {
		termcolor.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := convertFile(cmd.InOrStdin(), cmd.OutOrStdout(), path); err != nil {
			failed++
			termcolor.Errorf(cmd.ErrOrStderr(), "%v: error when processing %s", err, path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to convert %d of %d files", failed, len(args))
	}
	return nil
}

// convertFile translates one script and writes it next to the source
// with a .bat extension. A declined overwrite skips the file silently.
func convertFile(in io.Reader, out io.Writer, path string) error {
	target := batchPath(path)
	if !flagForce {
		if _, err := os.Stat(target); err == nil {
			ok, err := prompt.Confirm(in, out, fmt.Sprintf("Do you want to overwrite %s?", target), true)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script (check the input path): %w", err)
	}
	if !utf8.Valid(src) {
		return errors.New("the script is not valid UTF-8")
	}
	if err := os.WriteFile(target, []byte(sh2bat.Convert(string(src))), 0o644); err != nil {
		return fmt.Errorf("failed to write batch file: %w", err)
	}
	return nil
}

// batchPath swaps path's extension for .bat. Dotfiles have no
// extension to swap, so .bat is appended instead.
func batchPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return path + ".bat"
	}
	return path[:len(path)-len(ext)] + ".bat"
}
