package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0-dev"

func main() {
	log.SetDefaultsForClientTools()
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var failed *invalidColorsError
		if !errors.As(err, &failed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// run executes the CLI with explicit streams so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "csscolor [flags] [color...]",
		Short: "Decode CSS color values to 8-bit RGBA",
		Long: `csscolor decodes CSS color values and prints their 8-bit RGBA channels.

It accepts hex notation (#rgb, #rgba, #rrggbb, #rrggbbaa), the functions
rgb(), rgba(), hsl(), hsla(), hwb(), hsv(), lab(), lch(), oklab(), oklch()
and color(), and the CSS named colors. Quote arguments that contain spaces
or parentheses. With no arguments, colors are read from stdin, one per line.

Every argument is decoded even when an earlier one fails; the exit status
is 1 if any of them failed.`,
		Example: `  csscolor '#ff8000' 'rgb(255 0 0 / 50%)' rebeccapurple
  csscolor -f hex 'hsl(120deg 100% 25%)'
  csscolor --swatch colors.png red green blue`,
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				log.SetLogLevel(log.Debug)
			}
			s, err := resolveSettings(cmd, f)
			if err != nil {
				return err
			}
			inputs := args
			if len(inputs) == 0 {
				inputs, err = readInputs(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			return decodeColors(cmd.OutOrStdout(), cmd.ErrOrStderr(), s, inputs)
		},
	}
	f.register(cmd)
	cmd.AddCommand(newNamesCmd())
	return cmd
}
