package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"csscolor/color"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the CSS named colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range color.Names() {
				c, _ := color.Named(name)
				fmt.Fprintf(out, "%-22s %s\n", name, c.HexString())
			}
			return nil
		},
	}
}
