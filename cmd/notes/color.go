package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newColorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Show or change the icon colour",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current icon colour",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				color, err := a.nb.IconColor(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(cmd, map[string]string{"color": color}, func(w io.Writer) {
					fmt.Fprintln(w, color)
				})
			},
		},
		&cobra.Command{
			Use:   "set [#RRGGBB]",
			Short: "Change the icon colour",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				color, err := a.nb.SetIconColor(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(cmd, map[string]string{"color": color}, func(w io.Writer) {
					fmt.Fprintf(w, "Icon colour set to %s\n", color)
				})
			},
		},
		&cobra.Command{
			Use:   "palette",
			Short: "List the selectable colours",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				palette := a.nb.Palette()
				return a.render(cmd, palette, func(w io.Writer) {
					for _, c := range palette {
						fmt.Fprintln(w, c)
					}
				})
			},
		},
	)
	return cmd
}
