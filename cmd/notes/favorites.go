package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.nb.FavoriteNotes(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd, notes, func(w io.Writer) { writeNotes(w, notes) })
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [id]",
			Short: "Add a note to favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.nb.AddFavorite(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added to favorites: %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove [id]",
			Short: "Remove a note from favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.nb.RemoveFavorite(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed from favorites: %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
