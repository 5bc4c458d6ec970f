package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newTrashCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "Move notes to the trash and manage it",
	}

	var olderThan time.Duration
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Permanently delete trashed notes older than --older-than",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			purged, err := a.nb.PurgeTrash(cmd.Context(), olderThan)
			if err != nil {
				return err
			}
			return a.render(cmd, map[string]int{"purged": purged}, func(w io.Writer) {
				fmt.Fprintf(w, "Purged %d notes deleted more than %s ago\n", purged, formatAge(olderThan))
			})
		},
	}
	purge.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Minimum time spent in the trash")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "move [id]",
			Short: "Move a note to the trash",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				trashed, err := a.nb.MoveToTrash(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(cmd, trashed, func(w io.Writer) {
					fmt.Fprintf(w, "Moved to trash: %s\n", trashed.Title)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List trashed notes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				trash, err := a.nb.TrashedNotes(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(cmd, trash, func(w io.Writer) { writeTrash(w, trash) })
			},
		},
		&cobra.Command{
			Use:   "restore [id]",
			Short: "Restore a trashed note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				note, err := a.nb.RestoreFromTrash(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(cmd, note, func(w io.Writer) {
					fmt.Fprintf(w, "Restored: %s\n", note.Title)
				})
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Permanently delete one trashed note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.nb.DeletePermanently(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted permanently: %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "empty",
			Short: "Permanently delete everything in the trash",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.nb.EmptyTrash(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Trash emptied.")
				return nil
			},
		},
		purge,
	)
	return cmd
}
