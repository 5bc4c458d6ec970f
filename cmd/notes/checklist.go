package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xaenox/memo-notes/internal/models"
)

func newChecklistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"checklists"},
		Short:   "Manage checklists and their items",
	}

	show := func(cmd *cobra.Command, c models.Checklist) error {
		return a.render(cmd, c, func(w io.Writer) { writeChecklist(w, c) })
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create [title]",
			Short: "Create a checklist",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.nb.CreateChecklist(cmd.Context(), joinArgs(args))
				if err != nil {
					return err
				}
				return a.render(cmd, c, func(w io.Writer) {
					fmt.Fprintf(w, "Checklist created: %s\n", c.ID)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List checklists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				checklists, err := a.nb.ListChecklists(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(cmd, checklists, func(w io.Writer) { writeChecklists(w, checklists) })
			},
		},
		&cobra.Command{
			Use:   "show [id]",
			Short: "Show a checklist with its items",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.nb.GetChecklist(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return show(cmd, c)
			},
		},
		&cobra.Command{
			Use:   "rename [id] [title]",
			Short: "Rename a checklist",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.nb.RenameChecklist(cmd.Context(), args[0], joinArgs(args[1:]))
				if err != nil {
					return err
				}
				return show(cmd, c)
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a checklist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.nb.DeleteChecklist(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Checklist deleted: %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "add [id] [text]",
			Short: "Append an item to a checklist",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				item, err := a.nb.AddChecklistItem(cmd.Context(), args[0], joinArgs(args[1:]))
				if err != nil {
					return err
				}
				return a.render(cmd, item, func(w io.Writer) {
					fmt.Fprintf(w, "Item added: %s\n", item.ID)
				})
			},
		},
		&cobra.Command{
			Use:   "toggle [id] [item-id]",
			Short: "Check or uncheck an item",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				item, err := a.nb.ToggleChecklistItem(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.render(cmd, item, func(w io.Writer) {
					state := "unchecked"
					if item.IsChecked {
						state = "checked"
					}
					fmt.Fprintf(w, "%s: %s\n", item.Text, state)
				})
			},
		},
		&cobra.Command{
			Use:   "remove [id] [item-id]",
			Short: "Remove an item from a checklist",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.nb.RemoveChecklistItem(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return show(cmd, c)
			},
		},
		&cobra.Command{
			Use:   "star [id]",
			Short: "Toggle the star on a checklist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.nb.ToggleChecklistStar(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return show(cmd, c)
			},
		},
		&cobra.Command{
			Use:   "category [id] [category-id]",
			Short: "Assign a checklist to a category, or clear it",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				categoryID := ""
				if len(args) == 2 {
					categoryID = args[1]
				}
				c, err := a.nb.SetChecklistCategory(cmd.Context(), args[0], categoryID)
				if err != nil {
					return err
				}
				return show(cmd, c)
			},
		},
	)
	return cmd
}
