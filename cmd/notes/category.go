package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [name]",
			Short: "Add a category",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				category, err := a.nb.AddCategory(cmd.Context(), joinArgs(args))
				if err != nil {
					return err
				}
				return a.render(cmd, category, func(w io.Writer) {
					fmt.Fprintf(w, "Category created: %s %s\n", category.ID, category.Name)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List categories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				categories, err := a.nb.ListCategories(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(cmd, categories, func(w io.Writer) { writeCategories(w, categories) })
			},
		},
		&cobra.Command{
			Use:   "rename [id] [name]",
			Short: "Rename a category",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				category, err := a.nb.RenameCategory(cmd.Context(), args[0], joinArgs(args[1:]))
				if err != nil {
					return err
				}
				return a.render(cmd, category, func(w io.Writer) {
					fmt.Fprintf(w, "Category renamed: %s\n", category.Name)
				})
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a category; notes keep their category id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.nb.DeleteCategory(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Category deleted: %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "notes [id]",
			Short: "List the notes and checklists in a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				category, err := a.nb.GetCategory(ctx, args[0])
				if err != nil {
					return err
				}
				notes, err := a.nb.NotesInCategory(ctx, category.ID)
				if err != nil {
					return err
				}
				checklists, err := a.nb.ChecklistsInCategory(ctx, category.ID)
				if err != nil {
					return err
				}
				out := map[string]any{
					"category":   category,
					"notes":      notes,
					"checklists": checklists,
				}
				return a.render(cmd, out, func(w io.Writer) {
					fmt.Fprintf(w, "%s\n\n", category.Name)
					writeNotes(w, notes)
					if len(checklists) > 0 {
						fmt.Fprintln(w)
						writeChecklists(w, checklists)
					}
				})
			},
		},
	)
	return cmd
}
