package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xaenox/memo-notes/internal/classifier"
	"github.com/xaenox/memo-notes/internal/models"
	"github.com/xaenox/memo-notes/internal/notebook"
)

func newNoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Create, list and edit notes",
	}
	cmd.AddCommand(
		newNoteCreateCmd(a),
		newNoteListCmd(a),
		&cobra.Command{
			Use:   "show [id]",
			Short: "Show a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				note, err := a.nb.GetNote(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(cmd, note, func(w io.Writer) { writeNote(w, note) })
			},
		},
		newNoteEditCmd(a),
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a note permanently, bypassing the trash",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.nb.DeleteNote(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "star [id]",
			Short: "Toggle the star on a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				note, err := a.nb.ToggleNoteStar(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(cmd, note, func(w io.Writer) {
					if note.Starred {
						fmt.Fprintf(w, "Starred: %s\n", note.Title)
					} else {
						fmt.Fprintf(w, "Unstarred: %s\n", note.Title)
					}
				})
			},
		},
		&cobra.Command{
			Use:   "search [query]",
			Short: "Search note titles and contents, ignoring case",
			RunE: func(cmd *cobra.Command, args []string) error {
				notes, err := a.nb.SearchNotes(cmd.Context(), joinArgs(args))
				if err != nil {
					return err
				}
				return a.render(cmd, notes, func(w io.Writer) { writeNotes(w, notes) })
			},
		},
		&cobra.Command{
			Use:   "category [id] [category-id]",
			Short: "Assign a note to a category, or clear it when no category is given",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				categoryID := ""
				if len(args) == 2 {
					categoryID = args[1]
				}
				note, err := a.nb.SetNoteCategory(cmd.Context(), args[0], categoryID)
				if err != nil {
					return err
				}
				return a.render(cmd, note, func(w io.Writer) { writeNote(w, note) })
			},
		},
	)
	return cmd
}

func newNoteCreateCmd(a *app) *cobra.Command {
	var (
		title      string
		content    string
		categoryID string
		auto       bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if categoryID == "" && (auto || a.cfg.Classifier.Enabled) {
				clf := a.cfg.NewClassifier(a.logger)
				if clf == nil {
					clf = classifier.NewSimpleClassifier(a.cfg.Classifier.MinScore)
				}
				id, err := suggestCategoryID(cmd, a.nb, clf, title+"\n"+content)
				if err != nil {
					return err
				}
				categoryID = id
			}

			note, err := a.nb.CreateNote(ctx, notebook.NoteInput{
				Title:      title,
				Content:    content,
				CategoryID: categoryID,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, note, func(w io.Writer) {
				fmt.Fprintf(w, "Note created: %s\n", note.ID)
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Note content")
	cmd.Flags().StringVar(&categoryID, "category", "", "Category id")
	cmd.Flags().BoolVar(&auto, "auto", false, "Suggest a category from the note text")
	return cmd
}

func suggestCategoryID(cmd *cobra.Command, nb *notebook.Notebook, clf classifier.Classifier, text string) (string, error) {
	categories, err := nb.ListCategories(cmd.Context())
	if err != nil {
		return "", err
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	suggested := clf.SuggestCategory(cmd.Context(), text, names)
	for _, c := range categories {
		if c.Name == suggested {
			return c.ID, nil
		}
	}
	return "", nil
}

func newNoteListCmd(a *app) *cobra.Command {
	var (
		categoryID    string
		uncategorized bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes in stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				notes []models.Note
				err   error
			)
			switch {
			case categoryID != "":
				notes, err = a.nb.NotesInCategory(cmd.Context(), categoryID)
			case uncategorized:
				notes, err = a.nb.NotesInCategory(cmd.Context(), "")
			default:
				notes, err = a.nb.ListNotes(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.render(cmd, notes, func(w io.Writer) { writeNotes(w, notes) })
		},
	}
	cmd.Flags().StringVar(&categoryID, "category", "", "Only notes in this category")
	cmd.Flags().BoolVar(&uncategorized, "uncategorized", false, "Only notes without a category")
	return cmd
}

func newNoteEditCmd(a *app) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change a note's title or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := a.nb.GetNote(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") {
				title = current.Title
			}
			if !cmd.Flags().Changed("content") {
				content = current.Content
			}
			note, err := a.nb.UpdateNote(ctx, args[0], title, content)
			if err != nil {
				return err
			}
			return a.render(cmd, note, func(w io.Writer) { writeNote(w, note) })
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New content")
	return cmd
}
