package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/xaenox/memo-notes/internal/models"
)

const timeLayout = "2006-01-02 15:04"

func star(starred bool) string {
	if starred {
		return "*"
	}
	return " "
}

func writeNotes(w io.Writer, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, star(n.Starred), n.Title, n.CreatedAt.Local().Format(timeLayout))
	}
	tw.Flush()
}

func writeNote(w io.Writer, n models.Note) {
	fmt.Fprintf(w, "%s %s\n", star(n.Starred), n.Title)
	fmt.Fprintf(w, "id:       %s\n", n.ID)
	if n.CategoryID != "" {
		fmt.Fprintf(w, "category: %s\n", n.CategoryID)
	}
	fmt.Fprintf(w, "created:  %s\n", n.CreatedAt.Local().Format(timeLayout))
	if n.UpdatedAt != nil {
		fmt.Fprintf(w, "updated:  %s\n", n.UpdatedAt.Local().Format(timeLayout))
	}
	fmt.Fprintf(w, "\n%s\n", n.Content)
}

func writeTrash(w io.Writer, trash []models.TrashedNote) {
	if len(trash) == 0 {
		fmt.Fprintln(w, "Trash is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range trash {
		fmt.Fprintf(tw, "%s\t%s\tdeleted %s\n", n.ID, n.Title, n.DeletedAt.Local().Format(timeLayout))
	}
	tw.Flush()
}

func writeCategories(w io.Writer, categories []models.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	tw.Flush()
}

func writeChecklists(w io.Writer, checklists []models.Checklist) {
	if len(checklists) == 0 {
		fmt.Fprintln(w, "No checklists.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range checklists {
		done, total := c.Progress()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\n", c.ID, star(c.Starred), c.Title, done, total)
	}
	tw.Flush()
}

func writeChecklist(w io.Writer, c models.Checklist) {
	done, total := c.Progress()
	fmt.Fprintf(w, "%s %s (%d/%d)\n", star(c.Starred), c.Title, done, total)
	for _, item := range c.Items {
		box := "[ ]"
		if item.IsChecked {
			box = "[x]"
		}
		fmt.Fprintf(w, "  %s %s  %s\n", box, item.Text, item.ID)
	}
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func formatAge(d time.Duration) string {
	return d.Round(time.Hour).String()
}
