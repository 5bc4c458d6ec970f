package notebook

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/xaenox/memo-notes/internal/models"
)

// NoteInput carries the user-editable fields of a new note.
type NoteInput struct {
	Title      string
	Content    string
	CategoryID string
}

func validateNote(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return "", "", ErrEmptyTitle
	}
	if content == "" {
		return "", "", ErrEmptyContent
	}
	return title, content, nil
}

func (n *Notebook) CreateNote(ctx context.Context, in NoteInput) (models.Note, error) {
	title, content, err := validateNote(in.Title, in.Content)
	if err != nil {
		return models.Note{}, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if in.CategoryID != "" {
		if _, err := n.findCategory(ctx, in.CategoryID); err != nil {
			return models.Note{}, err
		}
	}

	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:         n.newID(),
		Title:      title,
		Content:    content,
		CategoryID: in.CategoryID,
		CreatedAt:  n.now(),
	}
	if err := save(ctx, n, KeyNotes, append(notes, note)); err != nil {
		return models.Note{}, err
	}

	n.logger.Debug("Note created", zap.String("note_id", note.ID))
	return note, nil
}

func (n *Notebook) GetNote(ctx context.Context, id string) (models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return models.Note{}, err
	}
	i := slices.IndexFunc(notes, func(note models.Note) bool { return note.ID == id })
	if i < 0 {
		return models.Note{}, fmt.Errorf("note %q: %w", id, ErrNotFound)
	}
	return notes[i], nil
}

// ListNotes returns every live note in the order they were stored.
func (n *Notebook) ListNotes(ctx context.Context) ([]models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return load[models.Note](ctx, n, KeyNotes)
}

func (n *Notebook) UpdateNote(ctx context.Context, id, title, content string) (models.Note, error) {
	title, content, err := validateNote(title, content)
	if err != nil {
		return models.Note{}, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	return n.modifyNote(ctx, id, func(note *models.Note) {
		note.Title = title
		note.Content = content
		now := n.now()
		note.UpdatedAt = &now
	})
}

// DeleteNote removes a note for good, bypassing the trash.
func (n *Notebook) DeleteNote(ctx context.Context, id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return err
	}
	remaining := without(notes, func(note models.Note) bool { return note.ID == id })
	if len(remaining) == len(notes) {
		return fmt.Errorf("note %q: %w", id, ErrNotFound)
	}
	if err := save(ctx, n, KeyNotes, remaining); err != nil {
		return err
	}
	return n.dropFavorite(ctx, id)
}

// SetNoteCategory files a note under categoryID, or clears the category
// when categoryID is empty.
func (n *Notebook) SetNoteCategory(ctx context.Context, id, categoryID string) (models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if categoryID != "" {
		if _, err := n.findCategory(ctx, categoryID); err != nil {
			return models.Note{}, err
		}
	}
	return n.modifyNote(ctx, id, func(note *models.Note) {
		note.CategoryID = categoryID
	})
}

// ToggleNoteStar flips the starred flag and mirrors it in the favorites set.
func (n *Notebook) ToggleNoteStar(ctx context.Context, id string) (models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	note, err := n.modifyNote(ctx, id, func(note *models.Note) {
		note.Starred = !note.Starred
	})
	if err != nil {
		return models.Note{}, err
	}

	if note.Starred {
		err = n.appendFavorite(ctx, id)
	} else {
		err = n.dropFavorite(ctx, id)
	}
	return note, err
}

// SearchNotes matches query against title and content, ignoring case.
// An empty query matches every note.
func (n *Notebook) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	notes, err := n.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return notes, nil
	}

	fold := cases.Fold()
	needle := fold.String(query)
	matches := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(fold.String(note.Title), needle) ||
			strings.Contains(fold.String(note.Content), needle) {
			matches = append(matches, note)
		}
	}
	return matches, nil
}

// NotesInCategory lists the notes filed under categoryID. An empty id
// lists uncategorized notes.
func (n *Notebook) NotesInCategory(ctx context.Context, categoryID string) ([]models.Note, error) {
	notes, err := n.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	return without(notes, func(note models.Note) bool { return note.CategoryID != categoryID }), nil
}

// modifyNote applies fn to the stored note and writes the collection back.
// Callers hold n.mu.
func (n *Notebook) modifyNote(ctx context.Context, id string, fn func(*models.Note)) (models.Note, error) {
	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return models.Note{}, err
	}
	i := slices.IndexFunc(notes, func(note models.Note) bool { return note.ID == id })
	if i < 0 {
		return models.Note{}, fmt.Errorf("note %q: %w", id, ErrNotFound)
	}

	fn(&notes[i])
	if err := save(ctx, n, KeyNotes, notes); err != nil {
		return models.Note{}, err
	}
	return notes[i], nil
}
