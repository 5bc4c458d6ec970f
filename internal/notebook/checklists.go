package notebook

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/xaenox/memo-notes/internal/models"
)

func (n *Notebook) CreateChecklist(ctx context.Context, title string) (models.Checklist, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Checklist{}, ErrEmptyTitle
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	checklists, err := load[models.Checklist](ctx, n, KeyChecklists)
	if err != nil {
		return models.Checklist{}, err
	}
	checklist := models.Checklist{
		ID:        n.newID(),
		Title:     title,
		Items:     []models.ChecklistItem{},
		CreatedAt: n.now(),
	}
	if err := save(ctx, n, KeyChecklists, append(checklists, checklist)); err != nil {
		return models.Checklist{}, err
	}
	return checklist, nil
}

func (n *Notebook) ListChecklists(ctx context.Context) ([]models.Checklist, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return load[models.Checklist](ctx, n, KeyChecklists)
}

func (n *Notebook) GetChecklist(ctx context.Context, id string) (models.Checklist, error) {
	checklists, err := n.ListChecklists(ctx)
	if err != nil {
		return models.Checklist{}, err
	}
	i := slices.IndexFunc(checklists, func(c models.Checklist) bool { return c.ID == id })
	if i < 0 {
		return models.Checklist{}, fmt.Errorf("checklist %q: %w", id, ErrNotFound)
	}
	return checklists[i], nil
}

// ChecklistsInCategory mirrors NotesInCategory: an empty id selects
// uncategorized checklists.
func (n *Notebook) ChecklistsInCategory(ctx context.Context, categoryID string) ([]models.Checklist, error) {
	checklists, err := n.ListChecklists(ctx)
	if err != nil {
		return nil, err
	}
	return without(checklists, func(c models.Checklist) bool { return c.CategoryID != categoryID }), nil
}

func (n *Notebook) RenameChecklist(ctx context.Context, id, title string) (models.Checklist, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Checklist{}, ErrEmptyTitle
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	return n.modifyChecklist(ctx, id, func(c *models.Checklist) error {
		c.Title = title
		return nil
	})
}

func (n *Notebook) DeleteChecklist(ctx context.Context, id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	checklists, err := load[models.Checklist](ctx, n, KeyChecklists)
	if err != nil {
		return err
	}
	remaining := without(checklists, func(c models.Checklist) bool { return c.ID == id })
	if len(remaining) == len(checklists) {
		return fmt.Errorf("checklist %q: %w", id, ErrNotFound)
	}
	return save(ctx, n, KeyChecklists, remaining)
}

// AddChecklistItem appends an unchecked item and returns the new item.
func (n *Notebook) AddChecklistItem(ctx context.Context, checklistID, text string) (models.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChecklistItem{}, ErrEmptyText
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	item := models.ChecklistItem{ID: n.newID(), Text: text}
	_, err := n.modifyChecklist(ctx, checklistID, func(c *models.Checklist) error {
		c.Items = append(c.Items, item)
		return nil
	})
	if err != nil {
		return models.ChecklistItem{}, err
	}
	return item, nil
}

func (n *Notebook) ToggleChecklistItem(ctx context.Context, checklistID, itemID string) (models.ChecklistItem, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var toggled models.ChecklistItem
	_, err := n.modifyChecklist(ctx, checklistID, func(c *models.Checklist) error {
		i := slices.IndexFunc(c.Items, func(item models.ChecklistItem) bool { return item.ID == itemID })
		if i < 0 {
			return fmt.Errorf("checklist item %q: %w", itemID, ErrNotFound)
		}
		c.Items[i].IsChecked = !c.Items[i].IsChecked
		toggled = c.Items[i]
		return nil
	})
	return toggled, err
}

func (n *Notebook) RemoveChecklistItem(ctx context.Context, checklistID, itemID string) (models.Checklist, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.modifyChecklist(ctx, checklistID, func(c *models.Checklist) error {
		remaining := without(c.Items, func(item models.ChecklistItem) bool { return item.ID == itemID })
		if len(remaining) == len(c.Items) {
			return fmt.Errorf("checklist item %q: %w", itemID, ErrNotFound)
		}
		c.Items = remaining
		return nil
	})
}

func (n *Notebook) SetChecklistCategory(ctx context.Context, id, categoryID string) (models.Checklist, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if categoryID != "" {
		if _, err := n.findCategory(ctx, categoryID); err != nil {
			return models.Checklist{}, err
		}
	}
	return n.modifyChecklist(ctx, id, func(c *models.Checklist) error {
		c.CategoryID = categoryID
		return nil
	})
}

func (n *Notebook) ToggleChecklistStar(ctx context.Context, id string) (models.Checklist, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.modifyChecklist(ctx, id, func(c *models.Checklist) error {
		c.Starred = !c.Starred
		return nil
	})
}

// modifyChecklist applies fn and saves only when fn succeeds. Callers hold n.mu.
func (n *Notebook) modifyChecklist(ctx context.Context, id string, fn func(*models.Checklist) error) (models.Checklist, error) {
	checklists, err := load[models.Checklist](ctx, n, KeyChecklists)
	if err != nil {
		return models.Checklist{}, err
	}
	i := slices.IndexFunc(checklists, func(c models.Checklist) bool { return c.ID == id })
	if i < 0 {
		return models.Checklist{}, fmt.Errorf("checklist %q: %w", id, ErrNotFound)
	}
	if err := fn(&checklists[i]); err != nil {
		return models.Checklist{}, err
	}
	if err := save(ctx, n, KeyChecklists, checklists); err != nil {
		return models.Checklist{}, err
	}
	return checklists[i], nil
}
