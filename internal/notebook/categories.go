package notebook

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/xaenox/memo-notes/internal/models"
)

func (n *Notebook) AddCategory(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrEmptyName
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	categories, err := load[models.Category](ctx, n, KeyCategories)
	if err != nil {
		return models.Category{}, err
	}
	category := models.Category{ID: n.newID(), Name: name, CreatedAt: n.now()}
	if err := save(ctx, n, KeyCategories, append(categories, category)); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (n *Notebook) ListCategories(ctx context.Context) ([]models.Category, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return load[models.Category](ctx, n, KeyCategories)
}

func (n *Notebook) GetCategory(ctx context.Context, id string) (models.Category, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.findCategory(ctx, id)
}

func (n *Notebook) RenameCategory(ctx context.Context, id, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrEmptyName
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	categories, err := load[models.Category](ctx, n, KeyCategories)
	if err != nil {
		return models.Category{}, err
	}
	i := slices.IndexFunc(categories, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		return models.Category{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	categories[i].Name = name
	if err := save(ctx, n, KeyCategories, categories); err != nil {
		return models.Category{}, err
	}
	return categories[i], nil
}

// DeleteCategory removes the category only. Notes and checklists filed
// under it keep the stale id.
func (n *Notebook) DeleteCategory(ctx context.Context, id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	categories, err := load[models.Category](ctx, n, KeyCategories)
	if err != nil {
		return err
	}
	remaining := without(categories, func(c models.Category) bool { return c.ID == id })
	if len(remaining) == len(categories) {
		return fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	return save(ctx, n, KeyCategories, remaining)
}

func (n *Notebook) findCategory(ctx context.Context, id string) (models.Category, error) {
	categories, err := load[models.Category](ctx, n, KeyCategories)
	if err != nil {
		return models.Category{}, err
	}
	i := slices.IndexFunc(categories, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		return models.Category{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	return categories[i], nil
}
