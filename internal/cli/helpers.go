package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// ResolveCategory finds a category by id, then by case-insensitive name
func ResolveCategory(st *store.Store, ref string) (models.Category, error) {
	ref = strings.TrimSpace(ref)
	if c, ok := st.Category(ref); ok {
		return c, nil
	}
	if c, ok := st.CategoryByName(ref); ok {
		return c, nil
	}
	return models.Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, ref)
}

// ResolveTask finds a task by id
func ResolveTask(st *store.Store, id string) (models.Task, error) {
	t, ok := st.Task(strings.TrimSpace(id))
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}
	return t, nil
}

// CategoryNames lists the names of all categories, for suggestions
func CategoryNames(st *store.Store) string {
	cats := st.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
