package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/tasklane/internal/models"
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// AddCategory appends an empty category. Names need not be unique.
func (s *Store) AddCategory(ctx context.Context, name string) (models.Category, error) {
	name, err := validateName(name)
	if err != nil {
		return models.Category{}, err
	}

	category := models.Category{ID: s.newID(), Name: name, TaskIDs: []string{}}
	next := s.st.clone()
	next.categories = append(next.categories, category)

	if err := s.commit(ctx, next); err != nil {
		return models.Category{}, fmt.Errorf("add category: %w", err)
	}

	s.logger.Debug().Str("category", category.ID).Str("name", name).Msg("category added")
	return category.Clone(), nil
}

// RenameCategory changes a category's name. Unknown ids are ignored.
func (s *Store) RenameCategory(ctx context.Context, id, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	next := s.st.clone()
	ci := next.categoryIndex(id)
	if ci < 0 {
		return nil
	}
	next.categories[ci].Name = name

	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("rename category: %w", err)
	}

	s.logger.Debug().Str("category", id).Str("name", name).Msg("category renamed")
	return nil
}

// DeleteCategory removes an empty category. A category that still holds
// tasks is left alone and ErrCategoryNotEmpty is returned. Unknown ids are
// ignored.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	ci := s.st.categoryIndex(id)
	if ci < 0 {
		return nil
	}
	if !s.st.categories[ci].IsEmpty() {
		return ErrCategoryNotEmpty
	}

	next := s.st.clone()
	next.categories = slices.Delete(next.categories, ci, ci+1)

	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.Debug().Str("category", id).Msg("category deleted")
	return nil
}
