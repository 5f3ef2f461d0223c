package store

import (
	"errors"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// Validation errors
var (
	ErrEmptyTitle   = errors.New("task title cannot be empty")
	ErrTitleTooLong = errors.New("task title cannot exceed 255 characters")
	ErrEmptyName    = errors.New("category name cannot be empty")
	ErrNameTooLong  = errors.New("category name cannot exceed 50 characters")

	// ErrInvalidStatus is models.ErrInvalidStatus, re-exported for callers
	// that only import store
	ErrInvalidStatus = models.ErrInvalidStatus
)

// Business rule errors
var (
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNotEmpty blocks deleting a category that still holds tasks
	ErrCategoryNotEmpty = errors.New("cannot delete a category that still has tasks")
)

const (
	maxTitleLength = 255
	maxNameLength  = 50
)
