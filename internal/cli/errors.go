package cli

import (
	"errors"

	"github.com/thenoetrevino/tasklane/internal/persist"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// Lookup errors raised by the CLI itself
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = store.ErrCategoryNotFound
)

// FailStore reports a store or persistence error with the matching exit code
// and error code
func (f *OutputFormatter) FailStore(err error) error {
	switch {
	case errors.Is(err, store.ErrCategoryNotEmpty):
		return f.Fail(ExitValidation, "CATEGORY_NOT_EMPTY", err,
			"Move or delete its tasks first ('tasklane task list --category <id>')")
	case errors.Is(err, store.ErrEmptyTitle), errors.Is(err, store.ErrTitleTooLong):
		return f.Fail(ExitValidation, "INVALID_TITLE", err, "")
	case errors.Is(err, store.ErrEmptyName), errors.Is(err, store.ErrNameTooLong):
		return f.Fail(ExitValidation, "INVALID_NAME", err, "")
	case errors.Is(err, store.ErrInvalidStatus):
		return f.Fail(ExitValidation, "INVALID_STATUS", err, "Valid statuses are: todo, in-progress, done")
	case errors.Is(err, store.ErrCategoryNotFound):
		return f.Fail(ExitNotFound, "CATEGORY_NOT_FOUND", err, "Use 'tasklane category list' to see available categories")
	case errors.Is(err, ErrTaskNotFound):
		return f.Fail(ExitNotFound, "TASK_NOT_FOUND", err, "Use 'tasklane task list' to see available tasks")
	case errors.Is(err, persist.ErrMalformed):
		return f.Fail(ExitDataErr, "MALFORMED_DATA", err, "")
	default:
		return f.Fail(ExitError, "STORAGE_ERROR", err, "")
	}
}
