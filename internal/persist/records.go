package persist

import (
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// ErrMalformed marks persisted data that cannot be decoded into the model
var ErrMalformed = errors.New("malformed record")

// timeLayout is the textual timestamp encoding. RFC 3339 parsing also
// accepts the millisecond ISO-8601 form browsers produce.
const timeLayout = time.RFC3339Nano

// taskRecord is the persisted shape of a task
type taskRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	CategoryID string `json:"categoryId"`
}

// categoryRecord is the persisted shape of a category
type categoryRecord struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	TaskIDs []string `json:"taskIds"`
}

func encodeTask(t models.Task) taskRecord {
	return taskRecord{
		ID:         t.ID,
		Title:      t.Title,
		Status:     t.Status.String(),
		CreatedAt:  EncodeTime(t.CreatedAt),
		CategoryID: t.CategoryID,
	}
}

func decodeTask(r taskRecord) (models.Task, error) {
	if r.ID == "" {
		return models.Task{}, fmt.Errorf("%w: task without id", ErrMalformed)
	}

	createdAt, err := DecodeTime(r.CreatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: task %s: %v", ErrMalformed, r.ID, err)
	}

	status, err := models.ParseStatus(r.Status)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: task %s: %v", ErrMalformed, r.ID, err)
	}

	return models.Task{
		ID:         r.ID,
		Title:      r.Title,
		Status:     status,
		CreatedAt:  createdAt,
		CategoryID: r.CategoryID,
	}, nil
}

func encodeCategory(c models.Category) categoryRecord {
	ids := c.TaskIDs
	if ids == nil {
		ids = []string{}
	}
	return categoryRecord{ID: c.ID, Name: c.Name, TaskIDs: ids}
}

func decodeCategory(r categoryRecord) (models.Category, error) {
	if r.ID == "" {
		return models.Category{}, fmt.Errorf("%w: category without id", ErrMalformed)
	}
	return models.Category{ID: r.ID, Name: r.Name, TaskIDs: r.TaskIDs}.Clone(), nil
}

// EncodeTime renders a timestamp the way it is persisted (UTC, RFC 3339)
func EncodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// DecodeTime parses a persisted timestamp
func DecodeTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode timestamp %q: %w", s, err)
	}
	return t, nil
}

func encodeAll[M, R any](items []M, encode func(M) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, encode(item))
	}
	return out
}

func decodeAll[R, M any](records []R, decode func(R) (M, error)) ([]M, error) {
	out := make([]M, 0, len(records))
	for _, r := range records {
		m, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
