package persist

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// Snapshot is the full persisted state
type Snapshot struct {
	Tasks      []models.Task
	Categories []models.Category
}

// document is the export/import file layout: the two records keyed by
// their storage keys
type document struct {
	Tasks      []taskRecord     `json:"todo-tasks"`
	Categories []categoryRecord `json:"todo-categories"`
}

// WriteSnapshot encodes snap as an indented JSON document
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	doc := document{
		Tasks:      encodeAll(snap.Tasks, encodeTask),
		Categories: encodeAll(snap.Categories, encodeCategory),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// rawDocument accepts either embedded arrays or, as in a browser
// localStorage dump, arrays serialized into JSON strings
type rawDocument struct {
	Tasks      json.RawMessage `json:"todo-tasks"`
	Categories json.RawMessage `json:"todo-categories"`
}

// ReadSnapshot decodes a document written by WriteSnapshot (or a browser
// localStorage dump with the same two keys). Unlike Load*, malformed input
// is an error here because the user asked for it explicitly.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var doc rawDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	taskRecords, err := unmarshalField[taskRecord](doc.Tasks)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %v", ErrMalformed, TasksKey, err)
	}
	categoryRecords, err := unmarshalField[categoryRecord](doc.Categories)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %v", ErrMalformed, CategoriesKey, err)
	}

	tasks, err := decodeAll(taskRecords, decodeTask)
	if err != nil {
		return Snapshot{}, err
	}

	categories, err := decodeAll(categoryRecords, decodeCategory)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Tasks: tasks, Categories: categories}, nil
}

func unmarshalField[R any](raw json.RawMessage) ([]R, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		raw = json.RawMessage(inner)
	}

	var records []R
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}
