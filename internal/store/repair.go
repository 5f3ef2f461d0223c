package store

import (
	"strings"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// repair restores the task/category invariants on loaded data:
//   - duplicate task and category ids keep their first occurrence
//   - at least one category exists
//   - tasks pointing at a missing category move to the default category
//   - each sequence keeps only ids of its own tasks, once
//   - tasks missing from their sequence are appended
//
// It reports whether anything had to change.
func (s *Store) repair(in state) (state, bool) {
	changed := false
	out := state{
		tasks:      make([]models.Task, 0, len(in.tasks)),
		categories: make([]models.Category, 0, len(in.categories)),
	}

	seenCat := make(map[string]bool, len(in.categories))
	for _, c := range in.categories {
		if seenCat[c.ID] {
			changed = true
			continue
		}
		seenCat[c.ID] = true
		out.categories = append(out.categories, c.Clone())
	}

	if len(out.categories) == 0 {
		out.categories = append(out.categories, s.newDefaultCategory())
		changed = true
	}

	fallback := out.categories[0].ID
	for _, c := range out.categories {
		if strings.EqualFold(c.Name, s.defaultName) {
			fallback = c.ID
			break
		}
	}

	owner := make(map[string]string, len(in.tasks))
	for _, t := range in.tasks {
		if _, dup := owner[t.ID]; dup {
			changed = true
			continue
		}
		if !seenCat[t.CategoryID] {
			s.logger.Warn().Str("task", t.ID).Str("category", t.CategoryID).Msg("task references missing category")
			t.CategoryID = fallback
			changed = true
		}
		owner[t.ID] = t.CategoryID
		out.tasks = append(out.tasks, t)
	}

	placed := make(map[string]bool, len(out.tasks))
	for i := range out.categories {
		c := &out.categories[i]
		kept := make([]string, 0, len(c.TaskIDs))
		for _, id := range c.TaskIDs {
			if owner[id] != c.ID || placed[id] {
				changed = true
				continue
			}
			placed[id] = true
			kept = append(kept, id)
		}
		c.TaskIDs = kept
	}

	for _, t := range out.tasks {
		if placed[t.ID] {
			continue
		}
		i := out.categoryIndex(t.CategoryID)
		out.categories[i].TaskIDs = append(out.categories[i].TaskIDs, t.ID)
		placed[t.ID] = true
		changed = true
	}

	return out, changed
}
