package cli

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tasklane/internal/persist"
)

// Confirmer returns a persist.Confirmer that asks with a huh prompt, or
// agrees straight away when skip is set (--yes / --force)
func Confirmer(skip bool) persist.Confirmer {
	if skip {
		return persist.AlwaysConfirm
	}
	return func(prompt string) (bool, error) {
		var ok bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&ok).
			Run()
		if err != nil {
			return false, err
		}
		return ok, nil
	}
}
