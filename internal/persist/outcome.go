package persist

// Confirmer asks the user a yes/no question. The presentation layer decides
// how (huh prompt, TUI dialog, --yes flag).
type Confirmer func(prompt string) (bool, error)

// AlwaysConfirm answers yes without asking
func AlwaysConfirm(string) (bool, error) { return true, nil }

// ClearOutcome reports what Clear did
type ClearOutcome int

const (
	ClearDeclined ClearOutcome = iota
	ClearCompleted
)

func (o ClearOutcome) String() string {
	switch o {
	case ClearCompleted:
		return "cleared"
	default:
		return "declined"
	}
}
