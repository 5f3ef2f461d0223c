package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
)

// maxInputLength caps dialog input; the store enforces the real limits
const maxInputLength = 255

// InputState manages the single-line text input shared by the add, edit and
// rename dialogs.
type InputState struct {
	// Prompt is the dialog title (e.g., "New task")
	Prompt string

	// TargetID is the task or category the dialog acts on, if any
	TargetID string

	// Input is the bubbles text field
	Input textinput.Model
}

// NewInputState creates a new InputState with an empty field.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxInputLength
	ti.SetWidth(40)
	return &InputState{Input: ti}
}

// Begin opens the field with a prompt and initial value and focuses it
func (s *InputState) Begin(prompt, targetID, value string) {
	s.Prompt = prompt
	s.TargetID = targetID
	s.Input.SetValue(value)
	s.Input.CursorEnd()
	s.Input.Focus()
}

// Clear resets the field.
func (s *InputState) Clear() {
	s.Prompt = ""
	s.TargetID = ""
	s.Input.SetValue("")
	s.Input.Blur()
}

// Value returns the typed text
func (s *InputState) Value() string {
	return s.Input.Value()
}

// IsEmpty returns true if the field is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return strings.TrimSpace(s.Input.Value()) == ""
}
