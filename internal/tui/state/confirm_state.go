package state

// ConfirmAction is the operation a yes/no dialog guards
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmDeleteTask
	ConfirmDeleteCategory
	ConfirmClearStorage
)

// ConfirmState holds the pending yes/no question
type ConfirmState struct {
	Action   ConfirmAction
	TargetID string
	Message  string
}

// NewConfirmState creates an empty ConfirmState
func NewConfirmState() *ConfirmState {
	return &ConfirmState{}
}

// Ask records a pending question
func (s *ConfirmState) Ask(action ConfirmAction, targetID, message string) {
	s.Action = action
	s.TargetID = targetID
	s.Message = message
}

// Clear drops the pending question
func (s *ConfirmState) Clear() {
	*s = ConfirmState{}
}
