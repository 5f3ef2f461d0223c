package models

import "errors"

// ErrInvalidStatus indicates text that does not name a task status
var ErrInvalidStatus = errors.New("invalid status")
