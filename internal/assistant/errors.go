package assistant

import "errors"

var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrSessionBusy     = errors.New("a command is already being processed for this session")
	ErrSessionNotFound = errors.New("session not found")
)
