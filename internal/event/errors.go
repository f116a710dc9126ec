package event

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrForbidden      = errors.New("not allowed to modify this event")
	ErrInvalidPayload = errors.New("invalid payload")
)
