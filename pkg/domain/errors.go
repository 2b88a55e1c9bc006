package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownContentKey is returned when a transition references a content key
// the provider cannot resolve. This is a programming-contract violation, not
// a dialogue error: it surfaces to the operator, never to the end user.
var ErrUnknownContentKey = errors.New("unknown content key")
