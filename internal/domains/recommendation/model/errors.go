package model

import "errors"

// ErrNoSuggestion is returned before any weather observation has arrived.
var ErrNoSuggestion = errors.New("no suggestion available yet")
