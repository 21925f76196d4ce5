package core

import "errors"

// ErrInvalidInput marks boundary violations (empty message, missing event
// type or content). Callers wrap it with fmt.Errorf("...: %w", ...).
var ErrInvalidInput = errors.New("invalid input")
