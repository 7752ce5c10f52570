package dict

import "errors"

// Domain-level dictionary store error sentinels.
var (
	ErrInvalidName     = errors.New("tactic name must not be empty")
	ErrDuplicateTactic = errors.New("tactic already exists")
	ErrUnknownTactic   = errors.New("tactic not found")
	ErrMalformedInput  = errors.New("malformed dictionary input")
)
