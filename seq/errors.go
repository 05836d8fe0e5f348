package seq

import "errors"

var (
	// ErrEmptySequence signals an endpoint removal from an empty sequence.
	ErrEmptySequence = errors.New("seq: sequence is empty")
	// ErrCorrupt signals a violated structural invariant, i.e. a bug.
	ErrCorrupt = errors.New("seq: structural invariant violated")
)
