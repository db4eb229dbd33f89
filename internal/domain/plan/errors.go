package plan

import "errors"

var (
	// ErrMissingKey indicates a configured plan without a key.
	ErrMissingKey = errors.New("plan key is required")
	// ErrDuplicateKey indicates two plans share a key.
	ErrDuplicateKey = errors.New("duplicate plan key")
)
