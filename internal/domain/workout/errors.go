package workout

import "errors"

var (
	// ErrEmptySession indicates a draft with no named exercise.
	ErrEmptySession = errors.New("session needs at least one named exercise")
	// ErrInvalidDate indicates the draft date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid session date")
	// ErrEntryNotFound indicates the entry doesn't exist.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrPersistence indicates the snapshot could not be written.
	ErrPersistence = errors.New("persisting entries")
)
