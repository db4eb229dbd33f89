package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeEntrySaved   ActivityType = "entry_saved"
	TypeEntryDeleted ActivityType = "entry_deleted"
	TypeLogCleared   ActivityType = "log_cleared"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	EntryID      *string      `json:"entry_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
