package domain

import "time"

// JournalEntry is an append-only audit record of a gate operation
type JournalEntry struct {
	ID          int64
	Action      string // JournalActionCheckIn / JournalActionCheckOut
	Description string
	OperatorID  int64
	Timestamp   time.Time
}

// JournalFilter defines optional filters for listing journal entries
type JournalFilter struct {
	Action     *string
	OperatorID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
}
