package database

import "time"

// Audit rows are write-only from the bot's point of view: the in-memory
// tracker is the source of truth and is never rebuilt from these tables.
// The daily report generator reads them offline.

type VerificationRecord struct {
	ID              int
	ChatID          int64
	UserID          int64
	UserName        string
	ResponseSeconds float64
	Points          int
	CreatedAt       time.Time
}

type KickRecord struct {
	ID             int
	ChatID         int64
	UserID         int64
	UserName       string
	TimeoutSeconds int
	CreatedAt      time.Time
}

type ViolationRecord struct {
	ID            int
	ChatID        int64
	UserID        int64
	UserName      string
	ViolationType string
	MatchFound    string
	MessageText   string
	CreatedAt     time.Time
}
