package models

import "time"

// EntryStatus mirrors the entry status ENUM in the database.
type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryConfirmed EntryStatus = "confirmed"
	EntryRejected  EntryStatus = "rejected"
)

// Entry is a team's registration in a tournament.
type Entry struct {
	ID           int         `json:"id" db:"id"`
	TournamentID int         `json:"tournament_id" db:"tournament_id"`
	TeamID       int         `json:"team_id" db:"team_id"`
	Status       EntryStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`

	Team *Team `json:"team,omitempty" db:"-"`
}
