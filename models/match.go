package models

import "time"

type MatchStatus string

const (
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

// Match is a futsal fixture. HomeTeamID/AwayTeamID are nullable: a completed
// match with a nil away side is an automatic bye advancement and carries a
// 1-0 score plus an explanatory note.
type Match struct {
	ID           int         `json:"id" db:"id"`
	TournamentID int         `json:"tournament_id" db:"tournament_id"`
	HomeTeamID   *int        `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID   *int        `json:"away_team_id,omitempty" db:"away_team_id"`
	Status       MatchStatus `json:"status" db:"status"`
	HomeScore    *int        `json:"home_score,omitempty" db:"home_score"`
	AwayScore    *int        `json:"away_score,omitempty" db:"away_score"`
	Round        string      `json:"round" db:"round"`
	Note         *string     `json:"note,omitempty" db:"note"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`

	HomeTeam *Team `json:"home_team,omitempty" db:"-"`
	AwayTeam *Team `json:"away_team,omitempty" db:"-"`
}

// MatchDraft is a match produced by fixture generation before it is persisted.
type MatchDraft struct {
	TournamentID int         `json:"tournament_id"`
	HomeTeamID   *int        `json:"home_team_id,omitempty"`
	AwayTeamID   *int        `json:"away_team_id,omitempty"`
	Status       MatchStatus `json:"status"`
	HomeScore    *int        `json:"home_score,omitempty"`
	AwayScore    *int        `json:"away_score,omitempty"`
	Round        string      `json:"round"`
	Note         *string     `json:"note,omitempty"`
}
