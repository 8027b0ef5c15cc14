package models

// ClassificationZone labels a standings row with its fate once the league
// phase ends.
type ClassificationZone string

const (
	ZoneDirect     ClassificationZone = "direct"
	ZoneRepechage  ClassificationZone = "repechage"
	ZoneEliminated ClassificationZone = "eliminated"
)

// StandingsEntry is derived from completed matches, never persisted. It is
// recomputed from scratch on every read.
type StandingsEntry struct {
	TeamID       int                `json:"team_id"`
	TeamName     string             `json:"team_name"`
	Played       int                `json:"played"`
	Wins         int                `json:"wins"`
	Draws        int                `json:"draws"`
	Losses       int                `json:"losses"`
	Points       int                `json:"points"`
	GoalsFor     int                `json:"goals_for"`
	GoalsAgainst int                `json:"goals_against"`
	GoalDiff     int                `json:"goal_diff"`
	Rank         int                `json:"rank"`
	Zone         ClassificationZone `json:"zone,omitempty"`
}

// ClassificationPlan splits a league of TeamCount teams into qualification
// slots for the fixed-size knockout stage.
type ClassificationPlan struct {
	TeamCount       int `json:"team_count"`
	DirectSlots     int `json:"direct_slots"`
	RepechageSlots  int `json:"repechage_slots"`
	EliminatedSlots int `json:"eliminated_slots"`
}
