package brackets

import (
	"fmt"
	"math"

	"github.com/pprado/futsal-league/models"
)

// SeedEntry is a confirmed tournament entry in seeding order. Input order is
// significant: the caller's ranking decides who receives the byes.
type SeedEntry struct {
	TeamID int
	Name   string
}

const firstRoundLabel = "Round 1"

// GenerateFirstRound produces the opening round of a single-elimination
// bracket, padding a non-power-of-two field with byes. The first byeCount
// seeds advance automatically as completed 1-0 matches; the remaining seeds
// are paired sequentially into scheduled matches.
//
// The function does not persist anything and does not validate the entry
// list: rejecting an empty field is the caller's job. A single entry yields
// zero drafts.
func GenerateFirstRound(tournamentID int, entries []SeedEntry) []models.MatchDraft {
	n := len(entries)
	if n <= 1 {
		// A lone entrant has nobody to play and no bracket to pad.
		return []models.MatchDraft{}
	}

	rounds := int(math.Ceil(math.Log2(float64(n))))
	totalSlots := 1 << uint(rounds)
	byeCount := totalSlots - n

	drafts := make([]models.MatchDraft, 0, totalSlots/2)

	for i := 0; i < byeCount; i++ {
		drafts = append(drafts, byeDraft(tournamentID, entries[i]))
	}

	i := byeCount
	for ; i+1 < n; i += 2 {
		home := entries[i]
		away := entries[i+1]
		homeID := home.TeamID
		awayID := away.TeamID
		drafts = append(drafts, models.MatchDraft{
			TournamentID: tournamentID,
			HomeTeamID:   &homeID,
			AwayTeamID:   &awayID,
			Status:       models.MatchScheduled,
			Round:        firstRoundLabel,
		})
	}

	// Rounding edge case: an unpairable trailing entry advances on a bye too.
	if i < n {
		drafts = append(drafts, byeDraft(tournamentID, entries[i]))
	}

	return drafts
}

func byeDraft(tournamentID int, entry SeedEntry) models.MatchDraft {
	homeID := entry.TeamID
	homeScore := 1
	awayScore := 0
	note := fmt.Sprintf("%s advances automatically (bye)", entry.Name)
	return models.MatchDraft{
		TournamentID: tournamentID,
		HomeTeamID:   &homeID,
		Status:       models.MatchCompleted,
		HomeScore:    &homeScore,
		AwayScore:    &awayScore,
		Round:        firstRoundLabel,
		Note:         &note,
	}
}
