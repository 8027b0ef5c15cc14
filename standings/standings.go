package standings

import (
	"fmt"
	"sort"

	"github.com/pprado/futsal-league/models"
)

// Compute builds the league table for the given roster from every match the
// competition has produced so far. Only completed matches with both scores
// present count; scheduled, in-progress and cancelled matches contribute
// nothing. Teams with no qualifying match still appear with zeroed stats, and
// teams that show up only inside match records are merged into the table so
// no scored team is dropped.
//
// Pure function: no side effects, safe to call concurrently.
func Compute(teams []models.Team, matches []models.Match) []models.StandingsEntry {
	entries := make(map[int]*models.StandingsEntry, len(teams))
	order := make([]int, 0, len(teams))

	for _, t := range teams {
		if _, ok := entries[t.ID]; ok {
			continue
		}
		entries[t.ID] = &models.StandingsEntry{TeamID: t.ID, TeamName: t.Name}
		order = append(order, t.ID)
	}

	ensure := func(teamID int) *models.StandingsEntry {
		if e, ok := entries[teamID]; ok {
			return e
		}
		e := &models.StandingsEntry{
			TeamID:   teamID,
			TeamName: fmt.Sprintf("Team %d", teamID),
		}
		entries[teamID] = e
		order = append(order, teamID)
		return e
	}

	for _, m := range matches {
		if !countsForTable(m) {
			continue
		}
		home := ensure(*m.HomeTeamID)
		away := ensure(*m.AwayTeamID)

		home.Played++
		away.Played++
		home.GoalsFor += *m.HomeScore
		home.GoalsAgainst += *m.AwayScore
		away.GoalsFor += *m.AwayScore
		away.GoalsAgainst += *m.HomeScore

		switch {
		case *m.HomeScore > *m.AwayScore:
			home.Wins++
			home.Points += 3
			away.Losses++
		case *m.HomeScore < *m.AwayScore:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}

		// Recomputed rather than accumulated so the invariant GD == GF-GA
		// cannot drift.
		home.GoalDiff = home.GoalsFor - home.GoalsAgainst
		away.GoalDiff = away.GoalsFor - away.GoalsAgainst
	}

	table := make([]models.StandingsEntry, 0, len(order))
	for _, id := range order {
		table = append(table, *entries[id])
	}

	// Points, then goal difference, then goals for. Stable: full ties keep
	// input order. Head-to-head and disciplinary tie-breaks are out of scope.
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].GoalDiff != table[j].GoalDiff {
			return table[i].GoalDiff > table[j].GoalDiff
		}
		return table[i].GoalsFor > table[j].GoalsFor
	})

	for i := range table {
		table[i].Rank = i + 1
	}
	return table
}

// countsForTable reports whether a match contributes to the standings. A
// "completed" match missing a team reference or a score is malformed and is
// skipped rather than rejected.
func countsForTable(m models.Match) bool {
	if m.Status != models.MatchCompleted {
		return false
	}
	if m.HomeTeamID == nil || m.AwayTeamID == nil {
		return false
	}
	return m.HomeScore != nil && m.AwayScore != nil
}
