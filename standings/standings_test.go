package standings

import (
	"testing"

	"github.com/pprado/futsal-league/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedMatch(home, away, homeScore, awayScore int) models.Match {
	return models.Match{
		HomeTeamID: &home,
		AwayTeamID: &away,
		Status:     models.MatchCompleted,
		HomeScore:  &homeScore,
		AwayScore:  &awayScore,
	}
}

func TestComputeEmptyInput(t *testing.T) {
	table := Compute(nil, nil)
	assert.Empty(t, table)
}

func TestComputeBasicTable(t *testing.T) {
	teams := []models.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
		{ID: 3, Name: "Charlie"},
	}
	matches := []models.Match{
		completedMatch(1, 2, 3, 1), // Alpha beats Bravo
		completedMatch(2, 3, 2, 2), // draw
	}

	table := Compute(teams, matches)
	require.Len(t, table, 3)

	assert.Equal(t, 1, table[0].TeamID)
	assert.Equal(t, 3, table[0].Points)
	assert.Equal(t, 1, table[0].Played)
	assert.Equal(t, 1, table[0].Rank)

	// Bravo and Charlie both have 1 point; Bravo's GD (-2+1=-1) vs
	// Charlie's 0 puts Charlie second.
	assert.Equal(t, 3, table[1].TeamID)
	assert.Equal(t, 1, table[1].Points)
	assert.Equal(t, 2, table[1].Rank)
	assert.Equal(t, 2, table[2].TeamID)
	assert.Equal(t, 3, table[2].Rank)
}

func TestComputeExcludesNonCompleted(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	scheduled := models.Match{
		HomeTeamID: ptr(1), AwayTeamID: ptr(2),
		Status: models.MatchScheduled,
	}
	cancelled := models.Match{
		HomeTeamID: ptr(1), AwayTeamID: ptr(2),
		Status:    models.MatchCancelled,
		HomeScore: ptr(5), AwayScore: ptr(0),
	}
	matches := []models.Match{
		completedMatch(1, 2, 3, 1),
		scheduled,
		cancelled,
	}

	table := Compute(teams, matches)
	require.Len(t, table, 2)

	a, b := table[0], table[1]
	assert.Equal(t, 1, a.TeamID)
	assert.Equal(t, 1, a.Played)
	assert.Equal(t, 3, a.Points)
	assert.Equal(t, 3, a.GoalsFor)
	assert.Equal(t, 1, a.GoalsAgainst)
	assert.Equal(t, 2, a.GoalDiff)

	assert.Equal(t, 2, b.TeamID)
	assert.Equal(t, 1, b.Played)
	assert.Equal(t, 0, b.Points)
	assert.Equal(t, 1, b.GoalsFor)
	assert.Equal(t, 3, b.GoalsAgainst)
	assert.Equal(t, -2, b.GoalDiff)
}

func TestComputeSkipsMalformedCompletedMatch(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	missingScore := models.Match{
		HomeTeamID: ptr(1), AwayTeamID: ptr(2),
		Status:    models.MatchCompleted,
		HomeScore: ptr(2), // away score missing
	}
	missingTeam := models.Match{
		HomeTeamID: ptr(1),
		Status:     models.MatchCompleted,
		HomeScore:  ptr(1), AwayScore: ptr(0),
	}

	table := Compute(teams, []models.Match{missingScore, missingTeam})
	require.Len(t, table, 2)
	for _, e := range table {
		assert.Zero(t, e.Played)
		assert.Zero(t, e.Points)
	}
}

func TestComputeSynthesizesUnknownTeams(t *testing.T) {
	// Team 7 appears only in a match record; it must not be dropped.
	teams := []models.Team{{ID: 1, Name: "A"}}
	table := Compute(teams, []models.Match{completedMatch(7, 1, 2, 0)})

	require.Len(t, table, 2)
	assert.Equal(t, 7, table[0].TeamID)
	assert.Equal(t, "Team 7", table[0].TeamName)
	assert.Equal(t, 3, table[0].Points)
}

func TestComputeStableOrderOnFullTie(t *testing.T) {
	teams := []models.Team{
		{ID: 5, Name: "First"},
		{ID: 3, Name: "Second"},
		{ID: 9, Name: "Third"},
	}

	table := Compute(teams, nil)
	require.Len(t, table, 3)

	// All-zero stats: input order is preserved, ranks stay consecutive.
	assert.Equal(t, []int{5, 3, 9}, []int{table[0].TeamID, table[1].TeamID, table[2].TeamID})
	assert.Equal(t, []int{1, 2, 3}, []int{table[0].Rank, table[1].Rank, table[2].Rank})
}

func TestComputeDeterministic(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	matches := []models.Match{
		completedMatch(1, 2, 1, 1),
		completedMatch(2, 3, 0, 0),
		completedMatch(3, 1, 2, 2),
	}

	first := Compute(teams, matches)
	second := Compute(teams, matches)
	assert.Equal(t, first, second)
}

func TestComputeInvariants(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	matches := []models.Match{
		completedMatch(1, 2, 4, 2),
		completedMatch(2, 3, 1, 1),
		completedMatch(3, 1, 0, 3),
		completedMatch(1, 3, 2, 2),
	}

	for _, e := range Compute(teams, matches) {
		assert.Equal(t, e.GoalsFor-e.GoalsAgainst, e.GoalDiff, "team %d", e.TeamID)
		assert.LessOrEqual(t, e.Points, 3*e.Played, "team %d", e.TeamID)
		assert.GreaterOrEqual(t, e.Points, 0, "team %d", e.TeamID)
		assert.Equal(t, e.Played, e.Wins+e.Draws+e.Losses, "team %d", e.TeamID)
	}
}

func ptr(v int) *int { return &v }
