package services

import (
	"context"
	"testing"

	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeamRepo struct {
	repositories.TeamRepository
	teams []models.Team
}

func (f *fakeTeamRepo) ListByTournament(_ context.Context, _ int) ([]models.Team, error) {
	return f.teams, nil
}

func TestGetTableTournamentNotFound(t *testing.T) {
	svc := NewStandingsService(
		&fakeTournamentRepo{tournaments: map[int]*models.Tournament{}},
		&fakeTeamRepo{},
		&fakeMatchRepo{},
		&fakeEntryRepo{},
	)

	_, err := svc.GetTable(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGetTableComputesFromCompletedMatches(t *testing.T) {
	tournamentRepo := &fakeTournamentRepo{tournaments: map[int]*models.Tournament{
		1: {ID: 1, Format: models.FormatSingleElimination},
	}}
	teamRepo := &fakeTeamRepo{teams: []models.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
	}}
	home, away := 1, 2
	three, one := 3, 1
	matchRepo := &fakeMatchRepo{created: []models.Match{
		{TournamentID: 1, HomeTeamID: &home, AwayTeamID: &away, Status: models.MatchCompleted, HomeScore: &three, AwayScore: &one},
		{TournamentID: 1, HomeTeamID: &home, AwayTeamID: &away, Status: models.MatchScheduled},
	}}

	svc := NewStandingsService(tournamentRepo, teamRepo, matchRepo, &fakeEntryRepo{})

	table, err := svc.GetTable(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, table, 2)

	assert.Equal(t, "Alpha", table[0].TeamName)
	assert.Equal(t, 3, table[0].Points)
	assert.Equal(t, 1, table[0].Played, "scheduled match excluded")
	assert.Equal(t, models.ZoneDirect, table[0].Zone)
	assert.Equal(t, models.ZoneDirect, table[1].Zone, "two-team league fits the bracket")
}

func TestGetClassificationReferenceLeague(t *testing.T) {
	tournamentRepo := &fakeTournamentRepo{tournaments: map[int]*models.Tournament{
		1: {ID: 1},
	}}
	entries := make([]models.Entry, 0, 13)
	for i := 1; i <= 13; i++ {
		entries = append(entries, models.Entry{TournamentID: 1, TeamID: i, Status: models.EntryConfirmed})
	}
	// Pending entries must not count toward the plan.
	entries = append(entries, models.Entry{TournamentID: 1, TeamID: 99, Status: models.EntryPending})

	svc := NewStandingsService(tournamentRepo, &fakeTeamRepo{}, &fakeMatchRepo{}, &fakeEntryRepo{entries: entries})

	plan, err := svc.GetClassification(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 13, plan.TeamCount)
	assert.Equal(t, 6, plan.DirectSlots)
	assert.Equal(t, 4, plan.RepechageSlots)
	assert.Equal(t, 3, plan.EliminatedSlots)
}
