package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTournamentRepo struct {
	repositories.TournamentRepository
	tournaments map[int]*models.Tournament
	err         error
}

func (f *fakeTournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return t, nil
}

type fakeEntryRepo struct {
	repositories.EntryRepository
	entries []models.Entry
	err     error
}

func (f *fakeEntryRepo) ListByTournament(_ context.Context, tournamentID int, status *models.EntryStatus, _ bool) ([]models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Entry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.TournamentID != tournamentID {
			continue
		}
		if status != nil && e.Status != *status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeMatchRepo struct {
	repositories.MatchRepository
	created   []models.Match
	createErr error
}

func (f *fakeMatchRepo) CreateBatch(_ context.Context, _ repositories.SQLExecutor, tournamentID int, drafts []models.MatchDraft) ([]models.Match, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	matches := make([]models.Match, 0, len(drafts))
	for i, d := range drafts {
		matches = append(matches, models.Match{
			ID:           i + 1,
			TournamentID: tournamentID,
			HomeTeamID:   d.HomeTeamID,
			AwayTeamID:   d.AwayTeamID,
			Status:       d.Status,
			HomeScore:    d.HomeScore,
			AwayScore:    d.AwayScore,
			Round:        d.Round,
			Note:         d.Note,
		})
	}
	f.created = append(f.created, matches...)
	return matches, nil
}

func (f *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID int, _ *models.MatchStatus) ([]models.Match, error) {
	out := make([]models.Match, 0)
	for _, m := range f.created {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner runs the unit of work without a database; commit/rollback
// behavior is the repo fake's concern in these tests.
type fakeTxRunner struct{}

func (fakeTxRunner) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func confirmedEntry(tournamentID, teamID int, name string) models.Entry {
	return models.Entry{
		TournamentID: tournamentID,
		TeamID:       teamID,
		Status:       models.EntryConfirmed,
		Team:         &models.Team{ID: teamID, Name: name},
	}
}

func newFixtureFixture(t *models.Tournament, entries []models.Entry) (*fakeMatchRepo, FixtureService) {
	tournamentRepo := &fakeTournamentRepo{tournaments: map[int]*models.Tournament{}}
	if t != nil {
		tournamentRepo.tournaments[t.ID] = t
	}
	entryRepo := &fakeEntryRepo{entries: entries}
	matchRepo := &fakeMatchRepo{}
	auth := NewCreatorAuthorizer(tournamentRepo)
	svc := NewFixtureService(fakeTxRunner{}, tournamentRepo, entryRepo, matchRepo, auth, nil, testLogger())
	return matchRepo, svc
}

func TestGenerateFixtureTournamentNotFound(t *testing.T) {
	_, svc := newFixtureFixture(nil, nil)

	_, err := svc.GenerateFixture(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGenerateFixtureForbidden(t *testing.T) {
	tournament := &models.Tournament{ID: 1, CreatorID: 10, Format: models.FormatSingleElimination}
	_, svc := newFixtureFixture(tournament, []models.Entry{confirmedEntry(1, 1, "A")})

	_, err := svc.GenerateFixture(context.Background(), 11, 1)
	assert.ErrorIs(t, err, ErrNotTournamentCreator)
}

func TestGenerateFixtureNoConfirmedEntries(t *testing.T) {
	tournament := &models.Tournament{ID: 1, CreatorID: 10, Format: models.FormatSingleElimination}
	pending := models.Entry{TournamentID: 1, TeamID: 1, Status: models.EntryPending}
	_, svc := newFixtureFixture(tournament, []models.Entry{pending})

	_, err := svc.GenerateFixture(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrNoConfirmedEntries)
}

func TestGenerateFixtureUnsupportedFormat(t *testing.T) {
	tournament := &models.Tournament{ID: 1, CreatorID: 10, Format: models.FormatRoundRobin}
	_, svc := newFixtureFixture(tournament, []models.Entry{confirmedEntry(1, 1, "A")})

	_, err := svc.GenerateFixture(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrFormatNotImplemented)
}

func TestGenerateFixtureThreeEntries(t *testing.T) {
	tournament := &models.Tournament{ID: 5, CreatorID: 10, Format: models.FormatSingleElimination}
	entries := []models.Entry{
		confirmedEntry(5, 1, "Alpha"),
		confirmedEntry(5, 2, "Bravo"),
		confirmedEntry(5, 3, "Charlie"),
	}
	matchRepo, svc := newFixtureFixture(tournament, entries)

	matches, err := svc.GenerateFixture(context.Background(), 10, 5)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	bye := matches[0]
	assert.Equal(t, models.MatchCompleted, bye.Status)
	require.NotNil(t, bye.HomeTeamID)
	assert.Equal(t, 1, *bye.HomeTeamID)
	assert.Nil(t, bye.AwayTeamID)
	require.NotNil(t, bye.Note)
	assert.Contains(t, *bye.Note, "Alpha")
	assert.Equal(t, "Round 1", bye.Round)

	pairing := matches[1]
	assert.Equal(t, models.MatchScheduled, pairing.Status)
	assert.Equal(t, 2, *pairing.HomeTeamID)
	assert.Equal(t, 3, *pairing.AwayTeamID)
	assert.Equal(t, "Round 1", pairing.Round)

	assert.Len(t, matchRepo.created, 2, "all drafts persisted")
}

func TestGenerateFixturePlaceholderName(t *testing.T) {
	tournament := &models.Tournament{ID: 1, CreatorID: 10, Format: models.FormatSingleElimination}
	entries := []models.Entry{
		{TournamentID: 1, TeamID: 7, Status: models.EntryConfirmed}, // no team loaded
		confirmedEntry(1, 2, "Bravo"),
		confirmedEntry(1, 3, "Charlie"),
	}
	_, svc := newFixtureFixture(tournament, entries)

	matches, err := svc.GenerateFixture(context.Background(), 10, 1)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.NotNil(t, matches[0].Note)
	assert.Contains(t, *matches[0].Note, "Team 7")
}

func TestGenerateFixtureNotIdempotent(t *testing.T) {
	// Duplicate generation is the current contract: no uniqueness guard.
	tournament := &models.Tournament{ID: 1, CreatorID: 10, Format: models.FormatSingleElimination}
	entries := []models.Entry{confirmedEntry(1, 1, "A"), confirmedEntry(1, 2, "B")}
	matchRepo, svc := newFixtureFixture(tournament, entries)

	_, err := svc.GenerateFixture(context.Background(), 10, 1)
	require.NoError(t, err)
	_, err = svc.GenerateFixture(context.Background(), 10, 1)
	require.NoError(t, err)

	assert.Len(t, matchRepo.created, 2, "both runs persisted a fixture")
}

func TestGenerateFixturePersistFailureIsUpstream(t *testing.T) {
	tournamentRepo := &fakeTournamentRepo{tournaments: map[int]*models.Tournament{
		1: {ID: 1, CreatorID: 10, Format: models.FormatSingleElimination},
	}}
	entryRepo := &fakeEntryRepo{entries: []models.Entry{confirmedEntry(1, 1, "A"), confirmedEntry(1, 2, "B")}}
	matchRepo := &fakeMatchRepo{createErr: errors.New("connection reset")}
	svc := NewFixtureService(fakeTxRunner{}, tournamentRepo, entryRepo, matchRepo, NewCreatorAuthorizer(tournamentRepo), nil, testLogger())

	_, err := svc.GenerateFixture(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
	assert.Empty(t, matchRepo.created)
}
