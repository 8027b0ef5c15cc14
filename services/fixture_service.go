package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pprado/futsal-league/brackets"
	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
)

// FixtureService turns a tournament's confirmed entries into its opening
// round of matches.
type FixtureService interface {
	GenerateFixture(ctx context.Context, currentUserID, tournamentID int) ([]models.Match, error)
}

type fixtureService struct {
	tx             TxRunner
	tournamentRepo repositories.TournamentRepository
	entryRepo      repositories.EntryRepository
	matchRepo      repositories.MatchRepository
	auth           Authorizer
	hub            *brackets.Hub
	logger         *slog.Logger
}

func NewFixtureService(
	tx TxRunner,
	tournamentRepo repositories.TournamentRepository,
	entryRepo repositories.EntryRepository,
	matchRepo repositories.MatchRepository,
	auth Authorizer,
	hub *brackets.Hub,
	logger *slog.Logger,
) FixtureService {
	return &fixtureService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		entryRepo:      entryRepo,
		matchRepo:      matchRepo,
		auth:           auth,
		hub:            hub,
		logger:         logger,
	}
}

// GenerateFixture validates preconditions in order, short-circuiting on the
// first failure: tournament exists, caller created it, at least one confirmed
// entry, single-elimination format. It then drafts the first round and
// persists every draft in one transaction, so a failed insert leaves no
// partial fixture behind.
//
// There is deliberately no "fixture already exists" guard: two concurrent
// calls for the same tournament can both pass the checks and both write a
// fixture. Callers that need exactly-once generation must serialize.
func (s *fixtureService) GenerateFixture(ctx context.Context, currentUserID, tournamentID int) ([]models.Match, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, upstream("load tournament", err)
	}

	isCreator, err := s.auth.IsCreator(ctx, currentUserID, tournamentID)
	if err != nil {
		return nil, err
	}
	if !isCreator {
		return nil, ErrNotTournamentCreator
	}

	confirmed := models.EntryConfirmed
	entries, err := s.entryRepo.ListByTournament(ctx, tournamentID, &confirmed, true)
	if err != nil {
		return nil, upstream("list confirmed entries", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoConfirmedEntries
	}

	if tournament.Format != models.FormatSingleElimination {
		return nil, fmt.Errorf("%w: %s", ErrFormatNotImplemented, tournament.Format)
	}

	seeds := make([]brackets.SeedEntry, 0, len(entries))
	for _, e := range entries {
		name := fmt.Sprintf("Team %d", e.TeamID)
		if e.Team != nil && e.Team.Name != "" {
			name = e.Team.Name
		}
		seeds = append(seeds, brackets.SeedEntry{TeamID: e.TeamID, Name: name})
	}

	drafts := brackets.GenerateFirstRound(tournamentID, seeds)

	var matches []models.Match
	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		var txErr error
		matches, txErr = s.matchRepo.CreateBatch(ctx, exec, tournamentID, drafts)
		return txErr
	})
	if err != nil {
		return nil, upstream("persist fixture", err)
	}

	s.logger.Info("fixture generated",
		slog.Int("tournament_id", tournamentID),
		slog.Int("entries", len(entries)),
		slog.Int("matches", len(matches)),
	)

	if s.hub != nil {
		s.hub.BroadcastToRoom(tournamentRoom(tournamentID), brackets.Message{
			Type:    brackets.EventFixtureGenerated,
			Payload: matches,
			RoomID:  tournamentRoom(tournamentID),
		})
	}

	return matches, nil
}

func tournamentRoom(tournamentID int) string {
	return fmt.Sprintf("tournament_%d", tournamentID)
}
