package services

import (
	"context"
	"errors"

	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
	"github.com/pprado/futsal-league/standings"
	"golang.org/x/sync/errgroup"
)

// StandingsService serves the league table and the qualification plan. The
// table is recomputed from scratch on every read; there is no cached or
// incremental path.
type StandingsService interface {
	GetTable(ctx context.Context, tournamentID int) ([]models.StandingsEntry, error)
	GetClassification(ctx context.Context, tournamentID int) (models.ClassificationPlan, error)
}

type standingsService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
	entryRepo      repositories.EntryRepository
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	entryRepo repositories.EntryRepository,
) StandingsService {
	return &standingsService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		entryRepo:      entryRepo,
	}
}

func (s *standingsService) GetTable(ctx context.Context, tournamentID int) ([]models.StandingsEntry, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, upstream("load tournament", err)
	}

	var (
		teams   []models.Team
		matches []models.Match
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gCtx, tournamentID, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, upstream("load standings inputs", err)
	}

	table := standings.Compute(teams, matches)
	return standings.ApplyZones(table), nil
}

func (s *standingsService) GetClassification(ctx context.Context, tournamentID int) (models.ClassificationPlan, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return models.ClassificationPlan{}, ErrTournamentNotFound
		}
		return models.ClassificationPlan{}, upstream("load tournament", err)
	}

	confirmed := models.EntryConfirmed
	entries, err := s.entryRepo.ListByTournament(ctx, tournamentID, &confirmed, false)
	if err != nil {
		return models.ClassificationPlan{}, upstream("list confirmed entries", err)
	}

	return standings.Classify(len(entries)), nil
}
