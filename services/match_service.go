package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pprado/futsal-league/brackets"
	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
)

type MatchService interface {
	ListMatchesByTournament(ctx context.Context, tournamentID int) ([]models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	RecordResult(ctx context.Context, currentUserID, matchID int, input RecordResultInput) (*models.Match, error)
}

type RecordResultInput struct {
	HomeScore int     `json:"home_score"`
	AwayScore int     `json:"away_score"`
	Note      *string `json:"note,omitempty"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	auth      Authorizer
	hub       *brackets.Hub
	logger    *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	auth Authorizer,
	hub *brackets.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		auth:      auth,
		hub:       hub,
		logger:    logger,
	}
}

func (s *matchService) ListMatchesByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, nil)
	if err != nil {
		return nil, upstream("list matches", err)
	}
	return matches, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, upstream("load match", err)
	}
	return match, nil
}

// RecordResult completes a scheduled or in-progress match with a final
// score. Creator only. Completed and cancelled matches are immutable; score
// entry for them is a correction workflow this service does not support.
func (s *matchService) RecordResult(ctx context.Context, currentUserID, matchID int, input RecordResultInput) (*models.Match, error) {
	match, err := s.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	isCreator, err := s.auth.IsCreator(ctx, currentUserID, match.TournamentID)
	if err != nil {
		return nil, err
	}
	if !isCreator {
		return nil, ErrNotTournamentCreator
	}

	if match.Status != models.MatchScheduled && match.Status != models.MatchInProgress {
		return nil, ErrMatchNotEditable
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return nil, ErrNegativeScore
	}

	match.Status = models.MatchCompleted
	match.HomeScore = &input.HomeScore
	match.AwayScore = &input.AwayScore
	if input.Note != nil {
		match.Note = input.Note
	}

	if err := s.matchRepo.UpdateResult(ctx, nil, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, upstream("update match result", err)
	}

	s.logger.Info("match result recorded",
		slog.Int("match_id", match.ID),
		slog.Int("tournament_id", match.TournamentID),
		slog.Int("home_score", input.HomeScore),
		slog.Int("away_score", input.AwayScore),
	)

	if s.hub != nil {
		s.hub.BroadcastToRoom(tournamentRoom(match.TournamentID), brackets.Message{
			Type:    brackets.EventMatchUpdated,
			Payload: match,
			RoomID:  tournamentRoom(match.TournamentID),
		})
	}

	return match, nil
}
