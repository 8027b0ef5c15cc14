package services

import (
	"context"
	"errors"

	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
)

type EntryService interface {
	RegisterTeam(ctx context.Context, currentUserID, tournamentID, teamID int) (*models.Entry, error)
	ListEntries(ctx context.Context, tournamentID int, status *models.EntryStatus) ([]models.Entry, error)
	DecideEntry(ctx context.Context, currentUserID, entryID int, approve bool) (*models.Entry, error)
	WithdrawEntry(ctx context.Context, currentUserID, entryID int) error
}

type entryService struct {
	entryRepo      repositories.EntryRepository
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
	auth           Authorizer
}

func NewEntryService(
	entryRepo repositories.EntryRepository,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	auth Authorizer,
) EntryService {
	return &entryService{
		entryRepo:      entryRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		auth:           auth,
	}
}

// RegisterTeam files a pending entry. Only the team captain can register
// their team, and the tournament must still be in its registration window.
func (s *entryService) RegisterTeam(ctx context.Context, currentUserID, tournamentID, teamID int) (*models.Entry, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, upstream("load tournament", err)
	}
	if tournament.Status != models.StatusRegistration {
		return nil, ErrValidationFailed
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, upstream("load team", err)
	}
	if team.CaptainID != currentUserID {
		return nil, ErrCaptainActionForbidden
	}

	entry := &models.Entry{
		TournamentID: tournamentID,
		TeamID:       teamID,
		Status:       models.EntryPending,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEntryConflict):
			return nil, ErrEntryConflict
		case errors.Is(err, repositories.ErrEntryInvalid):
			return nil, ErrValidationFailed
		}
		return nil, upstream("create entry", err)
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, tournamentID int, status *models.EntryStatus) ([]models.Entry, error) {
	entries, err := s.entryRepo.ListByTournament(ctx, tournamentID, status, true)
	if err != nil {
		return nil, upstream("list entries", err)
	}
	return entries, nil
}

// DecideEntry confirms or rejects a pending entry. Creator only.
func (s *entryService) DecideEntry(ctx context.Context, currentUserID, entryID int, approve bool) (*models.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, upstream("load entry", err)
	}

	isCreator, err := s.auth.IsCreator(ctx, currentUserID, entry.TournamentID)
	if err != nil {
		return nil, err
	}
	if !isCreator {
		return nil, ErrNotTournamentCreator
	}

	if entry.Status != models.EntryPending {
		return nil, ErrEntryNotPending
	}

	status := models.EntryRejected
	if approve {
		status = models.EntryConfirmed
	}
	if err := s.entryRepo.UpdateStatus(ctx, entryID, status); err != nil {
		return nil, upstream("update entry status", err)
	}
	entry.Status = status
	return entry, nil
}

// WithdrawEntry removes a registration. Allowed for the team captain or the
// tournament creator.
func (s *entryService) WithdrawEntry(ctx context.Context, currentUserID, entryID int) error {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return upstream("load entry", err)
	}

	team, err := s.teamRepo.GetByID(ctx, entry.TeamID)
	if err != nil && !errors.Is(err, repositories.ErrTeamNotFound) {
		return upstream("load team", err)
	}

	allowed := team != nil && team.CaptainID == currentUserID
	if !allowed {
		isCreator, err := s.auth.IsCreator(ctx, currentUserID, entry.TournamentID)
		if err != nil {
			return err
		}
		allowed = isCreator
	}
	if !allowed {
		return ErrForbiddenOperation
	}

	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return upstream("delete entry", err)
	}
	return nil
}
