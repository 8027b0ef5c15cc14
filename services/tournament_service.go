package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
	"github.com/pprado/futsal-league/storage"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, creatorID int, input CreateTournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, currentUserID, tournamentID int, input UpdateTournamentInput) (*models.Tournament, error)
	UploadLogo(ctx context.Context, currentUserID, tournamentID int, contentType string, body io.Reader) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, currentUserID, tournamentID int) error
}

type CreateTournamentInput struct {
	Name        string                  `json:"name"`
	Description *string                 `json:"description,omitempty"`
	Format      models.TournamentFormat `json:"format"`
	StartDate   time.Time               `json:"start_date"`
	EndDate     time.Time               `json:"end_date"`
}

type UpdateTournamentInput struct {
	Name        *string                  `json:"name,omitempty"`
	Description *string                  `json:"description,omitempty"`
	Format      *models.TournamentFormat `json:"format,omitempty"`
	Status      *models.TournamentStatus `json:"status,omitempty"`
	StartDate   *time.Time               `json:"start_date,omitempty"`
	EndDate     *time.Time               `json:"end_date,omitempty"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	auth           Authorizer
	uploader       storage.FileUploader
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	auth Authorizer,
	uploader storage.FileUploader,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		auth:           auth,
		uploader:       uploader,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, creatorID int, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if !isValidFormat(input.Format) {
		return nil, fmt.Errorf("%w: %q", ErrTournamentInvalidFormat, input.Format)
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, ErrTournamentInvalidDates
	}

	tournament := &models.Tournament{
		Name:        name,
		Description: input.Description,
		CreatorID:   creatorID,
		Format:      input.Format,
		Status:      models.StatusRegistration,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, upstream("create tournament", err)
	}
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, upstream("load tournament", err)
	}
	populateTournamentLogoURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, upstream("list tournaments", err)
	}
	for i := range tournaments {
		populateTournamentLogoURL(&tournaments[i], s.uploader)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, currentUserID, tournamentID int, input UpdateTournamentInput) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	if err := s.requireCreator(ctx, currentUserID, tournamentID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTournamentNameRequired
		}
		tournament.Name = name
	}
	if input.Description != nil {
		tournament.Description = input.Description
	}
	if input.Format != nil {
		if !isValidFormat(*input.Format) {
			return nil, fmt.Errorf("%w: %q", ErrTournamentInvalidFormat, *input.Format)
		}
		tournament.Format = *input.Format
	}
	if input.Status != nil {
		tournament.Status = *input.Status
	}
	if input.StartDate != nil {
		tournament.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		tournament.EndDate = *input.EndDate
	}
	if !tournament.StartDate.Before(tournament.EndDate) {
		return nil, ErrTournamentInvalidDates
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, upstream("update tournament", err)
	}
	return tournament, nil
}

func (s *tournamentService) UploadLogo(ctx context.Context, currentUserID, tournamentID int, contentType string, body io.Reader) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCreator(ctx, currentUserID, tournamentID); err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, upstream("upload tournament logo", errObjectStorageNotConfigured)
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	key := fmt.Sprintf("tournaments/%d/logo%s", tournamentID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, upstream("upload tournament logo", err)
	}

	if err := s.tournamentRepo.UpdateLogoKey(ctx, tournamentID, &result.Key); err != nil {
		return nil, upstream("save tournament logo key", err)
	}
	tournament.LogoKey = &result.Key
	populateTournamentLogoURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, currentUserID, tournamentID int) error {
	if err := s.requireCreator(ctx, currentUserID, tournamentID); err != nil {
		return err
	}

	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		if errors.Is(err, repositories.ErrTournamentInUse) {
			return ErrTournamentInUse
		}
		return upstream("delete tournament", err)
	}
	return nil
}

func (s *tournamentService) requireCreator(ctx context.Context, userID, tournamentID int) error {
	isCreator, err := s.auth.IsCreator(ctx, userID, tournamentID)
	if err != nil {
		return err
	}
	if !isCreator {
		return ErrNotTournamentCreator
	}
	return nil
}
