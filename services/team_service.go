package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/repositories"
	"github.com/pprado/futsal-league/storage"
)

type TeamService interface {
	CreateTeam(ctx context.Context, captainID int, input CreateTeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	UpdateTeam(ctx context.Context, currentUserID, teamID int, input UpdateTeamInput) (*models.Team, error)
	UploadLogo(ctx context.Context, currentUserID, teamID int, contentType string, body io.Reader) (*models.Team, error)
	DeleteTeam(ctx context.Context, currentUserID, teamID int) error
}

type CreateTeamInput struct {
	Name string `json:"name"`
}

type UpdateTeamInput struct {
	Name *string `json:"name,omitempty"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, uploader storage.FileUploader) TeamService {
	return &teamService{teamRepo: teamRepo, uploader: uploader}
}

func (s *teamService) CreateTeam(ctx context.Context, captainID int, input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{Name: name, CaptainID: captainID}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, upstream("create team", err)
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, upstream("load team", err)
	}
	populateTeamLogoURL(team, s.uploader)
	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, currentUserID, teamID int, input UpdateTeamInput) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CaptainID != currentUserID {
		return nil, ErrCaptainActionForbidden
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTeamNameRequired
		}
		team.Name = name
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, upstream("update team", err)
	}
	return team, nil
}

func (s *teamService) UploadLogo(ctx context.Context, currentUserID, teamID int, contentType string, body io.Reader) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CaptainID != currentUserID {
		return nil, ErrCaptainActionForbidden
	}
	if s.uploader == nil {
		return nil, upstream("upload team logo", errObjectStorageNotConfigured)
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	key := fmt.Sprintf("teams/%d/logo%s", teamID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, upstream("upload team logo", err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, upstream("save team logo key", err)
	}
	team.LogoKey = &result.Key
	populateTeamLogoURL(team, s.uploader)
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, currentUserID, teamID int) error {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CaptainID != currentUserID {
		return ErrCaptainActionForbidden
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return upstream("delete team", err)
	}
	return nil
}
