package services

import (
	"fmt"
	"strings"

	"github.com/pprado/futsal-league/models"
	"github.com/pprado/futsal-league/storage"
)

func populateTeamLogoURL(team *models.Team, uploader storage.FileUploader) {
	if team != nil && team.LogoKey != nil && *team.LogoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*team.LogoKey); url != "" {
			team.LogoURL = &url
		}
	}
}

func populateTournamentLogoURL(t *models.Tournament, uploader storage.FileUploader) {
	if t != nil && t.LogoKey != nil && *t.LogoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*t.LogoKey); url != "" {
			t.LogoURL = &url
		}
	}
}

func extensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && strings.HasPrefix(parts[0], "image") && parts[1] != "" {
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("could not determine file extension from content type %q", contentType)
	}
}

func isValidFormat(f models.TournamentFormat) bool {
	switch f {
	case models.FormatSingleElimination, models.FormatDoubleElimination,
		models.FormatRoundRobin, models.FormatGroups:
		return true
	}
	return false
}
