package services

import (
	"context"
	"errors"

	"github.com/pprado/futsal-league/repositories"
)

// Authorizer answers ownership questions for operations that are restricted
// to a tournament's creator. Factored into one collaborator instead of
// per-handler conditionals so callers check it exactly once.
type Authorizer interface {
	IsCreator(ctx context.Context, userID, tournamentID int) (bool, error)
}

type creatorAuthorizer struct {
	tournamentRepo repositories.TournamentRepository
}

func NewCreatorAuthorizer(tournamentRepo repositories.TournamentRepository) Authorizer {
	return &creatorAuthorizer{tournamentRepo: tournamentRepo}
}

func (a *creatorAuthorizer) IsCreator(ctx context.Context, userID, tournamentID int) (bool, error) {
	t, err := a.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return false, ErrTournamentNotFound
		}
		return false, upstream("load tournament for authorization", err)
	}
	return t.CreatorID == userID, nil
}
