package services

import (
	"errors"
	"fmt"
)

// Shared errors used across services and the HTTP mapping layer. Each group
// maps to a stable status code so API consumers can tell "not your
// tournament" from "tournament not ready" from "format unsupported".
var (
	// Not found
	ErrNotFound           = errors.New("requested resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrMatchNotFound      = errors.New("match not found")

	// Validation and business rules
	ErrValidationFailed        = errors.New("validation failed")
	ErrPasswordTooShort        = errors.New("password is too short")
	ErrTeamNameRequired        = errors.New("team name is required")
	ErrTournamentNameRequired  = errors.New("tournament name is required")
	ErrTournamentInvalidDates  = errors.New("tournament end date must be after start date")
	ErrTournamentInvalidFormat = errors.New("invalid tournament format provided")
	ErrNoConfirmedEntries      = errors.New("tournament has no confirmed entries")
	ErrEntryNotPending         = errors.New("entry has already been decided")
	ErrNegativeScore           = errors.New("match scores must be non-negative")
	ErrMatchNotEditable        = errors.New("match result can no longer be changed")

	// Conflicts
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrTeamNameConflict       = errors.New("team name is already in use")
	ErrTournamentNameConflict = errors.New("tournament name already exists")
	ErrEntryConflict          = errors.New("team is already registered for this tournament")
	ErrTournamentInUse        = errors.New("tournament has entries or matches and cannot be deleted")

	// Authentication and authorization
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")
	ErrNotTournamentCreator   = errors.New("only the tournament creator can perform this action")
	ErrCaptainActionForbidden = errors.New("only the team captain can perform this action")

	// Unsupported formats
	ErrFormatNotImplemented = errors.New("fixture generation is not implemented for this format")

	// External collaborators (database, object storage) failed or returned
	// malformed data. Always wrapped, never leaked raw to the client.
	ErrUpstreamFailure = errors.New("upstream dependency failed")
)

// Logo uploads require object storage credentials at startup.
var errObjectStorageNotConfigured = errors.New("object storage is not configured")

// upstream tags an infrastructure error so the HTTP layer maps it to a 500
// without exposing driver details.
func upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstreamFailure, op, err)
}
