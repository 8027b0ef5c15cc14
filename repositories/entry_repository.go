package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/pprado/futsal-league/models"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrEntryConflict = errors.New("team is already registered for this tournament")
	ErrEntryInvalid  = errors.New("entry references an unknown team or tournament")
)

type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	GetByID(ctx context.Context, id int) (*models.Entry, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.EntryStatus, withTeams bool) ([]models.Entry, error)
	UpdateStatus(ctx context.Context, id int, status models.EntryStatus) error
	Delete(ctx context.Context, id int) error
}

type postgresEntryRepository struct {
	db *sql.DB
}

func NewPostgresEntryRepository(db *sql.DB) EntryRepository {
	return &postgresEntryRepository{db: db}
}

func (r *postgresEntryRepository) Create(ctx context.Context, e *models.Entry) error {
	query := `
		INSERT INTO entries (tournament_id, team_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, e.TournamentID, e.TeamID, e.Status).Scan(&e.ID, &e.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return ErrEntryConflict
		case "foreign_key_violation":
			return ErrEntryInvalid
		}
	}
	return err
}

func (r *postgresEntryRepository) GetByID(ctx context.Context, id int) (*models.Entry, error) {
	query := `
		SELECT id, tournament_id, team_id, status, created_at
		FROM entries
		WHERE id = $1`

	e := &models.Entry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.TournamentID, &e.TeamID, &e.Status, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return e, nil
}

// ListByTournament returns entries in registration order; with a status
// filter that order is the seeding order fixture generation relies on.
func (r *postgresEntryRepository) ListByTournament(ctx context.Context, tournamentID int, status *models.EntryStatus, withTeams bool) ([]models.Entry, error) {
	query := `
		SELECT e.id, e.tournament_id, e.team_id, e.status, e.created_at`
	if withTeams {
		query += `, t.id, t.name, t.captain_id, t.logo_key, t.created_at`
	}
	query += `
		FROM entries e`
	if withTeams {
		query += `
		JOIN teams t ON t.id = e.team_id`
	}
	query += `
		WHERE e.tournament_id = $1`

	args := []interface{}{tournamentID}
	if status != nil {
		query += ` AND e.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY e.created_at ASC, e.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		var e models.Entry
		if withTeams {
			var t models.Team
			if err := rows.Scan(
				&e.ID, &e.TournamentID, &e.TeamID, &e.Status, &e.CreatedAt,
				&t.ID, &t.Name, &t.CaptainID, &t.LogoKey, &t.CreatedAt,
			); err != nil {
				return nil, err
			}
			e.Team = &t
		} else {
			if err := rows.Scan(&e.ID, &e.TournamentID, &e.TeamID, &e.Status, &e.CreatedAt); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresEntryRepository) UpdateStatus(ctx context.Context, id int, status models.EntryStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE entries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEntryNotFound)
}

func (r *postgresEntryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEntryNotFound)
}
