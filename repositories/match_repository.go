package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/pprado/futsal-league/models"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchInvalid  = errors.New("match references an unknown team or tournament")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	CreateBatch(ctx context.Context, exec SQLExecutor, tournamentID int, drafts []models.MatchDraft) ([]models.Match, error)
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus) ([]models.Match, error)
	UpdateResult(ctx context.Context, exec SQLExecutor, match *models.Match) error
	CountByTournament(ctx context.Context, tournamentID int) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches (tournament_id, home_team_id, away_team_id, status, home_score, away_score, round, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.Status, m.HomeScore, m.AwayScore, m.Round, m.Note,
	).Scan(&m.ID, &m.CreatedAt)

	return r.handleMatchError(err)
}

// CreateBatch inserts every draft of a generated fixture within the supplied
// executor. Callers pass a transaction so a failed insert leaves nothing
// behind.
func (r *postgresMatchRepository) CreateBatch(ctx context.Context, exec SQLExecutor, tournamentID int, drafts []models.MatchDraft) ([]models.Match, error) {
	executor := r.getExecutor(exec)
	matches := make([]models.Match, 0, len(drafts))

	query := `
		INSERT INTO matches (tournament_id, home_team_id, away_team_id, status, home_score, away_score, round, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	for _, d := range drafts {
		m := models.Match{
			TournamentID: tournamentID,
			HomeTeamID:   d.HomeTeamID,
			AwayTeamID:   d.AwayTeamID,
			Status:       d.Status,
			HomeScore:    d.HomeScore,
			AwayScore:    d.AwayScore,
			Round:        d.Round,
			Note:         d.Note,
		}
		err := executor.QueryRowContext(ctx, query,
			m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.Status, m.HomeScore, m.AwayScore, m.Round, m.Note,
		).Scan(&m.ID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("batch insert failed at draft %d/%d: %w", len(matches)+1, len(drafts), r.handleMatchError(err))
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, tournament_id, home_team_id, away_team_id, status, home_score, away_score, round, note, created_at
		FROM matches
		WHERE id = $1`

	m := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.TournamentID, &m.HomeTeamID, &m.AwayTeamID, &m.Status,
		&m.HomeScore, &m.AwayScore, &m.Round, &m.Note, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus) ([]models.Match, error) {
	query := `
		SELECT id, tournament_id, home_team_id, away_team_id, status, home_score, away_score, round, note, created_at
		FROM matches
		WHERE tournament_id = $1`

	args := []interface{}{tournamentID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(
			&m.ID, &m.TournamentID, &m.HomeTeamID, &m.AwayTeamID, &m.Status,
			&m.HomeScore, &m.AwayScore, &m.Round, &m.Note, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE matches
		SET status = $1, home_score = $2, away_score = $3, note = $4
		WHERE id = $5`

	result, err := executor.ExecContext(ctx, query, m.Status, m.HomeScore, m.AwayScore, m.Note, m.ID)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) CountByTournament(ctx context.Context, tournamentID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches WHERE tournament_id = $1`, tournamentID).Scan(&count)
	return count, err
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
		return ErrMatchInvalid
	}
	return err
}
