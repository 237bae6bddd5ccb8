package submissionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/pg"
)

const columns = `id, bounty_id, submitter_id, description, deliverable_url, status, review_notes,
        reviewer_id, submitted_at, reviewed_at, version`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanSubmission(row pgx.Row) (*domain.WorkSubmission, error) {
	var s domain.WorkSubmission
	err := row.Scan(&s.ID, &s.BountyID, &s.SubmitterID, &s.Description, &s.DeliverableURL, &s.Status,
		&s.ReviewNotes, &s.ReviewerID, &s.SubmittedAt, &s.ReviewedAt, &s.Version)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.WorkSubmission, error) {
	s, err := scanSubmission(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find work submission", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.WorkSubmission, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM work_submissions WHERE id = $1`, id)
}

// FindPendingByBounty returns the submission awaiting review, if any.
func (r *Repository) FindPendingByBounty(ctx context.Context, bountyID string) (*domain.WorkSubmission, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM work_submissions WHERE bounty_id = $1 AND status = 'pending' LIMIT 1`, bountyID)
}

func (r *Repository) ListByBounty(ctx context.Context, bountyID string) ([]domain.WorkSubmission, error) {
	query := `SELECT ` + columns + ` FROM work_submissions WHERE bounty_id = $1 ORDER BY submitted_at DESC`
	rows, err := r.db.Query(ctx, query, bountyID)
	if err != nil {
		zap.L().Error("can't get work submissions", zap.String("bounty_id", bountyID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	subs := make([]domain.WorkSubmission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			zap.L().Error("can't scan work submission row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, *s)
	}
	return subs, rows.Err()
}

func (r *Repository) CountByBounty(ctx context.Context, bountyID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM work_submissions WHERE bounty_id = $1`, bountyID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count work submissions", zap.String("bounty_id", bountyID), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.WorkSubmission) error {
	query := `
        INSERT INTO work_submissions (` + columns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query, s.ID, s.BountyID, s.SubmitterID, s.Description, s.DeliverableURL,
		s.Status, s.ReviewNotes, s.ReviewerID, s.SubmittedAt, s.ReviewedAt, s.Version)
	if err != nil {
		zap.L().Error("can't save work submission", zap.String("bounty_id", s.BountyID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, s *domain.WorkSubmission, expectedVersion int) error {
	query := `
        UPDATE work_submissions
        SET status = $1, review_notes = $2, reviewer_id = $3, reviewed_at = $4, version = version + 1
        WHERE id = $5 AND version = $6
    `
	tag, err := r.db.Exec(ctx, query, s.Status, s.ReviewNotes, s.ReviewerID, s.ReviewedAt, s.ID, expectedVersion)
	if err != nil {
		zap.L().Error("failed to update work submission", zap.String("submission_id", s.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	s.Version = expectedVersion + 1
	return nil
}
