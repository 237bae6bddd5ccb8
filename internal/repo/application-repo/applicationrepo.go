package applicationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/pg"
)

const columns = `id, bounty_id, applicant_id, message, status, applied_at, version`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.BountyID, &a.ApplicantID, &a.Message, &a.Status, &a.AppliedAt, &a.Version)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Application, error) {
	a, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM applications WHERE id = $1`, id)
}

func (r *Repository) FindByBountyAndApplicant(ctx context.Context, bountyID, applicantID string) (*domain.Application, error) {
	return r.findOne(ctx, `SELECT `+columns+` FROM applications WHERE bounty_id = $1 AND applicant_id = $2`,
		bountyID, applicantID)
}

func (r *Repository) ListByBounty(ctx context.Context, bountyID string) ([]domain.Application, error) {
	return r.findMany(ctx, `SELECT `+columns+` FROM applications WHERE bounty_id = $1 ORDER BY applied_at ASC`, bountyID)
}

func (r *Repository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	return r.findMany(ctx, `SELECT `+columns+` FROM applications WHERE applicant_id = $1 ORDER BY applied_at DESC`, applicantID)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Application, error) {
	return r.findMany(ctx, `SELECT `+columns+` FROM applications ORDER BY applied_at DESC`)
}

func (r *Repository) CountByBounty(ctx context.Context, bountyID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE bounty_id = $1`, bountyID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count applications", zap.String("bounty_id", bountyID), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) Create(ctx context.Context, a *domain.Application) error {
	query := `
        INSERT INTO applications (` + columns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (bounty_id, applicant_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, a.ID, a.BountyID, a.ApplicantID, a.Message, a.Status, a.AppliedAt, a.Version)
	if err != nil {
		zap.L().Error("can't save application", zap.String("bounty_id", a.BountyID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Conflict("applicant %s already applied to bounty %s", a.ApplicantID, a.BountyID)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, a *domain.Application, expectedVersion int) error {
	query := `
        UPDATE applications
        SET status = $1, message = $2, version = version + 1
        WHERE id = $3 AND version = $4
    `
	tag, err := r.db.Exec(ctx, query, a.Status, a.Message, a.ID, expectedVersion)
	if err != nil {
		zap.L().Error("failed to update application", zap.String("application_id", a.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	a.Version = expectedVersion + 1
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete application", zap.String("application_id", id), zap.Error(err))
		return err
	}
	return nil
}
