package bountyrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/pg"
)

const columns = `id, title, description, amount, category_id, created_by, assignee_id, status,
        is_approved, payment_authorized, payment_kind, payment_scheduled, is_paid,
        payment_batch_id, paid_at, created_at, deadline, version`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanBounty(row pgx.Row) (*domain.Bounty, error) {
	var (
		b         domain.Bounty
		kind      *string
		scheduled *time.Time
	)
	err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Amount, &b.CategoryID, &b.CreatedBy,
		&b.AssigneeID, &b.Status, &b.IsApproved, &b.PaymentAuthorized, &kind, &scheduled, &b.IsPaid,
		&b.PaymentBatchID, &b.PaidAt, &b.CreatedAt, &b.Deadline, &b.Version)
	if err != nil {
		return nil, err
	}
	if kind != nil {
		b.PaymentScheduled = &domain.PaymentSchedule{Kind: domain.PaymentKind(*kind), ScheduledFor: scheduled}
	}
	return &b, nil
}

func scheduleArgs(b *domain.Bounty) (*string, *time.Time) {
	if b.PaymentScheduled == nil {
		return nil, nil
	}
	kind := string(b.PaymentScheduled.Kind)
	return &kind, b.PaymentScheduled.ScheduledFor
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Bounty, error) {
	query := `SELECT ` + columns + ` FROM bounties WHERE id = $1`
	b, err := scanBounty(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bounty", zap.String("bounty_id", id), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) List(ctx context.Context, filter domain.BountyFilter) ([]domain.Bounty, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.CategoryID != nil {
		add("category_id = $%d", *filter.CategoryID)
	}
	if filter.AssigneeID != "" {
		add("assignee_id = $%d", filter.AssigneeID)
	}
	if filter.CreatedBy != "" {
		add("created_by = $%d", filter.CreatedBy)
	}

	query := `SELECT ` + columns + ` FROM bounties`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list bounties", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	bounties := make([]domain.Bounty, 0)
	for rows.Next() {
		b, err := scanBounty(rows)
		if err != nil {
			zap.L().Error("can't scan bounty row", zap.Error(err))
			return nil, err
		}
		bounties = append(bounties, *b)
	}
	return bounties, rows.Err()
}

func (r *Repository) Create(ctx context.Context, b *domain.Bounty) error {
	query := `
        INSERT INTO bounties (` + columns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    `
	kind, scheduled := scheduleArgs(b)
	_, err := r.db.Exec(ctx, query, b.ID, b.Title, b.Description, b.Amount, b.CategoryID, b.CreatedBy,
		b.AssigneeID, b.Status, b.IsApproved, b.PaymentAuthorized, kind, scheduled, b.IsPaid,
		b.PaymentBatchID, b.PaidAt, b.CreatedAt, b.Deadline, b.Version)
	if err != nil {
		zap.L().Error("can't save bounty", zap.String("bounty_id", b.ID), zap.Error(err))
		return err
	}
	return nil
}

// Update writes b only if the stored row still has expectedVersion, then bumps b.Version.
func (r *Repository) Update(ctx context.Context, b *domain.Bounty, expectedVersion int) error {
	query := `
        UPDATE bounties
        SET title = $1, description = $2, amount = $3, category_id = $4, assignee_id = $5,
            status = $6, is_approved = $7, payment_authorized = $8, payment_kind = $9,
            payment_scheduled = $10, is_paid = $11, payment_batch_id = $12, paid_at = $13,
            deadline = $14, version = version + 1
        WHERE id = $15 AND version = $16
    `
	kind, scheduled := scheduleArgs(b)
	tag, err := r.db.Exec(ctx, query, b.Title, b.Description, b.Amount, b.CategoryID, b.AssigneeID,
		b.Status, b.IsApproved, b.PaymentAuthorized, kind, scheduled, b.IsPaid, b.PaymentBatchID,
		b.PaidAt, b.Deadline, b.ID, expectedVersion)
	if err != nil {
		zap.L().Error("failed to update bounty", zap.String("bounty_id", b.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	b.Version = expectedVersion + 1
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bounties WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to delete bounty", zap.String("bounty_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("bounty", id)
	}
	return nil
}

// FindPendingBatchPayments returns batch-scheduled bounties ready for payout whose assignee
// has a payout address on file.
func (r *Repository) FindPendingBatchPayments(ctx context.Context) ([]domain.PendingPayment, error) {
	query := `
        SELECT b.id, b.title, b.amount, u.payout_address
        FROM bounties b
        JOIN users u ON u.id = b.assignee_id
        WHERE b.payment_authorized AND b.payment_kind = 'batch' AND b.status = 'DONE'
          AND b.is_approved AND NOT b.is_paid
          AND u.payout_address IS NOT NULL AND u.payout_address <> ''
        ORDER BY b.created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending batch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.PendingPayment, 0)
	for rows.Next() {
		var (
			b       domain.Bounty
			address string
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Amount, &address); err != nil {
			zap.L().Error("can't scan pending payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, domain.PendingPayment{
			BountyID: b.ID,
			Address:  address,
			Amount:   b.Amount,
			Minor:    domain.ToMinorUnits(b.Amount),
			Memo:     domain.PaymentMemo(&b),
		})
	}
	return payments, rows.Err()
}

func (r *Repository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
        SELECT b.assignee_id, COALESCE(u.name, ''), COUNT(*), COALESCE(SUM(b.amount), 0)
        FROM bounties b
        LEFT JOIN users u ON u.id = b.assignee_id
        WHERE b.is_paid AND b.assignee_id IS NOT NULL
        GROUP BY b.assignee_id, u.name
        ORDER BY SUM(b.amount) DESC, COUNT(*) DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't build leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0)
	for rows.Next() {
		var (
			e      domain.LeaderboardEntry
			earned decimal.Decimal
		)
		if err := rows.Scan(&e.UserID, &e.Name, &e.Completed, &earned); err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		e.Earned = earned
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
