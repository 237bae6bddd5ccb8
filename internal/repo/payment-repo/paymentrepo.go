package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a record. Records are never updated.
func (r *Repository) Create(ctx context.Context, rec *domain.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (id, bounty_id, amount, address, memo, tx_id, batch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, rec.ID, rec.BountyID, rec.Amount, rec.Address, rec.Memo, rec.TxID,
		rec.BatchID, rec.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment record",
			zap.String("bounty_id", rec.BountyID), zap.String("tx_id", rec.TxID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByBounty(ctx context.Context, bountyID string) (*domain.PaymentRecord, error) {
	query := `
        SELECT id, bounty_id, amount, address, memo, tx_id, batch_id, created_at
        FROM payment_records
        WHERE bounty_id = $1
    `
	var rec domain.PaymentRecord
	err := r.db.QueryRow(ctx, query, bountyID).
		Scan(&rec.ID, &rec.BountyID, &rec.Amount, &rec.Address, &rec.Memo, &rec.TxID, &rec.BatchID, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment record", zap.String("bounty_id", bountyID), zap.Error(err))
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.PaymentRecord, error) {
	query := `
        SELECT id, bounty_id, amount, address, memo, tx_id, batch_id, created_at
        FROM payment_records
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch payment records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.PaymentRecord, 0)
	for rows.Next() {
		var rec domain.PaymentRecord
		err := rows.Scan(&rec.ID, &rec.BountyID, &rec.Amount, &rec.Address, &rec.Memo, &rec.TxID, &rec.BatchID, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payment record row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
