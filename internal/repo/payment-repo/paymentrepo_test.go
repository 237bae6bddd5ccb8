package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

var recordColumns = []string{"id", "bounty_id", "amount", "address", "memo", "tx_id", "batch_id", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	batch := "batch-1"
	rec := &domain.PaymentRecord{ID: "p1", BountyID: "b1", Amount: decimal.NewFromInt(1), Address: "zs1abc",
		Memo: "Bounty: x (ID: b1)", TxID: "tx1", BatchID: &batch, CreatedAt: time.Now()}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Record saved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_records")).
					WithArgs("p1", "b1", pgxmock.AnyArg(), "zs1abc", rec.Memo, "tx1", &batch, rec.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate bounty",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_records")).
					WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), rec)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByBounty(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	amount := decimal.RequireFromString("0.5")

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_records WHERE bounty_id = $1")).
		WithArgs("b1").
		WillReturnRows(pgxmock.NewRows(recordColumns).AddRow("p1", "b1", amount, "zs1abc", "m", "tx1", nil, now))
	rec, err := repo.FindByBounty(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, &domain.PaymentRecord{ID: "p1", BountyID: "b1", Amount: amount, Address: "zs1abc",
		Memo: "m", TxID: "tx1", CreatedAt: now}, rec)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_records WHERE bounty_id = $1")).
		WithArgs("b2").
		WillReturnError(pgx.ErrNoRows)
	rec, err = repo.FindByBounty(context.Background(), "b2")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_records ORDER BY created_at DESC")).
		WillReturnError(errors.New("database error"))
	_, err := repo.List(context.Background())
	assert.Error(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_records ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows(recordColumns).
			AddRow("p1", "b1", decimal.NewFromInt(1), "zs1abc", "m", "tx1", nil, time.Now()).
			AddRow("p2", "b2", decimal.NewFromInt(2), "zs1def", "m", "tx2", nil, time.Now()))
	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
