package bountyrepo

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

var bountyColumns = []string{"id", "title", "description", "amount", "category_id", "created_by",
	"assignee_id", "status", "is_approved", "payment_authorized", "payment_kind", "payment_scheduled",
	"is_paid", "payment_batch_id", "paid_at", "created_at", "deadline", "version"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func ptr[T any](v T) *T { return &v }

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	amount := decimal.RequireFromString("1.5")

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Bounty
	}{
		{
			name: "Bounty exists with batch schedule",
			id:   "b1",
			mockSetup: func() {
				rows := pgxmock.NewRows(bountyColumns).
					AddRow("b1", "Fix docs", "typos", amount, ptr(2), "client-1", ptr("hunter-1"),
						domain.StatusDone, true, true, ptr("batch"), &now, false, nil, nil, now, nil, 4)
				mock.ExpectQuery(regexp.QuoteMeta("FROM bounties WHERE id = $1")).
					WithArgs("b1").
					WillReturnRows(rows)
			},
			result: &domain.Bounty{
				ID: "b1", Title: "Fix docs", Description: "typos", Amount: amount, CategoryID: ptr(2),
				CreatedBy: "client-1", AssigneeID: ptr("hunter-1"), Status: domain.StatusDone,
				IsApproved: true, PaymentAuthorized: true,
				PaymentScheduled: &domain.PaymentSchedule{Kind: domain.PaymentBatch, ScheduledFor: &now},
				CreatedAt:        now, Version: 4,
			},
		},
		{
			name: "Bounty does not exist",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bounties WHERE id = $1")).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   "b1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bounties WHERE id = $1")).
					WithArgs("b1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   error
		wantVersion int
	}{
		{
			name: "Version matches",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bounties SET title = $1")).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), "b1", 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			wantVersion: 4,
		},
		{
			name: "Stale version",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bounties SET title = $1")).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr:   domain.ErrVersionConflict,
			wantVersion: 3,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bounties SET title = $1")).
					WillReturnError(errors.New("database error"))
			},
			expectErr:   errors.New("database error"),
			wantVersion: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			b := &domain.Bounty{ID: "b1", Status: domain.StatusInProgress, Version: 3}
			err := repo.Update(context.Background(), b, 3)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantVersion, b.Version)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(bountyColumns).
		AddRow("b2", "Second", "", decimal.NewFromInt(2), nil, "client-1", nil,
			domain.StatusToDo, false, false, nil, nil, false, nil, nil, now, nil, 1)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bounties WHERE status = $1 AND created_by = $2 ORDER BY created_at DESC")).
		WithArgs(domain.StatusToDo, "client-1").
		WillReturnRows(rows)

	result, err := repo.List(context.Background(), domain.BountyFilter{Status: domain.StatusToDo, CreatedBy: "client-1"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "b2", result[0].ID)
	assert.Nil(t, result[0].PaymentScheduled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bounties WHERE id = $1")).
		WithArgs("b1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), "b1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bounties WHERE id = $1")).
		WithArgs("gone").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "gone"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPendingBatchPayments(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "title", "amount", "payout_address"}).
		AddRow("b1", "Logo", decimal.RequireFromString("0.123456789"), "zs1abc")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = b.assignee_id")).
		WillReturnRows(rows)

	result, err := repo.FindPendingBatchPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(12345678), result[0].Minor)
	assert.Equal(t, "zs1abc", result[0].Address)
	assert.Equal(t, "Bounty: Logo (ID: b1)", result[0].Memo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Leaderboard(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"assignee_id", "name", "count", "sum"}).
		AddRow("h1", "Alice", 3, decimal.NewFromInt(9)).
		AddRow("h2", "", 1, decimal.NewFromInt(1))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY b.assignee_id, u.name")).
		WithArgs(10).
		WillReturnRows(rows)

	result, err := repo.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "h1", result[0].UserID)
	assert.Equal(t, 3, result[0].Completed)
	assert.True(t, decimal.NewFromInt(9).Equal(result[0].Earned))
	assert.NoError(t, mock.ExpectationsWereMet())
}
