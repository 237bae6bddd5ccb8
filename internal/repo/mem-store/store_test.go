package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestStore_BeginRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Bounties().Create(ctx, &domain.Bounty{ID: "b1", Status: domain.StatusToDo, Version: 1}))

	boom := errors.New("boom")
	err := s.Begin(ctx, func(ctx context.Context) error {
		b, _ := s.Bounties().FindByID(ctx, "b1")
		b.Status = domain.StatusCancelled
		require.NoError(t, s.Bounties().Update(ctx, b, 1))
		require.NoError(t, s.Applications().Create(ctx, &domain.Application{ID: "a1", BountyID: "b1", ApplicantID: "h1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	b, err := s.Bounties().FindByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToDo, b.Status)
	assert.Equal(t, 1, b.Version)
	a, err := s.Applications().FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestStore_NestedBeginJoinsOuter(t *testing.T) {
	s := New()
	ctx := context.Background()
	err := s.Begin(ctx, func(ctx context.Context) error {
		return s.Begin(ctx, func(ctx context.Context) error {
			return s.Bounties().Create(ctx, &domain.Bounty{ID: "b1", Version: 1})
		})
	})
	require.NoError(t, err)
	b, _ := s.Bounties().FindByID(ctx, "b1")
	assert.NotNil(t, b)
}

func TestStore_BeginHonoursContext(t *testing.T) {
	s := New()
	hold := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = s.Begin(context.Background(), func(context.Context) error {
			close(started)
			<-hold
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.Begin(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(hold)
}

func TestBountyRepo_UpdateChecksVersion(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Bounties().Create(ctx, &domain.Bounty{ID: "b1", Version: 1}))

	first, _ := s.Bounties().FindByID(ctx, "b1")
	second, _ := s.Bounties().FindByID(ctx, "b1")

	first.Title = "first"
	require.NoError(t, s.Bounties().Update(ctx, first, 1))
	assert.Equal(t, 2, first.Version)

	second.Title = "second"
	assert.ErrorIs(t, s.Bounties().Update(ctx, second, 1), domain.ErrVersionConflict)

	stored, _ := s.Bounties().FindByID(ctx, "b1")
	assert.Equal(t, "first", stored.Title)
}

func TestBountyRepo_FindPendingBatchPayments(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.Users().Upsert(ctx, &domain.User{ID: "h1", PayoutAddress: ptr("zs1payable")})
	require.NoError(t, err)
	_, err = s.Users().Upsert(ctx, &domain.User{ID: "h2"})
	require.NoError(t, err)

	payable := func(id, assignee string, kind domain.PaymentKind) *domain.Bounty {
		return &domain.Bounty{
			ID: id, Title: "T" + id, Amount: decimal.RequireFromString("0.000000019"),
			AssigneeID: ptr(assignee), Status: domain.StatusDone, IsApproved: true, PaymentAuthorized: true,
			PaymentScheduled: &domain.PaymentSchedule{Kind: kind}, CreatedAt: time.Now(), Version: 1,
		}
	}
	require.NoError(t, s.Bounties().Create(ctx, payable("b1", "h1", domain.PaymentBatch)))
	require.NoError(t, s.Bounties().Create(ctx, payable("b2", "h2", domain.PaymentBatch)))
	require.NoError(t, s.Bounties().Create(ctx, payable("b3", "h1", domain.PaymentInstant)))
	paid := payable("b4", "h1", domain.PaymentBatch)
	paid.IsPaid = true
	require.NoError(t, s.Bounties().Create(ctx, paid))

	pending, err := s.Bounties().FindPendingBatchPayments(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b1", pending[0].BountyID)
	assert.Equal(t, "zs1payable", pending[0].Address)
	assert.Equal(t, int64(1), pending[0].Minor)
	assert.Equal(t, "Bounty: Tb1 (ID: b1)", pending[0].Memo)
}

func TestBountyRepo_Leaderboard(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, _ = s.Users().Upsert(ctx, &domain.User{ID: "h1", Name: "Alice"})
	for i, tc := range []struct {
		assignee string
		amount   int64
		paid     bool
	}{{"h1", 5, true}, {"h1", 2, true}, {"h2", 6, true}, {"h2", 100, false}} {
		require.NoError(t, s.Bounties().Create(ctx, &domain.Bounty{
			ID: string(rune('a' + i)), AssigneeID: ptr(tc.assignee), Amount: decimal.NewFromInt(tc.amount),
			IsPaid: tc.paid, Version: 1,
		}))
	}

	board, err := s.Bounties().Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "h1", board[0].UserID)
	assert.Equal(t, "Alice", board[0].Name)
	assert.Equal(t, 2, board[0].Completed)
	assert.True(t, decimal.NewFromInt(7).Equal(board[0].Earned))
	assert.Equal(t, "h2", board[1].UserID)
}

func TestApplicationRepo_UniquePerApplicant(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Applications().Create(ctx, &domain.Application{ID: "a1", BountyID: "b1", ApplicantID: "h1"}))
	err := s.Applications().Create(ctx, &domain.Application{ID: "a2", BountyID: "b1", ApplicantID: "h1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategoryRepo_DeleteDetachesBounties(t *testing.T) {
	s := New()
	ctx := context.Background()
	c := &domain.Category{Name: "Docs"}
	require.NoError(t, s.Categories().Create(ctx, c))
	assert.ErrorIs(t, s.Categories().Create(ctx, &domain.Category{Name: "Docs"}), domain.ErrConflict)
	require.NoError(t, s.Bounties().Create(ctx, &domain.Bounty{ID: "b1", CategoryID: ptr(c.ID), Version: 1}))

	require.NoError(t, s.Categories().Delete(ctx, c.ID))
	b, _ := s.Bounties().FindByID(ctx, "b1")
	assert.Nil(t, b.CategoryID)
}
