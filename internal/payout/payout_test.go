package payout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/internal/gateway"
)

var (
	admin  = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	hunter = domain.Identity{UserID: "hunter-1", Role: domain.RoleHunter}
	runAt  = time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Service, *MockCoordinator, *MockGateway, *MockPublisher) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator := NewMockCoordinator(ctrl)
	gw := NewMockGateway(ctrl)
	publisher := NewMockPublisher(ctrl)
	service := New(Config{Workers: 2, InstantTimeout: time.Second, BatchTimeout: time.Second}, coordinator, gw, publisher)
	service.now = func() time.Time { return runAt }
	t.Cleanup(service.Close)
	return service, coordinator, gw, publisher
}

func pending(id, address string, amount string) domain.PendingPayment {
	d := decimal.RequireFromString(amount)
	return domain.PendingPayment{
		BountyID: id,
		Address:  address,
		Amount:   d,
		Minor:    domain.ToMinorUnits(d),
		Memo:     "Bounty: " + id,
	}
}

func TestProcessBatchPayments(t *testing.T) {
	b1 := pending("b1", "zs1a", "1.5")
	b2 := pending("b2", "zs1b", "0.25")
	b3 := pending("b3", "zs1c", "2")

	tests := []struct {
		name           string
		caller         domain.Identity
		prepareMock    func(c *MockCoordinator, g *MockGateway, p *MockPublisher)
		expectedReport *BatchReport
		expectedError  error
	}{
		{
			name:          "Not an admin",
			caller:        hunter,
			prepareMock:   func(*MockCoordinator, *MockGateway, *MockPublisher) {},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Nothing pending",
			caller: admin,
			prepareMock: func(c *MockCoordinator, _ *MockGateway, _ *MockPublisher) {
				c.EXPECT().PendingBatchPayments(gomock.Any()).Return(nil, nil)
			},
			expectedReport: &BatchReport{Paid: []string{}, ProcessedAt: runAt},
		},
		{
			name:   "Gateway failure marks nothing",
			caller: admin,
			prepareMock: func(c *MockCoordinator, g *MockGateway, _ *MockPublisher) {
				c.EXPECT().PendingBatchPayments(gomock.Any()).Return([]domain.PendingPayment{b1, b2}, nil)
				g.EXPECT().SendBatch(gomock.Any(), gomock.Any(), runAt).
					Return(&gateway.BatchResult{BatchID: "batch-9"}, errors.Join(domain.ErrGateway, errors.New("wallet locked")))
			},
			expectedError: domain.ErrGateway,
		},
		{
			name:   "Per-item results",
			caller: admin,
			prepareMock: func(c *MockCoordinator, g *MockGateway, p *MockPublisher) {
				c.EXPECT().PendingBatchPayments(gomock.Any()).Return([]domain.PendingPayment{b1, b2, b3}, nil)
				g.EXPECT().SendBatch(gomock.Any(), []gateway.Transfer{
					{Address: "zs1a", Amount: 150000000, Memo: "Bounty: b1"},
					{Address: "zs1b", Amount: 25000000, Memo: "Bounty: b2"},
					{Address: "zs1c", Amount: 200000000, Memo: "Bounty: b3"},
				}, runAt).Return(&gateway.BatchResult{
					Success: true,
					BatchID: "batch-1",
					Results: []gateway.ItemResult{
						{Address: "zs1a", TxID: "tx-a", Success: true},
						{Address: "zs1b", Success: false, Error: "invalid address"},
						{Address: "zs1c", TxID: "tx-c", Success: true},
					},
				}, nil)
				c.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, st domain.Settlement) (*domain.Bounty, error) {
					assert.Equal(t, domain.PaymentBatch, st.Kind)
					if assert.NotNil(t, st.BatchID) {
						assert.Equal(t, "batch-1", *st.BatchID)
					}
					assert.Equal(t, runAt, st.PaidAt)
					return &domain.Bounty{ID: st.BountyID, IsPaid: true}, nil
				}).Times(2)
				p.EXPECT().Publish(events.BatchPaymentProcessed{
					BatchID:     "batch-1",
					Paid:        []string{"b1", "b3"},
					Failed:      []events.FailedPayment{{BountyID: "b2", Reason: "invalid address"}},
					ProcessedAt: runAt,
				})
				g.EXPECT().Balance(gomock.Any()).Return(decimal.RequireFromString("10"), nil)
				p.EXPECT().Publish(events.BalanceUpdated{Balance: decimal.RequireFromString("10"), Minor: 1000000000})
			},
			expectedReport: &BatchReport{
				BatchID:     "batch-1",
				Paid:        []string{"b1", "b3"},
				Failed:      []events.FailedPayment{{BountyID: "b2", Reason: "invalid address"}},
				ProcessedAt: runAt,
			},
		},
		{
			name:   "Gateway flags the batch as failed but confirms one item",
			caller: admin,
			prepareMock: func(c *MockCoordinator, g *MockGateway, p *MockPublisher) {
				c.EXPECT().PendingBatchPayments(gomock.Any()).Return([]domain.PendingPayment{b1, b2}, nil)
				g.EXPECT().SendBatch(gomock.Any(), gomock.Any(), runAt).Return(&gateway.BatchResult{
					Success: false,
					BatchID: "batch-3",
					Error:   "1 of 2 failed",
					Results: []gateway.ItemResult{
						{Address: "zs1a", TxID: "tx-a", Success: true},
						{Address: "zs1b", Success: false, Error: "insufficient funds"},
					},
				}, nil)
				c.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, st domain.Settlement) (*domain.Bounty, error) {
					assert.Equal(t, "b1", st.BountyID)
					assert.Equal(t, "tx-a", st.TxID)
					return &domain.Bounty{ID: st.BountyID, IsPaid: true}, nil
				})
				p.EXPECT().Publish(events.BatchPaymentProcessed{
					BatchID:     "batch-3",
					Paid:        []string{"b1"},
					Failed:      []events.FailedPayment{{BountyID: "b2", Reason: "insufficient funds"}},
					ProcessedAt: runAt,
				})
				g.EXPECT().Balance(gomock.Any()).Return(decimal.Zero, errors.New("unreachable"))
			},
			expectedReport: &BatchReport{
				BatchID:     "batch-3",
				Paid:        []string{"b1"},
				Failed:      []events.FailedPayment{{BountyID: "b2", Reason: "insufficient funds"}},
				ProcessedAt: runAt,
			},
		},
		{
			name:   "Paid but not marked",
			caller: admin,
			prepareMock: func(c *MockCoordinator, g *MockGateway, p *MockPublisher) {
				c.EXPECT().PendingBatchPayments(gomock.Any()).Return([]domain.PendingPayment{b1}, nil)
				g.EXPECT().SendBatch(gomock.Any(), gomock.Any(), runAt).Return(&gateway.BatchResult{
					Success: true,
					BatchID: "batch-2",
					Results: []gateway.ItemResult{{Address: "zs1a", TxID: "tx-a", Success: true}},
				}, nil)
				c.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				p.EXPECT().Publish(gomock.Any())
				g.EXPECT().Balance(gomock.Any()).Return(decimal.Zero, errors.New("unreachable"))
			},
			expectedError: domain.ErrPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, coordinator, gw, publisher := NewMock(t)
			tt.prepareMock(coordinator, gw, publisher)

			report, err := service.ProcessBatchPayments(context.Background(), tt.caller)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedReport, report)
		})
	}
}

func TestProcessBatchPaymentsSingleRun(t *testing.T) {
	service, coordinator, gw, publisher := NewMock(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	coordinator.EXPECT().PendingBatchPayments(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.PendingPayment, error) {
		close(entered)
		<-release
		return nil, nil
	})
	_ = gw
	_ = publisher

	done := make(chan error, 1)
	go func() {
		_, err := service.ProcessBatchPayments(context.Background(), admin)
		done <- err
	}()
	<-entered

	_, err := service.ProcessBatchPayments(context.Background(), admin)
	assert.ErrorIs(t, err, domain.ErrConflict)

	close(release)
	assert.NoError(t, <-done)
}

func TestExecuteInstant(t *testing.T) {
	p := pending("b1", "zs1a", "1.5")

	t.Run("Settles after transfer", func(t *testing.T) {
		service, coordinator, gw, publisher := NewMock(t)
		coordinator.EXPECT().PrepareInstantPayment(gomock.Any(), "b1").Return(&p, nil)
		gw.EXPECT().Send(gomock.Any(), gateway.Transfer{Address: "zs1a", Amount: 150000000, Memo: "Bounty: b1"}).Return("tx-1", nil)
		coordinator.EXPECT().SettlePayment(gomock.Any(), domain.Settlement{
			BountyID: "b1",
			Kind:     domain.PaymentInstant,
			Address:  "zs1a",
			Amount:   p.Amount,
			Memo:     "Bounty: b1",
			TxID:     "tx-1",
			PaidAt:   runAt,
		}).Return(&domain.Bounty{ID: "b1", IsPaid: true}, nil)
		gw.EXPECT().Balance(gomock.Any()).Return(decimal.RequireFromString("3"), nil)
		publisher.EXPECT().Publish(gomock.Any())

		b, err := service.ExecuteInstant(context.Background(), "b1")
		require.NoError(t, err)
		assert.True(t, b.IsPaid)
	})

	t.Run("Gateway failure is reported", func(t *testing.T) {
		service, coordinator, gw, _ := NewMock(t)
		sendErr := errors.Join(domain.ErrGateway, errors.New("insufficient funds"))
		coordinator.EXPECT().PrepareInstantPayment(gomock.Any(), "b1").Return(&p, nil)
		gw.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", sendErr)
		coordinator.EXPECT().ReportInstantFailure(gomock.Any(), "b1", sendErr).Return(&domain.Bounty{ID: "b1"}, nil)

		_, err := service.ExecuteInstant(context.Background(), "b1")
		assert.ErrorIs(t, err, domain.ErrGateway)
	})

	t.Run("Sent but not marked", func(t *testing.T) {
		service, coordinator, gw, _ := NewMock(t)
		coordinator.EXPECT().PrepareInstantPayment(gomock.Any(), "b1").Return(&p, nil)
		gw.EXPECT().Send(gomock.Any(), gomock.Any()).Return("tx-2", nil)
		coordinator.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := service.ExecuteInstant(context.Background(), "b1")
		assert.ErrorIs(t, err, domain.ErrPartial)
	})

	t.Run("Not payable", func(t *testing.T) {
		service, coordinator, _, _ := NewMock(t)
		coordinator.EXPECT().PrepareInstantPayment(gomock.Any(), "b1").Return(nil, domain.Precondition("not awaiting payment"))

		_, err := service.ExecuteInstant(context.Background(), "b1")
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("One transfer per bounty at a time", func(t *testing.T) {
		service, coordinator, gw, publisher := NewMock(t)
		entered := make(chan struct{})
		release := make(chan struct{})
		coordinator.EXPECT().PrepareInstantPayment(gomock.Any(), "b1").Return(&p, nil)
		gw.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, gateway.Transfer) (string, error) {
			close(entered)
			<-release
			return "tx-3", nil
		})
		coordinator.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).Return(&domain.Bounty{ID: "b1", IsPaid: true}, nil)
		gw.EXPECT().Balance(gomock.Any()).Return(decimal.Zero, errors.New("unreachable"))
		_ = publisher

		done := make(chan error, 1)
		go func() {
			_, err := service.ExecuteInstant(context.Background(), "b1")
			done <- err
		}()
		<-entered

		_, err := service.ExecuteInstant(context.Background(), "b1")
		assert.ErrorIs(t, err, domain.ErrConflict)

		close(release)
		assert.NoError(t, <-done)
	})
}

func TestBalance(t *testing.T) {
	service, _, gw, _ := NewMock(t)

	_, err := service.Balance(context.Background(), hunter)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	gw.EXPECT().Balance(gomock.Any()).Return(decimal.RequireFromString("4.2"), nil)
	balance, err := service.Balance(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, "4.2", balance.String())
}
