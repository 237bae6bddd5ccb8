// Package payout drives the payment gateway: the scheduled batch run and instant transfers.
package payout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/internal/gateway"
	"github.com/GlebRadaev/bountyhub/internal/metrics"
)

//go:generate mockgen -source=payout.go -destination=mock_payout.go -package=payout

type Coordinator interface {
	PendingBatchPayments(ctx context.Context) ([]domain.PendingPayment, error)
	PrepareInstantPayment(ctx context.Context, bountyID string) (*domain.PendingPayment, error)
	SettlePayment(ctx context.Context, st domain.Settlement) (*domain.Bounty, error)
	ReportInstantFailure(ctx context.Context, bountyID string, cause error) (*domain.Bounty, error)
}

type Gateway interface {
	Send(ctx context.Context, t gateway.Transfer) (string, error)
	SendBatch(ctx context.Context, transfers []gateway.Transfer, at time.Time) (*gateway.BatchResult, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
}

type Publisher interface {
	Publish(evs ...events.Event)
}

type Config struct {
	Workers        int
	InstantTimeout time.Duration
	BatchTimeout   time.Duration
}

// BatchReport is the outcome of one batch run.
type BatchReport struct {
	BatchID     string                 `json:"batchId,omitempty"`
	Paid        []string               `json:"paid"`
	Failed      []events.FailedPayment `json:"failed,omitempty"`
	ProcessedAt time.Time              `json:"processedAt"`
}

type Service struct {
	coordinator Coordinator
	gateway     Gateway
	publisher   Publisher
	workerPool  WorkerPoolI
	cfg         Config

	running  atomic.Bool
	inFlight sync.Map

	now func() time.Time
}

func New(cfg Config, coordinator Coordinator, gw Gateway, publisher Publisher) *Service {
	if cfg.Workers < 1 {
		cfg.Workers = 4
	}
	if cfg.InstantTimeout <= 0 {
		cfg.InstantTimeout = 30 * time.Second
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 2 * time.Minute
	}
	return &Service{
		coordinator: coordinator,
		gateway:     gw,
		publisher:   publisher,
		workerPool:  NewWorkerPool(cfg.Workers),
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *Service) Close() {
	s.workerPool.Close()
}

// Schedule registers the recurring batch run on the scheduler. The run acts as the system identity.
func (s *Service) Schedule(ctx context.Context, scheduler gocron.Scheduler, cronExpr string) error {
	_, err := scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			report, err := s.ProcessBatchPayments(ctx, domain.SystemIdentity)
			if err != nil {
				zap.L().Error("scheduled batch payment failed", zap.Error(err))
				return
			}
			zap.L().Info("scheduled batch payment finished",
				zap.String("batch_id", report.BatchID),
				zap.Int("paid", len(report.Paid)),
				zap.Int("failed", len(report.Failed)))
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		zap.L().Error("can't schedule batch payments", zap.String("schedule", cronExpr), zap.Error(err))
	}
	return err
}

// ProcessBatchPayments pays every bounty waiting for the batch in one gateway call. Only one
// run may be active at a time. A gateway failure or an ambiguous response marks nothing.
func (s *Service) ProcessBatchPayments(ctx context.Context, caller domain.Identity) (*BatchReport, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.Conflict("a batch payment run is already in progress")
	}
	defer s.running.Store(false)

	started := s.now()
	defer func() { metrics.ObserveBatch(time.Since(started)) }()

	pending, err := s.coordinator.PendingBatchPayments(ctx)
	if err != nil {
		return nil, err
	}
	report := &BatchReport{Paid: make([]string, 0), ProcessedAt: started.UTC()}
	if len(pending) == 0 {
		zap.L().Info("no pending batch payments")
		return report, nil
	}

	transfers := make([]gateway.Transfer, 0, len(pending))
	for _, p := range pending {
		transfers = append(transfers, gateway.Transfer{Address: p.Address, Amount: p.Minor, Memo: p.Memo})
	}

	gctx, cancel := context.WithTimeout(ctx, s.cfg.BatchTimeout)
	result, err := s.gateway.SendBatch(gctx, transfers, started)
	cancel()
	if err != nil {
		batchID := ""
		if result != nil {
			batchID = result.BatchID
		}
		for range pending {
			metrics.RecordPayment(string(domain.PaymentBatch), false)
		}
		zap.L().Error("batch payment aborted, nothing was marked",
			zap.String("batch_id", batchID), zap.Int("payments", len(pending)), zap.Error(err))
		if batchID != "" {
			return nil, fmt.Errorf("batch %s: %w", batchID, err)
		}
		return nil, err
	}

	report.BatchID = result.BatchID
	markErr := s.settleBatch(context.WithoutCancel(ctx), pending, result, report)

	s.publisher.Publish(events.BatchPaymentProcessed{
		BatchID:     report.BatchID,
		Paid:        report.Paid,
		Failed:      report.Failed,
		ProcessedAt: report.ProcessedAt,
	})
	s.refreshBalance(ctx)

	if markErr != nil {
		return report, markErr
	}
	return report, nil
}

// settleBatch marks every item the gateway paid. Items are settled concurrently; their events
// are still ordered per bounty by the coordinator.
func (s *Service) settleBatch(ctx context.Context, pending []domain.PendingPayment, result *gateway.BatchResult, report *BatchReport) error {
	batchID := result.BatchID
	var (
		mu       sync.Mutex
		markErrs []error
	)
	paid := make([]bool, len(pending))
	failed := make([]*events.FailedPayment, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, item := range result.Results {
		p := pending[i]
		if !item.Success {
			metrics.RecordPayment(string(domain.PaymentBatch), false)
			failed[i] = &events.FailedPayment{BountyID: p.BountyID, Reason: item.Error}
			continue
		}
		metrics.RecordPayment(string(domain.PaymentBatch), true)
		g.Go(func() error {
			txID := item.TxID
			if txID == "" {
				txID = batchID
			}
			_, err := s.coordinator.SettlePayment(gctx, domain.Settlement{
				BountyID: p.BountyID,
				Kind:     domain.PaymentBatch,
				Address:  p.Address,
				Amount:   p.Amount,
				Memo:     p.Memo,
				TxID:     txID,
				BatchID:  &batchID,
				PaidAt:   report.ProcessedAt,
			})
			if err != nil {
				zap.L().Error("batch item paid but not marked, replay with mark-paid",
					zap.String("bounty_id", p.BountyID),
					zap.String("batch_id", batchID),
					zap.String("tx_id", txID),
					zap.String("address", p.Address),
					zap.String("amount", p.Amount.String()),
					zap.Error(err))
				mu.Lock()
				markErrs = append(markErrs, fmt.Errorf("bounty %s: %w", p.BountyID, err))
				failed[i] = &events.FailedPayment{BountyID: p.BountyID, Reason: "paid but not marked: " + err.Error()}
				mu.Unlock()
				return nil
			}
			paid[i] = true
			return nil
		})
	}
	_ = g.Wait()

	for i := range pending {
		switch {
		case paid[i]:
			report.Paid = append(report.Paid, pending[i].BountyID)
		case failed[i] != nil:
			report.Failed = append(report.Failed, *failed[i])
		}
	}
	if len(markErrs) > 0 {
		return fmt.Errorf("%w: batch %s: %w", domain.ErrPartial, batchID, errors.Join(markErrs...))
	}
	return nil
}

// ExecuteInstant runs the transfer of an authorized instant payment on the worker pool and waits
// for it. The transfer keeps running if ctx ends first; its outcome is still announced.
func (s *Service) ExecuteInstant(ctx context.Context, bountyID string) (*domain.Bounty, error) {
	if _, loaded := s.inFlight.LoadOrStore(bountyID, struct{}{}); loaded {
		return nil, domain.Conflict("payment for bounty %s is already in progress", bountyID)
	}

	type outcome struct {
		bounty *domain.Bounty
		err    error
	}
	done := make(chan outcome, 1)
	taskCtx := context.WithoutCancel(ctx)

	err := s.workerPool.AddTask(ctx, func() error {
		defer s.inFlight.Delete(bountyID)
		b, err := s.payInstant(taskCtx, bountyID)
		done <- outcome{bounty: b, err: err}
		return err
	})
	if err != nil {
		s.inFlight.Delete(bountyID)
		return nil, err
	}

	select {
	case out := <-done:
		return out.bounty, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) payInstant(ctx context.Context, bountyID string) (*domain.Bounty, error) {
	p, err := s.coordinator.PrepareInstantPayment(ctx, bountyID)
	if err != nil {
		return nil, err
	}

	gctx, cancel := context.WithTimeout(ctx, s.cfg.InstantTimeout)
	txID, err := s.gateway.Send(gctx, gateway.Transfer{Address: p.Address, Amount: p.Minor, Memo: p.Memo})
	cancel()
	if err != nil {
		metrics.RecordPayment(string(domain.PaymentInstant), false)
		zap.L().Error("instant payment failed", zap.String("bounty_id", bountyID), zap.Error(err))
		if _, rerr := s.coordinator.ReportInstantFailure(ctx, bountyID, err); rerr != nil {
			zap.L().Error("can't report instant payment failure", zap.String("bounty_id", bountyID), zap.Error(rerr))
		}
		return nil, err
	}
	metrics.RecordPayment(string(domain.PaymentInstant), true)

	b, err := s.coordinator.SettlePayment(ctx, domain.Settlement{
		BountyID: bountyID,
		Kind:     domain.PaymentInstant,
		Address:  p.Address,
		Amount:   p.Amount,
		Memo:     p.Memo,
		TxID:     txID,
		PaidAt:   s.now().UTC(),
	})
	if err != nil {
		zap.L().Error("instant payment sent but not marked, replay with mark-paid",
			zap.String("bounty_id", bountyID),
			zap.String("tx_id", txID),
			zap.String("address", p.Address),
			zap.String("amount", p.Amount.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: bounty %s paid with %s: %w", domain.ErrPartial, bountyID, txID, err)
	}
	zap.L().Info("instant payment settled", zap.String("bounty_id", bountyID), zap.String("tx_id", txID))
	s.refreshBalance(ctx)
	return b, nil
}

func (s *Service) refreshBalance(ctx context.Context) {
	balance, err := s.gateway.Balance(ctx)
	if err != nil {
		zap.L().Warn("can't refresh wallet balance", zap.Error(err))
		return
	}
	s.publisher.Publish(events.BalanceUpdated{Balance: balance, Minor: domain.ToMinorUnits(balance)})
}

// Balance reads the current wallet balance from the gateway.
func (s *Service) Balance(ctx context.Context, caller domain.Identity) (decimal.Decimal, error) {
	if !caller.IsAdmin() {
		return decimal.Zero, domain.ErrForbidden
	}
	return s.gateway.Balance(ctx)
}
