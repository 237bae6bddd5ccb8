package bountyservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
)

func (s *Service) checkAuthorizable(b *domain.Bounty) error {
	switch {
	case b.IsPaid:
		return domain.Precondition("bounty %s is already paid", b.ID)
	case b.PaymentAuthorized:
		return domain.Precondition("payment for bounty %s is already authorized", b.ID)
	case b.Status != domain.StatusDone:
		return domain.Precondition("bounty %s is %s, payment needs DONE", b.ID, b.Status)
	case !b.IsApproved:
		return domain.Precondition("bounty %s is not approved", b.ID)
	case !b.Assigned():
		return domain.Precondition("bounty %s has no assignee to pay", b.ID)
	}
	return nil
}

func (s *Service) payoutAddress(ctx context.Context, b *domain.Bounty) (string, error) {
	if !b.Assigned() {
		return "", domain.Precondition("bounty %s has no assignee to pay", b.ID)
	}
	u, err := s.users.FindByID(ctx, *b.AssigneeID)
	if err != nil {
		return "", err
	}
	if !u.HasPayoutAddress() {
		return "", domain.Precondition("assignee %s has no payout address", *b.AssigneeID)
	}
	return *u.PayoutAddress, nil
}

// AuthorizePayment authorizes an instant payout and, when a payer is attached, waits for the
// transfer. The authorization is committed and announced before the gateway is called, so a
// failed transfer leaves the bounty authorized and unpaid. That case returns the authorized
// bounty together with an error wrapping domain.ErrPaymentPending.
func (s *Service) AuthorizePayment(ctx context.Context, caller domain.Identity, bountyID string) (*domain.Bounty, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var authorized *domain.Bounty
	err := s.mutate(ctx, bountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, bountyID)
		if err != nil {
			return nil, err
		}
		if err := s.checkAuthorizable(b); err != nil {
			return nil, err
		}
		if _, err := s.payoutAddress(ctx, b); err != nil {
			return nil, err
		}
		now := s.now()
		b.PaymentAuthorized = true
		b.PaymentScheduled = &domain.PaymentSchedule{Kind: domain.PaymentInstant, ScheduledFor: &now}
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		authorized = b
		return []events.Event{events.PaymentAuthorized{Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("instant payment authorized", zap.String("bounty_id", bountyID), zap.String("by", caller.UserID))

	if s.payer == nil {
		return authorized, nil
	}
	paid, err := s.payer.ExecuteInstant(ctx, bountyID)
	if err != nil && !errors.Is(err, domain.ErrPartial) {
		return authorized, fmt.Errorf("%w: bounty %s: %w", domain.ErrPaymentPending, bountyID, err)
	}
	return paid, err
}

// AuthorizeBatchPayment marks a bounty eligible for the next batch run.
func (s *Service) AuthorizeBatchPayment(ctx context.Context, caller domain.Identity, bountyID string, scheduledFor *time.Time) (*domain.Bounty, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var authorized *domain.Bounty
	err := s.mutate(ctx, bountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, bountyID)
		if err != nil {
			return nil, err
		}
		if err := s.checkAuthorizable(b); err != nil {
			return nil, err
		}
		b.PaymentAuthorized = true
		b.PaymentScheduled = &domain.PaymentSchedule{Kind: domain.PaymentBatch, ScheduledFor: scheduledFor}
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		authorized = b
		return []events.Event{events.BountyPaymentAuthorized{Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	return authorized, nil
}

// ExecutePayment re-triggers the transfer of an authorized, unpaid instant payment.
func (s *Service) ExecutePayment(ctx context.Context, caller domain.Identity, bountyID string) (*domain.Bounty, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if s.payer == nil {
		return nil, fmt.Errorf("%w: no payment executor configured", domain.ErrGateway)
	}
	if _, err := s.PrepareInstantPayment(ctx, bountyID); err != nil {
		return nil, err
	}
	return s.payer.ExecuteInstant(ctx, bountyID)
}

// PrepareInstantPayment checks that an instant payout may run and projects it for the gateway.
func (s *Service) PrepareInstantPayment(ctx context.Context, bountyID string) (*domain.PendingPayment, error) {
	b, err := s.loadBounty(ctx, bountyID)
	if err != nil {
		return nil, err
	}
	if !b.Payable() {
		return nil, domain.Precondition("bounty %s is not awaiting payment", bountyID)
	}
	if b.ScheduledKind() != domain.PaymentInstant {
		return nil, domain.Precondition("bounty %s is scheduled for %s payment", bountyID, b.ScheduledKind())
	}
	address, err := s.payoutAddress(ctx, b)
	if err != nil {
		return nil, err
	}
	return &domain.PendingPayment{
		BountyID: b.ID,
		Address:  address,
		Amount:   b.Amount,
		Minor:    domain.ToMinorUnits(b.Amount),
		Memo:     domain.PaymentMemo(b),
	}, nil
}

// SettlePayment records a transfer the gateway confirmed: the bounty is marked paid and a
// payment record appended. Settling an already paid bounty changes nothing, so the marking
// step can be replayed after a partial failure.
func (s *Service) SettlePayment(ctx context.Context, st domain.Settlement) (*domain.Bounty, error) {
	var settled *domain.Bounty
	err := s.mutate(ctx, st.BountyID, func(ctx context.Context) ([]events.Event, error) {
		b, rec, err := s.markPaid(ctx, st)
		if err != nil || rec == nil {
			settled = b
			return nil, err
		}
		settled = b
		evs := []events.Event{events.BountyPaid{Bounty: *b, Record: *rec}}
		if st.Kind == domain.PaymentInstant {
			evs = append(evs, events.InstantPaymentProcessed{Bounty: *b, Record: rec, Success: true})
		}
		return evs, nil
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

// markPaid returns a nil record when the bounty was already paid.
func (s *Service) markPaid(ctx context.Context, st domain.Settlement) (*domain.Bounty, *domain.PaymentRecord, error) {
	b, err := s.loadBounty(ctx, st.BountyID)
	if err != nil {
		return nil, nil, err
	}
	if b.IsPaid {
		return b, nil, nil
	}
	if b.Status != domain.StatusDone || !b.IsApproved || !b.PaymentAuthorized {
		return nil, nil, domain.Precondition("bounty %s is not authorized for payment", b.ID)
	}

	paidAt := st.PaidAt
	if paidAt.IsZero() {
		paidAt = s.now()
	}
	amount := st.Amount
	if amount.IsZero() {
		amount = b.Amount
	}
	memo := st.Memo
	if memo == "" {
		memo = domain.PaymentMemo(b)
	}

	b.IsPaid = true
	b.PaidAt = &paidAt
	b.PaymentBatchID = st.BatchID
	if err := s.bounties.Update(ctx, b, b.Version); err != nil {
		return nil, nil, err
	}
	rec := &domain.PaymentRecord{
		ID:        s.newID(),
		BountyID:  b.ID,
		Amount:    amount,
		Address:   st.Address,
		Memo:      memo,
		TxID:      st.TxID,
		BatchID:   st.BatchID,
		CreatedAt: paidAt,
	}
	if err := s.payments.Create(ctx, rec); err != nil {
		return nil, nil, err
	}
	return b, rec, nil
}

// ReportInstantFailure announces a failed instant transfer. The bounty keeps its authorization
// and stays unpaid.
func (s *Service) ReportInstantFailure(ctx context.Context, bountyID string, cause error) (*domain.Bounty, error) {
	var current *domain.Bounty
	err := s.mutate(ctx, bountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, bountyID)
		if err != nil {
			return nil, err
		}
		current = b
		return []events.Event{events.InstantPaymentProcessed{Bounty: *b, Success: false, Error: cause.Error()}}, nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// MarkPaid records a payment made outside the gateway flow, or replays the marking step of one
// that was. A bounty that is already paid is returned unchanged.
func (s *Service) MarkPaid(ctx context.Context, caller domain.Identity, bountyID string, txID string, batchID *string) (*domain.Bounty, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return nil, domain.Invalid("transaction id is required")
	}
	var result *domain.Bounty
	err := s.mutate(ctx, bountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, bountyID)
		if err != nil {
			return nil, err
		}
		st := domain.Settlement{BountyID: bountyID, Kind: b.ScheduledKind(), TxID: txID, BatchID: batchID}
		if b.Assigned() {
			if u, err := s.users.FindByID(ctx, *b.AssigneeID); err != nil {
				return nil, err
			} else if u.HasPayoutAddress() {
				st.Address = *u.PayoutAddress
			}
		}
		b, rec, err := s.markPaid(ctx, st)
		if err != nil {
			return nil, err
		}
		result = b
		if rec == nil {
			return nil, nil
		}
		return []events.Event{events.BountyMarkedPaid{Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("bounty marked paid", zap.String("bounty_id", bountyID), zap.String("tx_id", txID))
	return result, nil
}

func (s *Service) PendingBatchPayments(ctx context.Context) ([]domain.PendingPayment, error) {
	payments, err := s.bounties.FindPendingBatchPayments(ctx)
	if err != nil {
		zap.L().Error("failed to get pending batch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) ListPayments(ctx context.Context, caller domain.Identity) ([]domain.PaymentRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.payments.List(ctx)
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.bounties.Leaderboard(ctx, limit)
}
