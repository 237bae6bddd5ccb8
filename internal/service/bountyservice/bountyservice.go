// Package bountyservice is the lifecycle coordinator: every state transition of a bounty, its
// applications, its work submissions and its payment flags goes through here.
package bountyservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/internal/pg"
)

//go:generate mockgen -source=bountyservice.go -destination=mock_bountyservice.go -package=bountyservice

type BountyRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Bounty, error)
	List(ctx context.Context, filter domain.BountyFilter) ([]domain.Bounty, error)
	Create(ctx context.Context, b *domain.Bounty) error
	Update(ctx context.Context, b *domain.Bounty, expectedVersion int) error
	Delete(ctx context.Context, id string) error
	FindPendingBatchPayments(ctx context.Context) ([]domain.PendingPayment, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type ApplicationRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByBountyAndApplicant(ctx context.Context, bountyID string, applicantID string) (*domain.Application, error)
	ListByBounty(ctx context.Context, bountyID string) ([]domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	CountByBounty(ctx context.Context, bountyID string) (int, error)
	Create(ctx context.Context, a *domain.Application) error
	Update(ctx context.Context, a *domain.Application, expectedVersion int) error
	Delete(ctx context.Context, id string) error
}

type SubmissionRepo interface {
	FindByID(ctx context.Context, id string) (*domain.WorkSubmission, error)
	FindPendingByBounty(ctx context.Context, bountyID string) (*domain.WorkSubmission, error)
	ListByBounty(ctx context.Context, bountyID string) ([]domain.WorkSubmission, error)
	CountByBounty(ctx context.Context, bountyID string) (int, error)
	Create(ctx context.Context, s *domain.WorkSubmission) error
	Update(ctx context.Context, s *domain.WorkSubmission, expectedVersion int) error
}

type PaymentRepo interface {
	Create(ctx context.Context, rec *domain.PaymentRecord) error
	FindByBounty(ctx context.Context, bountyID string) (*domain.PaymentRecord, error)
	List(ctx context.Context) ([]domain.PaymentRecord, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type CategoryRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Category, error)
}

// Publisher receives events after the transaction that produced them has committed.
type Publisher interface {
	Publish(evs ...events.Event)
}

// Payer moves money for an authorized instant payment and reports back through
// SettlePayment or ReportInstantFailure.
type Payer interface {
	ExecuteInstant(ctx context.Context, bountyID string) (*domain.Bounty, error)
}

type Repos struct {
	Bounties     BountyRepo
	Applications ApplicationRepo
	Submissions  SubmissionRepo
	Payments     PaymentRepo
	Users        UserRepo
	Categories   CategoryRepo
}

type Service struct {
	bounties     BountyRepo
	applications ApplicationRepo
	submissions  SubmissionRepo
	payments     PaymentRepo
	users        UserRepo
	categories   CategoryRepo
	txManager    pg.TXManager
	publisher    Publisher
	payer        Payer
	locks        *keyLock

	now   func() time.Time
	newID func() string
}

func New(repos Repos, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		bounties:     repos.Bounties,
		applications: repos.Applications,
		submissions:  repos.Submissions,
		payments:     repos.Payments,
		users:        repos.Users,
		categories:   repos.Categories,
		txManager:    txManager,
		publisher:    publisher,
		locks:        newKeyLock(),
		now:          func() time.Time { return time.Now().UTC() },
		newID:        func() string { return uuid.NewString() },
	}
}

// SetPayer attaches the instant payment executor. Without one, instant authorizations only
// set the flag and a later ExecutePayment is required.
func (s *Service) SetPayer(p Payer) {
	s.payer = p
}

// mutate runs fn inside a transaction while holding the bounty's lock, retrying once when the
// store reports a stale version. Events returned by fn are published after commit and before
// the lock is released, so observers see one bounty's events in commit order.
func (s *Service) mutate(ctx context.Context, bountyID string, fn func(ctx context.Context) ([]events.Event, error)) error {
	unlock, err := s.locks.Lock(ctx, bountyID)
	if err != nil {
		return err
	}
	defer unlock()

	var evs []events.Event
	for attempt := 0; attempt < 2; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			evs, err = fn(ctx)
			return err
		})
		if !errors.Is(err, domain.ErrVersionConflict) {
			break
		}
		zap.L().Warn("stale version, retrying", zap.String("bounty_id", bountyID), zap.Int("attempt", attempt+1))
	}
	if errors.Is(err, domain.ErrVersionConflict) {
		return domain.Conflict("bounty %s was modified concurrently", bountyID)
	}
	if err != nil {
		return err
	}
	if len(evs) > 0 {
		s.publisher.Publish(evs...)
	}
	return nil
}

// loadBounty reads a bounty or fails with a not-found error.
func (s *Service) loadBounty(ctx context.Context, id string) (*domain.Bounty, error) {
	b, err := s.bounties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound("bounty", id)
	}
	return b, nil
}

func requireAdmin(caller domain.Identity) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func canManage(caller domain.Identity, b *domain.Bounty) bool {
	return caller.IsAdmin() || b.CreatedBy == caller.UserID
}
