package bountyservice

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
)

type BountyInput struct {
	Title       string
	Description string
	Amount      decimal.Decimal
	CategoryID  *int
	Deadline    *time.Time
}

// transitions lists the statuses reachable from each non-terminal status by an explicit
// status change. Review outcomes move the status on their own.
var transitions = map[domain.BountyStatus][]domain.BountyStatus{
	domain.StatusToDo:       {domain.StatusInProgress, domain.StatusCancelled},
	domain.StatusInProgress: {domain.StatusInReview, domain.StatusCancelled},
	domain.StatusInReview:   {domain.StatusDone, domain.StatusInProgress, domain.StatusCancelled},
}

func canTransition(from, to domain.BountyStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *Service) validateInput(ctx context.Context, in BountyInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Invalid("title is required")
	}
	if in.Amount.IsNegative() {
		return domain.Invalid("amount must not be negative")
	}
	if !domain.FitsMinorUnits(in.Amount) {
		return domain.Invalid("amount %s exceeds the largest transferable amount", in.Amount)
	}
	if in.CategoryID != nil {
		c, err := s.categories.FindByID(ctx, *in.CategoryID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("category", strconv.Itoa(*in.CategoryID))
		}
	}
	return nil
}

func (s *Service) CreateBounty(ctx context.Context, caller domain.Identity, in BountyInput) (*domain.Bounty, error) {
	if caller.Role != domain.RoleAdmin && caller.Role != domain.RoleClient {
		return nil, domain.ErrForbidden
	}
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	b := &domain.Bounty{
		ID:          s.newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Amount:      in.Amount,
		CategoryID:  in.CategoryID,
		CreatedBy:   caller.UserID,
		Status:      domain.StatusToDo,
		CreatedAt:   s.now(),
		Deadline:    in.Deadline,
		Version:     1,
	}
	err := s.mutate(ctx, b.ID, func(ctx context.Context) ([]events.Event, error) {
		if err := s.bounties.Create(ctx, b); err != nil {
			return nil, err
		}
		return []events.Event{events.NewBounty{Bounty: *b}}, nil
	})
	if err != nil {
		zap.L().Error("failed to create bounty", zap.String("user_id", caller.UserID), zap.Error(err))
		return nil, err
	}
	return b, nil
}

// UpdateBounty edits the descriptive fields of a bounty nobody has started on yet.
func (s *Service) UpdateBounty(ctx context.Context, caller domain.Identity, id string, in BountyInput) (*domain.Bounty, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}
	var updated *domain.Bounty
	err := s.mutate(ctx, id, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, id)
		if err != nil {
			return nil, err
		}
		if !canManage(caller, b) {
			return nil, domain.ErrForbidden
		}
		if b.Status != domain.StatusToDo || b.Assigned() {
			return nil, domain.Precondition("bounty %s can only be edited while open and unassigned", id)
		}
		b.Title = strings.TrimSpace(in.Title)
		b.Description = in.Description
		b.Amount = in.Amount
		b.CategoryID = in.CategoryID
		b.Deadline = in.Deadline
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		updated = b
		return []events.Event{events.BountyUpdated{Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBounty removes a bounty that nothing refers to yet and returns nil. A referenced
// bounty is cancelled instead and returned.
func (s *Service) DeleteBounty(ctx context.Context, caller domain.Identity, id string) (*domain.Bounty, error) {
	var cancelled *domain.Bounty
	err := s.mutate(ctx, id, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, id)
		if err != nil {
			return nil, err
		}
		if !canManage(caller, b) {
			return nil, domain.ErrForbidden
		}
		referenced, err := s.isReferenced(ctx, b)
		if err != nil {
			return nil, err
		}
		if !referenced {
			if err := s.bounties.Delete(ctx, id); err != nil {
				return nil, err
			}
			return []events.Event{events.BountyDeleted{BountyID: id}}, nil
		}

		cancelled = b
		switch b.Status {
		case domain.StatusCancelled:
			return nil, nil
		case domain.StatusDone:
			return nil, domain.Precondition("bounty %s is done and has history; it cannot be removed", id)
		}
		if err := s.ensureNoPendingSubmission(ctx, b); err != nil {
			return nil, err
		}
		b.Status = domain.StatusCancelled
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		return []events.Event{events.BountyStatusChanged{Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// ensureNoPendingSubmission guards moves into a terminal status: a terminal bounty can no longer
// be reviewed, so its pending submission would never be settled.
func (s *Service) ensureNoPendingSubmission(ctx context.Context, b *domain.Bounty) error {
	pending, err := s.submissions.FindPendingByBounty(ctx, b.ID)
	if err != nil {
		return err
	}
	if pending != nil {
		return domain.Precondition("bounty %s has submission %s awaiting review", b.ID, pending.ID)
	}
	return nil
}

func (s *Service) isReferenced(ctx context.Context, b *domain.Bounty) (bool, error) {
	if b.Assigned() || b.PaymentAuthorized || b.IsPaid {
		return true, nil
	}
	apps, err := s.applications.CountByBounty(ctx, b.ID)
	if err != nil {
		return false, err
	}
	subs, err := s.submissions.CountByBounty(ctx, b.ID)
	if err != nil {
		return false, err
	}
	return apps > 0 || subs > 0, nil
}

func (s *Service) GetBounty(ctx context.Context, id string) (*domain.Bounty, error) {
	return s.loadBounty(ctx, id)
}

func (s *Service) ListBounties(ctx context.Context, filter domain.BountyFilter) ([]domain.Bounty, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.Invalid("unknown status %q", filter.Status)
	}
	bounties, err := s.bounties.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list bounties", zap.Error(err))
		return nil, err
	}
	return bounties, nil
}

// ChangeStatus applies an explicit, admin-driven status transition. Setting the current status
// again is accepted and changes nothing.
func (s *Service) ChangeStatus(ctx context.Context, caller domain.Identity, id string, status domain.BountyStatus) (*domain.Bounty, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.Invalid("unknown status %q", status)
	}
	var result *domain.Bounty
	err := s.mutate(ctx, id, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, id)
		if err != nil {
			return nil, err
		}
		result = b
		if b.Status == status {
			return nil, nil
		}
		if !canTransition(b.Status, status) {
			return nil, domain.Precondition("bounty %s cannot move from %s to %s", id, b.Status, status)
		}
		if status.Terminal() {
			if err := s.ensureNoPendingSubmission(ctx, b); err != nil {
				return nil, err
			}
		}
		b.Status = status
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		return []events.Event{events.BountyStatusChanged{Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApproveBounty sets the approval flag. Repeating the current value is a no-op.
func (s *Service) ApproveBounty(ctx context.Context, caller domain.Identity, id string, approved bool) (*domain.Bounty, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	var result *domain.Bounty
	err := s.mutate(ctx, id, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, id)
		if err != nil {
			return nil, err
		}
		result = b
		if b.IsApproved == approved {
			return nil, nil
		}
		if !approved && (b.PaymentAuthorized || b.IsPaid) {
			return nil, domain.Precondition("bounty %s has an authorized payment and cannot be unapproved", id)
		}
		b.IsApproved = approved
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		return []events.Event{events.BountyApproved{Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
