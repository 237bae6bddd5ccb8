package memstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type BountyRepo struct {
	s *Store
}

func (r *BountyRepo) FindByID(_ context.Context, id string) (*domain.Bounty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bounties[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BountyRepo) List(_ context.Context, filter domain.BountyFilter) ([]domain.Bounty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Bounty, 0, len(r.s.bounties))
	for _, b := range r.s.bounties {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.CategoryID != nil && (b.CategoryID == nil || *b.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.AssigneeID != "" && !b.IsAssignee(filter.AssigneeID) {
			continue
		}
		if filter.CreatedBy != "" && b.CreatedBy != filter.CreatedBy {
			continue
		}
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b domain.Bounty) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *BountyRepo) Create(_ context.Context, b *domain.Bounty) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bounties[b.ID]; ok {
		return domain.Conflict("bounty %s already exists", b.ID)
	}
	r.s.bounties[b.ID] = *b
	return nil
}

func (r *BountyRepo) Update(_ context.Context, b *domain.Bounty, expectedVersion int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.bounties[b.ID]
	if !ok || cur.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	b.Version = expectedVersion + 1
	r.s.bounties[b.ID] = *b
	return nil
}

func (r *BountyRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bounties[id]; !ok {
		return domain.NotFound("bounty", id)
	}
	delete(r.s.bounties, id)
	for appID, a := range r.s.applications {
		if a.BountyID == id {
			delete(r.s.applications, appID)
		}
	}
	for subID, sub := range r.s.submissions {
		if sub.BountyID == id {
			delete(r.s.submissions, subID)
		}
	}
	return nil
}

func (r *BountyRepo) FindPendingBatchPayments(_ context.Context) ([]domain.PendingPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	eligible := make([]domain.Bounty, 0)
	for _, b := range r.s.bounties {
		if !b.Payable() || b.ScheduledKind() != domain.PaymentBatch || !b.Assigned() {
			continue
		}
		if u, ok := r.s.users[*b.AssigneeID]; !ok || !u.HasPayoutAddress() {
			continue
		}
		eligible = append(eligible, b)
	}
	slices.SortFunc(eligible, func(a, b domain.Bounty) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	out := make([]domain.PendingPayment, 0, len(eligible))
	for _, b := range eligible {
		out = append(out, domain.PendingPayment{
			BountyID: b.ID,
			Address:  *r.s.users[*b.AssigneeID].PayoutAddress,
			Amount:   b.Amount,
			Minor:    domain.ToMinorUnits(b.Amount),
			Memo:     domain.PaymentMemo(&b),
		})
	}
	return out, nil
}

func (r *BountyRepo) Leaderboard(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byUser := make(map[string]*domain.LeaderboardEntry)
	for _, b := range r.s.bounties {
		if !b.IsPaid || !b.Assigned() {
			continue
		}
		e, ok := byUser[*b.AssigneeID]
		if !ok {
			e = &domain.LeaderboardEntry{UserID: *b.AssigneeID, Earned: decimal.Zero}
			if u, found := r.s.users[*b.AssigneeID]; found {
				e.Name = u.Name
			}
			byUser[*b.AssigneeID] = e
		}
		e.Completed++
		e.Earned = e.Earned.Add(b.Amount)
	}

	out := make([]domain.LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b domain.LeaderboardEntry) int {
		if c := b.Earned.Cmp(a.Earned); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Completed, a.Completed); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
