package memstore

import (
	"context"
	"slices"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type SubmissionRepo struct {
	s *Store
}

func (r *SubmissionRepo) FindByID(_ context.Context, id string) (*domain.WorkSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.submissions[id]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (r *SubmissionRepo) FindPendingByBounty(_ context.Context, bountyID string) (*domain.WorkSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sub := range r.s.submissions {
		if sub.BountyID == bountyID && sub.Status == domain.SubmissionPending {
			return &sub, nil
		}
	}
	return nil, nil
}

func (r *SubmissionRepo) ListByBounty(_ context.Context, bountyID string) ([]domain.WorkSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.WorkSubmission, 0)
	for _, sub := range r.s.submissions {
		if sub.BountyID == bountyID {
			out = append(out, sub)
		}
	}
	slices.SortFunc(out, func(a, b domain.WorkSubmission) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
	return out, nil
}

func (r *SubmissionRepo) CountByBounty(ctx context.Context, bountyID string) (int, error) {
	subs, err := r.ListByBounty(ctx, bountyID)
	return len(subs), err
}

func (r *SubmissionRepo) Create(_ context.Context, sub *domain.WorkSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.submissions[sub.ID] = *sub
	return nil
}

func (r *SubmissionRepo) Update(_ context.Context, sub *domain.WorkSubmission, expectedVersion int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.submissions[sub.ID]
	if !ok || cur.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	sub.Version = expectedVersion + 1
	r.s.submissions[sub.ID] = *sub
	return nil
}
