package memstore

import (
	"context"
	"slices"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type ApplicationRepo struct {
	s *Store
}

func (r *ApplicationRepo) collect(keep func(domain.Application) bool, newestFirst bool) []domain.Application {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Application, 0)
	for _, a := range r.s.applications {
		if keep(a) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b domain.Application) int {
		if newestFirst {
			return b.AppliedAt.Compare(a.AppliedAt)
		}
		return a.AppliedAt.Compare(b.AppliedAt)
	})
	return out
}

func (r *ApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *ApplicationRepo) FindByBountyAndApplicant(_ context.Context, bountyID, applicantID string) (*domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.applications {
		if a.BountyID == bountyID && a.ApplicantID == applicantID {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *ApplicationRepo) ListByBounty(_ context.Context, bountyID string) ([]domain.Application, error) {
	return r.collect(func(a domain.Application) bool { return a.BountyID == bountyID }, false), nil
}

func (r *ApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]domain.Application, error) {
	return r.collect(func(a domain.Application) bool { return a.ApplicantID == applicantID }, true), nil
}

func (r *ApplicationRepo) ListAll(_ context.Context) ([]domain.Application, error) {
	return r.collect(func(domain.Application) bool { return true }, true), nil
}

func (r *ApplicationRepo) CountByBounty(ctx context.Context, bountyID string) (int, error) {
	apps, err := r.ListByBounty(ctx, bountyID)
	return len(apps), err
}

func (r *ApplicationRepo) Create(_ context.Context, a *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.applications {
		if existing.BountyID == a.BountyID && existing.ApplicantID == a.ApplicantID {
			return domain.Conflict("applicant %s already applied to bounty %s", a.ApplicantID, a.BountyID)
		}
	}
	r.s.applications[a.ID] = *a
	return nil
}

func (r *ApplicationRepo) Update(_ context.Context, a *domain.Application, expectedVersion int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.applications[a.ID]
	if !ok || cur.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	a.Version = expectedVersion + 1
	r.s.applications[a.ID] = *a
	return nil
}

func (r *ApplicationRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.applications, id)
	return nil
}
