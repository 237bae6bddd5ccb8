package memstore

import (
	"context"
	"slices"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type PaymentRepo struct {
	s *Store
}

func (r *PaymentRepo) Create(_ context.Context, rec *domain.PaymentRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.payments {
		if existing.BountyID == rec.BountyID {
			return domain.Conflict("bounty %s already has a payment record", rec.BountyID)
		}
	}
	r.s.payments[rec.ID] = *rec
	return nil
}

func (r *PaymentRepo) FindByBounty(_ context.Context, bountyID string) (*domain.PaymentRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.payments {
		if rec.BountyID == bountyID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *PaymentRepo) List(_ context.Context) ([]domain.PaymentRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.PaymentRecord, 0, len(r.s.payments))
	for _, rec := range r.s.payments {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b domain.PaymentRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}
