// Package memstore is a process-local record store with the same contracts as the Postgres
// repositories. Transactions are serialized and rolled back by restoring a snapshot.
package memstore

import (
	"context"
	"maps"
	"sync"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type txMarker struct{}

type Store struct {
	mu    sync.Mutex
	txSem chan struct{}

	bounties     map[string]domain.Bounty
	applications map[string]domain.Application
	submissions  map[string]domain.WorkSubmission
	payments     map[string]domain.PaymentRecord
	users        map[string]domain.User
	categories   map[int]domain.Category
	nextCategory int
}

func New() *Store {
	return &Store{
		txSem:        make(chan struct{}, 1),
		bounties:     make(map[string]domain.Bounty),
		applications: make(map[string]domain.Application),
		submissions:  make(map[string]domain.WorkSubmission),
		payments:     make(map[string]domain.PaymentRecord),
		users:        make(map[string]domain.User),
		categories:   make(map[int]domain.Category),
	}
}

type snapshot struct {
	bounties     map[string]domain.Bounty
	applications map[string]domain.Application
	submissions  map[string]domain.WorkSubmission
	payments     map[string]domain.PaymentRecord
	users        map[string]domain.User
	categories   map[int]domain.Category
	nextCategory int
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		bounties:     maps.Clone(s.bounties),
		applications: maps.Clone(s.applications),
		submissions:  maps.Clone(s.submissions),
		payments:     maps.Clone(s.payments),
		users:        maps.Clone(s.users),
		categories:   maps.Clone(s.categories),
		nextCategory: s.nextCategory,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounties = snap.bounties
	s.applications = snap.applications
	s.submissions = snap.submissions
	s.payments = snap.payments
	s.users = snap.users
	s.categories = snap.categories
	s.nextCategory = snap.nextCategory
}

// Begin runs fn as one transaction. Transactions never interleave; a failed fn leaves the
// store as it was before Begin.
func (s *Store) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}
	select {
	case s.txSem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.txSem }()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) Bounties() *BountyRepo {
	return &BountyRepo{s: s}
}

func (s *Store) Applications() *ApplicationRepo {
	return &ApplicationRepo{s: s}
}

func (s *Store) Submissions() *SubmissionRepo {
	return &SubmissionRepo{s: s}
}

func (s *Store) Payments() *PaymentRepo {
	return &PaymentRepo{s: s}
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{s: s}
}

func (s *Store) Categories() *CategoryRepo {
	return &CategoryRepo{s: s}
}
