package memstore

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Category) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *CategoryRepo) FindByID(_ context.Context, id int) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) nameTaken(name string, except int) bool {
	for id, c := range r.s.categories {
		if c.Name == name && id != except {
			return true
		}
	}
	return false
}

func (r *CategoryRepo) Create(_ context.Context, c *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return domain.Conflict("category %q already exists", c.Name)
	}
	r.s.nextCategory++
	c.ID = r.s.nextCategory
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Update(_ context.Context, c *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.NotFound("category", strconv.Itoa(c.ID))
	}
	if r.nameTaken(c.Name, c.ID) {
		return domain.Conflict("category %q already exists", c.Name)
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	for bid, b := range r.s.bounties {
		if b.CategoryID != nil && *b.CategoryID == id {
			b.CategoryID = nil
			r.s.bounties[bid] = b
		}
	}
	return nil
}
