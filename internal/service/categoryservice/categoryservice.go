package categoryservice

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
)

//go:generate mockgen -source=categoryservice.go -destination=mock_categoryservice.go -package=categoryservice

const maxNameLength = 64

type Repo interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int) error
}

type Publisher interface {
	Publish(evs ...events.Event)
}

type Service struct {
	categoryRepo Repo
	publisher    Publisher
}

func New(repo Repo, publisher Publisher) *Service {
	return &Service{
		categoryRepo: repo,
		publisher:    publisher,
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.Invalid("category name is required")
	}
	if len(name) > maxNameLength {
		return "", domain.Invalid("category name exceeds %d characters", maxNameLength)
	}
	return name, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list categories: ", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (s *Service) Create(ctx context.Context, caller domain.Identity, name string) (*domain.Category, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	category := &domain.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		zap.L().Error("can't create category: ", zap.Error(err))
		return nil, err
	}
	s.publisher.Publish(events.CategoryCreated{Category: *category})
	return category, nil
}

func (s *Service) Update(ctx context.Context, caller domain.Identity, id int, name string) (*domain.Category, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	category := &domain.Category{ID: id, Name: name}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		zap.L().Error("can't update category: ", zap.Int("category_id", id), zap.Error(err))
		return nil, err
	}
	s.publisher.Publish(events.CategoryUpdated{Category: *category})
	return category, nil
}

// Delete removes the category. Bounties that referenced it keep existing without a category.
func (s *Service) Delete(ctx context.Context, caller domain.Identity, id int) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find category: ", zap.Int("category_id", id), zap.Error(err))
		return err
	}
	if category == nil {
		return domain.NotFound("category", strconv.Itoa(id))
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete category: ", zap.Int("category_id", id), zap.Error(err))
		return err
	}
	s.publisher.Publish(events.CategoryDeleted{Category: *category})
	return nil
}
