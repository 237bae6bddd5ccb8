package userservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		userRepo: repo,
	}
}

type ProfileInput struct {
	Name          string
	Email         string
	PayoutAddress *string
}

// Profile returns the caller's stored profile, or an unsaved one built from the identity when
// the caller has never saved a profile.
func (s *Service) Profile(ctx context.Context, caller domain.Identity) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return &domain.User{ID: caller.UserID, Role: caller.Role}, nil
	}
	return user, nil
}

// UpdateProfile stores the caller's profile. The role always comes from the verified identity.
func (s *Service) UpdateProfile(ctx context.Context, caller domain.Identity, in ProfileInput) (*domain.User, error) {
	var address *string
	if in.PayoutAddress != nil {
		trimmed := strings.TrimSpace(*in.PayoutAddress)
		if trimmed != "" {
			if !validate.IsPayoutAddress(trimmed) {
				zap.L().Info("rejected payout address", zap.String("user_id", caller.UserID))
				return nil, domain.Invalid("payout address %q is not a recognised shielded, unified or transparent address", trimmed)
			}
			address = &trimmed
		}
	}
	if in.Email != "" && !validate.IsEmail(in.Email) {
		return nil, domain.Invalid("email %q is malformed", in.Email)
	}

	current, err := s.Profile(ctx, caller)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:            caller.UserID,
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Role:          caller.Role,
		PayoutAddress: address,
		CreatedAt:     current.CreatedAt,
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	saved, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		zap.L().Error("can't save user: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("profile updated", zap.String("user_id", caller.UserID))
	return saved, nil
}

func (s *Service) List(ctx context.Context, caller domain.Identity) ([]domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list users: ", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// VerifyAddress checks an address without storing it.
func (s *Service) VerifyAddress(address string) bool {
	return validate.IsPayoutAddress(strings.TrimSpace(address))
}
