package service

import (
	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/internal/payout"
	"github.com/GlebRadaev/bountyhub/internal/repo"
	"github.com/GlebRadaev/bountyhub/internal/service/bountyservice"
	"github.com/GlebRadaev/bountyhub/internal/service/categoryservice"
	"github.com/GlebRadaev/bountyhub/internal/service/userservice"
)

type Publisher interface {
	Publish(evs ...events.Event)
}

type Services struct {
	BountyService   *bountyservice.Service
	CategoryService *categoryservice.Service
	UserService     *userservice.Service
	PayoutService   *payout.Service
}

// New wires the coordinator and the payout executor to each other. Every service publishes to
// the same publisher so one bounty's events keep their order.
func New(repos *repo.Repositories, publisher Publisher, gw payout.Gateway, payoutCfg payout.Config) *Services {
	bountyService := bountyservice.New(repos.CoordinatorRepos(), repos.TXManager, publisher)
	payoutService := payout.New(payoutCfg, bountyService, gw, publisher)
	bountyService.SetPayer(payoutService)

	return &Services{
		BountyService:   bountyService,
		CategoryService: categoryservice.New(repos.CategoryRepo, publisher),
		UserService:     userservice.New(repos.UserRepo),
		PayoutService:   payoutService,
	}
}
