package repo

import (
	"github.com/GlebRadaev/bountyhub/internal/pg"
	applicationrepo "github.com/GlebRadaev/bountyhub/internal/repo/application-repo"
	bountyrepo "github.com/GlebRadaev/bountyhub/internal/repo/bounty-repo"
	categoryrepo "github.com/GlebRadaev/bountyhub/internal/repo/category-repo"
	memstore "github.com/GlebRadaev/bountyhub/internal/repo/mem-store"
	paymentrepo "github.com/GlebRadaev/bountyhub/internal/repo/payment-repo"
	submissionrepo "github.com/GlebRadaev/bountyhub/internal/repo/submission-repo"
	userrepo "github.com/GlebRadaev/bountyhub/internal/repo/user-repo"
	"github.com/GlebRadaev/bountyhub/internal/service/bountyservice"
	"github.com/GlebRadaev/bountyhub/internal/service/categoryservice"
	"github.com/GlebRadaev/bountyhub/internal/service/userservice"
)

type Repositories struct {
	BountyRepo      bountyservice.BountyRepo
	ApplicationRepo bountyservice.ApplicationRepo
	SubmissionRepo  bountyservice.SubmissionRepo
	PaymentRepo     bountyservice.PaymentRepo
	UserRepo        userservice.Repo
	CategoryRepo    categoryservice.Repo
	TXManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		BountyRepo:      bountyrepo.New(conn),
		ApplicationRepo: applicationrepo.New(conn),
		SubmissionRepo:  submissionrepo.New(conn),
		PaymentRepo:     paymentrepo.New(conn),
		UserRepo:        userrepo.New(conn),
		CategoryRepo:    categoryrepo.New(conn),
		TXManager:       txManager,
	}
}

// NewMemory backs every repository with one in-memory store. The store is its own
// transaction manager.
func NewMemory(store *memstore.Store) *Repositories {
	return &Repositories{
		BountyRepo:      store.Bounties(),
		ApplicationRepo: store.Applications(),
		SubmissionRepo:  store.Submissions(),
		PaymentRepo:     store.Payments(),
		UserRepo:        store.Users(),
		CategoryRepo:    store.Categories(),
		TXManager:       store,
	}
}

func (r *Repositories) CoordinatorRepos() bountyservice.Repos {
	return bountyservice.Repos{
		Bounties:     r.BountyRepo,
		Applications: r.ApplicationRepo,
		Submissions:  r.SubmissionRepo,
		Payments:     r.PaymentRepo,
		Users:        r.UserRepo,
		Categories:   r.CategoryRepo,
	}
}
