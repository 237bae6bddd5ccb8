package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/bountyhub/docs"
	applicationhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/applications"
	bountyhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/bounties"
	categoryhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/categories"
	paymenthandlers "github.com/GlebRadaev/bountyhub/internal/handlers/payments"
	sessionhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/sessions"
	submissionhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/submissions"
	userhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/users"
	"github.com/GlebRadaev/bountyhub/internal/metrics"
	"github.com/GlebRadaev/bountyhub/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type BountyHandler interface {
	ListBounties(w http.ResponseWriter, r *http.Request)
	CreateBounty(w http.ResponseWriter, r *http.Request)
	GetBounty(w http.ResponseWriter, r *http.Request)
	UpdateBounty(w http.ResponseWriter, r *http.Request)
	DeleteBounty(w http.ResponseWriter, r *http.Request)
	ChangeStatus(w http.ResponseWriter, r *http.Request)
	ApproveBounty(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	ListByBounty(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	ListByBounty(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Authorize(w http.ResponseWriter, r *http.Request)
	ExecuteInstant(w http.ResponseWriter, r *http.Request)
	ProcessBatch(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type CategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	VerifyAddress(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type Middleware func(http.Handler) http.Handler

type Handlers struct {
	BountyHandler      BountyHandler
	ApplicationHandler ApplicationHandler
	SubmissionHandler  SubmissionHandler
	PaymentHandler     PaymentHandler
	CategoryHandler    CategoryHandler
	UserHandler        UserHandler
	SessionHandler     SessionHandler

	Authenticate Middleware
	RateLimit    Middleware
}

// Realtime carries what the WebSocket endpoint needs besides the services.
type Realtime struct {
	Registry sessionhandlers.Registry
	Broker   sessionhandlers.Broker
	Config   sessionhandlers.Config
}

func New(s *service.Services, rt Realtime, authenticate, rateLimit Middleware) *Handlers {
	return &Handlers{
		BountyHandler:      bountyhandlers.New(s.BountyService),
		ApplicationHandler: applicationhandlers.New(s.BountyService),
		SubmissionHandler:  submissionhandlers.New(s.BountyService),
		PaymentHandler:     paymenthandlers.New(s.BountyService, s.PayoutService),
		CategoryHandler:    categoryhandlers.New(s.CategoryService),
		UserHandler:        userhandlers.New(s.UserService),
		SessionHandler:     sessionhandlers.New(rt.Registry, rt.Broker, rt.Config),
		Authenticate:       authenticate,
		RateLimit:          rateLimit,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate, h.RateLimit)
		r.Get("/ws", h.SessionHandler.Connect)

		r.Route("/api", func(r chi.Router) {
			r.Route("/bounties", func(r chi.Router) {
				r.Get("/", h.BountyHandler.ListBounties)
				r.Post("/", h.BountyHandler.CreateBounty)
				r.Get("/leaderboard", h.BountyHandler.Leaderboard)

				r.Post("/apply", h.ApplicationHandler.Apply)
				r.Get("/my-applications", h.ApplicationHandler.Mine)
				r.Get("/all-applications", h.ApplicationHandler.All)
				r.Put("/applications/{id}", h.ApplicationHandler.Decide)
				r.Delete("/applications/{id}", h.ApplicationHandler.Withdraw)

				r.Patch("/submissions/{id}/review", h.SubmissionHandler.Review)

				r.Post("/process-batch-payments", h.PaymentHandler.ProcessBatch)
				r.Post("/process-instant-payment", h.PaymentHandler.ExecuteInstant)
				r.Get("/pending-batch-payments", h.PaymentHandler.Pending)

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", h.CategoryHandler.List)
					r.Post("/", h.CategoryHandler.Create)
					r.Put("/{id}", h.CategoryHandler.Update)
					r.Delete("/{id}", h.CategoryHandler.Delete)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.BountyHandler.GetBounty)
					r.Put("/", h.BountyHandler.UpdateBounty)
					r.Delete("/", h.BountyHandler.DeleteBounty)
					r.Patch("/status", h.BountyHandler.ChangeStatus)
					r.Patch("/approve", h.BountyHandler.ApproveBounty)
					r.Get("/applications", h.ApplicationHandler.ListByBounty)
					r.Post("/submit", h.SubmissionHandler.Submit)
					r.Get("/submissions", h.SubmissionHandler.ListByBounty)
					r.Put("/authorize-payment", h.PaymentHandler.Authorize)
					r.Put("/mark-paid", h.PaymentHandler.MarkPaid)
				})
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.PaymentHandler.Records)
				r.Get("/balance", h.PaymentHandler.Balance)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.UserHandler.List)
				r.Get("/me", h.UserHandler.Me)
				r.Put("/me", h.UserHandler.UpdateMe)
				r.Post("/verify-address", h.UserHandler.VerifyAddress)
			})

			r.Get("/sessions", h.SessionHandler.List)
		})
	})

	return r
}
