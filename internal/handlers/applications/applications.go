package applications

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/utils"
)

//go:generate mockgen -source=applications.go -destination=mock_applications.go -package=applications

type Service interface {
	ApplyToBounty(ctx context.Context, caller domain.Identity, bountyID, message string) (*domain.Application, error)
	AcceptApplication(ctx context.Context, caller domain.Identity, applicationID string) (*domain.Application, error)
	RejectApplication(ctx context.Context, caller domain.Identity, applicationID string) (*domain.Application, error)
	WithdrawApplication(ctx context.Context, caller domain.Identity, applicationID string) error
	ListApplications(ctx context.Context, bountyID string) ([]domain.Application, error)
	MyApplications(ctx context.Context, caller domain.Identity) ([]domain.Application, error)
	AllApplications(ctx context.Context, caller domain.Identity) ([]domain.Application, error)
}

type ApplicationHandler struct {
	bountyService Service
}

func New(bountyService Service) *ApplicationHandler {
	return &ApplicationHandler{
		bountyService: bountyService,
	}
}

// Apply godoc
//
//	@Summary		Apply to a bounty
//	@Description	The applicant must not be the creator and may apply to a bounty only once.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyRequestDTO	true	"Application"
//	@Success		201		{object}	domain.Application
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Bounty not found"
//	@Failure		409		{object}	utils.Response	"Bounty is not open for applications"
//	@Router			/api/bounties/apply [post]
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BountyID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.bountyService.ApplyToBounty(r.Context(), caller, req.BountyID, req.Message)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, app)
}

// Decide godoc
//
//	@Summary	Accept or reject an application
//	@Tags		Applications
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Application id"
//	@Param		request	body		dto.ApplicationDecisionRequestDTO	true	"Decision"
//	@Success	200		{object}	domain.Application
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Not the creator"
//	@Failure	404		{object}	utils.Response	"Application not found"
//	@Failure	409		{object}	utils.Response	"Bounty already assigned"
//	@Failure	412		{object}	utils.Response	"Application already decided"
//	@Router		/api/bounties/applications/{id} [put]
func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.ApplicationDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		app *domain.Application
		err error
	)
	id := chi.URLParam(r, "id")
	switch domain.ApplicationStatus(req.Status) {
	case domain.ApplicationAccepted:
		app, err = h.bountyService.AcceptApplication(r.Context(), caller, id)
	case domain.ApplicationRejected:
		app, err = h.bountyService.RejectApplication(r.Context(), caller, id)
	default:
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "status must be accepted or rejected")
		return
	}
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

// Withdraw godoc
//
//	@Summary	Withdraw a pending application
//	@Tags		Applications
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	204	{string}	string			"Application withdrawn"
//	@Failure	403	{object}	utils.Response	"Not the applicant"
//	@Failure	404	{object}	utils.Response	"Application not found"
//	@Failure	412	{object}	utils.Response	"Application already decided"
//	@Router		/api/bounties/applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	if err := h.bountyService.WithdrawApplication(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListByBounty godoc
//
//	@Summary	Applications of a bounty
//	@Tags		Applications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Bounty id"
//	@Success	200	{array}		domain.Application
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/{id}/applications [get]
func (h *ApplicationHandler) ListByBounty(w http.ResponseWriter, r *http.Request) {
	apps, err := h.bountyService.ListApplications(r.Context(), chi.URLParam(r, "id"))
	respondList(w, apps, err)
}

// Mine godoc
//
//	@Summary	Applications of the caller
//	@Tags		Applications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.Application
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/my-applications [get]
func (h *ApplicationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	apps, err := h.bountyService.MyApplications(r.Context(), caller)
	respondList(w, apps, err)
}

// All godoc
//
//	@Summary	Every application
//	@Tags		Applications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.Application
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/all-applications [get]
func (h *ApplicationHandler) All(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	apps, err := h.bountyService.AllApplications(r.Context(), caller)
	respondList(w, apps, err)
}

func respondList(w http.ResponseWriter, apps []domain.Application, err error) {
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	utils.RespondWithJSON(w, http.StatusOK, apps)
}
