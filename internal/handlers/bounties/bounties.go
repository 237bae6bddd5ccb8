package bounties

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/internal/service/bountyservice"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/utils"
)

//go:generate mockgen -source=bounties.go -destination=mock_bounties.go -package=bounties

type Service interface {
	CreateBounty(ctx context.Context, caller domain.Identity, in bountyservice.BountyInput) (*domain.Bounty, error)
	UpdateBounty(ctx context.Context, caller domain.Identity, id string, in bountyservice.BountyInput) (*domain.Bounty, error)
	DeleteBounty(ctx context.Context, caller domain.Identity, id string) (*domain.Bounty, error)
	GetBounty(ctx context.Context, id string) (*domain.Bounty, error)
	ListBounties(ctx context.Context, filter domain.BountyFilter) ([]domain.Bounty, error)
	ChangeStatus(ctx context.Context, caller domain.Identity, id string, status domain.BountyStatus) (*domain.Bounty, error)
	ApproveBounty(ctx context.Context, caller domain.Identity, id string, approved bool) (*domain.Bounty, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type BountyHandler struct {
	bountyService Service
}

func New(bountyService Service) *BountyHandler {
	return &BountyHandler{
		bountyService: bountyService,
	}
}

func toInput(req dto.BountyRequestDTO) bountyservice.BountyInput {
	return bountyservice.BountyInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.BountyAmount,
		CategoryID:  req.CategoryID,
		Deadline:    req.TimeToComplete,
	}
}

// ListBounties godoc
//
//	@Summary		List bounties
//	@Description	List bounties, optionally filtered by status, category, assignee or creator.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string	false	"Bounty status"
//	@Param			categoryId	query		int		false	"Category id"
//	@Param			assignee	query		string	false	"Assignee user id"
//	@Param			createdBy	query		string	false	"Creator user id"
//	@Success		200			{array}		domain.Bounty
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		422			{object}	utils.Response	"Invalid filter"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties [get]
func (h *BountyHandler) ListBounties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BountyFilter{
		Status:     domain.BountyStatus(q.Get("status")),
		AssigneeID: q.Get("assignee"),
		CreatedBy:  q.Get("createdBy"),
	}
	if raw := q.Get("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid categoryId")
			return
		}
		filter.CategoryID = &id
	}

	bounties, err := h.bountyService.ListBounties(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if bounties == nil {
		bounties = []domain.Bounty{}
	}
	utils.RespondWithJSON(w, http.StatusOK, bounties)
}

// CreateBounty godoc
//
//	@Summary		Create a bounty
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BountyRequestDTO	true	"Bounty"
//	@Success		201		{object}	domain.Bounty
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Category not found"
//	@Failure		422		{object}	utils.Response	"Invalid bounty"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties [post]
func (h *BountyHandler) CreateBounty(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.BountyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bounty, err := h.bountyService.CreateBounty(r.Context(), caller, toInput(req))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, bounty)
}

// GetBounty godoc
//
//	@Summary	Get a bounty
//	@Tags		Bounties
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Bounty id"
//	@Success	200	{object}	domain.Bounty
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"Bounty not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/{id} [get]
func (h *BountyHandler) GetBounty(w http.ResponseWriter, r *http.Request) {
	bounty, err := h.bountyService.GetBounty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bounty)
}

// UpdateBounty godoc
//
//	@Summary		Edit a bounty
//	@Description	Creator or admin may edit a bounty while it is TO_DO and unassigned.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Bounty id"
//	@Param			request	body		dto.BountyRequestDTO	true	"Bounty"
//	@Success		200		{object}	domain.Bounty
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not the creator"
//	@Failure		404		{object}	utils.Response	"Bounty not found"
//	@Failure		412		{object}	utils.Response	"Bounty can no longer be edited"
//	@Failure		422		{object}	utils.Response	"Invalid bounty"
//	@Router			/api/bounties/{id} [put]
func (h *BountyHandler) UpdateBounty(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.BountyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bounty, err := h.bountyService.UpdateBounty(r.Context(), caller, chi.URLParam(r, "id"), toInput(req))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bounty)
}

// DeleteBounty godoc
//
//	@Summary		Delete a bounty
//	@Description	Removes an unreferenced bounty. A bounty with applications, submissions or payments is cancelled and returned instead.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Bounty id"
//	@Success		200	{object}	domain.Bounty	"Bounty was cancelled"
//	@Success		204	{string}	string			"Bounty was deleted"
//	@Failure		403	{object}	utils.Response	"Not the creator"
//	@Failure		404	{object}	utils.Response	"Bounty not found"
//	@Failure		412	{object}	utils.Response	"Bounty is done"
//	@Router			/api/bounties/{id} [delete]
func (h *BountyHandler) DeleteBounty(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	cancelled, err := h.bountyService.DeleteBounty(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if cancelled == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cancelled)
}

// ChangeStatus godoc
//
//	@Summary	Change bounty status
//	@Tags		Bounties
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Bounty id"
//	@Param		request	body		dto.StatusRequestDTO	true	"New status"
//	@Success	200		{object}	domain.Bounty
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Failure	404		{object}	utils.Response	"Bounty not found"
//	@Failure	412		{object}	utils.Response	"Transition not allowed"
//	@Failure	422		{object}	utils.Response	"Unknown status"
//	@Router		/api/bounties/{id}/status [patch]
func (h *BountyHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.StatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bounty, err := h.bountyService.ChangeStatus(r.Context(), caller, chi.URLParam(r, "id"), domain.BountyStatus(req.Status))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bounty)
}

// ApproveBounty godoc
//
//	@Summary	Approve or unapprove a bounty
//	@Tags		Bounties
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Bounty id"
//	@Param		request	body		dto.ApproveRequestDTO	true	"Approval flag"
//	@Success	200		{object}	domain.Bounty
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Failure	404		{object}	utils.Response	"Bounty not found"
//	@Failure	412		{object}	utils.Response	"Payment already authorized"
//	@Router		/api/bounties/{id}/approve [patch]
func (h *BountyHandler) ApproveBounty(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.ApproveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Approved == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bounty, err := h.bountyService.ApproveBounty(r.Context(), caller, chi.URLParam(r, "id"), *req.Approved)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bounty)
}

// Leaderboard godoc
//
//	@Summary	Hunter leaderboard
//	@Tags		Bounties
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Number of entries"
//	@Success	200		{array}		domain.LeaderboardEntry
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/leaderboard [get]
func (h *BountyHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.bountyService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}
