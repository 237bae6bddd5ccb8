package submissions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/internal/service/bountyservice"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/utils"
)

//go:generate mockgen -source=submissions.go -destination=mock_submissions.go -package=submissions

type Service interface {
	SubmitWork(ctx context.Context, caller domain.Identity, bountyID string, in bountyservice.SubmissionInput) (*domain.WorkSubmission, error)
	ReviewWorkSubmission(ctx context.Context, caller domain.Identity, submissionID string, outcome domain.SubmissionStatus, notes string) (*bountyservice.ReviewResult, error)
	ListSubmissions(ctx context.Context, bountyID string) ([]domain.WorkSubmission, error)
}

type SubmissionHandler struct {
	bountyService Service
}

func New(bountyService Service) *SubmissionHandler {
	return &SubmissionHandler{
		bountyService: bountyService,
	}
}

// Submit godoc
//
//	@Summary		Submit work for a bounty
//	@Description	Only the assignee may submit, and only while no other submission waits for review.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Bounty id"
//	@Param			request	body		dto.SubmitWorkRequestDTO	true	"Submission"
//	@Success		201		{object}	domain.WorkSubmission
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not the assignee"
//	@Failure		404		{object}	utils.Response	"Bounty not found"
//	@Failure		412		{object}	utils.Response	"Submission not accepted in the current state"
//	@Failure		422		{object}	utils.Response	"Invalid submission"
//	@Router			/api/bounties/{id}/submit [post]
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.SubmitWorkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.bountyService.SubmitWork(r.Context(), caller, chi.URLParam(r, "id"), bountyservice.SubmissionInput{
		Description:    req.Description,
		DeliverableURL: req.DeliverableURL,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, sub)
}

// Review godoc
//
//	@Summary		Review a work submission
//	@Description	approved completes the bounty; rejected and needs_revision send it back to IN_PROGRESS.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Submission id"
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review"
//	@Success		200		{object}	dto.ReviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not the creator"
//	@Failure		404		{object}	utils.Response	"Submission not found"
//	@Failure		412		{object}	utils.Response	"Submission already reviewed"
//	@Failure		422		{object}	utils.Response	"Unknown outcome"
//	@Router			/api/bounties/submissions/{id}/review [patch]
func (h *SubmissionHandler) Review(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.bountyService.ReviewWorkSubmission(r.Context(), caller, chi.URLParam(r, "id"), domain.SubmissionStatus(req.Status), req.ReviewNotes)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReviewResponseDTO{
		Submission: res.Submission,
		Bounty:     res.Bounty,
	})
}

// ListByBounty godoc
//
//	@Summary	Submissions of a bounty
//	@Tags		Submissions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Bounty id"
//	@Success	200	{array}		domain.WorkSubmission
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/{id}/submissions [get]
func (h *SubmissionHandler) ListByBounty(w http.ResponseWriter, r *http.Request) {
	subs, err := h.bountyService.ListSubmissions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if subs == nil {
		subs = []domain.WorkSubmission{}
	}
	utils.RespondWithJSON(w, http.StatusOK, subs)
}
