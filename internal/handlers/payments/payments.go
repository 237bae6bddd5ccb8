package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/internal/payout"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/utils"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	AuthorizePayment(ctx context.Context, caller domain.Identity, bountyID string) (*domain.Bounty, error)
	AuthorizeBatchPayment(ctx context.Context, caller domain.Identity, bountyID string, scheduledFor *time.Time) (*domain.Bounty, error)
	ExecutePayment(ctx context.Context, caller domain.Identity, bountyID string) (*domain.Bounty, error)
	MarkPaid(ctx context.Context, caller domain.Identity, bountyID string, txID string, batchID *string) (*domain.Bounty, error)
	PendingBatchPayments(ctx context.Context) ([]domain.PendingPayment, error)
	ListPayments(ctx context.Context, caller domain.Identity) ([]domain.PaymentRecord, error)
}

type Payouts interface {
	ProcessBatchPayments(ctx context.Context, caller domain.Identity) (*payout.BatchReport, error)
	Balance(ctx context.Context, caller domain.Identity) (decimal.Decimal, error)
}

type PaymentHandler struct {
	bountyService Service
	payouts       Payouts
}

func New(bountyService Service, payouts Payouts) *PaymentHandler {
	return &PaymentHandler{
		bountyService: bountyService,
		payouts:       payouts,
	}
}

// Authorize godoc
//
//	@Summary		Authorize a bounty payment
//	@Description	instant pays the assignee now and waits for the gateway; batch (alias sunday_batch) queues the bounty for the next batch run.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Bounty id"
//	@Param			request	body		dto.AuthorizePaymentRequestDTO	true	"Payment type"
//	@Success		200		{object}	domain.Bounty
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Bounty not found"
//	@Failure		409		{object}	utils.Response	"Payment already running"
//	@Failure		412		{object}	utils.Response	"Bounty is not payable"
//	@Failure		500		{object}	utils.Response	"Payment sent but not recorded"
//	@Failure		502		{object}	utils.Response	"Transfer failed, bounty stays authorized and payment is pending"
//	@Router			/api/bounties/{id}/authorize-payment [put]
func (h *PaymentHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.AuthorizePaymentRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if !req.Valid() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "paymentType must be instant or batch")
		return
	}

	var (
		bounty *domain.Bounty
		err    error
	)
	id := chi.URLParam(r, "id")
	if req.IsBatch() {
		bounty, err = h.bountyService.AuthorizeBatchPayment(r.Context(), caller, id, req.ScheduledFor)
	} else {
		bounty, err = h.bountyService.AuthorizePayment(r.Context(), caller, id)
	}
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bounty)
}

// ExecuteInstant godoc
//
//	@Summary		Retry an instant payment
//	@Description	Re-runs the transfer of an authorized, unpaid instant payment after a gateway failure.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InstantPaymentRequestDTO	true	"Bounty"
//	@Success		200		{object}	domain.Bounty
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		409		{object}	utils.Response	"Payment already running"
//	@Failure		412		{object}	utils.Response	"Bounty is not payable"
//	@Failure		502		{object}	utils.Response	"Gateway failure"
//	@Router			/api/bounties/process-instant-payment [post]
func (h *PaymentHandler) ExecuteInstant(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.InstantPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BountyID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bounty, err := h.bountyService.ExecutePayment(r.Context(), caller, req.BountyID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bounty)
}

// ProcessBatch godoc
//
//	@Summary		Run the batch payout now
//	@Description	Sends every pending batch payment in one gateway batch and marks the confirmed ones paid.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	payout.BatchReport
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		409	{object}	utils.Response	"A batch is already running"
//	@Failure		500	{object}	utils.Response	"Batch sent but not fully recorded"
//	@Failure		502	{object}	utils.Response	"Gateway rejected the batch, nothing was paid"
//	@Router			/api/bounties/process-batch-payments [post]
func (h *PaymentHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	report, err := h.payouts.ProcessBatchPayments(r.Context(), caller)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Pending godoc
//
//	@Summary	Pending batch payments
//	@Tags		Payments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.PendingPayment
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/pending-batch-payments [get]
func (h *PaymentHandler) Pending(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())
	if !caller.IsAdmin() {
		utils.RespondWithDomainError(w, domain.ErrForbidden)
		return
	}

	pending, err := h.bountyService.PendingBatchPayments(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if pending == nil {
		pending = []domain.PendingPayment{}
	}
	utils.RespondWithJSON(w, http.StatusOK, pending)
}

// MarkPaid godoc
//
//	@Summary		Mark a bounty paid
//	@Description	Records a payment made outside the gateway flow or replays the marking step. Repeating it is a no-op.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Bounty id"
//	@Param			request	body		dto.MarkPaidRequestDTO	true	"Transaction"
//	@Success		200		{object}	domain.Bounty
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Bounty not found"
//	@Failure		412		{object}	utils.Response	"Bounty is not payable"
//	@Failure		422		{object}	utils.Response	"Transaction id is required"
//	@Router			/api/bounties/{id}/mark-paid [put]
func (h *PaymentHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.MarkPaidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bounty, err := h.bountyService.MarkPaid(r.Context(), caller, chi.URLParam(r, "id"), req.TransactionID, req.BatchID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bounty)
}

// Records godoc
//
//	@Summary	Payment records
//	@Tags		Payments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.PaymentRecord
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/transactions [get]
func (h *PaymentHandler) Records(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	records, err := h.bountyService.ListPayments(r.Context(), caller)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if records == nil {
		records = []domain.PaymentRecord{}
	}
	utils.RespondWithJSON(w, http.StatusOK, records)
}

// Balance godoc
//
//	@Summary	Payout wallet balance
//	@Tags		Payments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.BalanceResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Failure	502	{object}	utils.Response	"Gateway unavailable"
//	@Router		/api/transactions/balance [get]
func (h *PaymentHandler) Balance(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	balance, err := h.payouts.Balance(r.Context(), caller)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:      balance,
		BalanceMinor: domain.ToMinorUnits(balance),
	})
}
