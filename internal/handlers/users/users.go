package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/internal/service/userservice"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/utils"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type Service interface {
	Profile(ctx context.Context, caller domain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, caller domain.Identity, in userservice.ProfileInput) (*domain.User, error)
	List(ctx context.Context, caller domain.Identity) ([]domain.User, error)
	VerifyAddress(address string) bool
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Me godoc
//
//	@Summary	Profile of the caller
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	domain.User
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	user, err := h.userService.Profile(r.Context(), caller)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateMe godoc
//
//	@Summary		Update the caller's profile
//	@Description	Stores name, email and payout address. The address must be a shielded, unified or transparent address.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProfileRequestDTO	true	"Profile"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Invalid payout address or email"
//	@Router			/api/users/me [put]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.ProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), caller, userservice.ProfileInput{
		Name:          req.Name,
		Email:         req.Email,
		PayoutAddress: req.ZAddress,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// List godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.User
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Router		/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	users, err := h.userService.List(r.Context(), caller)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// VerifyAddress godoc
//
//	@Summary	Check a payout address
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.VerifyAddressRequestDTO	true	"Address"
//	@Success	200		{object}	dto.VerifyAddressResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/users/verify-address [post]
func (h *UserHandler) VerifyAddress(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyAddressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyAddressResponseDTO{
		Address: req.Address,
		Valid:   h.userService.VerifyAddress(req.Address),
	})
}
