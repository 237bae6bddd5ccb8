package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/dto"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/utils"
)

//go:generate mockgen -source=categories.go -destination=mock_categories.go -package=categories

type Service interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, caller domain.Identity, name string) (*domain.Category, error)
	Update(ctx context.Context, caller domain.Identity, id int, name string) (*domain.Category, error)
	Delete(ctx context.Context, caller domain.Identity, id int) error
}

type CategoryHandler struct {
	categoryService Service
}

func New(categoryService Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List godoc
//
//	@Summary	List categories
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.Category
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bounties/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// Create godoc
//
//	@Summary	Create a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CategoryRequestDTO	true	"Category"
//	@Success	201		{object}	domain.Category
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Failure	409		{object}	utils.Response	"Name already taken"
//	@Failure	422		{object}	utils.Response	"Invalid name"
//	@Router		/api/bounties/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Create(r.Context(), caller, req.Name)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, category)
}

// Update godoc
//
//	@Summary	Rename a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Category id"
//	@Param		request	body		dto.CategoryRequestDTO	true	"Category"
//	@Success	200		{object}	domain.Category
//	@Failure	400		{object}	utils.Response	"Invalid request"
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Failure	404		{object}	utils.Response	"Category not found"
//	@Router		/api/bounties/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Update(r.Context(), caller, id, req.Name)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, category)
}

// Delete godoc
//
//	@Summary		Delete a category
//	@Description	Bounties of the category keep existing without one.
//	@Tags			Categories
//	@Security		BearerAuth
//	@Param			id	path		int		true	"Category id"
//	@Success		204	{string}	string			"Category deleted"
//	@Failure		400	{object}	utils.Response	"Invalid category id"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Category not found"
//	@Router			/api/bounties/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := h.categoryService.Delete(r.Context(), caller, id); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
