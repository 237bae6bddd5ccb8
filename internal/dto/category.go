package dto

type CategoryRequestDTO struct {
	Name string `json:"name" example:"Documentation"`
}
