package dto

import "github.com/GlebRadaev/bountyhub/internal/domain"

type SubmitWorkRequestDTO struct {
	Description    string  `json:"description" example:"Guide is published in the wiki"`
	DeliverableURL *string `json:"deliverableUrl,omitempty" example:"https://example.org/guide"`
}

type ReviewRequestDTO struct {
	Status      string `json:"status" example:"approved"`
	ReviewNotes string `json:"reviewNotes" example:"Looks good"`
}

type ReviewResponseDTO struct {
	Submission domain.WorkSubmission `json:"submission"`
	Bounty     domain.Bounty         `json:"bounty"`
}
