package dto

type ApplyRequestDTO struct {
	BountyID string `json:"bountyId" example:"5f0c7c1e-8a4e-4a55-a3a4-3f1e0f0b9a11"`
	Message  string `json:"message" example:"I can do this"`
}

type ApplicationDecisionRequestDTO struct {
	Status string `json:"status" example:"accepted"`
}
