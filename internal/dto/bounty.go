package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BountyRequestDTO struct {
	Title          string          `json:"title" example:"Write the wallet import guide"`
	Description    string          `json:"description" example:"Step-by-step guide with screenshots"`
	BountyAmount   decimal.Decimal `json:"bountyAmount" swaggertype:"string" example:"1.25"`
	CategoryID     *int            `json:"categoryId,omitempty" example:"3"`
	TimeToComplete *time.Time      `json:"timeToComplete,omitempty" example:"2026-12-01T00:00:00Z"`
}

type StatusRequestDTO struct {
	Status string `json:"status" example:"IN_PROGRESS"`
}

type ApproveRequestDTO struct {
	Approved *bool `json:"approved" example:"true"`
}
