package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentTypeInstant     = "instant"
	PaymentTypeBatch       = "batch"
	PaymentTypeSundayBatch = "sunday_batch"
)

type AuthorizePaymentRequestDTO struct {
	PaymentType  string     `json:"paymentType" example:"batch"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty" example:"2026-10-18T00:00:00Z"`
}

// IsBatch reports whether the request schedules the bounty for a batch run. An empty type
// means instant.
func (r AuthorizePaymentRequestDTO) IsBatch() bool {
	return r.PaymentType == PaymentTypeBatch || r.PaymentType == PaymentTypeSundayBatch
}

func (r AuthorizePaymentRequestDTO) Valid() bool {
	return r.PaymentType == "" || r.PaymentType == PaymentTypeInstant || r.IsBatch()
}

type InstantPaymentRequestDTO struct {
	BountyID string `json:"bountyId" example:"5f0c7c1e-8a4e-4a55-a3a4-3f1e0f0b9a11"`
}

type MarkPaidRequestDTO struct {
	TransactionID string  `json:"transactionId" example:"a3f1c2"`
	BatchID       *string `json:"batchId,omitempty" example:"batch-2026-10-18"`
}

type BalanceResponseDTO struct {
	Balance      decimal.Decimal `json:"balance" swaggertype:"string" example:"12.5"`
	BalanceMinor int64           `json:"balanceMinor" example:"1250000000"`
}
