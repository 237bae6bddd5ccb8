package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BountyStatus string

const (
	StatusToDo       BountyStatus = "TO_DO"
	StatusInProgress BountyStatus = "IN_PROGRESS"
	StatusInReview   BountyStatus = "IN_REVIEW"
	StatusDone       BountyStatus = "DONE"
	StatusCancelled  BountyStatus = "CANCELLED"
)

func (s BountyStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusInReview, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is accepted.
func (s BountyStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type SubmissionStatus string

const (
	SubmissionPending       SubmissionStatus = "pending"
	SubmissionApproved      SubmissionStatus = "approved"
	SubmissionRejected      SubmissionStatus = "rejected"
	SubmissionNeedsRevision SubmissionStatus = "needs_revision"
)

// ReviewOutcome is the subset of submission statuses a reviewer may choose.
func (s SubmissionStatus) ReviewOutcome() bool {
	return s == SubmissionApproved || s == SubmissionRejected || s == SubmissionNeedsRevision
}

type PaymentKind string

const (
	PaymentInstant PaymentKind = "instant"
	PaymentBatch   PaymentKind = "batch"
)

type PaymentSchedule struct {
	Kind         PaymentKind `json:"type"`
	ScheduledFor *time.Time  `json:"scheduledFor,omitempty"`
}

type Bounty struct {
	ID                string           `db:"id" json:"id"`
	Title             string           `db:"title" json:"title"`
	Description       string           `db:"description" json:"description"`
	Amount            decimal.Decimal  `db:"amount" json:"bountyAmount"`
	CategoryID        *int             `db:"category_id" json:"categoryId,omitempty"`
	CreatedBy         string           `db:"created_by" json:"createdBy"`
	AssigneeID        *string          `db:"assignee_id" json:"assignee,omitempty"`
	Status            BountyStatus     `db:"status" json:"status"`
	IsApproved        bool             `db:"is_approved" json:"isApproved"`
	PaymentAuthorized bool             `db:"payment_authorized" json:"paymentAuthorized"`
	PaymentScheduled  *PaymentSchedule `json:"paymentScheduled,omitempty"`
	IsPaid            bool             `db:"is_paid" json:"isPaid"`
	PaymentBatchID    *string          `db:"payment_batch_id" json:"paymentBatchId,omitempty"`
	PaidAt            *time.Time       `db:"paid_at" json:"paidAt,omitempty"`
	CreatedAt         time.Time        `db:"created_at" json:"createdAt"`
	Deadline          *time.Time       `db:"deadline" json:"timeToComplete,omitempty"`
	Version           int              `db:"version" json:"version"`
}

// Assigned reports whether the bounty has an assignee.
func (b *Bounty) Assigned() bool {
	return b.AssigneeID != nil && *b.AssigneeID != ""
}

func (b *Bounty) IsAssignee(userID string) bool {
	return b.Assigned() && *b.AssigneeID == userID
}

// ScheduledKind returns the payment kind, or empty when payment is not scheduled.
func (b *Bounty) ScheduledKind() PaymentKind {
	if b.PaymentScheduled == nil {
		return ""
	}
	return b.PaymentScheduled.Kind
}

// Payable reports whether the bounty satisfies every flag required before money may move.
func (b *Bounty) Payable() bool {
	return b.Status == StatusDone && b.IsApproved && b.PaymentAuthorized && !b.IsPaid
}

type BountyFilter struct {
	Status     BountyStatus
	CategoryID *int
	AssigneeID string
	CreatedBy  string
}

type Application struct {
	ID          string            `db:"id" json:"id"`
	BountyID    string            `db:"bounty_id" json:"bountyId"`
	ApplicantID string            `db:"applicant_id" json:"applicantId"`
	Message     string            `db:"message" json:"message"`
	Status      ApplicationStatus `db:"status" json:"status"`
	AppliedAt   time.Time         `db:"applied_at" json:"appliedAt"`
	Version     int               `db:"version" json:"version"`
}

type WorkSubmission struct {
	ID             string           `db:"id" json:"id"`
	BountyID       string           `db:"bounty_id" json:"bountyId"`
	SubmitterID    string           `db:"submitter_id" json:"submitterId"`
	Description    string           `db:"description" json:"description"`
	DeliverableURL *string          `db:"deliverable_url" json:"deliverableUrl,omitempty"`
	Status         SubmissionStatus `db:"status" json:"status"`
	ReviewNotes    *string          `db:"review_notes" json:"reviewNotes,omitempty"`
	ReviewerID     *string          `db:"reviewer_id" json:"reviewedBy,omitempty"`
	SubmittedAt    time.Time        `db:"submitted_at" json:"submittedAt"`
	ReviewedAt     *time.Time       `db:"reviewed_at" json:"reviewedAt,omitempty"`
	Version        int              `db:"version" json:"version"`
}

type PaymentRecord struct {
	ID        string          `db:"id" json:"id"`
	BountyID  string          `db:"bounty_id" json:"bountyId"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Address   string          `db:"address" json:"address"`
	Memo      string          `db:"memo" json:"memo"`
	TxID      string          `db:"tx_id" json:"txId"`
	BatchID   *string         `db:"batch_id" json:"batchId,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

type User struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	Role          Role      `db:"role" json:"role"`
	PayoutAddress *string   `db:"payout_address" json:"z_address,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

func (u *User) HasPayoutAddress() bool {
	return u != nil && u.PayoutAddress != nil && *u.PayoutAddress != ""
}

type Category struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// PendingPayment is a bounty projected to what the payment gateway needs.
type PendingPayment struct {
	BountyID string          `json:"bountyId"`
	Address  string          `json:"address"`
	Amount   decimal.Decimal `json:"-"`
	Minor    int64           `json:"amount"`
	Memo     string          `json:"memo,omitempty"`
}

// Settlement describes a transfer the gateway confirmed and which must be marked on the bounty.
type Settlement struct {
	BountyID string
	Kind     PaymentKind
	Address  string
	Amount   decimal.Decimal
	Memo     string
	TxID     string
	BatchID  *string
	PaidAt   time.Time
}

type LeaderboardEntry struct {
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Completed int             `json:"completedBounties"`
	Earned    decimal.Decimal `json:"totalEarnings"`
}
