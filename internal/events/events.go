// Package events defines the domain events pushed to connected sessions.
//
// Every event kind is its own type implementing the sealed Event interface, so the set of
// kinds is closed to this package. Payload performs the exhaustive match used by encoders.
package events

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

type Kind string

const (
	KindNewBounty               Kind = "new_bounty"
	KindBountyUpdated           Kind = "bounty_updated"
	KindBountyStatusChanged     Kind = "bounty_status_changed"
	KindBountyApproved          Kind = "bounty_approved"
	KindBountyDeleted           Kind = "bounty_deleted"
	KindApplicationCreated      Kind = "application_created"
	KindApplicationUpdated      Kind = "application_updated"
	KindApplicationDeleted      Kind = "application_deleted"
	KindWorkSubmitted           Kind = "work_submitted"
	KindSubmissionReviewed      Kind = "submission_reviewed"
	KindPaymentAuthorized       Kind = "payment_authorized"
	KindBountyPaymentAuthorized Kind = "bounty_payment_authorized"
	KindBatchPaymentProcessed   Kind = "batch_payment_processed"
	KindInstantPaymentProcessed Kind = "instant_payment_processed"
	KindBountyMarkedPaid        Kind = "bounty_marked_paid"
	KindBountyPaid              Kind = "bounty_paid"
	KindBalanceUpdated          Kind = "balance_updated"
	KindCategoryCreated         Kind = "category_created"
	KindCategoryUpdated         Kind = "category_updated"
	KindCategoryDeleted         Kind = "category_deleted"
)

type Event interface {
	Kind() Kind
	Scopes() []Scope
	sealed()
}

type NewBounty struct{ Bounty domain.Bounty }
type BountyUpdated struct{ Bounty domain.Bounty }
type BountyStatusChanged struct{ Bounty domain.Bounty }
type BountyApproved struct{ Bounty domain.Bounty }
type BountyDeleted struct{ BountyID string }

type ApplicationCreated struct{ Application domain.Application }
type ApplicationUpdated struct{ Application domain.Application }
type ApplicationDeleted struct{ Application domain.Application }

type WorkSubmitted struct {
	Submission domain.WorkSubmission `json:"submission"`
	Bounty     domain.Bounty         `json:"bounty"`
}

type SubmissionReviewed struct {
	Submission domain.WorkSubmission `json:"submission"`
	Bounty     domain.Bounty         `json:"bounty"`
}

// PaymentAuthorized is published when an instant payment is authorized, before the gateway runs.
type PaymentAuthorized struct{ Bounty domain.Bounty }

// BountyPaymentAuthorized is published when a bounty becomes eligible for the next batch.
type BountyPaymentAuthorized struct{ Bounty domain.Bounty }

type FailedPayment struct {
	BountyID string `json:"bountyId"`
	Reason   string `json:"reason"`
}

type BatchPaymentProcessed struct {
	BatchID     string          `json:"batchId"`
	Paid        []string        `json:"paid"`
	Failed      []FailedPayment `json:"failed,omitempty"`
	ProcessedAt time.Time       `json:"processedAt"`
}

type InstantPaymentProcessed struct {
	Bounty  domain.Bounty         `json:"bounty"`
	Record  *domain.PaymentRecord `json:"record,omitempty"`
	Success bool                  `json:"success"`
	Error   string                `json:"error,omitempty"`
}

type BountyMarkedPaid struct{ Bounty domain.Bounty }

type BountyPaid struct {
	Bounty domain.Bounty        `json:"bounty"`
	Record domain.PaymentRecord `json:"record"`
}

type BalanceUpdated struct {
	Balance decimal.Decimal `json:"balance"`
	Minor   int64           `json:"balanceMinor"`
}

type CategoryCreated struct{ Category domain.Category }
type CategoryUpdated struct{ Category domain.Category }
type CategoryDeleted struct{ Category domain.Category }

func (NewBounty) Kind() Kind               { return KindNewBounty }
func (BountyUpdated) Kind() Kind           { return KindBountyUpdated }
func (BountyStatusChanged) Kind() Kind     { return KindBountyStatusChanged }
func (BountyApproved) Kind() Kind          { return KindBountyApproved }
func (BountyDeleted) Kind() Kind           { return KindBountyDeleted }
func (ApplicationCreated) Kind() Kind      { return KindApplicationCreated }
func (ApplicationUpdated) Kind() Kind      { return KindApplicationUpdated }
func (ApplicationDeleted) Kind() Kind      { return KindApplicationDeleted }
func (WorkSubmitted) Kind() Kind           { return KindWorkSubmitted }
func (SubmissionReviewed) Kind() Kind      { return KindSubmissionReviewed }
func (PaymentAuthorized) Kind() Kind       { return KindPaymentAuthorized }
func (BountyPaymentAuthorized) Kind() Kind { return KindBountyPaymentAuthorized }
func (BatchPaymentProcessed) Kind() Kind   { return KindBatchPaymentProcessed }
func (InstantPaymentProcessed) Kind() Kind { return KindInstantPaymentProcessed }
func (BountyMarkedPaid) Kind() Kind        { return KindBountyMarkedPaid }
func (BountyPaid) Kind() Kind              { return KindBountyPaid }
func (BalanceUpdated) Kind() Kind          { return KindBalanceUpdated }
func (CategoryCreated) Kind() Kind         { return KindCategoryCreated }
func (CategoryUpdated) Kind() Kind         { return KindCategoryUpdated }
func (CategoryDeleted) Kind() Kind         { return KindCategoryDeleted }

func (e NewBounty) Scopes() []Scope               { return bountyScopes(e.Bounty.ID) }
func (e BountyUpdated) Scopes() []Scope           { return bountyScopes(e.Bounty.ID) }
func (e BountyStatusChanged) Scopes() []Scope     { return bountyScopes(e.Bounty.ID) }
func (e BountyApproved) Scopes() []Scope          { return bountyScopes(e.Bounty.ID) }
func (e BountyDeleted) Scopes() []Scope           { return bountyScopes(e.BountyID) }
func (e ApplicationCreated) Scopes() []Scope      { return applicationScopes(e.Application) }
func (e ApplicationUpdated) Scopes() []Scope      { return applicationScopes(e.Application) }
func (e ApplicationDeleted) Scopes() []Scope      { return applicationScopes(e.Application) }
func (e WorkSubmitted) Scopes() []Scope           { return submissionScopes(e.Submission) }
func (e SubmissionReviewed) Scopes() []Scope      { return submissionScopes(e.Submission) }
func (e PaymentAuthorized) Scopes() []Scope       { return bountyScopes(e.Bounty.ID) }
func (e BountyPaymentAuthorized) Scopes() []Scope { return bountyScopes(e.Bounty.ID) }
func (e InstantPaymentProcessed) Scopes() []Scope { return bountyScopes(e.Bounty.ID) }
func (e BountyMarkedPaid) Scopes() []Scope        { return bountyScopes(e.Bounty.ID) }
func (e BountyPaid) Scopes() []Scope              { return bountyScopes(e.Bounty.ID) }
func (BalanceUpdated) Scopes() []Scope            { return []Scope{ScopeAll} }
func (CategoryCreated) Scopes() []Scope           { return []Scope{ScopeAll} }
func (CategoryUpdated) Scopes() []Scope           { return []Scope{ScopeAll} }
func (CategoryDeleted) Scopes() []Scope           { return []Scope{ScopeAll} }

func (e BatchPaymentProcessed) Scopes() []Scope {
	scopes := make([]Scope, 0, len(e.Paid)+1)
	scopes = append(scopes, ScopeAll)
	for _, id := range e.Paid {
		scopes = append(scopes, BountyScope(id))
	}
	return scopes
}

func (NewBounty) sealed()               {}
func (BountyUpdated) sealed()           {}
func (BountyStatusChanged) sealed()     {}
func (BountyApproved) sealed()          {}
func (BountyDeleted) sealed()           {}
func (ApplicationCreated) sealed()      {}
func (ApplicationUpdated) sealed()      {}
func (ApplicationDeleted) sealed()      {}
func (WorkSubmitted) sealed()           {}
func (SubmissionReviewed) sealed()      {}
func (PaymentAuthorized) sealed()       {}
func (BountyPaymentAuthorized) sealed() {}
func (BatchPaymentProcessed) sealed()   {}
func (InstantPaymentProcessed) sealed() {}
func (BountyMarkedPaid) sealed()        {}
func (BountyPaid) sealed()              {}
func (BalanceUpdated) sealed()          {}
func (CategoryCreated) sealed()         {}
func (CategoryUpdated) sealed()         {}
func (CategoryDeleted) sealed()         {}

// Payload returns the wire payload of an event. Single-entity events carry the entity itself,
// so a client can replace its local copy without merging.
func Payload(e Event) (any, error) {
	switch ev := e.(type) {
	case NewBounty:
		return ev.Bounty, nil
	case BountyUpdated:
		return ev.Bounty, nil
	case BountyStatusChanged:
		return ev.Bounty, nil
	case BountyApproved:
		return ev.Bounty, nil
	case BountyDeleted:
		return map[string]string{"id": ev.BountyID}, nil
	case ApplicationCreated:
		return ev.Application, nil
	case ApplicationUpdated:
		return ev.Application, nil
	case ApplicationDeleted:
		return ev.Application, nil
	case WorkSubmitted:
		return ev, nil
	case SubmissionReviewed:
		return ev, nil
	case PaymentAuthorized:
		return ev.Bounty, nil
	case BountyPaymentAuthorized:
		return ev.Bounty, nil
	case BatchPaymentProcessed:
		return ev, nil
	case InstantPaymentProcessed:
		return ev, nil
	case BountyMarkedPaid:
		return ev.Bounty, nil
	case BountyPaid:
		return ev, nil
	case BalanceUpdated:
		return ev, nil
	case CategoryCreated:
		return ev.Category, nil
	case CategoryUpdated:
		return ev.Category, nil
	case CategoryDeleted:
		return ev.Category, nil
	default:
		return nil, fmt.Errorf("unknown event type %T", e)
	}
}

func bountyScopes(bountyID string) []Scope {
	return []Scope{ScopeAll, BountyScope(bountyID)}
}

func applicationScopes(a domain.Application) []Scope {
	return []Scope{ScopeAll, BountyScope(a.BountyID), UserScope(a.ApplicantID)}
}

func submissionScopes(s domain.WorkSubmission) []Scope {
	return []Scope{ScopeAll, BountyScope(s.BountyID), UserScope(s.SubmitterID)}
}
