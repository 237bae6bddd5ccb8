package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

func testBounty() domain.Bounty {
	assignee := "hunter-1"
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return domain.Bounty{
		ID:                "b-1",
		Title:             "Write docs",
		Description:       "Document the API",
		Amount:            decimal.RequireFromString("10.5"),
		CreatedBy:         "client-1",
		AssigneeID:        &assignee,
		Status:            domain.StatusDone,
		IsApproved:        true,
		PaymentAuthorized: true,
		PaymentScheduled:  &domain.PaymentSchedule{Kind: domain.PaymentBatch, ScheduledFor: &created},
		CreatedAt:         created,
		Version:           4,
	}
}

func TestEncodeEveryKind(t *testing.T) {
	b := testBounty()
	app := domain.Application{ID: "a-1", BountyID: b.ID, ApplicantID: "hunter-1", Status: domain.ApplicationPending}
	sub := domain.WorkSubmission{ID: "s-1", BountyID: b.ID, SubmitterID: "hunter-1", Status: domain.SubmissionPending}
	rec := domain.PaymentRecord{ID: "p-1", BountyID: b.ID, Amount: b.Amount, TxID: "tx"}
	cat := domain.Category{ID: 1, Name: "Design"}

	all := []Event{
		NewBounty{Bounty: b},
		BountyUpdated{Bounty: b},
		BountyStatusChanged{Bounty: b},
		BountyApproved{Bounty: b},
		BountyDeleted{BountyID: b.ID},
		ApplicationCreated{Application: app},
		ApplicationUpdated{Application: app},
		ApplicationDeleted{Application: app},
		WorkSubmitted{Submission: sub, Bounty: b},
		SubmissionReviewed{Submission: sub, Bounty: b},
		PaymentAuthorized{Bounty: b},
		BountyPaymentAuthorized{Bounty: b},
		BatchPaymentProcessed{BatchID: "batch-1", Paid: []string{b.ID}},
		InstantPaymentProcessed{Bounty: b, Record: &rec, Success: true},
		BountyMarkedPaid{Bounty: b},
		BountyPaid{Bounty: b, Record: rec},
		BalanceUpdated{Balance: decimal.RequireFromString("1.25"), Minor: 125_000_000},
		CategoryCreated{Category: cat},
		CategoryUpdated{Category: cat},
		CategoryDeleted{Category: cat},
	}

	seen := make(map[Kind]bool)
	for i, e := range all {
		t.Run(string(e.Kind()), func(t *testing.T) {
			raw, err := Encode(e, uint64(i+1), time.Now())
			require.NoError(t, err)

			var env Envelope
			require.NoError(t, json.Unmarshal(raw, &env))
			assert.Equal(t, e.Kind(), env.Type)
			assert.Equal(t, uint64(i+1), env.Seq)
			assert.NotEmpty(t, env.Payload)
			assert.Contains(t, e.Scopes(), ScopeAll)
		})
		seen[e.Kind()] = true
	}
	assert.Len(t, seen, len(all), "every event kind must be distinct")
}

func TestBountyPayloadReproducesEntity(t *testing.T) {
	b := testBounty()
	raw, err := Encode(BountyUpdated{Bounty: b}, 1, time.Now())
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))

	var got domain.Bounty
	require.NoError(t, json.Unmarshal(env.Payload, &got))
	assert.True(t, b.Amount.Equal(got.Amount))
	got.Amount = b.Amount
	assert.Equal(t, b, got)
}

func TestScopes(t *testing.T) {
	app := domain.Application{ID: "a-1", BountyID: "b-1", ApplicantID: "h-1"}
	assert.Equal(t, []Scope{ScopeAll, "bounty:b-1", "user:h-1"}, ApplicationCreated{Application: app}.Scopes())

	batch := BatchPaymentProcessed{Paid: []string{"b-1", "b-2"}}
	assert.Equal(t, []Scope{ScopeAll, "bounty:b-1", "bounty:b-2"}, batch.Scopes())
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		raw     string
		want    Scope
		wantErr bool
	}{
		{raw: "all", want: ScopeAll},
		{raw: "bounty:42", want: BountyScope("42")},
		{raw: "user:u-1", want: UserScope("u-1")},
		{raw: "bounty:", wantErr: true},
		{raw: "org", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseScope(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
