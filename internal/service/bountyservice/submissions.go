package bountyservice

import (
	"context"
	"strings"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
	"github.com/GlebRadaev/bountyhub/pkg/validate"
)

type SubmissionInput struct {
	Description    string
	DeliverableURL *string
}

// SubmitWork files the assignee's work for review and moves the bounty to IN_REVIEW. Only one
// submission may wait for review at a time.
func (s *Service) SubmitWork(ctx context.Context, caller domain.Identity, bountyID string, in SubmissionInput) (*domain.WorkSubmission, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.Invalid("description is required")
	}
	if in.DeliverableURL != nil && *in.DeliverableURL != "" && !validate.IsURL(*in.DeliverableURL) {
		return nil, domain.Invalid("deliverable url %q is not a valid http(s) url", *in.DeliverableURL)
	}
	if in.DeliverableURL != nil && *in.DeliverableURL == "" {
		in.DeliverableURL = nil
	}

	var sub *domain.WorkSubmission
	err := s.mutate(ctx, bountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, bountyID)
		if err != nil {
			return nil, err
		}
		if !b.IsAssignee(caller.UserID) {
			return nil, domain.Precondition("only the assignee may submit work for bounty %s", bountyID)
		}
		if b.Status != domain.StatusToDo && b.Status != domain.StatusInProgress {
			return nil, domain.Precondition("bounty %s is %s and does not accept submissions", bountyID, b.Status)
		}
		pending, err := s.submissions.FindPendingByBounty(ctx, bountyID)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			return nil, domain.Precondition("submission %s is still awaiting review", pending.ID)
		}

		sub = &domain.WorkSubmission{
			ID:             s.newID(),
			BountyID:       bountyID,
			SubmitterID:    caller.UserID,
			Description:    in.Description,
			DeliverableURL: in.DeliverableURL,
			Status:         domain.SubmissionPending,
			SubmittedAt:    s.now(),
			Version:        1,
		}
		if err := s.submissions.Create(ctx, sub); err != nil {
			return nil, err
		}
		b.Status = domain.StatusInReview
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		return []events.Event{events.WorkSubmitted{Submission: *sub, Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

type ReviewResult struct {
	Submission domain.WorkSubmission
	Bounty     domain.Bounty
}

// ReviewWorkSubmission settles a pending submission. Approval completes the bounty; rejection
// and revision requests send it back to IN_PROGRESS.
func (s *Service) ReviewWorkSubmission(ctx context.Context, caller domain.Identity, submissionID string, outcome domain.SubmissionStatus, notes string) (*ReviewResult, error) {
	if !outcome.ReviewOutcome() {
		return nil, domain.Invalid("unknown review outcome %q", outcome)
	}
	found, err := s.submissions.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, domain.NotFound("submission", submissionID)
	}

	var result *ReviewResult
	err = s.mutate(ctx, found.BountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, found.BountyID)
		if err != nil {
			return nil, err
		}
		if !canManage(caller, b) {
			return nil, domain.ErrForbidden
		}
		sub, err := s.submissions.FindByID(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, domain.NotFound("submission", submissionID)
		}
		if sub.Status != domain.SubmissionPending {
			return nil, domain.Precondition("submission %s was already reviewed", submissionID)
		}
		if b.Status.Terminal() {
			return nil, domain.Precondition("bounty %s is %s", b.ID, b.Status)
		}

		reviewer := caller.UserID
		reviewedAt := s.now()
		sub.Status = outcome
		sub.ReviewerID = &reviewer
		sub.ReviewedAt = &reviewedAt
		if notes != "" {
			sub.ReviewNotes = &notes
		}
		if err := s.submissions.Update(ctx, sub, sub.Version); err != nil {
			return nil, err
		}

		if outcome == domain.SubmissionApproved {
			b.Status = domain.StatusDone
		} else {
			b.Status = domain.StatusInProgress
		}
		if err := s.bounties.Update(ctx, b, b.Version); err != nil {
			return nil, err
		}
		result = &ReviewResult{Submission: *sub, Bounty: *b}
		return []events.Event{events.SubmissionReviewed{Submission: *sub, Bounty: *b}}, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) ListSubmissions(ctx context.Context, bountyID string) ([]domain.WorkSubmission, error) {
	if _, err := s.loadBounty(ctx, bountyID); err != nil {
		return nil, err
	}
	return s.submissions.ListByBounty(ctx, bountyID)
}
