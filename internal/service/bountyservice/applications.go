package bountyservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/internal/events"
)

// ApplyToBounty records the caller's interest in an open bounty.
func (s *Service) ApplyToBounty(ctx context.Context, caller domain.Identity, bountyID, message string) (*domain.Application, error) {
	var app *domain.Application
	err := s.mutate(ctx, bountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, bountyID)
		if err != nil {
			return nil, err
		}
		switch {
		case b.Status.Terminal():
			return nil, domain.Conflict("bounty %s is %s", bountyID, b.Status)
		case b.Assigned():
			return nil, domain.Conflict("bounty %s already has an assignee", bountyID)
		case b.CreatedBy == caller.UserID:
			return nil, domain.Conflict("creator cannot apply to own bounty %s", bountyID)
		}
		existing, err := s.applications.FindByBountyAndApplicant(ctx, bountyID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.Conflict("applicant %s already applied to bounty %s", caller.UserID, bountyID)
		}

		app = &domain.Application{
			ID:          s.newID(),
			BountyID:    bountyID,
			ApplicantID: caller.UserID,
			Message:     message,
			Status:      domain.ApplicationPending,
			AppliedAt:   s.now(),
			Version:     1,
		}
		if err := s.applications.Create(ctx, app); err != nil {
			return nil, err
		}
		return []events.Event{events.ApplicationCreated{Application: *app}}, nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// findApplication resolves an application outside any lock to learn which bounty to lock.
func (s *Service) findApplication(ctx context.Context, id string) (*domain.Application, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.NotFound("application", id)
	}
	return app, nil
}

// AcceptApplication assigns the applicant to the bounty. A bounty that already has an assignee
// makes this a conflict, which is what the loser of two racing accepts observes.
func (s *Service) AcceptApplication(ctx context.Context, caller domain.Identity, applicationID string) (*domain.Application, error) {
	return s.decideApplication(ctx, caller, applicationID, domain.ApplicationAccepted)
}

func (s *Service) RejectApplication(ctx context.Context, caller domain.Identity, applicationID string) (*domain.Application, error) {
	return s.decideApplication(ctx, caller, applicationID, domain.ApplicationRejected)
}

func (s *Service) decideApplication(ctx context.Context, caller domain.Identity, applicationID string, decision domain.ApplicationStatus) (*domain.Application, error) {
	found, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	var app *domain.Application
	err = s.mutate(ctx, found.BountyID, func(ctx context.Context) ([]events.Event, error) {
		b, err := s.loadBounty(ctx, found.BountyID)
		if err != nil {
			return nil, err
		}
		if !canManage(caller, b) {
			return nil, domain.ErrForbidden
		}
		app, err = s.findApplication(ctx, applicationID)
		if err != nil {
			return nil, err
		}
		if app.Status != domain.ApplicationPending {
			return nil, domain.Precondition("application %s is already %s", applicationID, app.Status)
		}
		if decision == domain.ApplicationAccepted {
			if b.Assigned() {
				return nil, domain.Conflict("bounty %s already has an assignee", b.ID)
			}
			if b.Status.Terminal() {
				return nil, domain.Precondition("bounty %s is %s", b.ID, b.Status)
			}
		}

		app.Status = decision
		if err := s.applications.Update(ctx, app, app.Version); err != nil {
			return nil, err
		}
		evs := []events.Event{events.ApplicationUpdated{Application: *app}}
		if decision == domain.ApplicationAccepted {
			assignee := app.ApplicantID
			b.AssigneeID = &assignee
			if err := s.bounties.Update(ctx, b, b.Version); err != nil {
				return nil, err
			}
			evs = append(evs, events.BountyUpdated{Bounty: *b})
		}
		return evs, nil
	})
	if err != nil {
		zap.L().Info("application decision refused",
			zap.String("application_id", applicationID), zap.String("decision", string(decision)), zap.Error(err))
		return nil, err
	}
	return app, nil
}

// WithdrawApplication lets an applicant take back a pending application.
func (s *Service) WithdrawApplication(ctx context.Context, caller domain.Identity, applicationID string) error {
	found, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	return s.mutate(ctx, found.BountyID, func(ctx context.Context) ([]events.Event, error) {
		app, err := s.findApplication(ctx, applicationID)
		if err != nil {
			return nil, err
		}
		if app.ApplicantID != caller.UserID && !caller.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		if app.Status != domain.ApplicationPending {
			return nil, domain.Precondition("application %s is already %s", applicationID, app.Status)
		}
		if err := s.applications.Delete(ctx, applicationID); err != nil {
			return nil, err
		}
		return []events.Event{events.ApplicationDeleted{Application: *app}}, nil
	})
}

func (s *Service) ListApplications(ctx context.Context, bountyID string) ([]domain.Application, error) {
	if _, err := s.loadBounty(ctx, bountyID); err != nil {
		return nil, err
	}
	return s.applications.ListByBounty(ctx, bountyID)
}

func (s *Service) MyApplications(ctx context.Context, caller domain.Identity) ([]domain.Application, error) {
	return s.applications.ListByApplicant(ctx, caller.UserID)
}

func (s *Service) AllApplications(ctx context.Context, caller domain.Identity) ([]domain.Application, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.applications.ListAll(ctx)
}
