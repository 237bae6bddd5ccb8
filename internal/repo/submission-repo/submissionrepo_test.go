package submissionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bountyhub/internal/domain"
)

var submissionColumns = []string{"id", "bounty_id", "submitter_id", "description", "deliverable_url", "status",
	"review_notes", "reviewer_id", "submitted_at", "reviewed_at", "version"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindPendingByBounty(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	url := "https://example.com/pr/1"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.WorkSubmission
	}{
		{
			name: "Pending submission",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM work_submissions WHERE bounty_id = $1 AND status = 'pending'")).
					WithArgs("b1").
					WillReturnRows(pgxmock.NewRows(submissionColumns).
						AddRow("s1", "b1", "h1", "done", &url, domain.SubmissionPending, nil, nil, now, nil, 1))
			},
			result: &domain.WorkSubmission{ID: "s1", BountyID: "b1", SubmitterID: "h1", Description: "done",
				DeliverableURL: &url, Status: domain.SubmissionPending, SubmittedAt: now, Version: 1},
		},
		{
			name: "Nothing pending",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM work_submissions WHERE bounty_id = $1 AND status = 'pending'")).
					WithArgs("b1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM work_submissions WHERE bounty_id = $1 AND status = 'pending'")).
					WithArgs("b1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPendingByBounty(context.Background(), "b1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reviewer := "admin-1"
	sub := &domain.WorkSubmission{ID: "s1", Status: domain.SubmissionApproved, ReviewerID: &reviewer,
		ReviewedAt: &now, Version: 1}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE work_submissions SET status = $1")).
		WithArgs(domain.SubmissionApproved, pgxmock.AnyArg(), &reviewer, &now, "s1", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Update(context.Background(), sub, 1))
	assert.Equal(t, 2, sub.Version)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE work_submissions SET status = $1")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), sub, 1), domain.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	sub := &domain.WorkSubmission{ID: "s1", BountyID: "b1", SubmitterID: "h1", Description: "done",
		Status: domain.SubmissionPending, SubmittedAt: time.Now(), Version: 1}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO work_submissions")).
		WillReturnError(errors.New("insert failed"))
	assert.Error(t, repo.Create(context.Background(), sub))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO work_submissions")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}
