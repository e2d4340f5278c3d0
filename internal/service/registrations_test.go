package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
)

func TestService_HandlePaymentVerified(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	ts.registrationRepo.EXPECT().
		VerifyCandidateByPaymentReference(ctx, "PSK-20260831-001").
		Return(nil)

	err := ts.s.HandlePaymentVerified(ctx, "PSK-20260831-001")
	require.NoError(t, err)

	err = ts.s.HandlePaymentVerified(ctx, "   ")
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_ReviewCandidate(t *testing.T) {
	t.Parallel()

	recordID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name    string
		current entity.CandidateStatus
		target  entity.CandidateStatus
		updates bool
		wantErr error
	}{
		{
			name:    "verify pending",
			current: entity.CandidateStatusPendingPayment,
			target:  entity.CandidateStatusVerified,
			updates: true,
		},
		{
			name:    "place verified",
			current: entity.CandidateStatusVerified,
			target:  entity.CandidateStatusPlaced,
			updates: true,
		},
		{
			name:    "cannot place unverified",
			current: entity.CandidateStatusPendingPayment,
			target:  entity.CandidateStatusPlaced,
			wantErr: entity.ErrIncorrectRequestBody,
		},
		{
			name:    "rejected is terminal",
			current: entity.CandidateStatusRejected,
			target:  entity.CandidateStatusVerified,
			wantErr: entity.ErrStatusImmutable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := NewTestService(t, testConfig())
			ctx := context.Background()

			ts.registrationRepo.EXPECT().CandidateRecordByID(ctx, recordID).
				Return(entity.CandidateRecord{ID: recordID, Status: tt.current}, nil)

			if tt.updates {
				ts.registrationRepo.EXPECT().UpdateCandidateStatus(ctx, recordID, tt.target).Return(nil)
			}

			err := ts.s.ReviewCandidate(ctx, recordID, tt.target)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_ReviewCandidate_NotifiesUser(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	recordID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	ts.registrationRepo.EXPECT().CandidateRecordByID(ctx, recordID).
		Return(entity.CandidateRecord{
			ID:     recordID,
			UserID: userID,
			Status: entity.CandidateStatusPendingPayment,
		}, nil)
	ts.registrationRepo.EXPECT().
		UpdateCandidateStatus(ctx, recordID, entity.CandidateStatusVerified).Return(nil)
	ts.dashboardRepo.EXPECT().CreateNotification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notification) error {
			require.Equal(t, userID, n.UserID)
			require.Equal(t, entity.NotificationTypeSuccess, n.Type)
			require.Equal(t, "/dashboard/candidate", n.Link)
			return nil
		})

	err := ts.s.ReviewCandidate(ctx, recordID, entity.CandidateStatusVerified)
	require.NoError(t, err)
}

func TestService_ReviewPartner_NotifiesUser(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	recordID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	ts.registrationRepo.EXPECT().PartnerRecordByID(ctx, recordID).
		Return(entity.PartnerRecord{
			ID:     recordID,
			UserID: userID,
			Status: entity.PartnerStatusPendingReview,
		}, nil)
	ts.registrationRepo.EXPECT().
		UpdatePartnerStatus(ctx, recordID, entity.PartnerStatusRejected).Return(nil)
	ts.dashboardRepo.EXPECT().CreateNotification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notification) error {
			require.Equal(t, userID, n.UserID)
			require.Equal(t, entity.NotificationTypeWarning, n.Type)
			return nil
		})

	err := ts.s.ReviewPartner(ctx, recordID, entity.PartnerStatusRejected)
	require.NoError(t, err)
}

func TestService_ReviewCandidate_UnknownStatus(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())

	err := ts.s.ReviewCandidate(context.Background(), uuid.Must(uuid.NewV4()), "archived")
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_ReviewPartner(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	recordID := uuid.Must(uuid.NewV4())

	ts.registrationRepo.EXPECT().PartnerRecordByID(ctx, recordID).
		Return(entity.PartnerRecord{ID: recordID, Status: entity.PartnerStatusPendingReview}, nil)
	ts.registrationRepo.EXPECT().UpdatePartnerStatus(ctx, recordID, entity.PartnerStatusRejected).Return(nil)

	err := ts.s.ReviewPartner(ctx, recordID, entity.PartnerStatusRejected)
	require.NoError(t, err)

	// Decided applications cannot be re-reviewed.
	ts.registrationRepo.EXPECT().PartnerRecordByID(ctx, recordID).
		Return(entity.PartnerRecord{ID: recordID, Status: entity.PartnerStatusApproved}, nil)

	err = ts.s.ReviewPartner(ctx, recordID, entity.PartnerStatusRejected)
	require.ErrorIs(t, err, entity.ErrStatusImmutable)

	err = ts.s.ReviewPartner(ctx, recordID, entity.PartnerStatusPendingReview)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_CandidateRecords_PageClamping(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	ts.registrationRepo.EXPECT().CandidateRecords(ctx, repository.CandidateFilter{
		Status: entity.CandidateStatusVerified,
		Page:   1,
		Limit:  100,
	}).Return([]entity.CandidateRecord{{}}, 1, nil)

	records, total, err := ts.s.CandidateRecords(ctx, entity.CandidateStatusVerified, 0, 500)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 1, total)

	_, _, err = ts.s.CandidateRecords(ctx, "archived", 1, 20)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_SubscribeNewsletter(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	ts.registrationRepo.EXPECT().SaveNewsletterSubscriber(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, sub entity.NewsletterSubscriber) error {
			require.Equal(t, "reader@example.com", sub.Email)
			require.False(t, sub.SubscribedAt.IsZero())
			return nil
		})

	err := ts.s.SubscribeNewsletter(ctx, " Reader@Example.COM ")
	require.NoError(t, err)

	err = ts.s.SubscribeNewsletter(ctx, "not-an-email")
	require.ErrorIs(t, err, entity.ErrInvalidEmail)
}

func TestService_EvaluateResume(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	ts.registrationRepo.EXPECT().CandidateRecordByUserID(ctx, userID).
		Return(entity.CandidateRecord{
			Data: entity.CandidateRegistration{
				DesiredPositions: [3]string{"Accountant", "Auditor", ""},
			},
			SubmittedAt: time.Now(),
		}, nil)
	ts.assistant.EXPECT().
		EvaluateProfile(ctx, "resume text", []string{"Accountant", "Auditor"}).
		Return("Strong numeric background.", nil)

	feedback, err := ts.s.EvaluateResume(ctx, userID, "resume text")
	require.NoError(t, err)
	require.Equal(t, "Strong numeric background.", feedback)

	// Without a submitted record the evaluation falls back to a generic
	// placement target.
	ts.registrationRepo.EXPECT().CandidateRecordByUserID(ctx, userID).
		Return(entity.CandidateRecord{}, entity.ErrNotFound)
	ts.assistant.EXPECT().
		EvaluateProfile(ctx, "resume text", []string{"general placement"}).
		Return("ok", nil)

	_, err = ts.s.EvaluateResume(ctx, userID, "resume text")
	require.NoError(t, err)

	_, err = ts.s.EvaluateResume(ctx, userID, "   ")
	require.ErrorIs(t, err, entity.ErrMissingRequiredField)
}
