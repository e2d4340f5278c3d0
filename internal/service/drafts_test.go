package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

// candidateData returns a registration that satisfies every wizard step.
func candidateData() entity.CandidateRegistration {
	return entity.CandidateRegistration{
		Surname:          "Okafor",
		FirstName:        "Ada",
		Address:          "12 Marina Rd, Lagos",
		DOB:              "1994-03-12",
		Tel:              "+2348012345678",
		Email:            "ada.okafor@example.com",
		ValidIDNumber:    "A01234567",
		IDType:           "passport",
		DesiredPositions: [3]string{"Accountant", "", ""},
		JobMode:          "onsite",
		Guarantors: [2]entity.Guarantor{
			{Name: "Chinedu Eze", Address: "4 Broad St", Tel: "+2348011111111"},
			{Name: "Bola Ahmed", Address: "9 Allen Ave", Tel: "+2348022222222"},
		},
		GuarantorConsent: true,
		AgreedToTerms:    true,
		PaymentReference: "PSK-20260831-001",
	}
}

func completeCandidate(t *testing.T) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(candidateData())
	require.NoError(t, err)

	return raw
}

func candidateAttachments(draftID uuid.UUID) []entity.Attachment {
	fields := []string{
		entity.AttachmentFieldPassport,
		entity.AttachmentFieldGuarantorOneID,
		entity.AttachmentFieldGuarantorTwoID,
	}

	atts := make([]entity.Attachment, 0, len(fields))
	for _, f := range fields {
		atts = append(atts, entity.Attachment{
			ID:          uuid.Must(uuid.NewV4()),
			DraftID:     draftID,
			Field:       f,
			Filename:    f + ".jpg",
			ContentType: "image/jpeg",
			Data:        []byte("jpeg bytes"),
		})
	}

	return atts
}

func TestService_Submit_Candidate(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	draftID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	draft := entity.Draft{
		ID:     draftID,
		UserID: userID,
		Flow:   entity.FlowCandidateOnboarding,
		Step:   5,
		Data:   completeCandidate(t),
	}

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).Return(draft, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(candidateAttachments(draftID), nil)

	// Uploads run concurrently, so the context is a derived one.
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
		Times(3).
		DoAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			return "https://cdn.test/" + key, nil
		})

	var record entity.CandidateRecord
	ts.registrationRepo.EXPECT().CreateCandidateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r entity.CandidateRecord) error {
			record = r
			return nil
		})
	ts.draftRepo.EXPECT().MarkSubmitted(ctx, draftID).Return(nil)
	ts.producer.EXPECT().SendSubmission(ctx, gomock.Any(), string(entity.FlowCandidateOnboarding), "ada.okafor@example.com")

	// The confirmation email goes out on its own goroutine; block until it
	// lands so the mock controller does not tear down underneath it.
	mailed := make(chan struct{})
	ts.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), []string{"ada.okafor@example.com"}).
		DoAndReturn(func(_, _ string, _ []string) error {
			close(mailed)
			return nil
		})

	recordID, err := ts.s.Submit(ctx, draftID)
	require.NoError(t, err)
	require.Equal(t, record.ID, recordID)

	require.Equal(t, entity.CandidateStatusPendingPayment, record.Status)
	require.Equal(t, userID, record.UserID)
	require.True(t, strings.HasPrefix(record.Data.PassportURL, "https://cdn.test/uploads/"))
	require.NotEmpty(t, record.Data.Guarantors[0].IDCardURL)
	require.NotEmpty(t, record.Data.Guarantors[1].IDCardURL)

	select {
	case <-mailed:
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestService_Submit_UploadFailureAborts(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	draftID := uuid.Must(uuid.NewV4())
	draft := entity.Draft{
		ID:   draftID,
		Flow: entity.FlowCandidateOnboarding,
		Step: 5,
		Data: completeCandidate(t),
	}

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).Return(draft, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(candidateAttachments(draftID), nil)

	// One failure cancels the group; remaining uploads may or may not run.
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket unavailable")).
		AnyTimes()

	// No CreateCandidateRecord, MarkSubmitted or producer expectations: a
	// failed upload must leave the draft untouched and retryable.
	_, err := ts.s.Submit(ctx, draftID)
	require.ErrorContains(t, err, "bucket unavailable")
}

func TestService_Submit_Contact(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	draftID := uuid.Must(uuid.NewV4())
	raw, err := json.Marshal(entity.ContactSubmission{
		Category:    entity.CategoryRecruitment,
		SubServices: []string{"I need to hire"},
		Name:        "Funke Adeyemi",
		Email:       "funke@client.example.com",
		Message:     "We need five warehouse operatives by October.",
	})
	require.NoError(t, err)

	draft := entity.Draft{
		ID:   draftID,
		Flow: entity.FlowContactIntake,
		Step: 3,
		Data: raw,
	}

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).Return(draft, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(nil, nil)

	var sub entity.ContactSubmission
	ts.registrationRepo.EXPECT().CreateContactSubmission(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s entity.ContactSubmission) error {
			sub = s
			return nil
		})
	ts.draftRepo.EXPECT().MarkSubmitted(ctx, draftID).Return(nil)
	ts.producer.EXPECT().SendSubmission(ctx, gomock.Any(), string(entity.FlowContactIntake), "funke@client.example.com")

	mailed := make(chan struct{})
	ts.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ string, _ []string) error {
			close(mailed)
			return nil
		})

	subID, err := ts.s.Submit(ctx, draftID)
	require.NoError(t, err)
	require.Equal(t, sub.ID, subID)
	require.Equal(t, entity.ContactStatusNew, sub.Status)

	select {
	case <-mailed:
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestService_Submit_AlreadySubmitted(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	draftID := uuid.Must(uuid.NewV4())

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).
		Return(entity.Draft{ID: draftID, Flow: entity.FlowContactIntake, Submitted: true}, nil)

	_, err := ts.s.Submit(ctx, draftID)
	require.ErrorIs(t, err, entity.ErrDraftSubmitted)
}

func TestService_Submit_NotLastStep(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	draftID := uuid.Must(uuid.NewV4())

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).
		Return(entity.Draft{ID: draftID, Flow: entity.FlowCandidateOnboarding, Step: 3, Data: completeCandidate(t)}, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(candidateAttachments(draftID), nil)

	_, err := ts.s.Submit(ctx, draftID)
	require.ErrorIs(t, err, entity.ErrNotLastStep)
}

func TestService_Submit_IndividualPartner(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	draftID := uuid.Must(uuid.NewV4())
	raw, err := json.Marshal(entity.PartnerApplication{
		Type: entity.PartnerTypeIndividual,
		Individual: &entity.IndividualPartnerData{
			FullName:     "Tunde Bakare",
			Whatsapp:     "+2348033333333",
			Email:        "tunde@example.com",
			NIN:          "12345678901",
			PrimarySkill: "Plumbing",
		},
	})
	require.NoError(t, err)

	draft := entity.Draft{ID: draftID, Flow: entity.FlowPartnerRegistration, Step: 3, Data: raw}
	attachments := []entity.Attachment{{
		ID:          uuid.Must(uuid.NewV4()),
		DraftID:     draftID,
		Field:       entity.AttachmentFieldIDDocument,
		Filename:    "id.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg bytes"),
	}}

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).Return(draft, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(attachments, nil)
	ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
		Return("https://cdn.test/uploads/id.jpg", nil)

	var record entity.PartnerRecord
	ts.registrationRepo.EXPECT().CreatePartnerRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r entity.PartnerRecord) error {
			record = r
			return nil
		})
	ts.draftRepo.EXPECT().MarkSubmitted(ctx, draftID).Return(nil)
	ts.producer.EXPECT().SendSubmission(ctx, gomock.Any(), string(entity.FlowPartnerRegistration), "tunde@example.com")

	mailed := make(chan struct{})
	ts.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), []string{"tunde@example.com"}).
		DoAndReturn(func(_, _ string, _ []string) error {
			close(mailed)
			return nil
		})

	recordID, err := ts.s.Submit(ctx, draftID)
	require.NoError(t, err)
	require.Equal(t, record.ID, recordID)
	require.Equal(t, entity.PartnerStatusPendingReview, record.Status)
	require.Equal(t, "https://cdn.test/uploads/id.jpg", record.Application.Individual.IDDocumentURL)

	select {
	case <-mailed:
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestService_Submit_PartnerDetailsWipedAfterAdvance(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	draftID := uuid.Must(uuid.NewV4())

	// A draft can reach the last step and then have its payload replaced
	// with a bare type selector. Submission must fail cleanly, not assume
	// the details block is still there.
	draft := entity.Draft{
		ID:   draftID,
		Flow: entity.FlowPartnerRegistration,
		Step: 3,
		Data: json.RawMessage(`{"type":"individual"}`),
	}
	attachments := []entity.Attachment{{
		ID:      uuid.Must(uuid.NewV4()),
		DraftID: draftID,
		Field:   entity.AttachmentFieldIDDocument,
		Data:    []byte("jpeg bytes"),
	}}

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).Return(draft, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(attachments, nil)

	// No uploads and no record: validation fails before either.
	_, err := ts.s.Submit(ctx, draftID)
	require.ErrorIs(t, err, entity.ErrStepIncomplete)
}

func TestService_Submit_RevalidatesEarlierSteps(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	draftID := uuid.Must(uuid.NewV4())

	// Details were valid when step 2 advanced, then the CAC number was
	// edited down to a stub. The stale step must block submission.
	raw, err := json.Marshal(entity.PartnerApplication{
		Type: entity.PartnerTypeOrganization,
		Organization: &entity.OrganizationPartnerData{
			BusinessName:    "Acme Facilities Ltd",
			ContactName:     "Ngozi Obi",
			OfficialEmail:   "ngozi@acme.example.com",
			CACNumber:       "RC",
			TIN:             "12345678",
			ServicesOffered: []string{"Cleaning"},
		},
	})
	require.NoError(t, err)

	draft := entity.Draft{ID: draftID, Flow: entity.FlowPartnerRegistration, Step: 3, Data: raw}
	attachments := []entity.Attachment{{
		ID:      uuid.Must(uuid.NewV4()),
		DraftID: draftID,
		Field:   entity.AttachmentFieldCACCertificate,
		Data:    []byte("pdf bytes"),
	}}

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).Return(draft, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(attachments, nil)

	_, err = ts.s.Submit(ctx, draftID)
	require.ErrorIs(t, err, entity.ErrStepIncomplete)
}

func TestService_NextStep(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	draftID := uuid.Must(uuid.NewV4())

	t.Run("incomplete step blocks", func(t *testing.T) {
		ts.draftRepo.EXPECT().DraftByID(ctx, draftID).
			Return(entity.Draft{ID: draftID, Flow: entity.FlowCandidateOnboarding, Step: 1, Data: json.RawMessage(`{}`)}, nil)
		ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(nil, nil)

		_, err := ts.s.NextStep(ctx, draftID)
		require.ErrorIs(t, err, entity.ErrStepIncomplete)
	})

	t.Run("complete step advances", func(t *testing.T) {
		ts.draftRepo.EXPECT().DraftByID(ctx, draftID).
			Return(entity.Draft{ID: draftID, Flow: entity.FlowCandidateOnboarding, Step: 1, Data: json.RawMessage(`{"agreedToTerms":true}`)}, nil)
		ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(nil, nil)
		ts.draftRepo.EXPECT().UpdateDraftStep(ctx, draftID, 2).Return(nil)

		state, err := ts.s.NextStep(ctx, draftID)
		require.NoError(t, err)
		require.Equal(t, 2, state.Draft.Step)
	})
}

func TestService_NextStep_GuarantorGating(t *testing.T) {
	t.Parallel()

	draftID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name     string
		mutate   func(*entity.CandidateRegistration)
		attached []entity.Attachment
		wantErr  error
	}{
		{
			name:     "complete step advances",
			mutate:   func(*entity.CandidateRegistration) {},
			attached: candidateAttachments(draftID),
		},
		{
			name: "missing guarantor field",
			mutate: func(d *entity.CandidateRegistration) {
				d.Guarantors[1].Tel = ""
			},
			attached: candidateAttachments(draftID),
			wantErr:  entity.ErrStepIncomplete,
		},
		{
			name:   "missing guarantor ID image",
			mutate: func(*entity.CandidateRegistration) {},
			attached: []entity.Attachment{{
				ID:      uuid.Must(uuid.NewV4()),
				DraftID: draftID,
				Field:   entity.AttachmentFieldGuarantorOneID,
			}},
			wantErr: entity.ErrStepIncomplete,
		},
		{
			name: "missing consent",
			mutate: func(d *entity.CandidateRegistration) {
				d.GuarantorConsent = false
			},
			attached: candidateAttachments(draftID),
			wantErr:  entity.ErrStepIncomplete,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := NewTestService(t, testConfig())
			ctx := context.Background()

			data := candidateData()
			tt.mutate(&data)

			raw, err := json.Marshal(data)
			require.NoError(t, err)

			ts.draftRepo.EXPECT().DraftByID(ctx, draftID).
				Return(entity.Draft{ID: draftID, Flow: entity.FlowCandidateOnboarding, Step: 4, Data: raw}, nil)
			ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(tt.attached, nil)

			if tt.wantErr == nil {
				ts.draftRepo.EXPECT().UpdateDraftStep(ctx, draftID, 5).Return(nil)
			}

			state, err := ts.s.NextStep(ctx, draftID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, 5, state.Draft.Step)
		})
	}
}

func TestService_PrevStep_FloorsAtFirst(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	draftID := uuid.Must(uuid.NewV4())

	// Step one stays put, so no UpdateDraftStep call is expected.
	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).
		Return(entity.Draft{ID: draftID, Flow: entity.FlowContactIntake, Step: 1}, nil)
	ts.draftRepo.EXPECT().AttachmentsByDraftID(ctx, draftID).Return(nil, nil)

	state, err := ts.s.PrevStep(ctx, draftID)
	require.NoError(t, err)
	require.Equal(t, 1, state.Draft.Step)
}

func TestService_StartDraft_UnknownFlow(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())

	_, err := ts.s.StartDraft(context.Background(), uuid.Nil, "mystery_flow")
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_AttachFile_Rejections(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	draftID := uuid.Must(uuid.NewV4())
	draft := entity.Draft{ID: draftID, Flow: entity.FlowPartnerRegistration, Step: 3}

	ts.draftRepo.EXPECT().DraftByID(ctx, draftID).Return(draft, nil).Times(3)

	// Field from a different flow.
	err := ts.s.AttachFile(ctx, draftID, entity.AttachmentFieldPassport, "p.jpg", "image/jpeg", []byte("x"))
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)

	// Empty and oversized payloads.
	err = ts.s.AttachFile(ctx, draftID, entity.AttachmentFieldIDDocument, "id.jpg", "image/jpeg", nil)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)

	err = ts.s.AttachFile(ctx, draftID, entity.AttachmentFieldIDDocument, "id.jpg", "image/jpeg", bytes.Repeat([]byte("a"), 5<<20+1))
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}
