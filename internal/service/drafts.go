package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

const maxAttachmentSize = 5 << 20

var flowAttachmentFields = map[entity.FlowKind]map[string]bool{
	entity.FlowCandidateOnboarding: {
		entity.AttachmentFieldPassport:       true,
		entity.AttachmentFieldGuarantorOneID: true,
		entity.AttachmentFieldGuarantorTwoID: true,
	},
	entity.FlowPartnerRegistration: {
		entity.AttachmentFieldIDDocument:     true,
		entity.AttachmentFieldCACCertificate: true,
	},
	entity.FlowContactIntake: {},
}

// StartDraft opens a fresh wizard session at step one. userID may be nil for
// anonymous flows (contact intake, pre-signup registrations).
func (s *Service) StartDraft(ctx context.Context, userID uuid.UUID, flow entity.FlowKind) (entity.Draft, error) {
	if !flow.IsValid() {
		return entity.Draft{}, fmt.Errorf("%w: unknown flow %q", entity.ErrIncorrectRequestBody, flow)
	}

	draft := entity.Draft{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Flow:      flow,
		Step:      1,
		Data:      json.RawMessage(`{}`),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.draftRepo.CreateDraft(ctx, draft); err != nil {
		return entity.Draft{}, fmt.Errorf("create draft: %w", err)
	}

	slog.InfoContext(ctx, "draft started", "draft_id", draft.ID, "flow", flow)

	return draft, nil
}

// DraftState is a draft plus the set of staged attachment fields, which the
// wizard UI needs to render upload slots.
type DraftState struct {
	Draft    entity.Draft    `json:"draft"`
	Attached map[string]bool `json:"attached"`
}

func (s *Service) Draft(ctx context.Context, id uuid.UUID) (DraftState, error) {
	draft, err := s.draftRepo.DraftByID(ctx, id)
	if err != nil {
		return DraftState{}, fmt.Errorf("get draft: %w", err)
	}

	attached, err := s.attachedFields(ctx, id)
	if err != nil {
		return DraftState{}, err
	}

	return DraftState{Draft: draft, Attached: attached}, nil
}

// UpdateDraft replaces the draft payload without moving the step. Partial
// saves are deliberately unvalidated; validation happens on Next and Submit.
func (s *Service) UpdateDraft(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	draft, err := s.draftRepo.DraftByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get draft: %w", err)
	}

	if draft.Submitted {
		return entity.ErrDraftSubmitted
	}

	if err := s.checkPayload(draft.Flow, data); err != nil {
		return err
	}

	if err := s.draftRepo.UpdateDraftData(ctx, id, data); err != nil {
		return fmt.Errorf("update draft data: %w", err)
	}

	return nil
}

func (s *Service) AttachFile(ctx context.Context, draftID uuid.UUID, field, filename, contentType string, data []byte) error {
	draft, err := s.draftRepo.DraftByID(ctx, draftID)
	if err != nil {
		return fmt.Errorf("get draft: %w", err)
	}

	if draft.Submitted {
		return entity.ErrDraftSubmitted
	}

	if !flowAttachmentFields[draft.Flow][field] {
		return fmt.Errorf("%w: unknown attachment field %q for flow %s", entity.ErrIncorrectRequestBody, field, draft.Flow)
	}

	if len(data) == 0 || len(data) > maxAttachmentSize {
		return fmt.Errorf("%w: attachment size out of range", entity.ErrIncorrectRequestBody)
	}

	att := entity.Attachment{
		ID:          uuid.Must(uuid.NewV4()),
		DraftID:     draftID,
		Field:       field,
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now(),
	}

	if err := s.draftRepo.SaveAttachment(ctx, att); err != nil {
		return fmt.Errorf("save attachment: %w", err)
	}

	return nil
}

func (s *Service) NextStep(ctx context.Context, id uuid.UUID) (DraftState, error) {
	draft, err := s.draftRepo.DraftByID(ctx, id)
	if err != nil {
		return DraftState{}, fmt.Errorf("get draft: %w", err)
	}

	if draft.Submitted {
		return DraftState{}, entity.ErrDraftSubmitted
	}

	attached, err := s.attachedFields(ctx, id)
	if err != nil {
		return DraftState{}, err
	}

	var next int

	switch draft.Flow {
	case entity.FlowCandidateOnboarding:
		var data entity.CandidateRegistration
		if err := json.Unmarshal(draft.Data, &data); err != nil {
			return DraftState{}, fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
		}

		next, err = candidateFlow.Next(draft.Step, data, attached)

	case entity.FlowPartnerRegistration:
		var data entity.PartnerApplication
		if err := json.Unmarshal(draft.Data, &data); err != nil {
			return DraftState{}, fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
		}

		next, err = partnerFlow.Next(draft.Step, data, attached)

	case entity.FlowContactIntake:
		var data entity.ContactSubmission
		if err := json.Unmarshal(draft.Data, &data); err != nil {
			return DraftState{}, fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
		}

		next, err = contactFlow.Next(draft.Step, data, attached)

	default:
		return DraftState{}, fmt.Errorf("%w: unknown flow %q", entity.ErrIncorrectRequestBody, draft.Flow)
	}

	if err != nil {
		return DraftState{}, err
	}

	if err := s.draftRepo.UpdateDraftStep(ctx, id, next); err != nil {
		return DraftState{}, fmt.Errorf("update draft step: %w", err)
	}

	draft.Step = next

	return DraftState{Draft: draft, Attached: attached}, nil
}

func (s *Service) PrevStep(ctx context.Context, id uuid.UUID) (DraftState, error) {
	draft, err := s.draftRepo.DraftByID(ctx, id)
	if err != nil {
		return DraftState{}, fmt.Errorf("get draft: %w", err)
	}

	if draft.Submitted {
		return DraftState{}, entity.ErrDraftSubmitted
	}

	prev := draft.Step
	switch draft.Flow {
	case entity.FlowCandidateOnboarding:
		prev = candidateFlow.Back(draft.Step)
	case entity.FlowPartnerRegistration:
		prev = partnerFlow.Back(draft.Step)
	case entity.FlowContactIntake:
		prev = contactFlow.Back(draft.Step)
	}

	if prev != draft.Step {
		if err := s.draftRepo.UpdateDraftStep(ctx, id, prev); err != nil {
			return DraftState{}, fmt.Errorf("update draft step: %w", err)
		}

		draft.Step = prev
	}

	attached, err := s.attachedFields(ctx, id)
	if err != nil {
		return DraftState{}, err
	}

	return DraftState{Draft: draft, Attached: attached}, nil
}

// Submit turns a completed draft into a record. All staged attachments are
// uploaded concurrently; if any upload fails the submission aborts and no
// record is written, so the draft stays retryable.
func (s *Service) Submit(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	draft, err := s.draftRepo.DraftByID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get draft: %w", err)
	}

	if draft.Submitted {
		return uuid.Nil, entity.ErrDraftSubmitted
	}

	attachments, err := s.draftRepo.AttachmentsByDraftID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get attachments: %w", err)
	}

	attached := make(map[string]bool, len(attachments))
	for _, att := range attachments {
		attached[att.Field] = true
	}

	switch draft.Flow {
	case entity.FlowCandidateOnboarding:
		return s.submitCandidate(ctx, draft, attachments, attached)
	case entity.FlowPartnerRegistration:
		return s.submitPartner(ctx, draft, attachments, attached)
	case entity.FlowContactIntake:
		return s.submitContact(ctx, draft, attached)
	default:
		return uuid.Nil, fmt.Errorf("%w: unknown flow %q", entity.ErrIncorrectRequestBody, draft.Flow)
	}
}

func (s *Service) submitCandidate(
	ctx context.Context,
	draft entity.Draft,
	attachments []entity.Attachment,
	attached map[string]bool,
) (uuid.UUID, error) {
	var data entity.CandidateRegistration
	if err := json.Unmarshal(draft.Data, &data); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
	}

	if err := candidateFlow.CanSubmit(draft.Step, data, attached); err != nil {
		return uuid.Nil, err
	}

	urls, err := s.uploadAll(ctx, draft.ID, attachments)
	if err != nil {
		return uuid.Nil, err
	}

	data.PassportURL = urls[entity.AttachmentFieldPassport]
	data.Guarantors[0].IDCardURL = urls[entity.AttachmentFieldGuarantorOneID]
	data.Guarantors[1].IDCardURL = urls[entity.AttachmentFieldGuarantorTwoID]

	record := entity.CandidateRecord{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      draft.UserID,
		Status:      entity.CandidateStatusPendingPayment,
		Data:        data,
		SubmittedAt: time.Now(),
	}

	if err := s.registrationRepo.CreateCandidateRecord(ctx, record); err != nil {
		return uuid.Nil, fmt.Errorf("create candidate record: %w", err)
	}

	if err := s.draftRepo.MarkSubmitted(ctx, draft.ID); err != nil {
		slog.ErrorContext(ctx, "mark draft submitted", "draft_id", draft.ID, "error", err)
	}

	s.producer.SendSubmission(ctx, record.ID, string(entity.FlowCandidateOnboarding), data.Email)
	s.sendConfirmation(ctx, data.Email, "Registration received",
		fmt.Sprintf("Dear %s, your candidate registration has been received and is pending payment verification.", record.Data.FullName()))

	slog.InfoContext(ctx, "candidate registration submitted", "record_id", record.ID, "draft_id", draft.ID)

	return record.ID, nil
}

func (s *Service) submitPartner(
	ctx context.Context,
	draft entity.Draft,
	attachments []entity.Attachment,
	attached map[string]bool,
) (uuid.UUID, error) {
	var data entity.PartnerApplication
	if err := json.Unmarshal(draft.Data, &data); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
	}

	if err := partnerFlow.CanSubmit(draft.Step, data, attached); err != nil {
		return uuid.Nil, err
	}

	urls, err := s.uploadAll(ctx, draft.ID, attachments)
	if err != nil {
		return uuid.Nil, err
	}

	switch data.Type {
	case entity.PartnerTypeIndividual:
		if data.Individual == nil {
			return uuid.Nil, fmt.Errorf("%w: individual details are required", entity.ErrMissingRequiredField)
		}

		data.Individual.IDDocumentURL = urls[entity.AttachmentFieldIDDocument]
	case entity.PartnerTypeOrganization:
		if data.Organization == nil {
			return uuid.Nil, fmt.Errorf("%w: organization details are required", entity.ErrMissingRequiredField)
		}

		data.Organization.CACCertificateURL = urls[entity.AttachmentFieldCACCertificate]
	}

	record := entity.PartnerRecord{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      draft.UserID,
		Status:      entity.PartnerStatusPendingReview,
		Application: data,
		SubmittedAt: time.Now(),
	}

	if err := s.registrationRepo.CreatePartnerRecord(ctx, record); err != nil {
		return uuid.Nil, fmt.Errorf("create partner record: %w", err)
	}

	if err := s.draftRepo.MarkSubmitted(ctx, draft.ID); err != nil {
		slog.ErrorContext(ctx, "mark draft submitted", "draft_id", draft.ID, "error", err)
	}

	s.producer.SendSubmission(ctx, record.ID, string(entity.FlowPartnerRegistration), data.ContactEmail())
	s.sendConfirmation(ctx, data.ContactEmail(), "Partner application received",
		"Your partner application has been received and is pending review.")

	slog.InfoContext(ctx, "partner application submitted", "record_id", record.ID, "draft_id", draft.ID)

	return record.ID, nil
}

func (s *Service) submitContact(ctx context.Context, draft entity.Draft, attached map[string]bool) (uuid.UUID, error) {
	var data entity.ContactSubmission
	if err := json.Unmarshal(draft.Data, &data); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
	}

	if err := contactFlow.CanSubmit(draft.Step, data, attached); err != nil {
		return uuid.Nil, err
	}

	data.ID = uuid.Must(uuid.NewV4())
	data.Status = entity.ContactStatusNew
	data.SubmittedAt = time.Now()

	if err := s.registrationRepo.CreateContactSubmission(ctx, data); err != nil {
		return uuid.Nil, fmt.Errorf("create contact submission: %w", err)
	}

	if err := s.draftRepo.MarkSubmitted(ctx, draft.ID); err != nil {
		slog.ErrorContext(ctx, "mark draft submitted", "draft_id", draft.ID, "error", err)
	}

	s.producer.SendSubmission(ctx, data.ID, string(entity.FlowContactIntake), data.Email)
	s.sendConfirmation(ctx, data.Email, "We received your message",
		fmt.Sprintf("Dear %s, thank you for contacting Jackson Multifacet. Our team will get back to you shortly.", data.Name))

	slog.InfoContext(ctx, "contact submission created", "record_id", data.ID, "draft_id", draft.ID)

	return data.ID, nil
}

// uploadAll pushes every staged attachment concurrently and returns the
// field to URL map. One failed upload fails them all.
func (s *Service) uploadAll(ctx context.Context, draftID uuid.UUID, attachments []entity.Attachment) (map[string]string, error) {
	urls := make(map[string]string, len(attachments))

	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)

	for _, att := range attachments {
		att := att

		g.Go(func() error {
			key := fmt.Sprintf("uploads/%s/%s-%s", draftID, att.Field, att.Filename)

			url, err := s.storageClient.Upload(gCtx, key, att.ContentType, att.Data)
			if err != nil {
				return fmt.Errorf("upload %s: %w", att.Field, err)
			}

			mu.Lock()
			urls[att.Field] = url
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "attachment upload failed, submission aborted", "draft_id", draftID, "error", err)
		return nil, err
	}

	return urls, nil
}

func (s *Service) checkPayload(flow entity.FlowKind, data json.RawMessage) error {
	var err error

	switch flow {
	case entity.FlowCandidateOnboarding:
		err = json.Unmarshal(data, &entity.CandidateRegistration{})
	case entity.FlowPartnerRegistration:
		err = json.Unmarshal(data, &entity.PartnerApplication{})
	case entity.FlowContactIntake:
		err = json.Unmarshal(data, &entity.ContactSubmission{})
	}

	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
	}

	return nil
}

func (s *Service) attachedFields(ctx context.Context, draftID uuid.UUID) (map[string]bool, error) {
	attachments, err := s.draftRepo.AttachmentsByDraftID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("get attachments: %w", err)
	}

	attached := make(map[string]bool, len(attachments))
	for _, att := range attachments {
		attached[att.Field] = true
	}

	return attached, nil
}

func (s *Service) sendConfirmation(ctx context.Context, email, subject, message string) {
	if email == "" {
		return
	}

	go func() {
		if err := s.mailer.SendMessage(subject, message, []string{email}); err != nil {
			slog.ErrorContext(ctx, "send confirmation email", "email", email, "error", err)
		}
	}()
}
