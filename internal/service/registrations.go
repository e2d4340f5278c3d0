package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func (s *Service) CandidateRecords(ctx context.Context, status entity.CandidateStatus, page, limit uint64) ([]entity.CandidateRecord, int, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", entity.ErrIncorrectRequestBody, status)
	}

	if page == 0 {
		page = 1
	}

	if limit == 0 {
		limit = defaultPageLimit
	}

	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	records, total, err := s.registrationRepo.CandidateRecords(ctx, repository.CandidateFilter{
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list candidate records: %w", err)
	}

	return records, total, nil
}

func (s *Service) CandidateRecord(ctx context.Context, id uuid.UUID) (entity.CandidateRecord, error) {
	record, err := s.registrationRepo.CandidateRecordByID(ctx, id)
	if err != nil {
		return entity.CandidateRecord{}, fmt.Errorf("get candidate record: %w", err)
	}

	return record, nil
}

func (s *Service) MyCandidateRecord(ctx context.Context, userID uuid.UUID) (entity.CandidateRecord, error) {
	record, err := s.registrationRepo.CandidateRecordByUserID(ctx, userID)
	if err != nil {
		return entity.CandidateRecord{}, fmt.Errorf("get candidate record: %w", err)
	}

	return record, nil
}

// ReviewCandidate is the admin-side status transition: verify a payment
// manually, reject, or mark a verified candidate as placed.
func (s *Service) ReviewCandidate(ctx context.Context, id uuid.UUID, status entity.CandidateStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", entity.ErrIncorrectRequestBody, status)
	}

	record, err := s.registrationRepo.CandidateRecordByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get candidate record: %w", err)
	}

	if record.Status == entity.CandidateStatusRejected {
		return entity.ErrStatusImmutable
	}

	if status == entity.CandidateStatusPlaced && record.Status != entity.CandidateStatusVerified {
		return fmt.Errorf("%w: only verified candidates can be placed", entity.ErrIncorrectRequestBody)
	}

	if err := s.registrationRepo.UpdateCandidateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update candidate status: %w", err)
	}

	slog.InfoContext(ctx, "candidate record reviewed", "record_id", id, "status", status)

	if record.UserID != uuid.Nil {
		nType := entity.NotificationTypeInfo
		if status == entity.CandidateStatusVerified || status == entity.CandidateStatusPlaced {
			nType = entity.NotificationTypeSuccess
		}

		if err := s.Notify(ctx, record.UserID, nType, "Registration update",
			fmt.Sprintf("Your registration status is now %s.", status), "/dashboard/candidate"); err != nil {
			slog.ErrorContext(ctx, "notify candidate", "record_id", id, "error", err)
		}
	}

	if status == entity.CandidateStatusVerified {
		s.sendConfirmation(ctx, record.Data.Email, "Registration verified",
			fmt.Sprintf("Dear %s, your registration payment has been verified. Welcome aboard.", record.Data.FullName()))
	}

	return nil
}

// HandlePaymentVerified consumes the payment.verified event and moves the
// matching pending candidate record to verified.
func (s *Service) HandlePaymentVerified(ctx context.Context, paymentReference string) error {
	if strings.TrimSpace(paymentReference) == "" {
		return fmt.Errorf("%w: empty payment reference", entity.ErrIncorrectRequestBody)
	}

	if err := s.registrationRepo.VerifyCandidateByPaymentReference(ctx, paymentReference); err != nil {
		return fmt.Errorf("verify candidate: %w", err)
	}

	slog.InfoContext(ctx, "candidate verified by payment event", "payment_reference", paymentReference)

	return nil
}

func (s *Service) PartnerRecords(ctx context.Context, status entity.PartnerStatus) ([]entity.PartnerRecord, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", entity.ErrIncorrectRequestBody, status)
	}

	records, err := s.registrationRepo.PartnerRecords(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list partner records: %w", err)
	}

	return records, nil
}

// ReviewPartner approves or rejects a pending partner application.
func (s *Service) ReviewPartner(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) error {
	if status != entity.PartnerStatusApproved && status != entity.PartnerStatusRejected {
		return fmt.Errorf("%w: target status must be approved or rejected", entity.ErrIncorrectRequestBody)
	}

	record, err := s.registrationRepo.PartnerRecordByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get partner record: %w", err)
	}

	if record.Status != entity.PartnerStatusPendingReview {
		return entity.ErrStatusImmutable
	}

	if err := s.registrationRepo.UpdatePartnerStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update partner status: %w", err)
	}

	slog.InfoContext(ctx, "partner application reviewed", "record_id", id, "status", status)

	if record.UserID != uuid.Nil {
		nType := entity.NotificationTypeWarning
		if status == entity.PartnerStatusApproved {
			nType = entity.NotificationTypeSuccess
		}

		if err := s.Notify(ctx, record.UserID, nType, "Partner application update",
			fmt.Sprintf("Your partner application was %s.", status), "/dashboard/partner"); err != nil {
			slog.ErrorContext(ctx, "notify partner", "record_id", id, "error", err)
		}
	}

	if status == entity.PartnerStatusApproved {
		s.sendConfirmation(ctx, record.Application.ContactEmail(), "Partner application approved",
			"Congratulations, your partner application has been approved.")
	}

	return nil
}

func (s *Service) ContactSubmissions(ctx context.Context) ([]entity.ContactSubmission, error) {
	subs, err := s.registrationRepo.ContactSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}

	return subs, nil
}

func (s *Service) MarkContactReviewed(ctx context.Context, id uuid.UUID) error {
	if err := s.registrationRepo.UpdateContactStatus(ctx, id, entity.ContactStatusReviewed); err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}

	return nil
}

func (s *Service) SubscribeNewsletter(ctx context.Context, email string) error {
	email, err := NormalizeEmail(email)
	if err != nil {
		return err
	}

	sub := entity.NewsletterSubscriber{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        email,
		SubscribedAt: time.Now(),
	}

	if err := s.registrationRepo.SaveNewsletterSubscriber(ctx, sub); err != nil {
		return fmt.Errorf("save subscriber: %w", err)
	}

	return nil
}

// EvaluateResume runs the assistant over a candidate's submitted profile
// and returns the structured feedback text.
func (s *Service) EvaluateResume(ctx context.Context, userID uuid.UUID, resume string) (string, error) {
	if strings.TrimSpace(resume) == "" {
		return "", fmt.Errorf("%w: resume text", entity.ErrMissingRequiredField)
	}

	positions := []string{"general placement"}

	record, err := s.registrationRepo.CandidateRecordByUserID(ctx, userID)
	if err == nil {
		var desired []string
		for _, p := range record.Data.DesiredPositions {
			if p != "" {
				desired = append(desired, p)
			}
		}

		if len(desired) > 0 {
			positions = desired
		}
	}

	feedback, err := s.assistantClient.EvaluateProfile(ctx, resume, positions)
	if err != nil {
		return "", fmt.Errorf("evaluate profile: %w", err)
	}

	return feedback, nil
}
