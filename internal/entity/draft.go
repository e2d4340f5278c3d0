package entity

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type FlowKind string

const (
	FlowCandidateOnboarding FlowKind = "candidate_onboarding"
	FlowPartnerRegistration FlowKind = "partner_registration"
	FlowContactIntake       FlowKind = "contact_intake"
)

func (f FlowKind) IsValid() bool {
	switch f {
	case FlowCandidateOnboarding, FlowPartnerRegistration, FlowContactIntake:
		return true
	default:
		return false
	}
}

// Draft is an unsubmitted wizard record. Data holds the flow-specific
// payload; attachments are staged separately and only leave the database as
// object-storage URLs during submission.
type Draft struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Flow      FlowKind        `json:"flow"`
	Step      int             `json:"step"`
	Data      json.RawMessage `json:"data"`
	Submitted bool            `json:"submitted"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Attachment struct {
	ID          uuid.UUID `json:"id"`
	DraftID     uuid.UUID `json:"draftId"`
	Field       string    `json:"field"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Attachment field names used by the flows.
const (
	AttachmentFieldPassport       = "passportImage"
	AttachmentFieldGuarantorOneID = "guarantor0IdCard"
	AttachmentFieldGuarantorTwoID = "guarantor1IdCard"
	AttachmentFieldIDDocument     = "idDocument"
	AttachmentFieldCACCertificate = "cacCertificate"
)
