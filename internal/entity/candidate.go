package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type CandidateStatus string

const (
	CandidateStatusPendingPayment CandidateStatus = "pending_payment_verification"
	CandidateStatusVerified       CandidateStatus = "verified"
	CandidateStatusRejected       CandidateStatus = "rejected"
	CandidateStatusPlaced         CandidateStatus = "placed"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateStatusPendingPayment, CandidateStatusVerified, CandidateStatusRejected, CandidateStatusPlaced:
		return true
	default:
		return false
	}
}

type NextOfKin struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Tel          string `json:"tel"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

type Guarantor struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Tel          string `json:"tel"`
	Email        string `json:"email"`
	DOB          string `json:"dob"`
	Occupation   string `json:"occupation"`
	WorkAddress  string `json:"workAddress"`
	YearsKnown   string `json:"yearsKnown"`
	Relationship string `json:"relationship"`
	// IDCardURL is filled in during submission, after the staged image has
	// been pushed to object storage. It is never a raw file reference.
	IDCardURL string `json:"idCardUrl,omitempty"`
}

type Acquaintance struct {
	Surname   string `json:"surname"`
	FirstName string `json:"firstName"`
	OtherName string `json:"otherName"`
}

// CandidateRegistration is the draft payload mutated across the onboarding
// wizard steps.
type CandidateRegistration struct {
	// Personal
	Surname             string `json:"surname"`
	FirstName           string `json:"firstName"`
	OtherName           string `json:"otherName"`
	Address             string `json:"address"`
	DOB                 string `json:"dob"`
	Sex                 string `json:"sex"`
	Nationality         string `json:"nationality"`
	StateOfOrigin       string `json:"stateOfOrigin"`
	LGA                 string `json:"lga"`
	Religion            string `json:"religion"`
	Tel                 string `json:"tel"`
	Email               string `json:"email"`
	Whatsapp            string `json:"whatsapp"`
	MaritalStatus       string `json:"maritalStatus"`
	Handicap            string `json:"handicap"`
	HandicapDescription string `json:"handicapDescription,omitempty"`

	// ID
	ValidIDNumber string `json:"validIdNumber"`
	IDType        string `json:"idType"`

	NextOfKin NextOfKin `json:"nextOfKin"`

	// Employment
	DesiredPositions [3]string `json:"desiredPositions"`
	JobLocations     [3]string `json:"jobLocations"`
	JobMode          string    `json:"jobMode"`
	YearsExperience  string    `json:"yearsExperience"`

	Guarantors       [2]Guarantor `json:"guarantors"`
	GuarantorConsent bool         `json:"guarantorConsent"`

	Acquaintances []Acquaintance `json:"acquaintances"`

	// Meta
	AgreedToTerms    bool   `json:"agreedToTerms"`
	PaymentReference string `json:"paymentReference"`
	PassportURL      string `json:"passportUrl,omitempty"`
}

func (c CandidateRegistration) FullName() string {
	name := c.FirstName
	if c.Surname != "" {
		name += " " + c.Surname
	}

	return name
}

type CandidateRecord struct {
	ID          uuid.UUID             `json:"id"`
	UserID      uuid.UUID             `json:"userId"`
	Status      CandidateStatus       `json:"status"`
	Data        CandidateRegistration `json:"data"`
	SubmittedAt time.Time             `json:"submittedAt"`
}
