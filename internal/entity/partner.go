package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type PartnerType string

const (
	PartnerTypeIndividual   PartnerType = "individual"
	PartnerTypeOrganization PartnerType = "org"
)

func (t PartnerType) IsValid() bool {
	switch t {
	case PartnerTypeIndividual, PartnerTypeOrganization:
		return true
	default:
		return false
	}
}

type PartnerStatus string

const (
	PartnerStatusPendingReview PartnerStatus = "pending_review"
	PartnerStatusApproved      PartnerStatus = "approved"
	PartnerStatusRejected      PartnerStatus = "rejected"
)

func (s PartnerStatus) IsValid() bool {
	switch s {
	case PartnerStatusPendingReview, PartnerStatusApproved, PartnerStatusRejected:
		return true
	default:
		return false
	}
}

type IndividualPartnerData struct {
	FullName           string `json:"fullName"`
	ProfessionalTitle  string `json:"professionalTitle"`
	Whatsapp           string `json:"whatsapp"`
	Email              string `json:"email"`
	PortfolioLink      string `json:"portfolioLink"`
	NIN                string `json:"nin"`
	PrimarySkill       string `json:"primarySkill"`
	ProjectDescription string `json:"projectDescription"`
	IDDocumentURL      string `json:"idDocumentUrl,omitempty"`
}

type OrganizationPartnerData struct {
	BusinessName      string   `json:"businessName"`
	Website           string   `json:"website"`
	CACNumber         string   `json:"cacNumber"`
	TIN               string   `json:"tin"`
	ContactName       string   `json:"contactName"`
	ContactRole       string   `json:"contactRole"`
	OfficialEmail     string   `json:"officialEmail"`
	TeamSize          string   `json:"teamSize"`
	ServicesOffered   []string `json:"servicesOffered"`
	CACCertificateURL string   `json:"cacCertificateUrl,omitempty"`
}

// PartnerApplication carries exactly one of Individual or Organization,
// selected by Type.
type PartnerApplication struct {
	Type         PartnerType              `json:"type"`
	Individual   *IndividualPartnerData   `json:"individual,omitempty"`
	Organization *OrganizationPartnerData `json:"organization,omitempty"`
}

func (a PartnerApplication) ContactEmail() string {
	switch a.Type {
	case PartnerTypeIndividual:
		if a.Individual != nil {
			return a.Individual.Email
		}
	case PartnerTypeOrganization:
		if a.Organization != nil {
			return a.Organization.OfficialEmail
		}
	}

	return ""
}

type PartnerRecord struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"userId"`
	Status      PartnerStatus      `json:"status"`
	Application PartnerApplication `json:"application"`
	SubmittedAt time.Time          `json:"submittedAt"`
}
