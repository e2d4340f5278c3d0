package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ContactCategory string

const (
	CategoryRecruitment ContactCategory = "recruitment"
	CategoryBusinessDev ContactCategory = "business_dev"
	CategoryITSupport   ContactCategory = "it_support"
	CategoryGeneral     ContactCategory = "general"
)

func (c ContactCategory) IsValid() bool {
	switch c {
	case CategoryRecruitment, CategoryBusinessDev, CategoryITSupport, CategoryGeneral:
		return true
	default:
		return false
	}
}

// SubServices lists the selectable sub-services per category. At least one
// selection is required before the category step may advance.
func (c ContactCategory) SubServices() []string {
	switch c {
	case CategoryBusinessDev:
		return []string{"CV Revamp", "Branding Strategy", "Business Proposal", "Company Registration"}
	case CategoryRecruitment:
		return []string{"I need to hire", "I am looking for a job", "HR Consultancy"}
	case CategoryITSupport:
		return []string{"Web Development", "Mobile App", "Technical Support", "Software Maintenance"}
	case CategoryGeneral:
		return []string{"Partnership", "Press Inquiry", "Feedback", "Other"}
	default:
		return nil
	}
}

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusReviewed ContactStatus = "reviewed"
)

type ContactSubmission struct {
	ID          uuid.UUID       `json:"id"`
	Category    ContactCategory `json:"category"`
	SubServices []string        `json:"subServices"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Budget      decimal.Decimal `json:"budget"`
	Message     string          `json:"message"`
	Status      ContactStatus   `json:"status"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

type NewsletterSubscriber struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
