package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypeContract JobType = "Contract"
	JobTypeRemote   JobType = "Remote"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypeContract, JobTypeRemote:
		return true
	default:
		return false
	}
}

type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        JobType   `json:"type"`
	SalaryRange string    `json:"salaryRange"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"postedAt"`
}

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusScreening ApplicationStatus = "Screening"
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusOffer     ApplicationStatus = "Offer"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusScreening, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// JobApplication snapshots the job title and company at apply time; it is a
// denormalized copy, not a live join.
type JobApplication struct {
	ID          uuid.UUID         `json:"id"`
	JobID       uuid.UUID         `json:"jobId"`
	CandidateID uuid.UUID         `json:"candidateId"`
	JobTitle    string            `json:"jobTitle"`
	Company     string            `json:"company"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
}
