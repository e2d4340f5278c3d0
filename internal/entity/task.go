package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

type Task struct {
	ID         uuid.UUID    `json:"id"`
	Title      string       `json:"title"`
	Project    string       `json:"project"`
	AssigneeID uuid.UUID    `json:"assigneeId"`
	Status     TaskStatus   `json:"status"`
	Priority   TaskPriority `json:"priority"`
	DueDate    time.Time    `json:"dueDate"`
}

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusReview    ProjectStatus = "review"
	ProjectStatusCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusReview, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

type Project struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	ClientID   uuid.UUID     `json:"clientId"`
	ClientName string        `json:"client"`
	Status     ProjectStatus `json:"status"`
	Progress   int           `json:"progress"`
	Deadline   time.Time     `json:"deadline"`
	Category   string        `json:"category"`
}
