package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type NewsStatus string

const (
	NewsStatusPending   NewsStatus = "pending"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusRejected  NewsStatus = "rejected"
)

func (s NewsStatus) IsValid() bool {
	switch s {
	case NewsStatusPending, NewsStatusPublished, NewsStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the moderation workflow can still move the
// post: only pending posts are transitionable.
func (s NewsStatus) IsTerminal() bool {
	return s != NewsStatusPending
}

type NewsCategory string

const (
	NewsCategoryUpdate    NewsCategory = "Update"
	NewsCategoryInsight   NewsCategory = "Insight"
	NewsCategoryMilestone NewsCategory = "Milestone"
)

func (c NewsCategory) IsValid() bool {
	switch c {
	case NewsCategoryUpdate, NewsCategoryInsight, NewsCategoryMilestone:
		return true
	default:
		return false
	}
}

type NewsPost struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Category  NewsCategory `json:"category"`
	Excerpt   string       `json:"excerpt"`
	Content   string       `json:"content"`
	Author    string       `json:"author"`
	AuthorID  uuid.UUID    `json:"authorId"`
	ImageURL  string       `json:"image,omitempty"`
	Status    NewsStatus   `json:"status"`
	Likes     int          `json:"likes"`
	CreatedAt time.Time    `json:"createdAt"`
}
