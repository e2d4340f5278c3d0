package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
)

// CreatePost stores a news post. Admin posts publish immediately; everyone
// else enters the moderation queue as pending.
func (s *Service) CreatePost(ctx context.Context, author entity.UserJwtInfo, post entity.NewsPost) (entity.NewsPost, error) {
	if post.Title == "" || post.Content == "" {
		return entity.NewsPost{}, fmt.Errorf("%w: title and content are required", entity.ErrMissingRequiredField)
	}

	if !post.Category.IsValid() {
		return entity.NewsPost{}, fmt.Errorf("%w: unknown category %q", entity.ErrIncorrectRequestBody, post.Category)
	}

	status := entity.NewsStatusPending
	if author.Role == entity.RoleAdmin {
		status = entity.NewsStatusPublished
	}

	post.ID = uuid.Must(uuid.NewV4())
	post.AuthorID = author.ID
	post.Status = status
	post.Likes = 0
	post.CreatedAt = time.Now()

	if err := s.newsRepo.CreatePost(ctx, post); err != nil {
		return entity.NewsPost{}, fmt.Errorf("create post: %w", err)
	}

	slog.InfoContext(ctx, "news post created", "post_id", post.ID, "status", status)

	if status == entity.NewsStatusPublished {
		s.notifyFeed(ctx, post)
	}

	return post, nil
}

// ModeratePost is the admin-only pending -> published | rejected transition.
// Both outcomes are terminal.
func (s *Service) ModeratePost(ctx context.Context, id uuid.UUID, status entity.NewsStatus) error {
	if status != entity.NewsStatusPublished && status != entity.NewsStatusRejected {
		return fmt.Errorf("%w: target status must be published or rejected", entity.ErrIncorrectRequestBody)
	}

	post, err := s.newsRepo.PostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}

	if post.Status.IsTerminal() {
		return entity.ErrStatusImmutable
	}

	if err := s.newsRepo.UpdatePostStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update post status: %w", err)
	}

	slog.InfoContext(ctx, "news post moderated", "post_id", id, "status", status)

	if status == entity.NewsStatusPublished {
		post.Status = status
		s.notifyFeed(ctx, post)
	}

	return nil
}

// PublishedPosts is the public feed, newest first.
func (s *Service) PublishedPosts(ctx context.Context, category entity.NewsCategory) ([]entity.NewsPost, error) {
	posts, err := s.newsRepo.Posts(ctx, repository.NewsFilter{
		Status:   entity.NewsStatusPublished,
		Category: category,
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// AllPosts is the admin moderation view, optionally filtered by status.
func (s *Service) AllPosts(ctx context.Context, status entity.NewsStatus) ([]entity.NewsPost, error) {
	posts, err := s.newsRepo.Posts(ctx, repository.NewsFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// LikePost bumps the like counter. The counter itself is monotonic with no
// dedup; the once-per-session rule lives in the API session layer.
func (s *Service) LikePost(ctx context.Context, id uuid.UUID) (int, error) {
	likes, err := s.newsRepo.IncrementLikes(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("increment likes: %w", err)
	}

	return likes, nil
}

// DeletePost removes a post outright, whatever its status. Rejection keeps
// the row for the author's history; deletion is for content that must go.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.newsRepo.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	slog.InfoContext(ctx, "news post deleted", "post_id", id)

	return nil
}

func (s *Service) notifyFeed(ctx context.Context, post entity.NewsPost) {
	if s.publisher == nil {
		return
	}

	s.publisher.PublishPost(post)
	slog.DebugContext(ctx, "post pushed to live feed", "post_id", post.ID)
}
