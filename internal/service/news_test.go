package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
)

func TestService_CreatePost_AdminPublishesImmediately(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	admin := entity.UserJwtInfo{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin}

	var stored entity.NewsPost
	ts.newsRepo.EXPECT().CreatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.NewsPost) error {
			stored = p
			return nil
		})
	ts.publisher.EXPECT().PublishPost(gomock.Any())

	post, err := ts.s.CreatePost(ctx, admin, entity.NewsPost{
		Title:    "Q3 placement results",
		Category: entity.NewsCategoryMilestone,
		Content:  "We placed 42 candidates this quarter.",
		Author:   "Operations",
	})
	require.NoError(t, err)

	require.Equal(t, entity.NewsStatusPublished, post.Status)
	require.Equal(t, admin.ID, post.AuthorID)
	require.Zero(t, post.Likes)
	require.Equal(t, post.ID, stored.ID)
}

func TestService_CreatePost_PartnerEntersModeration(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	partner := entity.UserJwtInfo{ID: uuid.Must(uuid.NewV4()), Role: entity.RolePartner}

	// No PublishPost expectation: pending posts must not reach the feed.
	ts.newsRepo.EXPECT().CreatePost(ctx, gomock.Any()).Return(nil)

	post, err := ts.s.CreatePost(ctx, partner, entity.NewsPost{
		Title:    "New logistics openings",
		Category: entity.NewsCategoryUpdate,
		Content:  "Three roles open this week.",
	})
	require.NoError(t, err)
	require.Equal(t, entity.NewsStatusPending, post.Status)
}

func TestService_CreatePost_Invalid(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	author := entity.UserJwtInfo{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin}

	_, err := ts.s.CreatePost(ctx, author, entity.NewsPost{
		Category: entity.NewsCategoryUpdate,
		Content:  "body without a title",
	})
	require.ErrorIs(t, err, entity.ErrMissingRequiredField)

	_, err = ts.s.CreatePost(ctx, author, entity.NewsPost{
		Title:    "Typo category",
		Category: "Gossip",
		Content:  "body",
	})
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_ModeratePost(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())

	ts.newsRepo.EXPECT().PostByID(ctx, postID).
		Return(entity.NewsPost{ID: postID, Status: entity.NewsStatusPending}, nil)
	ts.newsRepo.EXPECT().UpdatePostStatus(ctx, postID, entity.NewsStatusPublished).Return(nil)
	ts.publisher.EXPECT().PublishPost(gomock.Any()).
		Do(func(p entity.NewsPost) {
			require.Equal(t, entity.NewsStatusPublished, p.Status)
		})

	err := ts.s.ModeratePost(ctx, postID, entity.NewsStatusPublished)
	require.NoError(t, err)
}

func TestService_ModeratePost_Rejections(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())

	// pending is not a valid moderation target.
	err := ts.s.ModeratePost(ctx, postID, entity.NewsStatusPending)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)

	for _, status := range []entity.NewsStatus{entity.NewsStatusPublished, entity.NewsStatusRejected} {
		ts.newsRepo.EXPECT().PostByID(ctx, postID).
			Return(entity.NewsPost{ID: postID, Status: status}, nil)

		err := ts.s.ModeratePost(ctx, postID, entity.NewsStatusRejected)
		require.ErrorIs(t, err, entity.ErrStatusImmutable)
	}
}

func TestService_DeletePost(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())

	ts.newsRepo.EXPECT().DeletePost(ctx, postID).Return(nil)

	err := ts.s.DeletePost(ctx, postID)
	require.NoError(t, err)

	ts.newsRepo.EXPECT().DeletePost(ctx, postID).Return(entity.ErrNotFound)

	err = ts.s.DeletePost(ctx, postID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_PublishedPosts_FilterByCategory(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	ts.newsRepo.EXPECT().Posts(ctx, repository.NewsFilter{
		Status:   entity.NewsStatusPublished,
		Category: entity.NewsCategoryInsight,
	}).Return([]entity.NewsPost{{Title: "Hiring trends"}}, nil)

	posts, err := ts.s.PublishedPosts(ctx, entity.NewsCategoryInsight)
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestService_LikePost(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())

	ts.newsRepo.EXPECT().IncrementLikes(ctx, postID).Return(8, nil)

	likes, err := ts.s.LikePost(ctx, postID)
	require.NoError(t, err)
	require.Equal(t, 8, likes)
}
