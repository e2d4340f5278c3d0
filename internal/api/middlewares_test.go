package api

import (
	"fmt"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_MarkLiked(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(nil)
	postID := uuid.Must(uuid.NewV4())

	require.True(t, mw.MarkLiked("session-a", postID))
	require.False(t, mw.MarkLiked("session-a", postID))

	// A different post or session is an independent like.
	require.True(t, mw.MarkLiked("session-a", uuid.Must(uuid.NewV4())))
	require.True(t, mw.MarkLiked("session-b", postID))

	// Releasing the mark lets the session like again, so a failed
	// increment does not block it for good.
	mw.UnmarkLiked("session-a", postID)
	require.True(t, mw.MarkLiked("session-a", postID))
}

func TestMiddleware_MarkLiked_CapResetsTracking(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(nil)
	postID := uuid.Must(uuid.NewV4())

	require.True(t, mw.MarkLiked("session-a", postID))

	for i := 0; i < maxTrackedSessions; i++ {
		mw.MarkLiked(fmt.Sprintf("session-%d", i), postID)
	}

	// The overflow dropped the old dedup state instead of growing the map.
	require.LessOrEqual(t, len(mw.liked), maxTrackedSessions)
	require.True(t, mw.MarkLiked("session-a", postID))
}
