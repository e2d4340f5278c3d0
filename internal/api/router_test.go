package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/api"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/mocks"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/config"
)

const testJWTSecret = "test-secret"

// TestAPI runs the real router, middleware and service against mocked
// repositories and clients.
type TestAPI struct {
	userRepo         *mocks.MockUserRepository
	refreshTokenRepo *mocks.MockRefreshTokenRepository
	draftRepo        *mocks.MockDraftRepository
	registrationRepo *mocks.MockRegistrationRepository
	newsRepo         *mocks.MockNewsRepository
	dashboardRepo    *mocks.MockDashboardRepository
	identity         *mocks.MockIdentityClient
	storage          *mocks.MockStorageClient
	assistant        *mocks.MockAssistantClient
	mailer           *mocks.MockMailer
	producer         *mocks.MockSubmissionProducer
	publisher        *mocks.MockPublisher

	server *httptest.Server
	client *http.Client
}

func NewTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	ta := &TestAPI{
		userRepo:         mocks.NewMockUserRepository(ctrl),
		refreshTokenRepo: mocks.NewMockRefreshTokenRepository(ctrl),
		draftRepo:        mocks.NewMockDraftRepository(ctrl),
		registrationRepo: mocks.NewMockRegistrationRepository(ctrl),
		newsRepo:         mocks.NewMockNewsRepository(ctrl),
		dashboardRepo:    mocks.NewMockDashboardRepository(ctrl),
		identity:         mocks.NewMockIdentityClient(ctrl),
		storage:          mocks.NewMockStorageClient(ctrl),
		assistant:        mocks.NewMockAssistantClient(ctrl),
		mailer:           mocks.NewMockMailer(ctrl),
		producer:         mocks.NewMockSubmissionProducer(ctrl),
		publisher:        mocks.NewMockPublisher(ctrl),
	}

	cfg := config.Config{
		JWTSecret:          testJWTSecret,
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 720 * time.Hour,
	}

	s := service.NewService(
		cfg,
		ta.userRepo,
		ta.refreshTokenRepo,
		ta.draftRepo,
		ta.registrationRepo,
		ta.newsRepo,
		ta.dashboardRepo,
		ta.identity,
		ta.storage,
		ta.assistant,
		ta.mailer,
		ta.producer,
		ta.publisher,
	)

	mw := api.NewMiddleware(s)
	hub := api.NewFeedHub()
	t.Cleanup(hub.Close)

	ta.server = httptest.NewServer(api.NewRouter(api.NewHandler(s, mw), hub, mw))
	t.Cleanup(ta.server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	ta.client = &http.Client{Jar: jar}

	return ta
}

// accessToken mints a token the way the auth service does, so middleware
// tests do not need the whole sign-in choreography.
func accessToken(t *testing.T, user entity.UserJwtInfo) string {
	t.Helper()

	claims := entity.UserJwtClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.Must(uuid.NewV4()).String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return token
}

func (ta *TestAPI) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ta.server.URL+path, &buf)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ta.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	resp := ta.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_AuthRequired(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	resp := ta.do(t, http.MethodGet, "/api/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ta.do(t, http.MethodGet, "/api/me", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_RoleEnforcement(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	candidate := accessToken(t, entity.UserJwtInfo{
		ID:   uuid.Must(uuid.NewV4()),
		Role: entity.RoleCandidate,
	})

	// Candidates cannot reach the admin surface.
	resp := ta.do(t, http.MethodGet, "/api/admin/candidates", candidate, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// But their own dashboard works.
	ta.dashboardRepo.EXPECT().Jobs(gomock.Any(), repository.JobFilter{}).Return(nil, nil)

	resp = ta.do(t, http.MethodGet, "/api/jobs", candidate, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_LikeOncePerSession(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	postID := uuid.Must(uuid.NewV4())

	// First like increments the counter.
	ta.newsRepo.EXPECT().IncrementLikes(gomock.Any(), postID).Return(1, nil)

	resp := ta.do(t, http.MethodPost, "/api/news/"+postID.String()+"/like", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var like api.LikeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&like))
	require.Equal(t, 1, like.Likes)

	// Second like from the same session does not increment; the current
	// count is read back instead.
	ta.newsRepo.EXPECT().Posts(gomock.Any(), repository.NewsFilter{Status: entity.NewsStatusPublished}).
		Return([]entity.NewsPost{{ID: postID, Likes: 1}}, nil)

	resp = ta.do(t, http.MethodPost, "/api/news/"+postID.String()+"/like", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&like))
	require.Equal(t, 1, like.Likes)
}

func TestRouter_LikeRetryAfterFailedIncrement(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	postID := uuid.Must(uuid.NewV4())

	// A failed increment must not burn the session's like.
	ta.newsRepo.EXPECT().IncrementLikes(gomock.Any(), postID).
		Return(0, errors.New("connection reset"))

	resp := ta.do(t, http.MethodPost, "/api/news/"+postID.String()+"/like", "", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	ta.newsRepo.EXPECT().IncrementLikes(gomock.Any(), postID).Return(1, nil)

	resp = ta.do(t, http.MethodPost, "/api/news/"+postID.String()+"/like", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var like api.LikeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&like))
	require.Equal(t, 1, like.Likes)
}

func TestRouter_AdminDeletePost(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	postID := uuid.Must(uuid.NewV4())
	admin := accessToken(t, entity.UserJwtInfo{
		ID:   uuid.Must(uuid.NewV4()),
		Role: entity.RoleAdmin,
	})

	ta.newsRepo.EXPECT().DeletePost(gomock.Any(), postID).Return(nil)

	resp := ta.do(t, http.MethodDelete, "/api/admin/news/"+postID.String(), admin, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_SignInWithPassword_BadCredentials(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	ta.userRepo.EXPECT().PasswordHashByEmail(gomock.Any(), "admin@example.com").
		Return(uuid.Nil, "", entity.ErrNotFound)

	resp := ta.do(t, http.MethodPost, "/api/auth/sign-in", "", api.PasswordSignInRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_AnonymousDraftOnlyForContact(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	// Candidate onboarding requires a signed-in user.
	resp := ta.do(t, http.MethodPost, "/api/drafts", "", api.StartDraftRequest{
		Flow: entity.FlowCandidateOnboarding,
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Contact intake does not.
	ta.draftRepo.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return(nil)

	resp = ta.do(t, http.MethodPost, "/api/drafts", "", api.StartDraftRequest{
		Flow: entity.FlowContactIntake,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}
