package service_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/mocks"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/config"
)

type TestService struct {
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
	s                *service.Service
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:          "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 720 * time.Hour,
		DraftTTL:           336 * time.Hour,
	}
}

func NewTestService(t *testing.T, cfg config.Config) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &TestService{
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

	ts.s = service.NewService(
		cfg,
		ts.userRepo,
		ts.refreshTokenRepo,
		ts.draftRepo,
		ts.registrationRepo,
		ts.newsRepo,
		ts.dashboardRepo,
		ts.identity,
		ts.storage,
		ts.assistant,
		ts.mailer,
		ts.producer,
		ts.publisher,
	)

	return ts
}
