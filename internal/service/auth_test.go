package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

func TestService_SignInWithProvider_FirstEnter(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, testConfig())

	ctx := context.Background()

	ts.identity.EXPECT().VerifyIDToken(ctx, "good-token").Return(entity.ExternalIdentity{
		Subject: "sub-1",
		Email:   "ada@example.com",
		Name:    "Ada Lovelace",
	}, nil)
	ts.userRepo.EXPECT().UserByEmail(ctx, "ada@example.com").Return(entity.User{}, entity.ErrNotFound)
	ts.userRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)
	ts.refreshTokenRepo.EXPECT().SaveRefreshToken(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := ts.s.SignInWithProvider(ctx, "good-token")
	r.NoError(err)
	r.True(tokens.IsFirstEnter)

	info, err := ts.s.ValidateToken(ctx, tokens.AccessToken)
	r.NoError(err)
	r.Equal(entity.RoleUnset, info.Role)
}

func TestService_SignInWithProvider_ExistingUser(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, testConfig())

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	ts.identity.EXPECT().VerifyIDToken(ctx, "good-token").Return(entity.ExternalIdentity{
		Email: "ada@example.com",
	}, nil)
	ts.userRepo.EXPECT().UserByEmail(ctx, "ada@example.com").Return(entity.User{ID: userID}, nil)
	ts.userRepo.EXPECT().RoleByID(ctx, userID).Return(entity.RoleCandidate, nil)
	ts.refreshTokenRepo.EXPECT().SaveRefreshToken(ctx, userID, gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := ts.s.SignInWithProvider(ctx, "good-token")
	r.NoError(err)
	r.False(tokens.IsFirstEnter)

	info, err := ts.s.ValidateToken(ctx, tokens.AccessToken)
	r.NoError(err)
	r.Equal(userID, info.ID)
	r.Equal(entity.RoleCandidate, info.Role)
}

func TestService_SignInWithProvider_DomainNotAllowed(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	cfg := testConfig()
	cfg.AllowedEmailDomains = []string{"jacksonmultifacet.com"}
	ts := NewTestService(t, cfg)

	ctx := context.Background()

	ts.identity.EXPECT().VerifyIDToken(ctx, "good-token").Return(entity.ExternalIdentity{
		Email: "ada@elsewhere.com",
	}, nil)

	_, err := ts.s.SignInWithProvider(ctx, "good-token")
	r.ErrorIs(err, entity.ErrUnauthorizedDomain)
}

func TestService_SignInWithPassword(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, testConfig())

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	r.NoError(err)

	ts.userRepo.EXPECT().PasswordHashByEmail(ctx, "admin@example.com").Return(userID, string(hash), nil)
	ts.userRepo.EXPECT().RoleByID(ctx, userID).Return(entity.RoleAdmin, nil)
	ts.refreshTokenRepo.EXPECT().SaveRefreshToken(ctx, userID, gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := ts.s.SignInWithPassword(ctx, " Admin@Example.com ", "correct horse")
	r.NoError(err)

	info, err := ts.s.ValidateToken(ctx, tokens.AccessToken)
	r.NoError(err)
	r.Equal(entity.RoleAdmin, info.Role)
}

func TestService_SignInWithPassword_BadCredentials(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, testConfig())

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	r.NoError(err)

	ts.userRepo.EXPECT().PasswordHashByEmail(ctx, "admin@example.com").
		Return(uuid.Must(uuid.NewV4()), string(hash), nil)

	_, err = ts.s.SignInWithPassword(ctx, "admin@example.com", "wrong")
	r.ErrorIs(err, entity.ErrInvalidCredentials)

	// Unknown accounts fail the same way so the endpoint does not leak
	// which emails exist.
	ts.userRepo.EXPECT().PasswordHashByEmail(ctx, "ghost@example.com").
		Return(uuid.Nil, "", entity.ErrNotFound)

	_, err = ts.s.SignInWithPassword(ctx, "ghost@example.com", "whatever")
	r.ErrorIs(err, entity.ErrInvalidCredentials)
}

func TestService_AssignRole(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, testConfig())

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	ts.userRepo.EXPECT().RoleByID(ctx, userID).Return(entity.RoleUnset, nil)
	ts.userRepo.EXPECT().AssignRole(ctx, userID, entity.RolePartner).Return(nil)
	ts.refreshTokenRepo.EXPECT().SaveRefreshToken(ctx, userID, gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := ts.s.AssignRole(ctx, userID, entity.RolePartner)
	r.NoError(err)

	info, err := ts.s.ValidateToken(ctx, tokens.AccessToken)
	r.NoError(err)
	r.Equal(entity.RolePartner, info.Role)
}

func TestService_AssignRole_Rejections(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, testConfig())

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	_, err := ts.s.AssignRole(ctx, userID, entity.Role("overlord"))
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)

	_, err = ts.s.AssignRole(ctx, userID, entity.RoleAdmin)
	r.ErrorIs(err, entity.ErrForbidden)

	ts.userRepo.EXPECT().RoleByID(ctx, userID).Return(entity.RoleCandidate, nil)

	_, err = ts.s.AssignRole(ctx, userID, entity.RoleClient)
	r.ErrorIs(err, entity.ErrRoleAlreadySet)
}

func TestService_RefreshToken_RotatesAndPicksUpRole(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, testConfig())

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	ts.userRepo.EXPECT().RoleByID(ctx, userID).Return(entity.RoleUnset, nil)
	ts.userRepo.EXPECT().AssignRole(ctx, userID, entity.RoleClient).Return(nil)
	ts.refreshTokenRepo.EXPECT().SaveRefreshToken(ctx, userID, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	tokens, err := ts.s.AssignRole(ctx, userID, entity.RoleClient)
	r.NoError(err)

	ts.refreshTokenRepo.EXPECT().FindRefreshToken(ctx, tokens.RefreshToken).Return(nil)
	ts.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, tokens.RefreshToken).Return(nil)
	ts.userRepo.EXPECT().RoleByID(ctx, userID).Return(entity.RoleClient, nil)

	refreshed, err := ts.s.RefreshToken(ctx, tokens.RefreshToken)
	r.NoError(err)

	info, err := ts.s.ValidateToken(ctx, refreshed.AccessToken)
	r.NoError(err)
	r.Equal(entity.RoleClient, info.Role)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	cfg := testConfig()
	cfg.AccessTokenExpiry = -time.Minute
	ts := NewTestService(t, cfg)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	ts.userRepo.EXPECT().RoleByID(ctx, userID).Return(entity.RoleUnset, nil)
	ts.userRepo.EXPECT().AssignRole(ctx, userID, entity.RoleClient).Return(nil)
	ts.refreshTokenRepo.EXPECT().SaveRefreshToken(ctx, userID, gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := ts.s.AssignRole(ctx, userID, entity.RoleClient)
	r.NoError(err)

	_, err = ts.s.ValidateToken(ctx, tokens.AccessToken)
	r.ErrorIs(err, entity.ErrTokenExpired)

	_, err = ts.s.ValidateToken(ctx, "not-a-jwt")
	r.ErrorIs(err, entity.ErrInvalidToken)
}
