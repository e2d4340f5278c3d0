package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

// SignInWithProvider exchanges a provider-issued ID token for a session.
// The provider only vouches for the identity; the role is looked up in a
// second step, and a missing profile degrades to a role-less session rather
// than failing the sign-in.
func (s *Service) SignInWithProvider(ctx context.Context, idToken string) (entity.UserTokens, error) {
	identity, err := s.identityClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		slog.WarnContext(ctx, "id token verification failed", "error", err)
		return entity.UserTokens{}, err
	}

	if !s.isAllowedDomain(identity.Email) {
		slog.WarnContext(ctx, "sign-in from unauthorized domain", "email", identity.Email)
		return entity.UserTokens{}, entity.ErrUnauthorizedDomain
	}

	user, err := s.userRepo.UserByEmail(ctx, identity.Email)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			return entity.UserTokens{}, fmt.Errorf("get user: %w", err)
		}

		user = entity.User{
			ID:        uuid.Must(uuid.NewV4()),
			Email:     identity.Email,
			Name:      identity.Name,
			AvatarURL: identity.AvatarURL,
			Role:      entity.RoleUnset,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if createErr := s.userRepo.CreateUser(ctx, user); createErr != nil {
			return entity.UserTokens{}, fmt.Errorf("create user: %w", createErr)
		}

		slog.InfoContext(ctx, "first sign-in, user created", "user_id", user.ID, "email", user.Email)

		return s.generateTokens(ctx, user.ID, entity.RoleUnset, true)
	}

	role, roleErr := s.userRepo.RoleByID(ctx, user.ID)
	if roleErr != nil {
		slog.WarnContext(ctx, "role lookup failed, continuing role-less", "user_id", user.ID, "error", roleErr)
		role = entity.RoleUnset
	}

	return s.generateTokens(ctx, user.ID, role, false)
}

// SignInWithPassword authenticates locally provisioned accounts, which the
// admin console uses.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (entity.UserTokens, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return entity.UserTokens{}, err
	}

	userID, hash, err := s.userRepo.PasswordHashByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.UserTokens{}, entity.ErrInvalidCredentials
		}

		return entity.UserTokens{}, fmt.Errorf("get password hash: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		slog.WarnContext(ctx, "password mismatch", "email", email)
		return entity.UserTokens{}, entity.ErrInvalidCredentials
	}

	role, roleErr := s.userRepo.RoleByID(ctx, userID)
	if roleErr != nil {
		slog.WarnContext(ctx, "role lookup failed, continuing role-less", "user_id", userID, "error", roleErr)
		role = entity.RoleUnset
	}

	return s.generateTokens(ctx, userID, role, false)
}

// AssignRole fills the role exactly once. Re-selecting a role is rejected;
// the user keeps the first choice until an admin resets it.
func (s *Service) AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) (entity.UserTokens, error) {
	if !role.IsValid() {
		return entity.UserTokens{}, fmt.Errorf("%w: unknown role %q", entity.ErrIncorrectRequestBody, role)
	}

	if role == entity.RoleAdmin {
		return entity.UserTokens{}, entity.ErrForbidden
	}

	current, err := s.userRepo.RoleByID(ctx, userID)
	if err != nil {
		return entity.UserTokens{}, fmt.Errorf("get current role: %w", err)
	}

	if current != entity.RoleUnset {
		return entity.UserTokens{}, entity.ErrRoleAlreadySet
	}

	if err := s.userRepo.AssignRole(ctx, userID, role); err != nil {
		return entity.UserTokens{}, fmt.Errorf("assign role: %w", err)
	}

	slog.InfoContext(ctx, "role assigned", "user_id", userID, "role", role)

	// Fresh tokens so the session immediately carries the new role.
	return s.generateTokens(ctx, userID, role, false)
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (entity.UserTokens, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return entity.UserTokens{}, err
	}

	if err := s.refreshTokenRepo.FindRefreshToken(ctx, refreshToken); err != nil {
		return entity.UserTokens{}, fmt.Errorf("find refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return entity.UserTokens{}, fmt.Errorf("delete refresh token: %w", err)
	}

	role, roleErr := s.userRepo.RoleByID(ctx, claims.User.ID)
	if roleErr != nil {
		role = claims.User.Role
	}

	return s.generateTokens(ctx, claims.User.ID, role, false)
}

func (s *Service) ValidateToken(_ context.Context, accessToken string) (entity.UserJwtInfo, error) {
	claims, err := s.parseToken(accessToken)
	if err != nil {
		return entity.UserJwtInfo{}, err
	}

	return claims.User, nil
}

func (s *Service) SignOut(ctx context.Context, userID uuid.UUID) error {
	if err := s.refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}

	return nil
}

func (s *Service) DeleteExpiredTokens(ctx context.Context) error {
	if err := s.refreshTokenRepo.CleanExpired(ctx); err != nil {
		return fmt.Errorf("delete expired refresh tokens: %w", err)
	}

	return nil
}

func (s *Service) DeleteStaleDrafts(ctx context.Context) error {
	if err := s.draftRepo.DeleteStaleDrafts(ctx, time.Now().Add(-s.cfg.DraftTTL)); err != nil {
		return fmt.Errorf("delete stale drafts: %w", err)
	}

	return nil
}

func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (entity.User, error) {
	user, err := s.userRepo.UserByID(ctx, userID)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

func (s *Service) isAllowedDomain(email string) bool {
	if len(s.cfg.AllowedEmailDomains) == 0 {
		return true
	}

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}

	domain := strings.ToLower(email[at+1:])
	for _, allowed := range s.cfg.AllowedEmailDomains {
		if domain == strings.ToLower(allowed) {
			return true
		}
	}

	return false
}

func (s *Service) generateTokens(ctx context.Context, userID uuid.UUID, role entity.Role, firstEnter bool) (entity.UserTokens, error) {
	accessTokenExpiresAt := time.Now().Add(s.cfg.AccessTokenExpiry)
	refreshTokenExpiresAt := time.Now().Add(s.cfg.RefreshTokenExpiry)

	jti := uuid.Must(uuid.NewV4()).String()

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		entity.UserJwtClaims{
			User: entity.UserJwtInfo{
				ID:   userID,
				Role: role,
			},
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        jti,
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(refreshTokenExpiresAt),
			},
		}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return entity.UserTokens{}, fmt.Errorf("sign refresh token: %w", err)
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		entity.UserJwtClaims{
			User: entity.UserJwtInfo{
				ID:   userID,
				Role: role,
			},
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        jti,
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(accessTokenExpiresAt),
			},
		}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return entity.UserTokens{}, fmt.Errorf("sign access token: %w", err)
	}

	if err := s.refreshTokenRepo.SaveRefreshToken(ctx, userID, refreshToken, refreshTokenExpiresAt); err != nil {
		return entity.UserTokens{}, fmt.Errorf("save refresh token: %w", err)
	}

	return entity.UserTokens{
		IsFirstEnter:    firstEnter,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		RefreshTokenTTL: s.cfg.RefreshTokenExpiry,
	}, nil
}

func (s *Service) parseToken(tokenString string) (entity.UserJwtClaims, error) {
	var claims entity.UserJwtClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.UserJwtClaims{}, fmt.Errorf("token expired: %w", entity.ErrTokenExpired)
		}

		return entity.UserJwtClaims{}, fmt.Errorf("parse token: %w", entity.ErrInvalidToken)
	}

	if !token.Valid {
		return entity.UserJwtClaims{}, entity.ErrInvalidToken
	}

	return claims, nil
}
