package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Role is an authorization attribute stored separately from the identity
// itself: it lives in the users table and is merged into the session at
// sign-in time.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleClient    Role = "client"
	RoleCandidate Role = "candidate"
	RolePartner   Role = "partner"
	RoleUnset     Role = ""
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleCandidate, RolePartner:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserTokens struct {
	IsFirstEnter    bool          `json:"firstEnter"`
	AccessToken     string        `json:"accessToken"`
	RefreshToken    string        `json:"refreshToken"`
	RefreshTokenTTL time.Duration `json:"-"`
}

type UserJwtInfo struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

type UserJwtClaims struct {
	User UserJwtInfo
	jwt.RegisteredClaims
}

// ExternalIdentity is what the identity provider vouches for. It carries no
// role; that is looked up separately after verification.
type ExternalIdentity struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"picture"`
}

type MenuItem struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
}
