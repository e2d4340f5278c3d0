package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/time/rate"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/logger"
)

const (
	chatRateLimit = rate.Limit(0.5)
	chatRateBurst = 3

	maxTrackedSessions = 10000
)

type AuthService interface {
	ValidateToken(ctx context.Context, accessToken string) (entity.UserJwtInfo, error)
}

type Middleware struct {
	auth AuthService

	mu       sync.Mutex
	liked    map[string]map[uuid.UUID]bool
	limiters map[string]*rate.Limiter
}

func NewMiddleware(auth AuthService) *Middleware {
	return &Middleware{
		auth:     auth,
		liked:    make(map[string]map[uuid.UUID]bool),
		limiters: make(map[string]*rate.Limiter),
	}
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				w.WriteHeader(http.StatusInternalServerError)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ip string

		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			ip = strings.TrimSpace(ips[0])
		}

		if ip == "" {
			if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
				ip = strings.TrimSpace(realIP)
			}
		}

		if ip == "" {
			var err error

			ip, _, err = net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit throttles per client IP. Used on the public assistant endpoint,
// which is the only route that fans out to a paid upstream.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ip, _ := ctx.Value(entity.CtxKeyIP{}).(string)

		m.mu.Lock()
		limiter, ok := m.limiters[ip]
		if !ok {
			if len(m.limiters) >= maxTrackedSessions {
				m.limiters = make(map[string]*rate.Limiter)
			}

			limiter = rate.NewLimiter(chatRateLimit, chatRateBurst)
			m.limiters[ip] = limiter
		}
		m.mu.Unlock()

		if !limiter.Allow() {
			slog.WarnContext(ctx, "rate limit exceeded", "ip", ip)
			SendErr(ctx, w, http.StatusTooManyRequests, entity.ErrIncorrectRequestBody, "Too many requests")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := extractTokenFromHeader(r)
		if token == "" {
			slog.WarnContext(ctx, "auth: bearer token missing")
			SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)

			return
		}

		user, err := m.auth.ValidateToken(ctx, token)
		if err != nil {
			if errors.Is(err, entity.ErrTokenExpired) || errors.Is(err, entity.ErrInvalidToken) {
				slog.WarnContext(ctx, "auth: token rejected", "error", err)
				SendErr(ctx, w, http.StatusUnauthorized, err, errMsgUnauthorized)
			} else {
				slog.ErrorContext(ctx, "auth: failed to validate token", "error", err)
				SendErr(ctx, w, http.StatusInternalServerError, err, errMsgInternal)
			}

			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)
		ctx = entity.SetTokenToContext(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the user when a valid bearer token is present and
// lets the request through either way. Used on the draft routes, where the
// contact flow is anonymous.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := extractTokenFromHeader(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.auth.ValidateToken(ctx, token)
		if err != nil {
			slog.WarnContext(ctx, "optional auth: token rejected", "error", err)
			next.ServeHTTP(w, r)

			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)
		ctx = entity.SetTokenToContext(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree to one role. Role-less sessions are pushed to
// role selection with 403; the Auth middleware must run first.
func (m *Middleware) RequireRole(role entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := entity.UserFromContext(ctx)
			if err != nil {
				SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
				return
			}

			if user.Role != role {
				slog.WarnContext(ctx, "role check failed", "required", role, "actual", user.Role)
				SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, errMsgForbidden)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

const sessionCookieName = "jm_session"

// WithSession assigns an anonymous session cookie used for the
// once-per-session like dedup on the public news feed.
func (m *Middleware) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			cookie = &http.Cookie{
				Name:     sessionCookieName,
				Value:    uuid.Must(uuid.NewV4()).String(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			http.SetCookie(w, cookie)
		}

		ctx := context.WithValue(r.Context(), ctxKeySession{}, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type ctxKeySession struct{}

func sessionFromContext(ctx context.Context) string {
	session, _ := ctx.Value(ctxKeySession{}).(string)
	return session
}

// MarkLiked records a like for the session and reports whether it is the
// first like of the post within that session.
func (m *Middleware) MarkLiked(session string, postID uuid.UUID) bool {
	if session == "" {
		return true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	posts, ok := m.liked[session]
	if !ok {
		// Anonymous sessions churn, so the map is capped; overflowing it
		// resets the dedup state rather than growing forever.
		if len(m.liked) >= maxTrackedSessions {
			m.liked = make(map[string]map[uuid.UUID]bool)
		}

		posts = make(map[uuid.UUID]bool)
		m.liked[session] = posts
	}

	if posts[postID] {
		return false
	}

	posts[postID] = true

	return true
}

// UnmarkLiked releases a like recorded by MarkLiked, for when the increment
// behind it fails and the session should be able to retry.
func (m *Middleware) UnmarkLiked(session string, postID uuid.UUID) {
	if session == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if posts, ok := m.liked[session]; ok {
		delete(posts, postID)
	}
}
