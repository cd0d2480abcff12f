package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/jwt"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

// CookieName is the cookie the frontend mirrors the access token into.
const CookieName = "token"

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RevocationChecker
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string, userID uuid.UUID, issuedAt time.Time) (bool, error)
}

// New authenticates requests by bearer token, falling back to the token
// cookie. revoked may be nil.
func New(log *slog.Logger, secret string, revoked RevocationChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			tokenString := TokenFromRequest(r)
			if tokenString == "" {
				log.Warn("authorization token missing", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization token missing"))
				return
			}

			claims, err := jwt.Parse(tokenString, secret)
			if err != nil {
				log.Warn("invalid token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(r.Context(), claims.ID, claims.UserID, claims.Issued())
				if err != nil {
					log.Error("failed to check token revocation", sl.Err(err))
					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, response.Error("failed to verify token"))
					return
				}
				if isRevoked {
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("invalid or expired token"))
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		}

		return http.HandlerFunc(fn)
	}
}

// AdminOnly must run after New.
func AdminOnly(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok || claims.Role != models.RoleAdmin {
				log.Warn("admin access denied", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin privileges required"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}

	return ""
}

func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

func ClaimsFrom(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*jwt.Claims)
	return claims, ok && claims != nil
}

// SetCookie mirrors token into the auth cookie until expires.
func SetCookie(w http.ResponseWriter, token string, expires time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
