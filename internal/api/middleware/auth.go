package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

type actorCtxKey struct{}

// Claims is the JWT payload issued by the identity service.
// Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuth builds the authentication middleware.
// Requests identify themselves either with a Bearer token signed with
// the shared HS256 secret or, for trusted internal callers, with the
// X-User-ID and X-User-Role headers.
func NewAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := resolveActor(r, jwtSecret)
			if err != nil {
				handlers.RespondError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext extracts the authenticated actor set by NewAuth
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return actor, ok
}

func resolveActor(r *http.Request, jwtSecret string) (domain.Actor, error) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return actorFromToken(auth, jwtSecret)
	}
	return actorFromHeaders(r)
}

func actorFromToken(header, jwtSecret string) (domain.Actor, error) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return domain.Actor{}, fmt.Errorf("authorization header must use the Bearer scheme")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Actor{}, fmt.Errorf("invalid token subject")
	}

	role, err := parseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, err
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}

func actorFromHeaders(r *http.Request) (domain.Actor, error) {
	rawID := r.Header.Get("X-User-ID")
	if rawID == "" {
		return domain.Actor{}, fmt.Errorf("missing credentials")
	}

	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Actor{}, fmt.Errorf("invalid X-User-ID header")
	}

	role, err := parseRole(r.Header.Get("X-User-Role"))
	if err != nil {
		return domain.Actor{}, err
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}

func parseRole(raw string) (domain.Role, error) {
	switch domain.Role(raw) {
	case domain.RoleCustomer, domain.RoleShopOwner:
		return domain.Role(raw), nil
	case "":
		return domain.RoleCustomer, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}
