package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"wordthink/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UsernameKey  contextKey = "username"
	RequestIDKey contextKey = "requestID"
)

var errNoToken = errors.New("no token provided")

// AuthMiddleware rejects requests without a valid bearer token and puts the
// token's subject (the username) on the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := authenticate(r, secret)
			if err != nil {
				logger.Sugar.Infof("Rejected request to %s: %v", r.URL.Path, err)
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}
			recordUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
		})
	}
}

// OptionalAuth lets anonymous requests through. A token that is present but
// invalid is still rejected.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := authenticate(r, secret)
			switch {
			case errors.Is(err, errNoToken):
				next.ServeHTTP(w, r)
			case err != nil:
				logger.Sugar.Infof("Rejected request to %s: %v", r.URL.Path, err)
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
			default:
				recordUsername(r.Context(), username)
				next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
			}
		})
	}
}

func authenticate(r *http.Request, secret string) (string, error) {
	// Browsers cannot set headers on WebSocket handshakes, so the query wins.
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		tokenString = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	if tokenString == "" {
		return "", errNoToken
	}
	return ParseToken(tokenString, secret)
}

// ParseToken verifies an HMAC-signed token and returns its "sub" claim.
func ParseToken(tokenString, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("server is not configured to validate JWTs")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("subject claim is missing or invalid")
	}
	return sub, nil
}

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameKey, username)
}

func UsernameFromCtx(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok && username != ""
}

// SessionAuthenticator reports whether the verified token on ctx belongs to username.
type SessionAuthenticator struct{}

func (SessionAuthenticator) IsAuthenticated(ctx context.Context, username string) bool {
	current, ok := UsernameFromCtx(ctx)
	return ok && current == username
}
