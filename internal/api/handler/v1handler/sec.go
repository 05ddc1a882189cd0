package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/logger"
	"pkgadmin/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

// UserKey is the context key holding the authenticated domain.User.
const UserKey contextKey = "user"

// Claims are the JWT claims accepted by the API. The subject is the user name.
type Claims struct {
	jwt.RegisteredClaims

	Roles []domain.Role `json:"roles,omitempty"`
}

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key verifying RS256 tokens.
	PublicKey string
}

type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies an RS256 bearer token and returns ctx carrying the
// user it was issued to.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired()); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	user := domain.User{Name: claims.Subject, Roles: claims.Roles}

	return context.WithValue(logger.WithFields(ctx, zap.String("user", user.Name)), UserKey, user), nil
}

// Middleware rejects requests without a valid bearer token with 401 before
// they reach any handler.
func (s SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeMessage(w, http.StatusUnauthorized, serrors.ErrUnauthorized.Error(),
				"You are not authorized to perform this action.")

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			logger.Debug(r.Context(), "rejected bearer token", zap.Error(err))
			writeMessage(w, http.StatusUnauthorized, serrors.ErrUnauthorized.Error(),
				"You are not authorized to perform this action.")

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user, or the zero User when the
// request was not authenticated.
func UserFromContext(ctx context.Context) domain.User {
	user, _ := ctx.Value(UserKey).(domain.User)

	return user
}
