package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lucidmotion/showreel/internal/logging"
)

// Middleware guards the admin surface (catalog refresh) with an HS256 JWT
// bearer token carrying role=admin.
type Middleware struct {
	secret []byte
	logger *logging.Logger
}

// NewMiddleware creates the admin auth middleware.
func NewMiddleware(secret string, logger *logging.Logger) *Middleware {
	if logger == nil {
		logger = logging.Default()
	}
	return &Middleware{secret: []byte(secret), logger: logger}
}

// RequireAdmin wraps a handler, rejecting requests without a valid admin token.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.parse(token)
		if err != nil {
			m.logger.Warn("rejected admin token", logging.WithField("error", err.Error()))
			http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			http.Error(w, `{"error":"admin access required"}`, http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

func (m *Middleware) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("token invalid")
	}
	return claims, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
