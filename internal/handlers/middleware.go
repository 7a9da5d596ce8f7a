package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const accountIDKey contextKey = "accountID"

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it, and stores the asserted account ID on the request context.
// Invalid and expired tokens both get a 401; the distinction stays server-side.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(auth, "Bearer ")
		if !found || tokenString == "" {
			writeMessage(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		accountID, err := h.authService.VerifyToken(tokenString)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accountIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)
	return id, ok
}
