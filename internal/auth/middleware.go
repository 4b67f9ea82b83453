package auth

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
)

const cookieName = "jwt"

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			log.Debug("Request without token")
			action.Respond(w, r, http.StatusOK, nil, action.Unauthorized())
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			log.WithError(err).Warn("Invalid token")
			action.Respond(w, r, http.StatusOK, nil, action.Unauthorized())
			return
		}

		ctx := WithClaims(r.Context(), claims)
		ctx = config.WithUserID(ctx, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
