package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/certmint/certmint/pkg/jwtx"
	"github.com/certmint/certmint/pkg/slogx"
)

// AuthnMiddleware is the access guard: it extracts the bearer token, verifies
// it and attaches the decoded subject to the request context. Every failure
// mode gets the same uninformative 401 so callers can't probe which check
// tripped. No store lookup happens here.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeUnauthorized(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				writeUnauthorized(w)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	return ctx
}

func writeUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
}
