package httpx

import "net/http"

// RequireRole gates a handler on the role claim of the authenticated
// subject. Must run after AuthnMiddleware.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[roleFromCtx(r.Context())]; !ok {
				WriteJSON(w, http.StatusForbidden, map[string]string{"message": "Forbidden"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
