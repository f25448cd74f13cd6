package auth

import (
	"fmt"
	"net/http"

	"github.com/mind-engage/quizbank/internal/rbac"
)

const realm = "quizbank"

// BasicAuth gates a route group on the credential set for role. On success
// the subject and role land in the request context; on failure the response
// carries a Basic challenge. Every request is checked in full, there is no
// session state.
func BasicAuth(creds *CredentialStore, role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}
			sub, err := creds.Validate(user, pass, role)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := WithSubject(r.Context(), sub)
			ctx = rbac.WithRole(ctx, string(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
	http.Error(w, "incorrect username or password", http.StatusUnauthorized)
}
