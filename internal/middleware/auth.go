package middleware

import (
	"net/http"

	"github.com/ticklist/ticklist/internal/ctxkeys"
	"github.com/ticklist/ticklist/internal/service"
)

// AuthMiddleware resolves the session cookie and adds user + session to the
// context if the token maps to a live session
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookieName())
			if err != nil {
				// No cookie, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			user, session, err := authService.SessionUser(cookie.Value)
			if err != nil {
				// Unknown or expired session, clear cookie and continue
				authService.ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Security: never expose the hash downstream
			user.PasswordHash = ""

			ctx := ctxkeys.WithUser(r.Context(), user)
			ctx = ctxkeys.WithSession(ctx, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries an authenticated session
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// RequireConfirmed ensures the user is authenticated AND has confirmed their
// email. The check runs on every protected route rather than in a global
// hook so it cannot race the auth middleware ordering; unconfirmed users are
// sent to the notice page and can still reach logout and the resend routes.
func RequireConfirmed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if !user.Confirmed {
			http.Redirect(w, r, "/unconfirmed", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// RequireGuest ensures the user is not authenticated
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
