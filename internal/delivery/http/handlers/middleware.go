package handlers

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type principalKey struct{}

// authenticate resolves a bearer token to the caller. Requests without a
// valid token continue anonymously.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		principal, err := h.auth.Authenticate(r.Context(), token)
		if err != nil {
			slog.Debug("ignoring invalid session token", "path", r.URL.Path, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, principal)))
	})
}

// requireUser rejects anonymous callers with 401 before any handler runs.
func requireUser(onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !principalFrom(r).Authenticated() {
				onError(w, r, domain.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func principalFrom(r *http.Request) *domain.Principal {
	p, _ := r.Context().Value(principalKey{}).(*domain.Principal)
	return p
}

func userID(r *http.Request) string {
	if p := principalFrom(r); p != nil {
		return p.UserID
	}
	return ""
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// clientIP expects middleware.RealIP to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
