package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bakeshop/middleware"
	"bakeshop/session"
	"bakeshop/store"
)

var errUnauthorized = errors.New("unauthorized")

// currentSession resolves the request's claims to a user and returns the
// user's session, creating it if this is the first request since login.
func currentSession(r *http.Request, users store.UserStore, sessions *session.Manager) (*session.Session, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil, errUnauthorized
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	user, err := users.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	return sessions.Get(ctx, user.ID, user.Email), nil
}

// sessionError writes the HTTP status for a currentSession failure.
func sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errUnauthorized):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	default:
		http.Error(w, "Database error", http.StatusInternalServerError)
	}
}
