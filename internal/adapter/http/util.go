package adapthttp

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"chatroom/internal/app"
	"chatroom/internal/domain"
)

const (
	sessionCookieName    = "session"
	lastAccessCookieName = "lastAccess"

	// sessionCookieMaxAge matches the session's 30-minute lifetime.
	sessionCookieMaxAge = 1800

	// displayTimeLayout is the day-first display format used for the
	// last-access cookie and message timestamps.
	displayTimeLayout = "02/01/2006 15:04:05"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// formFailure maps a service error to its HTTP status: field validation
// failures are 400, a duplicate nickname is 409, anything else is a server
// fault.
func formFailure(w http.ResponseWriter, err error) {
	var ve *app.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Msg, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNicknameTaken):
		http.Error(w, "nickname already in use", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func displayTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}
