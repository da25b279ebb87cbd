package adapthttp

import (
	"context"
	"log"
	"net/http"
	"time"

	"chatroom/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session"

// requireSession gates a protected view: requests without a live session
// are redirected to the entry page instead of rendered. This is the
// precondition check every protected route shares.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.sessionFromRequest(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next(w, r.WithContext(ctx))
	}
}

// sessionFromRequest resolves the session cookie to a live session.
func (s *Server) sessionFromRequest(r *http.Request) (*domain.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, false
	}
	session, err := s.gate.Validate(r.Context(), cookie.Value)
	if err != nil {
		return nil, false
	}
	return session, true
}

// sessionFromContext returns the session stored by requireSession.
func sessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return session
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs method, path, status, and duration per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
