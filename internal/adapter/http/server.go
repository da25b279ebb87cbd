// Package adapthttp implements the HTTP adapter for the application. It
// decodes form submissions, sequences the directory, session, and board
// services per request, and renders full HTML pages.
package adapthttp

import (
	"net/http"

	"chatroom/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	directory *app.DirectoryService
	gate      *app.SessionService
	board     *app.BoardService
}

// New creates a Server wired to the given application services.
func New(directory *app.DirectoryService, gate *app.SessionService, board *app.BoardService) *Server {
	return &Server{directory: directory, gate: gate, board: board}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/cadastroUsuario", s.requireSession(s.handleRegisterForm))
	mux.HandleFunc("/cadastrarUsuario", s.handleRegister)
	mux.HandleFunc("/menu", s.requireSession(s.handleMenu))
	mux.HandleFunc("/usuariosCadastrados", s.requireSession(s.handleUserList))
	mux.HandleFunc("/batePapo", s.requireSession(s.handleBoard))
	mux.HandleFunc("/postarMensagem", s.handlePostMessage)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return s.loggingMiddleware(mux)
}
