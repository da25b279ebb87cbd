package adapthttp

import (
	"errors"
	"net/http"
	"net/url"

	"chatroom/internal/app"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything but the root itself is a 404.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := s.sessionFromRequest(r); ok {
		http.Redirect(w, r, "/menu", http.StatusFound)
		return
	}
	s.render(w, http.StatusOK, "index", nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	nickname := r.PostFormValue("nickname")
	password := r.PostFormValue("password")

	user, err := s.directory.Authenticate(r.Context(), nickname, password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		http.Error(w, "login failed: wrong nickname or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	session, err := s.gate.Login(r.Context(), user.Nickname)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   sessionCookieMaxAge,
	})
	// Client-visible login timestamp, shown on the next menu view.
	http.SetCookie(w, &http.Cookie{
		Name:   lastAccessCookieName,
		Value:  url.QueryEscape(displayTime(session.LastAccess)),
		Path:   "/",
		MaxAge: sessionCookieMaxAge,
	})

	http.Redirect(w, r, "/menu", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		_ = s.gate.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, http.StatusOK, "register", nil)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := app.RegistrationForm{
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		BirthDate: r.PostFormValue("birthDate"),
		Nickname:  r.PostFormValue("nickname"),
		Password:  r.PostFormValue("password"),
	}

	user, err := s.directory.Register(r.Context(), form)
	if err != nil {
		formFailure(w, err)
		return
	}

	s.render(w, http.StatusOK, "registered", registeredView{Nickname: user.Nickname})
}
