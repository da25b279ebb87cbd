package adapthttp

import (
	"net/http"
	"net/url"
)

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session := sessionFromContext(r.Context())

	lastAccess := "No previous access recorded"
	if cookie, err := r.Cookie(lastAccessCookieName); err == nil {
		if v, err := url.QueryUnescape(cookie.Value); err == nil && v != "" {
			lastAccess = v
		}
	}

	s.render(w, http.StatusOK, "menu", menuView{
		Nickname:   session.Nickname,
		LastAccess: lastAccess,
	})
}

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := s.directory.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := usersView{}
	for _, u := range users {
		view.Users = append(view.Users, userView{
			Nickname:  u.Nickname,
			Name:      u.Name,
			Email:     u.Email,
			BirthDate: u.BirthDate.Format("02/01/2006"),
		})
	}
	s.render(w, http.StatusOK, "users", view)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session := sessionFromContext(r.Context())

	messages, err := s.board.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := boardView{Nickname: session.Nickname}
	for _, m := range messages {
		view.Messages = append(view.Messages, messageView{
			Author:   m.Nickname,
			Text:     m.Text,
			PostedAt: displayTime(m.PostedAt),
		})
	}
	s.render(w, http.StatusOK, "board", view)
}

func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if _, err := s.board.Post(r.Context(), r.PostFormValue("user"), r.PostFormValue("message")); err != nil {
		formFailure(w, err)
		return
	}

	http.Redirect(w, r, "/batePapo", http.StatusFound)
}
