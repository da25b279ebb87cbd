package adapthttp

import (
	"html/template"
	"net/http"
)

type registeredView struct {
	Nickname string
}

type menuView struct {
	Nickname   string
	LastAccess string
}

type userView struct {
	Nickname  string
	Name      string
	Email     string
	BirthDate string
}

type usersView struct {
	Users []userView
}

type messageView struct {
	Author   string
	Text     string
	PostedAt string
}

type boardView struct {
	Nickname string
	Messages []messageView
}

// render writes one of the named page templates. The status line is
// already sent when execution starts, so a failing template can only cut
// the page short.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = pages.ExecuteTemplate(w, name, data)
}

// The whole UI is a handful of full-page forms, kept inline the way the
// original application inlines its markup.
var pages = template.Must(template.New("pages").Parse(`
{{define "index"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Login</title></head>
<body>
<h1>Login</h1>
<form method="POST" action="/login">
  <label>Nickname:</label>
  <input type="text" name="nickname" required>
  <label>Password:</label>
  <input type="password" name="password" required>
  <button type="submit">Sign in</button>
</form>
</body>
</html>{{end}}

{{define "register"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>User registration</title></head>
<body>
<h1>User registration</h1>
<form method="POST" action="/cadastrarUsuario">
  <label>Name:</label>
  <input type="text" name="name" required>
  <label>Email:</label>
  <input type="text" name="email">
  <label>Birth date:</label>
  <input type="date" name="birthDate" required>
  <label>Nickname:</label>
  <input type="text" name="nickname" required>
  <label>Password:</label>
  <input type="password" name="password" required>
  <button type="submit">Register</button>
</form>
<a href="/menu">Back to menu</a>
</body>
</html>{{end}}

{{define "registered"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Registered</title></head>
<body>
<h1>User {{.Nickname}} registered successfully!</h1>
<a href="/menu">Back to menu</a>
</body>
</html>{{end}}

{{define "menu"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Menu</title></head>
<body>
<h1>Welcome, {{.Nickname}}!</h1>
<p>Last access: {{.LastAccess}}</p>
<a href="/cadastroUsuario">Register a user</a><br>
<a href="/usuariosCadastrados">Registered users</a><br>
<a href="/batePapo">Go to the chat room</a><br>
<form method="POST" action="/logout"><button type="submit">Logout</button></form>
</body>
</html>{{end}}

{{define "users"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Registered users</title></head>
<body>
<h1>Registered users</h1>
<table border="1">
  <tr><th>Nickname</th><th>Name</th><th>Email</th><th>Birth date</th></tr>
  {{range .Users}}<tr><td>{{.Nickname}}</td><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.BirthDate}}</td></tr>
  {{end}}
</table>
<a href="/menu">Back to menu</a>
</body>
</html>{{end}}

{{define "board"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Chat room</title></head>
<body>
<h1>Chat room</h1>
<ul>
  {{range .Messages}}<li><strong>{{.Author}}</strong> ({{.PostedAt}}): {{.Text}}</li>
  {{end}}
</ul>
<form method="POST" action="/postarMensagem">
  <input type="hidden" name="user" value="{{.Nickname}}">
  <label>Message:</label>
  <input type="text" name="message" required>
  <button type="submit">Post</button>
</form>
<a href="/menu">Back to menu</a>
</body>
</html>{{end}}
`))
