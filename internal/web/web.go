// Package web serves the HTML front-end: leaderboard pages, login and
// registration forms, the click button and the admin tools.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/services"
	"github.com/sbilibin2017/clicker/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "login", "register", "leaderboard", "admin", "edit_scores"}

// Accounts registers and authenticates players.
type Accounts interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (*models.UserDB, error)
}

// Game reads and mutates a player's save.
type Game interface {
	State(ctx context.Context, userID int64) (*models.GameState, error)
	Click(ctx context.Context, userID int64) (*models.GameSaveDB, error)
}

// Leaderboard returns ranked players.
type Leaderboard interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// Admin implements the admin panel and the score editor.
type Admin interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	DeleteUser(ctx context.Context, userID int64) error
	ListScores(ctx context.Context) ([]models.UserScore, error)
	SetScore(ctx context.Context, key string, userID, score int64) error
}

// Pages holds the HTML handlers.
type Pages struct {
	sessions    *session.Store
	accounts    Accounts
	game        Game
	leaderboard Leaderboard
	admin       Admin
	templates   map[string]*template.Template
}

// pageData is the model of every template.
type pageData struct {
	User        *session.Data
	Flashes     []session.Flash
	UserScore   int64
	Leaderboard []models.LeaderboardEntry
	Users       []models.UserSummary
	Scores      []models.UserScore
}

// New parses the embedded templates and returns the page handlers.
func New(sessions *session.Store, accounts Accounts, game Game, leaderboard Leaderboard, admin Admin) (*Pages, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Pages{
		sessions:    sessions,
		accounts:    accounts,
		game:        game,
		leaderboard: leaderboard,
		admin:       admin,
		templates:   templates,
	}, nil
}

// Routes registers the pages on r. adminMiddlewares wrap the admin panel and
// the score editor.
func (p *Pages) Routes(r chi.Router, adminMiddlewares ...func(http.Handler) http.Handler) {
	r.Get("/", p.Index)
	r.Post("/increment_score", p.IncrementScore)
	r.Get("/login", p.LoginForm)
	r.Post("/login", p.Login)
	r.Get("/register", p.RegisterForm)
	r.Post("/register", p.Register)
	r.Get("/logout", p.Logout)
	r.Get("/leaderboard", p.FullLeaderboard)

	r.Group(func(r chi.Router) {
		r.Use(adminMiddlewares...)
		r.Get("/admin", p.AdminPanel)
		r.Post("/admin", p.AdminAction)
		r.Get("/edit_scores", p.EditScoresForm)
		r.Post("/edit_scores", p.EditScores)
	})
}

// render writes the page, consuming pending flashes.
func (p *Pages) render(w http.ResponseWriter, sess *session.Data, status int, name string, data pageData) {
	data.Flashes = sess.PopFlashes()
	if sess.LoggedIn() {
		data.User = sess
	}

	var buf bytes.Buffer
	if err := p.templates[name].ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := p.sessions.Save(w, sess); err != nil {
		logger.Log.Errorw("failed to save session", "error", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// redirect stores the session and redirects with 303 See Other.
func (p *Pages) redirect(w http.ResponseWriter, r *http.Request, sess *session.Data, to string) {
	if err := p.sessions.Save(w, sess); err != nil {
		logger.Log.Errorw("failed to save session", "error", err)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func (p *Pages) internalError(w http.ResponseWriter, msg string, err error) {
	logger.Log.Errorw(msg, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// Index shows the top 10 and the player's own score. It also clears the
// one-shot increment flag so the click button works again.
func (p *Pages) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := p.sessions.Load(r)

	entries, err := p.leaderboard.Top(ctx, services.IndexLeaderboardSize)
	if err != nil {
		p.internalError(w, "failed to load leaderboard", err)
		return
	}

	data := pageData{Leaderboard: entries}
	if sess.LoggedIn() {
		state, err := p.game.State(ctx, sess.UserID)
		switch {
		case errors.Is(err, services.ErrUserDoesNotExist):
			sess.Logout()
			sess.AddFlash(session.FlashInfo, "Your account no longer exists.")
		case err != nil:
			p.internalError(w, "failed to load save", err)
			return
		default:
			data.UserScore = state.Save.Score
		}
	}

	sess.Incremented = false
	p.render(w, sess, http.StatusOK, "index", data)
}

// IncrementScore records one click for the session user.
func (p *Pages) IncrementScore(w http.ResponseWriter, r *http.Request) {
	sess := p.sessions.Load(r)

	if !sess.LoggedIn() {
		logger.Log.Infow("score increment attempt without login")
		sess.AddFlash(session.FlashError, "You must be logged in to increment your score.")
		p.redirect(w, r, sess, "/")
		return
	}

	if sess.Incremented {
		sess.Incremented = false
		p.redirect(w, r, sess, "/")
		return
	}

	save, err := p.game.Click(r.Context(), sess.UserID)
	switch {
	case errors.Is(err, services.ErrUserDoesNotExist):
		sess.Logout()
		sess.AddFlash(session.FlashError, "Your account no longer exists.")
	case err != nil:
		p.internalError(w, "failed to increment score", err)
		return
	default:
		sess.AddFlash(session.FlashSuccess, "Score incremented!")
		sess.Incremented = true
		logger.Log.Infow("score incremented", "userID", sess.UserID, "score", save.Score)
	}

	p.redirect(w, r, sess, "/")
}

// LoginForm renders the login page.
func (p *Pages) LoginForm(w http.ResponseWriter, r *http.Request) {
	p.render(w, p.sessions.Load(r), http.StatusOK, "login", pageData{})
}

// Login authenticates the form credentials and starts a session.
func (p *Pages) Login(w http.ResponseWriter, r *http.Request) {
	sess := p.sessions.Load(r)
	username := r.PostFormValue("username")

	user, err := p.accounts.Authenticate(r.Context(), username, r.PostFormValue("password"))
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		sess.AddFlash(session.FlashError, "Invalid credentials")
		p.render(w, sess, http.StatusUnauthorized, "login", pageData{})
		return
	case err != nil:
		p.internalError(w, "failed to authenticate", err)
		return
	}

	*sess = session.Data{
		UserID:   user.UserID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		Flashes:  sess.Flashes,
	}
	sess.AddFlash(session.FlashSuccess, "Login successful!")
	logger.Log.Infow("user logged in", "username", user.Username, "userID", user.UserID)

	p.redirect(w, r, sess, "/")
}

// RegisterForm renders the registration page.
func (p *Pages) RegisterForm(w http.ResponseWriter, r *http.Request) {
	p.render(w, p.sessions.Load(r), http.StatusOK, "register", pageData{})
}

// Register creates an account from the form.
func (p *Pages) Register(w http.ResponseWriter, r *http.Request) {
	sess := p.sessions.Load(r)
	username := r.PostFormValue("username")

	userID, err := p.accounts.Register(r.Context(), username, r.PostFormValue("password"))
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		sess.AddFlash(session.FlashError, "Username already exists")
		p.render(w, sess, http.StatusConflict, "register", pageData{})
		return
	case errors.Is(err, services.ErrInvalidInput):
		sess.AddFlash(session.FlashError, "Username must be 3-32 letters or digits and password 4-72 bytes.")
		p.render(w, sess, http.StatusBadRequest, "register", pageData{})
		return
	case err != nil:
		p.internalError(w, "failed to register", err)
		return
	}

	sess.AddFlash(session.FlashSuccess, "Registration successful! Please login.")
	logger.Log.Infow("new user registered", "username", username, "userID", userID)

	p.redirect(w, r, sess, "/login")
}

// Logout ends the session.
func (p *Pages) Logout(w http.ResponseWriter, r *http.Request) {
	sess := p.sessions.Load(r)
	sess.Logout()
	sess.AddFlash(session.FlashInfo, "You have been logged out")

	p.redirect(w, r, sess, "/")
}

// FullLeaderboard shows every player with score and clicks.
func (p *Pages) FullLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := p.leaderboard.Top(r.Context(), services.FullLeaderboard)
	if err != nil {
		p.internalError(w, "failed to load leaderboard", err)
		return
	}
	p.render(w, p.sessions.Load(r), http.StatusOK, "leaderboard", pageData{Leaderboard: entries})
}

// requireAdmin redirects to the index unless the session carries the admin flag.
func (p *Pages) requireAdmin(w http.ResponseWriter, r *http.Request) (*session.Data, bool) {
	sess := p.sessions.Load(r)
	if !sess.LoggedIn() || !sess.IsAdmin {
		logger.Log.Infow("unauthorized admin panel access attempt", "userID", sess.UserID)
		sess.AddFlash(session.FlashError, "Access denied. Admin privileges required.")
		p.redirect(w, r, sess, "/")
		return nil, false
	}
	return sess, true
}

// AdminPanel lists users.
func (p *Pages) AdminPanel(w http.ResponseWriter, r *http.Request) {
	sess, ok := p.requireAdmin(w, r)
	if !ok {
		return
	}

	users, err := p.admin.ListUsers(r.Context())
	if err != nil {
		p.internalError(w, "failed to list users", err)
		return
	}
	p.render(w, sess, http.StatusOK, "admin", pageData{Users: users})
}

// AdminAction handles the admin panel form.
func (p *Pages) AdminAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := p.requireAdmin(w, r)
	if !ok {
		return
	}

	if r.PostFormValue("delete_user") != "" {
		userID, err := strconv.ParseInt(r.PostFormValue("user_id"), 10, 64)
		switch {
		case err != nil:
			sess.AddFlash(session.FlashError, "Invalid user id")
		case userID == sess.UserID:
			sess.AddFlash(session.FlashError, "You cannot delete your own account.")
		default:
			err := p.admin.DeleteUser(r.Context(), userID)
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				sess.AddFlash(session.FlashError, "User not found")
			case err != nil:
				p.internalError(w, "failed to delete user", err)
				return
			default:
				sess.AddFlash(session.FlashSuccess, "User deleted successfully")
			}
		}
	}

	p.redirect(w, r, sess, "/admin")
}

// EditScoresForm lists (id, username, score) for every player.
func (p *Pages) EditScoresForm(w http.ResponseWriter, r *http.Request) {
	scores, err := p.admin.ListScores(r.Context())
	if err != nil {
		p.internalError(w, "failed to list scores", err)
		return
	}
	p.render(w, p.sessions.Load(r), http.StatusOK, "edit_scores", pageData{Scores: scores})
}

// EditScores overwrites a score when the admin key matches.
func (p *Pages) EditScores(w http.ResponseWriter, r *http.Request) {
	sess := p.sessions.Load(r)

	userID, errID := strconv.ParseInt(r.PostFormValue("user_id"), 10, 64)
	score, errScore := strconv.ParseInt(r.PostFormValue("new_score"), 10, 64)
	if errID != nil || errScore != nil {
		sess.AddFlash(session.FlashError, "Invalid user id or score.")
		p.redirect(w, r, sess, "/edit_scores")
		return
	}

	err := p.admin.SetScore(r.Context(), r.PostFormValue("admin_key"), userID, score)
	switch {
	case errors.Is(err, services.ErrInvalidAdminKey):
		logger.Log.Warnw("invalid admin key attempt for score edit", "userID", userID)
		sess.AddFlash(session.FlashError, "Invalid admin key.")
	case errors.Is(err, services.ErrUserDoesNotExist):
		sess.AddFlash(session.FlashError, "User not found")
	case errors.Is(err, services.ErrInvalidInput):
		sess.AddFlash(session.FlashError, "Invalid user id or score.")
	case err != nil:
		logger.Log.Errorw("error updating score", "userID", userID, "error", err)
		sess.AddFlash(session.FlashError, "Error updating score.")
	default:
		sess.AddFlash(session.FlashSuccess, fmt.Sprintf("Score for user %d updated to %d.", userID, score))
	}

	p.redirect(w, r, sess, "/edit_scores")
}
