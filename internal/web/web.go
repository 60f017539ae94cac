package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/glob-dev/users-gateway/internal/logger"
	"github.com/glob-dev/users-gateway/internal/middlewares"
	"github.com/glob-dev/users-gateway/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// UserAdder defines the gateway call the add-user page needs.
type UserAdder interface {
	AddUser(ctx context.Context, userID int64, userName, creationDate string) (string, error)
}

// UserGetter defines the gateway call the view-user page needs.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// UserLister defines the gateway call the all-users page needs.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserGateway is the full gateway surface the router wires up.
type UserGateway interface {
	UserAdder
	UserGetter
	UserLister
}

type errorData struct {
	Reason string
}

type allUsersData struct {
	Users []models.User
}

// NewIndexPage returns the navigation page handler.
func NewIndexPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, "index.html", nil)
	}
}

// NewAddUserFormPage returns the add-user form handler.
func NewAddUserFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, "add_user.html", nil)
	}
}

// NewAddUserPage returns the handler that submits the add-user form to the
// gateway and renders the stored user.
func NewAddUserPage(gw UserAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderError(w, http.StatusBadRequest, "malformed form data")
			return
		}

		userID, err := strconv.ParseInt(r.PostFormValue("user_id"), 10, 64)
		if err != nil {
			renderError(w, http.StatusBadRequest, "user id must be an integer")
			return
		}

		creationDate := r.PostFormValue("creation_date")
		name, err := gw.AddUser(r.Context(), userID, r.PostFormValue("user_name"), creationDate)
		if err != nil {
			renderGatewayError(w, err)
			return
		}

		renderPage(w, http.StatusOK, "added_user.html", models.User{
			UserID:       userID,
			UserName:     name,
			CreationDate: creationDate,
		})
	}
}

// NewFindUserFormPage returns the lookup form handler.
func NewFindUserFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, "find_user.html", nil)
	}
}

// NewViewUserPage returns the handler that fetches one user from the gateway
// and renders it. The user name carries a stable locator for UI tests.
func NewViewUserPage(gw UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("user_id")
		if raw == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			renderError(w, http.StatusBadRequest, "user id must be an integer")
			return
		}

		user, err := gw.GetUser(r.Context(), userID)
		if err != nil {
			renderGatewayError(w, err)
			return
		}

		renderPage(w, http.StatusOK, "view_user.html", user)
	}
}

// NewAllUsersPage returns the handler that renders the full user table.
func NewAllUsersPage(gw UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := gw.ListUsers(r.Context())
		if err != nil {
			renderGatewayError(w, err)
			return
		}

		renderPage(w, http.StatusOK, "all_users.html", allUsersData{Users: users})
	}
}

// NewRouter assembles the HTML client routes.
func NewRouter(gw UserGateway, log *zap.SugaredLogger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middlewares.LoggingMiddleware(log))

	router.Get("/", NewIndexPage())
	router.Get("/users/new", NewAddUserFormPage())
	router.Post("/users", NewAddUserPage(gw))
	router.Get("/users/find", NewFindUserFormPage())
	router.Get("/users/view", NewViewUserPage(gw))
	router.Get("/users/all", NewAllUsersPage(gw))

	return router
}

func renderPage(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render page", "template", name, "error", err)
	}
}

func renderError(w http.ResponseWriter, code int, reason string) {
	renderPage(w, code, "error.html", errorData{Reason: reason})
}

// renderGatewayError keeps the gateway's status code when the failure came
// from the gateway and reports everything else as an unavailable upstream.
func renderGatewayError(w http.ResponseWriter, err error) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		renderError(w, gwErr.StatusCode, gwErr.Reason)
		return
	}
	logger.Log.Errorw("gateway request failed", "error", err)
	renderError(w, http.StatusBadGateway, "users service is unavailable")
}
