package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"

	"github.com/saulo-duarte/ignite-guild/internal/calendar"
	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/directory"
	"github.com/saulo-duarte/ignite-guild/internal/event"
	"github.com/saulo-duarte/ignite-guild/internal/page"
	"github.com/saulo-duarte/ignite-guild/internal/reminder"
	"github.com/saulo-duarte/ignite-guild/internal/visitor"
)

type RouterConfig struct {
	PageHandler      *page.Handler
	EventHandler     *event.Handler
	CalendarHandler  *calendar.Handler
	ReminderHandler  *reminder.Handler
	DirectoryHandler *directory.Handler
	VisitorHandler   *visitor.Handler

	Visitors     *visitor.Tokens
	CSRFKey      []byte
	CookieSecure bool
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", health)
	r.Handle("/static/*", page.Static())

	r.Group(func(r chi.Router) {
		r.Use(cfg.Visitors.Middleware(cfg.CookieSecure))

		r.Mount("/api/events", event.Routes(cfg.EventHandler))
		r.Mount("/api/calendar", calendar.Routes(cfg.CalendarHandler))
		r.Mount("/api/members", directory.Routes(cfg.DirectoryHandler))
		r.Mount("/api/reminders", reminder.APIRoutes(cfg.ReminderHandler))
		r.Get("/events.ics", cfg.EventHandler.ICS)
		r.Post("/visitor/forget", cfg.VisitorHandler.Forget)

		r.Group(func(r chi.Router) {
			r.Use(csrfProtect(cfg.CSRFKey, cfg.CookieSecure))

			r.Get("/", cfg.PageHandler.Home)
			r.Get("/{page}", cfg.PageHandler.Page)

			r.Mount("/reminders", reminder.Routes(cfg.ReminderHandler))
			// Registered after the mount so GET reaches the page rather
			// than the form router.
			r.Get("/reminders", cfg.PageHandler.Serve(page.Reminders))
		})
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// csrfProtect guards the page forms. Over plain HTTP the request is marked
// as such so the origin check does not demand an https referer.
func csrfProtect(key []byte, secure bool) func(http.Handler) http.Handler {
	protect := csrf.Protect(key,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(reminder.CSRFField),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	config.WithContext(r.Context()).WithError(csrf.FailureReason(r)).Warn("Rejected form without a valid CSRF token")
	http.Error(w, "forbidden", http.StatusForbidden)
}
