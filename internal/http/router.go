package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taskvault/taskvault/internal/service"
	"github.com/taskvault/taskvault/internal/store"
	"github.com/taskvault/taskvault/pkg/httpx"
	"github.com/taskvault/taskvault/pkg/jwtx"
	"github.com/taskvault/taskvault/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	TaskService      *service.TaskService
	DashboardService *service.DashboardService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerDashboard()
	r.registerTasks()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// gate is the standard protected-route chain: access gate first, then a
// per-user rate limit.
func (r *Router) gate(h http.Handler) http.Handler {
	return httpx.Chain(h,
		AuthnMiddleware(r.verifier, r.store.Users()),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerAuth() {
	// Credential endpoints are the brute-force surface, so they get the
	// strict per-IP limit.
	signup := &SignupHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/signup",
		httpx.Chain(signup, httpx.RateLimitByIP(httpx.StrictLimit)),
	)

	login := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(login, httpx.RateLimitByIP(httpx.StrictLimit)),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/profile", r.gate(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /api/profile", r.gate(http.HandlerFunc(h.HandleUpdate)))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}

	r.Mux.Handle("GET /api/dashboard", r.gate(h))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.Mux.Handle("POST /api/tasks", r.gate(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /api/tasks", r.gate(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /api/tasks/{id}", r.gate(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /api/tasks/{id}", r.gate(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/tasks/{id}", r.gate(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
