package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"github.com/aussiebroadwan/staffdb/pkg/httpx"
	"github.com/aussiebroadwan/staffdb/pkg/slogx"

	_ "github.com/aussiebroadwan/staffdb/api/employees" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	TokenService    *service.TokenService
	EmployeeService *service.EmployeeService
	QueryService    *service.QueryService
}

func NewRouter(
	tokens *service.TokenService,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:             http.NewServeMux(),
		buildVersion:    buildVersion,
		startTime:       time.Now(),
		logger:          logger,
		store:           st,
		TokenService:    tokens,
		EmployeeService: &service.EmployeeService{Store: st},
		QueryService:    &service.QueryService{Store: st},
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerToken()
	r.registerEmployees()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			staffdb Employee Record Service API
//	@version		0.1.0
//	@description	CRUD, search and aggregation over employee records.
//	@description
//	@description				Writes and most reads need a bearer token from POST /token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/staffdb
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerToken() {
	// Limited by IP + username to slow down password guessing
	tokenHandler := &TokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIPAndFormField(httpx.LoginLimit, "username"),
		),
	)
}

func (r *Router) registerEmployees() {
	h := &EmployeesHandler{
		Employees: r.EmployeeService,
		Queries:   r.QueryService,
	}

	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.PublicLimit))
	}
	secured := func(fn http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitBySubject(limit),
		)
	}

	r.Mux.Handle("GET /employees", public(h.ListByDepartment))
	r.Mux.Handle("GET /employees/search", public(h.Search))

	r.Mux.Handle("POST /employees", secured(h.Create, httpx.WriteLimit))
	r.Mux.Handle("GET /employees/list", secured(h.List, httpx.ReadLimit))
	r.Mux.Handle("GET /employees/avg-salary", secured(h.AverageSalary, httpx.ReadLimit))
	r.Mux.Handle("GET /employees/{employee_id}", secured(h.Get, httpx.ReadLimit))
	r.Mux.Handle("PUT /employees/{employee_id}", secured(h.Update, httpx.WriteLimit))
	r.Mux.Handle("DELETE /employees/{employee_id}", secured(h.Delete, httpx.WriteLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /health", HealthHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService))
}
