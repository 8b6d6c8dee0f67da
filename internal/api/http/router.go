package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/certmint/certmint/internal/api/service"
	"github.com/certmint/certmint/internal/api/store"
	"github.com/certmint/certmint/pkg/httpx"
	"github.com/certmint/certmint/pkg/jwtx"
	"github.com/certmint/certmint/pkg/slogx"

	_ "github.com/certmint/certmint/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
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

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			certmint API
//	@version		0.1.0
//	@description	Authentication and account service for the certmint quiz-credential platform.
//	@description
//	@description				Session, verification and reset tokens are HS256 JWTs signed with a process-wide secret.
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
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	verifyHandler := &VerifyHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	passwordHandler := &PasswordHandler{AuthService: r.AuthService}

	// POST /register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /verify - moderate rate limit (token redemption from email links)
	r.Mux.Handle("GET /api/auth/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /forgot-password - strict rate limit by IP (drives outbound email)
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(passwordHandler.HandleForgot),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /reset-password - strict rate limit by IP (token redemption)
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(passwordHandler.HandleReset),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// GET /me - authenticated, lenient rate limit by user
	securedMe := httpx.Chain(http.HandlerFunc(h.HandleMe),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// GET /users - admin only, moderate rate limit by user
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole("admin"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/user/me", securedMe)
	r.Mux.Handle("GET /api/user/users", securedList)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
