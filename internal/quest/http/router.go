package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/aussiebroadwan/questboard/pkg/jwtx"
	"github.com/aussiebroadwan/questboard/pkg/slogx"

	_ "github.com/aussiebroadwan/questboard/api/quest" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeyManager
	limits       httpx.RateLimits
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	ProgressService   *service.ProgressService
	CompletionService *service.CompletionService
	ProfileService    *service.ProfileService
	SessionService    *service.SessionService
}

func NewRouter(
	keys *jwtx.KeyManager,
	limits httpx.RateLimits,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		limits:       limits.Normalize(),
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
	r.registerProgress()
	r.registerUsers()
	r.registerQuests()
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Questboard API
//	@version		0.1.0
//	@description	Quest progress, XP and achievements for wallet-identified learners.
//	@description
//	@description	Completing a quest credits its XP exactly once per wallet, however many requests race.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/questboard
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				EdDSA session token from /v1/auth/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerProgress() {
	h := &ProgressHandler{
		ProgressService:   r.ProgressService,
		CompletionService: r.CompletionService,
	}

	// Writes - moderate rate limit by IP
	r.Mux.Handle("POST /v1/progress/start/{questId}",
		httpx.Chain(http.HandlerFunc(h.HandleStart),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)
	r.Mux.Handle("PUT /v1/progress/update/{questId}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateStep),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)
	r.Mux.Handle("POST /v1/progress/complete/{questId}",
		httpx.Chain(http.HandlerFunc(h.HandleComplete),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)

	// Reads - lenient
	r.Mux.Handle("GET /v1/progress/user/{walletAddress}",
		httpx.Chain(http.HandlerFunc(h.HandleUserProgress),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /v1/progress/quest/{questId}/status",
		httpx.Chain(http.HandlerFunc(h.HandleQuestStatus),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /v1/progress/recent-completions",
		httpx.Chain(http.HandlerFunc(h.HandleRecentCompletions),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/users/profile/{walletAddress}",
		httpx.Chain(http.HandlerFunc(h.HandleGetProfile),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("PUT /v1/users/profile/{walletAddress}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)
	r.Mux.Handle("GET /v1/users/exists/{walletAddress}",
		httpx.Chain(http.HandlerFunc(h.HandleExists),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /v1/users/leaderboard",
		httpx.Chain(http.HandlerFunc(h.HandleLeaderboard),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /v1/users/stats",
		httpx.Chain(http.HandlerFunc(h.HandleStats),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /v1/users/interaction/{walletAddress}",
		httpx.Chain(http.HandlerFunc(h.HandleInteraction),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)

	// Authenticated - lenient rate limit by user
	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.keys.Verifier()),
			httpx.RequireAnyScope(service.ScopeProfileRead),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
	)
}

func (r *Router) registerQuests() {
	r.Mux.Handle("GET /v1/quests",
		httpx.Chain(http.HandlerFunc(HandleListQuests),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /v1/quests/{questId}",
		httpx.Chain(http.HandlerFunc(HandleGetQuest),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{SessionService: r.SessionService}

	// Login mints tokens - strict
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /v1/auth/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys.KeySet()),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}
