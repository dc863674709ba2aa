package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riftbounddb/backend/api/controllers"
	"github.com/riftbounddb/backend/api/middleware"
	authsvc "github.com/riftbounddb/backend/internal/auth"
	cardsvc "github.com/riftbounddb/backend/internal/cards"
	"github.com/riftbounddb/backend/pkg/config"
	"github.com/riftbounddb/backend/pkg/logger"
	"github.com/riftbounddb/backend/pkg/metrics"
	"github.com/riftbounddb/backend/pkg/mongodb"
	"github.com/riftbounddb/backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	mongoPinger mongodb.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	cardService cardsvc.Service,
	authService authsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	// A typed nil would defeat the middleware's nil-store fallback.
	rateLimit := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if redisClient == nil {
			return middleware.AuthRateLimit(policy, nil, logg)
		}
		return middleware.AuthRateLimit(policy, redisClient, logg)
	}

	r.Get("/health", controllers.Health(mongoPinger))
	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/cards", func(r chi.Router) {
		r.Get("/", controllers.CardsList(cardService, logg))
		r.Get("/{remoteId}", controllers.CardDetail(cardService, logg))
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(rateLimit(registerPolicy)).Post("/register", controllers.AuthRegister(authService, logg))
		r.With(rateLimit(loginPolicy)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.RequireAuth(cfg.JWT, logg)).Get("/me", controllers.AuthMe(authService, logg))
	})

	if cfg.App.ClientDist != "" {
		mountClient(r, cfg.App.ClientDist)
	} else {
		r.Get("/", controllers.Root())
	}

	return r
}
