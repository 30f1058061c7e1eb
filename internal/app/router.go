package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/visaletter-backend/internal/adapter/postgres"
	letterrepo "github.com/heartmarshall/visaletter-backend/internal/adapter/postgres/letter"
	profilerepo "github.com/heartmarshall/visaletter-backend/internal/adapter/postgres/profile"
	userrepo "github.com/heartmarshall/visaletter-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/visaletter-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/visaletter-backend/internal/adapter/provider/stub"
	"github.com/heartmarshall/visaletter-backend/internal/auth"
	"github.com/heartmarshall/visaletter-backend/internal/config"
	"github.com/heartmarshall/visaletter-backend/internal/metrics"
	"github.com/heartmarshall/visaletter-backend/internal/service/entitlement"
	"github.com/heartmarshall/visaletter-backend/internal/service/identity"
	"github.com/heartmarshall/visaletter-backend/internal/service/letter"
	"github.com/heartmarshall/visaletter-backend/internal/service/onboarding"
	"github.com/heartmarshall/visaletter-backend/internal/service/user"
	"github.com/heartmarshall/visaletter-backend/internal/strategy"
	"github.com/heartmarshall/visaletter-backend/internal/transport/middleware"
	"github.com/heartmarshall/visaletter-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// NewGenerator returns the text generator selected by cfg.Provider.
func NewGenerator(cfg config.GenerationConfig, logger *slog.Logger) strategy.Generator {
	if cfg.Provider == config.ProviderStub {
		return stub.New()
	}
	return anthropic.New(anthropic.Config{
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	}, logger)
}

// NewHandler wires repositories, services and transport into the HTTP
// handler. The returned func releases background resources.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	gen strategy.Generator,
	m *metrics.Metrics,
) (http.Handler, func()) {
	// 1. Repositories.
	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	letters := letterrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// 2. Services.
	tracker := entitlement.NewTracker(logger, users, cfg.Entitlement.UnlimitedTiers)
	resolver := identity.NewResolver(logger, users, cfg.Entitlement.FreeLettersLimit)
	registry := strategy.DefaultRegistry()

	letterService := letter.NewService(
		logger, users, profiles, letters, tracker, registry, gen, txm, m,
		letter.Config{GenerationTimeout: cfg.Generation.Timeout},
	)
	userService := user.NewService(logger, users, tracker)
	onboardingService := onboarding.NewService(logger, users)

	// 3. Handlers.
	health := rest.NewHealthHandler(pool, Version, cfg.Generation.Provider)
	letterHandler := rest.NewLetterHandler(letterService, logger)
	meHandler := rest.NewMeHandler(userService, onboardingService, logger)
	strategyHandler := rest.NewStrategyHandler(registry)

	// 4. Routes.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", m.Handler())

	mux.HandleFunc("GET /api/strategies", strategyHandler.List)

	authed := func(h http.HandlerFunc) http.Handler { return middleware.RequireUser(h) }

	mux.Handle("GET /api/me", authed(meHandler.Get))
	mux.Handle("PUT /api/me/target-country", authed(meHandler.SetTargetCountry))
	mux.Handle("POST /api/onboarding/complete", authed(meHandler.CompleteOnboarding))

	generate := authed(letterHandler.Generate)
	stop := func() {}
	if cfg.RateLimit.GeneratePerMinute > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.GeneratePerMinute, cfg.RateLimit.Burst, rateLimitCleanupInterval)
		generate = middleware.RequireUser(rl.Limit()(http.HandlerFunc(letterHandler.Generate)))
		stop = rl.Stop
	}
	mux.Handle("POST /api/letters", generate)
	mux.Handle("GET /api/letters", authed(letterHandler.List))
	mux.Handle("GET /api/letters/{id}", authed(letterHandler.Get))
	mux.Handle("PUT /api/letters/{id}/favorite", authed(letterHandler.SetFavorite))
	mux.Handle("PUT /api/letters/{id}/feedback", authed(letterHandler.SetFeedback))

	// 5. Middleware chain. Logger sits inside Auth to see the user ID;
	// Metrics wraps the mux directly to read r.Pattern.
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience)
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier, resolver, logger),
		middleware.Logger(logger),
		middleware.Metrics(m),
	)(mux)

	return handler, stop
}
