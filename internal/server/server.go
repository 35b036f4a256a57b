package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pscheid92/feedbackpulse/internal/config"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/errors"
)

// appService is the application layer surface the HTTP handlers depend on.
type appService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Signin(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SubmitFeedback(ctx context.Context, userID uuid.UUID, rating int, comment string) (*domain.Feedback, error)
	ListUserFeedback(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)
	ListAllFeedback(ctx context.Context) ([]domain.Feedback, error)
	SentimentSummary(ctx context.Context) (domain.Summary, error)
	UserSentimentSummary(ctx context.Context, userID uuid.UUID) (domain.Summary, error)
}

// submissionLimiter gates feedback submissions per user. A nil limiter means
// rate limiting is disabled (no Redis configured).
type submissionLimiter interface {
	Allow(ctx context.Context, userID uuid.UUID) bool
}

// healthPinger is the minimal interface for dependency health checks.
type healthPinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	app          appService
	limiter      submissionLimiter
	dbHealth     healthPinger
	redisHealth  healthPinger
	sessionStore *sessions.CookieStore
	startTime    time.Time
}

// NewServer wires the HTTP layer. limiter, dbHealth and redisHealth may be
// nil; the corresponding features degrade gracefully.
func NewServer(cfg *config.Config, app appService, limiter submissionLimiter, dbHealth, redisHealth healthPinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	// Session store for the admin area
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		limiter:      limiter,
		dbHealth:     dbHealth,
		redisHealth:  redisHealth,
		sessionStore: sessionStore,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
