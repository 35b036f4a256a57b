package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/config"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/errors"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockAppService struct {
	signupFn               func(ctx context.Context, name, email, password string) (*domain.User, error)
	signinFn               func(ctx context.Context, email, password string) (*domain.User, error)
	getUserByIDFn          func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	listUsersFn            func(ctx context.Context) ([]domain.User, error)
	submitFeedbackFn       func(ctx context.Context, userID uuid.UUID, rating int, comment string) (*domain.Feedback, error)
	listUserFeedbackFn     func(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)
	listAllFeedbackFn      func(ctx context.Context) ([]domain.Feedback, error)
	sentimentSummaryFn     func(ctx context.Context) (domain.Summary, error)
	userSentimentSummaryFn func(ctx context.Context, userID uuid.UUID) (domain.Summary, error)
}

func (m *mockAppService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, name, email, password)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) Signin(ctx context.Context, email, password string) (*domain.User, error) {
	if m.signinFn != nil {
		return m.signinFn(ctx, email, password)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, userID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) SubmitFeedback(ctx context.Context, userID uuid.UUID, rating int, comment string) (*domain.Feedback, error) {
	if m.submitFeedbackFn != nil {
		return m.submitFeedbackFn(ctx, userID, rating, comment)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) ListUserFeedback(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	if m.listUserFeedbackFn != nil {
		return m.listUserFeedbackFn(ctx, userID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) ListAllFeedback(ctx context.Context) ([]domain.Feedback, error) {
	if m.listAllFeedbackFn != nil {
		return m.listAllFeedbackFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) SentimentSummary(ctx context.Context) (domain.Summary, error) {
	if m.sentimentSummaryFn != nil {
		return m.sentimentSummaryFn(ctx)
	}
	return domain.Summary{}, fmt.Errorf("not implemented")
}

func (m *mockAppService) UserSentimentSummary(ctx context.Context, userID uuid.UUID) (domain.Summary, error) {
	if m.userSentimentSummaryFn != nil {
		return m.userSentimentSummaryFn(ctx, userID)
	}
	return domain.Summary{}, fmt.Errorf("not implemented")
}

type mockLimiter struct {
	allowFn func(ctx context.Context, userID uuid.UUID) bool
}

func (m *mockLimiter) Allow(ctx context.Context, userID uuid.UUID) bool {
	if m.allowFn != nil {
		return m.allowFn(ctx, userID)
	}
	return true
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))
	store.Options = &sessions.Options{
		Path:   "/",
		MaxAge: 3600,
	}

	e := echo.New()
	// Install error middleware for tests to match production behavior
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo: e,
		config: &config.Config{
			AdminUsername: "admin",
			AdminPassword: "test-admin-pass",
		},
		app:          app,
		sessionStore: store,
		startTime:    time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

func withLimiter(l submissionLimiter) func(*Server) {
	return func(s *Server) {
		s.limiter = l
	}
}

func withDBHealth(p healthPinger) func(*Server) {
	return func(s *Server) {
		s.dbHealth = p
	}
}

func withRedisHealth(p healthPinger) func(*Server) {
	return func(s *Server) {
		s.redisHealth = p
	}
}

// doJSON performs a request against the server's router and returns the recorder.
func doJSON(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

// adminCookie logs in as admin and returns the session cookie for reuse.
func adminCookie(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()

	rec := doJSON(srv, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"test-admin-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	for _, c := range cookies {
		if c.Name == sessionName {
			return c
		}
	}
	t.Fatal("no session cookie returned")
	return nil
}
