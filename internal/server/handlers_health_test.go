package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doJSON(srv, http.MethodGet, "/health/live", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleReadiness_AllHealthy(t *testing.T) {
	srv := newTestServer(t, &mockAppService{},
		withDBHealth(&mockPinger{}),
		withRedisHealth(&mockPinger{}),
	)

	rec := doJSON(srv, http.MethodGet, "/health/ready", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleReadiness_DatabaseDown(t *testing.T) {
	srv := newTestServer(t, &mockAppService{},
		withDBHealth(&mockPinger{err: errors.New("connection refused")}),
	)

	rec := doJSON(srv, http.MethodGet, "/health/ready", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "postgres", resp["failed_check"])
}

func TestHandleReadiness_RedisDown(t *testing.T) {
	srv := newTestServer(t, &mockAppService{},
		withDBHealth(&mockPinger{}),
		withRedisHealth(&mockPinger{err: errors.New("connection refused")}),
	)

	rec := doJSON(srv, http.MethodGet, "/health/ready", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "redis", resp["failed_check"])
}

func TestHandleReadiness_NoCheckersConfigured(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doJSON(srv, http.MethodGet, "/health/ready", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doJSON(srv, http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "version")
}
