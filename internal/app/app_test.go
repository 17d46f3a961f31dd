package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/config"
)

func testConfig(name string) *config.Config {
	return &config.Config{
		HTTPAddr:        "127.0.0.1:0",
		DBDriver:        "sqlite",
		DatabaseDSN:     "file:" + name + "?mode=memory&cache=shared",
		JWTSecretKey:    "secret",
		TokenCacheTTL:   time.Minute,
		LoginRateBurst:  5,
		LogLevel:        "debug",
		LogFormat:       "text",
		ShutdownTimeout: time.Second,
	}
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig("logger")

	log, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	cfg.LogFormat = "xml"
	_, err = NewLogger(cfg)
	assert.Error(t, err)

	cfg.LogFormat = "json"
	cfg.LogLevel = "loud"
	_, err = NewLogger(cfg)
	assert.Error(t, err)
}

func TestNew_ServesRequests(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	a, err := New(context.Background(), testConfig("serves"), log)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	username, password := "scarecrow", "1234"
	_, err = a.Users().CreateSuperuser(context.Background(), &command.CreateUserCommand{Username: &username, Password: &password})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scarecrow")

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	a, err := New(context.Background(), testConfig("run"), log)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
