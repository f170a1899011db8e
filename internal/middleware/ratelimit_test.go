package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabheesh178/woxsen-league/internal/config"
)

func rlConfig(strategy string) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:     true,
		Limit:       10,
		Window:      time.Minute,
		KeyStrategy: strategy,
		Prefix:      "rl",
	}
}

func TestBuildRateKeyStrategies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/bookings")
	c.Set("user_id", uint64(17))

	assert.Equal(t, "rl:ip:10.0.0.9", buildRateKey(rlConfig("ip"), c))
	assert.Equal(t, "rl:user:17", buildRateKey(rlConfig("user"), c))
	assert.Equal(t, "rl:ip:10.0.0.9:route:POST /v1/bookings", buildRateKey(rlConfig("ip_route"), c))
	assert.Equal(t, "rl:user:17:route:POST /v1/bookings", buildRateKey(rlConfig("user_route"), c))
}

func TestBuildRateKeyAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/auth/login")

	assert.Equal(t, "rl:user:anon", buildRateKey(rlConfig("user"), c))
}

func TestRateLimiterDisabledPassesThrough(t *testing.T) {
	cfg := rlConfig("user")
	cfg.Enabled = false

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRateLimiter(cfg, nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterNilRedisPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRateLimiter(rlConfig("user"), nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
