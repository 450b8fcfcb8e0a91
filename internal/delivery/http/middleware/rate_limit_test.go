package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	cfg := RateLimitConfig{Limit: 3, Window: time.Minute, KeyPrefix: "rl:test:"}
	ctx := context.Background()

	t.Run("Should count sequential hits against one key", func(t *testing.T) {
		for want := 1; want <= 4; want++ {
			count, resetAt, err := checkRateLimitRedis(ctx, client, "rl:test:1.2.3.4", cfg)
			require.NoError(t, err)
			assert.Equal(t, want, count)
			assert.True(t, resetAt.After(time.Now()))
		}
	})

	t.Run("Should reset after the window expires", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		count, _, err := checkRateLimitRedis(ctx, client, "rl:test:1.2.3.4", cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Should track keys independently", func(t *testing.T) {
		count, _, err := checkRateLimitRedis(ctx, client, "rl:test:5.6.7.8", cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestCheckRateLimitInMemory(t *testing.T) {
	cfg := RateLimitConfig{Limit: 2, Window: 50 * time.Millisecond, KeyPrefix: "rl:mem:"}
	now := time.Now()

	count, _ := checkRateLimitInMemory("rl:mem:a", cfg, now)
	assert.Equal(t, 1, count)
	count, _ = checkRateLimitInMemory("rl:mem:a", cfg, now)
	assert.Equal(t, 2, count)

	// Window expiry resets the counter
	count, _ = checkRateLimitInMemory("rl:mem:a", cfg, now.Add(100*time.Millisecond))
	assert.Equal(t, 1, count)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No Redis initialized in tests, so this exercises the fallback path.
	r := gin.New()
	r.Use(RateLimitMiddleware(RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "rl:mw:",
	}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}
