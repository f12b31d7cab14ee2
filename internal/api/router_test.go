package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jengzang/voyager-backend-go/internal/config"
	"github.com/jengzang/voyager-backend-go/internal/generator"
	"github.com/jengzang/voyager-backend-go/internal/handler"
	"github.com/jengzang/voyager-backend-go/internal/middleware"
	"github.com/jengzang/voyager-backend-go/internal/service"
)

func newRouter(t *testing.T, origins []string, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"trip_name":"x","itinerary":[{"day":1,"activities":[]}]}`))
	}))
	t.Cleanup(upstream.Close)

	svc := service.NewTripService(generator.NewClient(upstream.URL, time.Second), nil, nil)
	cfg := config.Default()
	cfg.AllowedOrigins = origins

	return SetupRouter(cfg, Handlers{
		Trips:   handler.NewTripHandler(svc),
		Audit:   handler.NewAuditHandler(svc),
		Limiter: middleware.NewRateLimiter(limit, time.Hour),
	})
}

func TestHealth(t *testing.T) {
	r := newRouter(t, []string{"*"}, 10)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutesRegistered(t *testing.T) {
	r := newRouter(t, []string{"*"}, 10)

	want := map[string]bool{
		"GET /health":                   false,
		"POST /api/trip":                false,
		"POST /api/v1/trips/generate":   false,
		"POST /api/v1/trips/replan":     false,
		"POST /api/v1/trips/day-view":   false,
		"GET /api/v1/presets":           false,
		"GET /api/v1/generations":       false,
		"GET /api/v1/generations/stats": false,
		"GET /api/v1/replans":           false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		assert.True(t, found, key)
	}
}

func TestForwardIsRateLimited(t *testing.T) {
	r := newRouter(t, []string{"*"}, 1)

	post := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/trip", strings.NewReader(`{}`)))
		return w.Code
	}
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/trip", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded. Please try again later."}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/trips/generate", strings.NewReader(`{"location":"Goa"}`)))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"code":429`)
}

func TestCORS(t *testing.T) {
	r := newRouter(t, []string{"https://voyager.app"}, 10)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/presets", nil)
	req.Header.Set("Origin", "https://voyager.app")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://voyager.app", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCorsConfigAllowAll(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"http://localhost:5173"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowOrigins)
}
