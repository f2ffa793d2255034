package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"microwave-converter/internal/api/models"
	"microwave-converter/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRateLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1), 2)
	r := okRouter(RateLimit(limiter))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != "RATE_LIMITED" {
		t.Errorf("code = %q, want RATE_LIMITED", resp.Error.Code)
	}
}

func TestRequestID_Generated(t *testing.T) {
	r := okRouter(RequestID())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("no X-Request-ID on response")
	}
}

func TestRequestID_Echoed(t *testing.T) {
	r := okRouter(RequestID())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("X-Request-ID = %q, want req-123", got)
	}
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", resp.Error.Code)
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := okRouter(RequestID(), RequestLogger(logger.Nop()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
