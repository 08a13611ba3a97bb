package middleware_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/seller-orders/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantEmpty bool
	}{
		{name: "ok", path: "/sellers/s1/orders", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", path: "/sellers/s1/orders", status: http.StatusConflict, wantLevel: "level=WARN"},
		{name: "server error", path: "/sellers/s1/orders", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
		{name: "skipped path", path: "/metrics", status: http.StatusOK, wantEmpty: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(middleware.Logger(logger, "/metrics"))
			r.Use(middleware.Metrics)
			r.Get(tc.path, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.status, rr.Code)
			if tc.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tc.wantLevel)
			assert.Contains(t, buf.String(), fmt.Sprintf("status=%d", tc.status))
		})
	}
}
