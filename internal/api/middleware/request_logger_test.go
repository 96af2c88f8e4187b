package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	cases := []struct {
		name      string
		handler   echo.HandlerFunc
		wantCode  int
		wantLevel string
	}{
		{
			name:      "success",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantCode:  http.StatusOK,
			wantLevel: "info",
		},
		{
			name:      "client error",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "no") },
			wantCode:  http.StatusNotFound,
			wantLevel: "warn",
		},
		{
			name:      "server error",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError, "boom") },
			wantCode:  http.StatusInternalServerError,
			wantLevel: "error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			e := echo.New()
			e.Use(RequestLogger(log))
			e.GET("/usuarios", tc.handler)

			req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
			}
			if line["level"] != tc.wantLevel {
				t.Fatalf("expected level %q, got %v", tc.wantLevel, line["level"])
			}
			if line["uri"] != "/usuarios" || line["method"] != http.MethodGet {
				t.Fatalf("unexpected log line %v", line)
			}
			if int(line["status"].(float64)) != tc.wantCode {
				t.Fatalf("expected logged status %d, got %v", tc.wantCode, line["status"])
			}
		})
	}
}
