package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/voluntariados/backend/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"not found", domain.ErrUsuarioNotFound, http.StatusNotFound, `{"message":"Usuario no encontrado"}`},
		{"exists", fmt.Errorf("create: %w", domain.ErrVoluntariadoExists), http.StatusConflict, `{"message":"Voluntariado ya existe"}`},
		{"invalid key", domain.ErrVoluntariadoInvalidID, http.StatusBadRequest, `{"message":"Identificador de voluntariado inválido"}`},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la petición inválido"), http.StatusBadRequest, `{"message":"cuerpo de la petición inválido"}`},
		{"backend failure", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, `{"message":"error interno del servidor"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if got := rec.Body.String(); got != tc.wantBody+"\n" {
				t.Fatalf("expected body %s, got %s", tc.wantBody, got)
			}
		})
	}
}
