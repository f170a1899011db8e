package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabheesh178/woxsen-league/internal/model"
	"github.com/Prabheesh178/woxsen-league/internal/utils"
)

const testSecret = "test-secret"

func doAuthed(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, captured
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "rahul@woxsen.edu.in", model.RoleStudent, 5)
	require.NoError(t, err)

	rec, c := doAuthed(t, "Bearer "+tok.Token)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, c)
	assert.Equal(t, uint64(42), c.Get("user_id"))
	assert.Equal(t, "rahul@woxsen.edu.in", c.Get("email"))
	assert.Equal(t, model.RoleStudent, c.Get("role"))
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec, c := doAuthed(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c)
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	rec, c := doAuthed(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 7, "x@woxsen.edu.in", model.RoleStudent, 5)
	require.NoError(t, err)

	rec, c := doAuthed(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		role interface{}
		want int
	}{
		{"warden allowed", model.RoleWarden, http.StatusOK},
		{"student denied", model.RoleStudent, http.StatusForbidden},
		{"missing role denied", nil, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.role != nil {
				c.Set("role", tt.role)
			}

			h := RequireRole(model.RoleWarden)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, h(c))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
