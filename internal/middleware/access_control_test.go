package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator struct {
	user *models.User
	err  error
}

func (s *stubAuthenticator) Authenticate(token string) (*models.User, error) {
	return s.user, s.err
}

func identityInjector(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, user)
		c.Next()
	}
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func serve(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthNoCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard", RequireAuth(&stubAuthenticator{}), okHandler)

	w := serve(r, "/dashboard")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuthDeadSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := &stubAuthenticator{err: errors.New("invalid or expired session")}
	r.GET("/dashboard", RequireAuth(auth), okHandler)

	w := serve(r, "/dashboard", &http.Cookie{Name: SessionCookie, Value: "stale"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	alice := &models.User{ID: 1, Username: "alice"}
	r.GET("/dashboard", RequireAuth(&stubAuthenticator{user: alice}), func(c *gin.Context) {
		assert.Equal(t, alice, Identity(c))
		c.String(http.StatusOK, "ok")
	})

	w := serve(r, "/dashboard", &http.Cookie{Name: SessionCookie, Value: "token"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		identity     *models.User
		wantStatus   int
		wantLocation string
	}{
		{name: "admin allowed", identity: &models.User{ID: 1, IsAdmin: true}, wantStatus: http.StatusOK},
		{name: "staff denied", identity: &models.User{ID: 2}, wantStatus: http.StatusFound, wantLocation: "/dashboard"},
		{name: "missing identity denied", identity: nil, wantStatus: http.StatusFound, wantLocation: "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/admin", identityInjector(tt.identity), RequireAdmin(), okHandler)

			w := serve(r, "/admin")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestRequireCredits(t *testing.T) {
	tests := []struct {
		name       string
		identity   *models.User
		wantStatus int
	}{
		{name: "positive balance allowed", identity: &models.User{ID: 1, Credits: 3}, wantStatus: http.StatusOK},
		{name: "zero balance denied", identity: &models.User{ID: 1, Credits: 0}, wantStatus: http.StatusFound},
		// Admin status does not bypass the credit gate
		{name: "admin with zero credits denied", identity: &models.User{ID: 2, IsAdmin: true, Credits: 0}, wantStatus: http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/tools", identityInjector(tt.identity), RequireCredits(), okHandler)

			w := serve(r, "/tools")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
