package handler

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clinic-management-backend/internal/middleware"
	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements authService; each field can be set per test
type mockAuthService struct {
	registerFn func(username, password string) (*models.User, error)
	loginFn    func(username, password string) (string, *models.User, error)
	logoutFn   func(token string) error
}

func (m *mockAuthService) Register(username, password string) (*models.User, error) {
	return m.registerFn(username, password)
}

func (m *mockAuthService) Login(username, password string) (string, *models.User, error) {
	return m.loginFn(username, password)
}

func (m *mockAuthService) Logout(token string) error {
	return m.logoutFn(token)
}

func testTemplates() *template.Template {
	return template.Must(template.New("t").Parse(`
{{define "login.html"}}login{{end}}
{{define "register.html"}}register{{end}}
{{define "dashboard.html"}}dashboard{{end}}
{{define "tools.html"}}tools{{end}}
{{define "meus_pacientes.html"}}meus_pacientes{{end}}
{{define "detalhes_paciente.html"}}detalhes_paciente{{end}}
{{define "admin.html"}}admin{{end}}
{{define "admin_pacientes.html"}}admin_pacientes{{end}}
{{define "add_clinic.html"}}add_clinic{{end}}
{{define "assign_user.html"}}assign_user{{end}}
{{define "add_paciente.html"}}add_paciente{{end}}
{{define "editar_paciente.html"}}editar_paciente{{end}}
`))
}

func newAuthRouter(auth authService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(testTemplates())

	h := NewAuthHandler(auth, 3600)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.Register)
	r.GET("/logout", h.Logout)
	r.GET("/", h.Index)
	return r
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestIndexRedirectsToLogin(t *testing.T) {
	r := newAuthRouter(&mockAuthService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	r := newAuthRouter(&mockAuthService{
		loginFn: func(username, password string) (string, *models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "pw1", password)
			return "signed-token", &models.User{ID: 1, Username: "alice"}, nil
		},
	})

	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"pw1"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginFailureRendersLoginAgain(t *testing.T) {
	r := newAuthRouter(&mockAuthService{
		loginFn: func(username, password string) (string, *models.User, error) {
			return "", nil, service.ErrInvalidCredentials
		},
	})

	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login")
	assert.Nil(t, sessionCookie(w))
}

func TestLoginMissingFieldsRendersLoginAgain(t *testing.T) {
	r := newAuthRouter(&mockAuthService{
		loginFn: func(username, password string) (string, *models.User, error) {
			t.Fatal("login must not be called for an incomplete form")
			return "", nil, nil
		},
	})

	w := postForm(r, "/login", url.Values{"username": {"alice"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, sessionCookie(w))
}

func TestRegisterSuccessRedirectsToLogin(t *testing.T) {
	r := newAuthRouter(&mockAuthService{
		registerFn: func(username, password string) (*models.User, error) {
			return &models.User{ID: 2, Username: username}, nil
		},
	})

	w := postForm(r, "/register", url.Values{"username": {"bob"}, "password": {"pw2"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRegisterDuplicateRedirectsBack(t *testing.T) {
	r := newAuthRouter(&mockAuthService{
		registerFn: func(username, password string) (*models.User, error) {
			return nil, service.ErrDuplicateUsername
		},
	})

	w := postForm(r, "/register", url.Values{"username": {"alice"}, "password": {"pw1"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))
}

func TestLogoutRevokesSessionAndClearsCookie(t *testing.T) {
	revoked := ""
	r := newAuthRouter(&mockAuthService{
		logoutFn: func(token string) error {
			revoked = token
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "signed-token", revoked)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
}
