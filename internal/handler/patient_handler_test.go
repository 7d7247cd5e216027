package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockPatientReader struct {
	getFn                func(id uint) (*models.Patient, error)
	listByProfessionalFn func(userID uint) ([]models.Patient, error)
}

func (m *mockPatientReader) Get(id uint) (*models.Patient, error) {
	return m.getFn(id)
}

func (m *mockPatientReader) ListByProfessional(userID uint) ([]models.Patient, error) {
	return m.listByProfessionalFn(userID)
}

// withIdentity injects the identity the session middleware would have set
func withIdentity(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", user)
		c.Next()
	}
}

func newPatientRouter(identity *models.User, patients patientReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(testTemplates())

	h := NewPatientHandler(patients)
	authed := r.Group("/", withIdentity(identity))
	authed.GET("/meus_pacientes", h.MyPatients)
	authed.GET("/paciente/:id", h.Detail)
	authed.GET("/paciente/:id/montar_relatorio", h.BuildReport)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestDetailAssignedProfessional(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	patient := &models.Patient{ID: 10, Name: "Bob", Professionals: []models.User{{ID: 1}}}

	r := newPatientRouter(alice, &mockPatientReader{
		getFn: func(id uint) (*models.Patient, error) { return patient, nil },
	})

	w := get(r, "/paciente/10")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "detalhes_paciente")
}

func TestDetailDeniedForUnassignedStaff(t *testing.T) {
	mallory := &models.User{ID: 2, Username: "mallory"}
	patient := &models.Patient{ID: 10, Name: "Bob", Professionals: []models.User{{ID: 1}}}

	r := newPatientRouter(mallory, &mockPatientReader{
		getFn: func(id uint) (*models.Patient, error) { return patient, nil },
	})

	w := get(r, "/paciente/10")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestDetailAdminOverridesOwnership(t *testing.T) {
	admin := &models.User{ID: 3, IsAdmin: true}
	patient := &models.Patient{ID: 10, Name: "Bob", Professionals: []models.User{{ID: 1}}}

	r := newPatientRouter(admin, &mockPatientReader{
		getFn: func(id uint) (*models.Patient, error) { return patient, nil },
	})

	w := get(r, "/paciente/10")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDetailUnknownPatient(t *testing.T) {
	alice := &models.User{ID: 1}

	r := newPatientRouter(alice, &mockPatientReader{
		getFn: func(id uint) (*models.Patient, error) { return nil, service.ErrNotFound },
	})

	w := get(r, "/paciente/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDetailNonNumericID(t *testing.T) {
	alice := &models.User{ID: 1}

	r := newPatientRouter(alice, &mockPatientReader{
		getFn: func(id uint) (*models.Patient, error) {
			t.Fatal("lookup must not run for a malformed id")
			return nil, nil
		},
	})

	w := get(r, "/paciente/abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyPatientsListsOwnAssignments(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	var requested uint

	r := newPatientRouter(alice, &mockPatientReader{
		listByProfessionalFn: func(userID uint) ([]models.Patient, error) {
			requested = userID
			return []models.Patient{{ID: 10, Name: "Bob"}}, nil
		},
	})

	w := get(r, "/meus_pacientes")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alice.ID, requested)
}

func TestBuildReportStub(t *testing.T) {
	alice := &models.User{ID: 1}

	r := newPatientRouter(alice, &mockPatientReader{})

	w := get(r, "/paciente/10/montar_relatorio")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Montar relatório para paciente 10")
}
