package handler

import (
	"net/http"

	"clinic-management-backend/internal/access"
	"clinic-management-backend/internal/middleware"
	"clinic-management-backend/internal/models"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// patientReader is what the staff-facing patient pages need
type patientReader interface {
	Get(id uint) (*models.Patient, error)
	ListByProfessional(userID uint) ([]models.Patient, error)
}

type PatientHandler struct {
	patients patientReader
}

func NewPatientHandler(patients patientReader) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// MyPatients lists the patients assigned to the current identity
func (h *PatientHandler) MyPatients(c *gin.Context) {
	identity := middleware.Identity(c)

	patients, err := h.patients.ListByProfessional(identity.ID)
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar pacientes.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	render(c, "meus_pacientes.html", gin.H{"pacientes": patients})
}

// Detail shows one patient. Admins see any patient; staff only those in
// their assignment set.
func (h *PatientHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}

	patient, err := h.patients.Get(id)
	if err != nil {
		notFound(c)
		return
	}

	if !access.CanViewPatient(middleware.Identity(c), patient) {
		utils.SetFlash(c, "Acesso não autorizado a este paciente.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	render(c, "detalhes_paciente.html", gin.H{"paciente": patient})
}

// The report and test endpoints are placeholders; the real features are
// separate collaborators still to be built.

func (h *PatientHandler) BuildReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}
	c.String(http.StatusOK, "Montar relatório para paciente %d", id)
}

func (h *PatientHandler) PreviousReports(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}
	c.String(http.StatusOK, "Consultar relatórios de %d", id)
}

func (h *PatientHandler) AddTest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}
	c.String(http.StatusOK, "Adicionar teste ao paciente %d", id)
}

func (h *PatientHandler) PreviousTests(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}
	c.String(http.StatusOK, "Consultar testes anteriores de %d", id)
}
