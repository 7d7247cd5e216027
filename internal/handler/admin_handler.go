package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/service"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Narrow views of the service layer consumed by the admin surfaces.

type userManager interface {
	List() ([]models.User, error)
	ListNonAdmins() ([]models.User, error)
	Get(id uint) (*models.User, error)
	UpdateCredits(id uint, credits int) error
	Delete(id uint) error
}

type clinicManager interface {
	Create(name string) (*models.Clinic, error)
	List() ([]models.Clinic, error)
	AssignStaff(userID, clinicID uint) error
}

type patientManager interface {
	Create(input service.PatientInput) (*models.Patient, error)
	Update(id uint, input service.PatientInput) (*models.Patient, error)
	Delete(id uint) error
	Get(id uint) (*models.Patient, error)
	List() ([]models.Patient, error)
}

type AdminHandler struct {
	users    userManager
	clinics  clinicManager
	patients patientManager
}

func NewAdminHandler(users userManager, clinics clinicManager, patients patientManager) *AdminHandler {
	return &AdminHandler{
		users:    users,
		clinics:  clinics,
		patients: patients,
	}
}

type patientForm struct {
	Name string `form:"nome" binding:"required"`
	// Age is a pointer so a submitted zero (a newborn) passes "required"
	Age             *int   `form:"idade" binding:"required,gte=0"`
	Guardian        string `form:"responsavel" binding:"required"`
	ClinicID        uint   `form:"clinic" binding:"required"`
	ProfessionalIDs []uint `form:"profissionais"`
}

func (f *patientForm) input() service.PatientInput {
	return service.PatientInput{
		Name:            f.Name,
		Age:             *f.Age,
		Guardian:        f.Guardian,
		ClinicID:        f.ClinicID,
		ProfessionalIDs: f.ProfessionalIDs,
	}
}

// Overview lists all users for the admin landing page
func (h *AdminHandler) Overview(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar usuários.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, "admin.html", gin.H{"users": users})
}

// UpdateCredits sets a user's credit balance from the submitted form. Any
// non-integer input is a recoverable failure: message shown, nothing changed.
func (h *AdminHandler) UpdateCredits(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.SetFlash(c, "Erro ao atualizar créditos.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	credits, err := strconv.Atoi(strings.TrimSpace(c.PostForm("credits")))
	if err != nil {
		utils.SetFlash(c, "Erro ao atualizar créditos.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		utils.SetFlash(c, "Erro ao atualizar créditos.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := h.users.UpdateCredits(id, credits); err != nil {
		utils.SetFlash(c, "Erro ao atualizar créditos.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	utils.SetFlash(c, fmt.Sprintf("Créditos atualizados para %s.", user.Username))
	c.Redirect(http.StatusFound, "/admin")
}

// DeleteUser physically removes a user account
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		utils.SetFlash(c, "Usuário não encontrado.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := h.users.Delete(id); err != nil {
		utils.SetFlash(c, "Erro ao deletar usuário.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	utils.SetFlash(c, fmt.Sprintf("Usuário %s deletado.", user.Username))
	c.Redirect(http.StatusFound, "/admin")
}

// AddClinicPage renders the clinic form together with the current listing
func (h *AdminHandler) AddClinicPage(c *gin.Context) {
	clinics, err := h.clinics.List()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar clínicas.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, "add_clinic.html", gin.H{"clinics": clinics})
}

// AddClinic creates a clinic with a globally unique name
func (h *AdminHandler) AddClinic(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		utils.SetFlash(c, "Informe o nome da clínica.")
		c.Redirect(http.StatusFound, "/admin/add_clinic")
		return
	}

	if _, err := h.clinics.Create(name); err != nil {
		utils.SetFlash(c, "Essa clínica já existe!")
		c.Redirect(http.StatusFound, "/admin/add_clinic")
		return
	}

	utils.SetFlash(c, "Clínica cadastrada com sucesso!")
	c.Redirect(http.StatusFound, "/admin/add_clinic")
}

// AssignUserPage renders the staff-to-clinic assignment form
func (h *AdminHandler) AssignUserPage(c *gin.Context) {
	users, err := h.users.ListNonAdmins()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar usuários.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	clinics, err := h.clinics.List()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar clínicas.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, "assign_user.html", gin.H{"users": users, "clinics": clinics})
}

type assignUserForm struct {
	UserID   uint `form:"user_id" binding:"required"`
	ClinicID uint `form:"clinic_id" binding:"required"`
}

// AssignUser reassigns a staff user to a clinic, overwriting any prior one
func (h *AdminHandler) AssignUser(c *gin.Context) {
	var form assignUserForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Dados inválidos.")
		c.Redirect(http.StatusFound, "/admin/assign_user")
		return
	}

	if err := h.clinics.AssignStaff(form.UserID, form.ClinicID); err != nil {
		utils.SetFlash(c, "Erro ao atribuir usuário à clínica.")
		c.Redirect(http.StatusFound, "/admin/assign_user")
		return
	}

	utils.SetFlash(c, "Usuário atribuído à clínica com sucesso!")
	c.Redirect(http.StatusFound, "/admin/assign_user")
}

// Patients lists all patients across clinics
func (h *AdminHandler) Patients(c *gin.Context) {
	patients, err := h.patients.List()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar pacientes.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, "admin_pacientes.html", gin.H{"pacientes": patients})
}

// AddPatientPage renders the patient creation form
func (h *AdminHandler) AddPatientPage(c *gin.Context) {
	clinics, err := h.clinics.List()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar clínicas.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	users, err := h.users.List()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar usuários.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, "add_paciente.html", gin.H{"clinics": clinics, "users": users})
}

// AddPatient creates a patient and its initial professional assignments
func (h *AdminHandler) AddPatient(c *gin.Context) {
	var form patientForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Dados inválidos. Verifique os campos do formulário.")
		c.Redirect(http.StatusFound, "/add_paciente")
		return
	}

	if _, err := h.patients.Create(form.input()); err != nil {
		utils.SetFlash(c, "Erro ao cadastrar paciente.")
		c.Redirect(http.StatusFound, "/add_paciente")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// EditPatientPage renders the edit form with current values preselected
func (h *AdminHandler) EditPatientPage(c *gin.Context) {
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

	clinics, err := h.clinics.List()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar clínicas.")
		c.Redirect(http.StatusFound, "/admin/pacientes")
		return
	}
	users, err := h.users.ListNonAdmins()
	if err != nil {
		utils.SetFlash(c, "Erro ao carregar usuários.")
		c.Redirect(http.StatusFound, "/admin/pacientes")
		return
	}
	render(c, "editar_paciente.html", gin.H{"paciente": patient, "clinics": clinics, "users": users})
}

// EditPatient rewrites a patient, replacing the professional set in full
func (h *AdminHandler) EditPatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}

	var form patientForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Dados inválidos. Verifique os campos do formulário.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/admin/paciente/%d/editar", id))
		return
	}

	if _, err := h.patients.Update(id, form.input()); err != nil {
		utils.SetFlash(c, "Erro ao atualizar paciente.")
		c.Redirect(http.StatusFound, "/admin/pacientes")
		return
	}

	utils.SetFlash(c, "Paciente atualizado com sucesso!")
	c.Redirect(http.StatusFound, "/admin/pacientes")
}

// DeletePatient physically removes a patient. A second delete of the same id
// lands on the 404 page, nothing changes.
func (h *AdminHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c)
		return
	}

	if err := h.patients.Delete(id); err != nil {
		notFound(c)
		return
	}

	utils.SetFlash(c, "Paciente deletado com sucesso.")
	c.Redirect(http.StatusFound, "/admin/pacientes")
}
