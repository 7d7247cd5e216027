// Package access holds the pure authorization decisions of the application.
// Nothing here touches the store; callers pass fully loaded values in.
package access

import "clinic-management-backend/internal/models"

// CanManage reports whether the identity may use the administrative surfaces:
// clinic management, staff credits, user deletion, patient CRUD and the
// cross-clinic patient listing.
func CanManage(identity *models.User) bool {
	return identity != nil && identity.IsAdmin
}

// CanViewPatient reports whether the identity may open a patient detail page.
// Admin status overrides the ownership check.
func CanViewPatient(identity *models.User, patient *models.Patient) bool {
	if identity == nil || patient == nil {
		return false
	}
	if identity.IsAdmin {
		return true
	}
	for _, professional := range patient.Professionals {
		if professional.ID == identity.ID {
			return true
		}
	}
	return false
}

// CanUseTools reports whether the identity may enter the credit-gated tools
// area. Credit gating is independent of admin status: an admin with zero
// credits is denied like anyone else.
func CanUseTools(identity *models.User) bool {
	return identity != nil && identity.Credits > 0
}
