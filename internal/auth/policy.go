package auth

import (
	"net/http"

	"github.com/GiannisClipper/payments/internal/models"
)

// PermissionDenied is the message returned with every forbidden response.
const PermissionDenied = "No permission to access data."

// CanAccess decides whether the principal may act on a resource owned by
// ownerID. Creation never passes an object-level check: ownership is
// established by assignment, so POST is denied outright here and the
// owner field is forced to the principal for non-admins instead.
func CanAccess(principal *models.User, ownerID uint, method string) bool {
	if principal == nil {
		return false
	}
	if method == http.MethodPost {
		return false
	}
	return principal.IsStaff || principal.ID == ownerID
}
