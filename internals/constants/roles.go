package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

const (
	DivisionPlanning   = "PLANNING"
	DivisionDeployment = "DEPLOYMENT"
	DivisionAdmin      = "ADMIN"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyEditorsCanAccess = "❌ Role viewer hanya dapat melihat data %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEditor(feature string) string {
	return fmt.Sprintf(ErrOnlyEditorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles    = []string{RoleAdmin, RoleUser, RoleViewer}
	EditorRoles = []string{RoleAdmin, RoleUser}
	AdminOnly   = []string{RoleAdmin}

	Divisions = []string{DivisionPlanning, DivisionDeployment, DivisionAdmin}
)
