package constants

// ==========================
// ✅ Role Staff Fasilitas
// ==========================
const (
	RoleDirector      = "director"       // kepala fasilitas
	RoleSupervisor    = "supervisor"     // supervisor lantai/shift
	RoleLeadTeacher   = "lead_teacher"   // guru penanggung jawab ruang
	RoleAssistant     = "assistant"      // asisten pengasuh
	RoleAdministrator = "administrator"  // staf administrasi
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllStaffRoles = []string{
		RoleDirector,
		RoleSupervisor,
		RoleLeadTeacher,
		RoleAssistant,
		RoleAdministrator,
	}

	// Role yang masuk hitungan rasio (staf pengasuh langsung)
	CaregivingRoles = []string{
		RoleSupervisor,
		RoleLeadTeacher,
		RoleAssistant,
	}

	// Default penerima alert pelanggaran rasio
	DefaultAlertRecipientRoles = []string{
		RoleDirector,
		RoleSupervisor,
	}
)

// IsCaregivingRole true jika role dihitung dalam rasio staf:anak.
func IsCaregivingRole(role string) bool {
	for _, r := range CaregivingRoles {
		if r == role {
			return true
		}
	}
	return false
}
