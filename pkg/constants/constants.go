package constants

// --- РОЛИ (совпадает со значениями в БД) ---
const (
	RoleEngineer = "engineer"
	RoleManager  = "manager"
)

var KnownRoles = []string{RoleEngineer, RoleManager}

func IsKnownRole(role string) bool {
	for _, r := range KnownRoles {
		if r == role {
			return true
		}
	}
	return false
}

// --- СРОЧНОСТЬ ЗАКАЗА ---
const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)
