package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrator   = "administrator"
	RoleCustomerOp      = "customer_operator"
	RoleFactoryOp       = "factory_operator"
	RoleWarehouseKeeper = "warehouse_keeper"
	RoleSiteMaster      = "site_master"
)

// ValidRoles conjunto cerrado de roles del sistema.
var ValidRoles = []string{
	RoleAdministrator,
	RoleCustomerOp,
	RoleFactoryOp,
	RoleWarehouseKeeper,
	RoleSiteMaster,
}

// IsValidRole verifica pertenencia al conjunto de roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema (operador u operario de obra).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // administrator, customer_operator, factory_operator, warehouse_keeper, site_master
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
