package entity

import "time"

// Operaciones de movimiento.
const (
	OperationReception = "reception" // recepción en el punto destino
	OperationShipping  = "shipping"  // despacho hacia el punto destino
	OperationInventory = "inventory" // inventario / verificación en sitio
)

// ValidOperations conjunto cerrado de operaciones.
var ValidOperations = []string{
	OperationReception,
	OperationShipping,
	OperationInventory,
}

// IsValidOperation verifica pertenencia al conjunto de operaciones.
func IsValidOperation(op string) bool {
	for _, o := range ValidOperations {
		if o == op {
			return true
		}
	}
	return false
}

// Movement representa un evento inmutable de cambio de custodia/ubicación de
// un elemento. Es append-only: nunca se edita ni se borra; la historia
// completa de movimientos es la traza de auditoría del elemento.
type Movement struct {
	ID             string
	ElementID      string  // relación propietaria: un movimiento pertenece a un elemento
	FromLocationID *string // opcional
	ToLocationID   string  // requerido
	Operation      string  // reception, shipping, inventory
	OperatorID     string  // UserID del operario que ejecuta el movimiento
	Comments       string
	PhotoURL       string
	Latitude       *float64
	Longitude      *float64
	Date           time.Time
	CreatedAt      time.Time
}
