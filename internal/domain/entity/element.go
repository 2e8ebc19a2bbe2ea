package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de elemento estructural.
const (
	ElementTypeBeam       = "beam"       // viga
	ElementTypeColumn     = "column"     // columna
	ElementTypeTruss      = "truss"      // cercha
	ElementTypeConnection = "connection" // conexión / unión
)

// Estados del ciclo de vida de un elemento.
const (
	StatusProduction  = "production"
	StatusReadyToShip = "ready_to_ship"
	StatusInTransit   = "in_transit"
	StatusInStorage   = "in_storage"
	StatusInAssembly  = "in_assembly"
	StatusInOperation = "in_operation"
)

// ValidElementStatuses conjunto cerrado de estados de elemento.
var ValidElementStatuses = []string{
	StatusProduction,
	StatusReadyToShip,
	StatusInTransit,
	StatusInStorage,
	StatusInAssembly,
	StatusInOperation,
}

// IsValidElementStatus verifica pertenencia al conjunto de estados.
func IsValidElementStatus(status string) bool {
	for _, s := range ValidElementStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Element representa un elemento estructural metálico identificado por un
// código único (marcado físico DataMatrix, ej. "BM-2024-001547"). El código es
// inmutable después de la creación; el estado solo avanza vía movimientos o
// por el override administrativo.
type Element struct {
	ID         string
	Code       string // clave de negocio, única y estable para toda la vida del activo físico
	Type       string // beam, column, truss, connection
	Status     string
	DrawingRef string // referencia de plano (KM/KMD)
	Batch      string // lote de fabricación
	GOST       string // norma GOST del perfil/material
	Length     *decimal.Decimal // mm
	Width      *decimal.Decimal // mm
	Height     *decimal.Decimal // mm
	Weight     *decimal.Decimal // kg
	LocationID *string // referencia débil al ControlPoint actual (nil = sin ubicación)
	CreatedBy  string  // UserID del operario que marcó el elemento
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
