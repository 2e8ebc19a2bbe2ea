package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de construcciones metálicas
// (perfiles, vigas prefabricadas, kits de conexión).
type Product struct {
	ID          string
	SKU         string // único en el catálogo
	Name        string
	Description string
	Price       decimal.Decimal // precio por unidad
	Unit        string          // ud, m, kg, t
	GOST        string          // norma GOST aplicable, opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
