package entity

import "time"

// Tipos de punto de control.
const (
	PointTypeFactory   = "factory"    // planta de producción
	PointTypeStorage   = "storage"    // almacén / bodega intermedia
	PointTypeUsageSite = "usage_site" // obra / sitio de montaje
)

// ControlPoint representa una ubicación física por la que pasan los elementos
// (planta, almacén u obra). Se crea una vez por un administrador y vive toda
// la vida del sistema; no hay semántica de borrado.
type ControlPoint struct {
	ID        string
	Name      string
	Type      string // factory, storage, usage_site
	Address   string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
