// Package tracking contiene la regla de derivación de estado del ciclo de
// vida de un elemento: el estado resultante de un movimiento depende
// únicamente del tipo del punto de control destino.
package tracking

import "github.com/jcastro/trazametal-api/internal/domain/entity"

// DeriveStatus deriva el estado del elemento según el tipo del punto destino:
//
//	factory    -> production
//	usage_site -> in_operation
//	otro       -> in_storage (incluye storage y tipos desconocidos)
//
// La regla es pura y sin estado: no considera la operación (reception,
// shipping, inventory) ni el estado previo del elemento. Los estados
// ready_to_ship e in_transit nunca se derivan por esta vía; solo son
// alcanzables por el override administrativo.
func DeriveStatus(pointType string) string {
	switch pointType {
	case entity.PointTypeFactory:
		return entity.StatusProduction
	case entity.PointTypeUsageSite:
		return entity.StatusInOperation
	default:
		return entity.StatusInStorage
	}
}
