package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de DTOs. Las enumeraciones
// cerradas (tipos de elemento, estados, tipos de punto, operaciones, roles)
// se validan aquí, en la frontera HTTP, vía tags `oneof`.
var validate = validator.New()

// validateStruct valida el DTO y devuelve un mensaje legible con los campos
// inválidos, o "" si todo está bien.
func validateStruct(in any) string {
	err := validate.Struct(in)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s es requerido", fieldName(fe)))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s debe ser uno de: %s", fieldName(fe), fe.Param()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s debe ser un email válido", fieldName(fe)))
		case "min":
			parts = append(parts, fmt.Sprintf("%s debe tener al menos %s caracteres", fieldName(fe), fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s excede el máximo de %s", fieldName(fe), fe.Param()))
		case "latitude", "longitude":
			parts = append(parts, fmt.Sprintf("%s fuera de rango", fieldName(fe)))
		default:
			parts = append(parts, fmt.Sprintf("%s inválido (%s)", fieldName(fe), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}
