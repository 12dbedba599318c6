// Package validation contiene los validadores de entidad: funciones puras que
// reciben un candidato sin confiar en él y devuelven el valor normalizado o la
// lista de violaciones. Nunca tocan la base de datos y la entrada malformada
// es un caso esperado, no un fallo.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ong-esperanza/donaciones-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar violaciones con el nombre json del campo, no el de Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct aplica las reglas declaradas en tags y traduce los errores del
// validador a violaciones de dominio.
func Struct(s any) []domain.Violation {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.Violation{{Field: "", Message: "entrada inválida"}}
	}
	out := make([]domain.Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.Violation{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "debe ser como mínimo " + fe.Param()
	case "max":
		return "debe ser como máximo " + fe.Param()
	case "len":
		return "debe tener exactamente " + fe.Param() + " caracteres"
	case "numeric":
		return "debe contener solo dígitos"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	default:
		return "no cumple la regla " + fe.Tag()
	}
}

// ParseDate acepta RFC3339 o fecha simple AAAA-MM-DD.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
