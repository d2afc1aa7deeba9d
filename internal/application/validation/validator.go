// Package validation valida los DTO de entrada con go-playground/validator y traduce
// los errores a mensajes por campo (domain.FieldErrors) usando el nombre JSON del campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
)

var (
	skuPattern   = regexp.MustCompile(`^SKU[0-9]+$`)
	eanPattern   = regexp.MustCompile(`^[0-9]{8,13}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9}$`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// decimal.Decimal como numérico para que min/gt/gte/lte funcionen.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Los errores se reportan con el nombre del campo del formulario (tag json).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "sku", func(fl validator.FieldLevel) bool {
		return skuPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "ean", func(fl validator.FieldLevel) bool {
		return eanPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "nodigits", func(fl validator.FieldLevel) bool {
		return !digitPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "uom", func(fl validator.FieldLevel) bool {
		return entity.IsValidUOM(fl.Field().String())
	})
	mustRegister(v, "httpurl", func(fl validator.FieldLevel) bool {
		s := strings.ToLower(fl.Field().String())
		return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	})
	mustRegister(v, "phone9", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return phonePattern.MatchString(s) && strings.Count(s, s[:1]) != len(s)
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: registrar %s: %v", tag, err))
	}
}

// Struct valida s y devuelve los errores por campo (vacío si es válido).
func Struct(s interface{}) domain.FieldErrors {
	errs := domain.FieldErrors{}
	err := validate.Struct(s)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("__all__", err.Error())
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "max":
		if isText {
			return fmt.Sprintf("Máximo %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("Debe ser menor o igual a %s.", fe.Param())
	case "min":
		if isText {
			return fmt.Sprintf("Mínimo %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("Debe ser mayor o igual a %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s.", fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return "No puede ser negativo."
		}
		return fmt.Sprintf("Debe ser mayor o igual a %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Debe ser menor o igual a %s.", fe.Param())
	case "email":
		return "Ingrese un correo electrónico válido."
	case "oneof":
		return "Seleccione una opción válida: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	case "alphanum":
		return "Solo se permiten letras y números."
	case "eqfield":
		return "Las contraseñas no coinciden."
	case "sku":
		return "El SKU debe tener el formato SKU seguido de números (ej. SKU001)."
	case "ean":
		return "El EAN/UPC debe tener entre 8 y 13 dígitos."
	case "nodigits":
		return "No puede contener números."
	case "uom":
		return "Unidad de medida inválida."
	case "httpurl":
		return "La URL debe comenzar con http:// o https://."
	case "phone9":
		return "El teléfono debe tener 9 dígitos y no puede repetir un solo dígito."
	}
	return "Valor inválido."
}
