package domain

import (
	"sort"
	"strings"
)

// FieldErrors agrupa mensajes de validación por campo del formulario.
// Se devuelve completo para que la vista muestre todos los problemas a la vez.
type FieldErrors map[string][]string

// Add agrega un mensaje al campo.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Merge copia los mensajes de other en fe.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		fe[field] = append(fe[field], msgs...)
	}
}

// MergeMissing copia solo los campos que fe aún no tiene; conserva los mensajes ya presentes.
func (fe FieldErrors) MergeMissing(other FieldErrors) {
	for field, msgs := range other {
		if !fe.Has(field) {
			fe[field] = append(fe[field], msgs...)
		}
	}
}

// Has indica si el campo tiene al menos un error.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Empty es verdadero si no hay errores.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Err devuelve nil cuando no hay errores, para usar como retorno de validación.
func (fe FieldErrors) Err() error {
	if fe.Empty() {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], "; "))
	}
	return "validación: " + strings.Join(parts, ", ")
}

// Is permite errors.Is(err, ErrInvalidInput) sobre un FieldErrors.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}
