package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario. Code es único (ej. BOD-CENTRAL).
type Warehouse struct {
	ID          string
	Code        string
	Name        string
	Location    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label texto corto para listados y planillas.
func (w *Warehouse) Label() string {
	if w == nil {
		return ""
	}
	return w.Code + " - " + w.Name
}
