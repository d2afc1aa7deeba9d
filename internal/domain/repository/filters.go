package repository

// Page limita un listado. Limit <= 0 significa sin límite (exportaciones).
type Page struct {
	Limit  int
	Offset int
}

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search string // subcadena de SKU o nombre
	Page
}

// SupplierFilter filtros del listado de proveedores.
type SupplierFilter struct {
	Search string // subcadena de RUT o razón social
	Status string
	Page
}

// MovementFilter filtros del listado de movimientos.
type MovementFilter struct {
	Type            string
	ProductName     string   // subcadena, sin distinguir mayúsculas
	WarehouseTokens []string // cada token se busca en código/nombre de bodega origen o destino
	Page
}

// UserFilter filtros del listado de usuarios.
type UserFilter struct {
	Search string // subcadena de username
	Role   string
	Status string
	Page
}
