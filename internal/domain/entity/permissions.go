package entity

// Capacidades exigidas por ruta. El formato es "<módulo>.<acción>".
const (
	PermViewProducts   = "productos.ver"
	PermAddProducts    = "productos.crear"
	PermChangeProducts = "productos.editar"
	PermDeleteProducts = "productos.eliminar"

	PermViewSuppliers   = "proveedores.ver"
	PermAddSuppliers    = "proveedores.crear"
	PermChangeSuppliers = "proveedores.editar"
	PermDeleteSuppliers = "proveedores.eliminar"

	PermViewMovements    = "inventario.ver_movimientos"
	PermAddMovements     = "inventario.agregar_movimientos"
	PermChangeMovements  = "inventario.editar_movimientos"
	PermViewWarehouses   = "inventario.ver_bodegas"
	PermManageWarehouses = "inventario.gestionar_bodegas"

	PermManageUsers = "usuarios.gestionar"
)

var rolePermissions = map[string]map[string]bool{
	RoleOperador: set(
		PermViewProducts, PermAddProducts, PermChangeProducts,
		PermViewSuppliers, PermAddSuppliers, PermChangeSuppliers,
		PermViewMovements, PermAddMovements, PermChangeMovements,
		PermViewWarehouses, PermManageWarehouses,
	),
	RoleProveedor: set(PermViewProducts, PermViewMovements),
}

func set(perms ...string) map[string]bool {
	m := make(map[string]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// HasPermission indica si el rol tiene la capacidad. ADMIN tiene todas.
func HasPermission(role, perm string) bool {
	if role == RoleAdmin {
		return true
	}
	return rolePermissions[role][perm]
}
