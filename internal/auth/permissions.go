// Package auth carries the permission oracle and the static sidebar
// menu. Permissions gate whether mutating actions are offered; the
// check itself is a plain map lookup, synchronous and side-effect
// free, safe to call on every refresh.
package auth

// Permission keys, one per admin module.
const (
	PermDashboard    = "dashboard"
	PermUsers        = "users"
	PermRoles        = "roles"
	PermClients      = "clients"
	PermAppointments = "appointments"
	PermSchedules    = "schedules"
	PermServices     = "services"
	PermCategories   = "categories"
	PermProducts     = "products"
	PermSales        = "sales"
	PermPurchases    = "purchases"
	PermSuppliers    = "suppliers"
	PermSupplies     = "supplies"
	PermDeliveries   = "deliveries"
)

// Wildcard grants every permission (the seeded admin role).
const Wildcard = "*"

// Capabilities is the permission oracle as a value injected at
// construction time instead of a free-floating closure.
type Capabilities struct {
	granted map[string]bool
}

func NewCapabilities(keys ...string) Capabilities {
	granted := make(map[string]bool, len(keys))
	for _, k := range keys {
		granted[k] = true
	}
	return Capabilities{granted: granted}
}

func (c Capabilities) Has(key string) bool {
	return c.granted[Wildcard] || c.granted[key]
}

// MenuEntry is one sidebar item; pure configuration data.
type MenuEntry struct {
	ID         string
	Label      string
	Icon       string
	Permission string
	Category   string
}

// Menu is the fixed, ordered sidebar configuration grouped into
// category buckets.
func Menu() []MenuEntry {
	return []MenuEntry{
		{ID: "dashboard", Label: "Dashboard", Icon: "home", Permission: PermDashboard, Category: "Inicio"},
		{ID: "users", Label: "Usuarios", Icon: "account", Permission: PermUsers, Category: "Configuración"},
		{ID: "roles", Label: "Roles", Icon: "settings", Permission: PermRoles, Category: "Configuración"},
		{ID: "clients", Label: "Clientes", Icon: "account", Permission: PermClients, Category: "Personas"},
		{ID: "appointments", Label: "Citas", Icon: "calendar", Permission: PermAppointments, Category: "Agenda"},
		{ID: "schedules", Label: "Horarios", Icon: "clock", Permission: PermSchedules, Category: "Agenda"},
		{ID: "services", Label: "Servicios", Icon: "list", Permission: PermServices, Category: "Catálogo"},
		{ID: "categories", Label: "Categorías", Icon: "folder", Permission: PermCategories, Category: "Catálogo"},
		{ID: "products", Label: "Productos", Icon: "grid", Permission: PermProducts, Category: "Catálogo"},
		{ID: "sales", Label: "Ventas", Icon: "document", Permission: PermSales, Category: "Movimientos"},
		{ID: "purchases", Label: "Compras", Icon: "download", Permission: PermPurchases, Category: "Movimientos"},
		{ID: "suppliers", Label: "Proveedores", Icon: "account", Permission: PermSuppliers, Category: "Inventario"},
		{ID: "supplies", Label: "Insumos", Icon: "storage", Permission: PermSupplies, Category: "Inventario"},
		{ID: "deliveries", Label: "Entregas", Icon: "mail-send", Permission: PermDeliveries, Category: "Inventario"},
	}
}

// Categories returns the bucket order as it appears in the menu.
func Categories() []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range Menu() {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// MenuFor filters the menu down to the entries the capabilities allow.
func MenuFor(caps Capabilities) []MenuEntry {
	var out []MenuEntry
	for _, e := range Menu() {
		if caps.Has(e.Permission) {
			out = append(out, e)
		}
	}
	return out
}
