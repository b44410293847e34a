package rbac

// Role identifies a permission group.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleSales      Role = "Sales"
	RoleTechnician Role = "Technician"
	RoleCustomer   Role = "Customer"
)

// Resource identifies a governed entity category.
type Resource string

const (
	ResourceCustomers    Resource = "customers"
	ResourceSales        Resource = "sales"     // orders
	ResourceRepairs      Resource = "repairs"
	ResourceInventory    Resource = "inventory" // products
	ResourceAnalytics    Resource = "analytics" // dashboard
	ResourceAppointments Resource = "appointments"
	ResourceLeads        Resource = "leads"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleManager, RoleSales, RoleTechnician, RoleCustomer}

// Resources lists every governed resource.
var Resources = []Resource{
	ResourceCustomers, ResourceSales, ResourceRepairs, ResourceInventory,
	ResourceAnalytics, ResourceAppointments, ResourceLeads,
}

type resourceSet map[Resource]bool

type grants struct {
	read   resourceSet
	write  resourceSet
	delete resourceSet
}

// Policy answers whether a role may read, write, or delete a resource.
// It is built once at startup and never mutated, so it is safe for
// concurrent use without locking. Unknown roles and resources are denied.
type Policy struct {
	matrix map[Role]grants
	routes map[string]Resource
}

func set(resources ...Resource) resourceSet {
	s := make(resourceSet, len(resources))
	for _, r := range resources {
		s[r] = true
	}
	return s
}

// NewPolicy builds the static permission matrix.
func NewPolicy() *Policy {
	return &Policy{
		matrix: map[Role]grants{
			RoleAdmin: {
				read:   set(ResourceCustomers, ResourceSales, ResourceRepairs, ResourceInventory, ResourceAnalytics, ResourceAppointments, ResourceLeads),
				write:  set(ResourceCustomers, ResourceSales, ResourceRepairs, ResourceInventory, ResourceAnalytics, ResourceAppointments, ResourceLeads),
				delete: set(ResourceCustomers, ResourceSales, ResourceRepairs, ResourceInventory, ResourceAppointments, ResourceLeads),
			},
			RoleManager: {
				read:   set(ResourceCustomers, ResourceSales, ResourceRepairs, ResourceInventory, ResourceAnalytics, ResourceAppointments),
				write:  set(ResourceCustomers, ResourceInventory, ResourceRepairs, ResourceAppointments),
				delete: set(ResourceCustomers, ResourceRepairs, ResourceAppointments),
			},
			RoleSales: {
				read:   set(ResourceCustomers, ResourceInventory, ResourceSales, ResourceLeads),
				write:  set(ResourceCustomers, ResourceSales, ResourceLeads),
				delete: set(),
			},
			RoleTechnician: {
				read:   set(ResourceRepairs),
				write:  set(ResourceRepairs),
				delete: set(),
			},
			RoleCustomer: {
				read:   set(ResourceRepairs, ResourceAppointments, ResourceSales, ResourceLeads),
				write:  set(ResourceAppointments, ResourceLeads),
				delete: set(),
			},
		},
		routes: map[string]Resource{
			"/":             ResourceAnalytics,
			"/dashboard":    ResourceAnalytics,
			"/customers":    ResourceCustomers,
			"/leads":        ResourceLeads,
			"/products":     ResourceInventory,
			"/repairs":      ResourceRepairs,
			"/orders":       ResourceSales,
			"/appointments": ResourceAppointments,
		},
	}
}

// CanRead reports whether the role may read the resource.
func (p *Policy) CanRead(role Role, resource Resource) bool {
	return p.matrix[role].read[resource]
}

// CanWrite reports whether the role may create or update the resource.
func (p *Policy) CanWrite(role Role, resource Resource) bool {
	return p.matrix[role].write[resource]
}

// CanDelete reports whether the role may delete the resource. Financial
// records (sales) may only ever be deleted by Admin, regardless of the
// base delete matrix.
func (p *Policy) CanDelete(role Role, resource Resource) bool {
	if resource == ResourceSales && role != RoleAdmin {
		return false
	}
	return p.matrix[role].delete[resource]
}

// technicianRepairFields is the only place permission is finer than
// resource level: a Technician updating a repair may touch exactly these.
var technicianRepairFields = map[string]bool{
	"status":          true,
	"technicianNotes": true,
}

// CanEditField reports whether the role may set a specific field when
// writing the resource. Requires write permission on the resource;
// Technicians writing repairs are limited to status and technicianNotes.
func (p *Policy) CanEditField(role Role, resource Resource, field string) bool {
	if !p.CanWrite(role, resource) {
		return false
	}
	if role == RoleTechnician && resource == ResourceRepairs {
		return technicianRepairFields[field]
	}
	return true
}

// CanAccessRoute reports whether the role may see a navigation route.
// Unknown routes are denied.
func (p *Policy) CanAccessRoute(role Role, route string) bool {
	resource, ok := p.routes[route]
	if !ok {
		return false
	}
	return p.CanRead(role, resource)
}
