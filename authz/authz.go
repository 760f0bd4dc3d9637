package authz

import "github.com/Yogeshjindal/RestaurantApplication/models"

// Action names a role-gated operation in the system
type Action string

const (
	CreateReservation   Action = "reservation:create"
	ListReservations    Action = "reservation:list-all"
	ListOwnReservations Action = "reservation:list-own"
	ReadReservation     Action = "reservation:read"
	UpdateReservation   Action = "reservation:update-status"
	DeleteReservation   Action = "reservation:delete"
	WriteMenuItem       Action = "menu:write"
	DeleteMenuItem      Action = "menu:delete"
)

// Capability grants a role one action
type Capability struct {
	Role   models.UserRole
	Action Action
}

// capabilities is the authoritative role/action table. The ownership check
// for a customer reading their own reservation is an extra predicate in the
// reservation handler, not part of this table.
var capabilities = []Capability{
	{models.RoleCustomer, CreateReservation},

	{models.RoleAdmin, ListReservations},
	{models.RoleStaff, ListReservations},

	{models.RoleCustomer, ListOwnReservations},

	{models.RoleAdmin, ReadReservation},
	{models.RoleStaff, ReadReservation},
	{models.RoleCustomer, ReadReservation},

	{models.RoleAdmin, UpdateReservation},
	{models.RoleStaff, UpdateReservation},

	{models.RoleAdmin, DeleteReservation},

	{models.RoleAdmin, WriteMenuItem},
	{models.RoleStaff, WriteMenuItem},

	{models.RoleAdmin, DeleteMenuItem},
}

// Build a lookup map for O(1) checks
var capabilityMap = func() map[Capability]bool {
	m := make(map[Capability]bool)
	for _, c := range capabilities {
		m[c] = true
	}
	return m
}()

// Allow reports whether role may perform action.
func Allow(role models.UserRole, action Action) bool {
	return capabilityMap[Capability{Role: role, Action: action}]
}

// RolesFor returns every role permitted to perform action, in table order.
func RolesFor(action Action) []models.UserRole {
	var roles []models.UserRole
	for _, c := range capabilities {
		if c.Action == action {
			roles = append(roles, c.Role)
		}
	}
	return roles
}

// DescribeRoles formats the permitted roles for an action, for error messages.
func DescribeRoles(action Action) string {
	roles := RolesFor(action)
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += " or "
		}
		s += string(r)
	}
	return s
}
