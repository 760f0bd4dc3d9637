package authz

import (
	"testing"

	"github.com/Yogeshjindal/RestaurantApplication/models"

	"github.com/stretchr/testify/assert"
)

// The full role/action grid, verified exhaustively.
func TestAllow(t *testing.T) {
	grid := []struct {
		action   Action
		admin    bool
		staff    bool
		customer bool
	}{
		{CreateReservation, false, false, true},
		{ListReservations, true, true, false},
		{ListOwnReservations, false, false, true},
		{ReadReservation, true, true, true},
		{UpdateReservation, true, true, false},
		{DeleteReservation, true, false, false},
		{WriteMenuItem, true, true, false},
		{DeleteMenuItem, true, false, false},
	}

	for _, row := range grid {
		assert.Equal(t, row.admin, Allow(models.RoleAdmin, row.action), "admin / %s", row.action)
		assert.Equal(t, row.staff, Allow(models.RoleStaff, row.action), "staff / %s", row.action)
		assert.Equal(t, row.customer, Allow(models.RoleCustomer, row.action), "customer / %s", row.action)
	}
}

func TestAllowUnknownRole(t *testing.T) {
	assert.False(t, Allow(models.UserRole("owner"), DeleteMenuItem))
	assert.False(t, Allow(models.UserRole(""), ReadReservation))
}

func TestRolesFor(t *testing.T) {
	assert.Equal(t, []models.UserRole{models.RoleAdmin}, RolesFor(DeleteReservation))
	assert.Equal(t, []models.UserRole{models.RoleAdmin, models.RoleStaff}, RolesFor(UpdateReservation))
}

func TestDescribeRoles(t *testing.T) {
	assert.Equal(t, "admin", DescribeRoles(DeleteMenuItem))
	assert.Equal(t, "admin or staff", DescribeRoles(WriteMenuItem))
}
