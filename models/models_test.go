package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"student", "staff", "admin"} {
		r, ok := ParseRole(s)
		assert.True(t, ok)
		assert.Equal(t, Role(s), r)
	}

	_, ok := ParseRole("superuser")
	assert.False(t, ok)
	_, ok = ParseRole("Admin")
	assert.False(t, ok)
}

func TestRoleCanModerate(t *testing.T) {
	assert.False(t, RoleStudent.CanModerate())
	assert.True(t, RoleStaff.CanModerate())
	assert.True(t, RoleAdmin.CanModerate())
}

func TestStatusActive(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusApproved.Active())
	assert.False(t, StatusRejected.Active())
	assert.False(t, StatusReturned.Active())
}

func TestSyncAvailability(t *testing.T) {
	eq := Equipment{Quantity: 1}
	eq.SyncAvailability()
	assert.True(t, eq.Available)

	eq.Quantity = 0
	eq.SyncAvailability()
	assert.False(t, eq.Available)
}
