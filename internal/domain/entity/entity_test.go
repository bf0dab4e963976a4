package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAgent.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("landlord").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoles_Contains(t *testing.T) {
	staff := Roles{RoleAgent, RoleAdmin}

	assert.True(t, staff.Contains(RoleAgent))
	assert.False(t, staff.Contains(RoleUser))
}

func TestOfferStatus_IsValid(t *testing.T) {
	assert.True(t, OfferStatusPending.IsValid())
	assert.True(t, OfferStatusAccepted.IsValid())
	assert.True(t, OfferStatusRejected.IsValid())
	assert.True(t, OfferStatusBought.IsValid())
	assert.False(t, OfferStatus("haggling").IsValid())
}

func TestPropertyStatus_IsValid(t *testing.T) {
	assert.True(t, PropertyStatusPending.IsValid())
	assert.True(t, PropertyStatusVerified.IsValid())
	assert.True(t, PropertyStatusRejected.IsValid())
	assert.False(t, PropertyStatus("haunted").IsValid())
}
