package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshal(t *testing.T) {
	var v struct {
		A Decimal `json:"a"`
		B Decimal `json:"b"`
		C Decimal `json:"c"`
		D Decimal `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"12.50","b":3,"c":null,"d":""}`), &v))
	assert.Equal(t, "12.50", v.A.String())
	assert.Equal(t, 3.0, v.B.Float())
	assert.Zero(t, v.C)
	assert.Zero(t, v.D)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"twelve"}`), &v))
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	assert.True(t, fe.Empty())

	fe.Add("username", "taken")
	fe.Add("username", "too short")
	fe.Add(GeneralField, "Registration failed")
	fe["email"] = nil

	assert.False(t, fe.Empty())
	assert.Equal(t, "taken", fe.First("username"))
	assert.Empty(t, fe.First("email"))
	assert.Equal(t, []string{"general", "username"}, fe.Fields())
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("owner").Valid())
	assert.Equal(t, "Administrator", RoleAdmin.Label())
	assert.Equal(t, "/manager/dashboard", RoleManager.DashboardPath())
	assert.Equal(t, "/admin/dashboard", RoleAdmin.DashboardPath())
}

func TestDisplayName(t *testing.T) {
	var nilID *Identity
	assert.Empty(t, nilID.DisplayName())
	assert.Equal(t, "bob", (&Identity{Username: "bob"}).DisplayName())
	assert.Equal(t, "Bob Stone", (&Identity{Username: "bob", FirstName: "Bob", LastName: "Stone"}).DisplayName())
}

func TestNavFor(t *testing.T) {
	assert.Equal(t, OfflineNav, NavFor(nil))
	assert.Equal(t, ManagerNav, NavFor(&Identity{Role: RoleManager}))
	assert.Equal(t, AdminNav, NavFor(&Identity{Role: RoleAdmin}))
}
