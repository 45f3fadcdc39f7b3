package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sp(s string) *string { return &s }

func TestCreateUserNormalize(t *testing.T) {
	r := CreateUserRequest{
		UserName: "  plan01 ",
		Email:    " Plan01@Example.COM ",
		Password: "rahasia123",
		FullName: sp("   "),
		Division: sp(" planning "),
	}
	r.Normalize()

	assert.Equal(t, "plan01", r.UserName)
	assert.Equal(t, "plan01@example.com", r.Email)
	assert.Equal(t, "user", r.Role)
	assert.Nil(t, r.FullName)
	assert.Equal(t, "PLANNING", *r.Division)

	m := r.ToModel()
	assert.True(t, m.IsActive)
	assert.Equal(t, "PLANNING", m.DivisionOrEmpty())

	off := false
	r.IsActive = &off
	assert.False(t, r.ToModel().IsActive)
}

func TestUpdateUserFields(t *testing.T) {
	active := false
	r := UpdateUserRequest{Role: sp(" Viewer"), Division: sp(""), IsActive: &active}

	got := r.Fields()
	assert.Equal(t, map[string]any{"role": "viewer", "division": nil, "is_active": false}, got)

	assert.Empty(t, (&UpdateUserRequest{}).Fields())
	assert.Equal(t, map[string]any{"division": "DEPLOYMENT"}, (&UpdateUserRequest{Division: sp("deployment")}).Fields())
}
