package routes

import (
	"net/http"
	"testing"

	"realty_backend/internal/handlers"
	"realty_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_RolesPerRoute(t *testing.T) {
	table := Table(&handlers.AppHandlers{})

	got := make(map[string][]models.UserRole, len(table))
	for _, r := range table {
		key := r.Method + " " + r.Path
		_, dup := got[key]
		require.False(t, dup, "duplicate route %s", key)
		require.NotNil(t, r.Handler, key)
		got[key] = r.Roles
	}

	privileged := []models.UserRole{models.UserRoleRealtor, models.UserRoleAdmin}
	expected := map[string][]models.UserRole{
		http.MethodPost + " /auth/signup/:userType":  nil,
		http.MethodPost + " /auth/signin":            nil,
		http.MethodPost + " /auth/key":               nil,
		http.MethodGet + " /auth/me":                 models.AllUserRoles,
		http.MethodGet + " /home":                    nil,
		http.MethodGet + " /home/:id":                nil,
		http.MethodPost + " /home":                   privileged,
		http.MethodPut + " /home/:id":                models.AllUserRoles,
		http.MethodDelete + " /home/:id":             privileged,
		http.MethodPost + " /home/inquire/:id":       {models.UserRoleBuyer},
		http.MethodGet + " /home/:id/messages":       privileged,
		http.MethodPost + " /home/images":            privileged,
	}

	assert.Len(t, got, len(expected))
	for key, roles := range expected {
		actual, ok := got[key]
		if assert.True(t, ok, "missing route %s", key) {
			assert.ElementsMatch(t, roles, actual, key)
		}
	}
}
