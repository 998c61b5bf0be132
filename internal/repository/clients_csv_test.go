package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientsCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientes.csv")
	clients := SeedClients()

	require.NoError(t, SaveClientsCSV(path, clients))

	loaded, err := LoadClientsCSV(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(clients))

	for i := range clients {
		assert.Equal(t, clients[i].ID, loaded[i].ID)
		assert.Equal(t, clients[i].Name, loaded[i].Name, "derived name must be recomputed on import")
		assert.Equal(t, clients[i].DocumentID, loaded[i].DocumentID)
		assert.Equal(t, clients[i].Status, loaded[i].Status)
	}
}

func TestLoadClientsCSVSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientes.csv")
	raw := "1,María,Gómez,1012345678,maria@example.com,3109876543,active\n" +
		"abc,Rota,Fila,x,y,z,active\n" +
		"3,Juan,Torres,1087654321,juan@example.com,3112223344,active\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	loaded, err := LoadClientsCSV(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].ID)
	assert.Equal(t, 3, loaded[1].ID)
}

func TestSeedsAreConsistent(t *testing.T) {
	roles := SeedRoles()
	require.NotEmpty(t, roles)
	assert.True(t, roles[0].Protected, "super-admin role must be protected")

	users := SeedUsers()
	roleIDs := map[int]bool{}
	for _, r := range roles {
		roleIDs[r.ID] = true
	}
	for _, u := range users {
		assert.True(t, roleIDs[u.RoleID], "user %d references missing role %d", u.ID, u.RoleID)
		assert.NotEmpty(t, u.Name, "derived name must be precomputed in seeds")
	}

	for _, s := range SeedSales() {
		assert.NotEmpty(t, s.Code)
		assert.Greater(t, s.Total, 0.0)
	}
}
