package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedServices_TenRows(t *testing.T) {
	list := SeedServices()
	require.Len(t, list, 10)
}

func TestSeedServices_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range SeedServices() {
		require.NotEmpty(t, s.Name)
		assert.False(t, seen[s.Name], "duplicate seed name %q", s.Name)
		seen[s.Name] = true
	}
}

func TestSeedServices_ValidRows(t *testing.T) {
	for _, s := range SeedServices() {
		assert.GreaterOrEqual(t, s.Price, 0.0, s.Name)
		assert.GreaterOrEqual(t, s.Stock, 0, s.Name)
		assert.NotEmpty(t, s.Icon, s.Name)
	}
}
