package catalog_test

import (
	"testing"

	"github.com/aussiebroadwan/questboard/internal/quest/catalog"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	require.Equal(t, 5, catalog.Len())
	require.Equal(t, 1000, catalog.TotalXP())

	rewards := []int{100, 150, 200, 250, 300}
	for i, q := range catalog.All() {
		require.Equal(t, i+1, q.ID)
		require.Equal(t, rewards[i], q.XPReward)
		require.Len(t, q.Steps, 5)
		for j, s := range q.Steps {
			require.Equal(t, j+1, s.ID)
			require.NotEmpty(t, s.Title)
		}
	}
}

func TestLookup(t *testing.T) {
	q, ok := catalog.Lookup(3)
	require.True(t, ok)
	require.Equal(t, "DeFi Vault Builder", q.Name)
	require.True(t, q.HasStep(5))
	require.False(t, q.HasStep(6))

	_, ok = catalog.Lookup(42)
	require.False(t, ok)
}

func TestName(t *testing.T) {
	require.Equal(t, "Token Explorer", catalog.Name(2))
	require.Equal(t, "Quest 9", catalog.Name(9))
}

func TestAllReturnsCopy(t *testing.T) {
	all := catalog.All()
	all[0].Name = "mutated"

	q, _ := catalog.Lookup(1)
	require.Equal(t, "Welcome to DeFi", q.Name)
	require.Equal(t, "Welcome to DeFi", catalog.All()[0].Name)
}
