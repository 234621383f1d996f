package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoodSearch(t *testing.T) {
	svc := NewFoodService()

	results := svc.Search("chicken")
	require.Len(t, results, 1)
	require.Equal(t, "Chicken Breast", results[0].Name)

	// substring match, case-insensitive, sorted by name
	results = svc.Search("RICE")
	require.Len(t, results, 1)
	require.Equal(t, "Brown Rice", results[0].Name)

	results = svc.Search("o")
	require.Greater(t, len(results), 1)
	for i := 1; i < len(results); i++ {
		require.Less(t, results[i-1].Name, results[i].Name)
	}

	require.Empty(t, svc.Search("unicorn steak"))
	require.Len(t, svc.Search(""), len(foodTable), "empty query lists everything")
}

func TestFoodAnalyzeScalesPer100g(t *testing.T) {
	svc := NewFoodService()

	n, ok := svc.Analyze("banana", 200)
	require.True(t, ok)
	require.InDelta(t, 178, n.Calories, 0.001)
	require.InDelta(t, 2.2, n.Protein, 0.001)
	require.InDelta(t, 46, n.Carbs, 0.001)

	n, ok = svc.Analyze("  Olive Oil  ", 10)
	require.True(t, ok)
	require.InDelta(t, 88.4, n.Calories, 0.001)
	require.InDelta(t, 10, n.Fats, 0.001)

	_, ok = svc.Analyze("dragon fruit", 100)
	require.False(t, ok)
}
