package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryByID(t *testing.T) {
	cat, ok := CategoryByID("wheels")
	require.True(t, ok)
	assert.Equal(t, "Wheels & Rims", cat.Label)

	cat, ok = CategoryByID("  ROOF ")
	require.True(t, ok)
	assert.Equal(t, "roof", cat.ID)

	_, ok = CategoryByID("engine")
	assert.False(t, ok)
}

func TestPartsByCategory(t *testing.T) {
	for _, cat := range Categories() {
		parts := PartsByCategory(cat.ID)
		require.Len(t, parts, 3, "category %s", cat.ID)
		for _, p := range parts {
			assert.Equal(t, cat.ID, p.CategoryID)
			assert.NotEmpty(t, p.Description)
			assert.Positive(t, p.Price)
		}
	}

	assert.Empty(t, PartsByCategory("engine"))
}

func TestPartByName(t *testing.T) {
	p, ok := PartByName("sport black alloy")
	require.True(t, ok)
	assert.Equal(t, "wheel_sport_black_01", p.ID)
	assert.Equal(t, "wheels", p.CategoryID)

	_, ok = PartByName("Flux Capacitor")
	assert.False(t, ok)
}

func TestCopiesAreIsolated(t *testing.T) {
	first := Parts()
	first[0].Name = "mutated"

	second := Parts()
	assert.Equal(t, "Sport Black Alloy", second[0].Name)
}
