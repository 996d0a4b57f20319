package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCityCanonicalizesCase(t *testing.T) {
	assert.Equal(t, "Goa", NormalizeCity("goa"))
	assert.Equal(t, "Goa", NormalizeCity(" Goa "))
	assert.Equal(t, "Goa", NormalizeCity("GOA"))
	assert.Equal(t, "Pune", NormalizeCity("\tpune\n"))
}

func TestNormalizeCityBlank(t *testing.T) {
	assert.Equal(t, "", NormalizeCity(""))
	assert.Equal(t, "", NormalizeCity("   "))
}

func TestNormalizeCitiesDropsBlanks(t *testing.T) {
	cities, err := NormalizeCities(" goa ", "", "  ", "mumbai")
	require.NoError(t, err)
	assert.Equal(t, []string{"Goa", "Mumbai"}, cities)
}

func TestNormalizeCitiesAllBlank(t *testing.T) {
	_, err := NormalizeCities("", "   ")
	assert.ErrorIs(t, err, ErrNoDestination)

	_, err = NormalizeCities()
	assert.ErrorIs(t, err, ErrNoDestination)
}

func TestNormalizeCitiesNeverEmptyOnUsableInput(t *testing.T) {
	inputs := [][]string{
		{"goa"},
		{"GOA", "pune"},
		{"  shimla  "},
	}
	for _, input := range inputs {
		cities, err := NormalizeCities(input...)
		require.NoError(t, err)
		assert.NotEmpty(t, cities)
	}
}
