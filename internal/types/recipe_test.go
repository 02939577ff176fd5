package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDietType(t *testing.T) {
	for _, d := range DietTypes() {
		got, err := ParseDietType(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	for _, s := range []string{"", "keto", "Vegan", " vegetarian", "pescatarian"} {
		t.Run(s, func(t *testing.T) {
			got, err := ParseDietType(s)
			assert.ErrorIs(t, err, ErrInvalidDietType)
			assert.Empty(t, got)
			assert.Contains(t, err.Error(), "vegetarian, vegan")
		})
	}
}
