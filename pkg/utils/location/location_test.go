package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStates(t *testing.T) {
	require.NoError(t, Init())

	all := GetStates()
	assert.Len(t, all, 27)

	sp, ok := GetState("sp")
	require.True(t, ok)
	assert.Equal(t, "São Paulo", sp.Name)
	assert.Equal(t, "Sudeste", sp.Region)
}

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState("RJ"))
	assert.True(t, IsValidState(" pr "))
	assert.False(t, IsValidState("XX"))
	assert.False(t, IsValidState(""))
}

func TestGetStatesByRegion(t *testing.T) {
	sul := GetStatesByRegion("sul")
	require.Len(t, sul, 3)
	for _, s := range sul {
		assert.Contains(t, []string{"PR", "RS", "SC"}, s.Code)
	}
}
