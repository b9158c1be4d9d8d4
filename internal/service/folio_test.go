package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFolioFormat(t *testing.T) {
	folio := GenerateFolio()

	assert.True(t, strings.HasPrefix(folio, "LS-"), "folio %q should carry the LS- prefix", folio)

	parts := strings.Split(folio, "-")
	require.Len(t, parts, 3)
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(folio), folio)
}

func TestGenerateFolioUniqueness(t *testing.T) {
	const n = 10000

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		folio := GenerateFolio()
		require.False(t, seen[folio], "duplicate folio %q after %d generations", folio, i)
		seen[folio] = true
	}
}
