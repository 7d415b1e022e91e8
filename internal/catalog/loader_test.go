package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkops/ridemax/internal/ride"
)

func writeCatalog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rides.csv")
	var b strings.Builder
	b.WriteString("description^cost^minutes\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestLoadValidRows(t *testing.T) {
	path := writeCatalog(t,
		"Ferris Wheel^10^20",
		"Speedway^4^5",
		"Log Flume^7^12.5",
	)
	rides, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rides, 3)
	assert.Equal(t, ride.Ride{Description: "Ferris Wheel", Cost: 10, Minutes: 20}, rides[0])
	assert.Equal(t, ride.Ride{Description: "Speedway", Cost: 4, Minutes: 5}, rides[1])
	assert.Equal(t, 12.5, rides[2].Minutes)
}

func TestLoadSkipsValueErrors(t *testing.T) {
	path := writeCatalog(t,
		"Good^5^10",
		"BadCost^abc^10",
		"BadMinutes^5^xyz",
		"FracCost^5.5^10", // cost must be a whole dollar amount
		"ZeroCost^0^10",
		"NegMinutes^5^-1",
		"^5^10", // empty description
		"Also Good^6^11",
	)
	rides, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "Good", rides[0].Description)
	assert.Equal(t, "Also Good", rides[1].Description)
}

func TestLoadStructuralErrorAborts(t *testing.T) {
	path := writeCatalog(t,
		"Good^5^10",
		"TooFew^5",
		"Never Reached^6^11",
	)
	rides, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, rides, "a structural error must yield no data")
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "want 3, got 2")
}

func TestLoadTooManyFieldsAborts(t *testing.T) {
	path := writeCatalog(t, "Extra^5^10^oops")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 3, got 4")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeCatalog(t)
	rides, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, rides)
}

// A large well-formed catalog loads fully, and filtering it is
// prefix-consistent across different size caps.
func TestLoadLargeCatalogFilterPrefix(t *testing.T) {
	var lines []string
	for i := 0; i < 8064; i++ {
		lines = append(lines, fmt.Sprintf("ride %d^%d^%d", i, 1+i%50, i%600))
	}
	path := writeCatalog(t, lines...)

	rides, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rides, 8064)

	three := ride.Filter(rides, 100, 500, 3)
	ten := ride.Filter(rides, 100, 500, 10)
	require.Len(t, three, 3)
	require.Len(t, ten, 10)
	assert.Equal(t, ten[:3], three)
}
