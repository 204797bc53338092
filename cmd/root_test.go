package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRow(t *testing.T) {
	ids := []int64{1760000000002, 1760000000001, 7}

	id, err := resolveRow("2", ids)
	require.NoError(t, err)
	assert.Equal(t, int64(1760000000001), id)

	id, err = resolveRow("1760000000002", ids)
	require.NoError(t, err)
	assert.Equal(t, int64(1760000000002), id)

	_, err = resolveRow("4", ids)
	assert.ErrorContains(t, err, "no row 4")

	_, err = resolveRow("x", ids)
	assert.Error(t, err)
}

func TestParseDayArg(t *testing.T) {
	day, err := parseDayArg("monday")
	require.NoError(t, err)
	assert.Equal(t, "Senin", day)

	_, err = parseDayArg("someday")
	assert.ErrorContains(t, err, "Senin, Selasa")
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"mission", "reset-day"},
		{"gym", "rm-ex"},
		{"task", "toggle"},
		{"fin", "balance"},
		{"backup", "import"},
		{"notify", "enable"},
		{"tui"},
		{"setup"},
		{"config"},
	} {
		c, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], c.Name())
	}
}
