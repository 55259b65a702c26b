package sprite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirections(t *testing.T) {
	dirs, err := ParseDirections("north,south,east")
	require.NoError(t, err)
	require.Equal(t, []Direction{North, South, East}, dirs)

	dirs, err = ParseDirections(" South , East ")
	require.NoError(t, err)
	require.Equal(t, []Direction{South, East}, dirs)

	_, err = ParseDirections("west")
	require.Error(t, err)
	_, err = ParseDirections("")
	require.Error(t, err)
}
