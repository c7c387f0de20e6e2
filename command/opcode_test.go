package command

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSorted(t *testing.T) {
	names := Sorted()
	require.Len(t, names, len(Instructions))
	require.True(t, sort.StringsAreSorted(names))
	require.Equal(t, []string{ADD, ARG, CMD}, names[:3])

	names[0] = "mutated"
	require.Equal(t, ADD, Sorted()[0])
}

func TestIsInstruction(t *testing.T) {
	require.True(t, IsInstruction(ONBUILD))
	require.False(t, IsInstruction("ONBUILD"))
	require.False(t, IsInstruction("frobnicate"))
}
