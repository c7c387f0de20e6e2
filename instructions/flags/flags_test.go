package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	set, err := Parse([]string{"--from=build", "--chmod='0755'", "--link", `--Mount="type=cache,target=/x"`})
	require.NoError(t, err)
	require.Equal(t, Set{
		{Name: "from", Value: "build", HasValue: true},
		{Name: "chmod", Value: "0755", HasValue: true},
		{Name: "link"},
		{Name: "mount", Value: "type=cache,target=/x", HasValue: true},
	}, set)
	require.Equal(t, []string{"from", "chmod", "link", "mount"}, set.Names())

	set, err = Parse(nil)
	require.NoError(t, err)
	require.Empty(t, set)
}

func TestParseErrors(t *testing.T) {
	for _, raw := range []string{"from=x", "-x", "--", "--=x"} {
		_, err := Parse([]string{raw})
		require.Error(t, err, raw)
	}
}

func TestLookup(t *testing.T) {
	set, err := Parse([]string{"--mount=type=cache,target=/a", "--network=none", "--mount=type=secret,id=x"})
	require.NoError(t, err)

	f, ok := set.Lookup("NETWORK")
	require.True(t, ok)
	require.Equal(t, "none", f.Value)
	require.Equal(t, "--network=none", f.String())

	_, ok = set.Lookup("security")
	require.False(t, ok)

	mounts := set.All("mount")
	require.Len(t, mounts, 2)
	require.Equal(t, "type=secret,id=x", mounts[1].Value)
	require.Equal(t, []string{"mount", "network"}, set.Names())
}

func TestOptions(t *testing.T) {
	f := Flag{Name: "mount", Value: `type=bind,"source=a,b",target=/x,ro`, HasValue: true}

	fields, err := f.Fields()
	require.NoError(t, err)
	require.Equal(t, []string{"type=bind", "source=a,b", "target=/x", "ro"}, fields)

	opts, err := f.Options()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"type":   "bind",
		"source": "a,b",
		"target": "/x",
		"ro":     "",
	}, opts)

	_, err = Flag{Name: "mount", Value: "=x", HasValue: true}.Options()
	require.Error(t, err)

	fields, err = Flag{Name: "link"}.Fields()
	require.NoError(t, err)
	require.Empty(t, fields)
}
