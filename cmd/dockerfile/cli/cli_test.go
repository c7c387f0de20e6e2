package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dexnore/dockerfile"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestCmds(t *testing.T) {
	out, err := run(t, "", "cmds")
	require.NoError(t, err)
	require.Equal(t, strings.Join(dockerfile.AllCmds(), "\n")+"\n", out)
}

func TestParseFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.Dockerfile", "FROM alpine\n")
	b := writeFile(t, dir, "b.Dockerfile", "FROM busybox\nCMD [\"sh\"]\n")

	out, err := run(t, "", "parse", "-j", "1", b, a)
	require.NoError(t, err)

	var results []fileResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	require.Equal(t, b, results[0].File)
	require.Equal(t, a, results[1].File)
	require.Len(t, results[0].Commands, 2)
	require.True(t, results[0].Commands[1].JSON)
	require.Equal(t, []string{"alpine"}, results[1].Commands[0].Value)
}

func TestParseStdinJSONFieldNames(t *testing.T) {
	out, err := run(t, "ONBUILD RUN echo hi\n", "parse", "-")
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	require.Len(t, raw, 1)
	require.Equal(t, "-", raw[0]["file"])

	cmds := raw[0]["commands"].([]any)
	require.Len(t, cmds, 1)
	cmd := cmds[0].(map[string]any)
	require.Equal(t, "onbuild", cmd["cmd"])
	require.Equal(t, "run", cmd["sub_cmd"])
	require.Equal(t, false, cmd["json"])
	require.Equal(t, "ONBUILD RUN echo hi", cmd["original"])
	require.EqualValues(t, 1, cmd["start_line"])
	require.Equal(t, []any{}, cmd["flags"])
	require.Equal(t, []any{"echo hi"}, cmd["value"])
}

func TestParseYAML(t *testing.T) {
	out, err := run(t, "FROM alpine AS build\n", "parse", "--format", "yaml", "-")
	require.NoError(t, err)

	var results []fileResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.Equal(t, []string{"alpine", "AS", "build"}, results[0].Commands[0].Value)
	require.Contains(t, out, "start_line: 1")
}

func TestParseErrors(t *testing.T) {
	_, err := run(t, "", "parse", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Equal(t, ExitIOError, ExitCode(err))

	_, err = run(t, "FROM alpine\nCMD [\"echo\", 1]\n", "parse", "-")
	require.Error(t, err)
	require.Equal(t, ExitParseError, ExitCode(err))
	require.Contains(t, err.Error(), "line 2")

	_, err = run(t, "", "parse", "-", "-")
	require.ErrorContains(t, err, "standard input can only be read once")
	require.Equal(t, ExitFailure, ExitCode(err))

	_, err = run(t, "", "parse", "--format", "xml", "-")
	require.ErrorContains(t, err, `unsupported output format "xml"`)

	_, err = run(t, "", "parse", "--log-level", "loud", "-")
	require.Error(t, err)

	require.Equal(t, 0, ExitCode(nil))
}

func TestFlags(t *testing.T) {
	dt := "FROM --platform=linux/amd64 alpine\nRUN --mount=type=cache,target=/root/.cache --network=none make\nCOPY a b\nONBUILD COPY --from=build /x /y\n"
	out, err := run(t, dt, "flags", "-")
	require.NoError(t, err)

	var results []flagResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	require.Equal(t, "from", results[0].Cmd)
	require.Equal(t, "platform", results[0].Flags[0].Name)
	require.Equal(t, "linux/amd64", results[0].Flags[0].Value)

	require.Equal(t, 2, results[1].StartLine)
	mount, ok := results[1].Flags.Lookup("mount")
	require.True(t, ok)
	opts, err := mount.Options()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"type": "cache", "target": "/root/.cache"}, opts)

	require.Equal(t, "onbuild", results[2].Cmd)
	require.Equal(t, "copy", results[2].SubCmd)
	require.Equal(t, "from", results[2].Flags[0].Name)
}
