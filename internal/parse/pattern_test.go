package parse

import (
	"testing"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/status"
	"github.com/stretchr/testify/require"
)

func TestParseWithPattern_BindsNames(t *testing.T) {
	res, err := ParseWithPattern(
		"load minimizer version 1.2.3",
		`^load ([A-Za-z0-9_.-]+) version ([A-Za-z0-9_.-]+)$`,
		[]string{"component", "version"},
		DefaultOptions(),
	)
	require.NoError(t, err)
	require.Equal(t, "load minimizer version 1.2.3", res.Command)

	v, _ := res.Params.Get("component")
	require.Equal(t, "minimizer", v)
	v, _ = res.Params.Get("version")
	require.Equal(t, "1.2.3", v)

	require.Equal(t, []string{"--component", "minimizer", "--version", "1.2.3"}, res.Args)
}

func TestParseWithPattern_DropsUnnamedAndAbsent(t *testing.T) {
	res, err := ParseWithPattern(
		"logger:log",
		`^([A-Za-z0-9_-]+)(@([0-9.]+))?(:([A-Za-z0-9_-]+))?$`,
		[]string{"component", "", "version", "", "function"},
		DefaultOptions(),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"component", "function"}, res.Params.Names())
}

func TestParseWithPattern_CaseSensitivity(t *testing.T) {
	_, err := ParseWithPattern("LOAD core", `^load (\w+)$`, []string{"c"}, DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.CaseSensitive = true
	_, err = ParseWithPattern("LOAD core", `^load (\w+)$`, []string{"c"}, opts)
	require.ErrorIs(t, err, status.ErrInvalidParameter)
	require.Contains(t, err.Error(), `input does not match pattern: ^load (\w+)$`)
}

func TestParseWithPattern_EmptyPatternFallsBack(t *testing.T) {
	res, err := ParseWithPattern("load core", "", nil, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"load", "core"}, res.Args)
	require.NotNil(t, res.Params)
	require.Equal(t, 0, res.Params.Len())
}

func TestParseWithPattern_InvalidPattern(t *testing.T) {
	_, err := ParseWithPattern("x", "(", nil, DefaultOptions())
	require.ErrorIs(t, err, status.ErrInvalidPattern)
}

func TestParamsToArgs(t *testing.T) {
	p := params.New()
	require.NoError(t, p.Add("level", "3"))
	require.NoError(t, p.AddAbsent("dry-run"))

	require.Equal(t, []string{"--level", "3", "--dry-run"}, ParamsToArgs(p))
	require.Empty(t, ParamsToArgs(nil))
}
