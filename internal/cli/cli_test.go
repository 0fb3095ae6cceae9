package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_PopulatesConfig(t *testing.T) {
	t.Setenv("BRANDREPORT_LOG_LEVEL", "")
	t.Setenv("BRANDREPORT_LOG_FORMAT", "")
	args := []string{"--files", "a.csv", "--files", "b.csv", "--report", "average-rating"}
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse(args, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, []string{"a.csv", "b.csv"}, config.Files)
	require.Equal(t, "average-rating", config.ReportType)
	require.Equal(t, "info", config.LogLevel)
	require.Equal(t, "text", config.LogFormat)
}

func TestParse_SpaceSeparatedFileList(t *testing.T) {
	// argparse-compatible surface: paths after the first one arrive as
	// positional arguments and must still land in Files, in order.
	args := []string{"--files", "a.csv", "b.csv", "c.csv", "--report", "average-rating"}
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse(args, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, []string{"a.csv", "b.csv", "c.csv"}, config.Files)
}

func TestParse_MissingFilesIsUsageError(t *testing.T) {
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"--report", "average-rating"}, out)

	require.Nil(t, config)
	require.False(t, shouldExit)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "--files")
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_MissingReportIsUsageError(t *testing.T) {
	out := &bytes.Buffer{}

	config, _, err := Parse([]string{"--files", "a.csv"}, out)

	require.Nil(t, config)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "--report")
}

func TestParse_UnknownFlagIsUsageError(t *testing.T) {
	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"--not-a-flag"}, out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "not-a-flag")
}

func TestParse_InvalidLogSettingsAreUsageErrors(t *testing.T) {
	base := []string{"--files", "a.csv", "--report", "average-rating"}

	for name, extra := range map[string][]string{
		"format": {"--log-format", "xml"},
		"level":  {"--log-level", "loud"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(append(append([]string{}, base...), extra...), &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_HelpRequestsCleanExit(t *testing.T) {
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"--help"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
	require.True(t, strings.Contains(out.String(), "Usage:") || strings.Contains(out.String(), "usage"),
		"expected help text in output, got:\n%s", out.String())
}
