package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/logging"
)

func TestShowLog_LastLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, logging.FileName)
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, showLog(&buf, path, 2, styles.NewTheme()))
	assert.Equal(t, "three\nfour\n", buf.String())
}

func TestColorizeLogLine_JSON(t *testing.T) {
	line := `{"level":"info","time":"2025-12-17T20:51:06Z","message":"layout restored","tab_id":"default"}`
	out := colorizeLogLine(line, styles.NewTheme())

	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "layout restored")
	assert.Contains(t, out, "tab=default")
	assert.NotContains(t, out, `"level"`)
}

func TestColorizeLogLine_ComponentAndPane(t *testing.T) {
	line := `{"level":"debug","message":"split done","component":"coordinator","pane_id":"p2"}`
	out := colorizeLogLine(line, styles.NewTheme())

	assert.Contains(t, out, "[coordinator]")
	assert.Contains(t, out, "pane=p2")
}

func TestClearLogs_MissingDir(t *testing.T) {
	removed, err := clearLogs(filepath.Join(t.TempDir(), "nope"), true)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestColorizeLogLine_ConsolePassthrough(t *testing.T) {
	line := "20:51:06 INF split done"
	out := colorizeLogLine(line, styles.NewTheme())
	assert.Contains(t, out, "split done")
}

func TestContainsAny_MatchesWholeWords(t *testing.T) {
	assert.True(t, containsAny("12:00 ERR boom", "ERR"))
	assert.False(t, containsAny("12:00 INF no errors", "ERR", "ERROR"))
}

func TestClearLogs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{logging.FileName, logging.FileName + ".2025-01-01-00-00-00.gz", logging.FileName + ".2025-01-02-00-00-00"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o600))
	}

	removed, err := clearLogs(dir, false)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	removed, err = clearLogs(dir, true)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	data, err := os.ReadFile(filepath.Join(dir, logging.FileName))
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(data)))
}
