package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"tabdeck/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TABDECK_CONFIG", "")
	t.Setenv("TABDECK_DEFAULT_TAB", "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRender_DefaultDemo(t *testing.T) {
	out, _, err := execute(t, "render")
	require.NoError(t, err)

	assert.Contains(t, out, "Tab 1")
	assert.Contains(t, out, "Tab 2")
	assert.Contains(t, out, "Tab 3")
	assert.Contains(t, out, "Content for Tab 1")
	assert.NotContains(t, out, "Content for Tab 2")
}

func TestRender_ActiveFlag(t *testing.T) {
	out, _, err := execute(t, "render", "--active", "tab2")
	require.NoError(t, err)

	assert.Contains(t, out, "Content for Tab 2")
	assert.NotContains(t, out, "Content for Tab 1")
	assert.NotContains(t, out, "Content for Tab 3")
}

func TestRender_DefaultTabFlag(t *testing.T) {
	out, _, err := execute(t, "render", "--default-tab", "tab3")
	require.NoError(t, err)

	assert.Contains(t, out, "Content for Tab 3")
}

func TestRender_UnknownTabIsNotAnError(t *testing.T) {
	out, _, err := execute(t, "render", "--default-tab", "tab9")
	require.NoError(t, err)

	assert.NotContains(t, out, "Content for")
	assert.NotContains(t, out, "━")
}

func TestRender_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_tab = "b"

[[tabs]]
id = "a"
label = "Alpha"
content = "alpha body"

[[tabs]]
id = "b"
content = "beta body"
`), 0o644))

	out, _, err := execute(t, "render", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "beta body")
	assert.NotContains(t, out, "alpha body")
	assert.NotContains(t, out, "Tab 1")
}

func TestRender_MissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "render", "--config", filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender_DebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "render", "--log-level", "debug", "--active", "tab2")
	require.NoError(t, err)

	assert.Contains(t, errOut, "rendered frame")
	assert.Contains(t, errOut, "tab2")
}

func TestRender_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "tabdeck.log")

	_, errOut, err := execute(t, "render", "--log-level", "debug", "--log-file", logPath)
	require.NoError(t, err)

	assert.Empty(t, errOut)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendered frame")
}

func TestRender_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, "render", "--log-level", "loud")

	assert.Error(t, err)
}

func TestRender_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "render", "extra")

	assert.Error(t, err)
}

func TestBuildTabs(t *testing.T) {
	cfg := config.Config{
		DefaultTab: "two",
		Tabs: []config.TabConfig{
			{ID: "one", Label: "One", Content: "first"},
			{ID: "two", Content: "second"},
		},
	}

	tabs := buildTabs(cfg)
	view := tabs.View()

	require.NoError(t, tabs.Err())
	assert.Equal(t, "two", tabs.ActiveTab())
	assert.Equal(t, []string{"two"}, tabs.Frame().ActiveTabs())
	assert.Equal(t, []string{"two"}, tabs.Frame().VisiblePanels())
	assert.Contains(t, view, "One")
	assert.Contains(t, view, "two", "id is the label fallback")
	assert.Contains(t, view, "second")
}

func TestLoadConfig_NoMouse(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TABDECK_CONFIG", "")
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--no-mouse"}))

	cfg, err := loadConfig(cmd, &options{noMouse: true})
	require.NoError(t, err)

	assert.False(t, cfg.UI.Mouse)
}
