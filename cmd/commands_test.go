package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baseproject/internal/config"
	"baseproject/internal/theme"
)

// executeCommand runs the root command against dir and returns stdout.
func executeCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	showStrict = false
	debug = false
	outputFormat = "table"

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config-dir", dir}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func readDocument(t *testing.T, dir string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(config.DocumentPath(dir))
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded project_config, window_config, window_state")
	assert.Len(t, readDocument(t, dir), 3)

	out, err = executeCommand(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "is complete")
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand(t, dir, "init")
	require.NoError(t, err)

	out, err := executeCommand(t, dir, "show", "window_state", "-o", "json")
	require.NoError(t, err)
	var ws config.WindowStateSection
	require.NoError(t, json.Unmarshal([]byte(out), &ws))
	assert.Equal(t, config.DefaultWindowState(), ws)

	out, err = executeCommand(t, dir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "main_panel_layout.horizontal")

	_, err = executeCommand(t, dir, "show", "plugins")
	assert.ErrorIs(t, err, config.ErrUnknownSection)
}

func TestShowCommand_Strict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.DocumentPath(dir), []byte(`{"window_state": {"width": "wide"}}`), 0o644))

	_, err := executeCommand(t, dir, "show", "window_state", "--strict")
	require.Error(t, err)
	assert.Equal(t, ExitCodeInvalidSection, getExitCode(err))

	_, err = executeCommand(t, dir, "show", "project_config", "--strict")
	require.Error(t, err)
	assert.Equal(t, ExitCodeSectionMissing, getExitCode(err))

	out, err := executeCommand(t, dir, "show", "window_state", "-o", "json")
	require.NoError(t, err, "lenient show falls back to defaults")
	assert.Contains(t, out, `"width": 1200`)

	// show is read-only
	data, err := os.ReadFile(config.DocumentPath(dir))
	require.NoError(t, err)
	assert.Equal(t, `{"window_state": {"width": "wide"}}`, string(data))
}

func TestGetCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand(t, dir, "init")
	require.NoError(t, err)

	out, err := executeCommand(t, dir, "get", "window_state.main_panel_layout.vertical", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[85, 15]`, out)

	out, err = executeCommand(t, dir, "get", "window_config.title", "-o", "console")
	require.NoError(t, err)
	assert.Equal(t, "\"BaseProject\"\n", out)

	_, err = executeCommand(t, dir, "get", "window_state.nope")
	assert.Error(t, err)
}

func TestGetCommand_MissingSection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.DocumentPath(dir), []byte(`{}`), 0o644))

	_, err := executeCommand(t, dir, "get", "window_state")
	require.Error(t, err)
	assert.Equal(t, ExitCodeSectionMissing, getExitCode(err))
}

func TestSetCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, dir, "set", "window_state.fullscreen", "true")
	require.NoError(t, err)
	_, err = executeCommand(t, dir, "set", "window_state.main_panel_layout.vertical", "[80, 20]")
	require.NoError(t, err)
	_, err = executeCommand(t, dir, "set", "window_state.theme", "dark")
	require.NoError(t, err)

	doc := readDocument(t, dir)
	var ws config.WindowStateSection
	require.NoError(t, json.Unmarshal(doc["window_state"], &ws))
	assert.True(t, ws.Fullscreen)
	assert.Equal(t, [2]float64{80, 20}, ws.Layout.Vertical)
	assert.Equal(t, config.ThemeDark, ws.Theme)
}

func TestSetCommand_RejectsInvalidValue(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand(t, dir, "init")
	require.NoError(t, err)
	before, err := os.ReadFile(config.DocumentPath(dir))
	require.NoError(t, err)

	_, err = executeCommand(t, dir, "set", "window_state.width", "wide")
	require.Error(t, err)
	assert.Equal(t, ExitCodeInvalidSection, getExitCode(err))

	after, err := os.ReadFile(config.DocumentPath(dir))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestResetCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand(t, dir, "set", "project_config.name", "atlas")
	require.NoError(t, err)

	out, err := executeCommand(t, dir, "reset", "project_config")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset project_config")

	doc := readDocument(t, dir)
	assert.JSONEq(t, `{"name":"","filepath":"","remarks":""}`, string(doc["project_config"]))
}

func TestPathCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := executeCommand(t, dir, "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.FileName)+"\n", out)
}

func TestEventsCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.DocumentPath(dir), []byte(`not json`), 0o644))

	out, err := executeCommand(t, dir, "events", "-o", "json")
	require.NoError(t, err)

	var events []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.NotEmpty(t, events)
	assert.Equal(t, string(config.ReasonDocumentCorrupt), events[0]["reason"])

	// read-only: the corrupt file is neither moved nor replaced
	data, err := os.ReadFile(config.DocumentPath(dir))
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data))
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := executeCommand(t, t.TempDir(), "show", "-o", "xml")
	assert.Error(t, err)
}

func TestCorruptDocumentExitCode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.DocumentPath(dir), []byte(`{"window_state": {`), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{name: "show strict", args: []string{"show", "--strict"}},
		{name: "show strict section", args: []string{"show", "window_state", "--strict"}},
		{name: "get", args: []string{"get", "window_state"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, dir, tt.args...)
			require.Error(t, err)
			assert.True(t, config.IsParse(err))
			assert.Equal(t, ExitCodeDocumentError, getExitCode(err))
		})
	}

	// without --strict the defaults are shown
	_, err := executeCommand(t, dir, "show", "window_state")
	assert.NoError(t, err)
}

func TestSetCommand_NormalizesTheme(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, dir, "set", "window_state.theme", "DARK")
	require.NoError(t, err)

	doc := readDocument(t, dir)
	var ws map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["window_state"], &ws))
	assert.Equal(t, `"dark"`, string(ws["theme"]))
}

// countingProvider answers with a fixed hint and counts queries.
type countingProvider struct {
	hint  theme.Hint
	err   error
	calls int
}

func (p *countingProvider) Detect(context.Context) (theme.Hint, error) {
	p.calls++
	return p.hint, p.err
}

func TestThemeReport(t *testing.T) {
	tests := []struct {
		name     string
		setting  config.Theme
		provider *countingProvider
		want     map[string]interface{}
	}{
		{
			name:     "auto follows light OS",
			setting:  config.ThemeAuto,
			provider: &countingProvider{hint: theme.HintLight},
			want:     map[string]interface{}{"setting": "auto", "os_hint": "light", "resolved": "light"},
		},
		{
			name:     "auto without answer",
			setting:  config.ThemeAuto,
			provider: &countingProvider{err: theme.ErrUnavailable},
			want:     map[string]interface{}{"setting": "auto", "os_hint": "unknown", "resolved": "dark"},
		},
		{
			name:     "explicit setting ignores OS",
			setting:  config.ThemeLight,
			provider: &countingProvider{hint: theme.HintDark},
			want:     map[string]interface{}{"setting": "light", "os_hint": "dark", "resolved": "light"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := themeReport(context.Background(), tt.setting, tt.provider)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, tt.provider.calls, "the OS is queried once")
		})
	}
}
