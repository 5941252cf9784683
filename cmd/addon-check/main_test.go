package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAddon(t *testing.T, folder string, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), folder)
	require.NoError(t, os.MkdirAll(path, 0o755))
	for name, content := range files {
		full := filepath.Join(path, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return path
}

func TestRunCleanAddon(t *testing.T) {
	path := writeAddon(t, "plugin.foo", map[string]string{
		"addon.xml": `<addon id="plugin.foo" provider-name="Team Foo"/>`,
		"main.py":   "import sys\n",
	})

	code := run([]string{path})
	assert.Equal(t, 0, code)
}

func TestRunProblemAddonFails(t *testing.T) {
	path := writeAddon(t, "plugin.foo", map[string]string{
		"addon.xml": `<addon id="plugin.bar"/>`,
	})

	code := run([]string{path})
	assert.Equal(t, 1, code)

	// the mismatch tolerance flag downgrades the failure
	code = run([]string{"-allow-folder-id-mismatch", path})
	assert.Equal(t, 0, code)
}

func TestRunJSONReporter(t *testing.T) {
	path := writeAddon(t, "plugin.foo", map[string]string{
		"addon.xml": `<addon id="plugin.foo"/>`,
	})
	out := filepath.Join(t.TempDir(), "report.json")

	code := run([]string{"-reporters", "json", "-json-report", out, path})
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded struct {
		Addon   string `json:"addon"`
		Records []struct {
			Severity string `json:"severity"`
			Message  string `json:"message"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "plugin.foo", decoded.Addon)
	assert.NotEmpty(t, decoded.Records)
}

func TestRunRejectsBadFlags(t *testing.T) {
	path := writeAddon(t, "plugin.foo", map[string]string{
		"addon.xml": `<addon id="plugin.foo"/>`,
	})

	assert.Equal(t, 2, run([]string{"-branch", "vienna", path}))
	assert.Equal(t, 2, run([]string{"-reporters", "carrier-pigeon", path}))
	assert.Equal(t, 2, run(nil))
}
