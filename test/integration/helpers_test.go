//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rafa3127/MCP-shared-Config/internal/cli"
	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME for "~" expansion
	WorkDir    string // working directory, where .env is picked up
	ConfigFile string // MCPCONFIG_CONFIG
}

// connectorVars are unset for every test so the host environment cannot
// enable anything or shadow a .env file.
var connectorVars = []string{
	"FILESYSTEM_ENABLED", "FILESYSTEM_ALLOWED_PATHS", "FILESYSTEM_VERSION",
	"GITHUB_ENABLED", "GITHUB_TOKEN", "GITHUB_VERSION",
	"PLAYWRIGHT_ENABLED", "PLAYWRIGHT_HEADLESS", "PLAYWRIGHT_TIMEOUT", "PLAYWRIGHT_VIEWPORT", "PLAYWRIGHT_VERSION",
	"GDRIVE_ENABLED", "GDRIVE_CREDENTIALS_PATH", "GDRIVE_VERSION",
	"MCPCONFIG_OUTPUT", "MCPCONFIG_USER", "MCPCONFIG_ENV_FILE", "MCPCONFIG_LOG_LEVEL", "LOG_LEVEL",
}

// setupTestEnv creates isolated temp directories, points HOME and the
// settings file at them and changes into the work directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.ConfigFile = filepath.Join(env.HomeDir, ".mcp-config", "config.yaml")

	for _, name := range connectorVars {
		// Setenv registers the restore; the variable must be absent, not empty.
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("MCPCONFIG_CONFIG", env.ConfigFile)
	t.Chdir(env.WorkDir)

	viper.Reset()
	t.Cleanup(viper.Reset)
	return env
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test", "none", "today")
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	if err != nil {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file not to exist: %s", path)
	}
}
