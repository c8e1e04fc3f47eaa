package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "mcp-config" {
		t.Errorf("CLIName() = %q, want %q", got, "mcp-config")
	}
	if got := HomeDir(); got != ".mcp-config" {
		t.Errorf("HomeDir() = %q, want %q", got, ".mcp-config")
	}
	if got := EnvPrefix(); got != "MCPCONFIG" {
		t.Errorf("EnvPrefix() = %q, want MCPCONFIG", got)
	}
	if got, want := GoModule(), "github.com/"+GitHubRepo(); got != want {
		t.Errorf("GoModule() = %q, want %q", got, want)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("output"); got != "MCPCONFIG_OUTPUT" {
		t.Errorf("EnvVar(output) = %q, want MCPCONFIG_OUTPUT", got)
	}
}
