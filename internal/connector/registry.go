package connector

import "github.com/rafa3127/MCP-shared-Config/internal/environment"

// Constructor builds one connector variant against a snapshot.
type Constructor func(env environment.Snapshot, opts Options) Connector

// registry lists every known connector in output and report order.
// To add a connector, write its variant type and append its constructor here.
var registry = []Constructor{
	NewFilesystem,
	NewGitHub,
	NewPlaywright,
	NewGoogleDrive,
}

// Registered returns the registry's constructors in order.
func Registered() []Constructor {
	out := make([]Constructor, len(registry))
	copy(out, registry)
	return out
}
