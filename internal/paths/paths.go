// Package paths resolves where the generated document is written by default.
package paths

import (
	"fmt"
	"os/user"
	"path"
	"strings"
)

// ConfigFileName is the file the desktop client reads its connectors from.
const ConfigFileName = "claude_desktop_config.json"

// DefaultOutput returns the desktop client's config path for username on
// the given GOOS. Paths are built with the target OS separator so the
// result does not depend on the host running the tool.
func DefaultOutput(goos, username string) string {
	switch goos {
	case "darwin":
		return path.Join("/Users", username, "Library", "Application Support", "Claude", ConfigFileName)
	case "windows":
		return strings.Join([]string{`C:`, "Users", username, "AppData", "Roaming", "Claude", ConfigFileName}, `\`)
	default:
		return path.Join("/home", username, ".config", "Claude", ConfigFileName)
	}
}

// CurrentUsername returns the login name of the user running the process.
func CurrentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolving current user: %w", err)
	}
	// Windows reports DOMAIN\name.
	if i := strings.LastIndex(u.Username, `\`); i >= 0 {
		return u.Username[i+1:], nil
	}
	return u.Username, nil
}
