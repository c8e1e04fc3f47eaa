package connector

import "github.com/rafa3127/MCP-shared-Config/internal/environment"

const filesystemPathsVar = "FILESYSTEM_ALLOWED_PATHS"

// Filesystem gives the agent access to a list of local directories.
type Filesystem struct {
	*Base
}

// NewFilesystem builds the filesystem connector.
func NewFilesystem(env environment.Snapshot, opts Options) Connector {
	c := &Filesystem{}
	c.Base = newBase(c, Descriptor{
		Package: "@modelcontextprotocol/server-filesystem",
	}, env, opts)
	return c
}

func (c *Filesystem) requiredEnvVars() []string {
	return []string{filesystemPathsVar}
}

func (c *Filesystem) check(r *ValidationResult) {
	if msg := c.requireEnvVar(filesystemPathsVar); msg != "" {
		r.addError(msg)
		return
	}

	paths := nonEmpty(splitList(c.env.Get(filesystemPathsVar)))
	for _, p := range paths {
		if msg := c.requireDirectory(p); msg != "" {
			r.addError(msg)
		}
	}

	if len(paths) == 0 {
		r.addWarning("no allowed paths configured for the filesystem connector")
	}
}

func (c *Filesystem) build() *Fragment {
	args := []string{"-y", c.packageRef()}
	args = append(args, nonEmpty(splitList(c.env.Get(filesystemPathsVar)))...)
	return &Fragment{
		Command: "npx",
		Args:    args,
	}
}

func (c *Filesystem) docs() string {
	return `# Filesystem

Lets the agent read and write files inside an explicit list of directories.

## Environment

- ` + "`FILESYSTEM_ENABLED`" + `: ` + "`true`" + ` to enable
- ` + "`FILESYSTEM_ALLOWED_PATHS`" + `: comma-separated directories; ` + "`~`" + ` expands to the home directory
- ` + "`FILESYSTEM_VERSION`" + `: optional package version pin

## Example

    FILESYSTEM_ENABLED=true
    FILESYSTEM_ALLOWED_PATHS=~/Projects,~/Documents/work,/tmp

## Security

The server can read, write and delete anything under the allowed paths.
Only list directories you are comfortable exposing.
`
}
