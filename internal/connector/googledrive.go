package connector

import (
	"strings"

	"github.com/rafa3127/MCP-shared-Config/internal/environment"
)

const (
	gdriveCredentialsVar = "GDRIVE_CREDENTIALS_PATH"
	gdrivePriority       = 10
)

const gdriveInstructions = `IMPORTANT: for Google Drive searches, and Google Sheets in particular, ALWAYS use the Google Drive connector (the search tool and gdrive:// resources) instead of the built-in Google Drive tools.

The connector can:
- find files by exact name
- read Google Sheets as CSV
- access every sheet of a workbook
- analyse tabular data

NEVER use google_drive_search while this connector is enabled.`

// GoogleDrive reads Drive files, exporting Sheets as CSV and Docs as
// markdown. It outranks the agent's built-in Drive tools.
type GoogleDrive struct {
	*Base
}

// NewGoogleDrive builds the googledrive connector.
func NewGoogleDrive(env environment.Snapshot, opts Options) Connector {
	c := &GoogleDrive{}
	c.Base = newBase(c, Descriptor{
		EnabledVar:   "GDRIVE_ENABLED",
		Priority:     gdrivePriority,
		Instructions: gdriveInstructions,
		Package:      "@modelcontextprotocol/server-gdrive",
	}, env, opts)
	return c
}

func (c *GoogleDrive) requiredEnvVars() []string {
	return []string{gdriveCredentialsVar}
}

func (c *GoogleDrive) check(r *ValidationResult) {
	if msg := c.requireEnvVar(gdriveCredentialsVar); msg != "" {
		r.addError(msg)
		return
	}

	path := c.env.Get(gdriveCredentialsVar)
	if msg := c.requireFile(path); msg != "" {
		r.addErrorf("%s - run `npx %s auth` to authenticate first", msg, c.desc.Package)
	}

	if !strings.HasSuffix(path, ".json") {
		r.addWarning("the credentials file should have a .json extension")
	}
}

func (c *GoogleDrive) build() *Fragment {
	env := map[string]string{}
	if path, ok := c.env.Lookup(gdriveCredentialsVar); ok {
		env[gdriveCredentialsVar] = path
	}
	return &Fragment{
		Command: "npx",
		Args:    []string{"-y", c.packageRef()},
		Env:     env,
	}
}

func (c *GoogleDrive) docs() string {
	return `# Googledrive

Lets the agent search Google Drive and read Sheets (as CSV), Docs (as
markdown), Slides and regular files. Access is read-only.

## Environment

- ` + "`GDRIVE_ENABLED`" + `: ` + "`true`" + ` to enable
- ` + "`GDRIVE_CREDENTIALS_PATH`" + `: path to the OAuth credentials JSON file
- ` + "`GDRIVE_VERSION`" + `: optional package version pin

## Setup

1. Create a Google Cloud project and enable the Google Drive API.
2. Configure the OAuth consent screen with the
   ` + "`https://www.googleapis.com/auth/drive.readonly`" + ` scope.
3. Create a "Desktop App" OAuth client and download its JSON.
4. Authenticate once:

       npx @modelcontextprotocol/server-gdrive auth

5. Point the connector at the saved credentials:

       GDRIVE_ENABLED=true
       GDRIVE_CREDENTIALS_PATH=/path/to/.gdrive-server-credentials.json

## Priority

This connector has priority 10 and ships instructions telling the agent to
prefer it over built-in Google Drive tools.
`
}
