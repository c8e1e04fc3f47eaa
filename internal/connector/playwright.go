package connector

import "github.com/rafa3127/MCP-shared-Config/internal/environment"

const (
	playwrightHeadlessVar = "PLAYWRIGHT_HEADLESS"
	playwrightTimeoutVar  = "PLAYWRIGHT_TIMEOUT"
	playwrightViewportVar = "PLAYWRIGHT_VIEWPORT"
)

// Playwright drives a browser for navigation, scraping and screenshots.
// It needs no configuration; every setting has a default.
type Playwright struct {
	*Base
}

// NewPlaywright builds the playwright connector.
func NewPlaywright(env environment.Snapshot, opts Options) Connector {
	c := &Playwright{}
	c.Base = newBase(c, Descriptor{
		Package:    "@playwright/mcp",
		DefaultTag: "latest",
	}, env, opts)
	return c
}

func (c *Playwright) requiredEnvVars() []string {
	return []string{}
}

func (c *Playwright) optionalEnvVars() []string {
	return []string{playwrightHeadlessVar, playwrightTimeoutVar, playwrightViewportVar}
}

func (c *Playwright) check(r *ValidationResult) {
	headless := c.env.Get(playwrightHeadlessVar)
	if headless == "" {
		headless = "true"
	}
	if headless != "true" && headless != "false" {
		r.addWarningf(`%s must be "true" or "false"; using "true"`, playwrightHeadlessVar)
	}

	if timeout := c.env.Get(playwrightTimeoutVar); timeout != "" && !hasLeadingInt(timeout) {
		r.addWarningf("%s must be a number of milliseconds", playwrightTimeoutVar)
	}
}

func (c *Playwright) build() *Fragment {
	args := []string{c.packageRef()}

	if c.env.Get(playwrightHeadlessVar) != "false" {
		args = append(args, "--headless")
	}
	if timeout := c.env.Get(playwrightTimeoutVar); timeout != "" {
		args = append(args, "--timeout", timeout)
	}
	if viewport := c.env.Get(playwrightViewportVar); viewport != "" {
		args = append(args, "--viewport", viewport)
	}

	return &Fragment{
		Command: "npx",
		Args:    args,
	}
}

func (c *Playwright) docs() string {
	return `# Playwright

Lets the agent automate a browser: navigate, click, fill forms, extract
text and take screenshots.

## Environment

- ` + "`PLAYWRIGHT_ENABLED`" + `: ` + "`true`" + ` to enable
- ` + "`PLAYWRIGHT_HEADLESS`" + `: ` + "`true`" + ` (default) or ` + "`false`" + ` to show the browser
- ` + "`PLAYWRIGHT_TIMEOUT`" + `: operation timeout in milliseconds
- ` + "`PLAYWRIGHT_VIEWPORT`" + `: viewport size such as ` + "`1280x720`" + `
- ` + "`PLAYWRIGHT_VERSION`" + `: optional package version pin (default ` + "`latest`" + `)

## Example

    PLAYWRIGHT_ENABLED=true
    PLAYWRIGHT_HEADLESS=true
    PLAYWRIGHT_TIMEOUT=30000
    PLAYWRIGHT_VIEWPORT=1280x720

Respect the terms of service and rate limits of the sites you automate.
`
}
