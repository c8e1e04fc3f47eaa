// Package cli defines the Cobra command tree for the mcp-config CLI. The
// root command generates the connectors document; subcommands list,
// validate and document connectors and manage settings. Commands delegate
// to internal packages and only handle flags and output.
package cli
