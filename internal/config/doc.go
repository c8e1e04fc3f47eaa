// Package config manages user-level settings stored at ~/.mcp-config/config.yaml.
// Settings can also come from MCPCONFIG_* environment variables; command-line
// flags override both. It also maps LOG_LEVEL strings to slog levels.
package config
