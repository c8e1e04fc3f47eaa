package cli

import (
	"fmt"
	"strings"

	"github.com/rafa3127/MCP-shared-Config/internal/connector"
	"github.com/rafa3127/MCP-shared-Config/internal/environment"
	"github.com/spf13/cobra"
)

func newEnvCmd(opts *rootOptions) *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect the environment connectors read",
	}
	envCmd.AddCommand(newEnvShowCmd(opts))
	return envCmd
}

func newEnvShowCmd(opts *rootOptions) *cobra.Command {
	var noRedact bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print connector variables (redacted by default)",
		Long: `Print every variable a connector reads, as seen after the .env overlay.
Sensitive values are redacted; use --no-redact to show actual values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.snapshot()
			if err != nil {
				return err
			}
			entries, err := listEntries(connector.NewManager(env, connector.Options{Fs: opts.fs}))
			if err != nil {
				return err
			}

			show := func(name, value string) string {
				if noRedact {
					return value
				}
				return environment.RedactValue(name, value)
			}

			w := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(w, "# %s\n", e.DisplayName)
				vars := []string{e.EnabledVar}
				vars = append(vars, e.RequiredEnvVars...)
				vars = append(vars, e.OptionalEnvVars...)
				known := map[string]bool{}
				for _, name := range vars {
					known[name] = true
					value, ok := env.Lookup(name)
					if !ok {
						fmt.Fprintf(w, "%s (unset)\n", name)
						continue
					}
					fmt.Fprintf(w, "%s=%s\n", name, show(name, value))
				}

				// Same prefix but never read: usually a typo.
				prefix := strings.TrimSuffix(e.EnabledVar, "ENABLED")
				for _, name := range env.WithPrefix(prefix) {
					if !known[name] {
						fmt.Fprintf(w, "%s=%s (not read)\n", name, show(name, env.Get(name)))
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noRedact, "no-redact", false, "Show values without redaction")
	return cmd
}
