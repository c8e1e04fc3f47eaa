package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rafa3127/MCP-shared-Config/internal/connector"
	"github.com/rafa3127/MCP-shared-Config/internal/report"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available connectors and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := opts.manager()
			if err != nil {
				return err
			}
			return printListing(cmd, mgr, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

// listEntries joins each connector's info with its variables, in
// registry order.
func listEntries(mgr *connector.Manager) ([]report.ListEntry, error) {
	conns := mgr.Connectors()
	entries := make([]report.ListEntry, 0, len(conns))
	for _, c := range conns {
		required, err := c.RequiredEnvVars()
		if err != nil {
			return nil, err
		}
		entries = append(entries, report.ListEntry{
			Info:            c.Info(),
			RequiredEnvVars: required,
			OptionalEnvVars: c.OptionalEnvVars(),
		})
	}
	return entries, nil
}

func printListing(cmd *cobra.Command, mgr *connector.Manager, asJSON bool) error {
	entries, err := listEntries(mgr)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling connector list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	report.New(cmd.OutOrStdout()).Connectors(entries, mgr.Stats())
	return nil
}
