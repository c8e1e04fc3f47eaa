package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDocsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "docs <connector>",
		Short: "Print setup documentation for a connector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := opts.manager()
			if err != nil {
				return err
			}

			c, ok := mgr.Lookup(args[0])
			if !ok {
				names := make([]string, 0, len(mgr.Connectors()))
				for _, c := range mgr.Connectors() {
					names = append(names, c.Name())
				}
				return fmt.Errorf("unknown connector %q (available: %s)", args[0], strings.Join(names, ", "))
			}
			fmt.Fprint(cmd.OutOrStdout(), c.Docs())
			return nil
		},
	}
}
