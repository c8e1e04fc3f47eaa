package cli

import (
	"fmt"

	"github.com/rafa3127/MCP-shared-Config/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check launchers, the env file and the written document",
		Long: `Run diagnostic checks: node and npx on PATH, permissions of the env file,
and presence, permissions and schema of the written document.

With --fix, files readable by other users are restricted to the owner.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := doctor.New(cmd.OutOrStdout(), fix)
			c.Fs = opts.fs

			c.CheckRuntime()

			envFile := defaultEnvFile
			if files := opts.envFiles(); len(files) > 0 {
				envFile = files[0]
			}
			c.CheckEnvFile(envFile)

			path, err := opts.outputPath()
			if err != nil {
				return err
			}
			c.CheckDocument(path)

			if n := c.Problems(); n > 0 {
				return fmt.Errorf("%d problem(s) found", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "Restrict permissions of secret-bearing files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Document to check instead of the client config")
	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "Check this user's client config")
	return cmd
}
