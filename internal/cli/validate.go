package cli

import (
	"github.com/rafa3127/MCP-shared-Config/internal/document"
	"github.com/rafa3127/MCP-shared-Config/internal/report"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var docPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate connector settings, or an existing document",
		Long: `Validate every enabled connector against the current environment.

With --document, check a previously written document against the
connectors schema instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := report.New(cmd.OutOrStdout())

			if docPath != "" {
				return validateDocument(out, opts, docPath)
			}

			mgr, err := opts.manager()
			if err != nil {
				return err
			}
			valid, err := validateConnectors(out, mgr)
			if err != nil {
				return err
			}
			if !valid {
				return errValidationFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&docPath, "document", "", "Path of a generated document to check")
	return cmd
}

func validateDocument(out *report.Printer, opts *rootOptions, path string) error {
	res, err := document.ValidateFile(opts.fs, path)
	if err != nil {
		return err
	}
	if !res.Valid {
		out.Error("%s does not match the connectors schema:", path)
		for _, issue := range res.Issues {
			out.Detail("x %s", issue)
		}
		return errValidationFailed
	}
	out.Success("%s is a valid connectors document", path)
	return nil
}
