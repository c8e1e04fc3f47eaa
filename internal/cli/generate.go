package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rafa3127/MCP-shared-Config/internal/connector"
	"github.com/rafa3127/MCP-shared-Config/internal/document"
	"github.com/rafa3127/MCP-shared-Config/internal/report"
	"github.com/spf13/cobra"
)

// runGenerate validates every enabled connector, assembles the document
// and writes it. Validation errors block the write; a dry run prints the
// document regardless and exits cleanly.
func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	mgr, err := opts.manager()
	if err != nil {
		return err
	}

	if opts.list {
		return printListing(cmd, mgr, false)
	}

	out := report.New(cmd.OutOrStdout())
	out.Info("Generating connector configuration")

	valid, err := validateConnectors(out, mgr)
	if err != nil {
		return err
	}
	if opts.validate {
		if !valid {
			return errValidationFailed
		}
		return nil
	}
	if !valid && !opts.dryRun {
		out.Error("Nothing written; fix the errors above and run again")
		return errValidationFailed
	}

	doc, data, err := assemble(mgr)
	if err != nil {
		return err
	}

	if opts.dryRun {
		shown := doc
		if !opts.noRedact {
			shown = doc.Redacted()
		}
		preview, err := shown.Encode()
		if err != nil {
			return err
		}
		out.Info("Dry run, document not written:")
		out.Raw(string(preview))
		return nil
	}

	path, err := opts.outputPath()
	if err != nil {
		return err
	}
	slog.Debug("Writing document", "path", path)

	res, err := document.Write(opts.fs, path, data)
	if err != nil {
		return err
	}
	if res.CreatedDir != "" {
		out.Info("Created directory %s", res.CreatedDir)
	}
	out.Success("Configuration written to %s", res.Path)
	out.Summary(res.Path, doc.Names())
	return nil
}

// validateConnectors prints stats and findings and reports whether no
// enabled connector has errors.
func validateConnectors(out *report.Printer, mgr *connector.Manager) (bool, error) {
	out.Stats(mgr.Stats())

	agg, err := mgr.ValidateAll()
	if err != nil {
		return false, err
	}
	valid := out.Validation(agg)
	if valid {
		out.Success("Ready to generate")
	}
	return valid, nil
}

// assemble generates all fragments and checks the encoded document
// against the schema before anything is written.
func assemble(mgr *connector.Manager) (*document.Document, []byte, error) {
	configs, err := mgr.GenerateAll()
	if err != nil {
		return nil, nil, err
	}

	doc := document.Assemble(configs)
	data, err := doc.Encode()
	if err != nil {
		return nil, nil, err
	}

	res, err := document.Validate(data)
	if err != nil {
		return nil, nil, err
	}
	if !res.Valid {
		issues := make([]string, 0, len(res.Issues))
		for _, i := range res.Issues {
			issues = append(issues, i.String())
		}
		return nil, nil, fmt.Errorf("generated document does not match schema: %s", strings.Join(issues, "; "))
	}
	return doc, data, nil
}
