package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/catalog"
	oerrors "github.com/surfeosc/catalogd/internal/errors"
	"github.com/surfeosc/catalogd/internal/output"
)

// Vet command flags.
var (
	vetVersionFlag string
	vetOutputFlag  string
)

// vetReport is the machine-readable result of a vet run.
type vetReport struct {
	Versions []*catalog.CheckReport `json:"versions"`
	Valid    bool                   `json:"valid"`
}

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate catalogue fixtures without serving",
		Long: `Validate every configured fixture record against its version's JSON Schema.

Unlike serve, which stops at the first problem, vet walks all records and
reports every schema violation and duplicate key, which is what you want when
fixing a freshly harvested fixture batch.

Examples:
  # Vet every configured version
  catalogd vet

  # Vet a single version, machine-readable
  catalogd vet --version v3 -o json`,
		Args: cobra.NoArgs,
		RunE: runVet,
	}

	cmd.Flags().StringVar(&vetVersionFlag, "version", "", "Vet only this version (default: all)")
	cmd.Flags().StringVarP(&vetOutputFlag, "output", "o", output.FormatTable.String(), output.FormatFlagUsage())

	return cmd
}

// runVet executes the vet command.
func runVet(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	format := output.ParseOutputFormat(vetOutputFlag)

	tokens := cfg.Catalogue.VersionTokens()
	if vetVersionFlag != "" {
		if _, ok := cfg.Catalogue.Versions[vetVersionFlag]; !ok {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("version %q is not configured", vetVersionFlag),
				GetConfigPath(),
				fmt.Sprintf("Configured versions: %v", tokens),
			)
		}
		tokens = []string{vetVersionFlag}
	}

	report := vetReport{Valid: true}
	registry := catalog.NewSchemaRegistry()

	for _, token := range tokens {
		vc := cfg.Catalogue.Versions[token]

		raw, err := os.ReadFile(vc.Schema)
		if err != nil {
			return oerrors.NewConfigurationError(
				fmt.Sprintf("reading schema for %s: %v", token, err),
				vc.Schema,
				"Check the catalogue.versions paths in the config file.",
			)
		}
		if err := registry.Register(token, raw); err != nil {
			return err
		}
		entry, err := registry.Get(token)
		if err != nil {
			return err
		}

		output.Debug("vetting version", "version", token, "files", len(vc.Fixtures))

		versionReport, err := catalog.NewFixtureLoader(entry).Check(token, vc.Fixtures)
		if err != nil {
			return err
		}

		report.Versions = append(report.Versions, versionReport)
		if !versionReport.Valid() {
			report.Valid = false
		}
	}

	if format != output.FormatTable {
		if err := output.Write(os.Stdout, format, report); err != nil {
			return err
		}
		return vetExitError(report)
	}

	for _, versionReport := range report.Versions {
		printVersionReport(versionReport)
	}
	return vetExitError(report)
}

// printVersionReport renders one version's findings for the terminal.
func printVersionReport(report *catalog.CheckReport) {
	if report.Valid() {
		output.Println(output.FormatCheckmark(fmt.Sprintf("%s valid (%d records, %d files)",
			report.Version, report.Records, len(report.Files))))
		return
	}

	for _, fault := range report.Faults {
		key := fault.ServiceID
		if key == "" {
			key = fmt.Sprintf("record %d", fault.Index)
		}

		status := output.StatusInvalid
		if fault.Duplicate {
			status = output.StatusDuplicate
		}

		output.Println(output.FormatRecordLine(report.Version, key, status))
		for _, violation := range fault.Violations {
			output.Println("    " + violation.String())
		}
	}

	output.Println(output.StyleSummary.Render(fmt.Sprintf("%s: %d of %d records failed",
		report.Version, len(report.Faults), report.Records)))
}

// vetExitError converts an invalid report into the validation exit code. The
// findings were already written, so main must not repeat them.
func vetExitError(report vetReport) error {
	if report.Valid {
		return nil
	}

	faults := 0
	for _, versionReport := range report.Versions {
		faults += len(versionReport.Faults)
	}
	return &ExitError{
		Code:    ExitValidationError,
		Err:     fmt.Errorf("%d invalid record(s)", faults),
		Printed: true,
	}
}
