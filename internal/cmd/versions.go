package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/output"
)

// Versions command flags.
var versionsOutputFlag string

// versionEntry describes one loaded catalogue version.
type versionEntry struct {
	Version  string   `json:"version"`
	Schema   string   `json:"schema"`
	Fixtures []string `json:"fixtures"`
	Bundles  int      `json:"bundles"`
	Latest   bool     `json:"latest"`
}

// versionsReport lists every loaded version plus the latest pin.
type versionsReport struct {
	Versions []versionEntry `json:"versions"`
	Latest   string         `json:"latest"`
}

// NewVersionsCmd creates the versions command.
func NewVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Show supported catalogue versions",
		Long: `Load the catalogue and show every supported version.

The catalogue is fully loaded and validated first, so the numbers reported
here are exactly what serve would expose.

Examples:
  # Tabular overview
  catalogd versions

  # Machine-readable
  catalogd versions -o json`,
		Args: cobra.NoArgs,
		RunE: runVersions,
	}

	cmd.Flags().StringVarP(&versionsOutputFlag, "output", "o", output.FormatTable.String(), output.FormatFlagUsage())

	return cmd
}

// runVersions executes the versions command.
func runVersions(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	format := output.ParseOutputFormat(versionsOutputFlag)

	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	report := versionsReport{Latest: cat.Latest()}
	for _, token := range cat.Versions() {
		vc := cfg.Catalogue.Versions[token]
		_, ds, err := cat.Resolve(token)
		if err != nil {
			return err
		}

		report.Versions = append(report.Versions, versionEntry{
			Version:  token,
			Schema:   vc.Schema,
			Fixtures: vc.Fixtures,
			Bundles:  ds.Len(),
			Latest:   token == cat.Latest(),
		})
	}

	if format != output.FormatTable {
		return output.Write(os.Stdout, format, report)
	}

	table := output.NewTable("VERSION", "SCHEMA", "FIXTURES", "BUNDLES", "LATEST").
		AlignRight(2, 3)
	for _, entry := range report.Versions {
		latest := ""
		if entry.Latest {
			latest = "*"
		}
		table.Row(
			entry.Version,
			entry.Schema,
			strconv.Itoa(len(entry.Fixtures)),
			strconv.Itoa(entry.Bundles),
			latest,
		)
	}

	table.Caption(fmt.Sprintf("latest resolves to %s", report.Latest))
	output.Println(table.String())

	return nil
}
