// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/output"
	"github.com/surfeosc/catalogd/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show catalogd version information.

Displays:
  - catalogd version, commit, and build date
  - JSON Schema draft used for catalogue validation`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	output.Println(fmt.Sprintf("catalogd version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:        %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:         %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:            %s", info.GoVersion))
	output.Println(fmt.Sprintf("  Schema draft:  %s", info.SchemaDraft))

	return nil
}
