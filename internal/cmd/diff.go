package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/fixdiff"
	"github.com/surfeosc/catalogd/internal/output"
)

// Diff command flags.
var diffColorFlag bool

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old-file> <new-file>",
		Short: "Compare two fixture files record by record",
		Long: `Compare two fixture files record by record.

Records are matched on their prefix/suffix key and compared semantically, so
formatting-only changes stay quiet. This is how a freshly harvested batch is
reviewed against the one currently serving.

Records are categorized as:
  - added:    in the new file, not in the old
  - removed:  in the old file, not in the new
  - modified: in both, with different content

Exits with code 5 when differences are found, so scripts can gate on it.

Examples:
  # Review a new harvest before deploying it
  catalogd diff data/v3/services.json /tmp/harvest/services.json

  # With colorized record diffs
  catalogd diff data/v3/services.json /tmp/harvest/services.json --color`,
		Args: cobra.ExactArgs(2),
		RunE: runFixtureDiff,
	}

	cmd.Flags().BoolVar(&diffColorFlag, "color", false, "Colorize record diffs")

	return cmd
}

// runFixtureDiff executes the diff command.
func runFixtureDiff(cmd *cobra.Command, args []string) error {
	oldPath, newPath := args[0], args[1]

	output.Debug("diffing fixtures", "old", oldPath, "new", newPath)

	result, err := fixdiff.Compare(oldPath, newPath, fixdiff.Options{
		UseColor: diffColorFlag,
	})
	if err != nil {
		return err
	}

	if result.IsEmpty() {
		output.Println("No differences found")
		return nil
	}

	output.Println(result.Summary())
	output.Println("")

	for _, key := range result.Added {
		output.Println(fmt.Sprintf("+++ %s [new record]", key))
	}
	for _, key := range result.Removed {
		output.Println(fmt.Sprintf("~~~ %s [removed]", key))
	}
	for _, modified := range result.Modified {
		output.Println(fmt.Sprintf("--- %s [modified]", modified.Key))
		output.Println(modified.Diff)
	}

	return &ExitError{Code: ExitDiffChanges, Err: ErrDiffChanges, Printed: true}
}
