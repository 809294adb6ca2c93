package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/catalog"
	"github.com/surfeosc/catalogd/internal/output"
)

// Ls command flags.
var (
	lsVersionFlag  string
	lsActiveFlag   string
	lsKeywordFlag  string
	lsFromFlag     int
	lsQuantityFlag int
	lsOrderFlag    string
	lsSortFlag     string
	lsOutputFlag   string
)

// NewLsCmd creates the ls command.
func NewLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List catalogue services",
		Long: `List services from the loaded catalogue, without starting the server.

The same filter, sort, and pagination rules as the HTTP list endpoint apply,
so this is the quickest way to preview exactly what clients will see.

Examples:
  # First page of the latest catalogue version
  catalogd ls

  # Active v1 services mentioning "cloud", as JSON
  catalogd ls --version v1 --active true --keyword cloud -o json

  # Third page of ten, by abbreviation, descending
  catalogd ls --from 20 --sort abbreviation --order desc`,
		Args: cobra.NoArgs,
		RunE: runLs,
	}

	cmd.Flags().StringVar(&lsVersionFlag, "version", catalog.LatestAlias, "Catalogue version to query")
	cmd.Flags().StringVar(&lsActiveFlag, "active", "", "Filter on the active flag: true or false")
	cmd.Flags().StringVar(&lsKeywordFlag, "keyword", "", "Case-insensitive keyword filter")
	cmd.Flags().IntVar(&lsFromFlag, "from", 0, "Number of matches to skip")
	cmd.Flags().IntVar(&lsQuantityFlag, "quantity", catalog.DefaultQuantity, "Page size (1-100)")
	cmd.Flags().StringVar(&lsOrderFlag, "order", catalog.OrderAsc, "Sort direction: asc or desc")
	cmd.Flags().StringVar(&lsSortFlag, "sort", catalog.SortName, "Sort field: name, abbreviation, lifeCycleStatus")
	cmd.Flags().StringVarP(&lsOutputFlag, "output", "o", output.FormatTable.String(), output.FormatFlagUsage())

	return cmd
}

// runLs executes the ls command.
func runLs(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	format := output.ParseOutputFormat(lsOutputFlag)

	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	spec := catalog.QuerySpec{
		Keyword:  lsKeywordFlag,
		From:     lsFromFlag,
		Quantity: lsQuantityFlag,
		Order:    lsOrderFlag,
		Sort:     lsSortFlag,
	}
	if lsActiveFlag != "" {
		active, err := strconv.ParseBool(lsActiveFlag)
		if err != nil {
			return &catalog.InvalidParameterError{Param: "active", Reason: "must be true or false"}
		}
		spec.Active = &active
	}

	page, err := cat.ListServices(lsVersionFlag, spec)
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		return output.Write(os.Stdout, format, page)
	}

	table := output.NewTable("KEY", "NAME", "ABBREVIATION", "LIFE CYCLE", "ACTIVE")
	for _, b := range page.Items {
		table.Row(
			b.Key().String(),
			b.Service.Name,
			b.Service.Abbreviation,
			b.Service.LifeCycleStatus,
			activeCell(b),
		)
	}

	table.Caption(fmt.Sprintf("Showing %d of %d services (version %s, from %d)",
		page.Quantity, page.Total, lsVersionFlag, page.From))
	output.Println(table.String())

	return nil
}

// activeCell renders the active flag column. Records without the flag show a
// dash.
func activeCell(b *catalog.ServiceBundle) string {
	if b.Active == nil {
		return "-"
	}
	if *b.Active {
		return output.StatusStyle(output.StatusActive).Render(output.StatusActive)
	}
	return output.StatusStyle(output.StatusInactive).Render(output.StatusInactive)
}
