package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [database]",
	Short: "Copy the dataset into a SQLite database",
	Long: `Reads the configured dataset and writes its valid locations to a
"locations" table in a SQLite database, replacing any existing table.
The database can then be used as the dataset path for faster start-up.`,
	Example: `  greggs-finder export ./greggs.db
  greggs-finder settings dataset ./greggs.db`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if wiring == nil || wiring.Export == nil {
		return errors.New("export not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	n, err := wiring.Export(cmd.Context(), settings, args[0])
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d locations to %s\n", n, args[0])
	return nil
}
