package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fridge-inventory/internal/inventory/repository/sqlstore"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, _, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		applied, err := sqlstore.Migrate(ctx, db, sqlstore.Dialect(cfg.Database.Driver))
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(applied) == 0 {
			fmt.Fprintln(out, muted.Render("Database is up to date"))
			return nil
		}
		for _, name := range applied {
			fmt.Fprintf(out, "%s %s\n", success.Render("✓"), accent.Render(name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
