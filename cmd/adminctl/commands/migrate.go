package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	dbpkg "github.com/reservly/booking-platform/internal/db"
)

// migrateCmd applies the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the database schema, including the partial unique index
that guards active appointment slots. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		if err := dbpkg.Migrate(db); err != nil {
			return err
		}

		fmt.Println("schema up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
