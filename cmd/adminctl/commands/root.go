package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/config"
	dbpkg "github.com/reservly/booking-platform/internal/db"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Operator tooling for the booking platform",
	Long: `adminctl performs the maintenance operations that have no HTTP
surface: role reassignment, password resets, company status changes
and schema migration. It talks to the same database as the API and
honors the same role and status enums.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		// Same env contract as the API server.
		_ = godotenv.Load()
	})
}

func openDB() (*gorm.DB, error) {
	cfg := config.Load()
	return dbpkg.Open(cfg)
}
