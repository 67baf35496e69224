package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reservly/booking-platform/internal/models"
)

var (
	// Company flags
	companyID     uint
	companyStatus string
)

// setCompanyStatusCmd moves a company between pending/active/suspended
var setCompanyStatusCmd = &cobra.Command{
	Use:   "set-company-status",
	Short: "Change a company's status",
	Long: `Change a company's status. Suspended companies stay visible to
their owner but disappear from public listings and stop accepting
bookings.

Examples:
  adminctl set-company-status --company-id 12 --status active
  adminctl set-company-status --company-id 12 --status suspended`,
	RunE: func(cmd *cobra.Command, args []string) error {
		status := models.CompanyStatus(companyStatus)
		if !status.Valid() {
			return fmt.Errorf("invalid status %q (pending, active or suspended)", companyStatus)
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		var company models.Company
		if err := db.First(&company, companyID).Error; err != nil {
			return fmt.Errorf("company %d: %w", companyID, err)
		}

		if err := db.Model(&company).Update("status", status).Error; err != nil {
			return err
		}

		fmt.Printf("company %d (%s): %s -> %s\n", company.ID, company.Name, company.Status, status)
		return nil
	},
}

func init() {
	setCompanyStatusCmd.Flags().UintVar(&companyID, "company-id", 0, "Company id (required)")
	setCompanyStatusCmd.Flags().StringVar(&companyStatus, "status", "", "New status: pending, active or suspended (required)")
	_ = setCompanyStatusCmd.MarkFlagRequired("company-id")
	_ = setCompanyStatusCmd.MarkFlagRequired("status")

	rootCmd.AddCommand(setCompanyStatusCmd)
}
