package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/reservly/booking-platform/internal/models"
)

var (
	// User flags
	userEmail   string
	userRole    string
	newPassword string
)

// setRoleCmd reassigns a user's role
var setRoleCmd = &cobra.Command{
	Use:   "set-role",
	Short: "Reassign a user's role",
	Long: `Reassign a user's role.

Examples:
  adminctl set-role --email ana@example.com --role admin
  adminctl set-role --email shop@example.com --role company`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role := models.Role(userRole)
		if !role.Valid() {
			return fmt.Errorf("invalid role %q (admin, company or user)", userRole)
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		var user models.User
		if err := db.Where("email = ?", userEmail).First(&user).Error; err != nil {
			return fmt.Errorf("user %s: %w", userEmail, err)
		}

		if err := db.Model(&user).Update("role", role).Error; err != nil {
			return err
		}

		fmt.Printf("user %s is now %s\n", user.Email, role)
		return nil
	},
}

// resetPasswordCmd overwrites a user's password hash
var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset a user's password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(newPassword) < 6 {
			return fmt.Errorf("password must have at least 6 characters")
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		var user models.User
		if err := db.Where("email = ?", userEmail).First(&user).Error; err != nil {
			return fmt.Errorf("user %s: %w", userEmail, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if err := db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
			return err
		}

		fmt.Printf("password reset for %s\n", user.Email)
		return nil
	},
}

func init() {
	setRoleCmd.Flags().StringVar(&userEmail, "email", "", "User email (required)")
	setRoleCmd.Flags().StringVar(&userRole, "role", "", "New role: admin, company or user (required)")
	_ = setRoleCmd.MarkFlagRequired("email")
	_ = setRoleCmd.MarkFlagRequired("role")

	resetPasswordCmd.Flags().StringVar(&userEmail, "email", "", "User email (required)")
	resetPasswordCmd.Flags().StringVar(&newPassword, "password", "", "New password (required)")
	_ = resetPasswordCmd.MarkFlagRequired("email")
	_ = resetPasswordCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(setRoleCmd)
	rootCmd.AddCommand(resetPasswordCmd)
}
