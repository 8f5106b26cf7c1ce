package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apextrack/go-admin-console/resources"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewProfile)
		if err != nil || !ok {
			return err
		}
		user, err := console.profile.Get(cmd.Context())
		if err != nil {
			return err
		}
		renderTable(
			[]string{"Name", "Email", "Role", "Status"},
			[][]string{{user.Name, user.Email, user.Role, user.AccountStatus}},
		)
		return nil
	},
}

var (
	profileName  string
	profileEmail string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your name and email",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewProfile)
		if err != nil || !ok {
			return err
		}
		ack, err := console.profile.Update(cmd.Context(), resources.ProfileUpdateInput{
			Name:  profileName,
			Email: profileEmail,
		})
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

var (
	currentPassword string
	newPassword     string
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewProfile)
		if err != nil || !ok {
			return err
		}
		ack, err := console.profile.UpdatePassword(cmd.Context(), resources.PasswordUpdateInput{
			CurrentPassword:      currentPassword,
			Password:             newPassword,
			PasswordConfirmation: newPassword,
		})
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	passwordCmd.Flags().StringVar(&currentPassword, "current", "", "current password")
	passwordCmd.Flags().StringVar(&newPassword, "new", "", "new password")
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, passwordCmd)
	rootCmd.AddCommand(profileCmd)
}
