package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apextrack/go-admin-console/internal/utils"
	"github.com/apextrack/go-admin-console/resources"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

var usersPage int

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewUsers)
		if err != nil || !ok {
			return err
		}
		page, err := console.users.List(cmd.Context(), usersPage)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Data))
		for _, user := range page.Data {
			rows = append(rows, []string{user.ID, user.Name, user.Email, user.Role, user.AccountStatus, user.ExpiredAt})
		}
		renderTable([]string{"ID", "Name", "Email", "Role", "Status", "Expires"}, rows)
		fmt.Printf("Page %d of %d\n", page.CurrentPage, page.LastPage)
		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewUsers)
		if err != nil || !ok {
			return err
		}
		user, err := console.users.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		renderTable(
			[]string{"ID", "Name", "Email", "Role", "Status", "Expires"},
			[][]string{{user.ID, user.Name, user.Email, user.Role, user.AccountStatus, user.ExpiredAt}},
		)
		return nil
	},
}

var (
	userName      string
	userEmail     string
	userRole      string
	userStatus    string
	userExpiredAt string
	userPassword  string
)

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewUsers)
		if err != nil || !ok {
			return err
		}
		if strings.TrimSpace(userPassword) == "" {
			return fmt.Errorf("--password is required")
		}
		ack, err := console.users.Create(cmd.Context(), resources.NewUserInput{
			Name:                 userName,
			Email:                userEmail,
			Role:                 userRole,
			AccountStatus:        userStatus,
			ExpiredAt:            userExpiredAt,
			Password:             userPassword,
			PasswordConfirmation: userPassword,
		})
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewUsers)
		if err != nil || !ok {
			return err
		}
		var input resources.UserUpdateInput
		if cmd.Flags().Changed("name") {
			input.Name = utils.Ptr(userName)
		}
		if cmd.Flags().Changed("email") {
			input.Email = utils.Ptr(userEmail)
		}
		if cmd.Flags().Changed("role") {
			input.Role = utils.Ptr(userRole)
		}
		if cmd.Flags().Changed("status") {
			input.AccountStatus = utils.Ptr(userStatus)
		}
		if cmd.Flags().Changed("expires") {
			input.ExpiredAt = utils.Ptr(userExpiredAt)
		}
		ack, err := console.users.Update(cmd.Context(), args[0], input)
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewUsers)
		if err != nil || !ok {
			return err
		}
		ack, err := console.users.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil
	},
}

var usersRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List available roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := console.admit(cmd, viewUsers)
		if err != nil || !ok {
			return err
		}
		roles, err := console.users.Roles(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(roles, "\n"))
		return nil
	},
}

func init() {
	usersListCmd.Flags().IntVar(&usersPage, "page", 1, "page to fetch")
	for _, cmd := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		cmd.Flags().StringVar(&userName, "name", "", "display name")
		cmd.Flags().StringVar(&userEmail, "email", "", "email address")
		cmd.Flags().StringVar(&userRole, "role", "", "role tag")
		cmd.Flags().StringVar(&userStatus, "status", "", "account status")
		cmd.Flags().StringVar(&userExpiredAt, "expires", "", "account expiry timestamp")
	}
	usersCreateCmd.Flags().StringVar(&userPassword, "password", "", "initial password")
	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd, usersRolesCmd)
	rootCmd.AddCommand(usersCmd)
}
