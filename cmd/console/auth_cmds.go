package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/apextrack/go-admin-console/resources"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(loginEmail)
		if email == "" {
			fmt.Print("Email: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		password := loginPassword
		if password == "" {
			fmt.Print("Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}

		resp, err := console.auth.Login(cmd.Context(), resources.LoginCredentials{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}
		if err := console.store.Set(resp.Token, resp.User); err != nil {
			return err
		}

		color.Green("Signed in as %s (%s)", resp.User.Name, resp.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !console.store.IsAuthenticated() {
			fmt.Println("Not signed in.")
			return nil
		}
		// Best effort: the local session goes away even if the server
		// call fails, matching the web console.
		if err := console.auth.Logout(cmd.Context()); err != nil {
			console.log.Warn().Err(err).Msg("server logout failed")
		}
		console.store.Clear()
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := console.store.Get()
		if sess.IsZero() {
			fmt.Println("Not signed in.")
			return nil
		}
		renderTable(
			[]string{"Name", "Email", "Role", "Status"},
			[][]string{{sess.User.Name, sess.User.Email, sess.User.Role, sess.User.AccountStatus}},
		)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
