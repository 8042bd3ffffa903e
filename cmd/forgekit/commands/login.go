package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a forge",
		Long:  "Verify credentials against a forge and persist them for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")

			if token == "" {
				if username == "" {
					reader := bufio.NewReader(os.Stdin)
					fmt.Print("Username: ")

					line, err := reader.ReadString('\n')
					if err != nil {
						return fmt.Errorf("reading username: %w", err)
					}

					username = strings.TrimSpace(line)
				}

				if password == "" {
					fmt.Print("Password: ")

					bytePassword, err := term.ReadPassword(int(syscall.Stdin))
					fmt.Println()

					if err != nil {
						return fmt.Errorf("reading password: %w", err)
					}

					password = string(bytePassword)
				}

				viper.Set("username", username)
				viper.Set("password", password)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			user, err := client.Users().GetCurrent(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s as %s\n", client.BaseURL(), user.Username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username for basic authentication")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for basic authentication")

	return cmd
}
