package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/forgekit-io/forgekit/pkg/forge"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage forge users",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCurrentCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USERNAME",
		Short: "Fetch a user by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting user: %w", err)
			}

			return renderUser(user)
		},
	}
}

func newUsersCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Fetch the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			user, err := client.Users().GetCurrent(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting current user: %w", err)
			}

			return renderUser(user)
		},
	}
}

func newUsersCreateCommand() *cobra.Command {
	var (
		email      string
		password   string
		fullName   string
		sendNotify bool
	)

	cmd := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create a user (requires admin rights)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			builder := client.Users().New().
				Username(args[0]).
				Email(email).
				Password(password).
				FullName(fullName)

			if sendNotify {
				builder.SendNotify()
			}

			user, err := builder.Create(cmd.Context())
			if err != nil {
				return fmt.Errorf("creating user: %w", err)
			}

			return renderUser(user)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "initial password (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	cmd.Flags().BoolVar(&sendNotify, "send-notify", false, "mail the new user about the account")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USERNAME",
		Short: "Delete a user (requires admin rights)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.Users().Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting user: %w", err)
			}

			fmt.Printf("Deleted user %s\n", args[0])

			return nil
		},
	}
}

func renderUser(user *forge.User) error {
	return renderOutput(user, func() error {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.FormatInt(user.ID, 10))
		_ = table.Append("Username", user.Username)
		_ = table.Append("Full Name", user.FullName)
		_ = table.Append("Email", user.Email)
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	})
}
