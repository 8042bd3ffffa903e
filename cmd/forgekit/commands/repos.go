package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/forgekit-io/forgekit/pkg/forge"
)

// NewReposCommand creates the repos command group
func NewReposCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos",
		Aliases: []string{"repo"},
		Short:   "Manage forge repositories",
	}

	cmd.AddCommand(newReposListCommand())
	cmd.AddCommand(newReposGetCommand())
	cmd.AddCommand(newReposCreateCommand())
	cmd.AddCommand(newReposDeleteCommand())

	return cmd
}

// splitRepoRef splits an "owner/name" argument.
func splitRepoRef(ref string) (string, string, error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected OWNER/NAME", ref)
	}

	return parts[0], parts[1], nil
}

func newReposListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [USERNAME]",
		Short: "List repositories for the authenticated user, or for USERNAME",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var repos []forge.Repository

			if len(args) == 1 {
				repos, err = client.Repositories().ListForUser(cmd.Context(), args[0])
			} else {
				repos, err = client.Repositories().List(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("listing repositories: %w", err)
			}

			return renderOutput(repos, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Private", "Description")
				for i := range repos {
					_ = table.Append(repos[i].FullName, fmt.Sprintf("%t", repos[i].Private), repos[i].Description)
				}
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newReposGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER/NAME",
		Short: "Fetch a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoRef(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			repo, err := client.Repositories().Get(cmd.Context(), owner, name)
			if err != nil {
				return fmt.Errorf("getting repository: %w", err)
			}

			return renderRepository(repo)
		},
	}
}

func newReposCreateCommand() *cobra.Command {
	var (
		owner       string
		description string
		private     bool
		autoInit    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			builder := client.Repositories().New()
			if owner != "" {
				builder = client.Repositories().NewForUser(owner)
			}

			repo, err := builder.
				Name(args[0]).
				Description(description).
				Private(private).
				AutoInit(autoInit).
				Create(cmd.Context())
			if err != nil {
				return fmt.Errorf("creating repository: %w", err)
			}

			return renderRepository(repo)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "create under this user instead (requires admin rights)")
	cmd.Flags().StringVar(&description, "description", "", "repository description")
	cmd.Flags().BoolVar(&private, "private", false, "make the repository private")
	cmd.Flags().BoolVar(&autoInit, "auto-init", false, "create an initial commit")

	return cmd
}

func newReposDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OWNER/NAME",
		Short: "Delete a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepoRef(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.Repositories().Delete(cmd.Context(), owner, name); err != nil {
				return fmt.Errorf("deleting repository: %w", err)
			}

			fmt.Printf("Deleted repository %s\n", args[0])

			return nil
		},
	}
}

func renderRepository(repo *forge.Repository) error {
	return renderOutput(repo, func() error {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Name", repo.FullName)
		_ = table.Append("Owner", repo.OwnerName())
		_ = table.Append("Private", fmt.Sprintf("%t", repo.Private))
		_ = table.Append("Default Branch", repo.DefaultBranch)
		_ = table.Append("Clone URL", repo.CloneURL)
		_ = table.Append("Description", repo.Description)
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	})
}
