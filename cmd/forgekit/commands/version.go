package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the CLI version and, with --remote, the forge server version",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version"          yaml:"version"`
				Commit  string `json:"commit"           yaml:"commit"`
				Built   string `json:"built"            yaml:"built"`
				Server  string `json:"server,omitempty" yaml:"server,omitempty"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			if remote {
				client, err := newClient()
				if err != nil {
					return err
				}

				serverVersion, err := client.GetVersion(cmd.Context())
				if err != nil {
					return fmt.Errorf("getting server version: %w", err)
				}

				versionInfo.Server = serverVersion.Version
			}

			return renderOutput(versionInfo, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Version", versionInfo.Version)
				_ = table.Append("Commit", versionInfo.Commit)
				_ = table.Append("Built", versionInfo.Built)
				if versionInfo.Server != "" {
					_ = table.Append("Server", versionInfo.Server)
				}
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "also query the forge server version")

	return cmd
}
