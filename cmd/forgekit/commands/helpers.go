package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/forgekit-io/forgekit/internal/constants"
	"github.com/forgekit-io/forgekit/pkg/forge"
	"github.com/forgekit-io/forgekit/pkg/forgeclient"
)

// newClient builds a forge client from the persisted and flag configuration.
func newClient() (forge.Client, error) {
	config := &forge.Config{
		Host:     viper.GetString("host"),
		Port:     viper.GetInt("port"),
		Secure:   viper.GetBool("secure"),
		Token:    viper.GetString("token"),
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
		Debug:    viper.GetBool("verbose"),
	}

	return forgeclient.New(config)
}

// renderOutput writes value as json or yaml per the --output flag, or calls
// renderTable for the default table format.
func renderOutput(value interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(value)
	default:
		return renderTable()
	}
}

// saveConfig persists the current connection settings to the config file.
func saveConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	dir := filepath.Join(home, ".forgekit")
	if err := os.MkdirAll(dir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settings := map[string]interface{}{
		"host":     viper.GetString("host"),
		"port":     viper.GetInt("port"),
		"secure":   viper.GetBool("secure"),
		"token":    viper.GetString("token"),
		"username": viper.GetString("username"),
	}

	// Basic credentials are only persisted when there is no token to use
	// instead.
	if viper.GetString("token") == "" && viper.GetString("password") != "" {
		settings["password"] = viper.GetString("password")
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
