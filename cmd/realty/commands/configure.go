package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/realtyhub-io/realty-client/internal/constants"
)

// cliConfig is the shape of ~/.realty/config.yml.
type cliConfig struct {
	APIKey string `yaml:"api-key,omitempty"`
	Host   string `yaml:"host,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// NewConfigureCommand creates the configure command, which prompts for an
// API key and persists it to the config file.
func NewConfigureCommand() *cobra.Command {
	var host string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store API credentials",
		Long:  "Prompt for an API key and save it to ~/.realty/config.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API key: ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}

			fmt.Println()

			apiKey := strings.TrimSpace(string(keyBytes))
			if apiKey == "" {
				return ErrAPIKeyEmpty
			}

			config := cliConfig{
				APIKey: apiKey,
				Host:   host,
			}

			path, err := writeConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("Configuration saved to", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "API host to store alongside the key")

	return cmd
}

func writeConfig(config cliConfig) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	configDir := filepath.Join(home, ".realty")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")

	// The file holds a credential, keep it readable by the owner only.
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
