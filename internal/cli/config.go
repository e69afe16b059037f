package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jirakit/jirakit/pkg/jira"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// Config represents the configuration for the jirakit CLI.
// It contains server connection details and credentials.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// Protocol is http or https
	Protocol string `yaml:"protocol"`
	// Host is the JIRA server hostname
	Host string `yaml:"host"`
	// Port is the JIRA server port; empty uses the protocol default
	Port string `yaml:"port"`
	// Username for the session login
	Username string `yaml:"username"`
	// Password for the session login
	Password string `yaml:"password"`
	// APIVersion selects the rest/api and rest/greenhopper version
	APIVersion string `yaml:"api_version"`
}

var config *Config

// GetDefaultConfigPath returns the default path for the config file
// (e.g. ~/.config/jirakit/config.yaml on Linux).
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "jirakit", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file and fills
// missing credentials from the environment. A .env file in the working
// directory is honored.
func LoadConfig(file string) error {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	_ = godotenv.Load(".env") // no error if .env doesn't exist
	if c.Username == "" {
		c.Username = os.Getenv("JIRA_USERNAME")
	}
	if c.Password == "" {
		c.Password = os.Getenv("JIRA_PASSWORD")
	}

	if c.Host == "" {
		return errors.New("host is required")
	}

	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// WriteConfig writes the configuration to the specified file.
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	if err := os.WriteFile(file, yamlStr, os.FileMode(0600)); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return nil
}

// newClient builds a jira.Client from the loaded configuration.
func newClient() (*jira.Client, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, errors.New("no configuration loaded")
	}

	opts := []jira.Option{}
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, jira.WithLogger(logger))
	}

	return jira.NewClient(jira.Config{
		Protocol:   cfg.Protocol,
		Host:       cfg.Host,
		Port:       cfg.Port,
		Username:   cfg.Username,
		Password:   cfg.Password,
		APIVersion: cfg.APIVersion,
	}, opts...)
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  `Manage CLI configuration settings like server connection and credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverFlag, _ := cmd.Flags().GetString("server")
		if serverFlag != "" {
			return setServerConfig(cmd, serverFlag)
		}

		cmd.Help()
		return nil
	},
}

func init() {
	configCmd.Flags().String("server", "", "Set the server host (e.g. jira.example.com)")
	configCmd.Flags().String("protocol", "https", "Protocol to reach the server with")
	configCmd.Flags().String("port", "", "Server port; empty uses the protocol default")
	configCmd.Flags().String("api-version", "2", "REST API version")
	rootCmd.AddCommand(configCmd)
}

// setServerConfig writes a fresh configuration for the given server.
func setServerConfig(cmd *cobra.Command, server string) error {
	configPath := configFile
	if configPath == "" {
		var err error
		configPath, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	protocol, _ := cmd.Flags().GetString("protocol")
	port, _ := cmd.Flags().GetString("port")
	apiVersion, _ := cmd.Flags().GetString("api-version")

	cfg := &Config{
		Version:    "0.1.0",
		Protocol:   protocol,
		Host:       server,
		Port:       port,
		APIVersion: apiVersion,
	}

	if err := cfg.WriteConfig(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if jsonOutput {
		printJSON(map[string]string{
			"server":      cfg.Host,
			"config_file": configPath,
		})
	} else {
		fmt.Printf("Server configured: %s\n", cfg.Host)
		fmt.Printf("Config file: %s\n", configPath)
	}

	return nil
}
