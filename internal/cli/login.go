package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLoginCmd creates and returns a new login command
func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials against the JIRA server",
		Long: `Login performs the session exchange once to verify that the
configured credentials are accepted. Operations authenticate on their
own for every call, so this command is purely a check.

Example:
  jirakit login --passwd=mypassword
  jirakit login  # uses password from config file or JIRA_PASSWORD`,
		RunE: runLogin,
	}

	cmd.Flags().String("passwd", "", "Password for authentication")
	return cmd
}

// runLogin handles the login command execution
func runLogin(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("no configuration loaded")
	}

	passwd, _ := cmd.Flags().GetString("passwd")
	if passwd != "" {
		cfg.Password = passwd
	}
	if cfg.Password == "" {
		return fmt.Errorf("no password provided. Use --passwd flag, set password in config file, or set JIRA_PASSWORD")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Login(cmd.Context()); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if jsonOutput {
		printJSON(map[string]string{
			"status":  "success",
			"message": "Login successful",
		})
	} else {
		okLabel.Println("✓ Login successful")
	}

	return nil
}
