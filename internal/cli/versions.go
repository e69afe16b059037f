package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jirakit/jirakit/pkg/jira"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Work with project versions",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionsListCmd = &cobra.Command{
	Use:   "list <project-key>",
	Short: "List the versions of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		versions, err := client.GetVersions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(versions)
			return nil
		}
		for _, v := range versions {
			state := ""
			if v.Released != nil && *v.Released {
				state = "released"
			}
			fmt.Printf("%-8s %-16s %s\n", v.ID, v.Name, state)
		}
		return nil
	},
}

var versionsCreateCmd = &cobra.Command{
	Use:   "create <project-key> <name>",
	Short: "Create a project version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		releaseDate, _ := cmd.Flags().GetString("release-date")

		client, err := newClient()
		if err != nil {
			return err
		}

		created, err := client.CreateVersion(cmd.Context(), &jira.Version{
			Project:     args[0],
			Name:        args[1],
			Description: description,
			ReleaseDate: releaseDate,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(created)
		} else {
			okLabel.Printf("✓ Created version %s (%s)\n", created.Name, created.ID)
		}
		return nil
	},
}

var versionsUnresolvedCmd = &cobra.Command{
	Use:   "unresolved <version-id>",
	Short: "Count the unresolved issues in a version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		count, err := client.GetUnresolvedIssueCount(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]int{"unresolved": count})
		} else {
			fmt.Println(count)
		}
		return nil
	},
}

func init() {
	versionsCreateCmd.Flags().String("description", "", "Version description")
	versionsCreateCmd.Flags().String("release-date", "", "Planned release date (YYYY-MM-DD)")

	versionsCmd.AddCommand(versionsListCmd)
	versionsCmd.AddCommand(versionsCreateCmd)
	versionsCmd.AddCommand(versionsUnresolvedCmd)
	rootCmd.AddCommand(versionsCmd)
}
