package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Work with projects",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var projectGetCmd = &cobra.Command{
	Use:   "get <project-key>",
	Short: "Retrieve a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		project, err := client.GetProject(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(project)
			return nil
		}
		fmt.Printf("%s  %s\n", project.Key, project.Name)
		if project.Lead != nil {
			fmt.Printf("Lead: %s\n", project.Lead.Name)
		}
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all visible projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		projects, err := client.ListProjects(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(projects)
			return nil
		}
		for _, p := range projects {
			fmt.Printf("%-12s %s\n", p.Key, p.Name)
		}
		return nil
	},
}

var projectComponentsCmd = &cobra.Command{
	Use:   "components <project-key>",
	Short: "List the components of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		components, err := client.ListComponents(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(components)
			return nil
		}
		for _, c := range components {
			fmt.Printf("%-8s %s\n", c.ID, c.Name)
		}
		return nil
	},
}

var issueTypesCmd = &cobra.Command{
	Use:   "issue-types",
	Short: "List every issue type on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		types, err := client.ListIssueTypes(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(types)
			return nil
		}
		for _, it := range types {
			fmt.Printf("%-8s %s\n", it.ID, it.Name)
		}
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectGetCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectComponentsCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(issueTypesCmd)
}
