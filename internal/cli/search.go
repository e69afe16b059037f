package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jirakit/jirakit/pkg/jira"
)

var searchCmd = &cobra.Command{
	Use:   "search <jql>",
	Short: "Search issues with JQL",
	Long: `Search runs a JQL query against the server and prints the
matching issues.

Examples:
  jirakit search 'project = TEST AND status = Open'
  jirakit search --user fred --open`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		openOnly, _ := cmd.Flags().GetBool("open")
		maxResults, _ := cmd.Flags().GetInt("max-results")

		if user == "" && len(args) != 1 {
			return fmt.Errorf("provide a JQL query or --user")
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		var result *jira.SearchResult
		if user != "" {
			result, err = client.GetUsersIssues(cmd.Context(), user, openOnly)
		} else {
			result, err = client.SearchJira(cmd.Context(), args[0], &jira.SearchOptions{MaxResults: maxResults})
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(result)
			return nil
		}
		for _, issue := range result.Issues {
			status := ""
			if issue.Fields != nil && issue.Fields.Status != nil {
				status = issue.Fields.Status.Name
			}
			summary := ""
			if issue.Fields != nil {
				summary = issue.Fields.Summary
			}
			fmt.Printf("%-12s %-14s %s\n", issue.Key, status, summary)
		}
		fmt.Printf("%d of %d issues\n", len(result.Issues), result.Total)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("user", "", "Search issues assigned to this user instead of running JQL")
	searchCmd.Flags().Bool("open", false, "With --user, restrict to open statuses")
	searchCmd.Flags().Int("max-results", 0, "Maximum number of results to request")
	rootCmd.AddCommand(searchCmd)
}
