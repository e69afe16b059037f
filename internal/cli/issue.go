package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jirakit/jirakit/pkg/jira"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Work with issues",
	Long:  `Look up, create, update, delete, comment on, and link issues.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var issueGetCmd = &cobra.Command{
	Use:   "get <issue-key>",
	Short: "Retrieve an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		issue, err := client.FindIssue(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(issue)
			return nil
		}
		if issue.Fields == nil {
			fmt.Println(issue.Key)
			return nil
		}
		fmt.Printf("%s  %s\n", issue.Key, issue.Fields.Summary)
		if issue.Fields.Status != nil {
			fmt.Printf("Status: %s\n", issue.Fields.Status.Name)
		}
		if issue.Fields.Assignee != nil {
			fmt.Printf("Assignee: %s\n", issue.Fields.Assignee.DisplayName)
		}
		return nil
	},
}

var issueCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an issue",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		summary, _ := cmd.Flags().GetString("summary")
		description, _ := cmd.Flags().GetString("description")
		issueType, _ := cmd.Flags().GetString("type")

		client, err := newClient()
		if err != nil {
			return err
		}

		created, err := client.AddNewIssue(cmd.Context(), &jira.Issue{
			Fields: &jira.IssueFields{
				Summary:     summary,
				Description: description,
				Project:     &jira.Project{Key: project},
				IssueType:   &jira.IssueType{Name: issueType},
			},
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(created)
		} else {
			okLabel.Printf("✓ Created %s\n", created.Key)
		}
		return nil
	},
}

var issueUpdateCmd = &cobra.Command{
	Use:   "update <issue-key>",
	Short: "Update issue fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, _ := cmd.Flags().GetString("summary")
		description, _ := cmd.Flags().GetString("description")

		fields := map[string]any{}
		if summary != "" {
			fields["summary"] = summary
		}
		if description != "" {
			fields["description"] = description
		}
		if len(fields) == 0 {
			return fmt.Errorf("nothing to update; pass --summary or --description")
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.UpdateIssue(cmd.Context(), args[0], &jira.IssueUpdate{Fields: fields}); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "success"})
		} else {
			okLabel.Printf("✓ Updated %s\n", args[0])
		}
		return nil
	},
}

var issueDeleteCmd = &cobra.Command{
	Use:   "delete <issue-key>",
	Short: "Delete an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Delete issue %s? Re-run with --force to confirm.\n", args[0])
			os.Exit(1)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteIssue(cmd.Context(), args[0]); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "success"})
		} else {
			okLabel.Printf("✓ Deleted %s\n", args[0])
		}
		return nil
	},
}

var issueCommentCmd = &cobra.Command{
	Use:   "comment <issue-key> <text>",
	Short: "Add a comment to an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.AddComment(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "success"})
		} else {
			okLabel.Printf("✓ Commented on %s\n", args[0])
		}
		return nil
	},
}

var issueLinkCmd = &cobra.Command{
	Use:   "link <inward-key> <outward-key>",
	Short: "Link two issues",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		linkType, _ := cmd.Flags().GetString("type")

		client, err := newClient()
		if err != nil {
			return err
		}

		err = client.LinkIssues(cmd.Context(), &jira.IssueLink{
			Type:         jira.LinkType{Name: linkType},
			InwardIssue:  jira.LinkedIssue{Key: args[0]},
			OutwardIssue: jira.LinkedIssue{Key: args[1]},
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "success"})
		} else {
			okLabel.Printf("✓ Linked %s %s %s\n", args[0], linkType, args[1])
		}
		return nil
	},
}

func init() {
	issueCreateCmd.Flags().String("project", "", "Project key")
	issueCreateCmd.Flags().String("summary", "", "Issue summary")
	issueCreateCmd.Flags().String("description", "", "Issue description")
	issueCreateCmd.Flags().String("type", "Task", "Issue type name")
	issueCreateCmd.MarkFlagRequired("project")
	issueCreateCmd.MarkFlagRequired("summary")

	issueUpdateCmd.Flags().String("summary", "", "New summary")
	issueUpdateCmd.Flags().String("description", "", "New description")

	issueDeleteCmd.Flags().Bool("force", false, "Skip the confirmation prompt")

	issueLinkCmd.Flags().String("type", "Relates", "Link type name")

	issueCmd.AddCommand(issueGetCmd)
	issueCmd.AddCommand(issueCreateCmd)
	issueCmd.AddCommand(issueUpdateCmd)
	issueCmd.AddCommand(issueDeleteCmd)
	issueCmd.AddCommand(issueCommentCmd)
	issueCmd.AddCommand(issueLinkCmd)
	rootCmd.AddCommand(issueCmd)
}
