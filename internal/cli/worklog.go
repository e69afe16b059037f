package cli

import (
	"github.com/spf13/cobra"

	"github.com/jirakit/jirakit/pkg/jira"
)

var worklogCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Record work on issues",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var worklogAddCmd = &cobra.Command{
	Use:   "add <issue-key>",
	Short: "Add a worklog entry to an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeSpent, _ := cmd.Flags().GetString("time")
		comment, _ := cmd.Flags().GetString("comment")
		started, _ := cmd.Flags().GetString("started")

		client, err := newClient()
		if err != nil {
			return err
		}

		err = client.AddWorklog(cmd.Context(), args[0], &jira.Worklog{
			TimeSpent: timeSpent,
			Comment:   comment,
			Started:   started,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "success"})
		} else {
			okLabel.Printf("✓ Logged %s on %s\n", timeSpent, args[0])
		}
		return nil
	},
}

var issueTransitionsCmd = &cobra.Command{
	Use:   "transitions <issue-key>",
	Short: "List the transitions available to an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		transitions, err := client.ListTransitions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(transitions)
			return nil
		}
		for _, t := range transitions {
			to := ""
			if t.To != nil {
				to = "-> " + t.To.Name
			}
			cmd.Printf("%-6s %-20s %s\n", t.ID, t.Name, to)
		}
		return nil
	},
}

var issueTransitionCmd = &cobra.Command{
	Use:   "transition <issue-key> <transition-id>",
	Short: "Apply a transition to an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.TransitionIssue(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "success"})
		} else {
			okLabel.Printf("✓ Transitioned %s\n", args[0])
		}
		return nil
	},
}

func init() {
	worklogAddCmd.Flags().String("time", "", "Time spent, e.g. 3h or 30m")
	worklogAddCmd.Flags().String("comment", "", "Worklog comment")
	worklogAddCmd.Flags().String("started", "", "When the work started (server date format)")
	worklogAddCmd.MarkFlagRequired("time")

	worklogCmd.AddCommand(worklogAddCmd)
	rootCmd.AddCommand(worklogCmd)

	issueCmd.AddCommand(issueTransitionsCmd)
	issueCmd.AddCommand(issueTransitionCmd)
}
