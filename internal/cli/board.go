package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Work with agile boards and sprints",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var boardFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find a board by name (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		view, err := client.FindRapidView(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(view)
		} else {
			fmt.Printf("%d  %s\n", view.ID, view.Name)
		}
		return nil
	},
}

var boardLastSprintCmd = &cobra.Command{
	Use:   "last-sprint <board-id>",
	Short: "Show the most recent sprint of a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boardID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("board id must be numeric: %w", err)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		sprint, err := client.GetLastSprintForRapidView(cmd.Context(), boardID)
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(sprint)
		} else {
			fmt.Printf("%d  %s  %s\n", sprint.ID, sprint.Name, sprint.State)
		}
		return nil
	},
}

var boardAddIssueCmd = &cobra.Command{
	Use:   "add-issue <issue-key> <sprint-id>",
	Short: "Add an issue to a sprint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("sprint id must be numeric: %w", err)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.AddIssueToSprint(cmd.Context(), args[0], sprintID); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "success"})
		} else {
			okLabel.Printf("✓ Added %s to sprint %d\n", args[0], sprintID)
		}
		return nil
	},
}

func init() {
	boardCmd.AddCommand(boardFindCmd)
	boardCmd.AddCommand(boardLastSprintCmd)
	boardCmd.AddCommand(boardAddIssueCmd)
	rootCmd.AddCommand(boardCmd)
}
