package cmd

import (
	"fmt"
	"strconv"

	"github.com/pathwise/pathwise/internal/progress"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Record skill test results",
}

var scoreAddCmd = &cobra.Command{
	Use:     "add <score>",
	Short:   "Record a skill test score (0-100)",
	Args:    cobra.ExactArgs(1),
	Example: `  pathwise score add 82 --topic "SQL joins"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[0], err)
		}
		topic, _ := cmd.Flags().GetString("topic")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		rec, err := e.study.RecordTest(cmd.Context(), score, topic)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d (%s) on %s.\n",
			rec.Score, progress.Band(rec.Score), rec.Date.Local().Format("Jan 2, 2006"))
		return nil
	},
}

func init() {
	scoreAddCmd.Flags().String("topic", "", "What the test covered")
	scoreCmd.AddCommand(scoreAddCmd)
}
