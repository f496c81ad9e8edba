package cmd

import (
	"fmt"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Show the roadmap for your track",
	Example: `  pathwise roadmap
  pathwise roadmap --complete 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		p, err := e.study.Load(ctx)
		if err != nil {
			return err
		}
		if !p.Domain.Valid() {
			return fmt.Errorf("%w: take the quiz first (`pathwise quiz`)", profile.ErrNoDomain)
		}
		items := domain.Roadmap(p.Domain)

		if n, _ := cmd.Flags().GetInt("complete"); n != 0 {
			if n < 1 || n > len(items) {
				return fmt.Errorf("--complete: pick a step from 1 to %d", len(items))
			}
			if err := e.study.CompleteItem(ctx, items[n-1]); err != nil {
				return err
			}
			if p, err = e.study.Load(ctx); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		done, total := p.RoadmapProgress()
		fmt.Fprintf(out, "%s roadmap (%d/%d done)\n\n", p.Domain.DisplayName(), done, total)
		for i, item := range items {
			mark := " "
			if p.IsCompleted(item) {
				mark = "x"
			}
			fmt.Fprintf(out, "  %d. [%s] %s\n", i+1, mark, item)
		}
		return nil
	},
}

func init() {
	roadmapCmd.Flags().Int("complete", 0, "Mark step N of the roadmap as done")
}
