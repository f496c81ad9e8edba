package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show test, interview and study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		p, err := e.study.Load(cmd.Context())
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), p, e.study.Now())
		return nil
	},
}

func printStats(out io.Writer, p *profile.Profile, now time.Time) {
	sep := strings.Repeat("─", 48)

	track := "none (run `pathwise quiz`)"
	if p.Domain.Valid() {
		done, total := p.RoadmapProgress()
		track = fmt.Sprintf("%s, roadmap %d/%d", p.Domain.DisplayName(), done, total)
	}
	fmt.Fprintf(out, "Track: %s\n\n", track)

	fmt.Fprintln(out, "Skill Tests")
	fmt.Fprintln(out, sep)
	sum := progress.SummarizeTests(p.TestScores)
	if sum.Count == 0 {
		fmt.Fprintln(out, "No tests recorded.")
	} else {
		fmt.Fprintf(out, "Taken:    %d\n", sum.Count)
		fmt.Fprintf(out, "Average:  %.1f\n", sum.Average)
		fmt.Fprintf(out, "Latest:   %d (%s)\n", sum.Latest.Score, progress.Band(sum.Latest.Score))
		fmt.Fprintf(out, "Best:     %d\n", sum.Best.Score)
		fmt.Fprintf(out, "Trend:    %+.1f\n", sum.Trend)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Mock Interviews")
	fmt.Fprintln(out, sep)
	avgs := progress.InterviewAverages(p.Interviews)
	if len(avgs) == 0 {
		fmt.Fprintln(out, "No interviews recorded.")
	}
	for _, a := range avgs {
		fmt.Fprintf(out, "%-24s  %5.1f  (%d)\n", domain.MustLookup(a.Domain).Name, a.Average, a.Count)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next 7 Days")
	fmt.Fprintln(out, sep)
	if p.Schedule == nil {
		fmt.Fprintln(out, "No study plan.")
		return
	}
	sessions := planner.Upcoming(*p.Schedule, now, 7)
	if len(sessions) == 0 {
		fmt.Fprintln(out, "Nothing scheduled.")
	}
	for _, s := range sessions {
		fmt.Fprintln(out, s.Start.Format("Mon Jan 2  15:04"))
	}
}
