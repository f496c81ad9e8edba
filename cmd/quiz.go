package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pathwise/pathwise/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the career quiz in plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		bank, err := loadBank(e.cfg)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = e.cfg.Quiz.QuestionCount
		}
		rng := quiz.NewRand()
		if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
			rng = quiz.NewSeededRand(seed)
		}

		session, err := quiz.NewSession(bank.Questions, count, rng)
		if err != nil {
			return fmt.Errorf("start quiz: %w", err)
		}

		out := cmd.OutOrStdout()
		if err := askAll(session, bufio.NewScanner(cmd.InOrStdin()), out); err != nil {
			return err
		}
		res, err := session.Result()
		if err != nil {
			return err
		}
		printResult(out, res)

		if res.HasPreference() {
			if err := e.study.AdoptTrack(cmd.Context(), res.Primary.Info.Key); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nYour track is now %s.\n", res.Primary.Info.Name)
		}
		return nil
	},
}

// askAll prompts for every question until the session is done. Invalid
// answers are asked again.
func askAll(s *quiz.Session, in *bufio.Scanner, out io.Writer) error {
	for !s.Done() {
		q, _ := s.Current()
		fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n", s.Index()+1, s.Total(), q.Question)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt.Text)
		}

		for {
			fmt.Fprint(out, "> ")
			if !in.Scan() {
				if err := in.Err(); err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				return errAborted
			}
			n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
			if err == nil && s.Answer(n-1) == nil {
				break
			}
			fmt.Fprintf(out, "Pick a number from 1 to %d.\n", len(q.Options))
		}
	}
	return nil
}

func printResult(out io.Writer, res quiz.ScoreResult) {
	p := res.Primary.Info
	fmt.Fprintf(out, "\n%s %s\n%s\n", p.Icon, p.Name, p.Description)
	if len(p.Traits) > 0 {
		fmt.Fprintf(out, "Traits: %s\n", strings.Join(p.Traits, ", "))
	}
	if res.Secondary != nil {
		fmt.Fprintf(out, "Also worth a look: %s %s\n", res.Secondary.Info.Icon, res.Secondary.Info.Name)
	}
}

func init() {
	quizCmd.Flags().Int("count", 0, "Number of questions (defaults to the configured count)")
	quizCmd.Flags().Uint64("seed", 0, "Seed for a reproducible quiz (0 picks a random seed)")
}
