package cmd

import (
	"fmt"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/quiz"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Work with quiz question banks",
}

var bankCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a JSON or YAML question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.LoadBankFile(args[0])
		if err != nil {
			return err
		}

		coverage := map[domain.Key]int{}
		for _, q := range bank.Questions {
			for _, opt := range q.Options {
				for _, k := range opt.Domains {
					coverage[k]++
				}
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", args[0])
		if bank.Meta.Title != "" {
			fmt.Fprintf(out, "Title:     %s\n", bank.Meta.Title)
		}
		if bank.Meta.Version != "" {
			fmt.Fprintf(out, "Version:   %s\n", bank.Meta.Version)
		}
		fmt.Fprintf(out, "Questions: %d\n", len(bank.Questions))
		for _, k := range domain.All() {
			fmt.Fprintf(out, "  %-24s %d options\n", k.DisplayName(), coverage[k])
		}
		if len(bank.Questions) < quiz.DefaultQuestionCount {
			fmt.Fprintf(out, "warning: fewer than %d questions; the default quiz cannot run\n", quiz.DefaultQuestionCount)
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankCheckCmd)
}
