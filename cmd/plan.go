package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pathwise/pathwise/internal/notify"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show or change the weekly study plan",
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the study plan and the reminders it produces",
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
		out := cmd.OutOrStdout()
		if p.Schedule == nil {
			fmt.Fprintln(out, "No study plan. Create one with `pathwise plan set`.")
			return nil
		}
		printSchedule(out, *p.Schedule)
		if p.Schedule.Reminders {
			printTriggers(out, e.study.Expander.Expand(*p.Schedule, e.study.Now()))
		}
		return nil
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the study plan",
	Example: `  pathwise plan set --days mon,wed,fri --time 18:30
  pathwise plan set --days sat --time 10:00 --reminders=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		daysFlag, _ := cmd.Flags().GetString("days")
		timeFlag, _ := cmd.Flags().GetString("time")
		reminders, _ := cmd.Flags().GetBool("reminders")

		days, err := parseDays(daysFlag)
		if err != nil {
			return err
		}
		tod, err := planner.ParseTimeOfDay(timeFlag)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sched := planner.StudySchedule{Days: days, Time: tod, Reminders: reminders}
		triggers, err := e.study.SaveSchedule(cmd.Context(), sched)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printSchedule(out, sched)
		printTriggers(out, triggers)
		return nil
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the study plan and its reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.study.ClearSchedule(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Study plan cleared.")
		return nil
	},
}

// parseDays reads a comma-separated weekday list.
func parseDays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := planner.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("--days: pick at least one day")
	}
	return days, nil
}

func printSchedule(out io.Writer, s planner.StudySchedule) {
	names := make([]string, 0, len(s.Days))
	for _, d := range s.SortedDays() {
		names = append(names, d.String()[:3])
	}
	state := "off"
	if s.Reminders {
		state = "on"
	}
	fmt.Fprintf(out, "Days:      %s\n", strings.Join(names, ", "))
	fmt.Fprintf(out, "Time:      %s\n", s.Time)
	fmt.Fprintf(out, "Reminders: %s\n", state)
}

func printTriggers(out io.Writer, triggers []planner.NotificationTrigger) {
	if len(triggers) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Reminder triggers")
	fmt.Fprintln(out, strings.Repeat("─", 36))
	for _, t := range triggers {
		fmt.Fprintf(out, "%s  %02d:%02d  %s\n", t.Weekday.String()[:3], t.Hour, t.Minute, t.Role)
	}
}

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List the registered study reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		list, err := e.store.ReminderRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		printReminders(cmd.OutOrStdout(), list)
		return nil
	},
}

func printReminders(out io.Writer, list []notify.Notification) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No reminders registered.")
		return
	}
	fmt.Fprintf(out, "%-3s  %-5s  %-28s  %s\n", "Day", "Time", "Title", "Body")
	fmt.Fprintln(out, strings.Repeat("─", 90))
	for _, n := range list {
		t := n.Trigger
		fmt.Fprintf(out, "%-3s  %02d:%02d  %-28s  %s\n", t.Weekday.String()[:3], t.Hour, t.Minute, n.Title, n.Body)
	}
}

func init() {
	planSetCmd.Flags().String("days", "", "Comma-separated study days, e.g. mon,wed,fri")
	planSetCmd.Flags().String("time", "09:00", "Session start time (HH:MM, 24h)")
	planSetCmd.Flags().Bool("reminders", true, "Register reminders for each session")
	planSetCmd.MarkFlagRequired("days")

	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planClearCmd)
}
