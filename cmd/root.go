package cmd

import (
	"errors"
	"fmt"

	"github.com/pathwise/pathwise/internal/config"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/quiz"
	"github.com/pathwise/pathwise/internal/store"
	"github.com/pathwise/pathwise/internal/study"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Career and study companion for tech learners",
	Long:  "Pathwise — find your tech track with a short quiz, plan weekly study sessions and track your progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides PATHWISE_CONFIG env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what most subcommands need: settings, the open store and the
// study service over it.
type env struct {
	cfg   config.Config
	store *store.Store
	study *study.Service
}

func (e *env) Close() error {
	return e.store.Close()
}

// loadConfig reads settings from --config or the default location.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (PATHWISE_DB or db_path), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openDB(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// openEnv loads config, opens the store and wires the study service.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	st, err := openDB(cmd, cfg)
	if err != nil {
		return nil, err
	}
	exp, err := planner.NewExpander(cfg.ExpanderConfig())
	if err != nil {
		st.Close()
		return nil, err
	}
	return &env{
		cfg:   cfg,
		store: st,
		study: study.NewService(st.ProfileRepo(), st.ReminderRepo(), exp),
	}, nil
}

// loadBank returns the configured question bank, or the built-in one.
func loadBank(cfg config.Config) (*quiz.Bank, error) {
	if cfg.Quiz.BankPath == "" {
		return quiz.DefaultBank()
	}
	bank, err := quiz.LoadBankFile(cfg.Quiz.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", cfg.Quiz.BankPath, err)
	}
	return bank, nil
}

var errAborted = errors.New("aborted")
