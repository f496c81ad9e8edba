// Package config loads application settings from defaults, an optional
// YAML file, a .env file and PATHWISE_* environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pathwise/pathwise/internal/interview"
	"github.com/pathwise/pathwise/internal/llm"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/quiz"
)

// Config is the full application configuration.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `yaml:"db_path"`

	Quiz      QuizConfig      `yaml:"quiz"`
	Planner   PlannerConfig   `yaml:"planner"`
	Interview InterviewConfig `yaml:"interview"`
	LLM       llm.Config      `yaml:"llm"`
}

// QuizConfig tunes the domain quiz.
type QuizConfig struct {
	QuestionCount int `yaml:"question_count" validate:"min=1,max=50"`
	// BankPath points at a custom JSON or YAML question bank.
	BankPath string `yaml:"bank_path"`
}

// PlannerConfig tunes reminder expansion.
type PlannerConfig struct {
	LeadTime         time.Duration `yaml:"lead_time" validate:"min=0,lt=24h"`
	SkipPastThisWeek bool          `yaml:"skip_past_this_week"`
}

// InterviewConfig tunes grading requests.
type InterviewConfig struct {
	MaxTokens   int     `yaml:"max_tokens" validate:"min=64"`
	Temperature float64 `yaml:"temperature" validate:"min=0,max=1"`
}

// Default returns the built-in settings.
func Default() Config {
	ic := interview.DefaultConfig()
	return Config{
		Quiz:      QuizConfig{QuestionCount: quiz.DefaultQuestionCount},
		Planner:   PlannerConfig{LeadTime: planner.DefaultLeadTime},
		Interview: InterviewConfig{MaxTokens: ic.MaxTokens, Temperature: ic.Temperature},
		LLM:       llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pathwise/config.yaml, falling
// back to ~/.config.
func DefaultPath() (string, error) {
	if p := os.Getenv("PATHWISE_CONFIG"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "pathwise", "config.yaml"), nil
}

// Load builds the configuration. A missing file at path is not an error.
// .env in the working directory is loaded first without overriding
// variables that are already set.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PATHWISE_DB"); v != "" {
		c.DBPath = v
	}
	if v := getenv("PATHWISE_BANK"); v != "" {
		c.Quiz.BankPath = v
	}
	if v := getenv("PATHWISE_QUESTION_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PATHWISE_QUESTION_COUNT: %w", err)
		}
		c.Quiz.QuestionCount = n
	}
	if v := getenv("PATHWISE_LEAD_TIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PATHWISE_LEAD_TIME: %w", err)
		}
		c.Planner.LeadTime = d
	}
	if v := getenv("PATHWISE_SKIP_PAST_THIS_WEEK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PATHWISE_SKIP_PAST_THIS_WEEK: %w", err)
		}
		c.Planner.SkipPastThisWeek = b
	}
	c.LLM.ApplyEnv(getenv)
	return nil
}

var validate = validator.New()

// Validate checks every section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := planner.NewExpander(c.ExpanderConfig()); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ExpanderConfig converts the planner section for the expander.
func (c Config) ExpanderConfig() planner.Config {
	return planner.Config{LeadTime: c.Planner.LeadTime, SkipPastThisWeek: c.Planner.SkipPastThisWeek}
}

// EvaluatorConfig converts the interview section for the evaluator.
func (c Config) EvaluatorConfig() interview.Config {
	return interview.Config{MaxTokens: c.Interview.MaxTokens, Temperature: c.Interview.Temperature}
}
