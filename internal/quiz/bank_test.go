package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pathwise/pathwise/internal/domain"
)

func TestDefaultBank(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank: %v", err)
	}
	if len(bank.Questions) < DefaultQuestionCount {
		t.Errorf("default bank has %d questions, need at least %d", len(bank.Questions), DefaultQuestionCount)
	}
	if bank.Meta.Title == "" {
		t.Error("default bank has no title")
	}

	// Every domain should be reachable from the default bank.
	reachable := make(map[domain.Key]bool)
	for _, q := range bank.Questions {
		for _, o := range q.Options {
			for _, d := range o.Domains {
				reachable[d] = true
			}
		}
	}
	for _, k := range domain.All() {
		if !reachable[k] {
			t.Errorf("domain %q unreachable in default bank", k)
		}
	}
}

func TestLoadBank_YAML(t *testing.T) {
	doc := `
meta:
  title: Mini
  version: v1.2.0
questions:
  - id: a
    question: Pick one
    options:
      - text: Code
        domains: [fullstack]
      - text: Nothing
        domains: []
`
	bank, err := LoadBank(strings.NewReader(doc), FormatYAML)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if len(bank.Questions) != 1 || len(bank.Questions[0].Options) != 2 {
		t.Fatalf("unexpected bank: %+v", bank)
	}
	if bank.Questions[0].Options[0].Domains[0] != domain.FullStack {
		t.Errorf("domain = %q", bank.Questions[0].Options[0].Domains[0])
	}
}

func TestLoadBank_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"no questions", `{"questions": []}`},
		{"unknown domain", `{"questions":[{"id":"a","question":"q","options":[{"text":"x","domains":["devops"]}]}]}`},
		{"no options", `{"questions":[{"id":"a","question":"q","options":[]}]}`},
		{"empty prompt", `{"questions":[{"id":"a","question":"","options":[{"text":"x","domains":[]}]}]}`},
		{"duplicate id", `{"questions":[
			{"id":"a","question":"q","options":[{"text":"x","domains":[]}]},
			{"id":"a","question":"r","options":[{"text":"y","domains":[]}]}]}`},
		{"bad version", `{"meta":{"version":"one"},"questions":[{"id":"a","question":"q","options":[{"text":"x","domains":[]}]}]}`},
		{"future major", `{"meta":{"version":"2.0.0"},"questions":[{"id":"a","question":"q","options":[{"text":"x","domains":[]}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBank(strings.NewReader(tt.doc), FormatJSON)
			if !errors.Is(err, ErrInvalidBank) {
				t.Errorf("err = %v, want ErrInvalidBank", err)
			}
		})
	}
}

func TestLoadBankFile_PicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yml")
	doc := "questions:\n  - id: x\n    question: Why?\n    options:\n      - text: Because\n        domains: [cyber]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	bank, err := LoadBankFile(path)
	if err != nil {
		t.Fatalf("LoadBankFile: %v", err)
	}
	if bank.Questions[0].ID != "x" {
		t.Errorf("id = %q, want x", bank.Questions[0].ID)
	}
}
