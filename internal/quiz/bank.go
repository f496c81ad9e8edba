package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ErrInvalidBank wraps every question bank validation failure.
var ErrInvalidBank = errors.New("invalid question bank")

// SupportedBankMajor is the bank format major version this build reads.
const SupportedBankMajor = "v1"

// Format is the encoding of a question bank document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Meta describes a question bank.
type Meta struct {
	Title         string `json:"title" yaml:"title"`
	Description   string `json:"description" yaml:"description"`
	EstimatedTime string `json:"estimatedTime" yaml:"estimatedTime"`
	Version       string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Bank is a loaded, validated set of questions.
type Bank struct {
	Meta      Meta       `json:"meta" yaml:"meta"`
	Questions []Question `json:"questions" yaml:"questions"`
}

//go:embed bank.json
var defaultBankJSON []byte

// DefaultBank returns the built-in question bank.
func DefaultBank() (*Bank, error) {
	return LoadBank(bytes.NewReader(defaultBankJSON), FormatJSON)
}

// LoadBankFile reads a bank from disk, picking the format from the
// file extension (.yaml/.yml, anything else is JSON).
func LoadBankFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()

	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return LoadBank(f, format)
}

// LoadBank decodes and validates a question bank.
func LoadBank(r io.Reader, format Format) (*Bank, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	doc, err := toJSON(raw, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidBank, err)
	}
	compiled, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	var bank Bank
	if err := json.Unmarshal(doc, &bank); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidBank, err)
	}
	if err := bank.check(); err != nil {
		return nil, err
	}
	return &bank, nil
}

// check enforces the rules the schema cannot express.
func (b *Bank) check() error {
	if v := b.Meta.Version; v != "" {
		canon := v
		if !strings.HasPrefix(canon, "v") {
			canon = "v" + canon
		}
		if !semver.IsValid(canon) {
			return fmt.Errorf("%w: version %q is not semver", ErrInvalidBank, v)
		}
		if semver.Major(canon) != SupportedBankMajor {
			return fmt.Errorf("%w: version %s not supported (want %s.x)", ErrInvalidBank, v, SupportedBankMajor)
		}
	}

	seen := make(map[string]bool, len(b.Questions))
	for _, q := range b.Questions {
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidBank, q.ID)
		}
		seen[q.ID] = true
		for i, opt := range q.Options {
			for _, d := range opt.Domains {
				if !d.Valid() {
					return fmt.Errorf("%w: question %q option %d: unknown domain %q", ErrInvalidBank, q.ID, i, d)
				}
			}
		}
	}
	return nil
}

// toJSON normalizes a document to JSON bytes.
func toJSON(raw []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return raw, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown bank format %q", format)
	}
}

var (
	bankSchemaOnce     sync.Once
	bankSchemaCompiled *jsonschema.Schema
	bankSchemaErr      error
)

func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		// The compiler wants a decoded JSON value, not a Go map with typed
		// slices, so round-trip the definition.
		defBytes, err := json.Marshal(bankSchema())
		if err != nil {
			bankSchemaErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			bankSchemaErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://question-bank.json"
		if err := c.AddResource(url, def); err != nil {
			bankSchemaErr = err
			return
		}
		bankSchemaCompiled, bankSchemaErr = c.Compile(url)
	})
	return bankSchemaCompiled, bankSchemaErr
}
