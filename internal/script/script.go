package script

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is an ordered list of construction requests, the way a host
// drives the handle boundary: build formulas from earlier results, render
// or test them, and release them.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one request. Exactly one operation field must be set.
// Constructing operations bind their result to ID; the other fields name
// the IDs of earlier steps.
type Step struct {
	ID string `yaml:"id,omitempty"`

	Atomic      yaml.Node  `yaml:"atomic,omitempty"`
	Boolean     *bool      `yaml:"boolean,omitempty"`
	Conjunction []string   `yaml:"conjunction,omitempty"`
	Disjunction []string   `yaml:"disjunction,omitempty"`
	Negation    string     `yaml:"negation,omitempty"`
	Eventually  string     `yaml:"eventually,omitempty"`
	Always      string     `yaml:"always,omitempty"`
	Clone       string     `yaml:"clone,omitempty"`

	Render  string `yaml:"render,omitempty"`
	IsTrue  string `yaml:"is_true,omitempty"`
	Release string `yaml:"release,omitempty"`
}

// Parse decodes a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, st := range s.Steps {
		if _, err := st.op(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

// LoadFile reads and parses the script at path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

func (s Step) op() (string, error) {
	var set []string
	add := func(name string, ok bool) {
		if ok {
			set = append(set, name)
		}
	}
	add("atomic", s.Atomic.Kind != 0)
	add("boolean", s.Boolean != nil)
	add("conjunction", s.Conjunction != nil)
	add("disjunction", s.Disjunction != nil)
	add("negation", s.Negation != "")
	add("eventually", s.Eventually != "")
	add("always", s.Always != "")
	add("clone", s.Clone != "")
	add("render", s.Render != "")
	add("is_true", s.IsTrue != "")
	add("release", s.Release != "")

	switch len(set) {
	case 0:
		return "", fmt.Errorf("no operation")
	case 1:
	default:
		return "", fmt.Errorf("several operations: %s", strings.Join(set, ", "))
	}

	op := set[0]
	switch op {
	case "render", "is_true", "release":
	default:
		if s.ID == "" {
			return "", fmt.Errorf("%s needs an id", op)
		}
	}
	if (op == "conjunction" && len(s.Conjunction) != 2) || (op == "disjunction" && len(s.Disjunction) != 2) {
		return "", fmt.Errorf("%s takes exactly two operands", op)
	}
	if op == "atomic" && s.Atomic.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("atomic label must be a scalar")
	}
	return op, nil
}
