package status

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RulePack is the YAML root of a classifier rule pack. An omitted table keeps
// the built-in default for that branch.
type RulePack struct {
	Pod   Table `yaml:"pod"`
	Other Table `yaml:"other"`
}

// LoadRules builds a Classifier from the rule pack at path. An empty path or a
// missing file yields the default classifier.
func LoadRules(path string) (*Classifier, error) {
	if path == "" {
		return DefaultClassifier(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultClassifier(), nil
		}
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes a YAML rule pack.
func ParseRules(data []byte) (*Classifier, error) {
	var pack RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse rule pack: %w", err)
	}

	pod, err := normalizeTable("pod", pack.Pod)
	if err != nil {
		return nil, err
	}
	other, err := normalizeTable("other", pack.Other)
	if err != nil {
		return nil, err
	}
	return NewClassifier(pod, other), nil
}

// normalizeTable lower-cases needles so they compare against the lower-cased
// status, and rejects unknown labels or needle-less rules.
func normalizeTable(name string, table Table) (Table, error) {
	if len(table) == 0 {
		return nil, nil
	}
	out := make(Table, 0, len(table))
	for i, rule := range table {
		label := Label(strings.ToLower(string(rule.Label)))
		if !label.Valid() {
			return nil, fmt.Errorf("%s rule %d: unknown label %q", name, i, rule.Label)
		}
		needles := make([]string, 0, len(rule.Contains))
		for _, needle := range rule.Contains {
			if needle = strings.ToLower(strings.TrimSpace(needle)); needle != "" {
				needles = append(needles, needle)
			}
		}
		if len(needles) == 0 {
			return nil, fmt.Errorf("%s rule %d: contains must list at least one substring", name, i)
		}
		out = append(out, Rule{Contains: needles, Label: label})
	}
	return out, nil
}
