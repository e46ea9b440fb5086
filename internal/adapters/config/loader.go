// Package config loads per-project rule configuration from .reqcheck.yaml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RuleConfigLoader = (*Loader)(nil)

// Loader implements ports.RuleConfigLoader using a YAML file found by
// walking up from the working directory, the way version control roots are
// discovered.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// configFile is the YAML schema of .reqcheck.yaml.
type configFile struct {
	Rules map[string]string `yaml:"rules"`
}

// Load resolves the effective rule configuration for cwd. Without a config
// file the defaults apply; a config file overrides per rule.
func (l *Loader) Load(cwd string) (domain.RuleConfig, error) {
	rules := domain.DefaultRuleConfig()

	path, found := l.findConfig(cwd)
	if !found {
		return rules, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is discovered under the user's cwd
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	for rule, value := range file.Rules {
		if !domain.Known(rule) {
			l.Logger.Warn("ignoring unknown rule " + rule + " in " + path)
			continue
		}
		severity, ok := domain.ParseSeverity(value)
		if !ok {
			return nil, zerr.With(zerr.With(zerr.New("invalid severity"), "rule", rule), "severity", value)
		}
		rules[rule] = severity
	}

	return rules, nil
}

// findConfig walks from cwd toward the filesystem root looking for the
// nearest config file.
func (l *Loader) findConfig(cwd string) (string, bool) {
	dir := cwd
	for {
		path := filepath.Join(dir, domain.DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
