// Package config is the rule store: it loads, validates, and persists the
// ordered rule list that drives classification. Order is significant — the
// matcher consults rules in exactly the order they appear here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cleanify/internal/errors"
	"cleanify/internal/log"
	"cleanify/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure. The rule list
// is the durable form of the rule store; settings control mover behavior.
type Config struct {
	Rules    []types.Rule `yaml:"rules"`
	Settings struct {
		DryRun     bool `yaml:"dry_run"`     // If true, simulate operations
		CreateDirs bool `yaml:"create_dirs"` // Create destination directories
	} `yaml:"settings"`
	Directories struct {
		Default string `yaml:"default"` // Default directory to organize
	} `yaml:"directories"`

	// Rejected collects rules that failed validation during load. They are
	// dropped from Rules but kept here so callers can report them.
	Rejected []error `yaml:"-"`
}

// DefaultPath returns the default config location
// (~/.config/cleanify/rules.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cleanify", "rules.yaml"), nil
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.NewConfigError("cannot locate config", "", errors.ConfigNotFound, err)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. A missing file is
// not an error — the tool runs with an empty rule store — but a malformed
// file is fatal. Individual rules that fail validation are dropped and
// recorded in Rejected; the remaining rules still load.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("no config at %s, starting with empty ruleset", path)
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.InvalidConfig, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	cfg.Settings = loaded.Settings
	if loaded.Directories.Default != "" {
		cfg.Directories.Default = loaded.Directories.Default
	}

	// Validate rules one by one; a bad rule must not take the rest down.
	for i, rule := range loaded.Rules {
		normalizeRule(&rule)
		if err := ValidateRule(rule); err != nil {
			log.Warn("skipping rule %d (%s): %v", i, rule.Name, err)
			cfg.Rejected = append(cfg.Rejected, err)
			continue
		}
		cfg.Rules = append(cfg.Rules, rule)
	}

	return cfg, nil
}

// New returns an empty configuration with safe defaults.
func New() *Config {
	cfg := &Config{}
	cfg.Rules = []types.Rule{}
	cfg.Settings.DryRun = false
	cfg.Settings.CreateDirs = true
	return cfg
}

// Save persists the configuration to the given path, creating parent
// directories if needed. Rule order is preserved exactly.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewConfigError("failed to create config directory", dir, errors.InvalidConfig, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewConfigError("failed to marshal config", path, errors.InvalidConfig, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewConfigError("failed to write config file", path, errors.InvalidConfig, err)
	}

	return nil
}

// AddRule validates a rule and appends it to the store.
func (c *Config) AddRule(rule types.Rule) error {
	normalizeRule(&rule)
	if err := ValidateRule(rule); err != nil {
		return err
	}
	c.Rules = append(c.Rules, rule)
	return nil
}

// RemoveRule removes the rule at the given position, keeping the order of
// the remaining rules intact.
func (c *Config) RemoveRule(index int) error {
	if index < 0 || index >= len(c.Rules) {
		return errors.Newf("no rule at position %d", index)
	}
	c.Rules = append(c.Rules[:index], c.Rules[index+1:]...)
	return nil
}

// ValidateRule checks a single rule against the store invariants: it must
// have a name, at least one match criterion, a compilable pattern, and a
// relative destination that stays under the scanned root.
func ValidateRule(rule types.Rule) error {
	if rule.Name == "" {
		return errors.NewRuleError("rule has no name", "", nil)
	}
	if rule.Match.Empty() {
		return errors.NewRuleError("rule has no match criteria", rule.Name, nil)
	}
	if rule.Match.Pattern != "" {
		if _, err := glob.Compile(rule.Match.Pattern); err != nil {
			return errors.NewRuleError(fmt.Sprintf("invalid pattern %q", rule.Match.Pattern), rule.Name, err)
		}
	}
	if err := validateDestination(rule.Destination); err != nil {
		return errors.NewRuleError("invalid destination", rule.Name, err)
	}
	return nil
}

// validateDestination rejects destinations that are empty, absolute, or
// escape the scanned root via ".." segments.
func validateDestination(dest string) error {
	if dest == "" {
		return errors.New("destination is required")
	}
	if filepath.IsAbs(dest) {
		return errors.Newf("destination must be relative, got %q", dest)
	}
	clean := filepath.ToSlash(filepath.Clean(dest))
	if clean == "." {
		return errors.Newf("destination %q resolves to the root itself", dest)
	}
	for _, segment := range strings.Split(clean, "/") {
		if segment == ".." {
			return errors.Newf("destination %q escapes the scanned root", dest)
		}
	}
	return nil
}

// normalizeRule lowercases the case-insensitive criteria so matching never
// has to re-normalize.
func normalizeRule(rule *types.Rule) {
	contains := rule.Match.Contains[:0]
	for _, token := range rule.Match.Contains {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			contains = append(contains, token)
		}
	}
	rule.Match.Contains = contains

	exts := rule.Match.Extensions[:0]
	for _, ext := range rule.Match.Extensions {
		if ext = types.NormalizeExt(ext); ext != "" {
			exts = append(exts, ext)
		}
	}
	rule.Match.Extensions = exts

	rule.Destination = strings.TrimSpace(rule.Destination)
}
