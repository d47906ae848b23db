// Package registry manages the on-disk vault registry: a YAML file mapping
// vault names to their configurations plus an optional default.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evensrud/daybook/internal/apperr"
	"github.com/evensrud/daybook/internal/vault"
)

// Config is the persisted registry document.
type Config struct {
	Vaults       map[string]vault.Config `yaml:"vaults"`
	DefaultVault string                  `yaml:"default_vault,omitempty"`
}

// NewConfig returns an empty registry.
func NewConfig() *Config {
	return &Config{Vaults: map[string]vault.Config{}}
}

// AddVault inserts or replaces a vault by name.
func (c *Config) AddVault(v vault.Config) {
	if c.Vaults == nil {
		c.Vaults = map[string]vault.Config{}
	}
	c.Vaults[v.Name] = v
}

// RemoveVault unlists a vault. Removing the default clears it.
func (c *Config) RemoveVault(name string) error {
	if _, ok := c.Vaults[name]; !ok {
		return fmt.Errorf("%w: %s", apperr.ErrVaultNotFound, name)
	}
	delete(c.Vaults, name)
	if c.DefaultVault == name {
		c.DefaultVault = ""
	}
	return nil
}

// SetDefault marks an existing vault as the default.
func (c *Config) SetDefault(name string) error {
	if _, ok := c.Vaults[name]; !ok {
		return fmt.Errorf("%w: %s", apperr.ErrVaultNotFound, name)
	}
	c.DefaultVault = name
	return nil
}

// ClearDefault unsets the default vault.
func (c *Config) ClearDefault() {
	c.DefaultVault = ""
}

// Names returns all vault names, sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Vaults))
	for n := range c.Vaults {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve selects a vault configuration. An explicit name must exist. Without
// a name the default is used if set, then a sole configured vault; several
// vaults without a default require the caller to name one.
func (c *Config) Resolve(name string) (vault.Config, error) {
	if name != "" {
		v, ok := c.Vaults[name]
		if !ok {
			return vault.Config{}, fmt.Errorf("%w: %s", apperr.ErrVaultNotFound, name)
		}
		return v, nil
	}
	if c.DefaultVault != "" {
		if v, ok := c.Vaults[c.DefaultVault]; ok {
			return v, nil
		}
		return vault.Config{}, fmt.Errorf("%w: default %s", apperr.ErrVaultNotFound, c.DefaultVault)
	}
	switch len(c.Vaults) {
	case 0:
		return vault.Config{}, apperr.ErrNoVaults
	case 1:
		for _, v := range c.Vaults {
			return v, nil
		}
	}
	return vault.Config{}, apperr.Configf(
		"multiple vaults available: %s; specify --vault", strings.Join(c.Names(), ", "))
}

// Manager loads and saves the registry file.
type Manager struct {
	path string
}

// NewManager resolves the registry file location: the DAYBOOK_CONFIG
// environment variable when set, otherwise daybook/daybook.yaml under the
// user config directory (which is created on demand).
func NewManager() (*Manager, error) {
	if custom := os.Getenv("DAYBOOK_CONFIG"); custom != "" {
		return &Manager{path: custom}, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, apperr.Configf("could not find config directory: %v", err)
	}
	dir := filepath.Join(base, "daybook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return &Manager{path: filepath.Join(dir, "daybook.yaml")}, nil
}

// Path returns the registry file path.
func (m *Manager) Path() string { return m.path }

// Exists reports whether the registry file exists.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Load reads the registry; a missing file yields an empty registry.
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", m.path, err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", m.path, err)
	}
	for name, v := range cfg.Vaults {
		v.Path = vault.ExpandPath(v.Path)
		if v.TemplateFile != "" {
			v.TemplateFile = vault.ExpandPath(v.TemplateFile)
		}
		cfg.Vaults[name] = v
	}
	return cfg, nil
}

// Save writes the registry back to disk.
func (m *Manager) Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", m.path, err)
	}
	return nil
}
