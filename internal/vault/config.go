// Package vault implements the note store: one markdown file per day inside a
// configured vault directory.
package vault

import (
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/evensrud/daybook/internal/entry"
)

// Representation setting values.
const (
	RepBullet = "bullet"
	RepTable  = "table"
)

// Config describes one vault. It is supplied per call by the registry and
// treated as read-only input by the store.
type Config struct {
	Name            string            `yaml:"name"`
	Path            string            `yaml:"path"`
	Locale          string            `yaml:"locale"`
	Phrases         map[string]string `yaml:"phrases,omitempty"`
	SectionHeader   string            `yaml:"section_header,omitempty"`
	CategoryHeaders map[string]string `yaml:"category_headers,omitempty"`
	TimeLabel       string            `yaml:"time_label,omitempty"`
	ContentLabel    string            `yaml:"content_label,omitempty"`
	DateFormat      string            `yaml:"date_format,omitempty"`
	TemplateFile    string            `yaml:"template_file,omitempty"`
	FilePathFormat  string            `yaml:"file_path_format,omitempty"`
	Representation  string            `yaml:"representation,omitempty"`
}

// Validate validates the vault configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Representation, validation.In("", RepBullet, RepTable)),
	)
}

// Rep returns the configured target representation, defaulting to bullet.
func (c *Config) Rep() entry.Rep {
	if c.Representation == RepTable {
		return entry.RepTable
	}
	return entry.RepBullet
}

// Labels returns the table header labels, honouring explicit overrides over
// the locale-derived pair.
func (c *Config) Labels() entry.Labels {
	return entry.LabelsFor(c.Locale, c.TimeLabel, c.ContentLabel)
}

// HeaderFor maps a category to its section header: the per-category override
// if present, else the vault default, else empty (no section scoping).
func (c *Config) HeaderFor(category string) string {
	if category != "" {
		if h, ok := c.CategoryHeaders[category]; ok {
			return h
		}
	}
	return c.SectionHeader
}

// ExpandPath expands a leading tilde against the user's home directory.
// Paths without a tilde are returned unchanged.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
