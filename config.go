package newpost

import (
	"log/slog"

	"github.com/spf13/afero"
)

// SiteConfig holds all configuration for scaffolding posts into a site.
type SiteConfig struct {
	URL         string `mapstructure:"url" yaml:"url"`                   // Canonical base URL (default "http://localhost:3000")
	Root        string `mapstructure:"root" yaml:"root"`                 // Site root directory (default ".")
	PostsDir    string `mapstructure:"posts-dir" yaml:"posts-dir"`       // Posts directory relative to Root (default "src/posts")
	Layout      string `mapstructure:"layout" yaml:"layout"`             // Index template layout: "pug" or "meta" (default "pug")
	IndexFile   string `mapstructure:"index-file" yaml:"index-file"`     // Index document name (default "index.pug")
	ContentFile string `mapstructure:"content-file" yaml:"content-file"` // Content document name (default "content.md")
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Root == "" {
		c.Root = "."
	}
	if c.PostsDir == "" {
		c.PostsDir = "src/posts"
	}
	if c.Layout == "" {
		c.Layout = LayoutPug
	}
	if c.IndexFile == "" {
		c.IndexFile = "index.pug"
	}
	if c.ContentFile == "" {
		c.ContentFile = "content.md"
	}
}

// Option configures additional Scaffolder behavior.
type Option func(*Scaffolder)

// WithFs sets the filesystem posts are written to (default: the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(s *Scaffolder) {
		s.fs = fs
	}
}

// WithLogger sets the logger used for step diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) {
		s.log = l
	}
}
