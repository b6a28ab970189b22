package project

import (
	"os"
	"path/filepath"
)

// Config describes a project to create. Construct it with NewConfig and the
// With* builders; it is not mutated after being handed to the Scaffolder.
type Config struct {
	Name     string // Used verbatim as the directory name
	BasePath string // Parent directory the project is created under
	Template Template
}

// NewConfig creates a config for the given project name, rooted in the
// current working directory.
func NewConfig(name string) *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Config{
		Name:     name,
		BasePath: wd,
		Template: TemplateBasic,
	}
}

// WithBasePath sets the directory the project is created under.
func (c *Config) WithBasePath(path string) *Config {
	c.BasePath = path
	return c
}

// WithTemplate sets the scaffold template.
func (c *Config) WithTemplate(t Template) *Config {
	c.Template = t
	return c
}

// ProjectPath returns BasePath joined with Name.
func (c *Config) ProjectPath() string {
	return filepath.Join(c.BasePath, c.Name)
}
