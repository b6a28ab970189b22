// Package project scaffolds new Godot 4 + Rust GDExtension projects: a godot/
// subtree the engine opens directly and a rust/ crate wired to gdext.
package project

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/h2cone/create-godotrs/internal/generator"
)

//go:embed templates/*
var templatesFS embed.FS

// staticFiles maps embedded assets to their path inside the new project,
// in write order.
var staticFiles = []struct {
	asset string // file name under templates/
	rel   string // destination relative to the project root
}{
	{"Project.gitignore", ".gitignore"},
	{"Godot.gitignore", "godot/.gitignore"},
	{"Rust.gitignore", "rust/.gitignore"},
}

// Scaffolder creates new projects from the embedded templates.
type Scaffolder struct {
	renderer *generator.Renderer

	// For injecting commit failures in tests
	commitFunc func(ctx context.Context, tx *generator.Transaction) error
}

// NewScaffolder creates a new project scaffolder.
func NewScaffolder() *Scaffolder {
	return &Scaffolder{
		renderer: generator.NewRenderer(),
		commitFunc: func(ctx context.Context, tx *generator.Transaction) error {
			return tx.Commit(ctx)
		},
	}
}

// Plan returns the operations that would create the project, in execution
// order. It never touches the file system.
func (s *Scaffolder) Plan(cfg *Config) ([]generator.Operation, error) {
	projectPath := cfg.ProjectPath()

	ops := []generator.Operation{
		&generator.MkdirOp{Path: projectPath},
		&generator.MkdirOp{Path: filepath.Join(projectPath, "godot")},
		&generator.MkdirOp{Path: filepath.Join(projectPath, "rust")},
		&generator.MkdirOp{Path: filepath.Join(projectPath, "rust", "src")},
	}

	for _, f := range staticFiles {
		content, err := templatesFS.ReadFile("templates/" + f.asset)
		if err != nil {
			return nil, fmt.Errorf("reading embedded template %s: %w", f.asset, err)
		}
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(projectPath, filepath.FromSlash(f.rel)),
			Content: content,
			Mode:    0644,
		})
	}

	manifest, err := templatesFS.ReadFile("templates/Godot.gdextension")
	if err != nil {
		return nil, fmt.Errorf("reading embedded template Godot.gdextension: %w", err)
	}
	ops = append(ops, &generator.WriteFileOp{
		Path:    filepath.Join(projectPath, "godot", cfg.Template.manifestName()),
		Content: manifest,
		Mode:    0644,
	})

	descriptor, err := s.renderer.RenderFS(templatesFS, "templates/project.godot.tmpl", struct{ Name string }{cfg.Name})
	if err != nil {
		return nil, fmt.Errorf("rendering project.godot: %w", err)
	}
	ops = append(ops, &generator.WriteFileOp{
		Path:    filepath.Join(projectPath, "godot", "project.godot"),
		Content: descriptor,
		Mode:    0644,
	})

	if cfg.Template == TemplateProto {
		for _, dir := range protoDirs {
			ops = append(ops, &generator.MkdirOp{
				Path: filepath.Join(projectPath, "godot", filepath.FromSlash(dir)),
			})
		}
	}

	for _, f := range []struct{ asset, rel string }{
		{"lib.rs", "rust/src/lib.rs"},
		{"Cargo.toml", "rust/Cargo.toml"},
	} {
		content, err := templatesFS.ReadFile("templates/" + f.asset)
		if err != nil {
			return nil, fmt.Errorf("reading embedded template %s: %w", f.asset, err)
		}
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(projectPath, filepath.FromSlash(f.rel)),
			Content: content,
			Mode:    0644,
		})
	}

	return ops, nil
}

// Create creates the project described by cfg.
//
// If the target path already exists, it returns *AlreadyExistsError without
// touching the file system. Any failure after that removes the partially
// created project directory (best effort) and returns the original error.
func (s *Scaffolder) Create(ctx context.Context, cfg *Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("project name must not be empty")
	}

	projectPath := cfg.ProjectPath()
	if _, err := os.Lstat(projectPath); err == nil {
		return &AlreadyExistsError{Path: projectPath}
	}

	ops, err := s.Plan(cfg)
	if err != nil {
		return err
	}

	tx := generator.NewTransaction(projectPath)
	for _, op := range ops {
		tx.Add(op)
	}

	if err := s.commitFunc(ctx, tx); err != nil {
		// The transaction cleans up after itself, but the seam above can
		// fail without running it. Removal errors never mask err.
		os.RemoveAll(projectPath)
		return fmt.Errorf("creating project %s: %w", cfg.Name, err)
	}

	return nil
}
