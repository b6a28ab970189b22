package project

import (
	"fmt"
	"strings"
)

// Template selects which directory skeleton a new project gets.
type Template int

const (
	// TemplateBasic is the minimal godot + rust pairing.
	TemplateBasic Template = iota
	// TemplateProto adds genre-prototyping directories (entities, UI,
	// aseprite/LDtk pipelines) under the godot project.
	TemplateProto
)

// ParseTemplate parses a CLI template flag value. Matching is case-insensitive.
func ParseTemplate(s string) (Template, error) {
	switch strings.ToLower(s) {
	case "basic":
		return TemplateBasic, nil
	case "proto":
		return TemplateProto, nil
	}
	return TemplateBasic, fmt.Errorf("unknown template %q (expected basic or proto)", s)
}

func (t Template) String() string {
	switch t {
	case TemplateProto:
		return "proto"
	default:
		return "basic"
	}
}

// manifestName returns the .gdextension file name inside godot/ for this
// template. The proto template names the manifest after the crate so the
// extra addons can ship their own manifests alongside it.
func (t Template) manifestName() string {
	if t == TemplateProto {
		return "rust.gdextension"
	}
	return ".gdextension"
}

// protoDirs are the empty directories the proto template creates under godot/.
var protoDirs = []string{
	"entity",
	"player",
	"ui",
	"pipeline/aseprite/scripts",
	"pipeline/aseprite/src",
	"pipeline/aseprite/wizard",
	"pipeline/ldtk",
	"addons/AsepriteWizard",
	"addons/ldtk-importer",
}
