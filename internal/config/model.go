package config

import (
	"fmt"
	"path/filepath"

	"github.com/vk/schemagen/internal/options"
)

const (
	// DefaultBuildDir is the build output root, relative to the base
	// directory, used when none is configured.
	DefaultBuildDir = "target"

	// GeneratedSources is the directory below the build output root that
	// receives generated code unless an output option says otherwise.
	GeneratedSources = "generated-sources"

	// DefaultGenerator is the generator type used when none is configured.
	DefaultGenerator = "exec"

	// DefaultCommand is the executable run by the exec generator.
	DefaultCommand = "schemagen"
)

// Plugin is the unified representation of one schemagen configuration.
type Plugin struct {
	// BaseDir is the root for pattern matching and for relative input names.
	BaseDir string
	// BuildDir is the build output root.
	BuildDir string

	Includes []string
	Excludes []string

	Generator *Generator

	// Sources are the declared option entries, in declaration order.
	Sources []*Source
}

// Generator selects and configures the external generator collaborator.
type Generator struct {
	Type    string
	Command string
	Args    []string
	Env     map[string]string
}

// Source is one declared options entry. It is either the defaults marker or
// names an input file; entries that are neither are ignored with a warning.
type Source struct {
	Default  bool
	FileName string
	Options  []Assignment
	// Pos locates the entry in its configuration file, for diagnostics.
	Pos string
}

// Assignment is one option key/value pair of a Source.
type Assignment struct {
	Option options.Option
	Value  options.Value
}

// Node builds a fresh, parentless options node from the entry. A per-file
// entry carries its file name as the input option.
func (s *Source) Node() (*options.Node, error) {
	n := options.NewNode()
	if s.FileName != "" {
		if err := n.Set(options.Input, options.Resource(s.FileName)); err != nil {
			return nil, err
		}
	}
	for _, a := range s.Options {
		if err := n.Set(a.Option, a.Value); err != nil {
			return nil, fmt.Errorf("source %s: %w", s.describe(), err)
		}
	}
	return n, nil
}

func (s *Source) describe() string {
	switch {
	case s.Default:
		return "(default)"
	case s.FileName != "":
		return fmt.Sprintf("%q", s.FileName)
	case s.Pos != "":
		return "at " + s.Pos
	default:
		return "(unnamed)"
	}
}

// ApplyDefaults fills unset directories and the generator. wd is used as the
// base directory when none is configured. Directories are made absolute.
//
// The HCL loader already sets an unset base_dir to the directory of the
// configuration file, so wd only applies to a Plugin built without one.
func (p *Plugin) ApplyDefaults(wd string) error {
	if p.BaseDir == "" {
		p.BaseDir = wd
	}
	base, err := filepath.Abs(p.BaseDir)
	if err != nil {
		return fmt.Errorf("resolve base directory %q: %w", p.BaseDir, err)
	}
	p.BaseDir = base

	if p.BuildDir == "" {
		p.BuildDir = DefaultBuildDir
	}
	if !filepath.IsAbs(p.BuildDir) {
		p.BuildDir = filepath.Join(p.BaseDir, p.BuildDir)
	}

	if p.Generator == nil {
		p.Generator = &Generator{}
	}
	if p.Generator.Type == "" {
		p.Generator.Type = DefaultGenerator
	}
	if p.Generator.Command == "" {
		p.Generator.Command = DefaultCommand
	}
	return nil
}

// OutputDir returns the built-in output location, BuildDir/generated-sources.
func (p *Plugin) OutputDir() string {
	return filepath.Join(p.BuildDir, GeneratedSources)
}
