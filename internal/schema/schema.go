// Package schema holds the HCL decoding structs for schemagen configuration
// files.
package schema

import "github.com/hashicorp/hcl/v2"

// File represents the top-level structure of a schemagen configuration file.
type File struct {
	BaseDir   string     `hcl:"base_dir,optional"`
	BuildDir  string     `hcl:"build_dir,optional"`
	Includes  []string   `hcl:"includes,optional"`
	Excludes  []string   `hcl:"excludes,optional"`
	Generator *Generator `hcl:"generator,block"`
	Sources   []*Source  `hcl:"source,block"`
}

// Generator represents the `generator` block, which selects the external
// generator collaborator.
type Generator struct {
	Type    string            `hcl:"type,optional"`
	Command string            `hcl:"command,optional"`
	Args    []string          `hcl:"args,optional"`
	Env     map[string]string `hcl:"env,optional"`
}

// Source represents a `source` block. Every attribute other than `default`
// and `file_name` is an option assignment and is left in Options for the
// loader to interpret against the option table.
type Source struct {
	Default  bool     `hcl:"default,optional"`
	FileName string   `hcl:"file_name,optional"`
	Options  hcl.Body `hcl:",remain"`
}
