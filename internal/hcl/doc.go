// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses schemagen configuration files, translates `source`
// blocks into option assignments and converts their CTY values to the kind
// each option expects.
package hcl
