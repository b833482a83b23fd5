// Package config defines the format-agnostic plugin configuration: the
// include/exclude patterns, the directories of a run, the generator
// collaborator and the ordered list of source entries that seed the options
// cascade.
//
// Concrete loaders, such as the HCL one, live in separate packages and
// implement the Loader interface.
package config
