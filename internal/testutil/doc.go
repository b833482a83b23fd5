// Package testutil runs the whole application against throwaway projects
// and records what the generator was asked to do.
package testutil
