// Package registry maps generator type names, as used in the `generator`
// configuration block and on the command line, to the factories that build
// them. Modules compiled into the binary register themselves through the
// Module interface.
package registry
