/*
Package options implements the cascading settings model used to configure one
run of the external schema generator.

A Node holds local option values and an optional parent. Value lookups return
the nearest local value on the path from the node to the root, so a per-file
node only needs to declare what differs from the shared defaults. Boolean
flags are the exception: IsTrue is an OR across every level, so a flag
switched on anywhere in the cascade stays on.

The set of options is closed. Each Option carries its value Kind and the
command-line flag the generator understands.
*/
package options
