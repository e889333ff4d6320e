// Package buildsys configures and builds the SuiteSparse libraries by running CMake
// once per library, in dependency order.
// Options are resolved into an immutable Config up front; the Driver then walks the
// library list and stops at the first external command that fails.
package buildsys
