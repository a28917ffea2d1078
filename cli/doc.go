// Package cli implements the soyctl command-line interface.
//
// Flags are organized into kong groups: logging flags configure the
// structured-logging facade before any command runs, and profiling
// flags optionally capture a CPU or memory profile around the command.
package cli
