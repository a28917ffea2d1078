// Package cmd implements the soyctl subcommands.
package cmd
