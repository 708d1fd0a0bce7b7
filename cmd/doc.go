// Package cmd implements the command-line interface for drivectl.
//
// This package provides the following commands:
//   - ls: List the files inside a named folder
//   - download: Download a file by name or ID
//   - upload: Upload a local file
//   - mkdir: Create a folder
//   - rm: Delete a file permanently
//   - cp: Copy a file
//   - interactive: Pick an operation from an interactive menu
//   - version: Display version information
//
// The interactive menu is the default command when no subcommand is
// specified.
package cmd
