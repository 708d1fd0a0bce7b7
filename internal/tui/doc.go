// Package tui implements the interactive operation menu as a Bubble Tea
// program.
//
// The model walks through two phases: picking one of the Drive operations,
// then filling that operation's parameters in sequential text inputs. The
// model is pure state; it never talks to the Drive API. When the program
// finishes, the cmd layer reads the collected Request and executes it
// through the same code paths the non-interactive subcommands use.
package tui
