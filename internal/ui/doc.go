// Package ui implements the interactive terminal editor for TypePolish.
//
// The editor is a Bubble Tea program that wires the keyboard-driven
// textarea to the polishing orchestrator. Orchestrator callbacks arrive
// on a channel and are re-emitted as Bubble Tea messages, so all state
// mutation happens on the program's update loop. The package also
// provides the inline diff renderer and the shared lipgloss styles used
// by the CLI subcommands.
package ui
