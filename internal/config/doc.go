// Package config provides user configuration management for TypePolish.
//
// This package manages a YAML-based configuration file storing the correction
// server address and the editor defaults (mode, style, realtime behavior)
// restored when the terminal editor starts. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/typepolish/config.yaml or $HOME/.config/typepolish/config.yaml
//   - macOS: $HOME/.config/typepolish/config.yaml
//   - Windows: %LOCALAPPDATA%\typepolish\config.yaml
//
// # Environment Override
//
// TYPEPOLISH_SERVER_URL overrides the configured server base URL without
// modifying the file. This is the supported way to point the client at a
// different backend for a single session.
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.Editor.Realtime = false
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File operations are protected by a mutex and saves are atomic
// (write-to-temp then rename).
package config
