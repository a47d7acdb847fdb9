// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

// Environment variable constants
const (
	// EnvPollInterval overrides the widget setup retry interval
	EnvPollInterval = "SHOWHIDE_POLL_INTERVAL"

	// EnvMaxAttempts overrides the widget setup retry ceiling
	EnvMaxAttempts = "SHOWHIDE_MAX_ATTEMPTS"

	// EnvTheme overrides the syntax highlighting theme
	EnvTheme = "SHOWHIDE_THEME"

	// EnvDebug is the environment variable for debug mode
	EnvDebug = "SHOWHIDE_DEBUG"
)
