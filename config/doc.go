// Package config loads the settings for the circle CLI.
//
// Settings come from three layers, highest precedence first:
//
//	CIRCLE_* environment variables (CIRCLE_API_KEY, CIRCLE_BASE_URL, ...)
//	a .env file in the working directory or ~/.circle
//	a circle.yml in the working directory, or ~/.circle/config.yml
//
// Command-line flags are layered on top by the cmd package.
//
//	settings, err := config.Load()
package config
