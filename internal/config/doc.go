// Package config loads glyphpost settings from ~/.glyphpost/config.toml.
//
// A missing file is not an error: Load returns Default with environment
// overrides applied. Supported environment variables:
//
//	GLYPHPOST_CONFIG     path to the TOML file
//	GLYPHPOST_LOG_LEVEL  trace, debug, info, warn, error
//	GLYPHPOST_LOG_FILE   path of the rolling log file
package config
