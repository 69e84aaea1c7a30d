// Package config loads runtime configuration for the feedline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with .env file support.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local credential database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:3000",
//	  "request_timeout": "10s",
//	  "database_path": "feedline.db"
//	}
//
// Environment variables
//
//	FEEDLINE_BASE_URL, FEEDLINE_TIMEOUT, FEEDLINE_DATABASE_PATH,
//	FEEDLINE_STREAMABLE_API, FEEDLINE_DEFAULT_AVATAR
//
// A .env file in the working directory is loaded first when present.
package config
