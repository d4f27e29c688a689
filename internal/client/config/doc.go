// Package config loads runtime configuration for the LearnHub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-e / -env, or ./.env when present), loaded into the
//     process environment without overriding variables that are already set.
//  3. Environment variables (see the env tags on Config).
//  4. Optional JSON file selected via -c or -config.
//  5. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   REST API base URL
//	-w string   WebSocket base URL
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite database holding the credential cookie
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8081/api",
//	  "ws_base_url": "ws://localhost:8081",
//	  "google_client_id": "...",
//	  "razorpay_key_id": "...",
//	  "request_timeout": "10s",
//	  "database_path": "learnhub.db",
//	  "log_level": "info"
//	}
package config
