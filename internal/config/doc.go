// Package config handles configuration loading for coven-board.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from COVEN_BOARD_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/coven/board.yaml
//  3. ~/.config/coven/board.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${COVEN_BOARD_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//
//	database:
//	  path: "/var/lib/coven/board.db"
//
//	auth:
//	  jwt_secret: "${COVEN_BOARD_JWT_SECRET}"  # required, >= 32 bytes
//	  token_ttl: "24h"                         # Go duration syntax
//
//	cors:
//	  allowed_origins:
//	    - "http://localhost:3000"
//	    - "http://localhost:5173"
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - JWT secret presence and minimum length (32 bytes)
//   - Database path presence
//   - Duration format validity and a positive token TTL
//
// The JWT secret and token TTL are established once at startup and never
// mutated, so request handlers read them without synchronization.
package config
