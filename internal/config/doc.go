// Package config provides configuration loading for api-gateway.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (port 3000, all interfaces, no upstream timeout)
//  2. An optional TOML file passed with --config
//  3. The PORT environment variable
//  4. Command-line flags that were set explicitly
//
// A config file looks like:
//
//	host = "127.0.0.1"
//	port = 8080
//	upstream_timeout = "15s"
//	log_json = true
//
// The environment is read through a lookup function so tests never touch
// process state.
package config
