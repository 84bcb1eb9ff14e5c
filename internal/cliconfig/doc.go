// Package cliconfig loads the settings of the ibisibi command.
//
// Settings come from, in increasing precedence, built-in defaults, the
// TOML file ~/.ibisibi/config.toml, IBISIBI_* environment variables and
// command line flags:
//
//	serial = "/dev/ttyUSB0"
//	log_level = "debug"
//	interval = "10s"
//	lookahead = "5m"
//
// Run files are YAML documents holding one invocation, see RunFile.
package cliconfig
