// Package main runs calcd, the HTTP daemon serving the calculator core to a
// browser presentation layer.
//
// Configuration comes from the environment (a local .env file is honoured):
//
//	CALCD_ADDR    listen address (default :8080)
//	CALCD_HOME    data directory holding history.json (default ~/.wordcalc)
//	CALCD_SPEECH  speak results aloud when PlayHT credentials are set
//	LOG_LEVEL     debug, info, warn, error (default info)
//	LOG_PRETTY    human-readable log output
//
// The daemon shuts down gracefully on SIGINT/SIGTERM, draining in-flight
// requests. See the server package for the endpoint list.
package main
