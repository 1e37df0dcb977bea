package config

import "log"

// Verbose controls whether verbose-level messages are printed.
// Set once by the root command before any work starts.
var Verbose bool

// Debug controls whether debug-level messages are printed.
// Debug implies Verbose.
var Debug bool

// VerboseLog logs a message when verbose or debug mode is enabled
func VerboseLog(format string, args ...interface{}) {
	if Verbose || Debug {
		log.Printf("[VERBOSE] "+format+"\n", args...)
	}
}

// DebugLog logs a message only when debug mode is enabled
func DebugLog(format string, args ...interface{}) {
	if Debug {
		log.Printf("[DEBUG] "+format+"\n", args...)
	}
}
