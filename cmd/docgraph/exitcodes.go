package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // No usable directory or file
	ExitDataError   = 3 // Document could not be loaded
)
