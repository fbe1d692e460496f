package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// ErrorResponse is the JSON error shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+msg))
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}
