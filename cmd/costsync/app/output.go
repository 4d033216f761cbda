package app

import (
	"fmt"
	"os"
)

// writeActionOutput appends a key=value pair to the file named by
// GITHUB_OUTPUT, the mechanism scheduled workflow runs use to hand results
// back to the invoking environment. A run outside such an environment has
// no output file and this is a no-op.
func writeActionOutput(key, value string) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s=%s\n", key, value)
	return err
}
