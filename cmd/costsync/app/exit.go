package app

import (
	"fmt"
	"os"
)

// ExitOnError reports a fatal error and terminates with a non-zero exit
// code. The failure path emits only the failure message, never a partial
// result.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
