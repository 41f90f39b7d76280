// Command watchdate decodes watch serial numbers from the terminal
package main

import (
	"fmt"
	"os"

	perr "watchdate/internal/platform/errors"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errMessage(err))
		os.Exit(1)
	}
}

// errMessage prefers the user-facing message of a coded error over its full chain
func errMessage(err error) string {
	if e, ok := perr.As(err); ok {
		return e.Message()
	}
	return err.Error()
}
