package main

import (
	"errors"
	"fmt"
	"os"
)

// ErrPublicationFailed signals a run that finished with a failure or error
// status rather than a CLI defect.
var ErrPublicationFailed = errors.New("publication did not succeed")

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrPublicationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
