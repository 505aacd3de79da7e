package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/eringen/newpost"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, newpost.ErrPostsRootMissing) {
			fmt.Fprintln(os.Stderr, "Run newpost from the site root or pass --root.")
		}
		os.Exit(1)
	}
}
