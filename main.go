// Command ghx-sizing sizes vertical closed-loop ground heat exchangers.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
