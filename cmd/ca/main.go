// Command ca evolves one-dimensional binary cellular automata and renders the
// result as a PNG image, terminal text or an interactive window.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
