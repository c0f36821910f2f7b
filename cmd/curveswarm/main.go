//go:build !android

// Command curveswarm animates a swarm of particles along generated curves.
package main

import (
	"fmt"
	"os"

	"curveswarm/internal/app"
)

func main() {
	if err := app.RunDesktop(); err != nil {
		fmt.Fprintf(os.Stderr, "curveswarm: %v\n", err)
		os.Exit(1)
	}
}
