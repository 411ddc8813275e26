package main

import (
	"os"

	"github.com/kk-code-lab/minigrep/internal/app"
)

func main() {
	// The environment is read here once; everything below takes it as input.
	env := app.EnvFromOS()
	os.Exit(app.Main(os.Args[1:], env, os.Stdout, os.Stderr))
}
