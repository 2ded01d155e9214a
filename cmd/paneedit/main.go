// Command paneedit is a terminal text editor with side-by-side editors.
package main

import (
	"errors"
	"fmt"
	"os"

	"example.com/paneedit/internal/app"
	"example.com/paneedit/pkg/config"
	"example.com/paneedit/pkg/logs"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "paneedit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return errors.New("stdin and stdout must be a terminal")
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	log, closer := logs.NewFromEnv()
	defer closer.Close()

	return app.New(cfg, log).Run()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
