//go:generate go run ./tools/generate.go

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/illikainen/scaffold/src/cmd"

	"github.com/fatih/color"
	"github.com/illikainen/go-utils/src/logging"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

func main() {
	setupLogging(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Command().ExecuteContext(ctx)
	stop()

	if err != nil {
		log.Tracef("%+v", err)
		log.Fatalf("%s", err)
	}
}

func setupLogging(out *os.File) {
	fd := out.Fd()
	color.NoColor = color.NoColor || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))

	log.SetOutput(out)
	log.SetFormatter(&logging.SanitizedTextFormatter{})
}
