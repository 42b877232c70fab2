package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

var log = logrus.New()

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.NewApp()
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	logging, err := config.NewLogging()
	if err != nil {
		log.Fatal("unable to load logging config: ", err)
	}
	if err := logging.Apply(log, cfg.Development); err != nil {
		log.Fatal(err)
	}
	mines.Log = log

	log.WithFields(cfg.Fields()).Debug("config")

	if err := app.New(log, cfg).Start(mainCtx); err != nil {
		log.Printf("exit reason: %s\n", err)
		os.Exit(1)
	}
}
