package main

import (
	"errors"
	"os"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"minotaur/config"
)

const localeDomain = "minotaur"

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.LogLevel())

	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Lang, localeDomain)

	g, err := NewGame(cfg)
	if err != nil {
		log.WithError(err).Fatal("init game")
	}
	if err := g.Run(); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
}
