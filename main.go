package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"AccelMailBot/internal/adapters/app"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	a, err := app.New()
	if err != nil {
		log.Fatal().Err(err).Msg("application startup failed")
	}
	a.Start()
}
