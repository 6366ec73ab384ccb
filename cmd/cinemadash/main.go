package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("cinemadash exited with an error")
		os.Exit(1)
	}
}
