package main

import (
	"os"

	"github.com/ppiankov/typechart/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("typechart failed")
		os.Exit(1)
	}
}
