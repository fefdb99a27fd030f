package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/andrei-cloud/go_cmac/cmd/go_cmac/cmd"
)

// main dispatches to the CLI commands.
func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
