package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/osmkit/stringmatch/pkg/cmd"
	"github.com/osmkit/stringmatch/pkg/cmd/scan"
)

func main() {
	// runs the scan/describe/version sub-commands
	// see: github.com/osmkit/stringmatch/pkg/cmd package for details
	if err := cmd.Execute(); err != nil {
		// a scan that selected nothing exits 1 the way grep does; anything
		// else is a usage or compile error
		if errors.Is(err, scan.ErrNoMatch) {
			os.Exit(1)
		}
		log.Error().Err(err).Msg("stringmatch failed")
		os.Exit(2)
	}
}
