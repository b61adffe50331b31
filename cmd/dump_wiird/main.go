// Package main provides a command-line utility to dump decoded WiiRD
// codesets for debugging.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GamendeMier/brawllib/wiird"
)

func main() {
	text := flag.Bool("text", false, "Parse the input as a text codeset instead of a binary gct")
	debug := flag.Bool("debug", false, "Log stream anomalies at debug level as well as errors")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: dump_wiird [flags] <codeset.gct|codeset.txt>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	var block wiird.Block
	var err error
	if *text {
		block, err = wiird.LoadTxt(args[0])
	} else {
		block, err = wiird.LoadGCT(args[0])
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load codeset")
	}

	spew.Dump(block)
}
