// Package main provides a command-line utility to dump decoded PSA
// action scripts for debugging.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GamendeMier/brawllib/psa"
)

func main() {
	offsets := flag.String("offsets", "", "Comma separated script entry offsets, e.g. 0x100,0x200")
	fragments := flag.Bool("fragments", true, "Also dump fragment scripts reachable from gotos and subroutines")
	debug := flag.Bool("debug", false, "Log stream anomalies at debug level as well as errors")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	args := flag.Args()
	if len(args) < 1 || *offsets == "" {
		fmt.Println("Usage: dump_psa -offsets 0x100,0x200 [flags] <scripts.bin>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read script blob")
	}

	var scripts []psa.Script
	for _, field := range strings.Split(*offsets, ",") {
		offset, err := strconv.ParseInt(strings.TrimSpace(field), 0, 32)
		if err != nil {
			log.Fatal().Err(err).Str("offset", field).Msg("invalid script offset")
		}
		scripts = append(scripts, psa.NewScript(data, int(offset)))
	}
	spew.Dump(scripts)

	if *fragments {
		spew.Dump(psa.FragmentScripts(data, [][]psa.Script{scripts}))
	}
}
